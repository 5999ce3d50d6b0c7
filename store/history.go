package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/printdeck/paperstock/errs"
	"github.com/printdeck/paperstock/models"
)

// DefaultHistoryLimit bounds history reads when the caller does not
// ask for a specific count.
const DefaultHistoryLimit = 3

// recordHistory appends one audit row inside the adjustment
// transaction. Snapshots are full copies of both orientations; the
// per-paper sequence number fixes insertion order, and changedAt is
// clamped so it never runs backwards within one paper's log.
func recordHistory(ctx context.Context, tx *sql.Tx, paperID string, oldValues, newValues models.CrossAdjust, changedAt time.Time) error {
	var seq int64
	var lastChanged time.Time
	err := tx.QueryRowContext(ctx, `
		SELECT seq, changed_at FROM paper_history
		WHERE paper_id = $1
		ORDER BY seq DESC
		LIMIT 1
	`, paperID).Scan(&seq, &lastChanged)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return errs.Storage("history sequence", err)
	}
	if changedAt.Before(lastChanged) {
		changedAt = lastChanged
	}

	oldJSON, err := marshalAdjust(oldValues)
	if err != nil {
		return err
	}
	newJSON, err := marshalAdjust(newValues)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO paper_history (id, paper_id, seq, old_values, new_values, changed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, uuid.NewString(), paperID, seq+1, oldJSON, newJSON, changedAt)
	if err != nil {
		return errs.Storage("insert history", err)
	}
	return nil
}

// History returns the most recent adjustment changes for a paper,
// newest first. A missing paper id is NotFoundError, not an empty log.
func (s *Store) History(ctx context.Context, paperID string, limit int) ([]models.HistoryEntry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM paper_type WHERE id = $1`, paperID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NotFound("paper", paperID)
	}
	if err != nil {
		return nil, errs.Storage("check paper", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, paper_id, old_values, new_values, changed_at
		FROM paper_history
		WHERE paper_id = $1
		ORDER BY seq DESC
		LIMIT $2
	`, paperID, limit)
	if err != nil {
		return nil, errs.Storage("query history", err)
	}
	defer rows.Close()

	entries := []models.HistoryEntry{}
	for rows.Next() {
		var entry models.HistoryEntry
		var oldJSON, newJSON string
		if err := rows.Scan(&entry.ID, &entry.PaperID, &oldJSON, &newJSON, &entry.ChangedAt); err != nil {
			return nil, errs.Storage("scan history", err)
		}
		if err := unmarshalAdjust(oldJSON, &entry.OldValues); err != nil {
			return nil, err
		}
		if err := unmarshalAdjust(newJSON, &entry.NewValues); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Storage("iterate history", err)
	}
	return entries, nil
}
