package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/printdeck/paperstock/adjust"
	"github.com/printdeck/paperstock/errs"
	"github.com/printdeck/paperstock/models"
)

// validateDraft checks the descriptive fields shared by create and
// update. Per-field failures surface as ValidationError.
func validateDraft(name string, weight, width, height int, coating, crossSide string) error {
	if strings.TrimSpace(name) == "" {
		return errs.Validation("name", "name is required")
	}
	if weight < 1 {
		return errs.Validation("weight", "weight must be at least 1gr")
	}
	if width < 1 {
		return errs.Validation("width", "width must be at least 1mm")
	}
	if height < 1 {
		return errs.Validation("height", "height must be at least 1mm")
	}
	if !models.ValidCoating(coating) {
		return errs.Validation("coating", "coating must be coated or uncoated")
	}
	if !models.ValidSide(crossSide) {
		return errs.Validation("crossSide", "cross side must be short or long")
	}
	return nil
}

// findDuplicate looks for another record with the same identity key
// (case-insensitive name, weight, width, height). excludeID skips the
// record being updated; empty on create.
func findDuplicate(ctx context.Context, tx *sql.Tx, name string, weight, width, height int, excludeID string) (*models.PaperType, error) {
	row := tx.QueryRowContext(ctx, `
		SELECT `+paperColumns+`
		FROM paper_type
		WHERE LOWER(name) = LOWER($1) AND weight = $2 AND width = $3 AND height = $4 AND id <> $5
	`, name, weight, width, height, excludeID)

	existing, err := scanPaper(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Storage("duplicate check", err)
	}
	return &existing, nil
}

// Create inserts a new paper type. The adjustment override, if any, is
// normalized for the whole payload and validated before the record is
// written; without one both orientations start at zero.
func (s *Store) Create(ctx context.Context, draft models.CreatePaperRequest) (models.PaperType, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	if err := validateDraft(draft.Name, draft.Weight, draft.Width, draft.Height, draft.Coating, draft.CrossSide); err != nil {
		return models.PaperType{}, err
	}

	var ca models.CrossAdjust
	if draft.CrossAdjust != nil && (draft.CrossAdjust.Short != nil || draft.CrossAdjust.Long != nil) {
		normalized, err := adjust.NormalizeCrossAdjust(*draft.CrossAdjust)
		if err != nil {
			return models.PaperType{}, err
		}
		if err := adjust.ValidateFull(normalized); err != nil {
			return models.PaperType{}, err
		}
		ca = normalized
	}

	adjustJSON, err := marshalAdjust(ca)
	if err != nil {
		return models.PaperType{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.PaperType{}, errs.Storage("begin create", err)
	}
	defer tx.Rollback()

	existing, err := findDuplicate(ctx, tx, draft.Name, draft.Weight, draft.Width, draft.Height, "")
	if err != nil {
		return models.PaperType{}, err
	}
	if existing != nil {
		return models.PaperType{}, errs.Duplicate(*existing)
	}

	now := time.Now().UTC()
	paper := models.PaperType{
		ID:                   uuid.NewString(),
		Name:                 draft.Name,
		Weight:               draft.Weight,
		Width:                draft.Width,
		Height:               draft.Height,
		Coating:              draft.Coating,
		PrintingWedges:       draft.PrintingWedges,
		NozzleReconditioning: draft.NozzleReconditioning,
		CrossSide:            draft.CrossSide,
		CrossAdjust:          ca,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO paper_type (id, name, weight, width, height, coating,
			printing_wedges, nozzle_reconditioning, cross_side, cross_adjust,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, paper.ID, paper.Name, paper.Weight, paper.Width, paper.Height, paper.Coating,
		paper.PrintingWedges, paper.NozzleReconditioning, paper.CrossSide, adjustJSON,
		paper.CreatedAt, paper.UpdatedAt)
	if err != nil {
		return models.PaperType{}, errs.Storage("insert paper", err)
	}

	if err := tx.Commit(); err != nil {
		return models.PaperType{}, errs.Storage("commit create", err)
	}
	return paper, nil
}

// Update replaces the descriptive fields of a record. Adjustments are
// untouched here; they change only through SetAdjustment so every
// change is audited.
func (s *Store) Update(ctx context.Context, id string, fields models.UpdatePaperRequest) (models.PaperType, error) {
	fields.Name = strings.TrimSpace(fields.Name)
	if err := validateDraft(fields.Name, fields.Weight, fields.Width, fields.Height, fields.Coating, fields.CrossSide); err != nil {
		return models.PaperType{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.PaperType{}, errs.Storage("begin update", err)
	}
	defer tx.Rollback()

	current, err := getTx(ctx, tx, id)
	if err != nil {
		return models.PaperType{}, err
	}

	existing, err := findDuplicate(ctx, tx, fields.Name, fields.Weight, fields.Width, fields.Height, id)
	if err != nil {
		return models.PaperType{}, err
	}
	if existing != nil {
		return models.PaperType{}, errs.Duplicate(*existing)
	}

	current.Name = fields.Name
	current.Weight = fields.Weight
	current.Width = fields.Width
	current.Height = fields.Height
	current.Coating = fields.Coating
	current.PrintingWedges = fields.PrintingWedges
	current.NozzleReconditioning = fields.NozzleReconditioning
	current.CrossSide = fields.CrossSide
	current.UpdatedAt = time.Now().UTC()

	_, err = tx.ExecContext(ctx, `
		UPDATE paper_type
		SET name = $1, weight = $2, width = $3, height = $4, coating = $5,
			printing_wedges = $6, nozzle_reconditioning = $7, cross_side = $8,
			updated_at = $9
		WHERE id = $10
	`, current.Name, current.Weight, current.Width, current.Height, current.Coating,
		current.PrintingWedges, current.NozzleReconditioning, current.CrossSide,
		current.UpdatedAt, id)
	if err != nil {
		return models.PaperType{}, errs.Storage("update paper", err)
	}

	if err := tx.Commit(); err != nil {
		return models.PaperType{}, errs.Storage("commit update", err)
	}
	return current, nil
}

// SetAdjustment replaces both orientations' pairs atomically and
// appends the audit record in the same transaction. A failing
// validation leaves the stored record untouched.
func (s *Store) SetAdjustment(ctx context.Context, id string, ca models.CrossAdjust) (models.PaperType, error) {
	if err := adjust.ValidateFull(ca); err != nil {
		return models.PaperType{}, err
	}

	adjustJSON, err := marshalAdjust(ca)
	if err != nil {
		return models.PaperType{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.PaperType{}, errs.Storage("begin adjustment", err)
	}
	defer tx.Rollback()

	current, err := getTx(ctx, tx, id)
	if err != nil {
		return models.PaperType{}, err
	}

	now := time.Now().UTC()
	_, err = tx.ExecContext(ctx, `
		UPDATE paper_type SET cross_adjust = $1, updated_at = $2 WHERE id = $3
	`, adjustJSON, now, id)
	if err != nil {
		return models.PaperType{}, errs.Storage("update adjustment", err)
	}

	if err := recordHistory(ctx, tx, id, current.CrossAdjust, ca, now); err != nil {
		return models.PaperType{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.PaperType{}, errs.Storage("commit adjustment", err)
	}

	current.CrossAdjust = ca
	current.UpdatedAt = now
	return current, nil
}

// SetCrossSide flips which orientation is active. Stored offsets are
// untouched and no history is written; this is a record-level state
// transition, not an adjustment change.
func (s *Store) SetCrossSide(ctx context.Context, id, side string) (models.PaperType, error) {
	if !models.ValidSide(side) {
		return models.PaperType{}, errs.Validation("crossSide", "cross side must be short or long")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.PaperType{}, errs.Storage("begin cross side", err)
	}
	defer tx.Rollback()

	current, err := getTx(ctx, tx, id)
	if err != nil {
		return models.PaperType{}, err
	}

	if current.CrossSide != side {
		current.CrossSide = side
		current.UpdatedAt = time.Now().UTC()
		_, err = tx.ExecContext(ctx, `
			UPDATE paper_type SET cross_side = $1, updated_at = $2 WHERE id = $3
		`, side, current.UpdatedAt, id)
		if err != nil {
			return models.PaperType{}, errs.Storage("update cross side", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return models.PaperType{}, errs.Storage("commit cross side", err)
	}
	return current, nil
}

// Delete removes a record. History rows go with it via the cascading
// foreign key.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM paper_type WHERE id = $1`, id)
	if err != nil {
		return errs.Storage("delete paper", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errs.Storage("delete paper", err)
	}
	if affected == 0 {
		return errs.NotFound("paper", id)
	}
	return nil
}

// List returns every paper type in the store's natural order
// (name, then weight).
func (s *Store) List(ctx context.Context) ([]models.PaperType, error) {
	return s.queryPapers(ctx, `
		SELECT `+paperColumns+` FROM paper_type ORDER BY name, weight
	`)
}

// Get returns one record by id.
func (s *Store) Get(ctx context.Context, id string) (models.PaperType, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+paperColumns+` FROM paper_type WHERE id = $1
	`, id)
	paper, err := scanPaper(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PaperType{}, errs.NotFound("paper", id)
	}
	if err != nil {
		return models.PaperType{}, errs.Storage("get paper", err)
	}
	return paper, nil
}

// likeEscaper guards category tokens against LIKE metacharacters.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// FindByCategory returns papers whose name is the category token or
// starts with the token followed by a space.
func (s *Store) FindByCategory(ctx context.Context, category string) ([]models.PaperType, error) {
	return s.queryPapers(ctx, `
		SELECT `+paperColumns+`
		FROM paper_type
		WHERE name = $1 OR name LIKE $2 ESCAPE '\'
		ORDER BY name, weight
	`, category, likeEscaper.Replace(category)+" %")
}

func (s *Store) queryPapers(ctx context.Context, query string, args ...any) ([]models.PaperType, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errs.Storage("query papers", err)
	}
	defer rows.Close()

	papers := []models.PaperType{}
	for rows.Next() {
		paper, err := scanPaper(rows)
		if err != nil {
			return nil, errs.Storage("scan paper", err)
		}
		papers = append(papers, paper)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Storage("iterate papers", err)
	}
	return papers, nil
}

func getTx(ctx context.Context, tx *sql.Tx, id string) (models.PaperType, error) {
	row := tx.QueryRowContext(ctx, `
		SELECT `+paperColumns+` FROM paper_type WHERE id = $1
	`, id)
	paper, err := scanPaper(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PaperType{}, errs.NotFound("paper", id)
	}
	if err != nil {
		return models.PaperType{}, errs.Storage("get paper", err)
	}
	return paper, nil
}
