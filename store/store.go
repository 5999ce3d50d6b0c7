package store

import (
	"database/sql"
	"encoding/json"

	"github.com/printdeck/paperstock/errs"
	"github.com/printdeck/paperstock/models"
)

// Store owns all catalog state. Every command runs as one transaction;
// reads never observe a half-written record.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const paperColumns = `id, name, weight, width, height, coating,
	printing_wedges, nozzle_reconditioning, cross_side, cross_adjust,
	created_at, updated_at`

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPaper(row scanner) (models.PaperType, error) {
	var p models.PaperType
	var adjustJSON string
	err := row.Scan(
		&p.ID, &p.Name, &p.Weight, &p.Width, &p.Height, &p.Coating,
		&p.PrintingWedges, &p.NozzleReconditioning, &p.CrossSide,
		&adjustJSON, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return models.PaperType{}, err
	}
	if err := json.Unmarshal([]byte(adjustJSON), &p.CrossAdjust); err != nil {
		return models.PaperType{}, errs.Storage("decode cross adjust", err)
	}
	return p, nil
}

func marshalAdjust(ca models.CrossAdjust) (string, error) {
	b, err := json.Marshal(ca)
	if err != nil {
		return "", errs.Storage("encode cross adjust", err)
	}
	return string(b), nil
}

func unmarshalAdjust(raw string, ca *models.CrossAdjust) error {
	if err := json.Unmarshal([]byte(raw), ca); err != nil {
		return errs.Storage("decode cross adjust", err)
	}
	return nil
}
