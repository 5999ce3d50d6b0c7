package catalog

import (
	"context"

	"github.com/printdeck/paperstock/adjust"
	"github.com/printdeck/paperstock/models"
	"github.com/printdeck/paperstock/store"
)

// Service is the single entry point the API layer calls. It composes
// the store, the adjustment model, and the category projection;
// failures from inner components propagate unchanged.
type Service struct {
	store *store.Store
}

func NewService(s *store.Store) *Service {
	return &Service{store: s}
}

func (s *Service) AddPaper(ctx context.Context, draft models.CreatePaperRequest) (models.PaperType, error) {
	return s.store.Create(ctx, draft)
}

func (s *Service) EditPaper(ctx context.Context, id string, fields models.UpdatePaperRequest) (models.PaperType, error) {
	return s.store.Update(ctx, id, fields)
}

// EditAdjustment normalizes the raw payload, then hands the store the
// whole-object replacement; the store appends the audit record inside
// the same transaction.
func (s *Service) EditAdjustment(ctx context.Context, id string, in models.CrossAdjustInput) (models.PaperType, error) {
	ca, err := adjust.NormalizeCrossAdjust(in)
	if err != nil {
		return models.PaperType{}, err
	}
	return s.store.SetAdjustment(ctx, id, ca)
}

func (s *Service) SetOrientation(ctx context.Context, id, side string) (models.PaperType, error) {
	return s.store.SetCrossSide(ctx, id, side)
}

// ToggleOrientation flips short to long and back.
func (s *Service) ToggleOrientation(ctx context.Context, id string) (models.PaperType, error) {
	current, err := s.store.Get(ctx, id)
	if err != nil {
		return models.PaperType{}, err
	}
	return s.store.SetCrossSide(ctx, id, models.OppositeSide(current.CrossSide))
}

func (s *Service) RemovePaper(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

func (s *Service) ListPapers(ctx context.Context) ([]models.PaperType, error) {
	return s.store.List(ctx)
}

func (s *Service) GetPaper(ctx context.Context, id string) (models.PaperType, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context) ([]models.Category, error) {
	papers, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return ProjectCategories(papers), nil
}

func (s *Service) PapersInCategory(ctx context.Context, name string) ([]models.PaperType, error) {
	return s.store.FindByCategory(ctx, name)
}

func (s *Service) History(ctx context.Context, paperID string, limit int) ([]models.HistoryEntry, error) {
	return s.store.History(ctx, paperID, limit)
}
