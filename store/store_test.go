package store_test

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"testing"

	"github.com/printdeck/paperstock/adjust"
	"github.com/printdeck/paperstock/errs"
	"github.com/printdeck/paperstock/models"
	"github.com/printdeck/paperstock/store"
	"github.com/printdeck/paperstock/testutil"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(testutil.SetupTestDB(t))
}

func newStoreDB(t *testing.T) (*store.Store, *sql.DB) {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	return store.New(conn), conn
}

func TestCreateAndGet(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	paper := testutil.CreateTestPaper(t, s, testutil.Draft("G-Print", 130, 320, 252))

	if paper.ID == "" {
		t.Fatal("expected assigned id")
	}
	if paper.CrossAdjust != (models.CrossAdjust{}) {
		t.Errorf("new paper should start with zero adjustments, got %+v", paper.CrossAdjust)
	}

	got, err := s.Get(ctx, paper.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Name != "G-Print" || got.Weight != 130 || got.Width != 320 || got.Height != 252 {
		t.Errorf("Get() = %+v", got)
	}
	if got.Coating != models.CoatingCoated || got.CrossSide != models.SideShort {
		t.Errorf("Get() enums = %s/%s", got.Coating, got.CrossSide)
	}
}

func TestCreateValidation(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		draft models.CreatePaperRequest
		field string
	}{
		{"missing name", testutil.Draft("   ", 100, 300, 200), "name"},
		{"zero weight", testutil.Draft("Test", 0, 300, 200), "weight"},
		{"negative width", testutil.Draft("Test", 100, -5, 200), "width"},
		{"zero height", testutil.Draft("Test", 100, 300, 0), "height"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Create(ctx, tt.draft)
			var ve *errs.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tt.field {
				t.Errorf("field = %q, want %q", ve.Field, tt.field)
			}
		})
	}

	t.Run("bad coating", func(t *testing.T) {
		draft := testutil.Draft("Test", 100, 300, 200)
		draft.Coating = "glossy"
		_, err := s.Create(ctx, draft)
		var ve *errs.ValidationError
		if !errors.As(err, &ve) || ve.Field != "coating" {
			t.Fatalf("expected coating ValidationError, got %v", err)
		}
	})

	t.Run("bad cross side", func(t *testing.T) {
		draft := testutil.Draft("Test", 100, 300, 200)
		draft.CrossSide = "diagonal"
		_, err := s.Create(ctx, draft)
		var ve *errs.ValidationError
		if !errors.As(err, &ve) || ve.Field != "crossSide" {
			t.Fatalf("expected crossSide ValidationError, got %v", err)
		}
	})
}

func TestCreateDuplicate(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	first := testutil.CreateTestPaper(t, s, testutil.Draft("G-Print", 130, 320, 252))

	// Same identity key, different case
	_, err := s.Create(ctx, testutil.Draft("g-print", 130, 320, 252))
	var de *errs.DuplicateError
	if !errors.As(err, &de) {
		t.Fatalf("expected DuplicateError, got %v", err)
	}
	if de.Existing.ID != first.ID {
		t.Errorf("Existing.ID = %s, want %s", de.Existing.ID, first.ID)
	}

	// Store still contains exactly one such record
	papers, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(papers) != 1 {
		t.Errorf("got %d papers, want 1", len(papers))
	}

	// A different weight is a different stock
	if _, err := s.Create(ctx, testutil.Draft("G-Print", 170, 320, 252)); err != nil {
		t.Errorf("differing weight should not collide: %v", err)
	}
}

func TestCreateWithAdjustmentOverride(t *testing.T) {
	s := newStore(t)

	lr := 0.3
	draft := testutil.Draft("Test", 100, 300, 200)
	draft.CrossAdjust = &models.CrossAdjustInput{
		Short: &models.PairInput{LeftRight: [2]*float64{&lr, nil}},
	}

	paper := testutil.CreateTestPaper(t, s, draft)

	if paper.CrossAdjust.Short.LeftRight != [2]float64{0.3, -0.3} {
		t.Errorf("short leftRight = %v", paper.CrossAdjust.Short.LeftRight)
	}
	if paper.CrossAdjust.Long != (models.AdjustmentPair{}) {
		t.Errorf("long should start at zero, got %+v", paper.CrossAdjust.Long)
	}
}

func TestUpdate(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	paper := testutil.CreateTestPaper(t, s, testutil.Draft("G-Print", 130, 320, 252))

	updated, err := s.Update(ctx, paper.ID, models.UpdatePaperRequest{
		Name: "G-Print Smooth", Weight: 150, Width: 320, Height: 252,
		Coating: models.CoatingUncoated, CrossSide: models.SideLong,
		PrintingWedges: true,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Name != "G-Print Smooth" || updated.Weight != 150 {
		t.Errorf("Update() = %+v", updated)
	}
	if updated.CrossSide != models.SideLong || !updated.PrintingWedges {
		t.Errorf("Update() flags = %+v", updated)
	}
}

func TestUpdateNotFound(t *testing.T) {
	s := newStore(t)

	_, err := s.Update(context.Background(), "missing", models.UpdatePaperRequest{
		Name: "X", Weight: 1, Width: 1, Height: 1,
		Coating: models.CoatingCoated, CrossSide: models.SideShort,
	})
	if !errs.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestUpdateDoesNotTouchAdjustments(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	paper := testutil.CreateTestPaper(t, s, testutil.Draft("Test", 100, 300, 200))

	in := testutil.Adjust([2]float64{0.3, -0.3}, [2]float64{0, 0}, [2]float64{0, 0}, [2]float64{0, 0})
	ca, err := adjust.NormalizeCrossAdjust(in)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.SetAdjustment(ctx, paper.ID, ca); err != nil {
		t.Fatal(err)
	}

	updated, err := s.Update(ctx, paper.ID, models.UpdatePaperRequest{
		Name: "Renamed", Weight: 100, Width: 300, Height: 200,
		Coating: models.CoatingCoated, CrossSide: models.SideShort,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.CrossAdjust.Short.LeftRight != [2]float64{0.3, -0.3} {
		t.Errorf("update must not alter adjustments, got %v", updated.CrossAdjust.Short.LeftRight)
	}
}

func TestUpdateDuplicateCollision(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	testutil.CreateTestPaper(t, s, testutil.Draft("G-Print", 130, 320, 252))
	other := testutil.CreateTestPaper(t, s, testutil.Draft("Magno", 130, 320, 252))

	_, err := s.Update(ctx, other.ID, models.UpdatePaperRequest{
		Name: "G-Print", Weight: 130, Width: 320, Height: 252,
		Coating: models.CoatingCoated, CrossSide: models.SideShort,
	})
	var de *errs.DuplicateError
	if !errors.As(err, &de) {
		t.Fatalf("expected DuplicateError, got %v", err)
	}

	// Renaming a record onto its own key is not a collision
	if _, err := s.Update(ctx, other.ID, models.UpdatePaperRequest{
		Name: "Magno", Weight: 130, Width: 320, Height: 252,
		Coating: models.CoatingUncoated, CrossSide: models.SideShort,
	}); err != nil {
		t.Errorf("self-update should not collide: %v", err)
	}
}

func TestSetAdjustmentRoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	paper := testutil.CreateTestPaper(t, s, testutil.Draft("Test", 100, 300, 200))

	in := testutil.Adjust(
		[2]float64{0.3, -0.3}, [2]float64{0.1, -0.1},
		[2]float64{-0.5, 0.5}, [2]float64{0, 0},
	)
	ca, err := adjust.NormalizeCrossAdjust(in)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.SetAdjustment(ctx, paper.ID, ca); err != nil {
		t.Fatalf("SetAdjustment() error = %v", err)
	}

	got, err := s.Get(ctx, paper.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.CrossAdjust != ca {
		t.Errorf("round trip mismatch: got %+v, want %+v", got.CrossAdjust, ca)
	}

	// The zero-sum invariant holds for everything stored
	for _, pair := range []models.AdjustmentPair{got.CrossAdjust.Short, got.CrossAdjust.Long} {
		if math.Abs(pair.LeftRight[0]+pair.LeftRight[1]) > adjust.Tolerance {
			t.Errorf("stored leftRight %v violates invariant", pair.LeftRight)
		}
		if math.Abs(pair.UpDown[0]+pair.UpDown[1]) > adjust.Tolerance {
			t.Errorf("stored upDown %v violates invariant", pair.UpDown)
		}
	}
}

func TestSetAdjustmentRejectsInvalid(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	paper := testutil.CreateTestPaper(t, s, testutil.Draft("Test", 100, 300, 200))

	broken := models.CrossAdjust{
		Short: models.AdjustmentPair{LeftRight: [2]float64{0.3, 0.3}},
	}
	_, err := s.SetAdjustment(ctx, paper.ID, broken)
	var ce *errs.ConstraintError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConstraintError, got %v", err)
	}

	// Failing validation leaves the record and the log untouched
	got, err := s.Get(ctx, paper.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.CrossAdjust != (models.CrossAdjust{}) {
		t.Errorf("record changed despite rejection: %+v", got.CrossAdjust)
	}
	entries, err := s.History(ctx, paper.ID, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("rejected command wrote %d history entries", len(entries))
	}
}

func TestSetAdjustmentNotFound(t *testing.T) {
	s := newStore(t)

	_, err := s.SetAdjustment(context.Background(), "missing", models.CrossAdjust{})
	if !errs.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestSetCrossSideIdempotent(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	paper := testutil.CreateTestPaper(t, s, testutil.Draft("Test", 100, 300, 200))

	first, err := s.SetCrossSide(ctx, paper.ID, models.SideShort)
	if err != nil {
		t.Fatalf("SetCrossSide() error = %v", err)
	}
	second, err := s.SetCrossSide(ctx, paper.ID, models.SideShort)
	if err != nil {
		t.Fatalf("SetCrossSide() error = %v", err)
	}
	if first != second {
		t.Errorf("repeated SetCrossSide changed the record:\n%+v\n%+v", first, second)
	}

	// Orientation changes are not audited
	entries, err := s.History(ctx, paper.ID, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("SetCrossSide wrote %d history entries", len(entries))
	}
}

func TestSetCrossSideKeepsOffsets(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	paper := testutil.CreateTestPaper(t, s, testutil.Draft("Test", 100, 300, 200))

	in := testutil.Adjust([2]float64{0.3, -0.3}, [2]float64{0, 0}, [2]float64{0, 0}, [2]float64{0, 0})
	ca, _ := adjust.NormalizeCrossAdjust(in)
	if _, err := s.SetAdjustment(ctx, paper.ID, ca); err != nil {
		t.Fatal(err)
	}

	flipped, err := s.SetCrossSide(ctx, paper.ID, models.SideLong)
	if err != nil {
		t.Fatal(err)
	}
	if flipped.CrossSide != models.SideLong {
		t.Errorf("cross side = %s", flipped.CrossSide)
	}
	if flipped.CrossAdjust != ca {
		t.Errorf("toggle altered stored offsets: %+v", flipped.CrossAdjust)
	}
}

func TestDeleteCascadesHistory(t *testing.T) {
	s, conn := newStoreDB(t)
	ctx := context.Background()

	// The cascade only fires with foreign keys enforced; a silently
	// ignored connection option would leave orphan history rows.
	var fk int
	if err := conn.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&fk); err != nil {
		t.Fatalf("read foreign_keys pragma: %v", err)
	}
	if fk != 1 {
		t.Fatal("foreign key enforcement is off")
	}

	paper := testutil.CreateTestPaper(t, s, testutil.Draft("Test", 100, 300, 200))

	in := testutil.Adjust([2]float64{0.3, -0.3}, [2]float64{0, 0}, [2]float64{0, 0}, [2]float64{0, 0})
	ca, _ := adjust.NormalizeCrossAdjust(in)
	if _, err := s.SetAdjustment(ctx, paper.ID, ca); err != nil {
		t.Fatal(err)
	}

	if err := s.Delete(ctx, paper.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := s.Get(ctx, paper.ID); !errs.IsNotFound(err) {
		t.Errorf("Get after delete = %v, want NotFoundError", err)
	}

	// History on the deleted id is NotFound, not an empty sequence
	if _, err := s.History(ctx, paper.ID, 3); !errs.IsNotFound(err) {
		t.Errorf("History after delete = %v, want NotFoundError", err)
	}

	// The rows are physically gone, not merely unreachable
	var orphans int
	err := conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM paper_history WHERE paper_id = $1`, paper.ID,
	).Scan(&orphans)
	if err != nil {
		t.Fatalf("count history rows: %v", err)
	}
	if orphans != 0 {
		t.Errorf("%d orphan history rows survived the delete", orphans)
	}

	if err := s.Delete(ctx, paper.ID); !errs.IsNotFound(err) {
		t.Errorf("second delete = %v, want NotFoundError", err)
	}
}

func TestListOrder(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	testutil.CreateTestPaper(t, s, testutil.Draft("Magno Volume", 130, 320, 252))
	testutil.CreateTestPaper(t, s, testutil.Draft("G-Print", 170, 320, 252))
	testutil.CreateTestPaper(t, s, testutil.Draft("G-Print", 100, 320, 252))

	papers, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(papers) != 3 {
		t.Fatalf("got %d papers", len(papers))
	}
	if papers[0].Name != "G-Print" || papers[0].Weight != 100 {
		t.Errorf("papers[0] = %s %d", papers[0].Name, papers[0].Weight)
	}
	if papers[1].Weight != 170 || papers[2].Name != "Magno Volume" {
		t.Errorf("order wrong: %s %d / %s", papers[1].Name, papers[1].Weight, papers[2].Name)
	}
}

func TestFindByCategoryBoundary(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	testutil.CreateTestPaper(t, s, testutil.Draft("G-Print 100", 100, 320, 252))
	testutil.CreateTestPaper(t, s, testutil.Draft("G-Print", 130, 320, 252))
	testutil.CreateTestPaper(t, s, testutil.Draft("G-Printer Special", 130, 320, 252))

	papers, err := s.FindByCategory(ctx, "G-Print")
	if err != nil {
		t.Fatal(err)
	}
	if len(papers) != 2 {
		t.Fatalf("got %d papers, want 2 (token boundary must exclude G-Printer)", len(papers))
	}
	for _, p := range papers {
		if p.Name == "G-Printer Special" {
			t.Errorf("G-Printer Special matched category G-Print")
		}
	}
}

func TestFindByCategoryLiteralToken(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	// Tokens containing LIKE metacharacters match literally
	testutil.CreateTestPaper(t, s, testutil.Draft("100% Recycled", 100, 320, 252))
	testutil.CreateTestPaper(t, s, testutil.Draft("1000gsm Board", 130, 320, 252))
	testutil.CreateTestPaper(t, s, testutil.Draft("A_B Stock", 130, 320, 252))
	testutil.CreateTestPaper(t, s, testutil.Draft("AxB Stock", 130, 320, 252))

	papers, err := s.FindByCategory(ctx, "100%")
	if err != nil {
		t.Fatal(err)
	}
	if len(papers) != 1 || papers[0].Name != "100% Recycled" {
		t.Errorf("category 100%% matched %+v, want only 100%% Recycled", papers)
	}

	papers, err = s.FindByCategory(ctx, "A_B")
	if err != nil {
		t.Fatal(err)
	}
	if len(papers) != 1 || papers[0].Name != "A_B Stock" {
		t.Errorf("category A_B matched %+v, want only A_B Stock", papers)
	}
}
