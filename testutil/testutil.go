package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/printdeck/paperstock/cliparse"
	"github.com/printdeck/paperstock/db"
	"github.com/printdeck/paperstock/models"
	"github.com/printdeck/paperstock/store"
)

// SetupTestDB creates a fresh SQLite database in a per-test temp dir
// with the full schema applied.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := cliparse.Config{
		Port:         3000,
		DatabaseType: "sqlite",
		DatabasePath: filepath.Join(t.TempDir(), "paperstock_test.db"),
	}

	conn, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// Draft returns a valid create request with sensible defaults.
// Override fields on the returned value as needed.
func Draft(name string, weight, width, height int) models.CreatePaperRequest {
	return models.CreatePaperRequest{
		Name:      name,
		Weight:    weight,
		Width:     width,
		Height:    height,
		Coating:   models.CoatingCoated,
		CrossSide: models.SideShort,
	}
}

// CreateTestPaper inserts a paper through the store and returns it.
func CreateTestPaper(t *testing.T, s *store.Store, draft models.CreatePaperRequest) models.PaperType {
	t.Helper()

	paper, err := s.Create(context.Background(), draft)
	if err != nil {
		t.Fatalf("Failed to create test paper: %v", err)
	}
	return paper
}

// Adjust builds a whole-object adjustment payload with explicit
// values for every field of both orientations.
func Adjust(shortLR, shortUD, longLR, longUD [2]float64) models.CrossAdjustInput {
	pair := func(v [2]float64) *models.PairInput {
		a, b := v[0], v[1]
		return &models.PairInput{
			LeftRight: [2]*float64{&a, &b},
		}
	}
	short := pair(shortLR)
	short.UpDown = [2]*float64{&shortUD[0], &shortUD[1]}
	long := pair(longLR)
	long.UpDown = [2]*float64{&longUD[0], &longUD[1]}
	return models.CrossAdjustInput{Short: short, Long: long}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
