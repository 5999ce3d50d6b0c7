package models

import "time"

// Coating values
const (
	CoatingCoated   = "coated"
	CoatingUncoated = "uncoated"
)

// Cross side (grain orientation) values
const (
	SideShort = "short"
	SideLong  = "long"
)

// ValidCoating reports whether s is a known coating value.
func ValidCoating(s string) bool {
	return s == CoatingCoated || s == CoatingUncoated
}

// ValidSide reports whether s is a known cross side value.
func ValidSide(s string) bool {
	return s == SideShort || s == SideLong
}

// OppositeSide returns the other grain orientation.
func OppositeSide(s string) string {
	if s == SideShort {
		return SideLong
	}
	return SideShort
}

// Domain types

// AdjustmentPair holds the alignment-cross offsets for one grain
// orientation. Each axis is an ordered (value, opposite) pair in
// millimeters that must sum to zero.
type AdjustmentPair struct {
	LeftRight [2]float64 `json:"leftRight"`
	UpDown    [2]float64 `json:"upDown"`
}

// CrossAdjust holds both orientations' adjustment pairs. Both persist
// independently; only the pair matching the paper's CrossSide is
// "active" for display.
type CrossAdjust struct {
	Short AdjustmentPair `json:"short"`
	Long  AdjustmentPair `json:"long"`
}

type PaperType struct {
	ID                   string      `json:"id"`
	Name                 string      `json:"name"`
	Weight               int         `json:"weight"`
	Width                int         `json:"width"`
	Height               int         `json:"height"`
	Coating              string      `json:"coating"`
	PrintingWedges       bool        `json:"printingWedges"`
	NozzleReconditioning bool        `json:"nozzleReconditioning"`
	CrossSide            string      `json:"crossSide"`
	CrossAdjust          CrossAdjust `json:"crossAdjust"`
	CreatedAt            time.Time   `json:"createdAt"`
	UpdatedAt            time.Time   `json:"updatedAt"`
}

// HistoryEntry is one immutable audit record of an adjustment change.
// Old and new values are full snapshots of both orientations, not diffs.
type HistoryEntry struct {
	ID        string      `json:"id"`
	PaperID   string      `json:"paperId"`
	ChangedAt time.Time   `json:"changedAt"`
	OldValues CrossAdjust `json:"oldValues"`
	NewValues CrossAdjust `json:"newValues"`
}

// Category is a derived grouping of papers by the leading
// whitespace-delimited token of their names. Never persisted.
type Category struct {
	Name       string      `json:"name"`
	PaperCount int         `json:"paperCount"`
	Papers     []PaperType `json:"papers"`
}

// Request types

// PairInput carries raw adjustment inputs for one orientation.
// Pointer elements distinguish "not supplied" from an explicit zero so
// the partner value can be derived by negation.
type PairInput struct {
	LeftRight [2]*float64 `json:"leftRight"`
	UpDown    [2]*float64 `json:"upDown"`
}

// CrossAdjustInput is the loose payload shape accepted by create and
// adjustment endpoints before normalization.
type CrossAdjustInput struct {
	Short *PairInput `json:"short"`
	Long  *PairInput `json:"long"`
}

type CreatePaperRequest struct {
	Name                 string            `json:"name"`
	Weight               int               `json:"weight"`
	Width                int               `json:"width"`
	Height               int               `json:"height"`
	Coating              string            `json:"coating"`
	CrossSide            string            `json:"crossSide"`
	PrintingWedges       bool              `json:"printingWedges"`
	NozzleReconditioning bool              `json:"nozzleReconditioning"`
	CrossAdjust          *CrossAdjustInput `json:"crossAdjust,omitempty"`
}

type UpdatePaperRequest struct {
	Name                 string `json:"name"`
	Weight               int    `json:"weight"`
	Width                int    `json:"width"`
	Height               int    `json:"height"`
	Coating              string `json:"coating"`
	CrossSide            string `json:"crossSide"`
	PrintingWedges       bool   `json:"printingWedges"`
	NozzleReconditioning bool   `json:"nozzleReconditioning"`
}

type UpdateAdjustmentRequest struct {
	CrossAdjust *CrossAdjustInput `json:"crossAdjust"`
}

type SetCrossSideRequest struct {
	CrossSide string `json:"crossSide"`
}

// Response types

type DeletePaperResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse is the uniform JSON error body. Field is set for
// per-field validation failures; Existing carries the conflicting
// record on duplicate rejections.
type ErrorResponse struct {
	Error    string     `json:"error"`
	Message  string     `json:"message,omitempty"`
	Field    string     `json:"field,omitempty"`
	Existing *PaperType `json:"existing,omitempty"`
}
