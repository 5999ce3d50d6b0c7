package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/printdeck/paperstock/catalog"
	"github.com/printdeck/paperstock/middleware"
	"github.com/printdeck/paperstock/models"
)

type AdjustmentHandler struct {
	svc *catalog.Service
}

func NewAdjustmentHandler(svc *catalog.Service) *AdjustmentHandler {
	return &AdjustmentHandler{svc: svc}
}

// UpdateAdjustments handles PATCH /api/papers/{id}/adjustments
func (h *AdjustmentHandler) UpdateAdjustments(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "paper id is required")
		return
	}

	var req models.UpdateAdjustmentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.CrossAdjust == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "crossAdjust is required")
		return
	}

	paper, err := h.svc.EditAdjustment(r.Context(), id, *req.CrossAdjust)
	if err != nil {
		writeError(w, err)
		return
	}

	slog.Info("adjustments updated", "paper_id", paper.ID)
	middleware.JSONResponse(w, http.StatusOK, paper)
}

// SetCrossSide handles PATCH /api/papers/{id}/cross-side. A body
// naming a side sets it explicitly; an empty crossSide toggles.
func (h *AdjustmentHandler) SetCrossSide(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "paper id is required")
		return
	}

	var req models.SetCrossSideRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var paper models.PaperType
	var err error
	if req.CrossSide == "" {
		paper, err = h.svc.ToggleOrientation(r.Context(), id)
	} else {
		paper, err = h.svc.SetOrientation(r.Context(), id, req.CrossSide)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	slog.Info("cross side set", "paper_id", paper.ID, "cross_side", paper.CrossSide)
	middleware.JSONResponse(w, http.StatusOK, paper)
}

// History handles GET /api/papers/{id}/history
func (h *AdjustmentHandler) History(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "paper id is required")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	entries, err := h.svc.History(r.Context(), id, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, entries)
}
