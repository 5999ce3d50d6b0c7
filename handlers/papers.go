package handlers

import (
	"log/slog"
	"net/http"

	"github.com/printdeck/paperstock/catalog"
	"github.com/printdeck/paperstock/middleware"
	"github.com/printdeck/paperstock/models"
)

type PaperHandler struct {
	svc *catalog.Service
}

func NewPaperHandler(svc *catalog.Service) *PaperHandler {
	return &PaperHandler{svc: svc}
}

// ListPapers handles GET /api/papers
func (h *PaperHandler) ListPapers(w http.ResponseWriter, r *http.Request) {
	papers, err := h.svc.ListPapers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, papers)
}

// GetPaper handles GET /api/papers/{id}
func (h *PaperHandler) GetPaper(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "paper id is required")
		return
	}

	paper, err := h.svc.GetPaper(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, paper)
}

// CreatePaper handles POST /api/papers
func (h *PaperHandler) CreatePaper(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePaperRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	paper, err := h.svc.AddPaper(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	slog.Info("paper created", "paper_id", paper.ID, "name", paper.Name)
	middleware.JSONResponse(w, http.StatusCreated, paper)
}

// UpdatePaper handles PUT /api/papers/{id}
func (h *PaperHandler) UpdatePaper(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "paper id is required")
		return
	}

	var req models.UpdatePaperRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	paper, err := h.svc.EditPaper(r.Context(), id, req)
	if err != nil {
		writeError(w, err)
		return
	}

	slog.Info("paper updated", "paper_id", paper.ID, "name", paper.Name)
	middleware.JSONResponse(w, http.StatusOK, paper)
}

// DeletePaper handles DELETE /api/papers/{id}
func (h *PaperHandler) DeletePaper(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "paper id is required")
		return
	}

	if err := h.svc.RemovePaper(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	slog.Info("paper deleted", "paper_id", id)
	middleware.JSONResponse(w, http.StatusOK, models.DeletePaperResponse{
		Message: "Paper type deleted",
	})
}
