package handlers

import (
	"net/http"

	"github.com/printdeck/paperstock/catalog"
	"github.com/printdeck/paperstock/middleware"
)

type CategoryHandler struct {
	svc *catalog.Service
}

func NewCategoryHandler(svc *catalog.Service) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// ListCategories handles GET /api/categories
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, categories)
}

// PapersByCategory handles GET /api/categories/{name}/papers
func (h *CategoryHandler) PapersByCategory(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "category name is required")
		return
	}

	papers, err := h.svc.PapersInCategory(r.Context(), name)
	if err != nil {
		writeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, papers)
}
