package router

import (
	"net/http"
	"time"

	"github.com/printdeck/paperstock/catalog"
	"github.com/printdeck/paperstock/handlers"
	"github.com/printdeck/paperstock/middleware"
	"github.com/printdeck/paperstock/models"
)

// ServiceName appears in the health payload.
const ServiceName = "Paperstock Catalog Manager"

func NewRouter(svc *catalog.Service) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	paperHandler := handlers.NewPaperHandler(svc)
	adjustmentHandler := handlers.NewAdjustmentHandler(svc)
	categoryHandler := handlers.NewCategoryHandler(svc)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
			Status:    "OK",
			Service:   ServiceName,
			Timestamp: time.Now().UTC(),
		})
	})

	// Paper catalog
	mux.HandleFunc("GET /api/papers", middleware.WithLogging(paperHandler.ListPapers))
	mux.HandleFunc("POST /api/papers", middleware.WithLogging(paperHandler.CreatePaper))
	mux.HandleFunc("GET /api/papers/{id}", middleware.WithLogging(paperHandler.GetPaper))
	mux.HandleFunc("PUT /api/papers/{id}", middleware.WithLogging(paperHandler.UpdatePaper))
	mux.HandleFunc("DELETE /api/papers/{id}", middleware.WithLogging(paperHandler.DeletePaper))

	// Cross adjustments and audit history
	mux.HandleFunc("PATCH /api/papers/{id}/adjustments", middleware.WithLogging(adjustmentHandler.UpdateAdjustments))
	mux.HandleFunc("PATCH /api/papers/{id}/cross-side", middleware.WithLogging(adjustmentHandler.SetCrossSide))
	mux.HandleFunc("GET /api/papers/{id}/history", middleware.WithLogging(adjustmentHandler.History))

	// Derived category views
	mux.HandleFunc("GET /api/categories", middleware.WithLogging(categoryHandler.ListCategories))
	mux.HandleFunc("GET /api/categories/{name}/papers", middleware.WithLogging(categoryHandler.PapersByCategory))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("paperstock API v1"))
	})

	return mux
}
