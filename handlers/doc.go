/*
Package handlers contains HTTP request handlers for the Paperstock API.

# Handler Types

Each handler is a struct holding the catalog service:

  - PaperHandler: paper CRUD (list, get, create, update, delete)
  - AdjustmentHandler: cross-adjustment edits, orientation changes,
    and the audit history
  - CategoryHandler: derived category views

Handlers are created via constructor functions:

	paperHandler := handlers.NewPaperHandler(svc)

# Surface

	GET    /api/papers                    → ListPapers
	POST   /api/papers                    → CreatePaper
	GET    /api/papers/{id}               → GetPaper
	PUT    /api/papers/{id}               → UpdatePaper
	DELETE /api/papers/{id}               → DeletePaper
	PATCH  /api/papers/{id}/adjustments   → UpdateAdjustments (audited)
	PATCH  /api/papers/{id}/cross-side    → SetCrossSide (set or toggle)
	GET    /api/papers/{id}/history       → History (?limit=, default 3)
	GET    /api/categories                → ListCategories
	GET    /api/categories/{name}/papers  → PapersByCategory

# Error Mapping

writeError translates the errs taxonomy: validation, duplicate, and
constraint failures → 400 (duplicates embed the conflicting record),
missing records → 404, storage failures → 500.
*/
package handlers
