package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/savaneats/savan/internal/adapter/logger"
	"github.com/savaneats/savan/internal/catalog"
)

type MenuHandler struct {
	logger logger.Logger
}

func NewMenuHandler(logger logger.Logger) *MenuHandler {
	return &MenuHandler{
		logger: logger,
	}
}

// HandleMenu serves /menu, /menu/{id} and /menu/slug/{slug}. The
// category query parameter filters the full listing.
func (h *MenuHandler) HandleMenu(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	switch {
	case len(parts) == 1:
		h.listItems(w, r)
	case len(parts) == 2:
		h.getItemByID(w, parts[1])
	case len(parts) == 3 && parts[1] == "slug":
		h.getItemBySlug(w, parts[2])
	default:
		respondError(w, "Not found", http.StatusNotFound, nil)
	}
}

func (h *MenuHandler) listItems(w http.ResponseWriter, r *http.Request) {
	items := catalog.Items()
	if category := r.URL.Query().Get("category"); category != "" {
		items = catalog.ByCategory(category)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items":      items,
		"categories": catalog.Categories(),
	})
}

func (h *MenuHandler) getItemByID(w http.ResponseWriter, id string) {
	item, ok := catalog.ByID(id)
	if !ok {
		respondError(w, "Menu item not found", http.StatusNotFound, nil)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *MenuHandler) getItemBySlug(w http.ResponseWriter, slug string) {
	item, ok := catalog.BySlug(slug)
	if !ok {
		respondError(w, "Menu item not found", http.StatusNotFound, nil)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// GetMealPeriod reports the current meal window for the storefront
// greeting.
func (h *MenuHandler) GetMealPeriod(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
		return
	}

	respondJSON(w, http.StatusOK, catalog.CurrentMealPeriod(time.Now()))
}
