package http

import (
	"net/http"
	"strings"

	"github.com/savaneats/savan/internal/adapter/logger"
	"github.com/savaneats/savan/internal/catalog"
	"github.com/savaneats/savan/internal/interfaces"
)

type FavoritesHandler struct {
	service interfaces.FavoritesService
	logger  logger.Logger
}

func NewFavoritesHandler(service interfaces.FavoritesService, logger logger.Logger) *FavoritesHandler {
	return &FavoritesHandler{
		service: service,
		logger:  logger,
	}
}

// HandleFavorites serves /favorites and /favorites/{itemID}/toggle.
func (h *FavoritesHandler) HandleFavorites(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	switch {
	case len(parts) == 1:
		if r.Method != http.MethodGet {
			respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
			return
		}
		h.listFavorites(w, r)
	case len(parts) == 3 && parts[2] == "toggle":
		if r.Method != http.MethodPost {
			respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
			return
		}
		h.toggleFavorite(w, r, parts[1])
	default:
		respondError(w, "Not found", http.StatusNotFound, nil)
	}
}

func (h *FavoritesHandler) listFavorites(w http.ResponseWriter, r *http.Request) {
	ids, err := h.service.List(r.Context(), CustomerID(r.Context()))
	if err != nil {
		respondError(w, "Internal server error", http.StatusInternalServerError, nil)
		return
	}

	// Stored ids whose items have left the menu are dropped from the
	// response rather than surfaced as holes.
	items := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		if item, ok := catalog.ByID(id); ok {
			items = append(items, item)
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
	})
}

func (h *FavoritesHandler) toggleFavorite(w http.ResponseWriter, r *http.Request, itemID string) {
	if _, ok := catalog.ByID(itemID); !ok {
		respondError(w, "Menu item not found", http.StatusNotFound, nil)
		return
	}

	isFavorite, err := h.service.Toggle(r.Context(), CustomerID(r.Context()), itemID)
	if err != nil {
		respondError(w, "Internal server error", http.StatusInternalServerError, nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"item_id":     itemID,
		"is_favorite": isFavorite,
	})
}
