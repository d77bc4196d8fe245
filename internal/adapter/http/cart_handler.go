package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/savaneats/savan/internal/adapter/logger"
	"github.com/savaneats/savan/internal/catalog"
	"github.com/savaneats/savan/internal/domain"
	"github.com/savaneats/savan/internal/interfaces"
)

type CartHandler struct {
	service interfaces.CartService
	logger  logger.Logger
}

func NewCartHandler(service interfaces.CartService, logger logger.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger,
	}
}

type AddItemRequest struct {
	MenuItemID string             `json:"menu_item_id"`
	Quantity   int                `json:"quantity"`
	Recipient  string             `json:"recipient,omitempty"`
	Options    domain.LineOptions `json:"options"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CartResponse struct {
	CustomerID string            `json:"customer_id"`
	Lines      []domain.CartLine `json:"lines"`
	Subtotal   int64             `json:"subtotal"`
}

// HandleCart serves /cart and /cart/items/{lineID}.
func (h *CartHandler) HandleCart(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	switch {
	case len(parts) == 1:
		switch r.Method {
		case http.MethodGet:
			h.getCart(w, r)
		case http.MethodDelete:
			h.clearCart(w, r)
		default:
			respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
		}
	case len(parts) == 2 && parts[1] == "items":
		if r.Method != http.MethodPost {
			respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
			return
		}
		h.addItem(w, r)
	case len(parts) == 3 && parts[1] == "items":
		switch r.Method {
		case http.MethodPatch:
			h.updateQuantity(w, r, parts[2])
		case http.MethodDelete:
			h.removeItem(w, r, parts[2])
		default:
			respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
		}
	default:
		respondError(w, "Not found", http.StatusNotFound, nil)
	}
}

func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.GetCart(r.Context(), CustomerID(r.Context()))
	if err != nil {
		respondError(w, "Internal server error", http.StatusInternalServerError, nil)
		return
	}
	h.respondCart(w, http.StatusOK, cart)
}

func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if validationErrors := validateAddItemRequest(req); len(validationErrors) > 0 {
		respondError(w, "Validation failed", http.StatusBadRequest, validationErrors)
		return
	}

	// The server owns the price snapshot; the client only names the item.
	item, ok := catalog.ByID(req.MenuItemID)
	if !ok {
		respondError(w, "Menu item not found", http.StatusNotFound, nil)
		return
	}

	line := domain.CartLine{
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
		Image:      item.Image,
		Quantity:   req.Quantity,
		Recipient:  strings.TrimSpace(req.Recipient),
		Options:    req.Options,
	}

	cart, err := h.service.AddItem(r.Context(), CustomerID(r.Context()), line)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuantity) {
			respondError(w, err.Error(), http.StatusBadRequest, nil)
			return
		}
		respondError(w, "Internal server error", http.StatusInternalServerError, nil)
		return
	}

	h.respondCart(w, http.StatusCreated, cart)
}

func (h *CartHandler) updateQuantity(w http.ResponseWriter, r *http.Request, lineID string) {
	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	cart, err := h.service.UpdateQuantity(r.Context(), CustomerID(r.Context()), lineID, req.Quantity)
	if err != nil {
		respondError(w, "Internal server error", http.StatusInternalServerError, nil)
		return
	}

	h.respondCart(w, http.StatusOK, cart)
}

func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request, lineID string) {
	cart, err := h.service.RemoveItem(r.Context(), CustomerID(r.Context()), lineID)
	if err != nil {
		respondError(w, "Internal server error", http.StatusInternalServerError, nil)
		return
	}

	h.respondCart(w, http.StatusOK, cart)
}

func (h *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearCart(r.Context(), CustomerID(r.Context())); err != nil {
		respondError(w, "Internal server error", http.StatusInternalServerError, nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) respondCart(w http.ResponseWriter, statusCode int, cart *domain.Cart) {
	respondJSON(w, statusCode, CartResponse{
		CustomerID: cart.CustomerID,
		Lines:      cart.Lines,
		Subtotal:   cart.Subtotal(),
	})
}

func validateAddItemRequest(req AddItemRequest) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(req.MenuItemID) == "" {
		errors = append(errors, ValidationError{
			Field:   "menu_item_id",
			Message: "menu item id is required",
		})
	}

	if req.Quantity < 1 {
		errors = append(errors, ValidationError{
			Field:   "quantity",
			Message: "quantity must be at least 1",
		})
	} else if req.Quantity > 50 {
		errors = append(errors, ValidationError{
			Field:   "quantity",
			Message: "quantity must not exceed 50",
		})
	}

	if len(req.Recipient) > 100 {
		errors = append(errors, ValidationError{
			Field:   "recipient",
			Message: "recipient must not exceed 100 characters",
		})
	}

	return errors
}
