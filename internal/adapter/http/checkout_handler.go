package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/savaneats/savan/internal/adapter/logger"
	"github.com/savaneats/savan/internal/app/checkout"
	"github.com/savaneats/savan/internal/domain"
	"github.com/savaneats/savan/internal/interfaces"
)

type CheckoutHandler struct {
	service interfaces.CheckoutService
	logger  logger.Logger
}

func NewCheckoutHandler(service interfaces.CheckoutService, logger logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		logger:  logger,
	}
}

type PlaceOrderRequest struct {
	Fulfillment   string `json:"fulfillment"`
	Address       string `json:"address,omitempty"`
	PaymentMethod string `json:"payment_method"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	Instructions  string `json:"instructions,omitempty"`
}

type PlaceOrderResponse struct {
	OrderNumber      string `json:"order_number"`
	Status           string `json:"status"`
	Subtotal         int64  `json:"subtotal"`
	DeliveryFee      int64  `json:"delivery_fee"`
	Total            int64  `json:"total"`
	VerificationCode string `json:"verification_code"`
}

func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
		return
	}

	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if validationErrors := validatePlaceOrderRequest(req); len(validationErrors) > 0 {
		h.logger.Error("validation_failed", "Checkout validation failed", "", map[string]interface{}{
			"errors": validationErrors,
		}, errors.New("validation failed"))

		respondError(w, "Validation failed", http.StatusBadRequest, validationErrors)
		return
	}

	cmd := interfaces.PlaceOrderCommand{
		CustomerID:    CustomerID(r.Context()),
		Fulfillment:   domain.FulfillmentMode(req.Fulfillment),
		Address:       strings.TrimSpace(req.Address),
		PaymentMethod: req.PaymentMethod,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		Instructions:  strings.TrimSpace(req.Instructions),
	}

	order, err := h.service.PlaceOrder(r.Context(), cmd)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			respondError(w, "Cart is empty", http.StatusConflict, nil)
			return
		}
		h.logger.Error("order_creation_failed", "Failed to place order", "", nil, err)
		respondError(w, err.Error(), http.StatusBadRequest, nil)
		return
	}

	respondJSON(w, http.StatusCreated, PlaceOrderResponse{
		OrderNumber:      order.Number,
		Status:           string(order.Status),
		Subtotal:         order.Subtotal,
		DeliveryFee:      order.DeliveryFee,
		Total:            order.Total,
		VerificationCode: order.VerificationCode,
	})
}

func (h *CheckoutHandler) CancelOrder(w http.ResponseWriter, r *http.Request, orderNumber string) {
	if r.Method != http.MethodPost {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
		return
	}

	order, err := h.service.CancelOrder(r.Context(), CustomerID(r.Context()), orderNumber)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStatusTransition) {
			respondError(w, "Order can no longer be cancelled", http.StatusConflict, nil)
			return
		}
		respondError(w, "Order not found", http.StatusNotFound, nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"order_number": order.Number,
		"status":       order.Status,
	})
}

func validatePlaceOrderRequest(req PlaceOrderRequest) []ValidationError {
	var errors []ValidationError

	mode := domain.FulfillmentMode(req.Fulfillment)
	if !mode.Valid() {
		errors = append(errors, ValidationError{
			Field:   "fulfillment",
			Message: "fulfillment must be one of: delivery, pickup, dine_in",
		})
	}

	if mode == domain.FulfillmentDelivery {
		if len(strings.TrimSpace(req.Address)) < 5 {
			errors = append(errors, ValidationError{
				Field:   "address",
				Message: "address is required for delivery orders",
			})
		}
	}

	if strings.TrimSpace(req.PaymentMethod) == "" {
		errors = append(errors, ValidationError{
			Field:   "payment_method",
			Message: "payment method is required",
		})
	}

	if len(req.Instructions) > 500 {
		errors = append(errors, ValidationError{
			Field:   "instructions",
			Message: "instructions must not exceed 500 characters",
		})
	}

	return errors
}
