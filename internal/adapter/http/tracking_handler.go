package http

import (
	"net/http"
	"strings"

	"github.com/savaneats/savan/internal/adapter/logger"
	"github.com/savaneats/savan/internal/interfaces"
)

type TrackingHandler struct {
	service  interfaces.TrackingService
	checkout *CheckoutHandler
	logger   logger.Logger
}

func NewTrackingHandler(service interfaces.TrackingService, checkout *CheckoutHandler, logger logger.Logger) *TrackingHandler {
	return &TrackingHandler{
		service:  service,
		checkout: checkout,
		logger:   logger,
	}
}

// HandleOrders serves /orders, /orders/{number}/status,
// /orders/{number}/history and /orders/{number}/cancel.
func (h *TrackingHandler) HandleOrders(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	switch {
	case len(parts) == 1:
		switch r.Method {
		case http.MethodGet:
			h.listOrders(w, r)
		case http.MethodPost:
			h.checkout.PlaceOrder(w, r)
		default:
			respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
		}
	case len(parts) == 2 && parts[1] == "active":
		h.getActiveOrder(w, r)
	case len(parts) == 3 && parts[2] == "status":
		h.getOrderStatus(w, r, parts[1])
	case len(parts) == 3 && parts[2] == "history":
		h.getOrderHistory(w, r, parts[1])
	case len(parts) == 3 && parts[2] == "cancel":
		h.checkout.CancelOrder(w, r, parts[1])
	default:
		respondError(w, "Not found", http.StatusNotFound, nil)
	}
}

func (h *TrackingHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context(), CustomerID(r.Context()))
	if err != nil {
		respondError(w, "Internal server error", http.StatusInternalServerError, nil)
		return
	}

	resp := make([]map[string]interface{}, len(orders))
	for i, order := range orders {
		resp[i] = map[string]interface{}{
			"order_number": order.Number,
			"status":       order.Status,
			"fulfillment":  order.Fulfillment,
			"items":        order.Items,
			"subtotal":     order.Subtotal,
			"delivery_fee": order.DeliveryFee,
			"total":        order.Total,
			"created_at":   order.CreatedAt,
		}
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *TrackingHandler) getActiveOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
		return
	}

	order, err := h.service.GetActiveOrder(r.Context(), CustomerID(r.Context()))
	if err != nil {
		respondError(w, "No active order", http.StatusNotFound, nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"order_number":      order.Number,
		"status":            order.Status,
		"fulfillment":       order.Fulfillment,
		"total":             order.Total,
		"verification_code": order.VerificationCode,
		"created_at":        order.CreatedAt,
	})
}

func (h *TrackingHandler) getOrderStatus(w http.ResponseWriter, r *http.Request, orderNumber string) {
	if r.Method != http.MethodGet {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
		return
	}

	result, err := h.service.GetOrderStatus(r.Context(), CustomerID(r.Context()), orderNumber)
	if err != nil {
		respondError(w, "Order not found", http.StatusNotFound, nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"order_number":      result.OrderNumber,
		"current_status":    result.CurrentStatus,
		"total":             result.Total,
		"verification_code": result.VerificationCode,
		"updated_at":        result.UpdatedAt,
		"processed_by":      result.ProcessedBy,
	})
}

func (h *TrackingHandler) getOrderHistory(w http.ResponseWriter, r *http.Request, orderNumber string) {
	if r.Method != http.MethodGet {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
		return
	}

	history, err := h.service.GetOrderHistory(r.Context(), CustomerID(r.Context()), orderNumber)
	if err != nil {
		respondError(w, "Order not found", http.StatusNotFound, nil)
		return
	}

	resp := make([]map[string]interface{}, len(history))
	for i, log := range history {
		resp[i] = map[string]interface{}{
			"status":     log.Status,
			"timestamp":  log.ChangedAt,
			"changed_by": log.ChangedBy,
		}
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *TrackingHandler) GetWorkersStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
		return
	}

	workers, err := h.service.GetWorkersStatus(r.Context())
	if err != nil {
		respondError(w, "Internal server error", http.StatusInternalServerError, nil)
		return
	}

	resp := make([]map[string]interface{}, len(workers))
	for i, worker := range workers {
		resp[i] = map[string]interface{}{
			"worker_name":      worker.WorkerName,
			"status":           worker.Status,
			"orders_processed": worker.OrdersProcessed,
			"last_seen":        worker.LastSeen,
		}
	}

	respondJSON(w, http.StatusOK, resp)
}
