package amqp

import (
	"context"
	"encoding/json"

	"github.com/savaneats/savan/internal/adapter/logger"
	"github.com/savaneats/savan/internal/interfaces"
)

type OrderHandler struct {
	service interfaces.KitchenService
	logger  logger.Logger
}

func NewOrderHandler(service interfaces.KitchenService, logger logger.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger,
	}
}

func (h *OrderHandler) HandleOrder(ctx context.Context, body []byte) error {
	var msg interfaces.OrderPlacedMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		h.logger.Error("message_parse_failed", "Failed to parse order message", "", nil, err)
		return err
	}

	return h.service.ProcessOrder(ctx, msg)
}
