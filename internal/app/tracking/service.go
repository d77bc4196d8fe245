package tracking

import (
	"context"
	"time"

	"github.com/savaneats/savan/internal/adapter/logger"
	"github.com/savaneats/savan/internal/domain"
	"github.com/savaneats/savan/internal/interfaces"
)

// Simulators that have not heartbeated within this window are reported
// offline even if they never deregistered.
const heartbeatTimeout = 60 * time.Second

type Service struct {
	orderRepo  interfaces.OrderRepository
	workerRepo interfaces.WorkerRepository
	logger     logger.Logger
}

func NewService(orderRepo interfaces.OrderRepository, workerRepo interfaces.WorkerRepository, logger logger.Logger) *Service {
	return &Service{
		orderRepo:  orderRepo,
		workerRepo: workerRepo,
		logger:     logger,
	}
}

// GetOrderStatus looks the order up for the customer who placed it.
// Someone else's order number reads as not found: the response carries
// the verification code, which only the owner may see.
func (s *Service) GetOrderStatus(ctx context.Context, customerID, orderNumber string) (*interfaces.TrackingOrderResponse, error) {
	order, err := s.findOwned(ctx, customerID, orderNumber)
	if err != nil {
		return nil, err
	}

	return &interfaces.TrackingOrderResponse{
		OrderNumber:      order.Number,
		CurrentStatus:    order.Status,
		Total:            order.Total,
		VerificationCode: order.VerificationCode,
		UpdatedAt:        order.UpdatedAt,
		ProcessedBy:      order.ProcessedBy,
	}, nil
}

func (s *Service) GetOrderHistory(ctx context.Context, customerID, orderNumber string) ([]*domain.StatusLog, error) {
	order, err := s.findOwned(ctx, customerID, orderNumber)
	if err != nil {
		return nil, err
	}

	return s.orderRepo.GetStatusHistory(ctx, order.ID)
}

func (s *Service) findOwned(ctx context.Context, customerID, orderNumber string) (*domain.Order, error) {
	order, err := s.orderRepo.FindByNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, customerID string) ([]*domain.Order, error) {
	return s.orderRepo.ListByCustomer(ctx, customerID)
}

// GetActiveOrder picks the newest order that has not reached a
// terminal status.
func (s *Service) GetActiveOrder(ctx context.Context, customerID string) (*domain.Order, error) {
	orders, err := s.orderRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	for _, order := range orders {
		if !order.Status.IsTerminal() {
			return order, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (s *Service) GetWorkersStatus(ctx context.Context) ([]*interfaces.TrackingWorkerResponse, error) {
	workers, err := s.workerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*interfaces.TrackingWorkerResponse, 0, len(workers))
	for _, w := range workers {
		status := domain.WorkerStatusOffline
		if w.IsOnline(heartbeatTimeout) {
			status = domain.WorkerStatusOnline
		}

		responses = append(responses, &interfaces.TrackingWorkerResponse{
			WorkerName:      w.Name,
			Status:          status,
			OrdersProcessed: w.OrdersProcessed,
			LastSeen:        w.LastSeen,
		})
	}

	return responses, nil
}
