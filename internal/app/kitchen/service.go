package kitchen

import (
	"context"
	"fmt"
	"time"

	"github.com/savaneats/savan/internal/adapter/logger"
	"github.com/savaneats/savan/internal/config"
	"github.com/savaneats/savan/internal/domain"
	"github.com/savaneats/savan/internal/interfaces"
)

// Service simulates kitchen progress for placed orders: it walks each
// order through preparing, out_for_delivery and delivered with fixed
// delays, persisting and publishing every step. The store-side state
// machine still validates each edge; the simulator only supplies the
// timing.
type Service struct {
	orderRepo         interfaces.OrderRepository
	workerRepo        interfaces.WorkerRepository
	publisher         interfaces.MessagePublisher
	logger            logger.Logger
	workerName        string
	heartbeatInterval time.Duration
	preparingDelay    time.Duration
	dispatchDelay     time.Duration
	deliveryDelay     time.Duration
}

func NewService(
	orderRepo interfaces.OrderRepository,
	workerRepo interfaces.WorkerRepository,
	publisher interfaces.MessagePublisher,
	logger logger.Logger,
	workerName string,
	heartbeatInterval int,
	cfg config.KitchenConfig,
) *Service {
	return &Service{
		orderRepo:         orderRepo,
		workerRepo:        workerRepo,
		publisher:         publisher,
		logger:            logger,
		workerName:        workerName,
		heartbeatInterval: time.Duration(heartbeatInterval) * time.Second,
		preparingDelay:    time.Duration(cfg.PreparingDelaySeconds) * time.Second,
		dispatchDelay:     time.Duration(cfg.DispatchDelaySeconds) * time.Second,
		deliveryDelay:     time.Duration(cfg.DeliveryDelaySeconds) * time.Second,
	}
}

// Start registers the simulator instance and begins heartbeating.
func (s *Service) Start(ctx context.Context) error {
	worker, err := s.workerRepo.FindByName(ctx, s.workerName)
	if err == nil {
		if worker.Status == domain.WorkerStatusOnline {
			return fmt.Errorf("worker with name %s is already online", s.workerName)
		}
		worker.Status = domain.WorkerStatusOnline
		worker.LastSeen = time.Now()
		if err := s.workerRepo.Update(ctx, worker); err != nil {
			return err
		}
	} else {
		worker, err = domain.NewWorker(s.workerName, "all")
		if err != nil {
			return err
		}
		if err := s.workerRepo.Create(ctx, worker); err != nil {
			return err
		}
	}

	s.logger.Info("worker_registered", fmt.Sprintf("Simulator %s registered", s.workerName), "", nil)

	go s.heartbeatLoop(ctx)

	return nil
}

func (s *Service) heartbeatLoop(ctx context.Context) {
	ticker := time.NewTicker(s.heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.workerRepo.UpdateHeartbeat(ctx, s.workerName); err != nil {
				s.logger.Error("heartbeat_failed", "Failed to update heartbeat", "", nil, err)
			}
		}
	}
}

func (s *Service) Shutdown(ctx context.Context) error {
	worker, err := s.workerRepo.FindByName(ctx, s.workerName)
	if err != nil {
		return err
	}
	worker.SetOffline()
	return s.workerRepo.Update(ctx, worker)
}

// ProcessOrder drives one order through the happy path. Redelivered
// messages for an order that already moved past placed are skipped.
func (s *Service) ProcessOrder(ctx context.Context, msg interfaces.OrderPlacedMessage) error {
	s.logger.Debug("order_processing_started", fmt.Sprintf("Processing order %s", msg.OrderNumber), msg.OrderNumber, nil)

	order, err := s.orderRepo.FindByID(ctx, msg.OrderID)
	if err != nil {
		return err
	}

	if order.Status != domain.StatusPlaced {
		return nil
	}

	stages := []struct {
		delay  time.Duration
		status domain.Status
	}{
		{s.preparingDelay, domain.StatusPreparing},
		{s.dispatchDelay, domain.StatusOutForDelivery},
		{s.deliveryDelay, domain.StatusDelivered},
	}

	for _, stage := range stages {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(stage.delay):
		}

		// Re-read before each step: a cancellation may have landed
		// while the timer was running.
		order, err = s.orderRepo.FindByID(ctx, order.ID)
		if err != nil {
			return err
		}
		if order.Status == domain.StatusCancelled {
			s.logger.Debug("order_cancelled", fmt.Sprintf("Order %s cancelled, stopping simulation", order.Number), order.Number, nil)
			return nil
		}

		if err := s.updateStatusAndNotify(ctx, order, stage.status); err != nil {
			return err
		}
	}

	if err := s.workerRepo.IncrementOrdersProcessed(ctx, s.workerName); err != nil {
		s.logger.Error("db_error", "Failed to increment worker stats", "", nil, err)
	}

	s.logger.Debug("order_completed", fmt.Sprintf("Order %s delivered", msg.OrderNumber), msg.OrderNumber, nil)
	return nil
}

func (s *Service) updateStatusAndNotify(ctx context.Context, order *domain.Order, newStatus domain.Status) error {
	oldStatus := order.Status

	if err := order.TransitionTo(newStatus, s.workerName); err != nil {
		return err
	}

	if err := s.orderRepo.UpdateStatusWithLog(ctx, order, s.workerName); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	notification := interfaces.StatusUpdateMessage{
		OrderID:     order.ID,
		OrderNumber: order.Number,
		OldStatus:   oldStatus,
		NewStatus:   newStatus,
		ChangedBy:   s.workerName,
		Timestamp:   time.Now(),
	}

	if err := s.publisher.PublishStatusUpdate(ctx, notification); err != nil {
		// Notifications are best-effort; the simulation keeps going.
		s.logger.Error("publish_failed", "Failed to publish status update", order.Number, nil, err)
	}

	return nil
}
