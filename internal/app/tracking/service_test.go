package tracking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/savaneats/savan/internal/adapter/logger"
	"github.com/savaneats/savan/internal/domain"
)

type fakeOrderRepo struct {
	orders []*domain.Order
	logs   map[string][]*domain.StatusLog
}

func (r *fakeOrderRepo) CreateAndClearCart(ctx context.Context, order *domain.Order) error {
	r.orders = append(r.orders, order)
	return nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	for _, order := range r.orders {
		if order.ID == id {
			return order, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *fakeOrderRepo) FindByNumber(ctx context.Context, number string) (*domain.Order, error) {
	for _, order := range r.orders {
		if order.Number == number {
			return order, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *fakeOrderRepo) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, order := range r.orders {
		if order.CustomerID == customerID {
			out = append(out, order)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatusWithLog(ctx context.Context, order *domain.Order, changedBy string) error {
	return nil
}

func (r *fakeOrderRepo) GetStatusHistory(ctx context.Context, orderID string) ([]*domain.StatusLog, error) {
	return r.logs[orderID], nil
}

type fakeWorkerRepo struct {
	workers []*domain.Worker
}

func (r *fakeWorkerRepo) Create(ctx context.Context, worker *domain.Worker) error  { return nil }
func (r *fakeWorkerRepo) Update(ctx context.Context, worker *domain.Worker) error  { return nil }
func (r *fakeWorkerRepo) UpdateHeartbeat(ctx context.Context, name string) error   { return nil }
func (r *fakeWorkerRepo) IncrementOrdersProcessed(ctx context.Context, name string) error {
	return nil
}

func (r *fakeWorkerRepo) FindByName(ctx context.Context, name string) (*domain.Worker, error) {
	return nil, errors.New("worker not found")
}

func (r *fakeWorkerRepo) ListAll(ctx context.Context) ([]*domain.Worker, error) {
	return r.workers, nil
}

func TestGetOrderStatus(t *testing.T) {
	processedBy := "sim-1"
	orderRepo := &fakeOrderRepo{
		orders: []*domain.Order{{
			ID:               "o1",
			Number:           "SV12345",
			CustomerID:       "c1",
			Status:           domain.StatusPreparing,
			Total:            1300,
			VerificationCode: "4821",
			ProcessedBy:      &processedBy,
		}},
	}
	svc := NewService(orderRepo, &fakeWorkerRepo{}, logger.Nop())

	result, err := svc.GetOrderStatus(context.Background(), "c1", "SV12345")
	require.NoError(t, err)
	require.Equal(t, domain.StatusPreparing, result.CurrentStatus)
	require.Equal(t, int64(1300), result.Total)
	require.Equal(t, "4821", result.VerificationCode)
	require.Equal(t, "sim-1", *result.ProcessedBy)

	_, err = svc.GetOrderStatus(context.Background(), "c1", "SV99999")
	require.ErrorIs(t, err, domain.ErrOrderNotFound)

	// Another customer guessing the number learns nothing, not even
	// that the order exists.
	_, err = svc.GetOrderStatus(context.Background(), "c2", "SV12345")
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestGetOrderHistory(t *testing.T) {
	orderRepo := &fakeOrderRepo{
		orders: []*domain.Order{{ID: "o1", Number: "SV12345", CustomerID: "c1"}},
		logs: map[string][]*domain.StatusLog{
			"o1": {
				{OrderID: "o1", Status: domain.StatusPlaced},
				{OrderID: "o1", Status: domain.StatusPreparing},
			},
		},
	}
	svc := NewService(orderRepo, &fakeWorkerRepo{}, logger.Nop())

	history, err := svc.GetOrderHistory(context.Background(), "c1", "SV12345")
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, domain.StatusPlaced, history[0].Status)

	_, err = svc.GetOrderHistory(context.Background(), "c2", "SV12345")
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestGetActiveOrder(t *testing.T) {
	// ListByCustomer contract: newest first.
	orderRepo := &fakeOrderRepo{
		orders: []*domain.Order{
			{ID: "o3", Number: "SV33333", CustomerID: "c1", Status: domain.StatusDelivered},
			{ID: "o2", Number: "SV22222", CustomerID: "c1", Status: domain.StatusPreparing},
			{ID: "o1", Number: "SV11111", CustomerID: "c1", Status: domain.StatusPlaced},
		},
	}
	svc := NewService(orderRepo, &fakeWorkerRepo{}, logger.Nop())

	// The delivered order is skipped; the newest in-flight one wins.
	active, err := svc.GetActiveOrder(context.Background(), "c1")
	require.NoError(t, err)
	require.Equal(t, "SV22222", active.Number)

	_, err = svc.GetActiveOrder(context.Background(), "c2")
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestGetWorkersStatusMarksStaleOffline(t *testing.T) {
	workerRepo := &fakeWorkerRepo{
		workers: []*domain.Worker{
			{Name: "fresh", Status: domain.WorkerStatusOnline, LastSeen: time.Now(), OrdersProcessed: 4},
			{Name: "stale", Status: domain.WorkerStatusOnline, LastSeen: time.Now().Add(-5 * time.Minute)},
			{Name: "gone", Status: domain.WorkerStatusOffline, LastSeen: time.Now()},
		},
	}
	svc := NewService(&fakeOrderRepo{}, workerRepo, logger.Nop())

	workers, err := svc.GetWorkersStatus(context.Background())
	require.NoError(t, err)
	require.Len(t, workers, 3)

	byName := make(map[string]domain.WorkerStatus)
	for _, w := range workers {
		byName[w.WorkerName] = w.Status
	}
	require.Equal(t, domain.WorkerStatusOnline, byName["fresh"])
	require.Equal(t, domain.WorkerStatusOffline, byName["stale"])
	require.Equal(t, domain.WorkerStatusOffline, byName["gone"])
}
