package kitchen

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/savaneats/savan/internal/adapter/logger"
	"github.com/savaneats/savan/internal/config"
	"github.com/savaneats/savan/internal/domain"
	"github.com/savaneats/savan/internal/interfaces"
)

type fakeOrderRepo struct {
	orders map[string]*domain.Order
	logs   map[string][]*domain.StatusLog
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: make(map[string]*domain.Order),
		logs:   make(map[string][]*domain.StatusLog),
	}
}

func (r *fakeOrderRepo) CreateAndClearCart(ctx context.Context, order *domain.Order) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	if order, ok := r.orders[id]; ok {
		return order, nil
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
	return nil, nil
}

func (r *fakeOrderRepo) UpdateStatusWithLog(ctx context.Context, order *domain.Order, changedBy string) error {
	r.orders[order.ID] = order
	r.logs[order.ID] = append(r.logs[order.ID], &domain.StatusLog{OrderID: order.ID, Status: order.Status, ChangedBy: changedBy})
	return nil
}

func (r *fakeOrderRepo) GetStatusHistory(ctx context.Context, orderID string) ([]*domain.StatusLog, error) {
	return r.logs[orderID], nil
}

type fakeWorkerRepo struct {
	workers   map[string]*domain.Worker
	processed map[string]int
}

func newFakeWorkerRepo() *fakeWorkerRepo {
	return &fakeWorkerRepo{
		workers:   make(map[string]*domain.Worker),
		processed: make(map[string]int),
	}
}

func (r *fakeWorkerRepo) Create(ctx context.Context, worker *domain.Worker) error {
	r.workers[worker.Name] = worker
	return nil
}

func (r *fakeWorkerRepo) FindByName(ctx context.Context, name string) (*domain.Worker, error) {
	if worker, ok := r.workers[name]; ok {
		return worker, nil
	}
	return nil, errors.New("worker not found")
}

func (r *fakeWorkerRepo) Update(ctx context.Context, worker *domain.Worker) error {
	r.workers[worker.Name] = worker
	return nil
}

func (r *fakeWorkerRepo) UpdateHeartbeat(ctx context.Context, name string) error {
	return nil
}

func (r *fakeWorkerRepo) ListAll(ctx context.Context) ([]*domain.Worker, error) {
	var out []*domain.Worker
	for _, worker := range r.workers {
		out = append(out, worker)
	}
	return out, nil
}

func (r *fakeWorkerRepo) IncrementOrdersProcessed(ctx context.Context, name string) error {
	r.processed[name]++
	return nil
}

type fakePublisher struct {
	updates []interfaces.StatusUpdateMessage
}

func (p *fakePublisher) PublishOrderPlaced(ctx context.Context, msg interfaces.OrderPlacedMessage) error {
	return nil
}

func (p *fakePublisher) PublishStatusUpdate(ctx context.Context, msg interfaces.StatusUpdateMessage) error {
	p.updates = append(p.updates, msg)
	return nil
}

func newTestService(orderRepo *fakeOrderRepo, workerRepo *fakeWorkerRepo, pub *fakePublisher) *Service {
	return NewService(orderRepo, workerRepo, pub, logger.Nop(), "sim-1", 30, config.KitchenConfig{})
}

func placedOrder(t *testing.T) *domain.Order {
	t.Helper()
	order, err := domain.NewOrder("c1", []domain.CartLine{
		{ID: "l1", MenuItemID: "b1", Name: "Nyama Choma Platter", Price: 450, Quantity: 1},
	}, domain.FulfillmentDelivery, "Westlands, Delta Towers", "mpesa", 150)
	require.NoError(t, err)
	return order
}

func TestProcessOrderWalksFullLifecycle(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	workerRepo := newFakeWorkerRepo()
	pub := &fakePublisher{}
	svc := newTestService(orderRepo, workerRepo, pub)

	order := placedOrder(t)
	orderRepo.orders[order.ID] = order

	err := svc.ProcessOrder(context.Background(), interfaces.OrderPlacedMessage{
		OrderID:     order.ID,
		OrderNumber: order.Number,
	})
	require.NoError(t, err)

	require.Equal(t, domain.StatusDelivered, orderRepo.orders[order.ID].Status)
	require.NotNil(t, orderRepo.orders[order.ID].DeliveredAt)

	history, err := orderRepo.GetStatusHistory(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	require.Equal(t, domain.StatusPreparing, history[0].Status)
	require.Equal(t, domain.StatusOutForDelivery, history[1].Status)
	require.Equal(t, domain.StatusDelivered, history[2].Status)

	require.Len(t, pub.updates, 3)
	require.Equal(t, domain.StatusPlaced, pub.updates[0].OldStatus)
	require.Equal(t, domain.StatusDelivered, pub.updates[2].NewStatus)

	require.Equal(t, 1, workerRepo.processed["sim-1"])
}

func TestProcessOrderSkipsRedeliveries(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	workerRepo := newFakeWorkerRepo()
	pub := &fakePublisher{}
	svc := newTestService(orderRepo, workerRepo, pub)

	order := placedOrder(t)
	require.NoError(t, order.TransitionTo(domain.StatusPreparing, "sim-2"))
	orderRepo.orders[order.ID] = order

	err := svc.ProcessOrder(context.Background(), interfaces.OrderPlacedMessage{OrderID: order.ID})
	require.NoError(t, err)

	require.Empty(t, pub.updates)
	require.Zero(t, workerRepo.processed["sim-1"])
}

func TestProcessOrderStopsOnCancellation(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	workerRepo := newFakeWorkerRepo()
	pub := &fakePublisher{}
	svc := newTestService(orderRepo, workerRepo, pub)

	order := placedOrder(t)
	orderRepo.orders[order.ID] = order

	// Cancelled before the simulator picks it up.
	require.NoError(t, order.TransitionTo(domain.StatusCancelled, "c1"))

	err := svc.ProcessOrder(context.Background(), interfaces.OrderPlacedMessage{OrderID: order.ID})
	require.NoError(t, err)
	require.Empty(t, pub.updates)
	require.Equal(t, domain.StatusCancelled, orderRepo.orders[order.ID].Status)
}

func TestProcessOrderUnknownOrder(t *testing.T) {
	svc := newTestService(newFakeOrderRepo(), newFakeWorkerRepo(), &fakePublisher{})

	err := svc.ProcessOrder(context.Background(), interfaces.OrderPlacedMessage{OrderID: "missing"})
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestStartRegistersWorker(t *testing.T) {
	workerRepo := newFakeWorkerRepo()
	svc := newTestService(newFakeOrderRepo(), workerRepo, &fakePublisher{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, svc.Start(ctx))
	require.Equal(t, domain.WorkerStatusOnline, workerRepo.workers["sim-1"].Status)

	// A second instance under the same name is refused while online.
	err := svc.Start(ctx)
	require.Error(t, err)

	require.NoError(t, svc.Shutdown(ctx))
	require.Equal(t, domain.WorkerStatusOffline, workerRepo.workers["sim-1"].Status)
}
