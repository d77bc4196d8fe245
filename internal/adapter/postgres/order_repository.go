package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/savaneats/savan/internal/domain"
	"github.com/savaneats/savan/internal/interfaces"
)

type orderRepository struct {
	db DB
}

func NewOrderRepository(db DB) interfaces.OrderRepository {
	return &orderRepository{db: db}
}

// CreateAndClearCart inserts the order, its items and the initial
// status log entry, and deletes the customer's cart, all in one
// transaction. A crash cannot leave both the new order and the old
// cart behind.
func (r *orderRepository) CreateAndClearCart(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO orders (id, number, customer_id, subtotal, delivery_fee, total,
		                    status, address, payment_method, fulfillment,
		                    customer_name, customer_phone, instructions,
		                    verification_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err = tx.Exec(ctx, query,
		order.ID, order.Number, order.CustomerID, order.Subtotal, order.DeliveryFee,
		order.Total, order.Status, order.Address, order.PaymentMethod, order.Fulfillment,
		order.CustomerName, order.CustomerPhone, order.Instructions,
		order.VerificationCode, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for _, item := range order.Items {
		optionsJSON, err := json.Marshal(item.Options)
		if err != nil {
			return fmt.Errorf("failed to marshal line options: %w", err)
		}

		itemQuery := `
			INSERT INTO order_items (id, order_id, menu_item_id, name, image, price, quantity, recipient, options)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`
		_, err = tx.Exec(ctx, itemQuery,
			item.ID, order.ID, item.MenuItemID, item.Name, item.Image,
			item.Price, item.Quantity, item.Recipient, optionsJSON,
		)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	logQuery := `
		INSERT INTO order_status_log (order_id, status, changed_by, changed_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := tx.Exec(ctx, logQuery, order.ID, order.Status, "storefront-service", time.Now()); err != nil {
		return fmt.Errorf("failed to log status: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM carts WHERE customer_id = $1`, order.CustomerID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return tx.Commit(ctx)
}

const orderColumns = `
	id, number, customer_id, subtotal, delivery_fee, total,
	status, address, payment_method, fulfillment,
	customer_name, customer_phone, instructions,
	verification_code, processed_by, created_at, updated_at, delivered_at
`

func (r *orderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	return r.scanOrder(ctx, row)
}

func (r *orderRepository) FindByNumber(ctx context.Context, number string) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE number = $1`, number)
	return r.scanOrder(ctx, row)
}

func (r *orderRepository) scanOrder(ctx context.Context, row Row) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID, &order.Number, &order.CustomerID, &order.Subtotal, &order.DeliveryFee,
		&order.Total, &order.Status, &order.Address, &order.PaymentMethod, &order.Fulfillment,
		&order.CustomerName, &order.CustomerPhone, &order.Instructions,
		&order.VerificationCode, &order.ProcessedBy, &order.CreatedAt, &order.UpdatedAt, &order.DeliveredAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrOrderNotFound, err)
	}

	items, err := r.loadItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return &order, nil
}

func (r *orderRepository) loadItems(ctx context.Context, orderID string) ([]domain.CartLine, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, menu_item_id, name, image, price, quantity, recipient, options
		FROM order_items
		WHERE order_id = $1`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load order items: %w", err)
	}
	defer rows.Close()

	var items []domain.CartLine
	for rows.Next() {
		var item domain.CartLine
		var optionsJSON []byte
		if err := rows.Scan(&item.ID, &item.MenuItemID, &item.Name, &item.Image,
			&item.Price, &item.Quantity, &item.Recipient, &optionsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		if len(optionsJSON) > 0 {
			if err := json.Unmarshal(optionsJSON, &item.Options); err != nil {
				return nil, fmt.Errorf("failed to unmarshal line options: %w", err)
			}
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE customer_id = $1
		ORDER BY created_at DESC`,
		customerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID, &order.Number, &order.CustomerID, &order.Subtotal, &order.DeliveryFee,
			&order.Total, &order.Status, &order.Address, &order.PaymentMethod, &order.Fulfillment,
			&order.CustomerName, &order.CustomerPhone, &order.Instructions,
			&order.VerificationCode, &order.ProcessedBy, &order.CreatedAt, &order.UpdatedAt, &order.DeliveredAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, &order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, order := range orders {
		items, err := r.loadItems(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		order.Items = items
	}

	return orders, nil
}

// UpdateStatusWithLog persists the order's current status together
// with its log entry in one transaction.
func (r *orderRepository) UpdateStatusWithLog(ctx context.Context, order *domain.Order, changedBy string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE orders
		SET status = $1, processed_by = $2, updated_at = $3, delivered_at = $4
		WHERE id = $5
	`
	_, err = tx.Exec(ctx, query,
		order.Status, order.ProcessedBy, order.UpdatedAt, order.DeliveredAt, order.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	logQuery := `
		INSERT INTO order_status_log (order_id, status, changed_by, changed_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := tx.Exec(ctx, logQuery, order.ID, order.Status, changedBy, time.Now()); err != nil {
		return fmt.Errorf("failed to log status: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) GetStatusHistory(ctx context.Context, orderID string) ([]*domain.StatusLog, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, status, changed_by, changed_at, notes
		FROM order_status_log
		WHERE order_id = $1
		ORDER BY changed_at ASC`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query status history: %w", err)
	}
	defer rows.Close()

	var logs []*domain.StatusLog
	for rows.Next() {
		var log domain.StatusLog
		if err := rows.Scan(&log.ID, &log.OrderID, &log.Status, &log.ChangedBy, &log.ChangedAt, &log.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan status log: %w", err)
		}
		logs = append(logs, &log)
	}

	return logs, rows.Err()
}
