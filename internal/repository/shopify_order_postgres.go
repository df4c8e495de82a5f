package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fitportal/fitportal/internal/domain"
)

const shopifyOrderColumns = `
	id, shopify_order_id, customer_email, order_number, total_price, currency,
	order_status, fulfillment_status, order_data, order_date, created_at, updated_at
`

type shopifyOrderRepository struct {
	db *sql.DB
}

// NewShopifyOrderRepository creates a new PostgreSQL order mirror repository
func NewShopifyOrderRepository(db *sql.DB) domain.ShopifyOrderRepository {
	return &shopifyOrderRepository{db: db}
}

func (r *shopifyOrderRepository) UpsertOrder(ctx context.Context, order *domain.ShopifyOrder) error {
	now := time.Now().UTC()
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	order.CreatedAt = now
	order.UpdatedAt = now

	query := `
		INSERT INTO shopify_orders (
			id, shopify_order_id, customer_email, order_number, total_price,
			currency, order_status, fulfillment_status, order_data, order_date,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (shopify_order_id) DO UPDATE SET
			customer_email = EXCLUDED.customer_email,
			order_number = EXCLUDED.order_number,
			total_price = EXCLUDED.total_price,
			currency = EXCLUDED.currency,
			order_status = EXCLUDED.order_status,
			fulfillment_status = EXCLUDED.fulfillment_status,
			order_data = EXCLUDED.order_data,
			order_date = EXCLUDED.order_date,
			updated_at = EXCLUDED.updated_at
	`

	var orderData interface{}
	if len(order.OrderData) > 0 {
		orderData = []byte(order.OrderData)
	}

	_, err := r.db.ExecContext(ctx, query,
		order.ID,
		order.ShopifyOrderID,
		order.CustomerEmail,
		order.OrderNumber,
		order.TotalPrice,
		order.Currency,
		order.OrderStatus,
		order.FulfillmentStatus,
		orderData,
		order.OrderDate,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert shopify order: %w", err)
	}

	return nil
}

func (r *shopifyOrderRepository) ListOrdersByEmail(ctx context.Context, email string, limit int) ([]*domain.ShopifyOrder, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT ` + shopifyOrderColumns + `
		FROM shopify_orders
		WHERE customer_email = $1
		ORDER BY order_date DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, email, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list shopify orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.ShopifyOrder
	for rows.Next() {
		order, err := domain.ScanShopifyOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shopify order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shopify orders: %w", err)
	}

	return orders, nil
}
