package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitportal/fitportal/internal/domain"
	"github.com/fitportal/fitportal/internal/repository/testutil"
)

func TestUpsertOrder(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewShopifyOrderRepository(db)
	order := &domain.ShopifyOrder{
		ShopifyOrderID: "5551234",
		CustomerEmail:  "jane@example.com",
		OrderNumber:    "#1001",
		TotalPrice:     129.90,
		Currency:       "EUR",
		OrderStatus:    "paid",
		OrderDate:      time.Now().UTC(),
	}

	mock.ExpectExec(`INSERT INTO shopify_orders`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.UpsertOrder(context.Background(), order)
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListOrdersByEmail(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewShopifyOrderRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	rows := sqlmock.NewRows([]string{
		"id", "shopify_order_id", "customer_email", "order_number", "total_price",
		"currency", "order_status", "fulfillment_status", "order_data", "order_date",
		"created_at", "updated_at",
	}).AddRow(
		"o1", "5551234", "jane@example.com", "#1001", 129.90,
		"EUR", "paid", "fulfilled", []byte(`{"line_items": []}`), now,
		now, now,
	)

	mock.ExpectQuery(`SELECT (.+) FROM shopify_orders WHERE customer_email = \$1`).
		WithArgs("jane@example.com", 50).
		WillReturnRows(rows)

	orders, err := repo.ListOrdersByEmail(context.Background(), "jane@example.com", 0)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "#1001", orders[0].OrderNumber)
	assert.Equal(t, "fulfilled", *orders[0].FulfillmentStatus)
}
