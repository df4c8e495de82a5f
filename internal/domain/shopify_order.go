package domain

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// ShopifyOrder is a denormalized mirror of an external Shopify order,
// keyed by the external order id.
type ShopifyOrder struct {
	ID                string          `json:"id"`
	ShopifyOrderID    string          `json:"shopifyOrderId"`
	CustomerEmail     string          `json:"customerEmail"`
	OrderNumber       string          `json:"orderNumber"`
	TotalPrice        float64         `json:"totalPrice"`
	Currency          string          `json:"currency"`
	OrderStatus       string          `json:"orderStatus"`
	FulfillmentStatus *string         `json:"fulfillmentStatus,omitempty"`
	OrderDate         time.Time       `json:"orderDate"`
	OrderData         json.RawMessage `json:"orderData,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// ShopifyCustomer is the subset of the external customer record surfaced to
// the portal.
type ShopifyCustomer struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone,omitempty"`
	OrdersCount int64  `json:"ordersCount"`
	TotalSpent  string `json:"totalSpent"`
}

type dbShopifyOrder struct {
	ID                string
	ShopifyOrderID    string
	CustomerEmail     string
	OrderNumber       string
	TotalPrice        float64
	Currency          string
	OrderStatus       string
	FulfillmentStatus sql.NullString
	OrderDate         time.Time
	OrderData         []byte
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ScanShopifyOrder scans an order row from the database.
func ScanShopifyOrder(scanner interface {
	Scan(dest ...interface{}) error
}) (*ShopifyOrder, error) {
	var dbo dbShopifyOrder
	if err := scanner.Scan(
		&dbo.ID,
		&dbo.ShopifyOrderID,
		&dbo.CustomerEmail,
		&dbo.OrderNumber,
		&dbo.TotalPrice,
		&dbo.Currency,
		&dbo.OrderStatus,
		&dbo.FulfillmentStatus,
		&dbo.OrderData,
		&dbo.OrderDate,
		&dbo.CreatedAt,
		&dbo.UpdatedAt,
	); err != nil {
		return nil, err
	}

	o := &ShopifyOrder{
		ID:             dbo.ID,
		ShopifyOrderID: dbo.ShopifyOrderID,
		CustomerEmail:  dbo.CustomerEmail,
		OrderNumber:    dbo.OrderNumber,
		TotalPrice:     dbo.TotalPrice,
		Currency:       dbo.Currency,
		OrderStatus:    dbo.OrderStatus,
		OrderDate:      dbo.OrderDate,
		CreatedAt:      dbo.CreatedAt,
		UpdatedAt:      dbo.UpdatedAt,
	}
	if dbo.FulfillmentStatus.Valid {
		o.FulfillmentStatus = &dbo.FulfillmentStatus.String
	}
	if len(dbo.OrderData) > 0 {
		o.OrderData = json.RawMessage(dbo.OrderData)
	}

	return o, nil
}

//go:generate mockgen -destination=mocks/mock_shopify_order.go -package=mocks github.com/fitportal/fitportal/internal/domain ShopifyOrderRepository

// ShopifyOrderRepository is the persistence interface for order mirrors.
type ShopifyOrderRepository interface {
	// UpsertOrder creates or refreshes the mirror row for the external
	// order id.
	UpsertOrder(ctx context.Context, order *ShopifyOrder) error
	// ListOrdersByEmail returns a customer's mirrored orders newest first.
	ListOrdersByEmail(ctx context.Context, email string, limit int) ([]*ShopifyOrder, error)
}

// ShopifyService syncs order history from the external shop.
type ShopifyService interface {
	// Enabled reports whether shop credentials are configured.
	Enabled() bool
	// SyncOrders fetches the customer's orders from the shop, mirrors them
	// locally, backfills the profile, and returns the mirrored orders.
	SyncOrders(ctx context.Context, email string) ([]*ShopifyOrder, error)
	// ListCachedOrders reads the previously mirrored orders without
	// touching the shop.
	ListCachedOrders(ctx context.Context, email string) ([]*ShopifyOrder, error)
	// GetCustomer looks up the customer record on the shop side. A nil
	// result without error means the shop has no such customer.
	GetCustomer(ctx context.Context, email string) (*ShopifyCustomer, error)
}
