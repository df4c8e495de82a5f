package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitportal/fitportal/config"
	"github.com/fitportal/fitportal/internal/domain"
	"github.com/fitportal/fitportal/internal/domain/mocks"
)

const shopifyOrdersResponse = `{
	"orders": [
		{
			"id": 5551112223334,
			"order_number": 1001,
			"email": "jo@example.com",
			"created_at": "2026-05-04T10:30:00Z",
			"total_price": "79.90",
			"currency": "EUR",
			"financial_status": "paid",
			"fulfillment_status": "fulfilled",
			"line_items": [{"title": "Slim Jeans", "quantity": 1}],
			"customer": {
				"id": 987654321,
				"email": "jo@example.com",
				"first_name": "Jo",
				"last_name": "Doe",
				"phone": "+4915112345678"
			}
		},
		{
			"id": 5551112223335,
			"order_number": 1002,
			"email": "jo@example.com",
			"created_at": "2026-06-01T08:00:00Z",
			"total_price": "129.00",
			"currency": "EUR",
			"financial_status": "pending",
			"fulfillment_status": null
		}
	]
}`

func shopifyFixture(t *testing.T, handler http.Handler) (*ShopifyService, *mocks.MockShopifyOrderRepository, *mocks.MockCustomerRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	orderRepo := mocks.NewMockShopifyOrderRepository(ctrl)
	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	service := NewShopifyService(orderRepo, customerRepo, config.ShopifyConfig{
		ShopDomain:  "test-shop.myshopify.com",
		AccessToken: "shpat_test_token",
		APIVersion:  "2024-10",
	}, newTestLogger(ctrl))
	service.baseURL = server.URL
	return service, orderRepo, customerRepo
}

func TestShopifyService_Enabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	log := newTestLogger(ctrl)

	assert.True(t, NewShopifyService(nil, nil, config.ShopifyConfig{
		ShopDomain:  "shop.myshopify.com",
		AccessToken: "token",
	}, log).Enabled())
	assert.False(t, NewShopifyService(nil, nil, config.ShopifyConfig{
		ShopDomain: "shop.myshopify.com",
	}, log).Enabled())
	assert.False(t, NewShopifyService(nil, nil, config.ShopifyConfig{}, log).Enabled())
}

func TestShopifyService_SyncOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("mirrors orders and backfills the profile", func(t *testing.T) {
		var requestedPath string
		var accessToken string
		service, orderRepo, customerRepo := shopifyFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestedPath = r.URL.Path
			accessToken = r.Header.Get("X-Shopify-Access-Token")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(shopifyOrdersResponse))
		}))

		var upserted []*domain.ShopifyOrder
		orderRepo.EXPECT().UpsertOrder(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, order *domain.ShopifyOrder) error {
				upserted = append(upserted, order)
				return nil
			}).Times(2)
		customerRepo.EXPECT().UpdateShopifyProfile(ctx, "jo@example.com",
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, firstName, lastName, phone, shopifyID *string) error {
				require.NotNil(t, firstName)
				assert.Equal(t, "Jo", *firstName)
				require.NotNil(t, shopifyID)
				assert.Equal(t, "987654321", *shopifyID)
				return nil
			})
		orderRepo.EXPECT().ListOrdersByEmail(ctx, "jo@example.com", 0).
			Return([]*domain.ShopifyOrder{{ShopifyOrderID: "5551112223335"}, {ShopifyOrderID: "5551112223334"}}, nil)

		orders, err := service.SyncOrders(ctx, "Jo@Example.com")
		require.NoError(t, err)
		assert.Len(t, orders, 2)

		assert.Equal(t, "/admin/api/2024-10/orders.json", requestedPath)
		assert.Equal(t, "shpat_test_token", accessToken)

		require.Len(t, upserted, 2)
		first := upserted[0]
		assert.Equal(t, "5551112223334", first.ShopifyOrderID)
		assert.Equal(t, "1001", first.OrderNumber)
		assert.Equal(t, 79.90, first.TotalPrice)
		assert.Equal(t, "EUR", first.Currency)
		assert.Equal(t, "paid", first.OrderStatus)
		require.NotNil(t, first.FulfillmentStatus)
		assert.Equal(t, "fulfilled", *first.FulfillmentStatus)
		assert.Equal(t, time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC), first.OrderDate.UTC())
		assert.NotEmpty(t, first.OrderData)

		// Null fulfillment status stays nil.
		assert.Nil(t, upserted[1].FulfillmentStatus)
	})

	t.Run("upstream error aborts the sync", func(t *testing.T) {
		service, _, _ := shopifyFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"errors":"unauthorized"}`, http.StatusUnauthorized)
		}))

		orders, err := service.SyncOrders(ctx, "jo@example.com")
		assert.Error(t, err)
		assert.Nil(t, orders)
	})

	t.Run("unconfigured integration refuses to sync", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		service := NewShopifyService(nil, nil, config.ShopifyConfig{}, newTestLogger(ctrl))

		orders, err := service.SyncOrders(ctx, "jo@example.com")
		assert.Error(t, err)
		assert.Nil(t, orders)
	})
}

func TestShopifyService_GetCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the first matching customer", func(t *testing.T) {
		service, _, _ := shopifyFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/admin/api/2024-10/customers/search.json", r.URL.Path)
			w.Write([]byte(`{"customers":[{"id":987654321,"email":"jo@example.com","first_name":"Jo","last_name":"Doe","orders_count":4,"total_spent":"412.80"}]}`))
		}))

		customer, err := service.GetCustomer(ctx, "jo@example.com")
		require.NoError(t, err)
		require.NotNil(t, customer)
		assert.Equal(t, "987654321", customer.ID)
		assert.Equal(t, "Jo", customer.FirstName)
		assert.Equal(t, int64(4), customer.OrdersCount)
		assert.Equal(t, "412.80", customer.TotalSpent)
	})

	t.Run("no match returns nil", func(t *testing.T) {
		service, _, _ := shopifyFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"customers":[]}`))
		}))

		customer, err := service.GetCustomer(ctx, "jo@example.com")
		require.NoError(t, err)
		assert.Nil(t, customer)
	})
}
