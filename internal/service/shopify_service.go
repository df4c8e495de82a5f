package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"

	"github.com/fitportal/fitportal/config"
	"github.com/fitportal/fitportal/internal/domain"
	"github.com/fitportal/fitportal/pkg/logger"
)

const shopifyOrderFields = "id,order_number,email,created_at,updated_at," +
	"total_price,currency,financial_status,fulfillment_status,line_items,customer"

// ShopifyService mirrors order history from the Shopify Admin API into the
// local database.
type ShopifyService struct {
	orderRepo    domain.ShopifyOrderRepository
	customerRepo domain.CustomerRepository
	httpClient   *http.Client
	cfg          config.ShopifyConfig
	baseURL      string
	logger       logger.Logger
}

func NewShopifyService(
	orderRepo domain.ShopifyOrderRepository,
	customerRepo domain.CustomerRepository,
	cfg config.ShopifyConfig,
	logger logger.Logger,
) *ShopifyService {
	return &ShopifyService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		cfg:          cfg,
		baseURL:      "https://" + cfg.ShopDomain,
		logger:       logger,
	}
}

// Enabled reports whether shop credentials are configured. Callers should
// surface a 503 when sync is requested on a portal without credentials.
func (s *ShopifyService) Enabled() bool {
	return s.cfg.ShopDomain != "" && s.cfg.AccessToken != ""
}

// SyncOrders fetches the customer's orders from the shop, mirrors each one
// locally and backfills the customer profile from the first order's
// embedded customer record. It returns the mirrored orders newest first.
func (s *ShopifyService) SyncOrders(ctx context.Context, email string) ([]*domain.ShopifyOrder, error) {
	sanitized, err := domain.SanitizeEmail(email)
	if err != nil {
		return nil, err
	}
	if !s.Enabled() {
		return nil, fmt.Errorf("shopify integration is not configured")
	}

	body, err := s.get(ctx, fmt.Sprintf(
		"orders.json?status=any&limit=%d&fields=%s&email=%s",
		50, shopifyOrderFields, url.QueryEscape(sanitized),
	))
	if err != nil {
		s.logger.WithField("email", sanitized).Error(fmt.Sprintf("Failed to fetch Shopify orders: %v", err))
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	orders := gjson.GetBytes(body, "orders")
	synced := 0
	for _, raw := range orders.Array() {
		order := parseShopifyOrder(raw, sanitized)
		if order == nil {
			continue
		}
		if err := s.orderRepo.UpsertOrder(ctx, order); err != nil {
			s.logger.WithField("shopify_order_id", order.ShopifyOrderID).
				Error(fmt.Sprintf("Failed to upsert order: %v", err))
			return nil, fmt.Errorf("failed to upsert order: %w", err)
		}
		synced++
	}

	if first := orders.Get("0.customer"); first.Exists() {
		if err := s.backfillProfile(ctx, sanitized, first); err != nil {
			// Profile backfill is best effort; the orders are already
			// mirrored.
			s.logger.WithField("email", sanitized).Warn(fmt.Sprintf("Failed to backfill profile: %v", err))
		}
	}

	s.logger.WithFields(map[string]interface{}{
		"email":  sanitized,
		"orders": synced,
	}).Info("Shopify orders synced")

	return s.orderRepo.ListOrdersByEmail(ctx, sanitized, 0)
}

// ListCachedOrders reads the previously mirrored orders without touching
// the shop.
func (s *ShopifyService) ListCachedOrders(ctx context.Context, email string) ([]*domain.ShopifyOrder, error) {
	sanitized, err := domain.SanitizeEmail(email)
	if err != nil {
		return nil, err
	}
	return s.orderRepo.ListOrdersByEmail(ctx, sanitized, 0)
}

// GetCustomer looks up the customer record on the shop side.
func (s *ShopifyService) GetCustomer(ctx context.Context, email string) (*domain.ShopifyCustomer, error) {
	sanitized, err := domain.SanitizeEmail(email)
	if err != nil {
		return nil, err
	}
	if !s.Enabled() {
		return nil, fmt.Errorf("shopify integration is not configured")
	}

	body, err := s.get(ctx, "customers/search.json?query="+url.QueryEscape("email:"+sanitized))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customer: %w", err)
	}

	first := gjson.GetBytes(body, "customers.0")
	if !first.Exists() {
		return nil, nil
	}

	return &domain.ShopifyCustomer{
		ID:          first.Get("id").String(),
		Email:       first.Get("email").String(),
		FirstName:   first.Get("first_name").String(),
		LastName:    first.Get("last_name").String(),
		Phone:       first.Get("phone").String(),
		OrdersCount: first.Get("orders_count").Int(),
		TotalSpent:  first.Get("total_spent").String(),
	}, nil
}

func (s *ShopifyService) get(ctx context.Context, endpoint string) ([]byte, error) {
	apiURL := fmt.Sprintf("%s/admin/api/%s/%s", s.baseURL, s.cfg.APIVersion, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Shopify-Access-Token", s.cfg.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("shopify API returned status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

func (s *ShopifyService) backfillProfile(ctx context.Context, email string, customer gjson.Result) error {
	var firstName, lastName, phone, shopifyID *string
	if v := customer.Get("first_name"); v.Exists() && v.String() != "" {
		s := v.String()
		firstName = &s
	}
	if v := customer.Get("last_name"); v.Exists() && v.String() != "" {
		s := v.String()
		lastName = &s
	}
	if v := customer.Get("phone"); v.Exists() && v.String() != "" {
		s := v.String()
		phone = &s
	}
	if v := customer.Get("id"); v.Exists() {
		s := v.String()
		shopifyID = &s
	}

	return s.customerRepo.UpdateShopifyProfile(ctx, email, firstName, lastName, phone, shopifyID)
}

// parseShopifyOrder maps one Admin API order object onto the local mirror
// row. Orders without an id are skipped. The raw object is retained in
// OrderData so line items survive without a dedicated table.
func parseShopifyOrder(raw gjson.Result, fallbackEmail string) *domain.ShopifyOrder {
	id := raw.Get("id")
	if !id.Exists() {
		return nil
	}

	email := raw.Get("email").String()
	if email == "" {
		email = fallbackEmail
	}

	order := &domain.ShopifyOrder{
		ShopifyOrderID: id.String(),
		CustomerEmail:  email,
		OrderNumber:    raw.Get("order_number").String(),
		TotalPrice:     raw.Get("total_price").Float(),
		Currency:       raw.Get("currency").String(),
		OrderStatus:    raw.Get("financial_status").String(),
		OrderDate:      time.Now().UTC(),
		OrderData:      []byte(raw.Raw),
	}

	if v := raw.Get("fulfillment_status"); v.Exists() && v.Type != gjson.Null {
		fs := v.String()
		order.FulfillmentStatus = &fs
	}
	if v := raw.Get("created_at"); v.Exists() {
		if t, err := time.Parse(time.RFC3339, v.String()); err == nil {
			order.OrderDate = t
		}
	}

	return order
}
