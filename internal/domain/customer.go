package domain

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

// Customer represents a portal customer, keyed by email. Customers are
// created on first profile save or first photo upload and are never
// hard-deleted.
type Customer struct {
	ID                string          `json:"id"`
	Email             string          `json:"email"`
	FirstName         *string         `json:"firstName,omitempty"`
	LastName          *string         `json:"lastName,omitempty"`
	PhoneNumber       *string         `json:"phoneNumber,omitempty"`
	DateOfBirth       *time.Time      `json:"dateOfBirth,omitempty"`
	ShopifyCustomerID *string         `json:"shopifyCustomerId,omitempty"`
	Age               *int            `json:"age,omitempty"`
	Hobbies           *string         `json:"hobbies,omitempty"`
	Occupation        *string         `json:"occupation,omitempty"`
	UsualSize         *string         `json:"usualSize,omitempty"`
	CustomFields      json.RawMessage `json:"customFields,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// SanitizeEmail normalizes and validates an email address. It returns the
// lowercased, trimmed address or a validation error.
func SanitizeEmail(email string) (string, error) {
	sanitized := strings.ToLower(strings.TrimSpace(email))
	if sanitized == "" {
		return "", NewValidationError("email is required")
	}
	if len(sanitized) > 254 || !govalidator.IsEmail(sanitized) {
		return "", NewValidationError("invalid email format")
	}
	return sanitized, nil
}

// Validate ensures the customer has a well-formed email.
func (c *Customer) Validate() error {
	email, err := SanitizeEmail(c.Email)
	if err != nil {
		return err
	}
	c.Email = email
	return nil
}

// UpsertCustomerRequest is the payload for creating or updating a customer
// profile.
type UpsertCustomerRequest struct {
	Email        string          `json:"email"`
	FirstName    *string         `json:"firstName,omitempty"`
	LastName     *string         `json:"lastName,omitempty"`
	PhoneNumber  *string         `json:"phoneNumber,omitempty"`
	DateOfBirth  *time.Time      `json:"dateOfBirth,omitempty"`
	Age          *int            `json:"age,omitempty"`
	Hobbies      *string         `json:"hobbies,omitempty"`
	Occupation   *string         `json:"occupation,omitempty"`
	UsualSize    *string         `json:"usualSize,omitempty"`
	CustomFields json.RawMessage `json:"customFields,omitempty"`
}

// Validate normalizes the request and returns the customer it describes.
func (r *UpsertCustomerRequest) Validate() (*Customer, error) {
	email, err := SanitizeEmail(r.Email)
	if err != nil {
		return nil, err
	}

	if r.Age != nil && (*r.Age < 0 || *r.Age > 150) {
		return nil, NewValidationError("age must be between 0 and 150")
	}

	return &Customer{
		Email:        email,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		PhoneNumber:  r.PhoneNumber,
		DateOfBirth:  r.DateOfBirth,
		Age:          r.Age,
		Hobbies:      r.Hobbies,
		Occupation:   r.Occupation,
		UsualSize:    r.UsualSize,
		CustomFields: r.CustomFields,
	}, nil
}

// For database scanning
type dbCustomer struct {
	ID                string
	Email             string
	FirstName         sql.NullString
	LastName          sql.NullString
	PhoneNumber       sql.NullString
	DateOfBirth       sql.NullTime
	ShopifyCustomerID sql.NullString
	Age               sql.NullInt64
	Hobbies           sql.NullString
	Occupation        sql.NullString
	UsualSize         sql.NullString
	CustomFields      []byte
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ScanCustomer scans a customer row from the database.
func ScanCustomer(scanner interface {
	Scan(dest ...interface{}) error
}) (*Customer, error) {
	var dbc dbCustomer
	if err := scanner.Scan(
		&dbc.ID,
		&dbc.Email,
		&dbc.FirstName,
		&dbc.LastName,
		&dbc.PhoneNumber,
		&dbc.DateOfBirth,
		&dbc.ShopifyCustomerID,
		&dbc.Age,
		&dbc.Hobbies,
		&dbc.Occupation,
		&dbc.UsualSize,
		&dbc.CustomFields,
		&dbc.CreatedAt,
		&dbc.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c := &Customer{
		ID:        dbc.ID,
		Email:     dbc.Email,
		CreatedAt: dbc.CreatedAt,
		UpdatedAt: dbc.UpdatedAt,
	}
	if dbc.FirstName.Valid {
		c.FirstName = &dbc.FirstName.String
	}
	if dbc.LastName.Valid {
		c.LastName = &dbc.LastName.String
	}
	if dbc.PhoneNumber.Valid {
		c.PhoneNumber = &dbc.PhoneNumber.String
	}
	if dbc.DateOfBirth.Valid {
		c.DateOfBirth = &dbc.DateOfBirth.Time
	}
	if dbc.ShopifyCustomerID.Valid {
		c.ShopifyCustomerID = &dbc.ShopifyCustomerID.String
	}
	if dbc.Age.Valid {
		age := int(dbc.Age.Int64)
		c.Age = &age
	}
	if dbc.Hobbies.Valid {
		c.Hobbies = &dbc.Hobbies.String
	}
	if dbc.Occupation.Valid {
		c.Occupation = &dbc.Occupation.String
	}
	if dbc.UsualSize.Valid {
		c.UsualSize = &dbc.UsualSize.String
	}
	if len(dbc.CustomFields) > 0 {
		c.CustomFields = json.RawMessage(dbc.CustomFields)
	}

	return c, nil
}

//go:generate mockgen -destination=mocks/mock_customer.go -package=mocks github.com/fitportal/fitportal/internal/domain CustomerRepository
//go:generate mockgen -destination=mocks/mock_services.go -package=mocks github.com/fitportal/fitportal/internal/domain CustomerService,PhotoService,SizingService,ShopifyService,AuthService,WebhookDispatcher

// CustomerRepository is the persistence interface for customers.
type CustomerRepository interface {
	// UpsertCustomer creates the customer or updates the existing row with
	// the same email. It never creates duplicates for an email.
	UpsertCustomer(ctx context.Context, customer *Customer) error
	GetCustomerByEmail(ctx context.Context, email string) (*Customer, error)
	// UpdateShopifyProfile backfills name, phone and the external customer
	// id from a synced order.
	UpdateShopifyProfile(ctx context.Context, email string, firstName, lastName, phone, shopifyCustomerID *string) error
}

// CustomerService is the business interface consumed by HTTP handlers.
type CustomerService interface {
	UpsertProfile(ctx context.Context, req *UpsertCustomerRequest) (*Customer, error)
	GetProfile(ctx context.Context, email string) (*Customer, error)
	UpsertMeasurements(ctx context.Context, req *UpsertMeasurementsRequest) (*BodyMeasurements, error)
	GetMeasurements(ctx context.Context, email string) (*BodyMeasurements, error)
}
