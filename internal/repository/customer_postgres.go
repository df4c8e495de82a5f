package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fitportal/fitportal/internal/domain"
)

const customerColumns = `
	id, email, first_name, last_name, phone_number, date_of_birth,
	shopify_customer_id, age, hobbies, occupation, usual_size, custom_fields,
	created_at, updated_at
`

type customerRepository struct {
	db *sql.DB
}

// NewCustomerRepository creates a new PostgreSQL customer repository
func NewCustomerRepository(db *sql.DB) domain.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) UpsertCustomer(ctx context.Context, customer *domain.Customer) error {
	now := time.Now().UTC()
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	customer.CreatedAt = now
	customer.UpdatedAt = now

	// Only overwrite profile fields that the caller actually provided, so a
	// photo upload does not blank out a previously saved profile.
	query := `
		INSERT INTO customers (
			id, email, first_name, last_name, phone_number, date_of_birth,
			age, hobbies, occupation, usual_size, custom_fields, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (email) DO UPDATE SET
			first_name = COALESCE(EXCLUDED.first_name, customers.first_name),
			last_name = COALESCE(EXCLUDED.last_name, customers.last_name),
			phone_number = COALESCE(EXCLUDED.phone_number, customers.phone_number),
			date_of_birth = COALESCE(EXCLUDED.date_of_birth, customers.date_of_birth),
			age = COALESCE(EXCLUDED.age, customers.age),
			hobbies = COALESCE(EXCLUDED.hobbies, customers.hobbies),
			occupation = COALESCE(EXCLUDED.occupation, customers.occupation),
			usual_size = COALESCE(EXCLUDED.usual_size, customers.usual_size),
			custom_fields = COALESCE(EXCLUDED.custom_fields, customers.custom_fields),
			updated_at = EXCLUDED.updated_at
	`

	var customFields interface{}
	if len(customer.CustomFields) > 0 {
		customFields = []byte(customer.CustomFields)
	}

	_, err := r.db.ExecContext(ctx, query,
		customer.ID,
		customer.Email,
		customer.FirstName,
		customer.LastName,
		customer.PhoneNumber,
		customer.DateOfBirth,
		customer.Age,
		customer.Hobbies,
		customer.Occupation,
		customer.UsualSize,
		customFields,
		customer.CreatedAt,
		customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert customer: %w", err)
	}

	return nil
}

func (r *customerRepository) GetCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`

	row := r.db.QueryRowContext(ctx, query, email)
	customer, err := domain.ScanCustomer(row)

	if err == sql.ErrNoRows {
		return nil, &domain.ErrCustomerNotFound{Message: "customer not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return customer, nil
}

func (r *customerRepository) UpdateShopifyProfile(ctx context.Context, email string, firstName, lastName, phone, shopifyCustomerID *string) error {
	query := `
		UPDATE customers SET
			first_name = COALESCE(first_name, $2),
			last_name = COALESCE(last_name, $3),
			phone_number = COALESCE(phone_number, $4),
			shopify_customer_id = COALESCE($5, shopify_customer_id),
			updated_at = $6
		WHERE email = $1
	`

	result, err := r.db.ExecContext(ctx, query, email, firstName, lastName, phone, shopifyCustomerID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to update shopify profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return &domain.ErrCustomerNotFound{Message: "customer not found"}
	}

	return nil
}
