package schema

// TableDefinitions contains all the SQL statements to create the database tables
// Don't put REFERENCES and don't put CHECK constraints in the CREATE TABLE statements
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id UUID PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		first_name VARCHAR(255),
		last_name VARCHAR(255),
		phone_number VARCHAR(50),
		date_of_birth TIMESTAMP,
		shopify_customer_id VARCHAR(255),
		age INTEGER,
		hobbies TEXT,
		occupation VARCHAR(255),
		usual_size VARCHAR(20),
		custom_fields JSONB,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS accounts (
		id UUID PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		first_name VARCHAR(255),
		last_name VARCHAR(255),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS body_measurements (
		id UUID PRIMARY KEY,
		customer_email VARCHAR(255) UNIQUE NOT NULL,
		chest_width DECIMAL,
		overall_width DECIMAL,
		sleeve_width DECIMAL,
		top_length DECIMAL,
		waist DECIMAL,
		hip DECIMAL,
		rise DECIMAL,
		thigh_width DECIMAL,
		bottom_length DECIMAL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS photos (
		id UUID PRIMARY KEY,
		customer_email VARCHAR(255) NOT NULL,
		photo_url TEXT NOT NULL,
		original_name VARCHAR(255),
		file_size BIGINT,
		mime_type VARCHAR(100),
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		is_virtual_fitting_photo BOOLEAN NOT NULL DEFAULT FALSE,
		webhook_sent BOOLEAN NOT NULL DEFAULT FALSE,
		webhook_attempts INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_photos_customer_email ON photos (customer_email)`,
	`CREATE INDEX IF NOT EXISTS idx_photos_status ON photos (status)`,
	`CREATE TABLE IF NOT EXISTS size_charts (
		id UUID PRIMARY KEY,
		brand VARCHAR(255) NOT NULL,
		collection VARCHAR(255),
		product_type VARCHAR(50) NOT NULL,
		sizes JSONB NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS size_recommendations (
		id UUID PRIMARY KEY,
		customer_email VARCHAR(255) NOT NULL,
		size_chart_id UUID NOT NULL,
		recommended_size VARCHAR(20) NOT NULL,
		confidence DECIMAL NOT NULL,
		product_type VARCHAR(50) NOT NULL,
		measurement_data JSONB,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_size_recommendations_customer_email ON size_recommendations (customer_email)`,
	`CREATE TABLE IF NOT EXISTS shopify_orders (
		id UUID PRIMARY KEY,
		shopify_order_id VARCHAR(255) UNIQUE NOT NULL,
		customer_email VARCHAR(255) NOT NULL,
		order_number VARCHAR(50) NOT NULL,
		total_price DECIMAL NOT NULL DEFAULT 0,
		currency VARCHAR(10) NOT NULL DEFAULT 'USD',
		order_status VARCHAR(50) NOT NULL,
		fulfillment_status VARCHAR(50),
		order_data JSONB,
		order_date TIMESTAMP NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_shopify_orders_customer_email ON shopify_orders (customer_email)`,
}

// TableNames lists the tables in dependency-safe drop order
var TableNames = []string{
	"size_recommendations",
	"size_charts",
	"shopify_orders",
	"photos",
	"body_measurements",
	"accounts",
	"customers",
}
