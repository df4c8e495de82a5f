package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fitportal/fitportal/config"
	"github.com/fitportal/fitportal/internal/database"
	"github.com/fitportal/fitportal/internal/domain"
	httpHandler "github.com/fitportal/fitportal/internal/http"
	"github.com/fitportal/fitportal/internal/http/middleware"
	"github.com/fitportal/fitportal/internal/repository"
	"github.com/fitportal/fitportal/internal/service"
	"github.com/fitportal/fitportal/pkg/filestore"
	"github.com/fitportal/fitportal/pkg/logger"
	"github.com/fitportal/fitportal/pkg/mailer"
	"github.com/fitportal/fitportal/pkg/ratelimiter"
)

// uploadRateLimit caps photo uploads per client IP within uploadRateWindow.
const (
	uploadRateLimit  = 5
	uploadRateWindow = time.Minute
)

// AppInterface defines the interface for the App
type AppInterface interface {
	Initialize() error
	Start() error
	Shutdown(ctx context.Context) error

	// Getters for app components accessed in tests
	GetConfig() *config.Config
	GetLogger() logger.Logger
	GetMux() *http.ServeMux
	GetDB() *sql.DB
	GetMailer() mailer.Mailer

	// Repository getters for testing
	GetPhotoRepository() domain.PhotoRepository
	GetCustomerRepository() domain.CustomerRepository
	GetMeasurementsRepository() domain.MeasurementsRepository
	GetSizeChartRepository() domain.SizeChartRepository
	GetShopifyOrderRepository() domain.ShopifyOrderRepository
	GetAccountRepository() domain.AccountRepository

	// Server status methods
	IsServerCreated() bool
	WaitForServerStart(ctx context.Context) bool

	// Methods for initialization steps
	InitDB() error
	InitMailer() error
	InitRepositories() error
	InitServices() error
	InitHandlers() error

	// Graceful shutdown methods
	SetShutdownTimeout(timeout time.Duration)
	GetActiveRequestCount() int64
	GetShutdownContext() context.Context
}

// App encapsulates the application dependencies and configuration
type App struct {
	config  *config.Config
	logger  logger.Logger
	db      *sql.DB
	mailer  mailer.Mailer
	store   *filestore.Store
	limiter *ratelimiter.RateLimiter

	// Repositories
	photoRepo        domain.PhotoRepository
	customerRepo     domain.CustomerRepository
	measurementsRepo domain.MeasurementsRepository
	sizeChartRepo    domain.SizeChartRepository
	shopifyOrderRepo domain.ShopifyOrderRepository
	accountRepo      domain.AccountRepository
	recRepo          domain.SizeRecommendationRepository

	// Services
	authService     *service.AuthService
	customerService *service.CustomerService
	photoService    *service.PhotoService
	sizingService   *service.SizingService
	shopifyService  *service.ShopifyService
	webhookService  *service.WebhookService

	// HTTP handlers
	mux    *http.ServeMux
	server *http.Server

	// Server synchronization
	serverMu      sync.RWMutex
	serverStarted chan struct{}

	// Graceful shutdown management
	shutdownCtx     context.Context
	shutdownCancel  context.CancelFunc
	activeRequests  int64
	requestWg       sync.WaitGroup
	shutdownTimeout time.Duration
}

// AppOption defines a functional option for configuring the App
type AppOption func(*App)

// WithMockDB configures the app to use a mock database
func WithMockDB(db *sql.DB) AppOption {
	return func(a *App) {
		a.db = db
	}
}

// WithMockMailer configures the app to use a mock mailer
func WithMockMailer(m mailer.Mailer) AppOption {
	return func(a *App) {
		a.mailer = m
	}
}

// WithLogger sets a custom logger
func WithLogger(logger logger.Logger) AppOption {
	return func(a *App) {
		a.logger = logger
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) AppInterface {
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())

	app := &App{
		config:          cfg,
		logger:          logger.NewLoggerWithLevel(cfg.LogLevel),
		mux:             http.NewServeMux(),
		serverStarted:   make(chan struct{}),
		shutdownCtx:     shutdownCtx,
		shutdownCancel:  shutdownCancel,
		shutdownTimeout: 30 * time.Second,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// InitDB initializes the database connection
func (a *App) InitDB() error {
	// Skip if db already set (e.g., by mock)
	if a.db == nil {
		password := a.config.Database.Password
		maskedPassword := ""
		if len(password) > 0 {
			maskedPassword = fmt.Sprintf("%c...%c", password[0], password[len(password)-1])
		}
		a.logger.Info(fmt.Sprintf("Connecting to database %s:%d, user %s, sslmode %s, password: %s, dbname: %s",
			a.config.Database.Host, a.config.Database.Port, a.config.Database.User,
			a.config.Database.SSLMode, maskedPassword, a.config.Database.DBName))

		db, err := database.Connect(&a.config.Database)
		if err != nil {
			return err
		}
		a.db = db
	}

	if err := database.InitializeDatabase(a.db); err != nil {
		a.db.Close()
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	return nil
}

// InitMailer initializes the mailer used for webhook failure alerts
func (a *App) InitMailer() error {
	// Skip if mailer already set (e.g., by mock)
	if a.mailer != nil {
		return nil
	}

	if a.config.SMTP.Host == "" {
		a.mailer = mailer.NoopMailer{}
		a.logger.Info("SMTP not configured, webhook failure alerts disabled")
		return nil
	}

	a.mailer = mailer.NewSMTPMailer(&mailer.Config{
		SMTPHost:     a.config.SMTP.Host,
		SMTPPort:     a.config.SMTP.Port,
		SMTPUsername: a.config.SMTP.Username,
		SMTPPassword: a.config.SMTP.Password,
		FromEmail:    a.config.SMTP.FromEmail,
		FromName:     a.config.SMTP.FromName,
		AlertEmail:   a.config.Webhook.AlertEmail,
	})
	a.logger.Info("Using SMTP mailer for webhook failure alerts")

	return nil
}

// InitRepositories initializes all repositories
func (a *App) InitRepositories() error {
	if a.db == nil {
		return fmt.Errorf("database must be initialized before repositories")
	}

	a.photoRepo = repository.NewPhotoRepository(a.db)
	a.customerRepo = repository.NewCustomerRepository(a.db)
	a.measurementsRepo = repository.NewMeasurementsRepository(a.db)
	a.sizeChartRepo = repository.NewSizeChartRepository(a.db)
	a.shopifyOrderRepo = repository.NewShopifyOrderRepository(a.db)
	a.accountRepo = repository.NewAccountRepository(a.db)
	a.recRepo = repository.NewSizeRecommendationRepository(a.db)

	return nil
}

// InitServices initializes all application services
func (a *App) InitServices() error {
	a.store = filestore.NewStore(a.config.Uploads.Dir, a.config.Uploads.MaxFileSize)
	if err := a.store.EnsureDir(); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	a.limiter = ratelimiter.NewRateLimiter()
	a.limiter.SetPolicy("upload", uploadRateLimit, uploadRateWindow)

	authServiceConfig := service.AuthServiceConfig{
		AccountRepository:  a.accountRepo,
		CustomerRepository: a.customerRepo,
		PrivateKey:         a.config.Security.PasetoPrivateKeyBytes,
		PublicKey:          a.config.Security.PasetoPublicKeyBytes,
		AdminPasswordHash:  a.config.Security.AdminPasswordHash,
		Logger:             a.logger,
	}

	var err error
	a.authService, err = service.NewAuthService(authServiceConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize auth service: %w", err)
	}

	a.webhookService = service.NewWebhookService(
		a.photoRepo,
		a.mailer,
		a.config.Webhook,
		a.logger,
	)

	a.photoService = service.NewPhotoService(
		a.photoRepo,
		a.customerRepo,
		a.store,
		a.webhookService,
		a.logger,
	)

	a.customerService = service.NewCustomerService(
		a.customerRepo,
		a.measurementsRepo,
		a.logger,
	)

	a.sizingService = service.NewSizingService(
		a.measurementsRepo,
		a.sizeChartRepo,
		a.recRepo,
		a.logger,
	)

	a.shopifyService = service.NewShopifyService(
		a.shopifyOrderRepo,
		a.customerRepo,
		a.config.Shopify,
		a.logger,
	)

	return nil
}

// InitHandlers initializes all HTTP handlers and routes
func (a *App) InitHandlers() error {
	// Create a new ServeMux to avoid route conflicts on restart
	a.mux = http.NewServeMux()

	photoHandler := httpHandler.NewPhotoHandler(
		a.photoService,
		a.webhookService,
		a.store,
		a.limiter,
		a.authService,
		a.logger,
	)
	customerHandler := httpHandler.NewCustomerHandler(a.customerService, a.logger)
	recommendationHandler := httpHandler.NewRecommendationHandler(a.sizingService, a.logger)
	orderHandler := httpHandler.NewOrderHandler(a.shopifyService, a.logger)
	authHandler := httpHandler.NewAuthHandler(a.authService, a.logger)
	rootHandler := httpHandler.NewRootHandler(a.db, a.config.Version, a.logger)

	photoHandler.RegisterRoutes(a.mux)
	customerHandler.RegisterRoutes(a.mux)
	recommendationHandler.RegisterRoutes(a.mux)
	orderHandler.RegisterRoutes(a.mux)
	authHandler.RegisterRoutes(a.mux)
	rootHandler.RegisterRoutes(a.mux)

	return nil
}

// Start starts the HTTP server
func (a *App) Start() error {
	var handler http.Handler = a.mux

	// Graceful shutdown middleware first (outermost)
	handler = a.gracefulShutdownMiddleware(handler)

	// Apply CORS middleware
	handler = middleware.CORSMiddleware(handler)

	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.logger.WithField("address", addr).
		WithField("port", a.config.Server.Port).
		Info(fmt.Sprintf("Server starting on %s", addr))

	a.serverMu.Lock()
	if a.serverStarted != nil {
		close(a.serverStarted)
	}
	a.serverStarted = make(chan struct{})

	a.server = &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	serverStarted := a.serverStarted
	a.serverMu.Unlock()

	// Signal that the server has been created and is about to start
	close(serverStarted)

	return a.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Starting graceful shutdown...")

	// Signal shutdown to all components
	a.shutdownCancel()

	a.serverMu.RLock()
	server := a.server
	a.serverMu.RUnlock()

	if server == nil {
		a.logger.Info("No server to shutdown")
		return a.cleanupResources()
	}

	activeCount := a.getActiveRequestCount()
	a.logger.WithField("active_requests", activeCount).Info("Active requests at shutdown start")

	shutdownTimeout := a.shutdownTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < shutdownTimeout {
			shutdownTimeout = remaining - time.Second
			if shutdownTimeout < 0 {
				shutdownTimeout = 0
			}
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	serverShutdownDone := make(chan error, 1)
	go func() {
		serverShutdownDone <- server.Shutdown(shutdownCtx)
	}()

	var shutdownErr error
	select {
	case err := <-serverShutdownDone:
		shutdownErr = err
		a.logger.Info("HTTP server shutdown completed")
	case <-shutdownCtx.Done():
		a.logger.Warn("Shutdown timeout reached")
		shutdownErr = fmt.Errorf("shutdown timeout exceeded")
	}

	// Wait a bit more for in-flight requests if the server closed quickly
	if shutdownErr == nil {
		requestsDone := make(chan struct{})
		go func() {
			a.requestWg.Wait()
			close(requestsDone)
		}()

		select {
		case <-requestsDone:
		case <-time.After(2 * time.Second):
			activeCount := a.getActiveRequestCount()
			if activeCount > 0 {
				a.logger.WithField("active_requests", activeCount).Warn("Some requests still active, proceeding with shutdown")
			}
		}
	}

	if cleanupErr := a.cleanupResources(); cleanupErr != nil {
		a.logger.WithField("error", cleanupErr).Error("Error during resource cleanup")
		if shutdownErr == nil {
			shutdownErr = cleanupErr
		}
	}

	if shutdownErr != nil {
		a.logger.WithField("error", shutdownErr).Error("Graceful shutdown completed with errors")
	} else {
		a.logger.Info("Graceful shutdown completed successfully")
	}

	return shutdownErr
}

// cleanupResources handles cleanup of the database and rate limiter
func (a *App) cleanupResources() error {
	a.logger.Info("Cleaning up resources...")

	if a.limiter != nil {
		a.limiter.Stop()
	}

	if a.db != nil {
		a.logger.Info("Closing database connection")
		if err := a.db.Close(); err != nil {
			a.logger.WithField("error", err).Error("Error closing database connection")
			return err
		}
	}

	a.logger.Info("Resource cleanup completed")
	return nil
}

// IsServerCreated safely checks if the server has been created
func (a *App) IsServerCreated() bool {
	a.serverMu.RLock()
	defer a.serverMu.RUnlock()
	return a.server != nil
}

// WaitForServerStart waits for the server to be created and initialized
// Returns true if the server started successfully, false if context expired
func (a *App) WaitForServerStart(ctx context.Context) bool {
	a.serverMu.RLock()
	started := a.serverStarted
	a.serverMu.RUnlock()

	if started == nil {
		a.logger.Error("serverStarted channel is nil - server initialization error")
		<-ctx.Done()
		return false
	}

	select {
	case <-started:
		return a.IsServerCreated()
	case <-ctx.Done():
		return false
	}
}

// Initialize sets up all components of the application
func (a *App) Initialize() error {
	a.logger.WithField("version", a.config.Version).Info("Starting FitPortal application")

	if err := a.InitDB(); err != nil {
		return err
	}

	if err := a.InitMailer(); err != nil {
		return err
	}

	if err := a.InitRepositories(); err != nil {
		return err
	}

	if err := a.InitServices(); err != nil {
		return err
	}

	if err := a.InitHandlers(); err != nil {
		return err
	}

	a.logger.Info("Application successfully initialized")
	return nil
}

// GetConfig returns the app's configuration
func (a *App) GetConfig() *config.Config {
	return a.config
}

// GetLogger returns the app's logger
func (a *App) GetLogger() logger.Logger {
	return a.logger
}

// GetMux returns the app's HTTP multiplexer
func (a *App) GetMux() *http.ServeMux {
	return a.mux
}

// GetDB returns the app's database connection
func (a *App) GetDB() *sql.DB {
	return a.db
}

// GetMailer returns the app's mailer
func (a *App) GetMailer() mailer.Mailer {
	return a.mailer
}

// Repository getters for testing
func (a *App) GetPhotoRepository() domain.PhotoRepository {
	return a.photoRepo
}

func (a *App) GetCustomerRepository() domain.CustomerRepository {
	return a.customerRepo
}

func (a *App) GetMeasurementsRepository() domain.MeasurementsRepository {
	return a.measurementsRepo
}

func (a *App) GetSizeChartRepository() domain.SizeChartRepository {
	return a.sizeChartRepo
}

func (a *App) GetShopifyOrderRepository() domain.ShopifyOrderRepository {
	return a.shopifyOrderRepo
}

func (a *App) GetAccountRepository() domain.AccountRepository {
	return a.accountRepo
}

// incrementActiveRequests atomically increments the active request counter
func (a *App) incrementActiveRequests() {
	atomic.AddInt64(&a.activeRequests, 1)
	a.requestWg.Add(1)
}

// decrementActiveRequests atomically decrements the active request counter
func (a *App) decrementActiveRequests() {
	atomic.AddInt64(&a.activeRequests, -1)
	a.requestWg.Done()
}

// getActiveRequestCount returns the current number of active requests
func (a *App) getActiveRequestCount() int64 {
	return atomic.LoadInt64(&a.activeRequests)
}

// GetActiveRequestCount returns the current number of active requests (public interface method)
func (a *App) GetActiveRequestCount() int64 {
	return a.getActiveRequestCount()
}

// SetShutdownTimeout sets the timeout for graceful shutdown
func (a *App) SetShutdownTimeout(timeout time.Duration) {
	a.shutdownTimeout = timeout
	a.logger.WithField("shutdown_timeout", timeout).Info("Shutdown timeout configured")
}

// GetShutdownContext returns the shutdown context for components that need to watch for shutdown
func (a *App) GetShutdownContext() context.Context {
	return a.shutdownCtx
}

// isShuttingDown returns true if the application is in shutdown mode
func (a *App) isShuttingDown() bool {
	select {
	case <-a.shutdownCtx.Done():
		return true
	default:
		return false
	}
}

// gracefulShutdownMiddleware wraps HTTP handlers to track active requests
func (a *App) gracefulShutdownMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.isShuttingDown() {
			http.Error(w, "Server is shutting down", http.StatusServiceUnavailable)
			return
		}

		a.incrementActiveRequests()
		defer a.decrementActiveRequests()

		next.ServeHTTP(w, r)
	})
}

// Ensure App implements AppInterface
var _ AppInterface = (*App)(nil)
