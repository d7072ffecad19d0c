package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jetwave/jetski-booking-backend/internal/api"
	"github.com/jetwave/jetski-booking-backend/internal/auth"
	"github.com/jetwave/jetski-booking-backend/internal/availability"
	"github.com/jetwave/jetski-booking-backend/internal/booking"
	"github.com/jetwave/jetski-booking-backend/internal/catalog"
	"github.com/jetwave/jetski-booking-backend/internal/payment"
	"github.com/jetwave/jetski-booking-backend/internal/reservation"
	"github.com/jetwave/jetski-booking-backend/internal/review"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	// DBPool may be nil, in which case the in-memory stores are used.
	DBPool *pgxpool.Pool

	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	AdminPasswordHash string

	Provider payment.Provider
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	provider := cfg.Provider
	if provider == nil {
		provider = payment.NewDisabled()
	}

	// Stores. A nil pool selects the seeded in-memory repositories.
	var (
		catalogRepo catalog.Repository
		ledger      reservation.Repository
		reviewRepo  review.Repository
	)
	if cfg.DBPool != nil {
		catalogRepo = catalog.NewPgxRepository(cfg.DBPool)
		ledger = reservation.NewPgxRepository(cfg.DBPool)
		reviewRepo = review.NewPgxRepository(cfg.DBPool)
	} else {
		catalogRepo = catalog.NewMemoryRepository()
		ledger = reservation.NewMemoryRepository()
		reviewRepo = review.NewMemoryRepository()
	}

	// Catalog Module
	catalogService := catalog.NewService(catalogRepo)

	// Availability Engine
	engine := availability.NewEngine(catalogRepo, ledger)

	// Booking Module
	bookingService := booking.NewService(engine, catalogRepo, ledger, provider)

	// Review Module
	reviewService := review.NewService(reviewRepo)

	// API Router Config
	routerParams := api.Config{
		IsProduction:      cfg.IsProduction,
		ProdOrigins:       cfg.ProdOrigins,
		CatalogService:    catalogService,
		BookingService:    bookingService,
		ReviewService:     reviewService,
		Provider:          provider,
		AdminPasswordHash: cfg.AdminPasswordHash,
		PasswordHasher:    passwordHasher,
		JWTManager:        jwtManager,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}
}
