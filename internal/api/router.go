package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jetwave/jetski-booking-backend/internal/auth"
	"github.com/jetwave/jetski-booking-backend/internal/booking"
	bookingHttp "github.com/jetwave/jetski-booking-backend/internal/booking/http"
	"github.com/jetwave/jetski-booking-backend/internal/catalog"
	catalogHttp "github.com/jetwave/jetski-booking-backend/internal/catalog/http"
	"github.com/jetwave/jetski-booking-backend/internal/payment"
	"github.com/jetwave/jetski-booking-backend/internal/review"
	reviewHttp "github.com/jetwave/jetski-booking-backend/internal/review/http"
)

// Config holds the dependencies the router needs to register all routes.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	CatalogService catalog.Service
	BookingService booking.Service
	ReviewService  review.Service
	Provider       payment.Provider

	AdminPasswordHash string
	PasswordHasher    auth.PasswordHasher
	JWTManager        *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000", // Local frontend
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Webhook-Signature"}
	r.Use(cors.New(corsConfig))

	// adminMiddleware: Validates that the request carries a valid admin JWT.
	adminMiddleware := auth.AdminRequired(cfg.JWTManager)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	catalogHandler := catalogHttp.NewHandler(cfg.CatalogService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.Provider)
	reviewHandler := reviewHttp.NewHandler(cfg.ReviewService)
	authHandler := NewAuthHandler(cfg.AdminPasswordHash, cfg.PasswordHasher, cfg.JWTManager)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		v1.POST("/admin/auth", authHandler.Login)

		catalogHttp.RegisterRoutes(v1, catalogHandler, adminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, adminMiddleware)
		reviewHttp.RegisterRoutes(v1, reviewHandler, adminMiddleware)
	}

	return r
}
