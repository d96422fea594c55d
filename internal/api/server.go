package api

import (
	"fmt"
	"time"

	"maestro/internal/config"
	"maestro/internal/database"
	"maestro/internal/handlers"
	"maestro/internal/logger"
	"maestro/internal/messaging"
	"maestro/internal/metrics"
	"maestro/internal/middleware"
	"maestro/internal/repository"
	"maestro/internal/search"
	"maestro/internal/service"
	"maestro/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Server wires config, storage and services into a gin engine.
type Server struct {
	router   *gin.Engine
	config   *config.Config
	db       *database.DB
	nats     *messaging.NATSClient
	tokens   *token.Manager
	services *service.Services
	repos    *repository.Repositories
}

func NewServer(cfg *config.Config) *Server {
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if err := db.RunMigrations(); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	// NATS, Elasticsearch and Redis are optional; the service degrades
	// without them.
	var natsClient *messaging.NATSClient
	if cfg.NATS.URL != "" {
		natsClient, err = messaging.NewNATSClient(cfg.NATS)
		if err != nil {
			logger.Fatal("Failed to connect to NATS", "error", err)
		}
	}

	var idx service.EventIndex
	if cfg.Elasticsearch.URL != "" {
		esClient, err := search.NewClient(cfg.Elasticsearch)
		if err != nil {
			logger.Fatal("Failed to connect to Elasticsearch", "error", err)
		}
		idx = esClient
	}

	repos := repository.NewRepositories(db)
	tokens := token.NewManager(cfg.JWT)
	services := service.NewServices(repos, tokens, natsClient, idx)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(metrics.Handler())

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		window := time.Duration(cfg.RateLimit.WindowSec) * time.Second
		router.Use(middleware.RateLimit(rdb, cfg.RateLimit.Requests, window))
	}

	server := &Server{
		router:   router,
		config:   cfg,
		db:       db,
		nats:     natsClient,
		tokens:   tokens,
		services: services,
		repos:    repos,
	}

	server.setupRoutes()

	return server
}

func (s *Server) setupRoutes() {
	h := handlers.NewHandlers(s.services)

	api := s.router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", h.Signup)
			auth.POST("/login", h.Login)
		}

		artists := api.Group("/artists")
		{
			artists.GET("", h.ListArtists)
			artists.GET("/:id", h.GetArtistByID)
			artists.POST("", h.CreateArtist)
		}

		// Events and bookings require a valid session token
		protected := api.Group("")
		protected.Use(middleware.BearerAuth(s.tokens))
		{
			events := protected.Group("/events")
			{
				events.GET("", h.ListEvents)
				events.GET("/search", h.SearchEvents)
				events.POST("", h.CreateEvent)
			}

			bookings := protected.Group("/bookings")
			{
				bookings.POST("", h.CreateBooking)
				bookings.GET("/:userId", h.ListBookingsByUser)
			}
		}
	}

	s.router.GET("/health", h.Health)
	s.router.GET("/metrics", metrics.Exposer())
}

// Run starts the HTTP server
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%s", s.config.Port)
	return s.router.Run(addr)
}

// GetRouter returns the router for testing
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// Cleanup closes external connections
func (s *Server) Cleanup() error {
	if s.nats != nil {
		if err := s.nats.Close(); err != nil {
			logger.Get().Error("Error closing NATS connection", "error", err)
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			logger.Get().Error("Error closing database connection", "error", err)
			return err
		}
	}

	return nil
}
