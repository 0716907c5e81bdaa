package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "github.com/kwarula/discover-diani-explorer-sub001/docs" // swagger docs

	"github.com/kwarula/discover-diani-explorer-sub001/internal/cache"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/config"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/db"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/handler"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/realtime"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/repository"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/service"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Discover Diani Data API
// @version 1.0
// @description API de lectura para la app de turismo (listings, POIs, reviews, broker de claves)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis: clientes de larga vida, construidos acá y solo acá,
	// inyectados a cada componente (nada de singletons de paquete)
	database, err := db.Connect(context.Background(), cfg)
	if err != nil {
		log.Fatalf("[mongo] error conectando: %v", err)
	}
	defer db.Disconnect(context.Background(), database)

	redisClient, err := cache.New(cfg)
	if err != nil {
		log.Fatalf("[redis] error conectando: %v", err)
	}

	// capa de acceso: un executor compartido sobre el store
	exec := store.NewExecutor(database)

	listingRepo := repository.NewListingRepository(exec)
	poiRepo := repository.NewPOIRepository(exec)
	reviewRepo := repository.NewReviewRepository(exec)
	operatorRepo := repository.NewOperatorRepository(exec)
	userRepo := repository.NewUserRepository(database)

	invalidator := realtime.NewInvalidator(database)

	// services
	listingSvc := service.NewListingService(listingRepo, cfg.IsProduction())
	poiSvc := service.NewPOIService(poiRepo, cfg.RelevanceAddr)
	reviewSvc := service.NewReviewService(reviewRepo)
	operatorSvc := service.NewOperatorService(operatorRepo)
	keysSvc := service.NewKeysService(cfg)
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)

	// handlers
	listingH := handler.NewListingHandler(listingSvc)
	poiH := handler.NewPOIHandler(poiSvc)
	reviewH := handler.NewReviewHandler(reviewSvc)
	operatorH := handler.NewOperatorHandler(operatorSvc)
	keysH := handler.NewKeysHandler(keysSvc)
	authH := handler.NewAuthHandler(authSvc)
	liveH := handler.NewLiveHandler(listingRepo, invalidator)
	healthH := handler.NewHealthHandler(database.Client())

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", healthH.Health)

	r.Group(func(r chi.Router) {
		r.Use(handler.RateLimit(redisClient, "auth", 10, time.Minute))
		r.Post("/auth/register", authH.Register)
		r.Post("/auth/login", authH.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(handler.JWTAuth(cfg.JWTSecret))
		r.Get("/api/me", authH.Me)
	})

	// Lecturas (públicas)
	r.Get("/api/listings", listingH.Query)
	r.Get("/api/listings/featured", listingH.Featured)
	r.Get("/api/listings/{id}", listingH.GetByID)

	r.Get("/api/pois", poiH.Query)
	r.Get("/api/pois/relevant", poiH.Relevant)
	r.Get("/api/pois/{id}", poiH.GetByID)

	r.Get("/api/reviews", reviewH.List)
	r.Get("/api/operators/{id}", operatorH.GetByID)

	// Query viva por WebSocket
	r.Get("/ws/listings", liveH.ListingsWS)

	// Broker de claves: requiere sesión, el service valida el token él mismo
	r.Group(func(r chi.Router) {
		r.Use(handler.RateLimit(redisClient, "keys", 30, time.Minute))
		r.Post("/api/keys", keysH.RequestKey)
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
