package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Lilianobi/audiophile/internal/cart"
	"github.com/Lilianobi/audiophile/internal/catalog"
	"github.com/Lilianobi/audiophile/internal/email"
	h "github.com/Lilianobi/audiophile/internal/http"
	"github.com/Lilianobi/audiophile/internal/order"
)

type Config struct {
	HTTPPort        string
	MongoURI        string
	MongoDBName     string
	RedisAddr       string
	RedisPassword   string
	CatalogDBPath   string
	MigrationsPath  string
	ResendAPIKey    string
	EmailFrom       string
	AppURL          string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:     getEnv("MONGO_DB_NAME", "audiophile"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		CatalogDBPath:   getEnv("CATALOG_DB_PATH", "audiophile.db"),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "internal/catalog/migrations"),
		ResendAPIKey:    getEnv("RESEND_API_KEY", ""),
		EmailFrom:       getEnv("EMAIL_FROM", "Audiophile <onboarding@resend.dev>"),
		AppURL:          getEnv("APP_URL", "http://localhost:3000"),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()
	ctx := context.Background()

	// Product catalog: sqlite seed loaded into memory once at startup.
	catalogRepo, err := catalog.NewRepository(cfg.CatalogDBPath)
	if err != nil {
		log.Fatalf("Failed to open catalog database: %v", err)
	}
	defer catalogRepo.Close()

	if err := catalogRepo.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run catalog migrations: %v", err)
	}

	products, err := catalog.Load(ctx, catalogRepo)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("Catalog loaded: %d products", len(products.All()))

	// Set up MongoDB connection
	mongoDB, err := order.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	orderRepo := order.NewMongoRepository(mongoDB)
	log.Printf("Connected to MongoDB at %s", cfg.MongoURI)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection failed:", err)
	}
	log.Printf("Redis ping succeeded")

	carts := cart.NewService(cart.NewRedisStore(redisClient))
	orderCache := order.NewRedisCache(redisClient)

	// Without an API key order submission still works, confirmation
	// emails are just skipped.
	var mailer email.Mailer
	var notifier order.Notifier
	if cfg.ResendAPIKey != "" {
		resendMailer := email.NewResendMailer(cfg.ResendAPIKey, cfg.EmailFrom)
		mailer = resendMailer
		notifier = email.NewNotifier(resendMailer, cfg.AppURL)
	} else {
		log.Println("RESEND_API_KEY not set, confirmation emails disabled")
	}

	orders := order.NewService(orderRepo, orderCache, notifier)

	productsHandler := h.NewProductsHandler(products)
	cartHandler := h.NewCartHandler(carts, products, cfg.RequestTimeout)
	ordersHandler := h.NewOrdersHandler(orders, cfg.RequestTimeout)
	checkoutHandler := h.NewCheckoutHandler(carts, orders, cfg.RequestTimeout)

	// Setup router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(h.RequestIDMiddleware)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(h.SessionMiddleware)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", productsHandler.List)
			r.Get("/{slug}", productsHandler.GetBySlug)
			r.Get("/{slug}/related", productsHandler.GetRelated)
		})
		r.Get("/categories/{category}", productsHandler.GetByCategory)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Delete("/", cartHandler.Clear)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{product_id}", cartHandler.UpdateQuantity)
			r.Delete("/items/{product_id}", cartHandler.RemoveItem)
		})

		r.Post("/checkout", checkoutHandler.Submit)

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", ordersHandler.Create)
			r.Get("/", ordersHandler.ListByEmail)
			r.Get("/{order_id}", ordersHandler.Get)
			r.Patch("/{order_id}/status", ordersHandler.UpdateStatus)
		})

		r.Get("/confirmation", ordersHandler.Confirmation)

		if mailer != nil {
			emailsHandler := h.NewEmailsHandler(mailer, cfg.RequestTimeout)
			r.Post("/send-emails", emailsHandler.Send)
		}
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(r, "audiophile"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Audiophile server starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	if err := mongoDB.Client().Disconnect(ctx); err != nil {
		log.Printf("mongo disconnect: %v", err)
	}
	log.Println("server exited")
}
