package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "parnika-backend/internal/api/http"
	"parnika-backend/internal/config"
	"parnika-backend/internal/logger"
	"parnika-backend/internal/repository"
	"parnika-backend/internal/repository/fallback"
	"parnika-backend/internal/repository/localstore"
	"parnika-backend/internal/repository/postgres"
	"parnika-backend/internal/security"
	"parnika-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Parnika backend", "address", cfg.GetServerAddress())

	local, err := localstore.NewStore(cfg.Local.DataDir)
	if err != nil {
		logger.Error("Failed to open local store", "dir", cfg.Local.DataDir, "error", err)
		log.Fatalf("Failed to open local store: %v", err)
	}

	// With a database configured, reads degrade to the local store on
	// failure while writes surface provider errors. Without one, the local
	// store serves everything.
	var store *repository.Store
	if cfg.DatabaseConfigured() {
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			logger.Error("Failed to open database", "error", err)
			log.Fatalf("Failed to open database: %v", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Error("Failed to ping database", "error", err)
			log.Fatalf("Failed to ping database: %v", err)
		}
		logger.Info("Database connection established", "host", cfg.Database.Host, "database", cfg.Database.Database)
		store = fallback.NewStore(postgres.NewStore(db), local)
	} else {
		logger.Info("No database configured, using local store", "dir", cfg.Local.DataDir)
		store = local
	}

	tokenManager := security.NewTokenManager(cfg.Admin.JWTSecret, time.Duration(cfg.Admin.SessionExpiryMinutes)*time.Minute)

	var emailSvc service.EmailService
	if cfg.Email.APIKey != "" {
		logger.Info("Request notification email enabled", "to", cfg.Email.AdminTo)
		emailSvc = service.NewSendGridEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName, cfg.Email.AdminTo)
	} else {
		emailSvc = service.NewNoopEmailService()
	}

	catalogSvc := service.NewCatalogService(store.Products)
	rentalSvc := service.NewRentalService(store.Requests, store.Products, store.Customers, store.Invoices, emailSvc)
	billingSvc := service.NewBillingService(store.Invoices, store.Requests, store.Customers)
	customerSvc := service.NewCustomerService(store.Customers, store.Requests)
	authSvc := service.NewAuthService(cfg.Admin.Password, tokenManager)

	router := httpapi.NewRouter(catalogSvc, rentalSvc, billingSvc, customerSvc, authSvc, tokenManager)

	logger.Info("Listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("Server stopped", "error", err)
		log.Fatalf("Server stopped: %v", err)
	}
}
