package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"time"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	httpapi "anacarlita-backend/internal/api/http"
	"anacarlita-backend/internal/config"
	"anacarlita-backend/internal/logger"
	"anacarlita-backend/internal/repository/firestore"
	"anacarlita-backend/internal/security"
	"anacarlita-backend/internal/service"
	"anacarlita-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Ana Carlita backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("SMTP configuration", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)

	ctx := context.Background()

	// Initialize Firebase (identity, document store, bucket)
	var opts []option.ClientOption
	if cfg.Firebase.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.Firebase.ProjectID,
		StorageBucket: cfg.Firebase.StorageBucket,
	}, opts...)
	if err != nil {
		logger.Error("Failed to initialize firebase app", "error", err)
		log.Fatalf("Failed to initialize firebase app: %v", err)
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		logger.Error("Failed to create firestore client", "error", err)
		log.Fatalf("Failed to create firestore client: %v", err)
	}
	defer firestoreClient.Close()

	authClient, err := app.Auth(ctx)
	if err != nil {
		logger.Error("Failed to create auth client", "error", err)
		log.Fatalf("Failed to create auth client: %v", err)
	}
	logger.Info("Firebase connection established", "project_id", cfg.Firebase.ProjectID)

	// Initialize Repositories
	store := firestore.NewStore(firestoreClient)

	// Initialize Security
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.SessionExpiryHours)*time.Hour,
	)

	// Initialize Storage Service
	var storageService storage.StorageInterface
	var mockStorage *storage.MockStorageService
	switch cfg.Storage.Type {
	case "", "mock":
		logger.Info("Using mock storage (local filesystem)", "upload_dir", cfg.Storage.UploadDir)
		mockStorage, err = storage.NewMockStorageService(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize mock storage", "error", err)
			log.Fatalf("Failed to initialize mock storage: %v", err)
		}
		storageService = mockStorage
	case "gcs":
		storageClient, err := app.Storage(ctx)
		if err != nil {
			logger.Error("Failed to create storage client", "error", err)
			log.Fatalf("Failed to create storage client: %v", err)
		}
		bucket, err := storageClient.Bucket(cfg.Firebase.StorageBucket)
		if err != nil {
			logger.Error("Failed to open storage bucket", "error", err, "bucket", cfg.Firebase.StorageBucket)
			log.Fatalf("Failed to open storage bucket: %v", err)
		}
		logger.Info("Using hosted bucket storage", "bucket", cfg.Firebase.StorageBucket)
		storageService = storage.NewGCSStorageService(bucket)
	default:
		logger.Error("Unsupported storage type", "type", cfg.Storage.Type)
		log.Fatalf("Storage type '%s' not supported", cfg.Storage.Type)
	}

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
		cfg.SMTP.NotificationEmail,
	)

	// Initialize Checkout Service
	checkoutSvc := service.NewCheckoutService(
		cfg.Checkout.SecretKey,
		cfg.Checkout.WebhookSecret,
		cfg.Checkout.SuccessURL,
		cfg.Checkout.CancelURL,
	)

	// Initialize Services
	authSvc := service.NewAuthService(
		service.NewFirebaseVerifier(authClient),
		store.UserRepository,
		tokenManager,
	)
	rentalSvc := service.NewRentalService(store.RentalItemRepository, checkoutSvc)
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.RentalItemRepository,
		store.UserRepository,
		store.NotificationRepository,
		emailSvc,
		checkoutSvc,
	)
	eventSvc := service.NewEventService(store.EventRepository, emailSvc)
	contactSvc := service.NewContactService(emailSvc)
	noteSvc := service.NewNotificationService(store.NotificationRepository)
	imageSvc := service.NewImageStorageService(store.RentalItemRepository, storageService)

	// Build the route table
	router := httpapi.NewRouter(httpapi.RouterConfig{
		AuthService:         authSvc,
		RentalService:       rentalSvc,
		BookingService:      bookingSvc,
		EventService:        eventSvc,
		ContactService:      contactSvc,
		NotificationService: noteSvc,
		ImageService:        imageSvc,
		CheckoutService:     checkoutSvc,
		MockStorage:         mockStorage,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
