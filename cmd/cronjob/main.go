package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"anacarlita-backend/internal/config"
	"anacarlita-backend/internal/jobs"
	"anacarlita-backend/internal/logger"
	"anacarlita-backend/internal/repository/firestore"
	"anacarlita-backend/internal/scheduler"
	"anacarlita-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'expire-pending-bookings', 'all')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Ana Carlita cronjob runner...", "log_level", cfg.Log.Level)

	ctx := context.Background()

	// Initialize Firebase document store
	var opts []option.ClientOption
	if cfg.Firebase.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
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
	logger.Info("Firebase connection established", "project_id", cfg.Firebase.ProjectID)

	// Initialize Repositories
	store := firestore.NewStore(firestoreClient)

	// Initialize Services
	emailService := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
		cfg.SMTP.NotificationEmail,
	)

	jobServices := &jobs.Services{
		Email: emailService,
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(store, jobServices, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "expire-pending-bookings":
		jobRunner.ExpireStalePendingBookings()
	case "complete-finished-bookings":
		jobRunner.CompleteFinishedBookings()
	case "send-booking-reminders":
		jobRunner.SendBookingReminders()
	case "send-event-digest":
		jobRunner.SendEventDigest()
	case "all":
		jobRunner.RunAllJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - expire-pending-bookings\n")
		fmt.Printf("  - complete-finished-bookings\n")
		fmt.Printf("  - send-booking-reminders\n")
		fmt.Printf("  - send-event-digest\n")
		fmt.Printf("  - all\n")
		os.Exit(1)
	}
}
