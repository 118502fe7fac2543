package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"myhealth/rehab-api/internal/api"
	"myhealth/rehab-api/internal/config"
	"myhealth/rehab-api/internal/docstore"
	"myhealth/rehab-api/internal/logging"
	"myhealth/rehab-api/internal/repository/docrepo"
	"myhealth/rehab-api/internal/service"
	"myhealth/rehab-api/internal/storage"
)

// @title Rehab Training API
// @version 1.0
// @description Rehabilitation training plans, records and community posts.
// @host localhost:3000
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logrus.WithError(err).Fatal("could not load config")
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		logrus.WithError(err).Fatal("could not configure logging")
	}
	log.Info("Starting rehab API server...")

	// --- Document Store ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := docstore.Open(ctx, cfg)
	cancel()
	if err != nil {
		log.WithError(err).Fatal("could not open document store")
	}
	db := docstore.NewDB(store, log.WithField("component", "docstore"))
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(ctx); err != nil {
			log.WithError(err).Error("failed to close document store")
		}
	}()
	log.WithField("backend", cfg.Store.Backend).Info("Document store ready.")

	// --- Initialize Storage ---
	// A nil interface turns the upload-url endpoints into 503s.
	var fileStorage storage.FileStorage
	if cfg.S3.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		fileStorage, err = storage.NewS3Storage(ctx, cfg.S3, log.WithField("component", "s3"))
		cancel()
		if err != nil {
			log.WithError(err).Fatal("failed to initialize S3 storage")
		}
	} else {
		log.Warn("S3 bucket not configured, direct uploads disabled")
	}

	if cfg.Uploads.Dir != "" {
		if err := os.MkdirAll(cfg.Uploads.Dir, 0o755); err != nil {
			log.WithError(err).Fatal("could not create uploads directory")
		}
	}

	// --- Initialize Repositories ---
	repoLog := log.WithField("component", "repository")
	userRepo := docrepo.NewUserRepository(db, repoLog)
	planRepo := docrepo.NewTrainingPlanRepository(db, repoLog)
	exerciseRepo := docrepo.NewExerciseRepository(db, repoLog)
	recordRepo := docrepo.NewTrainingRecordRepository(db, repoLog)
	postRepo := docrepo.NewPostRepository(db, repoLog)
	commentRepo := docrepo.NewCommentRepository(db, repoLog)

	// --- Initialize Services ---
	services := api.Services{
		Auth:     service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration, cfg.JWT.Issuer),
		User:     service.NewUserService(userRepo, planRepo, recordRepo, exerciseRepo),
		Exercise: service.NewExerciseService(exerciseRepo),
		Training: service.NewTrainingService(planRepo, recordRepo, userRepo, log.WithField("component", "training")),
		Post:     service.NewPostService(postRepo, commentRepo, userRepo),
		Upload:   service.NewUploadService(fileStorage),
	}

	// --- Initialize Gin Engine ---
	gin.SetMode(cfg.Server.Mode)
	router := api.NewRouter(cfg, services, log)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.WithField("address", cfg.Server.Address).Info("Server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("ListenAndServe error")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}

	log.Info("Server exiting.")
}
