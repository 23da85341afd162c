package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"tutormatch/config"
	"tutormatch/database"
	userRepoPkg "tutormatch/database/repository/user"
	"tutormatch/handlers"
	"tutormatch/routes"
	"tutormatch/services/booking"
	"tutormatch/services/notification"
	"tutormatch/services/search"
	"tutormatch/services/session"
	"tutormatch/services/user"
	"tutormatch/utils"

	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	checks := map[string]utils.HealthCheck{}

	// repositories.
	var userRepo userRepoPkg.UserRepository
	switch cfg.StoreDriver {
	case "memory":
		logger.Warn("main: using in-memory store, data is lost on restart")
		userRepo = userRepoPkg.NewMemoryUserRepo()
	default:
		client, err := database.InitDB(ctx, cfg)
		if err != nil {
			logger.Fatal("main: failed to connect to MongoDB", zap.Error(err))
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}()
		checks["mongo"] = utils.MongoCheck(client)

		mongoRepo := userRepoPkg.NewMongoUserRepo(
			database.Database(client, cfg).Collection(userRepoPkg.CollectionName),
			cfg.MongoTransactions,
		)
		if err := mongoRepo.EnsureIndexes(ctx); err != nil {
			logger.Warn("main: failed to ensure user indexes", zap.Error(err))
		}
		userRepo = mongoRepo
	}

	// sessions.
	if cfg.JWTSecret == "" {
		logger.Warn("main: JWT_SECRET is empty, every request will be treated as signed out")
	}
	var revocations session.RevocationStore
	if cfg.RedisAddr != "" {
		redisClient, err := utils.NewAuthCacheClient(ctx, cfg)
		if err != nil {
			logger.Warn("main: sign-out disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			checks["redis"] = utils.RedisCheck(redisClient)
			revocations = session.NewRedisRevocationStore(redisClient)
		}
	}
	sessions := session.NewJWTProvider(cfg.JWTSecret, revocations)

	// events.
	var events notification.Publisher = notification.NoopPublisher{}
	if cfg.NATSURL != "" {
		publisher, closeNATS, err := notification.NewNatsPublisher(cfg.NATSURL)
		if err != nil {
			logger.Warn("main: booking events disabled", zap.Error(err))
		} else {
			defer closeNATS()
			events = publisher
		}
	}

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	searchService := &search.DefaultSearchService{Repo: userRepo}
	bookingService := booking.NewBookingService(userRepo, events, cfg.BookingUTCOffsetHours)

	monitor := utils.NewHealthMonitor(checks)
	monitor.Start(ctx, 60*time.Second)

	handlerBundle := handlers.NewHandlerBundle(handlers.Services{
		Users:    userService,
		Search:   searchService,
		Booking:  bookingService,
		Sessions: sessions,
		Health:   monitor,
	})
	router := routes.NewRouter(handlerBundle, routes.Options{
		Logger:            logger,
		Sessions:          sessions,
		MaxRequestsPerMin: cfg.MaxRequestsPerMin,
	})

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr), zap.String("store", cfg.StoreDriver))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	logger.Info("main: server stopped gracefully")
}
