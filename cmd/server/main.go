package main // Entry point package

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/flight-reservation-api/internal/config"
	"github.com/iliyamo/flight-reservation-api/internal/database"
	"github.com/iliyamo/flight-reservation-api/internal/handler"
	"github.com/iliyamo/flight-reservation-api/internal/middleware"
	"github.com/iliyamo/flight-reservation-api/internal/queue"
	"github.com/iliyamo/flight-reservation-api/internal/repository"
	"github.com/iliyamo/flight-reservation-api/internal/router"
	"github.com/iliyamo/flight-reservation-api/internal/seed"
	"github.com/iliyamo/flight-reservation-api/internal/service"
	"github.com/iliyamo/flight-reservation-api/pkg/logger"
	"github.com/iliyamo/flight-reservation-api/pkg/metrics"
)

func main() {
	log := logger.NewLogger()
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Info("connecting to mongodb", "db", cfg.MongoDB)
	client, err := database.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("mongodb connection failed", "error", err)
	}
	db := client.Database(cfg.MongoDB)

	users, err := repository.NewUserRepo(ctx, db)
	if err != nil {
		log.Fatal("init user repository", "error", err)
	}
	reservations, err := repository.NewReservationRepo(ctx, db)
	if err != nil {
		log.Fatal("init reservation repository", "error", err)
	}
	customers, err := repository.NewCustomerRepo(ctx, db)
	if err != nil {
		log.Fatal("init customer repository", "error", err)
	}
	aiData := repository.NewAiDataRepo(db)

	m := metrics.NewMetrics("reservation_api")

	if cfg.SeedOnStart || cfg.SeedForce {
		seeder := seed.NewSeeder(users, reservations, customers, aiData, log, m, cfg.BcryptCost)
		if err := seeder.EnsureSeeded(ctx, cfg.SeedForce); err != nil {
			log.Fatal("seed mock fixtures", "error", err)
		}
	}

	authService := service.NewAuthService(users, cfg.JWTSecret, cfg.AccessTTLMin)
	reservationService := service.NewReservationService(reservations, customers, aiData, log)

	// Login audit trail consumer; runs for the process lifetime and
	// reconnects on broker failures.
	go queue.StartLoginConsumer(log)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(middleware.Metrics(m))

	router.Register(e, router.Deps{
		Cfg:          cfg,
		Auth:         handler.NewAuthHandler(authService, log, m),
		Reservations: handler.NewReservationHandler(reservationService, log),
		Redis:        config.NewRedisClient(),
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info("listening", "addr", addr, "env", cfg.Env)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Error("mongodb disconnect", "error", err)
	}
}
