package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/memstore"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/yukikurage/project-admin/internal/config"
	"github.com/yukikurage/project-admin/internal/database"
	"github.com/yukikurage/project-admin/internal/events"
	"github.com/yukikurage/project-admin/internal/handlers"
	"github.com/yukikurage/project-admin/internal/services"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, log, db, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer database.Close(db)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	if err := database.Migrate(db, log); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	store, err := newSessionStore(cfg, log)
	if err != nil {
		return err
	}

	publisher := newPublisher(cfg, log)
	defer publisher.Close()

	// Initialize AI service
	var sugeridor services.Sugeridor
	if cfg.OpenAIAPIKey != "" {
		sugeridor = services.NewAIService(cfg.OpenAIAPIKey)
	}

	router := handlers.NewRouter(handlers.RouterConfig{
		Logger:    log,
		Store:     store,
		Servicios: services.NewServicios(database.NewDataContext(db), publisher, sugeridor),
		Ping: func(ctx context.Context) error {
			return database.Ping(ctx, db, 2*time.Second)
		},
	})

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Str("driver", cfg.DBDriver).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	return waitForShutdown(server, db, errCh, log)
}

// waitForShutdown blocks until an interrupt or SIGTERM is received, then shuts down the server.
func waitForShutdown(server *http.Server, db *gorm.DB, errCh <-chan error, log zerolog.Logger) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}

// newSessionStore uses Redis when REDIS_HOST is set and an in-process store otherwise.
func newSessionStore(cfg *config.Config, log zerolog.Logger) (sessions.Store, error) {
	var store sessions.Store
	if cfg.RedisHost != "" {
		redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
		rs, err := redisStore.NewStore(
			10,                        // Redis pool size
			"tcp",                     // network type
			redisAddr,                 // Redis address from config
			"",                        // password (empty = no password)
			[]byte(cfg.SessionSecret), // authentication key
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis store: %w", err)
		}
		store = rs
		log.Info().Str("addr", redisAddr).Msg("sessions stored in redis")
	} else {
		store = memstore.NewStore([]byte(cfg.SessionSecret))
		log.Warn().Msg("REDIS_HOST not set, sessions kept in memory")
	}

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	return store, nil
}

func newPublisher(cfg *config.Config, log zerolog.Logger) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		return events.NoopPublisher{}
	}
	p, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, log)
	if err != nil {
		log.Warn().Err(err).Msg("catalog events disabled")
		return events.NoopPublisher{}
	}
	log.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("publishing catalog events to kafka")
	return p
}
