package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"saathi/internal/agent"
	"saathi/internal/auth"
	"saathi/internal/config"
	"saathi/internal/logging"
	"saathi/internal/observability"
	"saathi/internal/server/app"
	serverhttp "saathi/internal/server/http"
	"saathi/internal/session"
	"saathi/internal/task"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			defer logging.Close()
			return runServer(cmd.Context(), cfg)
		},
	}
}

// stores bundles the persistence backends behind the services.
type stores struct {
	tasks   task.Repository
	users   auth.UserStore
	history session.HistoryStore
	pool    *pgxpool.Pool
}

// buildStores connects to Postgres when a URL is configured and falls back
// to in-memory stores otherwise.
func buildStores(ctx context.Context, cfg config.Config, logger logging.Logger) (stores, error) {
	if cfg.Database.URL == "" {
		logger.Warn("no database.url configured, using in-memory stores")
		return stores{
			tasks:   task.NewMemoryRepository(),
			users:   auth.NewMemoryStore(),
			history: session.NewMemoryStore(),
		}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		return stores{}, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return stores{}, fmt.Errorf("ping database: %w", err)
	}

	taskRepo := task.NewPostgresRepository(pool)
	userStore := auth.NewPostgresStore(pool)
	historyStore := session.NewPostgresStore(pool)
	for _, ensure := range []func(context.Context) error{
		taskRepo.EnsureSchema,
		userStore.EnsureSchema,
		historyStore.EnsureSchema,
	} {
		if err := ensure(ctx); err != nil {
			pool.Close()
			return stores{}, fmt.Errorf("ensure schema: %w", err)
		}
	}

	return stores{tasks: taskRepo, users: userStore, history: historyStore, pool: pool}, nil
}

func runServer(ctx context.Context, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := logging.NewComponentLogger("Server")

	st, err := buildStores(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if st.pool != nil {
		defer st.pool.Close()
	}

	history := st.history
	if cfg.History.CacheSize > 0 {
		cached, err := session.NewCachedStore(history, cfg.History.CacheSize, cfg.History.Limit)
		if err != nil {
			return err
		}
		history = cached
	}

	metrics, err := observability.NewMetricsCollector(cfg.Observability.MetricsEnabled)
	if err != nil {
		return err
	}
	tracing, err := observability.NewTracerProvider(observability.TracingConfig{
		Enabled:        cfg.Observability.TracesEnabled,
		OTLPEndpoint:   cfg.Observability.OTLPEndpoint,
		ServiceVersion: version,
	})
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(shutdownCtx); err != nil {
			logger.Warn("tracer shutdown: %v", err)
		}
	}()

	taskService := task.NewService(st.tasks, logging.NewComponentLogger("TaskService"))
	authService := auth.NewService(
		st.users,
		auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.AccessTTL),
		logging.NewComponentLogger("AuthService"),
	)
	engine := agent.NewEngine(
		task.NewAgentStore(taskService, logging.NewComponentLogger("AgentStore")),
		agent.WithLogger(logging.NewComponentLogger("Engine")),
	)
	chatService := app.NewChatService(
		engine, history, cfg.History.Limit,
		metrics, tracing.Tracer(),
		logging.NewComponentLogger("ChatService"),
	)

	router := serverhttp.NewRouter(serverhttp.RouterDeps{
		AuthService:    authService,
		TaskService:    taskService,
		ChatService:    chatService,
		Metrics:        metrics,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
