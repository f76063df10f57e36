package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/Vovarama1992/insight-advisor-bridge/internal/advisor"
	"github.com/Vovarama1992/insight-advisor-bridge/internal/ai"
	"github.com/Vovarama1992/insight-advisor-bridge/internal/config"
	"github.com/Vovarama1992/insight-advisor-bridge/internal/server"
	"github.com/Vovarama1992/insight-advisor-bridge/internal/telemetry"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve POST /api/chat",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	// --- tracing ---
	shutdownTracing, err := telemetry.Init(ctx, cfg.OTLPEndpoint, cfg.ServiceName, cfg.Env)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Printf("[telemetry] shutdown error: %v", err)
		}
	}()

	var httpClient *http.Client
	if cfg.OTLPEndpoint != "" {
		httpClient = telemetry.HTTPClient()
	}

	// --- generator ---
	gen, err := ai.NewGenerator(ctx, ai.ProviderConfig{
		Name:       cfg.Provider,
		APIKey:     cfg.APIKey(),
		BaseURL:    cfg.BaseURL(),
		HTTPClient: httpClient,
	})
	if err != nil {
		return err
	}
	if c, ok := gen.(io.Closer); ok {
		defer c.Close()
	}
	log.Printf("[ai] provider=%s model=%s", cfg.Provider, cfg.Model())

	// --- audit log (optional) ---
	repo, closeDB, err := openRepo(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer closeDB()

	// --- advisor module wiring ---
	advisorService := advisor.NewService(repo, gen, cfg.Provider, cfg.Model())
	advisorHandler := advisor.NewHandler(advisorService)

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: server.New(server.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			Tracing:        cfg.OTLPEndpoint != "",
		}, advisorHandler),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on :%s", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("shutting down...")

	// Shutdown ждёт активные /api/chat, только потом закрываются БД и генератор
	sctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func openRepo(ctx context.Context, dsn string) (advisor.Repo, func(), error) {
	if dsn == "" {
		log.Println("[db] DATABASE_URL not set, exchange log disabled")
		return advisor.NopRepo{}, func() {}, nil
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("db open error: %w", err)
	}

	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("db ping error: %w", err)
	}
	if err := advisor.EnsureSchema(pctx, db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("db schema error: %w", err)
	}
	log.Println("[db] exchange log enabled")

	return advisor.NewRepo(db), func() { db.Close() }, nil
}
