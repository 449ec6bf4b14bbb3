package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"codeberg.org/solari/bff/internal/accessgate"
	"codeberg.org/solari/bff/internal/auth"
	"codeberg.org/solari/bff/internal/backend"
	"codeberg.org/solari/bff/internal/config"
	"codeberg.org/solari/bff/internal/docstore"
	"codeberg.org/solari/bff/internal/logger"
	ws "codeberg.org/solari/bff/internal/websocket"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// document used by the health probe; it never exists
const healthProbePath = "health/probe"

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	policy, err := accessgate.ParsePolicy(cfg.AccessFailPolicy)
	if err != nil {
		return nil, err
	}

	store, db, err := openDocstore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	directory := docstore.NewDirectory(store)
	access := accessgate.NewDirectorySource(directory)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &Server{
		config:    cfg,
		db:        db,
		store:     store,
		directory: directory,
		access:    access,
		evaluator: accessgate.NewEvaluator(access, access, policy),
		policy:    policy,
		backend: backend.New(backend.Config{
			BaseURL:     cfg.BackendURL,
			InternalKey: cfg.InternalKey,
			Timeout:     cfg.BackendTimeout,
		}),
		sessions: auth.NewSessionStore(cfg.SessionSecret, cfg.SecureCookies()),
		hub:      ws.NewHub(),
		router:   gin.New(),
	}

	srv.router.Use(gin.Recovery())

	if err := RegisterRoutes(srv.router, srv); err != nil {
		srv.Close()
		return nil, fmt.Errorf("failed to register routes: %w", err)
	}

	logger.Info("server initialized",
		"docstore", cfg.DocstoreDriver,
		"backend_url", cfg.BackendURL,
		"access_fail_policy", policy.String(),
	)

	return srv, nil
}

// picks the document store named by DOCSTORE_DRIVER
func openDocstore(ctx context.Context, cfg *config.Config) (docstore.Store, *pgxpool.Pool, error) {
	switch cfg.DocstoreDriver {
	case config.DriverRedis:
		store, err := docstore.NewRedisStoreFromURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize redis docstore: %w", err)
		}

		return store, nil, nil

	case config.DriverPostgres:
		poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse database config: %w", err)
		}

		// one connection is held by the LISTEN loop
		poolConfig.MaxConns = 5
		poolConfig.MinConns = 1
		poolConfig.MaxConnLifetime = 30 * time.Minute
		poolConfig.MaxConnIdleTime = 5 * time.Minute
		poolConfig.HealthCheckPeriod = 1 * time.Minute

		db, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create database pool: %w", err)
		}

		if err := db.Ping(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to ping database: %w", err)
		}

		store := docstore.NewPostgresStore(db)
		if err := store.Initialize(ctx); err != nil {
			store.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
			db.Close()
			return nil, nil, fmt.Errorf("failed to initialize postgres docstore: %w", err)
		}

		return store, db, nil

	default:
		logger.Warn("using in-memory docstore, data is lost on restart")
		return docstore.NewMemoryStore(), nil, nil
	}
}

// reports whether the document store answers reads
func (s *Server) checkDocstore(ctx context.Context) error {
	_, err := s.store.Get(ctx, healthProbePath)
	if err == nil || stderrors.Is(err, docstore.ErrNotFound) {
		return nil
	}

	return err
}

// releases the document store and database pool
func (s *Server) Close() {
	if err := s.store.Close(); err != nil {
		logger.ErrorErr(err, "failed to close docstore")
	}

	if s.db != nil {
		s.db.Close()
	}
}
