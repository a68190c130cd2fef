package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abhisek/healthskill/internal/auth"
	"github.com/abhisek/healthskill/internal/catalog"
	"github.com/abhisek/healthskill/internal/config"
	"github.com/abhisek/healthskill/internal/logging"
	"github.com/abhisek/healthskill/internal/profile"
	"github.com/abhisek/healthskill/internal/quiz"
	"github.com/abhisek/healthskill/internal/store"
	"github.com/spf13/cobra"
)

// env holds the services a command runs against.
type env struct {
	ctx      context.Context
	cfg      *config.Config
	logger   *slog.Logger
	store    *store.Store
	catalog  *catalog.Catalog
	profiles *profile.Service
	session  *auth.Session
	history  *quiz.History
}

// openEnv loads configuration, opens the store and restores any persisted
// session. The caller must close the returned env.
func openEnv(cmd *cobra.Command) (*env, error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.Options{File: configFile, Flags: cmd.Flags()})
	if err != nil {
		return nil, err
	}
	logger, err := logging.Setup(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("set up logging: %w", err)
	}

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath, store.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cat := catalog.Default()
	docs := st.Documents()
	profiles := profile.NewService(docs, cat, logger)
	session := auth.NewSession(docs, profiles, auth.NewRegistry(time.Now()),
		auth.WithDelay(cfg.Auth.Delay),
		auth.WithLogger(logger),
	)
	if _, err := session.Restore(ctx); err != nil {
		st.Close()
		return nil, err
	}

	return &env{
		ctx:      ctx,
		cfg:      cfg,
		logger:   logger,
		store:    st,
		catalog:  cat,
		profiles: profiles,
		session:  session,
		history:  quiz.NewHistory(docs, logger),
	}, nil
}

func (e *env) Close() error {
	return e.store.Close()
}

// withEnv runs fn against a freshly opened env.
func withEnv(cmd *cobra.Command, fn func(e *env) error) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()
	return fn(e)
}

// withFeature is withEnv for commands gated behind onboarding.
func withFeature(cmd *cobra.Command, feature auth.Feature, fn func(e *env) error) error {
	return withEnv(cmd, func(e *env) error {
		if err := e.session.Require(feature); err != nil {
			return err
		}
		return fn(e)
	})
}

// resolveDBPath returns the configured database path, falling back to the
// default XDG location.
func resolveDBPath(cfg *config.Config) (string, error) {
	if p := cfg.DB.Path; p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
