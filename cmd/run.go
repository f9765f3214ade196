package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/cipherplay/internal/app"
	"github.com/abhisek/cipherplay/internal/cipher"
	"github.com/abhisek/cipherplay/internal/logging"
	"github.com/abhisek/cipherplay/internal/session"
	"github.com/abhisek/cipherplay/internal/store"
)

// runApp builds the game's dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	rng, seed, err := cipher.NewRand(cfg.Seed)
	if err != nil {
		return fmt.Errorf("seed generator: %w", err)
	}

	st, err := store.OpenMemory()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	sess := session.New(st.RoundRepo(), logger)
	logger.Info("session started",
		zap.String("session", sess.ID),
		zap.Uint64("seed", seed),
		zap.Int("start_level", cfg.StartLevel),
	)

	return app.Run(app.Options{
		Generator:   cipher.New(rng, cipher.DefaultConfig(), logger),
		Session:     sess,
		Progression: cfg.ProgressionOptions(logger),
		Logger:      logger,
	})
}
