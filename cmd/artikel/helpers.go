package main

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/artikel/internal/config"
	"github.com/at-ishikawa/artikel/internal/database"
	"github.com/at-ishikawa/artikel/internal/dictionary"
	"github.com/at-ishikawa/artikel/internal/storage"
	"github.com/at-ishikawa/artikel/internal/training"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func durations(cfg config.FeedbackConfig) training.Durations {
	return training.Durations{
		Correct:         cfg.Correct,
		Incorrect:       cfg.Incorrect,
		IncorrectMobile: cfg.IncorrectMobile,
		Invalid:         cfg.Invalid,
	}
}

// openWorkspace wires the local stores and the built-in catalog into a workspace.
// The returned function stops the session and closes the database.
func openWorkspace(ctx context.Context, cfg *config.Config, opts training.Options) (*training.Workspace, func(), error) {
	builtin, err := dictionary.Builtin()
	if err != nil {
		return nil, nil, fmt.Errorf("dictionary.Builtin() > %w", err)
	}

	db, err := database.OpenSQLite(cfg.Storage.DatabaseFile)
	if err != nil {
		return nil, nil, fmt.Errorf("database.OpenSQLite() > %w", err)
	}
	kv, err := storage.NewKVStore(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("storage.NewKVStore() > %w", err)
	}

	if opts.Durations == (training.Durations{}) {
		opts.Durations = durations(cfg.Training.Feedback)
	}
	opts.Mobile = opts.Mobile || cfg.Training.Mobile

	workspace := training.NewWorkspace(
		ctx,
		dictionary.NewPoolBuilder(builtin),
		storage.NewSettingsFile(cfg.Storage.SettingsFile),
		storage.NewDictionaryStore(kv),
		opts,
	)
	return workspace, func() {
		workspace.Close()
		_ = db.Close()
	}, nil
}
