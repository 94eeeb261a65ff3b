package cmd

import (
	"database/sql"

	"github.com/zft5024/manus-aicad/internal"
)

// Env bundles the shared state every subcommand needs: resolved paths,
// config, the open database, and the stores on top of it.
type Env struct {
	Paths    internal.DataPaths
	Config   internal.Config
	Session  *internal.SessionStore
	Feedback *internal.FeedbackStore

	db *sql.DB
}

// openEnv resolves paths (honoring --storage and the config file),
// initializes logging, and opens the durable store.
func openEnv() (*Env, error) {
	paths, err := internal.GetDataPaths(storagePath)
	if err != nil {
		return nil, err
	}

	cfg := internal.LoadConfig(paths.ConfigPath)
	if storagePath == "" && cfg.StoragePath != "" {
		if paths, err = internal.GetDataPaths(cfg.StoragePath); err != nil {
			return nil, err
		}
	}

	if err := internal.InitLogger(paths.LogPath, verbose); err != nil {
		return nil, err
	}

	db, err := internal.OpenDatabase(paths.DBPath)
	if err != nil {
		return nil, err
	}

	kv := internal.NewKVStore(db)
	return &Env{
		Paths:    paths,
		Config:   cfg,
		Session:  internal.NewSessionStore(kv),
		Feedback: internal.NewFeedbackStore(kv),
		db:       db,
	}, nil
}

// Close releases the environment's database handle.
func (e *Env) Close() {
	_ = e.db.Close()
}
