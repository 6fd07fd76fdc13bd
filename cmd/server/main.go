package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"chirp/internal/config"
	"chirp/internal/db"
	"chirp/internal/handlers"
	"chirp/internal/metrics"
	"chirp/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	log := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	dbc, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer dbc.Close()

	if err := db.Migrate(dbc); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	h := handlers.New(store.NewAccountStore(dbc), store.NewMessageStore(dbc), log)

	router := h.Router()
	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	var root http.Handler = router
	root = handlers.WithRequestLog(root, log)
	root = metrics.InstrumentHandler(root)
	root = handlers.WithRecover(root, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           root,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info().Str("addr", srv.Addr).Msg("listening")
	return srv.ListenAndServe()
}
