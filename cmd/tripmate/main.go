package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dayekim/tripmate/internal/cli"
	"github.com/dayekim/tripmate/internal/db"
	"github.com/dayekim/tripmate/internal/itinerary"
	"github.com/dayekim/tripmate/internal/remote"
	"github.com/dayekim/tripmate/internal/repository"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.tripmate/tripmate.db
	dbPath := os.Getenv("TRIPMATE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tripmate", "tripmate.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	cache := repository.NewSQLiteCacheRepo(database)

	// Wire the save endpoint client.
	remoteCfg := remote.LoadConfig()
	var observer remote.Observer = remote.NoopObserver{}
	if remoteCfg.LogCalls {
		observer = remote.NewLogObserver(os.Stderr)
	}
	saver := remote.NewHTTPSaveClient(remoteCfg, observer)

	store := itinerary.NewStore(cache, saver)
	if _, err := store.Rehydrate(context.Background()); err != nil {
		return err
	}

	app := &cli.App{
		Store: store,
		Interactive: isatty.IsTerminal(os.Stdin.Fd()) ||
			isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
