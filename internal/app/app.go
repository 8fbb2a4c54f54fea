package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/viper"

	"github.com/arlopurcell/ledgy/internal/api"
	"github.com/arlopurcell/ledgy/internal/config"
	"github.com/arlopurcell/ledgy/internal/creds"
	"github.com/arlopurcell/ledgy/internal/prefs"
	"github.com/arlopurcell/ledgy/internal/registry"
	"github.com/arlopurcell/ledgy/internal/store"
	"github.com/arlopurcell/ledgy/internal/sync"
)

type App struct {
	Config     *config.Config
	Prefs      *prefs.Store
	Creds      *creds.Store
	Registry   *registry.Registry
	Repo       store.Repository
	Controller *sync.Controller
}

// NewApp wires the preference store, the local cache and the sync
// controller. The credential store is constructed before the registry so
// startup order never depends on config load order.
func NewApp(cfg *config.Config, v *viper.Viper, migrationsFS fs.FS) (*App, func(), error) {
	preferences := prefs.New(v)
	credStore := creds.NewStore(preferences)

	reg, err := registry.New(preferences)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize account registry: %w", err)
	}

	dbPath := cfg.Database.Path
	if dbPath == "" {
		appDir, err := getAppDataDir()
		if err != nil {
			return nil, nil, err
		}
		dbPath = filepath.Join(appDir, "ledgy.db")
	}

	var repo store.Repository
	repo, err = store.NewStore(dbPath, migrationsFS)
	if err != nil {
		// still usable without the offline cache
		pterm.Warning.Printf("Offline cache unavailable: %v\n", err)
		repo = store.NewRAMStore()
	}

	client := api.NewClient(cfg.API.BaseURL)
	controller := sync.NewController(client, credStore, reg, repo)

	cleanup := func() {
		if err := repo.Close(); err != nil {
			fmt.Printf("Error closing cache: %v\n", err)
		}
	}

	return &App{
		Config:     cfg,
		Prefs:      preferences,
		Creds:      credStore,
		Registry:   reg,
		Repo:       repo,
		Controller: controller,
	}, cleanup, nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".ledgy"), nil
	}

	return filepath.Join(configDir, "ledgy"), nil
}
