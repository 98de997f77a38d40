package backend

import (
	"context"
	"fmt"

	"hoadash/internal/dataset"
	"hoadash/internal/dataset/memory"
	applog "hoadash/internal/log"
	"hoadash/internal/storage"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *applog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *applog.Logger) Factory {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &DefaultFactory{
		logger: logger.WithComponent(applog.ComponentStorage),
	}
}

// CreateBackend implements Factory.CreateBackend
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*BackendResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case SQLiteBackend:
		return f.createSQLiteBackend(ctx, config)
	case MemoryBackend:
		return f.createMemoryBackend()
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createSQLiteBackend(ctx context.Context, config Config) (*BackendResult, error) {
	repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}

	years, err := repo.Years(ctx)
	if err != nil {
		_ = repo.Close()
		return nil, fmt.Errorf("failed to list stored years: %w", err)
	}
	if len(years) == 0 {
		if !config.SeedIfEmpty {
			f.logger.Warn("SQLite database holds no fiscal years, run hoactl seed",
				applog.FieldFile, config.SQLiteDBPath)
		} else if err := repo.SaveYear(ctx, dataset.Paraiso2023()); err != nil {
			_ = repo.Close()
			return nil, fmt.Errorf("failed to seed SQLite repository: %w", err)
		} else {
			f.logger.Info("Seeded empty SQLite database",
				applog.FieldFile, config.SQLiteDBPath,
				applog.FieldYear, dataset.DefaultYear)
		}
	}

	f.logger.Info("Initialized SQLite backend",
		applog.FieldBackend, config.Type,
		applog.FieldFile, config.SQLiteDBPath,
		"years", len(years))

	return &BackendResult{
		Backend: repo,
		Cleanup: repo.Close,
	}, nil
}

func (f *DefaultFactory) createMemoryBackend() (*BackendResult, error) {
	store := memory.NewStatic()
	f.logger.Info("Initialized memory backend", applog.FieldBackend, MemoryBackend)

	return &BackendResult{
		Backend: store,
		Cleanup: func() error { return nil },
	}, nil
}
