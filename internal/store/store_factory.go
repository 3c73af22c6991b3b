package store

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"mockgraph/internal/config"
	"mockgraph/internal/fixture"
	"mockgraph/internal/metrics"
	"mockgraph/internal/model"
	"mockgraph/internal/repository"
	"mockgraph/internal/store/memory"
	"mockgraph/internal/store/mysql"
)

func NewCarRepository(cfg *config.Config, m *metrics.Metrics, logger *zap.Logger) (repository.Repository[model.Car], error) {
	return newRepository(cfg, m, logger, (*mysql.Store).Cars)
}

func NewUserRepository(cfg *config.Config, m *metrics.Metrics, logger *zap.Logger) (repository.Repository[model.User], error) {
	return newRepository(cfg, m, logger, (*mysql.Store).Users)
}

// newRepository seeds an in-memory store from MySQL when a DSN is configured
// and from the fixture file (or the embedded fixture) otherwise.
func newRepository[T any](
	cfg *config.Config,
	m *metrics.Metrics,
	logger *zap.Logger,
	fromSQL func(*mysql.Store, context.Context, string) ([]T, error),
) (repository.Repository[T], error) {
	var (
		seed   []T
		source string
		err    error
	)
	if cfg.MySQLDSN != "" {
		source = "mysql:" + cfg.MySQLTable
		seed, err = loadMySQL(cfg, logger, fromSQL)
	} else {
		source = cfg.FixturePath
		if source == "" {
			source = "embedded"
		}
		seed, err = fixture.Load[T](cfg.Kind, cfg.FixturePath)
	}
	if err != nil {
		logger.Error("fixture load failed", zap.String("source", source), zap.Error(err))
		return nil, err
	}

	logger.Info("fixture loaded", zap.String("source", source), zap.Int("records", len(seed)))
	store := memory.New(seed, logger)
	m.WatchRecords(store.Len)
	return store, nil
}

func loadMySQL[T any](
	cfg *config.Config,
	logger *zap.Logger,
	fromSQL func(*mysql.Store, context.Context, string) ([]T, error),
) ([]T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := mysql.Open(ctx, cfg.MySQLDSN)
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	seed, err := fromSQL(mysql.New(db, logger), ctx, cfg.MySQLTable)
	if err != nil {
		return nil, fmt.Errorf("load %s from mysql: %w", cfg.Kind, err)
	}
	return seed, nil
}
