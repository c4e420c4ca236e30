package config

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hupe1980/telemetry/core"
	"github.com/hupe1980/telemetry/store"
	"github.com/hupe1980/telemetry/store/file"
	"github.com/hupe1980/telemetry/store/redis"
	"github.com/hupe1980/telemetry/store/sqlite"
)

// Driver names a store backend.
type Driver string

const (
	DriverMemory Driver = "memory"
	DriverFile   Driver = "file"
	DriverSQLite Driver = "sqlite"
	DriverRedis  Driver = "redis"
)

// StoreConfig selects and configures a store backend.
type StoreConfig struct {
	Driver    Driver       `env:"TELEMETRY_STORE_DRIVER" envDefault:"file"`
	Path      string       `env:"TELEMETRY_STORE_PATH" envDefault:".telemetry"` // directory for file, database file for sqlite
	Namespace string       `env:"TELEMETRY_STORE_NAMESPACE" envDefault:"AnalyticsSDK"`
	Redis     redis.Config
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenStore builds the Store described by cfg. The returned Closer releases the
// backend's resources and is never nil on success.
func OpenStore(ctx context.Context, cfg StoreConfig) (core.Store, io.Closer, error) {
	switch Driver(strings.ToLower(string(cfg.Driver))) {
	case DriverMemory, "":
		return store.NewInMemoryStore(), nopCloser{}, nil
	case DriverFile:
		s, err := file.New(cfg.Path, func(o *file.Options) { o.Namespace = cfg.Namespace })
		if err != nil {
			return nil, nil, err
		}
		return s, nopCloser{}, nil
	case DriverSQLite:
		path, err := sqlitePath(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		s, err := sqlite.Open(path, func(o *sqlite.Options) { o.Namespace = cfg.Namespace })
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case DriverRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		s := redis.New(client, func(o *redis.Options) {
			o.Namespace = cfg.Namespace
			o.OpTimeout = cfg.Redis.OpTimeout
		})
		return s, s, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown store driver %q", core.ErrInvalidConfiguration, cfg.Driver)
	}
}

// sqlitePath treats paths ending in .db or .sqlite as database files and
// anything else as a directory holding telemetry.db.
func sqlitePath(p string) (string, error) {
	if p == "" || p == ":memory:" || strings.HasSuffix(p, ".db") || strings.HasSuffix(p, ".sqlite") {
		return p, nil
	}
	if err := os.MkdirAll(p, 0o755); err != nil {
		return "", fmt.Errorf("cannot create store directory: %w", err)
	}
	return filepath.Join(p, "telemetry.db"), nil
}
