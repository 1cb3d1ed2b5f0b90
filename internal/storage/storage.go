// Package storage provides the single key/value slot the word lists are
// persisted to. A slot holds one opaque blob that is read in full and
// overwritten in full; there are no partial writes and no versioning.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/redis/go-redis/v9"

	"github.com/alexander-akhmetov/signdeck/internal/config"
	"github.com/alexander-akhmetov/signdeck/internal/dirs"
)

// ErrEmpty is returned by Load when nothing has been stored yet.
var ErrEmpty = errors.New("storage slot is empty")

// Slot is a total-overwrite key/value cell.
type Slot interface {
	// Load returns the stored blob or ErrEmpty.
	Load(ctx context.Context) ([]byte, error)
	// Save replaces the stored blob.
	Save(ctx context.Context, data []byte) error
	// Close releases any underlying resources.
	Close() error
	// Describe returns a human-readable location, e.g. a file path.
	Describe() string
}

// Open builds the slot selected by cfg.
func Open(cfg config.StorageConfig) (Slot, error) {
	switch cfg.Backend {
	case config.BackendFile, "":
		dir := cfg.Path
		if dir == "" {
			dir = dirs.StateDir()
		}
		return NewFileSlot(dir, cfg.Key), nil

	case config.BackendSQLite:
		path := cfg.Path
		if path == "" {
			path = filepath.Join(dirs.StateDir(), "signdeck.db")
		}
		return OpenSQLiteSlot(path, cfg.Key)

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return NewRedisSlot(client, cfg.Key), nil

	case config.BackendMemory:
		return NewMemorySlot(), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
