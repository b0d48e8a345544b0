package persistence

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/rental-console/internal/config"
)

// Open builds the KeyValueStore selected by the storage driver. The returned func
// releases any connection it holds.
func Open(cfg config.Config, logger *zap.Logger) (KeyValueStore, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageFile, "":
		logger.Info("session storage", zap.String("driver", config.StorageFile), zap.String("path", cfg.Storage.FilePath))
		return NewFileStore(cfg.Storage.FilePath, logger), func() {}, nil
	case config.StorageRedis:
		r := NewRedis(cfg.Redis, logger)
		return r, r.Close, nil
	case config.StorageMemory:
		logger.Warn("session storage is in-memory; logins will not survive a restart")
		return NewMemoryStore(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown session storage driver %q", cfg.Storage.Driver)
	}
}
