package storage

import (
	"context"
	"io"

	"go.uber.org/zap"

	"profranchising/internal/config"
	"profranchising/internal/logger"
)

// Store keeps uploaded objects and returns their public URL.
type Store interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// New picks R2 when it is configured, the local upload directory otherwise.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (Store, error) {
	log = logger.OrNop(log)
	if cfg.R2.Enabled() {
		log.Info("image storage", zap.String("driver", "r2"), zap.String("bucket", cfg.R2.Bucket))
		return NewR2Store(ctx, cfg.R2)
	}

	log.Info("image storage", zap.String("driver", "local"), zap.String("dir", cfg.UploadDir))
	return NewLocalStore(cfg.UploadDir, cfg.PublicBaseURL)
}
