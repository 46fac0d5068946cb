// Package storage stores processed uploads and hands back the public
// reference that is persisted on the owning resource.
package storage

import (
	"context"
	"fmt"

	"insekta-dashboard/pkg/utils"
)

// ==================== INTERFACE ====================

type Provider interface {
	// Save writes data as folder/filename and returns its public reference.
	Save(ctx context.Context, folder, filename string, data []byte, contentType string) (string, error)

	// Delete removes a previously saved reference. A reference that does not
	// belong to this provider, or that is already gone, is not an error.
	Delete(ctx context.Context, ref string) error
}

// ==================== FACTORY ====================

func NewProvider(cfg utils.StorageConfig) (Provider, error) {
	switch cfg.Provider {
	case "", "local":
		return NewLocalStorage(cfg.UploadDir, cfg.URLPrefix)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage provider: %s", cfg.Provider)
	}
}
