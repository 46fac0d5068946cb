package usecase

import (
	"context"

	"insekta-dashboard/internal/dto/request"
	"insekta-dashboard/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Upload folders, relative to the storage root.
const (
	folderIcons = "icons"
	folderTeams = "teams"
)

// DefaultFeatureIcon ships with the client build and is shared by every
// feature without its own icon. It is never deleted.
const DefaultFeatureIcon = "/uploads/icons/3d-folder.png"

type uploader struct {
	store storage.Provider
	log   *zap.Logger
}

// saveImage processes upload with opts and stores it under a fresh name.
func (u *uploader) saveImage(ctx context.Context, folder string, upload *request.FileUpload, opts storage.ImageOptions) (string, error) {
	data, err := storage.ProcessImage(upload.Data, opts)
	if err != nil {
		u.log.Warn("Rejected image upload",
			zap.Error(err),
			zap.String("filename", upload.Filename),
			zap.String("folder", folder),
		)
		return "", imageError(err)
	}

	name := uuid.NewString() + opts.Extension()
	ref, err := u.store.Save(ctx, folder, name, data, opts.ContentType())
	if err != nil {
		u.log.Error("Failed to store image", zap.Error(err), zap.String("folder", folder))
		return "", err
	}
	return ref, nil
}

// remove deletes ref, logging instead of failing. Empty refs and the shared
// default icon are skipped.
func (u *uploader) remove(ctx context.Context, ref string) {
	if ref == "" || ref == DefaultFeatureIcon {
		return
	}
	if err := u.store.Delete(ctx, ref); err != nil {
		u.log.Warn("Failed to delete upload", zap.Error(err), zap.String("ref", ref))
	}
}
