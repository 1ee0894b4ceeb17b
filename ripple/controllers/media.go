// ripple/controllers/media.go
package controllers

import (
	"context"

	"ripple/ripple/sources/psql/models"
	"ripple/ripple/types"
)

// MediaStore is the external image host as the controllers see it. The minio
// client satisfies it in production; tests inject a fake.
type MediaStore interface {
	UploadImage(ctx context.Context, file types.ImageUpload, folder string) (models.Image, error)
	DeleteImage(ctx context.Context, fileID string) error
}
