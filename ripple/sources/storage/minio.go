package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"ripple/ripple/config"
	"ripple/ripple/sources/psql/models"
	"ripple/ripple/types"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOClient is the external image host. Records store the returned object
// key as FileID; deletion goes through that key.
type MinIOClient struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewMinIOClient(cfg config.Config) (*MinIOClient, error) {
	bucket := cfg.MinIOBucket
	client, err := minio.New(
		cfg.MinIOEndpoint,
		&minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
			Secure: cfg.MinIOUseSSL,
		},
	)
	if err != nil {
		return nil, err
	}
	// Create bucket if not exists
	exists, err := client.BucketExists(context.Background(), bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(context.Background(), bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}
	publicURL := cfg.MinIOPublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.MinIOUseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, cfg.MinIOEndpoint)
	}
	return &MinIOClient{client: client, bucket: bucket, publicURL: publicURL}, nil
}

// UploadImage stores the file under folder with a unique object key and
// returns the stable reference consumed by user/post records.
func (m *MinIOClient) UploadImage(ctx context.Context, file types.ImageUpload, folder string) (models.Image, error) {
	key := filepath.Join(folder, uuid.New().String()+filepath.Ext(file.Filename))
	_, err := m.client.PutObject(
		ctx,
		m.bucket,
		key,
		bytes.NewReader(file.Data),
		int64(len(file.Data)),
		minio.PutObjectOptions{ContentType: file.ContentType},
	)
	if err != nil {
		return models.Image{}, err
	}
	return models.Image{
		URL:    fmt.Sprintf("%s/%s/%s", m.publicURL, m.bucket, key),
		FileID: key,
	}, nil
}

// DeleteImage removes the object behind fileID.
func (m *MinIOClient) DeleteImage(ctx context.Context, fileID string) error {
	return m.client.RemoveObject(ctx, m.bucket, fileID, minio.RemoveObjectOptions{})
}
