package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"interview-coach/internal/config"
)

// Kind prefixes namespace object keys by content type.
const (
	KindPDF   = "pdfs"
	KindAudio = "audio"
)

type ObjectStorageService interface {
	StorePDF(ctx context.Context, data []byte, originalName string) (string, error)
	StoreAudio(ctx context.Context, data []byte, originalName string) (string, error)
	Fetch(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	FileURL(ctx context.Context, key string) (string, error)
}

type objectStorageService struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

func NewObjectStorage(cfg config.StorageConfig) (ObjectStorageService, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	// Create bucket if it doesn't exist
	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &objectStorageService{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

// StorePDF implements ObjectStorageService.
func (s *objectStorageService) StorePDF(ctx context.Context, data []byte, originalName string) (string, error) {
	return s.store(ctx, data, KindPDF, originalName)
}

// StoreAudio implements ObjectStorageService.
func (s *objectStorageService) StoreAudio(ctx context.Context, data []byte, originalName string) (string, error) {
	return s.store(ctx, data, KindAudio, originalName)
}

func (s *objectStorageService) store(ctx context.Context, data []byte, kind, originalName string) (string, error) {
	key := objectKey(kind, originalName)

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentTypeFor(originalName),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	return key, nil
}

// Fetch implements ObjectStorageService.
func (s *objectStorageService) Fetch(ctx context.Context, key string) ([]byte, error) {
	object, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("failed to read object: %w", err)
	}
	return data, nil
}

// Delete implements ObjectStorageService.
func (s *objectStorageService) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// FileURL implements ObjectStorageService. A configured public base URL
// wins; otherwise a presigned URL valid for one hour is generated.
func (s *objectStorageService) FileURL(ctx context.Context, key string) (string, error) {
	if s.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s", s.publicBaseURL, key), nil
	}

	url, err := s.client.PresignedGetObject(ctx, s.bucket, key, time.Hour, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return url.String(), nil
}

// objectKey builds a collision-free key. The original filename is
// discarded except for its extension.
func objectKey(kind, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%s/%s%s", kind, uuid.New().String(), ext)
}

func contentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".ogg":
		return "audio/ogg"
	case ".wav":
		return "audio/wav"
	case ".mp3":
		return "audio/mpeg"
	case ".m4a":
		return "audio/mp4"
	case ".webm":
		return "audio/webm"
	default:
		return "application/octet-stream"
	}
}
