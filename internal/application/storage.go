package application

import (
	"bytes"
	"context"
	"io"
	"net/url"
	"time"

	miniosdk "github.com/minio/minio-go/v7"
	"github.com/quillsign/quillsign/minio"
)

// ObjectStorage abstracts the blob store holding original documents and
// finalized artifacts.
type ObjectStorage interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
	Store(ctx context.Context, path string, data []byte, contentType string) error
	Remove(ctx context.Context, path string) error
	PresignedGet(ctx context.Context, path string, expiry time.Duration) (string, error)
}

// MinioStorage is the production ObjectStorage backed by the shared MinIO
// client.
type MinioStorage struct{}

func NewMinioStorage() *MinioStorage {
	return &MinioStorage{}
}

func (s *MinioStorage) Fetch(ctx context.Context, path string) ([]byte, error) {
	obj, err := minio.Client.GetObject(ctx, minio.BucketName, path, miniosdk.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}

func (s *MinioStorage) Store(ctx context.Context, path string, data []byte, contentType string) error {
	_, err := minio.Client.PutObject(ctx, minio.BucketName, path, bytes.NewReader(data), int64(len(data)),
		miniosdk.PutObjectOptions{ContentType: contentType})
	return err
}

func (s *MinioStorage) Remove(ctx context.Context, path string) error {
	return minio.Client.RemoveObject(ctx, minio.BucketName, path, miniosdk.RemoveObjectOptions{})
}

func (s *MinioStorage) PresignedGet(ctx context.Context, path string, expiry time.Duration) (string, error) {
	u, err := minio.Client.PresignedGetObject(ctx, minio.BucketName, path, expiry, url.Values{})
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
