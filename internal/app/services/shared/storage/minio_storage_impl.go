package storage

import (
	"bytes"
	"context"
	"strings"
	"time"
	"uesvalle-service/internal/app/contracts"
	"uesvalle-service/internal/app/models"
	"uesvalle-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

func (m *minioStorage) PutObject(ctx context.Context, bucketName, objectName, contentType string, content []byte) error {
	_, err := m.MinioClient.PutObject(
		ctx,
		bucketName,
		objectName,
		bytes.NewReader(content),
		int64(len(content)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return exceptions.ErrMinioPutObject(err)
	}
	return nil
}

// LatestObject picks the greatest object name under prefix; archive names sort by time.
func (m *minioStorage) LatestObject(ctx context.Context, bucketName, prefix string) (*models.StoredObject, error) {
	var latest *models.StoredObject
	for object := range m.MinioClient.ListObjects(ctx, bucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return nil, exceptions.ErrMinioListObjects(object.Err)
		}
		if latest == nil || strings.Compare(object.Key, latest.Name) > 0 {
			latest = &models.StoredObject{
				Bucket:       bucketName,
				Name:         object.Key,
				Size:         object.Size,
				LastModified: object.LastModified,
			}
		}
	}
	if latest == nil {
		return nil, exceptions.ErrExportArchiveNotFound(prefix)
	}
	return latest, nil
}

func (m *minioStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, bucketName, objectName, expiryTime, nil)
	if err != nil {
		return "", exceptions.ErrMinioPresignedURL(err)
	}
	return presignedURL.String(), nil
}
