package contracts

import (
	"context"
	"time"
	"uesvalle-service/internal/app/models"
)

type Storage interface {
	PutObject(ctx context.Context, bucketName, objectName, contentType string, content []byte) error
	LatestObject(ctx context.Context, bucketName, prefix string) (*models.StoredObject, error)
	GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error)
}
