package storage

import (
	"context"
	"time"
)

type Object struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// ObjectStore is the blob-store boundary used by the document services.
// Keys are full hierarchical paths; folder markers are zero-byte objects
// whose key ends in "/".
type ObjectStore interface {
	List(ctx context.Context, prefix string) ([]Object, error)
	Put(ctx context.Context, key string, body []byte, contentType string) error
	Copy(ctx context.Context, sourceKey, destKey string) error
	Delete(ctx context.Context, key string) error
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
	PresignPut(ctx context.Context, key string, expiry time.Duration) (string, error)
}
