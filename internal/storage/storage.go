package storage

import "context"

// ObjectStorage archives generated documents in an S3-compatible
// bucket.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) error
}
