// Package storage abstracts object storage for club crest images.
package storage

import (
	"context"
	"io"
)

type UploadResult struct {
	Key       string
	PublicURL string
}

// FileUploader stores and serves public assets. The production
// implementation is Cloudflare R2; the service layer only ever sees
// this interface so tests can stub it.
type FileUploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (*UploadResult, error)
	Delete(ctx context.Context, key string) error
	GetPublicURL(key string) string
}
