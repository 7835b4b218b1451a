package storage

import (
	"context"
	"io"
)

// ContentTypeJSON is the content type of published documents.
const ContentTypeJSON = "application/json"

// UploadResult describes a stored object and where the public can read it.
type UploadResult struct {
	Key      string `json:"key"`
	Location string `json:"location"`
	ETag     string `json:"etag,omitempty"`
}

// FileUploader stores objects in a public bucket. Uploading to an existing key
// replaces the object.
type FileUploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (*UploadResult, error)
	GetPublicURL(key string) string
}
