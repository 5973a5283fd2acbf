package interfaces

import (
	"context"
	"io"
)

// Uploader stores an image on the CDN and returns its public URL.
type Uploader interface {
	UploadImage(ctx context.Context, folder, filename string, r io.Reader) (url string, publicID string, err error)
}
