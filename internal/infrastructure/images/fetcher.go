// Package images validates and fetches question images before they are
// handed to a vision model.
package images

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"resty.dev/v3"

	"github.com/arenalabs/model-arena/internal/config"
	"github.com/arenalabs/model-arena/internal/utils/httpclients"
)

// Fetcher downloads remote images and enforces the size and content-type
// limits from configuration.
type Fetcher struct {
	client *resty.Client
	cfg    *config.Config
}

func NewFetcher(cfg *config.Config, timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: httpclients.NewClient("images", timeout),
		cfg:    cfg,
	}
}

// Fetch downloads the image at url. The response must carry an allowed image
// content type and fit under the configured size cap.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("download image: unexpected status %d", resp.StatusCode())
	}

	contentType := resp.Header().Get("Content-Type")
	if !f.cfg.IsImageTypeAllowed(contentType) {
		return nil, fmt.Errorf("url does not point to an image, content type %q", contentType)
	}

	data := resp.Bytes()
	if err := f.Validate(data, contentType); err != nil {
		return nil, err
	}
	return data, nil
}

// Validate checks the payload against the configured limits. An empty
// contentType skips the type check, for uploads whose type was already
// sniffed.
func (f *Fetcher) Validate(data []byte, contentType string) error {
	if len(data) == 0 {
		return fmt.Errorf("image payload is empty")
	}
	if int64(len(data)) > f.cfg.MaxImageSizeBytes() {
		return fmt.Errorf("image exceeds the %dMB limit", f.cfg.MaxImageSizeMB)
	}
	if contentType != "" && !f.cfg.IsImageTypeAllowed(contentType) {
		return fmt.Errorf("unsupported image type %q", contentType)
	}
	return nil
}

// SniffType detects the payload's content type and rejects non-images.
func (f *Fetcher) SniffType(data []byte) (string, error) {
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("payload is not an image, detected %q", contentType)
	}
	return contentType, nil
}

// EncodeBase64 renders image bytes the way provider APIs expect them.
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
