package backend

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"net/url"

	"github.com/pricofy/image-translator/internal/domain"
)

// ExtractHistory lists the user's past extractions, newest first.
func (c *Client) ExtractHistory(ctx context.Context) ([]domain.ExtractHistoryEntry, error) {
	var out []domain.ExtractHistoryEntry
	if err := do(c.request(ctx), http.MethodGet, "/api/extract_history", "Get extract history", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TranslateHistory lists the user's past translations, newest first.
func (c *Client) TranslateHistory(ctx context.Context) ([]domain.TranslateHistoryEntry, error) {
	var out []domain.TranslateHistoryEntry
	if err := do(c.request(ctx), http.MethodGet, "/api/translate_history", "Get translate history", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// StoredImage is an image returned by the service in the format it was stored.
type StoredImage struct {
	Data        []byte
	ContentType string
}

var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
	"image/tiff": ".tiff",
}

// Extension returns the file extension for the image format, taken from the
// Content-Type and, failing that, from the data itself. Unknown formats give ".img".
func (i *StoredImage) Extension() string {
	for _, ct := range []string{i.ContentType, http.DetectContentType(i.Data)} {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil {
			continue
		}
		if ext, ok := imageExtensions[mediaType]; ok {
			return ext
		}
	}
	return ".img"
}

// Image downloads the image stored with an extraction history entry.
func (c *Client) Image(ctx context.Context, timestamp string) (*StoredImage, error) {
	if timestamp == "" {
		return nil, fmt.Errorf("timestamp is required")
	}

	resp, err := c.request(ctx).
		SetHeader("Accept", "image/*").
		Get("/api/image/" + url.PathEscape(timestamp))
	if err != nil {
		return nil, fmt.Errorf("image request: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp, "Failed to load image")
	}
	return &StoredImage{Data: resp.Body(), ContentType: resp.Header().Get("Content-Type")}, nil
}
