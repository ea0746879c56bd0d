package backend

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/pricofy/image-translator/internal/domain"
)

// ExtractRequest is an image upload for text extraction.
type ExtractRequest struct {
	Filename string
	Image    []byte
	// InputLanguage defaults to "auto".
	InputLanguage string
	// TextType is "auto", "printed" or "handwritten". Defaults to "auto".
	TextType string
	// LineSeparation is "auto" or "no". Defaults to "auto".
	LineSeparation string
}

// Extract uploads an image to POST /api/extract as multipart form data.
func (c *Client) Extract(ctx context.Context, req ExtractRequest) (*domain.ExtractResponse, error) {
	if len(req.Image) == 0 {
		return nil, fmt.Errorf("image is required")
	}
	if req.Filename == "" {
		req.Filename = "image.png"
	}

	r := c.request(ctx).
		SetFileReader("image", req.Filename, bytes.NewReader(req.Image)).
		SetMultipartFormData(map[string]string{
			"input_language":  orAuto(req.InputLanguage),
			"text_type":       orAuto(req.TextType),
			"line_separation": orAuto(req.LineSeparation),
		})

	var out domain.ExtractResponse
	if err := do(r, http.MethodPost, "/api/extract", "Extract", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func orAuto(s string) string {
	if s == "" {
		return "auto"
	}
	return s
}
