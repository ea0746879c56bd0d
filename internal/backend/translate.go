package backend

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pricofy/image-translator/internal/domain"
	"github.com/pricofy/image-translator/internal/translator"
)

// Translate sends one segment to POST /api/translate.
// Error payloads are returned as *translator.EndpointError.
func (c *Client) Translate(ctx context.Context, req translator.Request) (translator.Result, error) {
	body := domain.TranslateRequest{
		Text:          req.Text,
		Language:      req.TargetLanguage,
		InputLanguage: req.SourceLanguage,
		Model:         req.Model.String(),
	}

	resp, err := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/api/translate")
	if err != nil {
		return translator.Result{}, fmt.Errorf("translate request: %w", err)
	}

	if resp.IsError() {
		var e domain.ErrorResponse
		_ = json.Unmarshal(resp.Body(), &e)
		if e.Error == "" {
			e.Error = "Translation failed"
		}
		return translator.Result{}, &translator.EndpointError{
			StatusCode: resp.StatusCode(),
			Code:       e.Code,
			Message:    e.Error,
		}
	}

	// translated_text is required; a 2xx without it is not a translation.
	var out struct {
		TranslatedText   *string `json:"translated_text"`
		DetectedLanguage string  `json:"detected_language"`
		Error            string  `json:"error"`
		Code             string  `json:"code"`
	}
	if err := decode(resp, &out); err != nil {
		return translator.Result{}, &translator.EndpointError{
			StatusCode: resp.StatusCode(),
			Message:    "malformed translate response",
			Err:        err,
		}
	}
	if out.Error != "" {
		return translator.Result{}, &translator.EndpointError{
			StatusCode: resp.StatusCode(),
			Code:       out.Code,
			Message:    out.Error,
		}
	}
	if out.TranslatedText == nil {
		return translator.Result{}, &translator.EndpointError{
			StatusCode: resp.StatusCode(),
			Message:    "malformed translate response",
		}
	}

	return translator.Result{
		TranslatedText:   *out.TranslatedText,
		DetectedLanguage: out.DetectedLanguage,
	}, nil
}
