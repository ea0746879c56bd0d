// Package handler provides the Lambda handler for chunked translation.
package handler

import (
	"context"
	"log"

	"github.com/pricofy/image-translator/internal/langmeta"
	"github.com/pricofy/image-translator/internal/translator"
)

// Request is the input to the translation Lambda.
type Request struct {
	Text          string `json:"text"`
	Language      string `json:"language"`
	InputLanguage string `json:"input_language,omitempty"`
	Model         string `json:"model,omitempty"`
}

// Response is the output from the translation Lambda.
type Response struct {
	TranslatedText       string `json:"translated_text"`
	DetectedLanguage     string `json:"detected_language,omitempty"`
	DetectedLanguageName string `json:"detected_language_name,omitempty"`
	SegmentsProcessed    int    `json:"segments_processed,omitempty"`
	Error                string `json:"error,omitempty"`
	ErrorKind            string `json:"error_kind,omitempty"`
}

// Handler runs chunked translations for Lambda events.
type Handler struct {
	translator   *translator.Translator
	defaultModel translator.Model
}

// New creates a Handler. defaultModel is used when a request names none.
func New(tr *translator.Translator, defaultModel translator.Model) *Handler {
	if defaultModel == "" {
		defaultModel = translator.ModelStatistical
	}
	return &Handler{translator: tr, defaultModel: defaultModel}
}

// Handle processes a translation request.
// Failures are reported in Response.Error; the returned error is reserved
// for conditions the Lambda runtime should retry.
func (h *Handler) Handle(ctx context.Context, req Request) (*Response, error) {
	model := h.defaultModel
	if req.Model != "" {
		m, err := translator.ParseModel(req.Model)
		if err != nil {
			return &Response{Error: err.Error(), ErrorKind: translator.KindValidation}, nil
		}
		model = m
	}

	out, err := h.translator.Translate(ctx, translator.Input{
		Text:           req.Text,
		TargetLanguage: req.Language,
		SourceLanguage: req.InputLanguage,
		Model:          model,
	})
	if err != nil {
		kind := translator.ErrorKind(err)
		log.Printf("translate to %q (%s, %d chars) failed [%s]: %v", req.Language, model, len(req.Text), kind, err)
		return &Response{Error: err.Error(), ErrorKind: kind}, nil
	}

	log.Printf("translated %d chars to %q in %d segment(s)", len(req.Text), req.Language, out.Segments)

	resp := &Response{
		TranslatedText:    out.TranslatedText,
		DetectedLanguage:  out.DetectedLanguage,
		SegmentsProcessed: out.Segments,
	}
	if out.DetectedLanguage != "" {
		resp.DetectedLanguageName = langmeta.Name(out.DetectedLanguage)
	}
	return resp, nil
}
