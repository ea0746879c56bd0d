// Package translator translates long text by splitting it into segments and
// sending them to a translation endpoint strictly one at a time.
//
// Results are concatenated in input order. The first failing segment aborts
// the whole run and no partial translation is returned.
package translator

import (
	"context"
	"strings"
	"time"

	"github.com/pricofy/image-translator/internal/segmenter"
)

// AutoLanguage asks the endpoint to detect the source language.
const AutoLanguage = "auto"

// Request is one segment sent to an Endpoint.
type Request struct {
	Text           string
	SourceLanguage string
	TargetLanguage string
	Model          Model
}

// Result is an Endpoint's answer for one segment.
type Result struct {
	TranslatedText string
	// DetectedLanguage may be empty.
	DetectedLanguage string
}

// Endpoint translates a single segment.
type Endpoint interface {
	Translate(ctx context.Context, req Request) (Result, error)
}

// EndpointFunc adapts a function to the Endpoint interface.
type EndpointFunc func(ctx context.Context, req Request) (Result, error)

// Translate calls f(ctx, req).
func (f EndpointFunc) Translate(ctx context.Context, req Request) (Result, error) {
	return f(ctx, req)
}

// Input is the caller's translation request.
type Input struct {
	Text           string
	TargetLanguage string
	// SourceLanguage defaults to AutoLanguage.
	SourceLanguage string
	// Model defaults to ModelStatistical.
	Model Model
}

// Outcome is the reassembled translation.
type Outcome struct {
	TranslatedText string
	// DetectedLanguage is the last non-empty language reported, or "".
	DetectedLanguage string
	Segments         int
}

// Options tunes a Translator.
type Options struct {
	// MaxSegmentLength defaults to segmenter.DefaultMaxLength.
	MaxSegmentLength int
	// RequestTimeout bounds each segment request. Zero means no bound.
	RequestTimeout time.Duration
}

// Translator runs chunked translations against an Endpoint.
// It holds no per-run state and is safe for concurrent use.
type Translator struct {
	endpoint Endpoint
	opts     Options
}

// New creates a Translator.
func New(endpoint Endpoint, opts Options) *Translator {
	if opts.MaxSegmentLength <= 0 {
		opts.MaxSegmentLength = segmenter.DefaultMaxLength
	}
	return &Translator{endpoint: endpoint, opts: opts}
}

// Translate translates in.Text into in.TargetLanguage.
//
// Cancelling ctx stops the run before the next segment is sent; a request
// already in flight is allowed to finish (bounded by RequestTimeout).
func (t *Translator) Translate(ctx context.Context, in Input) (*Outcome, error) {
	in, err := normalize(in)
	if err != nil {
		return nil, err
	}

	segments := []string{in.Text}
	if in.Model.Chunked() {
		segments = segmenter.Split(in.Text, t.opts.MaxSegmentLength)
	}

	var out strings.Builder
	detected := ""

	for i, segment := range segments {
		if err := ctx.Err(); err != nil {
			return nil, &TranslationFailure{Segment: i, Err: err}
		}

		res, err := t.send(ctx, Request{
			Text:           segment,
			SourceLanguage: in.SourceLanguage,
			TargetLanguage: in.TargetLanguage,
			Model:          in.Model,
		})
		if err != nil {
			return nil, classify(i, in.TargetLanguage, err)
		}

		out.WriteString(res.TranslatedText)
		if res.DetectedLanguage != "" && res.DetectedLanguage != detected {
			detected = res.DetectedLanguage
		}
	}

	return &Outcome{
		TranslatedText:   out.String(),
		DetectedLanguage: detected,
		Segments:         len(segments),
	}, nil
}

// send issues one request detached from the caller's cancellation.
func (t *Translator) send(ctx context.Context, req Request) (Result, error) {
	reqCtx := context.WithoutCancel(ctx)
	if t.opts.RequestTimeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(reqCtx, t.opts.RequestTimeout)
		defer cancel()
	}
	return t.endpoint.Translate(reqCtx, req)
}

// normalize validates in and fills defaults.
func normalize(in Input) (Input, error) {
	if strings.TrimSpace(in.Text) == "" {
		return in, &ValidationError{Field: "text", Message: "text is required"}
	}
	in.TargetLanguage = strings.TrimSpace(in.TargetLanguage)
	if in.TargetLanguage == "" {
		return in, &ValidationError{Field: "language", Message: "target language is required"}
	}
	if strings.TrimSpace(in.SourceLanguage) == "" {
		in.SourceLanguage = AutoLanguage
	}
	if in.Model == "" {
		in.Model = ModelStatistical
	}
	return in, nil
}
