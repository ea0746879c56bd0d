// Package main is the entry point for the chunked translation Lambda function.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/pricofy/image-translator/internal/backend"
	"github.com/pricofy/image-translator/internal/config"
	"github.com/pricofy/image-translator/internal/handler"
	"github.com/pricofy/image-translator/internal/router"
	"github.com/pricofy/image-translator/internal/translator"
)

var h *handler.Handler

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	ctx := context.Background()

	cfg, err := config.Load(os.Getenv("IMGTEXT_CONFIG"))
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	endpoint, err := newEndpoint(ctx, cfg)
	if err != nil {
		log.Fatalf("Error creating endpoint: %v", err)
	}

	h = handler.New(translator.New(endpoint, cfg.TranslatorOptions()), cfg.Model())
	log.Printf("translator ready (endpoint=%s, model=%s, max segment=%d)",
		cfg.API.Endpoint, cfg.Model(), cfg.Translation.MaxSegmentLength)

	lambda.Start(handleRequest)
}

// newEndpoint builds the segment endpoint selected by config.
func newEndpoint(ctx context.Context, cfg *config.Config) (translator.Endpoint, error) {
	if cfg.API.Endpoint == config.EndpointLambda {
		return router.New(ctx, cfg.Lambda.FunctionPrefix, cfg.Lambda.Environment)
	}
	return backend.New(backend.Options{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.Translation.RequestTimeout,
	}), nil
}

func handleRequest(ctx context.Context, event json.RawMessage) (interface{}, error) {
	// Warmup detection (MUST be first - before any other processing)
	if warmup, ok := IsWarmupEvent(event); ok {
		return HandleWarmup(ctx, warmup)
	}

	// Parse the request and delegate to the handler
	var req handler.Request
	if err := json.Unmarshal(event, &req); err != nil {
		return nil, err
	}

	return h.Handle(ctx, req)
}
