package main

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/pricofy/image-translator/internal/handler"
	"github.com/pricofy/image-translator/internal/translator"
)

func TestHandleRequest_Translate(t *testing.T) {
	echo := translator.EndpointFunc(func(ctx context.Context, req translator.Request) (translator.Result, error) {
		return translator.Result{TranslatedText: "[" + req.Text + "]", DetectedLanguage: "en"}, nil
	})
	h = handler.New(translator.New(echo, translator.Options{MaxSegmentLength: 3}), "")
	t.Cleanup(func() { h = nil })

	out, err := handleRequest(context.Background(), json.RawMessage(`{"text":"abcdef","language":"fr"}`))
	if err != nil {
		t.Fatalf("handleRequest() unexpected error: %v", err)
	}

	resp, ok := out.(*handler.Response)
	if !ok {
		t.Fatalf("handleRequest() returned %T, want *handler.Response", out)
	}
	if resp.TranslatedText != "[abc][def]" || resp.SegmentsProcessed != 2 {
		t.Errorf("resp = %+v", resp)
	}
}

func TestHandleRequest_BadPayload(t *testing.T) {
	if _, err := handleRequest(context.Background(), json.RawMessage(`[1,2]`)); err == nil {
		t.Error("handleRequest() should reject a non-object payload")
	}
}
