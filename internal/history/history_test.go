package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "history.db"))
	if err != nil {
		t.Fatalf("Open() unexpected error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndList(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := []Entry{
		{CreatedAt: base, InputText: "Hola", TranslatedText: "Hello", InputLanguage: "es", OutputLanguage: "en", Model: "nmt", Segments: 1},
		{CreatedAt: base.Add(time.Minute), InputText: "Bonjour", TranslatedText: "Hallo", OutputLanguage: "de", Model: "llm", Segments: 1},
		{CreatedAt: base.Add(2 * time.Minute), InputText: "long", TranslatedText: "lang", InputLanguage: "auto", OutputLanguage: "de", Model: "nmt", Segments: 3},
	}
	for _, e := range entries {
		if _, err := s.Record(ctx, e); err != nil {
			t.Fatalf("Record() unexpected error: %v", err)
		}
	}

	got, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("List() returned %d entries, want 3", len(got))
	}

	// newest first
	if got[0].InputText != "long" || got[2].InputText != "Hola" {
		t.Errorf("order = %q, %q, %q", got[0].InputText, got[1].InputText, got[2].InputText)
	}
	if got[0].Segments != 3 || got[0].Model != "nmt" {
		t.Errorf("got[0] = %+v", got[0])
	}
	if got[1].InputLanguage != "" {
		t.Errorf("InputLanguage = %q, want empty", got[1].InputLanguage)
	}
	if !got[2].CreatedAt.Equal(base) {
		t.Errorf("CreatedAt = %v, want %v", got[2].CreatedAt, base)
	}

	limited, err := s.List(ctx, 2)
	if err != nil {
		t.Fatalf("List(2) unexpected error: %v", err)
	}
	if len(limited) != 2 || limited[0].InputText != "long" {
		t.Errorf("List(2) = %+v", limited)
	}
}

func TestRecord_DefaultsAndValidation(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	if _, err := s.Record(ctx, Entry{InputText: "x", TranslatedText: "y"}); err == nil {
		t.Error("Record() without output language should have returned error")
	}

	before := time.Now().Add(-time.Second)
	id, err := s.Record(ctx, Entry{InputText: "x", TranslatedText: "y", OutputLanguage: "fr"})
	if err != nil {
		t.Fatalf("Record() unexpected error: %v", err)
	}
	if id <= 0 {
		t.Errorf("Record() id = %d, want positive", id)
	}

	got, err := s.List(ctx, 1)
	if err != nil || len(got) != 1 {
		t.Fatalf("List() = %v, %v", got, err)
	}
	if got[0].CreatedAt.Before(before) {
		t.Errorf("CreatedAt = %v, want now", got[0].CreatedAt)
	}
}

func TestOpen_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() unexpected error: %v", err)
	}
	if _, err := s.Record(ctx, Entry{InputText: "a", TranslatedText: "b", OutputLanguage: "fr"}); err != nil {
		t.Fatalf("Record() unexpected error: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen unexpected error: %v", err)
	}
	defer s.Close()

	got, err := s.List(ctx, 10)
	if err != nil || len(got) != 1 {
		t.Errorf("List() after reopen = %v, %v; want 1 entry", got, err)
	}
}
