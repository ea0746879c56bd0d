package translator

import (
	"fmt"
	"strings"
)

// Model selects the translation backend.
type Model string

const (
	// ModelStatistical is the neural machine translation backend.
	// Inputs are segmented before dispatch.
	ModelStatistical Model = "nmt"

	// ModelGenerative is the LLM backend. It accepts long spans, so the
	// whole text is sent as a single segment.
	ModelGenerative Model = "llm"
)

// ParseModel converts a user-supplied model name to a Model.
// An empty name selects ModelStatistical.
func ParseModel(name string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "nmt", "mt", "statistical":
		return ModelStatistical, nil
	case "llm", "generative":
		return ModelGenerative, nil
	default:
		return "", fmt.Errorf("unknown model %q (want nmt or llm)", name)
	}
}

// String returns the wire value of the model.
func (m Model) String() string {
	return string(m)
}

// Chunked reports whether inputs for this model are split into segments.
func (m Model) Chunked() bool {
	return m != ModelGenerative
}
