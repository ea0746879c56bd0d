package segmenter

import (
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name             string
		text             string
		maxLength        int
		expectedSegments int
	}{
		{
			name:             "empty text",
			text:             "",
			maxLength:        512,
			expectedSegments: 0,
		},
		{
			name:             "shorter than max",
			text:             "Hello world",
			maxLength:        512,
			expectedSegments: 1,
		},
		{
			name:             "exactly max",
			text:             strings.Repeat("a", 512),
			maxLength:        512,
			expectedSegments: 1,
		},
		{
			name:             "one past max",
			text:             strings.Repeat("a", 513),
			maxLength:        512,
			expectedSegments: 2,
		},
		{
			name:             "thousand characters",
			text:             strings.Repeat("b", 1000),
			maxLength:        512,
			expectedSegments: 2,
		},
		{
			name:             "splits mid-word",
			text:             "translation",
			maxLength:        4,
			expectedSegments: 3,
		},
		{
			name:             "multibyte runes",
			text:             "héllo wörld ñandú",
			maxLength:        5,
			expectedSegments: 4,
		},
		{
			name:             "max of one",
			text:             "abc",
			maxLength:        1,
			expectedSegments: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments := Split(tt.text, tt.maxLength)

			if len(segments) != tt.expectedSegments {
				t.Errorf("Split() returned %d segments, want %d", len(segments), tt.expectedSegments)
			}

			if got := Count(tt.text, tt.maxLength); got != tt.expectedSegments {
				t.Errorf("Count() = %d, want %d", got, tt.expectedSegments)
			}

			// Verify nothing is lost or duplicated
			if joined := strings.Join(segments, ""); joined != tt.text {
				t.Errorf("Split() round-trip = %q, want %q", joined, tt.text)
			}

			for i, seg := range segments {
				if n := Units(seg); n > tt.maxLength {
					t.Errorf("segment[%d] has %d units, max %d", i, n, tt.maxLength)
				}
				if seg == "" {
					t.Errorf("segment[%d] is empty", i)
				}
			}
		})
	}
}

func TestSplit_SegmentLengths(t *testing.T) {
	segments := Split(strings.Repeat("x", 1000), 512)

	if len(segments) != 2 {
		t.Fatalf("Split() returned %d segments, want 2", len(segments))
	}
	if len(segments[0]) != 512 {
		t.Errorf("segment[0] length = %d, want 512", len(segments[0]))
	}
	if len(segments[1]) != 488 {
		t.Errorf("segment[1] length = %d, want 488", len(segments[1]))
	}
}

func TestSplit_PreservesOrder(t *testing.T) {
	text := "0123456789abcdefghij"
	segments := Split(text, 3)

	want := []string{"012", "345", "678", "9ab", "cde", "fgh", "ij"}
	if len(segments) != len(want) {
		t.Fatalf("Split() returned %d segments, want %d", len(segments), len(want))
	}
	for i := range want {
		if segments[i] != want[i] {
			t.Errorf("Order not preserved: got %q at position %d, want %q", segments[i], i, want[i])
		}
	}
}

func TestSplit_DefaultMaxLength(t *testing.T) {
	segments := Split(strings.Repeat("z", DefaultMaxLength+1), 0) // Should use default

	if len(segments) != 2 {
		t.Errorf("Split with 0 maxLength should use default, got %d segments", len(segments))
	}
}

func TestSplit_RoundTripProperty(t *testing.T) {
	texts := []string{
		"a",
		"The quick brown fox jumps over the lazy dog",
		"日本語のテキストを分割します",
		strings.Repeat("Lorem ipsum dolor sit amet. ", 80),
	}

	for _, text := range texts {
		for m := 1; m <= 40; m++ {
			segments := Split(text, m)
			if strings.Join(segments, "") != text {
				t.Fatalf("Split(%q, %d) does not reassemble", text, m)
			}
			want := (Units(text) + m - 1) / m
			if len(segments) != want {
				t.Fatalf("Split(%q, %d) returned %d segments, want %d", text, m, len(segments), want)
			}
		}
	}
}

func TestSplit_AstralCharacters(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		maxLength int
		want      []string
	}{
		{
			name:      "emoji count as two units",
			text:      "🙂🙃🙂",
			maxLength: 4,
			want:      []string{"🙂🙃", "🙂"},
		},
		{
			name:      "never split inside a character",
			text:      "ab🙂cd",
			maxLength: 3,
			want:      []string{"ab", "🙂c", "d"},
		},
		{
			name:      "single unit limit keeps emoji whole",
			text:      "a🙂b",
			maxLength: 1,
			want:      []string{"a", "🙂", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.text, tt.maxLength)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("Split(%q, %d) = %q, want %q", tt.text, tt.maxLength, got, tt.want)
			}
			if n := Count(tt.text, tt.maxLength); n != len(tt.want) {
				t.Errorf("Count() = %d, want %d", n, len(tt.want))
			}
		})
	}
}

func TestSplit_EmojiSegmentsStayWithinLimit(t *testing.T) {
	text := strings.Repeat("🙂", 512)
	segments := Split(text, DefaultMaxLength)

	if len(segments) != 2 {
		t.Fatalf("Split() returned %d segments, want 2", len(segments))
	}
	for i, seg := range segments {
		if n := Units(seg); n != 512 {
			t.Errorf("segment[%d] = %d units, want 512", i, n)
		}
	}
}
