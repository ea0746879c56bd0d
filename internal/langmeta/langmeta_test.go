package langmeta

import (
	"sort"
	"testing"
)

func TestCanonicalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "pt_br", want: "pt-BR"},
		{in: " EN-us ", want: "en-US"},
		{in: "ru", want: "ru"},
		{in: "", want: ""},
	}

	for _, tc := range cases {
		got := canonicalize(tc.in)
		if got != tc.want {
			t.Fatalf("canonicalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestName(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{code: "en", want: "English"},
		{code: "fr", want: "French"},
		{code: "ch_sim", want: "Chinese"},
		{code: "zh", want: "Chinese"},
		{code: "zh-CN", want: "Chinese"},
		{code: "pt_BR", want: "Portuguese"},
		{code: "EN-gb", want: "English"},
		{code: "auto", want: "Auto Detect"},
		{code: "zz", want: Unknown},
		{code: "", want: Unknown},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			if got := Name(tc.code); got != tc.want {
				t.Errorf("Name(%q) = %q, want %q", tc.code, got, tc.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	t.Run("exact match", func(t *testing.T) {
		got, ok := Resolve("de")
		if !ok || got != "de" {
			t.Fatalf("Resolve(de) = %q, %v", got, ok)
		}
	})

	t.Run("base fallback", func(t *testing.T) {
		got, ok := Resolve("fr-LU")
		if !ok || got != "fr" {
			t.Fatalf("Resolve(fr-LU) = %q, %v", got, ok)
		}
	})

	t.Run("alias", func(t *testing.T) {
		got, ok := Resolve("nb")
		if !ok || got != "no" {
			t.Fatalf("Resolve(nb) = %q, %v", got, ok)
		}
	})

	t.Run("unknown passthrough", func(t *testing.T) {
		got, ok := Resolve("zz-ZZ")
		if ok || got != "zz-ZZ" {
			t.Fatalf("Resolve(zz-ZZ) = %q, %v", got, ok)
		}
	})
}

func TestSupported(t *testing.T) {
	if !Supported("en") || !Supported("ch_sim") {
		t.Error("core languages should be supported")
	}
	if Supported("zz") || Supported("") {
		t.Error("unknown languages should not be supported")
	}
}

func TestCodes(t *testing.T) {
	codes := Codes()

	if len(codes) != len(Registry) {
		t.Errorf("Codes() returned %d codes, want %d", len(codes), len(Registry))
	}
	if !sort.StringsAreSorted(codes) {
		t.Error("Codes() is not sorted")
	}
}
