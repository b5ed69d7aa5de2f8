package match

import (
	"slices"
	"testing"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ScaleRef", "scaleref"},
		{"scale_ref", "scaleref"},
		{"scale-ref", "scaleref"},
		{"SCALE REF", "scaleref"},
		{"DotProduct", "dotproduct"},
		{"SizeMismatchError", "sizemismatcherror"},
		{"", ""},
		{"T", "t"},
		{"add\t", "add"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeIdent(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeIdent(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTokenizeCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"DotProduct", []string{"Dot", "Product"}},
		{"sizeMismatch", []string{"size", "Mismatch"}},
		{"XMLParser", []string{"XML", "Parser"}},
		{"parseURL", []string{"parse", "URL"}},
		{"scale_ref", []string{"scale", "ref"}},
		{"elementwise add", []string{"elementwise", "add"}},
		{"ALLCAPS", []string{"ALLCAPS"}},
		{"lowercase", []string{"lowercase"}},
		{"", nil},
		{"a", []string{"a"}},
		{"AB", []string{"AB"}},
		{"AbC", []string{"Ab", "C"}},
		{"ABcD", []string{"A", "Bc", "D"}},
		{"__", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := tokenizeCamelCase(tt.input)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("tokenizeCamelCase(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"DotProduct", []string{"dot", "product"}},
		{"SizeMismatchError", []string{"size", "mismatch", "error"}},
		{"scalar_multiply", []string{"scalar", "multiply"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := TokenizeIdent(tt.input)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("TokenizeIdent(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}
