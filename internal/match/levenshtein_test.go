package match

import (
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"a", "a", 0},
		{"scale", "scale", 0},

		// Empty vs non-empty
		{"", "dot", 3},
		{"dot", "", 3},

		// Single edits
		{"a", "b", 1},
		{"ad", "add", 1},
		{"add", "ad", 1},
		{"scle", "scale", 1},

		// Multiple edits
		{"kitten", "sitting", 3},
		{"sclae", "scale", 2},
		{"addition", "add", 5},

		// Case-sensitive
		{"DOT", "dot", 3},
		{"Vector", "vector", 1},

		// Counted in runes, not bytes
		{"vëctor", "vector", 1},
		{"µ", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}

			resultReverse := Levenshtein(tt.b, tt.a)
			if result != resultReverse {
				t.Errorf("Levenshtein symmetry failed: (%q, %q) = %d, (%q, %q) = %d",
					tt.a, tt.b, result, tt.b, tt.a, resultReverse)
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected float64
	}{
		{"", "", 1.0},
		{"scale", "scale", 1.0},
		{"abc", "xyz", 0.0},
		{"kitten", "sitting", 1.0 - 3.0/7.0},
		{"scle", "scale", 0.8},
		{"vëctor", "vector", 1.0 - 1.0/6.0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Similarity(tt.a, tt.b)
			if diff := result - tt.expected; diff < -0.001 || diff > 0.001 {
				t.Errorf("Similarity(%q, %q) = %f, want %f", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func BenchmarkLevenshtein(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Levenshtein("SizeMismatchError", "SizeMismatch")
	}
}
