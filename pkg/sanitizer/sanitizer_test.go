package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"only whitespace", "   \t\n ", ""},
		{"already clean", "Midnight Opera", "Midnight Opera"},
		{"leading and trailing", "  Midnight Opera  ", "Midnight Opera"},
		{"internal runs", "Midnight \t  Opera", "Midnight Opera"},
		{"tabs and newlines", "Big\tArena\nShow", "Big Arena Show"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.expected {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeTitle(t *testing.T) {
	if got := NormalizeTitle("  big:  Stadium   Night "); got != "big: Stadium Night" {
		t.Errorf("NormalizeTitle = %q", got)
	}
}
