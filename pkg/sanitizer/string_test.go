package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Asha Menon", "Asha Menon"},
		{"leading and trailing space", "  Asha Menon  ", "Asha Menon"},
		{"internal runs collapse", "Asha    Menon", "Asha Menon"},
		{"tabs and newlines", "Asha\t\nMenon", "Asha Menon"},
		{"empty", "", ""},
		{"only whitespace", "   \t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.want {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeLabel(t *testing.T) {
	if got := NormalizeLabel("  Wedding Reception "); got != "wedding reception" {
		t.Errorf("NormalizeLabel = %q", got)
	}
}

func TestNormalizeCity(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"New Delhi", "newdelhi"},
		{"  Bengaluru ", "bengaluru"},
		{"Navi-Mumbai", "navimumbai"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeCity(tt.input); got != tt.want {
			t.Errorf("NormalizeCity(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
