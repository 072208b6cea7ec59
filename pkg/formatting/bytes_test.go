package formatting_test

import (
	"testing"

	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/pkg/formatting"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name      string
		n         int64
		precision int
		want      string
	}{
		{"zero", 0, 1, "0 B"},
		{"bytes", 500, 0, "500 B"},
		{"one KB", 1024, 1, "1.0 KB"},
		{"one and a half KB", 1536, 1, "1.5 KB"},
		{"one MB", 1024 * 1024, 1, "1.0 MB"},
		{"fractional MB", 1536 * 1024, 1, "1.5 MB"},
		{"one GB", 1024 * 1024 * 1024, 1, "1.0 GB"},
		{"500 KB", 500 * 1024, 1, "500.0 KB"},
		{"negative precision clamped to zero", 1024, -1, "1 KB"},
		{"negative count stays in bytes", -512, 0, "-512 B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatting.FormatBytes(tt.n, tt.precision)
			if got != tt.want {
				t.Errorf("FormatBytes(%d, %d) = %q, want %q", tt.n, tt.precision, got, tt.want)
			}
		})
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "0.00s"},
		{"sub-second", 0.1349, "0.13s"},
		{"rounding up", 1.837, "1.84s"},
		{"whole seconds", 12, "12.00s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatting.FormatSeconds(tt.seconds)
			if got != tt.want {
				t.Errorf("FormatSeconds(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}
