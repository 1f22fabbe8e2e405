package render

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text unchanged", "Song 2", "Song 2"},
		{"control characters removed", "Song\x07 2\r", "Song 2"},
		{"tab kept", "a\tb", "a\tb"},
		{"non-breaking space replaced", "a\u00a0b", "a b"},
		{"invalid byte removed", "a\xffb", "ab"},
		{"unicode kept", "Jóga – Björk", "Jóga – Björk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "short", 10, "short"},
		{"exact", "exact", 5, "exact"},
		{"truncated", "a long track name", 8, "a long …"},
		{"wide characters", "日本語の曲", 5, "日本…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
			if w := lipgloss.Width(got); w > tt.maxWidth {
				t.Errorf("width = %d, exceeds %d", w, tt.maxWidth)
			}
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	for _, width := range []int{3, 8, 20} {
		got := TruncateAndPad("Some Track Title", width)
		if w := lipgloss.Width(got); w != width {
			t.Errorf("TruncateAndPad width = %d, want %d (%q)", w, width, got)
		}
	}
}

func TestPadLeft(t *testing.T) {
	if got := PadLeft("42", 5); got != "   42" {
		t.Errorf("PadLeft = %q, want %q", got, "   42")
	}
}

func TestRow(t *testing.T) {
	got := Row("left", "right", 20)
	if lipgloss.Width(got) != 20 {
		t.Errorf("Row width = %d, want 20", lipgloss.Width(got))
	}

	// Too narrow still keeps one space between sides.
	if got := Row("left", "right", 5); got != "left right" {
		t.Errorf("narrow Row = %q", got)
	}
}

func TestSeparator(t *testing.T) {
	if got := Separator(3); got != "───" {
		t.Errorf("Separator(3) = %q", got)
	}
	if got := Separator(-1); got != "" {
		t.Errorf("Separator(-1) = %q, want empty", got)
	}
}

func TestCountAndPlays(t *testing.T) {
	tests := []struct {
		n         int
		wantCount string
		wantPlays string
	}{
		{0, "0", "0 plays"},
		{1, "1", "1 play"},
		{999, "999", "999 plays"},
		{12345, "12,345", "12,345 plays"},
	}

	for _, tt := range tests {
		if got := Count(tt.n); got != tt.wantCount {
			t.Errorf("Count(%d) = %q, want %q", tt.n, got, tt.wantCount)
		}
		if got := Plays(tt.n); got != tt.wantPlays {
			t.Errorf("Plays(%d) = %q, want %q", tt.n, got, tt.wantPlays)
		}
	}
}

func TestAgo(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	if got := Ago(now.Add(-3*24*time.Hour), now); got != "3 days ago" {
		t.Errorf("Ago = %q, want %q", got, "3 days ago")
	}
}
