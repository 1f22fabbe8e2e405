// Package headerbar renders the range tabs line at the top of the screen.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/topplays/internal/history"
	"github.com/llehouerou/topplays/internal/icons"
	"github.com/llehouerou/topplays/internal/ui/styles"
)

// Custom is the preset number of a range typed by the user.
const Custom = 0

type tab struct {
	key    string
	name   string
	preset int
}

var tabs = []tab{
	{"1", "7 days", 1},
	{"2", "30 days", 2},
	{"3", "90 days", 3},
	{"4", "365 days", 4},
	{"/", "Custom", Custom},
}

const title = "topplays"

// Render returns the header for the active preset and its range. Tabs are
// dropped when the width cannot hold them.
func Render(preset int, r history.Range, width int) string {
	if width < len(title)+2 {
		return ""
	}
	t := styles.T()
	s := t.S()

	name := styles.ApplyBoldGradient(title, t.Primary, t.Secondary)
	dates := s.Muted.Render(icons.FormatRange(r.String()))

	parts := make([]string, 0, len(tabs))
	for _, tb := range tabs {
		keyStyle, nameStyle := s.Subtle, s.Muted
		if tb.preset == preset {
			keyStyle, nameStyle = s.Active, s.Active
		}
		parts = append(parts, keyStyle.Render(tb.key)+" "+nameStyle.Render(tb.name))
	}
	tabLine := strings.Join(parts, s.Subtle.Render(" │ "))

	left := name + "  " + tabLine
	if lipgloss.Width(left)+lipgloss.Width(dates)+2 > width {
		left = name
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(dates)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + dates
}
