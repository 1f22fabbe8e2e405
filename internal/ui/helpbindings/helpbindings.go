// Package helpbindings renders the key bindings popup.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/topplays/internal/keymap"
	"github.com/llehouerou/topplays/internal/ui"
	"github.com/llehouerou/topplays/internal/ui/popup"
	"github.com/llehouerou/topplays/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// sections lists binding contexts in display order with their headers.
var sections = []struct {
	context string
	label   string
}{
	{"global", "Global"},
	{"ranges", "Date Range"},
	{"tracks", "Top Tracks"},
	{"favorites", "Favorites"},
	{"history", "Daily History"},
}

// chrome is the title, footer and blank lines around the bindings.
const chrome = 4

// Model is a scrollable list of every key binding.
type Model struct {
	ui.Base
	lines  []string
	offset int
}

// New builds the popup from the binding table.
func New() Model {
	return Model{lines: buildLines(keymap.All)}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return closeMsg() }
	case "j", "down":
		m.offset = min(m.offset+1, m.maxOffset())
	case "k", "up":
		m.offset = max(m.offset-1, 0)
	}
	return m, nil
}

func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	visible := m.visibleRows()
	end := min(m.offset+visible, len(m.lines))

	footer := "?/esc close"
	if len(m.lines) > visible {
		footer = "j/k scroll · " + footer
	}

	var sb strings.Builder
	sb.WriteString(styles.T().S().Title.Render("Key Bindings"))
	sb.WriteString("\n\n")
	sb.WriteString(strings.Join(m.lines[m.offset:end], "\n"))
	sb.WriteString("\n\n")
	sb.WriteString(styles.T().S().Subtle.Render(footer))
	return sb.String()
}

func (m Model) visibleRows() int {
	// popup border and padding take four more rows
	return max(m.Height()-chrome-4, 3)
}

func (m Model) maxOffset() int {
	return max(len(m.lines)-m.visibleRows(), 0)
}

func buildLines(bindings []keymap.Binding) []string {
	s := styles.T().S()
	keyStyle := s.Active
	headerStyle := s.Favorite.Bold(true)

	keyWidth := 0
	for _, b := range bindings {
		keyWidth = max(keyWidth, lipgloss.Width(strings.Join(b.Keys, ", ")))
	}

	var lines []string
	for _, sec := range sections {
		group := keymap.ByContext(sec.context)
		if len(group) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, headerStyle.Render(sec.label))
		for _, b := range group {
			keys := strings.Join(b.Keys, ", ")
			pad := strings.Repeat(" ", keyWidth-lipgloss.Width(keys))
			lines = append(lines, keyStyle.Render(keys+pad)+"  "+s.Base.Render(b.Description))
		}
	}
	return lines
}
