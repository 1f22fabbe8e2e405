// Package rangeinput is the popup that reads a custom date range.
package rangeinput

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/topplays/internal/errmsg"
	"github.com/llehouerou/topplays/internal/history"
	"github.com/llehouerou/topplays/internal/ui"
	"github.com/llehouerou/topplays/internal/ui/popup"
	"github.com/llehouerou/topplays/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// errFormat is returned when the input is not two dates.
var errFormat = errors.New("expected two dates: YYYY-MM-DD YYYY-MM-DD")

// Model reads "YYYY-MM-DD YYYY-MM-DD" and reports parse errors inline.
type Model struct {
	ui.Base
	input textinput.Model
	err   string
}

// New creates the popup prefilled with r.
func New(r history.Range) Model {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "2024-01-01 2024-01-31"
	in.CharLimit = 2*len(history.DayLayout) + 1
	in.SetValue(Format(r))
	in.CursorEnd()
	in.Focus()
	return Model{input: in}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return actionMsg(Cancel{}) }
		case "enter":
			r, err := Parse(m.input.Value())
			if err != nil {
				m.err = errmsg.Format(errmsg.OpRangeParse, err)
				return m, nil
			}
			m.err = ""
			return m, func() tea.Msg { return actionMsg(Submit{Range: r}) }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	s := styles.T().S()

	var sb strings.Builder
	sb.WriteString(s.Active.Render("Custom range"))
	sb.WriteString("\n\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")
	if m.err != "" {
		sb.WriteString(s.Error.Render(m.err))
		sb.WriteString("\n")
	}
	sb.WriteString(s.Subtle.Render("enter apply · esc cancel"))
	return sb.String()
}

// Err returns the message of the last rejected input.
func (m Model) Err() string {
	return m.err
}

// Format renders r the way Parse reads it.
func Format(r history.Range) string {
	return r.Start.Format(history.DayLayout) + " " + r.End.Format(history.DayLayout)
}

// Parse reads a start and an end day separated by whitespace.
func Parse(s string) (history.Range, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return history.Range{}, errFormat
	}
	return history.ParseRange(fields[0], fields[1])
}
