// Package chart draws the daily play histogram of one track.
package chart

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/topplays/internal/histogram"
	"github.com/llehouerou/topplays/internal/plays"
	"github.com/llehouerou/topplays/internal/ui"
	"github.com/llehouerou/topplays/internal/ui/render"
	"github.com/llehouerou/topplays/internal/ui/styles"
)

// eighths are the partial blocks used for the top cell of a column.
var eighths = []rune(" ▁▂▃▄▅▆▇█")

const (
	axisHeight = 1
	maxColumn  = 3 // widest column for short ranges
)

// Model shows one track's histogram.
type Model struct {
	ui.Base
	hist *plays.Histogram
}

func New() Model {
	return Model{}
}

// SetHistogram replaces the series on screen.
func (m *Model) SetHistogram(h *plays.Histogram) {
	m.hist = h
}

// Histogram returns the series on screen.
func (m Model) Histogram() *plays.Histogram {
	return m.hist
}

func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 || m.hist == nil {
		return ""
	}
	t := styles.T()
	s := t.S()
	inner := m.InnerWidth()
	h := m.hist

	name := render.Truncate(h.Track.Track+" - "+h.Track.DisplayArtist(), max(inner/2, 1))
	title := styles.ApplyBoldGradient(name, t.Primary, t.Secondary)

	var lines []string
	if !h.Matched {
		lines = []string{
			title,
			s.Subtle.Render(render.Separator(inner)),
			s.Muted.Render("Not played between " + h.Range.String()),
		}
	} else {
		peak := histogram.Peak(h.Buckets)
		stats := render.Plays(h.Total) + " · peak " + render.Count(peak) + "/day"
		lines = []string{
			render.Row(title, s.Muted.Render(stats), inner),
			s.Subtle.Render(render.Separator(inner)),
		}
		rows := m.ListHeight(ui.PanelOverhead + axisHeight)
		lines = append(lines, Bars(h.Buckets, inner, rows)...)
		lines = append(lines, axis(h.Buckets, inner))
	}

	for len(lines) < m.Height()-ui.BorderHeight {
		lines = append(lines, "")
	}

	return t.PanelStyle(m.IsFocused()).
		Width(inner).
		Render(strings.Join(lines, "\n"))
}

// Bars renders buckets as colored columns, top row first. Days are summed
// into groups when the range is wider than width.
func Bars(buckets []histogram.Bucket, width, height int) []string {
	if width < 1 || height < 1 || len(buckets) == 0 {
		return nil
	}
	t := styles.T()

	cols := Columns(buckets, width)
	colWidth := min(max(width/len(cols), 1), maxColumn)
	peak := 0
	for _, v := range cols {
		peak = max(peak, v)
	}

	lines := make([]string, height)
	for row := range height {
		level := height - 1 - row // 0 is the bottom row
		var sb strings.Builder
		for _, v := range cols {
			cell := strings.Repeat(string(block(v, peak, height, level)), colWidth)
			if v == 0 {
				sb.WriteString(cell)
				continue
			}
			style := lipgloss.NewStyle().Foreground(styles.Ramp(v, peak, t.BarLow, t.BarHigh))
			sb.WriteString(style.Render(cell))
		}
		lines[row] = sb.String()
	}
	return lines
}

// Columns sums consecutive buckets so that the series fits in width
// columns.
func Columns(buckets []histogram.Bucket, width int) []int {
	if width < 1 || len(buckets) == 0 {
		return nil
	}
	per := (len(buckets) + width - 1) / width

	cols := make([]int, 0, (len(buckets)+per-1)/per)
	for i := 0; i < len(buckets); i += per {
		sum := 0
		for _, b := range buckets[i:min(i+per, len(buckets))] {
			sum += b.Plays
		}
		cols = append(cols, sum)
	}
	return cols
}

// block returns the glyph of a column of value v at the given row level.
func block(v, peak, height, level int) rune {
	if v <= 0 || peak <= 0 {
		return ' '
	}
	filled := v * height * 8 / peak // in eighths of a row
	switch {
	case filled >= (level+1)*8:
		return eighths[8]
	case filled > level*8:
		return eighths[filled-level*8]
	case level == 0:
		return eighths[1] // keep tiny non-zero days visible
	default:
		return ' '
	}
}

func axis(buckets []histogram.Bucket, width int) string {
	s := styles.T().S()
	first := buckets[0].Day()
	last := buckets[len(buckets)-1].Day()
	if len(buckets) == 1 {
		return s.Subtle.Render(first)
	}
	return s.Subtle.Render(render.Row(first, last, width))
}
