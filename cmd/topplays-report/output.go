package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/llehouerou/topplays/internal/histogram"
	"github.com/llehouerou/topplays/internal/plays"
	"github.com/llehouerou/topplays/internal/ui/render"
	"github.com/llehouerou/topplays/internal/ui/styles"
)

const (
	nameWidth = 40
	barWidth  = 30
)

func topTable(res *plays.TopTracks) string {
	t := newTable("#", "TRACK", "ARTIST", "PLAYS", "ART")
	for i, agg := range res.Ranked {
		art := ""
		if res.ImageFor(agg) != "" {
			art = "yes"
		}
		t.Row(
			strconv.Itoa(i+1),
			render.Truncate(agg.Track.Track, nameWidth),
			render.Truncate(agg.Track.DisplayArtist(), nameWidth),
			render.Count(agg.Plays),
			art,
		)
	}
	return t.String()
}

func topSummary(res *plays.TopTracks) string {
	return render.Count(res.Scrobbles) + " scrobbles between " + res.Range.String()
}

func historyTable(h *plays.Histogram) string {
	peak := histogram.Peak(h.Buckets)
	t := newTable("DAY", "PLAYS", "")
	for _, b := range h.Buckets {
		bar := ""
		if peak > 0 {
			bar = strings.Repeat("█", b.Plays*barWidth/peak)
		}
		t.Row(b.Day(), render.Count(b.Plays), bar)
	}
	t.Row("total", render.Count(h.Total), "")
	return t.String()
}

func newTable(headers ...string) *table.Table {
	s := styles.T().S()
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.Subtle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return cell.Inherit(s.Title)
			}
			return cell
		})
}
