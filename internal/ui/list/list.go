// Package list provides a generic scrollable list driven by keymap actions.
package list

import (
	"github.com/llehouerou/topplays/internal/keymap"
	"github.com/llehouerou/topplays/internal/ui"
	"github.com/llehouerou/topplays/internal/ui/cursor"
)

// Model is a focusable list of items. Rendering is left to the parent,
// which reads VisibleRange.
type Model[T any] struct {
	ui.Base
	items    []T
	cursor   cursor.Cursor
	overhead int
}

// New creates a list that reserves overhead rows of its height for chrome.
func New[T any](overhead int) Model[T] {
	return Model[T]{
		cursor:   cursor.New(ui.ScrollMargin),
		overhead: overhead,
	}
}

// SetItems replaces the items and keeps the cursor in bounds.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.cursor.ClampToBounds(len(items))
}

// ResetCursor returns the cursor to the first item.
func (m *Model[T]) ResetCursor() {
	m.cursor.Reset()
}

func (m Model[T]) Items() []T {
	return m.items
}

func (m Model[T]) Len() int {
	return len(m.items)
}

// Selected returns the item under the cursor, false when empty.
func (m Model[T]) Selected() (T, bool) {
	pos := m.cursor.Pos()
	if pos >= len(m.items) {
		var zero T
		return zero, false
	}
	return m.items[pos], true
}

func (m Model[T]) SelectedIndex() int {
	return m.cursor.Pos()
}

// VisibleRange returns the [start, end) indices to render.
func (m Model[T]) VisibleRange() (start, end int) {
	return m.cursor.VisibleRange(len(m.items), m.ListHeight(m.overhead))
}

// HandleAction moves the cursor for navigation actions while focused and
// reports whether the action was consumed.
func (m *Model[T]) HandleAction(a keymap.Action) bool {
	if !m.IsFocused() {
		return false
	}
	return m.cursor.HandleAction(a, len(m.items), m.ListHeight(m.overhead))
}
