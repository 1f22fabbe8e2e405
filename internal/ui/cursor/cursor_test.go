package cursor

import (
	"testing"

	"github.com/llehouerou/topplays/internal/keymap"
)

func TestMove(t *testing.T) {
	tests := []struct {
		name       string
		start      int
		delta      int
		listLen    int
		height     int
		wantPos    int
		wantOffset int
	}{
		{"down within view", 0, 1, 50, 10, 1, 0},
		{"clamped at top", 0, -3, 50, 10, 0, 0},
		{"clamped at bottom", 48, 5, 50, 10, 49, 40},
		{"scrolls with margin", 0, 6, 50, 10, 6, 0},
		{"scrolls past margin", 0, 8, 50, 10, 8, 1},
		{"short list never scrolls", 0, 3, 4, 10, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(2)
			c.Jump(tt.start, tt.listLen, tt.height)
			c.Move(tt.delta, tt.listLen, tt.height)

			if c.Pos() != tt.wantPos {
				t.Errorf("Pos() = %d, want %d", c.Pos(), tt.wantPos)
			}
			if c.Offset() != tt.wantOffset {
				t.Errorf("Offset() = %d, want %d", c.Offset(), tt.wantOffset)
			}
		})
	}
}

func TestMove_EmptyList(t *testing.T) {
	c := New(2)
	c.Move(3, 0, 10)
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("cursor moved on empty list: pos=%d offset=%d", c.Pos(), c.Offset())
	}
}

func TestScrollUpKeepsMargin(t *testing.T) {
	c := New(2)
	c.Jump(49, 50, 10)
	c.Jump(41, 50, 10)

	if c.Offset() != 39 {
		t.Errorf("Offset() = %d, want 39", c.Offset())
	}
}

func TestClampToBounds(t *testing.T) {
	c := New(0)
	c.Jump(9, 10, 5)

	if !c.ClampToBounds(4) {
		t.Error("expected an adjustment after shrinking")
	}
	if c.Pos() != 3 || c.Offset() > 3 {
		t.Errorf("pos=%d offset=%d, want pos 3 and offset <= 3", c.Pos(), c.Offset())
	}
	if c.ClampToBounds(4) {
		t.Error("no adjustment expected when already in bounds")
	}
	if !c.ClampToBounds(0) || c.Pos() != 0 {
		t.Errorf("empty list should reset, pos=%d", c.Pos())
	}
}

func TestVisibleRange(t *testing.T) {
	c := New(0)
	c.Jump(12, 20, 5)

	start, end := c.VisibleRange(20, 5)
	if start != 8 || end != 13 {
		t.Errorf("VisibleRange = [%d,%d), want [8,13)", start, end)
	}

	if s, e := c.VisibleRange(0, 5); s != 0 || e != 0 {
		t.Errorf("empty VisibleRange = [%d,%d)", s, e)
	}
}

func TestHandleAction(t *testing.T) {
	tests := []struct {
		action  keymap.Action
		wantPos int
		handled bool
	}{
		{keymap.ActionMoveDown, 6, true},
		{keymap.ActionMoveRight, 6, true},
		{keymap.ActionMoveUp, 4, true},
		{keymap.ActionMoveLeft, 4, true},
		{keymap.ActionJumpStart, 0, true},
		{keymap.ActionJumpEnd, 29, true},
		{keymap.ActionPageDown, 10, true},
		{keymap.ActionPageUp, 0, true},
		{keymap.ActionSelect, 5, false},
		{keymap.ActionToggleFavorite, 5, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			c := New(1)
			c.Jump(5, 30, 10)

			if got := c.HandleAction(tt.action, 30, 10); got != tt.handled {
				t.Errorf("HandleAction() = %v, want %v", got, tt.handled)
			}
			if c.Pos() != tt.wantPos {
				t.Errorf("Pos() = %d, want %d", c.Pos(), tt.wantPos)
			}
		})
	}
}
