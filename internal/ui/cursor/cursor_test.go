package cursor

import (
	"testing"

	"github.com/llehouerou/setbreak/internal/keymap"
)

func TestMove(t *testing.T) {
	tests := []struct {
		name       string
		margin     int
		initial    int
		delta      int
		len        int
		height     int
		wantPos    int
		wantOffset int
	}{
		{"down within view", 2, 0, 1, 10, 5, 1, 0},
		{"down scrolls with margin", 2, 0, 3, 10, 5, 3, 1},
		{"up clamps to zero", 2, 2, -5, 10, 5, 0, 0},
		{"down clamps to last", 2, 0, 50, 10, 5, 9, 5},
		{"list shorter than view", 2, 0, 3, 4, 10, 3, 0},
		{"large margin in small view", 5, 0, 2, 10, 3, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.margin)
			c.Jump(tt.initial, tt.len, tt.height)
			c.Move(tt.delta, tt.len, tt.height)
			if c.Pos() != tt.wantPos || c.Offset() != tt.wantOffset {
				t.Errorf("pos/offset = %d/%d, want %d/%d", c.Pos(), c.Offset(), tt.wantPos, tt.wantOffset)
			}
		})
	}
}

func TestMove_EmptyListIsNoOp(t *testing.T) {
	c := New(1)
	c.Move(3, 0, 5)
	if c.Pos() != 0 {
		t.Errorf("pos = %d, want 0", c.Pos())
	}
}

func TestClamp(t *testing.T) {
	c := New(0)
	c.Jump(7, 8, 4)
	if !c.Clamp(3, 4) {
		t.Error("Clamp should report a change")
	}
	if c.Pos() != 2 || c.Offset() != 0 {
		t.Errorf("pos/offset = %d/%d, want 2/0", c.Pos(), c.Offset())
	}
	if c.Clamp(3, 4) {
		t.Error("second Clamp should be a no-op")
	}
	if !c.Clamp(0, 4) || c.Pos() != 0 {
		t.Errorf("Clamp(0) pos = %d, want 0", c.Pos())
	}
}

func TestVisibleRange(t *testing.T) {
	c := New(1)
	c.Jump(9, 12, 4)
	start, end := c.VisibleRange(12, 4)
	if start > 9 || end <= 9 {
		t.Errorf("range [%d,%d) does not contain cursor 9", start, end)
	}
	if end-start != 4 {
		t.Errorf("range size = %d, want 4", end-start)
	}
	if s, e := c.VisibleRange(0, 4); s != 0 || e != 0 {
		t.Errorf("empty range = [%d,%d)", s, e)
	}
}

func TestHandleAction(t *testing.T) {
	c := New(0)
	steps := []struct {
		action  keymap.Action
		handled bool
		wantPos int
	}{
		{keymap.ActionMoveDown, true, 1},
		{keymap.ActionMoveDown, true, 2},
		{keymap.ActionMoveUp, true, 1},
		{keymap.ActionJumpEnd, true, 5},
		{keymap.ActionJumpStart, true, 0},
		{keymap.ActionPlayPause, false, 0},
	}
	for _, s := range steps {
		if got := c.HandleAction(s.action, 6, 3); got != s.handled {
			t.Errorf("HandleAction(%s) = %v, want %v", s.action, got, s.handled)
		}
		if c.Pos() != s.wantPos {
			t.Errorf("after %s pos = %d, want %d", s.action, c.Pos(), s.wantPos)
		}
	}
}
