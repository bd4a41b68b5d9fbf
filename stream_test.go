package easel

import (
	"reflect"
	"testing"
)

func TestRecorderAppendOrder(t *testing.T) {
	r := NewRecorder()
	r.SetFillStyle("#123456")
	r.SetGlobalAlpha(0.5)
	r.DrawImage(1, 2, 3, 4, "wall", 1, 1, 1, 1)
	r.DrawRect(5, 6, 7, 8)

	cmds := r.Commands()
	want := []OpType{OpFillStyle, OpGlobalAlpha, OpDrawImage, OpDrawRect}
	if len(cmds) != len(want) {
		t.Fatalf("recorded %d ops, want %d", len(cmds), len(want))
	}
	for i, op := range want {
		if cmds[i].Op != op {
			t.Errorf("op %d = %d, want %d", i, cmds[i].Op, op)
		}
	}
}

func TestRecorderDrawImageFields(t *testing.T) {
	r := NewRecorder()
	r.DrawImage(-20, -60, 10, 20, "staff", 2, 3, 1, 1)
	c := r.Commands()[0]
	if c.X != -20 || c.Y != -60 || c.W != 10 || c.H != 20 {
		t.Errorf("rect = (%v, %v, %v, %v), want (-20, -60, 10, 20)", c.X, c.Y, c.W, c.H)
	}
	if c.Sprite != "staff" {
		t.Errorf("Sprite = %q, want %q", c.Sprite, "staff")
	}
	if c.RepeatX != 2 || c.RepeatY != 3 {
		t.Errorf("repeat = (%v, %v), want (2, 3)", c.RepeatX, c.RepeatY)
	}
	if c.FrameX != 1 || c.FrameY != 1 {
		t.Errorf("frame = (%v, %v), want (1, 1)", c.FrameX, c.FrameY)
	}
}

func TestRecorderResetReusesBuffer(t *testing.T) {
	r := NewRecorder()
	for i := 0; i < 10; i++ {
		r.DrawRect(0, 0, 1, 1)
	}
	before := cap(r.commands)
	r.Reset()
	if len(r.Commands()) != 0 {
		t.Errorf("len after Reset = %d, want 0", len(r.Commands()))
	}
	if cap(r.commands) != before {
		t.Errorf("cap after Reset = %d, want %d (buffer retained)", cap(r.commands), before)
	}
}

func TestRecorderReplay(t *testing.T) {
	src := NewRecorder()
	src.SetTranslation(16, 48)
	src.SetRotation(1.5)
	src.SetStrokeStyle("#00ff00")
	src.SetImageSmoothing(false)
	src.DrawImage(0, 0, 32, 32, "door", 1, 1, 1, 1)
	src.DrawRect(0, 0, 32, 32)

	dst := NewRecorder()
	src.Replay(dst)
	if !reflect.DeepEqual(src.Commands(), dst.Commands()) {
		t.Errorf("replayed commands differ:\n got %+v\nwant %+v", dst.Commands(), src.Commands())
	}
}
