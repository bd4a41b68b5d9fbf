package easel

import "testing"

func TestShapeUnattachedNoOp(t *testing.T) {
	c := NewShape(ShapeRect)
	r := NewRecorder()
	c.QueueRenderCommands(r)
	if len(r.Commands()) != 0 {
		t.Errorf("unattached shape emitted %d ops, want 0", len(r.Commands()))
	}
}

func TestShapeRectEmission(t *testing.T) {
	e := NewEntity("entity_visual")
	c := NewShape(ShapeRect)
	e.AddComponents(c)
	c.SetOrigin(&Vec{X: 0.5, Y: 0.5})
	c.SetScale(&Vec{X: 32, Y: 32})
	c.SetStyle(Style{FillStyle: "#ff5a1f"})

	r := NewRecorder()
	c.QueueRenderCommands(r)

	cmds := r.Commands()
	if len(cmds) != 2 {
		t.Fatalf("commands = %+v, want fill style then rect", cmds)
	}
	if cmds[0].Op != OpFillStyle {
		t.Errorf("first op = %d, want fill style before geometry", cmds[0].Op)
	}
	d := cmds[1]
	if d.Op != OpDrawRect {
		t.Fatalf("second op = %d, want draw rect", d.Op)
	}
	if d.X != -16 || d.Y != -16 || d.W != 32 || d.H != 32 {
		t.Errorf("rect = (%v, %v, %v, %v), want (-16, -16, 32, 32)", d.X, d.Y, d.W, d.H)
	}
}

func TestShapeSetKind(t *testing.T) {
	c := NewShape(ShapeRect)
	if c.Kind() != ShapeRect {
		t.Errorf("Kind() = %d, want ShapeRect", c.Kind())
	}
}
