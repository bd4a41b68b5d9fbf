package easel

// Shape is a drawable that renders a primitive geometric form using the
// drawable's fill and stroke style.
type Shape struct {
	Drawable

	kind ShapeKind
}

// NewShape creates an enabled shape component of the given kind.
func NewShape(kind ShapeKind) *Shape {
	return &Shape{
		Drawable: newDrawable(),
		kind:     kind,
	}
}

// Kind returns the geometric kind.
func (c *Shape) Kind() ShapeKind {
	return c.kind
}

// SetKind sets the geometric kind.
func (c *Shape) SetKind(kind ShapeKind) {
	c.kind = kind
}

// QueueRenderCommands emits the style attributes followed by the primitive
// selected by the kind. No-op when unattached.
func (c *Shape) QueueRenderCommands(stream CommandStream) {
	if c.owner == nil {
		return
	}
	c.Drawable.QueueRenderCommands(stream)
	x, y, w, h := c.drawRect()
	switch c.kind {
	case ShapeRect:
		stream.DrawRect(x, y, w, h)
	}
}
