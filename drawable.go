package easel

// Drawable carries the transform and style state shared by all visible
// component kinds: a pivot origin, a scale that doubles as the drawn size,
// and a sparse style. Concrete kinds embed Drawable and call its
// QueueRenderCommands before emitting their geometry, so style attributes
// always reach the stream first.
type Drawable struct {
	baseComponent

	origin Vec
	scale  Vec
	style  Style
}

// newDrawable returns the shared default state: enabled, origin (0,0),
// scale (1,1), empty style.
func newDrawable() Drawable {
	return Drawable{
		baseComponent: baseComponent{enabled: true},
		scale:         VecOne,
	}
}

// Origin returns the pivot offset.
func (d *Drawable) Origin() Vec {
	return d.origin
}

// SetOrigin sets the pivot offset. nil resets to (0,0).
func (d *Drawable) SetOrigin(v *Vec) {
	d.origin = vecOr(v, VecZero)
}

// Scale returns the scale, which is also the drawn size in stream units.
func (d *Drawable) Scale() Vec {
	return d.scale
}

// SetScale sets the scale. nil resets to (1,1).
func (d *Drawable) SetScale(v *Vec) {
	d.scale = vecOr(v, VecOne)
}

// Style returns the drawable's style.
func (d *Drawable) Style() Style {
	return d.style
}

// SetStyle replaces the drawable's style.
func (d *Drawable) SetStyle(style Style) {
	d.style = style
}

// QueueRenderCommands applies the style attributes to the stream. No-op when
// the component is not attached to an entity.
func (d *Drawable) QueueRenderCommands(stream CommandStream) {
	if d.owner == nil {
		return
	}
	d.style.apply(stream)
}

// drawRect returns the local draw rectangle: top-left at the negative
// pivot-adjusted origin scaled to the object's size.
func (d *Drawable) drawRect() (x, y, w, h float64) {
	return -d.origin.X * d.scale.X, -d.origin.Y * d.scale.Y, d.scale.X, d.scale.Y
}
