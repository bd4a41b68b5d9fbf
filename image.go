package easel

// Image is a drawable that renders a named sprite scaled to the drawable's
// size, optionally tiled. The sprite name is a logical key resolved by the
// backend's registry; an empty name draws nothing.
type Image struct {
	Drawable

	imageName string
	repeat    Vec
}

// NewImage creates an enabled image component for the named sprite.
func NewImage(imageName string) *Image {
	return &Image{
		Drawable:  newDrawable(),
		imageName: imageName,
		repeat:    VecOne,
	}
}

// ImageName returns the sprite name.
func (c *Image) ImageName() string {
	return c.imageName
}

// SetImageName sets the sprite name. Empty means nothing is drawn.
func (c *Image) SetImageName(name string) {
	c.imageName = name
}

// Repeat returns the tiling factor.
func (c *Image) Repeat() Vec {
	return c.repeat
}

// SetRepeat sets the tiling factor. nil resets to (1,1).
func (c *Image) SetRepeat(v *Vec) {
	c.repeat = vecOr(v, VecOne)
}

// QueueRenderCommands emits the style attributes followed by one DrawImage.
// No-op when unattached or when the sprite name is empty. The frame selector
// is fixed to (1,1): no animation at this layer.
func (c *Image) QueueRenderCommands(stream CommandStream) {
	if c.owner == nil || c.imageName == "" {
		return
	}
	c.Drawable.QueueRenderCommands(stream)
	x, y, w, h := c.drawRect()
	stream.DrawImage(x, y, w, h, c.imageName, c.repeat.X, c.repeat.Y, 1, 1)
}
