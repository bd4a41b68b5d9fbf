package easel

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Drawer is a CommandStream backed by an ebiten image and a string-keyed
// sprite registry. It is the reference sink for the command stream contract;
// any other backend satisfying CommandStream can replace it.
//
// Sprite sheets are treated as grids of TileSize-square frames; the frame
// selector picks a cell, and (1,1) on a non-grid image yields the whole
// image. Unknown sprite names draw a magenta placeholder so missing assets
// are visible instead of invisible.
type Drawer struct {
	target  *ebiten.Image
	sprites map[string]*ebiten.Image

	fill      color.RGBA
	stroke    color.RGBA
	hasStroke bool
	alpha     float64
	filter    ebiten.Filter
	tx, ty    float64
	rotation  float64
}

// NewDrawer creates a drawer targeting the given image. The target may be
// nil until SetTarget is called; draws without a target are dropped.
func NewDrawer(target *ebiten.Image) *Drawer {
	return &Drawer{
		target:  target,
		sprites: make(map[string]*ebiten.Image),
		fill:    color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		alpha:   1,
		filter:  ebiten.FilterNearest,
	}
}

// SetTarget redirects subsequent draws to a new image. Called once per frame
// with the screen.
func (d *Drawer) SetTarget(target *ebiten.Image) {
	d.target = target
}

// Register maps a logical sprite name to its image.
func (d *Drawer) Register(name string, img *ebiten.Image) {
	d.sprites[name] = img
}

func (d *Drawer) SetFillStyle(style string) {
	d.fill = parseHexColor(style)
}

func (d *Drawer) SetStrokeStyle(style string) {
	d.stroke = parseHexColor(style)
	d.hasStroke = style != ""
}

func (d *Drawer) SetGlobalAlpha(alpha float64) {
	d.alpha = alpha
}

func (d *Drawer) SetImageSmoothing(enabled bool) {
	if enabled {
		d.filter = ebiten.FilterLinear
	} else {
		d.filter = ebiten.FilterNearest
	}
}

func (d *Drawer) SetTranslation(x, y float64) {
	d.tx, d.ty = x, y
}

func (d *Drawer) SetRotation(radians float64) {
	d.rotation = radians
}

// geoM builds the transform for a w-by-h quad whose top-left sits at (x, y)
// in the current local space. Stream rotation is counter-clockwise; screen Y
// grows downward, hence the negation.
func (d *Drawer) geoM(x, y, w, h float64, iw, ih int) ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(w/float64(iw), h/float64(ih))
	g.Translate(x, y)
	g.Rotate(-d.rotation)
	g.Translate(d.tx, d.ty)
	return g
}

func (d *Drawer) DrawImage(x, y, w, h float64, sprite string, repeatX, repeatY, frameX, frameY float64) {
	if d.target == nil || w <= 0 || h <= 0 {
		return
	}
	img := d.sprites[sprite]
	if img == nil {
		img = missingSpriteImage()
	}
	frame := spriteFrame(img, int(frameX), int(frameY))
	iw := frame.Bounds().Dx()
	ih := frame.Bounds().Dy()
	if iw == 0 || ih == 0 {
		return
	}

	nx := int(repeatX)
	ny := int(repeatY)
	if nx < 1 {
		nx = 1
	}
	if ny < 1 {
		ny = 1
	}

	op := &ebiten.DrawImageOptions{Filter: d.filter}
	op.ColorScale.ScaleAlpha(float32(d.alpha))
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			op.GeoM = d.geoM(x+float64(i)*w, y+float64(j)*h, w, h, iw, ih)
			d.target.DrawImage(frame, op)
		}
	}
}

func (d *Drawer) DrawRect(x, y, w, h float64) {
	if d.target == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{Filter: d.filter}
	op.ColorScale.ScaleWithColor(d.fill)
	op.ColorScale.ScaleAlpha(float32(d.alpha))
	op.GeoM = d.geoM(x, y, w, h, 1, 1)
	d.target.DrawImage(whitePixelImage(), op)

	if !d.hasStroke {
		return
	}
	var edge ebiten.DrawImageOptions
	edge.Filter = d.filter
	edge.ColorScale.ScaleWithColor(d.stroke)
	edge.ColorScale.ScaleAlpha(float32(d.alpha))
	for _, r := range [4][4]float64{
		{x, y, w, 1},
		{x, y + h - 1, w, 1},
		{x, y, 1, h},
		{x + w - 1, y, 1, h},
	} {
		edge.GeoM = d.geoM(r[0], r[1], r[2], r[3], 1, 1)
		d.target.DrawImage(whitePixelImage(), &edge)
	}
}

// spriteFrame selects a TileSize-square cell of a sprite sheet. Frame (1,1)
// on an image no larger than one cell returns the whole image.
func spriteFrame(img *ebiten.Image, frameX, frameY int) *ebiten.Image {
	if frameX <= 1 && frameY <= 1 {
		b := img.Bounds()
		if b.Dx() <= TileSize && b.Dy() <= TileSize {
			return img
		}
		frameX, frameY = 1, 1
	}
	b := img.Bounds()
	r := image.Rect(
		b.Min.X+(frameX-1)*TileSize,
		b.Min.Y+(frameY-1)*TileSize,
		b.Min.X+frameX*TileSize,
		b.Min.Y+frameY*TileSize,
	).Intersect(b)
	if r.Empty() {
		return img
	}
	return img.SubImage(r).(*ebiten.Image)
}

var whitePixel *ebiten.Image

// whitePixelImage lazily creates the 1x1 white image used for solid fills.
func whitePixelImage() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

var missingSprite *ebiten.Image

// missingSpriteImage lazily creates the magenta placeholder for unregistered
// sprite names.
func missingSpriteImage() *ebiten.Image {
	if missingSprite == nil {
		missingSprite = ebiten.NewImage(1, 1)
		missingSprite.Fill(color.RGBA{R: 0xff, B: 0xff, A: 0xff})
	}
	return missingSprite
}

// parseHexColor parses "#rgb", "#rrggbb", and "#rrggbbaa". Anything else
// yields opaque white.
func parseHexColor(s string) color.RGBA {
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	if len(s) == 0 || s[0] != '#' {
		return white
	}
	hex := s[1:]
	var r, g, b, a uint8
	a = 0xff
	switch len(hex) {
	case 3:
		r = hexNibble(hex[0]) * 0x11
		g = hexNibble(hex[1]) * 0x11
		b = hexNibble(hex[2]) * 0x11
	case 8:
		a = hexNibble(hex[6])<<4 | hexNibble(hex[7])
		fallthrough
	case 6:
		r = hexNibble(hex[0])<<4 | hexNibble(hex[1])
		g = hexNibble(hex[2])<<4 | hexNibble(hex[3])
		b = hexNibble(hex[4])<<4 | hexNibble(hex[5])
	default:
		return white
	}
	return color.RGBA{R: r, G: g, B: b, A: a}
}

func hexNibble(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
