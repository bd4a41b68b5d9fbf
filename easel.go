package easel

// Vec is a 2D vector used for origins, scales, and tiling repeat factors.
type Vec struct {
	X, Y float64
}

// Splat returns a Vec with both components set to s.
func Splat(s float64) Vec {
	return Vec{X: s, Y: s}
}

// VecOne is the neutral default for scale and repeat semantics.
var VecOne = Vec{X: 1, Y: 1}

// VecZero is the neutral default for origin and position semantics.
var VecZero = Vec{}

// vecOr returns *v, or def when v is nil. Optional Vec parameters use nil to
// mean "reset to the caller's neutral default".
func vecOr(v *Vec, def Vec) Vec {
	if v == nil {
		return def
	}
	return *v
}

// Style is a sparse set of stream attributes. Unset fields (empty color
// strings, nil pointers) mean "leave the stream's current value alone".
type Style struct {
	FillStyle      string
	StrokeStyle    string
	GlobalAlpha    *float64
	ImageSmoothing *bool
}

// Alpha returns the effective global alpha: GlobalAlpha when set, else 1.
func (s Style) Alpha() float64 {
	if s.GlobalAlpha == nil {
		return 1
	}
	return *s.GlobalAlpha
}

// WithAlpha returns a copy of the style with GlobalAlpha set to a.
func (s Style) WithAlpha(a float64) Style {
	s.GlobalAlpha = &a
	return s
}

// apply pushes the set attributes onto the stream, in a fixed order so
// emission stays deterministic.
func (s Style) apply(stream CommandStream) {
	if s.FillStyle != "" {
		stream.SetFillStyle(s.FillStyle)
	}
	if s.StrokeStyle != "" {
		stream.SetStrokeStyle(s.StrokeStyle)
	}
	if s.GlobalAlpha != nil {
		stream.SetGlobalAlpha(*s.GlobalAlpha)
	}
	if s.ImageSmoothing != nil {
		stream.SetImageSmoothing(*s.ImageSmoothing)
	}
}

// ShapeKind selects the geometric primitive a Shape renders.
type ShapeKind uint8

const (
	ShapeRect ShapeKind = iota // axis-aligned filled rectangle
)
