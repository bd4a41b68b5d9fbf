package easel

// CommandStream is the write-only sink collecting one frame's ordered drawing
// instructions. Operations are append-only and may not block or fail; later
// draws paint over earlier ones (painter's algorithm).
//
// Attribute setters stay in effect for subsequent draws until set again.
// SetTranslation and SetRotation position the local coordinate space draws
// are expressed in; the scene driver emits them once per entity.
//
// DrawImage draws repeatX by repeatY copies of the named sprite, each w by h,
// the first with its top-left at (x, y). frameX and frameY are 1-based frame
// selectors into the sprite sheet; the scene layer always emits (1, 1).
type CommandStream interface {
	SetFillStyle(style string)
	SetStrokeStyle(style string)
	SetGlobalAlpha(alpha float64)
	SetImageSmoothing(enabled bool)
	SetTranslation(x, y float64)
	SetRotation(radians float64)
	DrawImage(x, y, w, h float64, sprite string, repeatX, repeatY, frameX, frameY float64)
	DrawRect(x, y, w, h float64)
}

// OpType identifies the kind of a recorded stream operation.
type OpType uint8

const (
	OpFillStyle OpType = iota
	OpStrokeStyle
	OpGlobalAlpha
	OpImageSmoothing
	OpTranslation
	OpRotation
	OpDrawImage
	OpDrawRect
)

// Command is one recorded stream operation. Only the fields relevant to the
// op are set.
type Command struct {
	Op OpType

	X, Y, W, H float64

	Sprite           string
	RepeatX, RepeatY float64
	FrameX, FrameY   float64

	Str   string  // fill/stroke style value
	Value float64 // alpha or rotation
	Flag  bool    // image smoothing
}

const defaultRecorderCap = 256

// Recorder is a CommandStream that appends every operation to a reusable
// buffer. It is the observable used by tests and the staging buffer a frame
// can be recorded into before replaying to a backend.
type Recorder struct {
	commands []Command
}

// NewRecorder creates a Recorder with a preallocated command buffer.
func NewRecorder() *Recorder {
	return &Recorder{commands: make([]Command, 0, defaultRecorderCap)}
}

// Commands returns the recorded operations. The returned slice MUST NOT be
// mutated and is invalidated by Reset.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Reset clears the buffer for the next frame, retaining capacity.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// Replay feeds every recorded operation into dst in order.
func (r *Recorder) Replay(dst CommandStream) {
	for i := range r.commands {
		c := &r.commands[i]
		switch c.Op {
		case OpFillStyle:
			dst.SetFillStyle(c.Str)
		case OpStrokeStyle:
			dst.SetStrokeStyle(c.Str)
		case OpGlobalAlpha:
			dst.SetGlobalAlpha(c.Value)
		case OpImageSmoothing:
			dst.SetImageSmoothing(c.Flag)
		case OpTranslation:
			dst.SetTranslation(c.X, c.Y)
		case OpRotation:
			dst.SetRotation(c.Value)
		case OpDrawImage:
			dst.DrawImage(c.X, c.Y, c.W, c.H, c.Sprite, c.RepeatX, c.RepeatY, c.FrameX, c.FrameY)
		case OpDrawRect:
			dst.DrawRect(c.X, c.Y, c.W, c.H)
		}
	}
}

func (r *Recorder) SetFillStyle(style string) {
	r.commands = append(r.commands, Command{Op: OpFillStyle, Str: style})
}

func (r *Recorder) SetStrokeStyle(style string) {
	r.commands = append(r.commands, Command{Op: OpStrokeStyle, Str: style})
}

func (r *Recorder) SetGlobalAlpha(alpha float64) {
	r.commands = append(r.commands, Command{Op: OpGlobalAlpha, Value: alpha})
}

func (r *Recorder) SetImageSmoothing(enabled bool) {
	r.commands = append(r.commands, Command{Op: OpImageSmoothing, Flag: enabled})
}

func (r *Recorder) SetTranslation(x, y float64) {
	r.commands = append(r.commands, Command{Op: OpTranslation, X: x, Y: y})
}

func (r *Recorder) SetRotation(radians float64) {
	r.commands = append(r.commands, Command{Op: OpRotation, Value: radians})
}

func (r *Recorder) DrawImage(x, y, w, h float64, sprite string, repeatX, repeatY, frameX, frameY float64) {
	r.commands = append(r.commands, Command{
		Op: OpDrawImage,
		X:  x, Y: y, W: w, H: h,
		Sprite:  sprite,
		RepeatX: repeatX, RepeatY: repeatY,
		FrameX: frameX, FrameY: frameY,
	})
}

func (r *Recorder) DrawRect(x, y, w, h float64) {
	r.commands = append(r.commands, Command{Op: OpDrawRect, X: x, Y: y, W: w, H: h})
}
