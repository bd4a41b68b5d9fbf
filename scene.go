package easel

import (
	"fmt"
	"os"
	"time"

	"github.com/loophole-game/easel/level"
)

// TileSize is the edge length of one grid cell in stream units.
const TileSize = 32

// placement binds a synthesized visual to its world translation, rotation,
// and paint rank for one frame.
type placement struct {
	visual   *EntityVisual
	x, y     float64
	rotation float64
	rank     int
	index    int
}

// Scene synthesizes one EntityVisual per placed level entity (plus the
// entrance) and emits one frame of ordered commands per tick. Visual
// instances are pooled across syncs: slot i always reuses the same instance,
// so component pools inside each visual survive level churn.
type Scene struct {
	visuals    []*EntityVisual
	placements []placement
	debug      bool
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Sync rebuilds the scene's visuals from the level. Slot 0 is the entrance
// time machine; slots 1..n follow the level's entity order. Logically invalid
// levels are synthesized anyway, each entity independently, so a mid-edit
// overlap never halts rendering.
func (s *Scene) Sync(l *level.Level) {
	s.placements = s.placements[:0]
	if l == nil {
		return
	}
	entrance := level.Entity{
		Type:     level.TypeTimeMachine,
		Position: &l.Entrance.Position,
		Rotation: l.Entrance.Rotation,
	}
	s.place(0, &entrance, l.Entities)
	for i := range l.Entities {
		s.place(i+1, &l.Entities[i], l.Entities)
	}
}

func (s *Scene) place(slot int, e *level.Entity, entities []level.Entity) {
	for len(s.visuals) <= slot {
		s.visuals = append(s.visuals, NewEntityVisual())
	}
	v := s.visuals[slot]
	// Neighbor-dependent art (wire corners) may change even when the slot's
	// type does not, so a sync always re-resolves.
	v.hasType = false
	v.OnEntityChanged(VisualTypeOf(e.Type), e, entities)

	x, y, rot := placementTransform(e)
	s.placements = append(s.placements, placement{
		visual:   v,
		x:        x,
		y:        y,
		rotation: rot,
		rank:     DrawRank(e.Type),
		index:    slot,
	})
}

// placementTransform computes the stream translation and rotation for an
// entity. Cell entities center in their cell; edge entities center on the
// shared edge, RIGHT edges rotated a quarter turn because they run
// vertically. The entity's own rotation is added on top.
func placementTransform(e *level.Entity) (x, y, rot float64) {
	rot = e.Rotation.Radians()
	switch {
	case e.Position != nil:
		x = (float64(e.Position.X) + 0.5) * TileSize
		y = (float64(e.Position.Y) + 0.5) * TileSize
	case e.EdgePosition != nil:
		c := e.EdgePosition.Cell
		if e.EdgePosition.Alignment == level.AlignRight {
			x = (float64(c.X) + 1) * TileSize
			y = (float64(c.Y) + 0.5) * TileSize
			rot += level.DirUp.Radians()
		} else {
			x = (float64(c.X) + 0.5) * TileSize
			y = float64(c.Y) * TileSize
		}
	}
	return x, y, rot
}

// VisualAt returns the visual for frame slot i (0 = entrance, then level
// entity order), or nil when the slot is not part of the current frame.
func (s *Scene) VisualAt(i int) *EntityVisual {
	if i < 0 || i >= len(s.placements) {
		return nil
	}
	return s.visuals[i]
}

// Len returns the number of visuals in the current frame.
func (s *Scene) Len() int {
	return len(s.placements)
}

// QueueFrame emits the whole frame into the stream: placements ordered by
// the type-priority table (ties by level array order), each visual preceded
// by its translation and rotation attributes. Deterministic for a given
// synced level.
func (s *Scene) QueueFrame(stream CommandStream) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	sortPlacements(s.placements)

	var sortTime time.Duration
	if s.debug {
		sortTime = time.Since(t0)
		t0 = time.Now()
	}

	for i := range s.placements {
		p := &s.placements[i]
		stream.SetTranslation(p.x, p.y)
		stream.SetRotation(p.rotation)
		p.visual.QueueRenderCommands(stream)
	}

	if s.debug {
		_, _ = fmt.Fprintf(os.Stderr,
			"[easel] visuals: %d | sort: %v | emit: %v\n",
			len(s.placements), sortTime, time.Since(t0))
	}
}

// SetDebugMode toggles per-frame stats on stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}
