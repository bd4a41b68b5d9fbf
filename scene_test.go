package easel

import (
	"math"
	"reflect"
	"testing"

	"github.com/loophole-game/easel/level"
)

func testLevel() *level.Level {
	return &level.Level{
		Entrance:     level.TimeMachine{Position: level.Position{X: 0, Y: 0}},
		ExitPosition: level.Position{X: 5, Y: 5},
		Entities: []level.Entity{
			{Type: level.TypeSauce, Position: pos(4, 4)},
			{Type: level.TypeWall, EdgePosition: &level.EdgePosition{Cell: level.Position{X: 1, Y: 1}, Alignment: level.AlignRight}},
			wire(2, 2, 1),
			{Type: level.TypeButton, Position: pos(3, 3), Channel: 1},
		},
	}
}

func frameSprites(cmds []Command) []string {
	var sprites []string
	for _, c := range cmds {
		if c.Op == OpDrawImage {
			sprites = append(sprites, c.Sprite)
		}
	}
	return sprites
}

func TestQueueFrameDrawOrder(t *testing.T) {
	s := NewScene()
	s.Sync(testLevel())

	r := NewRecorder()
	s.QueueFrame(r)

	got := frameSprites(r.Commands())
	want := []string{"wire", "button", "wall", "time_machine", "sauce"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("frame sprites = %v, want %v", got, want)
	}
}

func TestQueueFrameTiesKeepArrayOrder(t *testing.T) {
	l := &level.Level{
		Entities: []level.Entity{
			{Type: level.TypeStaff, Position: pos(3, 0), Sprite: "staff_c"},
			{Type: level.TypeStaff, Position: pos(1, 0), Sprite: "staff_a"},
			{Type: level.TypeStaff, Position: pos(2, 0), Sprite: "staff_b"},
		},
	}
	s := NewScene()
	s.Sync(l)

	r := NewRecorder()
	s.QueueFrame(r)

	got := frameSprites(r.Commands())
	want := []string{"staff_c", "staff_a", "staff_b", "time_machine"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("frame sprites = %v, want %v (ties by array order)", got, want)
	}
}

func TestQueueFrameDeterministic(t *testing.T) {
	s := NewScene()
	s.Sync(testLevel())

	a := NewRecorder()
	s.QueueFrame(a)
	b := NewRecorder()
	s.QueueFrame(b)

	if !reflect.DeepEqual(a.Commands(), b.Commands()) {
		t.Error("two ticks over the same level emitted different command sequences")
	}
}

func TestCellPlacementTranslation(t *testing.T) {
	e := level.Entity{Type: level.TypeSauce, Position: pos(2, 3)}
	x, y, rot := placementTransform(&e)
	if x != 2.5*TileSize || y != 3.5*TileSize {
		t.Errorf("translation = (%v, %v), want (%v, %v)", x, y, 2.5*TileSize, 3.5*TileSize)
	}
	if rot != 0 {
		t.Errorf("rotation = %v, want 0", rot)
	}
}

func TestEdgePlacementTranslation(t *testing.T) {
	right := level.Entity{Type: level.TypeWall, EdgePosition: &level.EdgePosition{Cell: level.Position{X: 1, Y: 1}, Alignment: level.AlignRight}}
	x, y, rot := placementTransform(&right)
	if x != 2*TileSize || y != 1.5*TileSize {
		t.Errorf("RIGHT edge translation = (%v, %v), want (%v, %v)", x, y, 2*TileSize, 1.5*TileSize)
	}
	if rot != math.Pi/2 {
		t.Errorf("RIGHT edge rotation = %v, want π/2", rot)
	}

	top := level.Entity{Type: level.TypeDoor, EdgePosition: &level.EdgePosition{Cell: level.Position{X: 1, Y: 1}, Alignment: level.AlignTop}}
	x, y, rot = placementTransform(&top)
	if x != 1.5*TileSize || y != 1*TileSize {
		t.Errorf("TOP edge translation = (%v, %v), want (%v, %v)", x, y, 1.5*TileSize, 1*TileSize)
	}
	if rot != 0 {
		t.Errorf("TOP edge rotation = %v, want 0", rot)
	}
}

func TestEntityRotationAddsToEdgeBase(t *testing.T) {
	e := level.Entity{
		Type:         level.TypeOneWay,
		EdgePosition: &level.EdgePosition{Cell: level.Position{X: 0, Y: 0}, Alignment: level.AlignRight},
		Rotation:     level.DirLeft,
	}
	_, _, rot := placementTransform(&e)
	if rot != math.Pi+math.Pi/2 {
		t.Errorf("rotation = %v, want π + π/2", rot)
	}
}

func TestSceneRendersInvalidLevel(t *testing.T) {
	// Two exclusive entities on the same edge: a taxonomy violation that the
	// editing layer should prevent, but the render core must still draw.
	edge := level.EdgePosition{Cell: level.Position{X: 1, Y: 1}, Alignment: level.AlignTop}
	l := &level.Level{
		Entities: []level.Entity{
			{Type: level.TypeWall, EdgePosition: &edge},
			{Type: level.TypeWall, EdgePosition: &edge},
		},
	}
	s := NewScene()
	s.Sync(l)

	r := NewRecorder()
	s.QueueFrame(r)

	walls := 0
	for _, sprite := range frameSprites(r.Commands()) {
		if sprite == "wall" {
			walls++
		}
	}
	if walls != 2 {
		t.Errorf("drew %d walls, want 2 (each entity rendered independently)", walls)
	}
}

func TestSceneVisualPoolReuse(t *testing.T) {
	s := NewScene()
	l := testLevel()
	s.Sync(l)
	first := s.VisualAt(1)

	s.Sync(l)
	if s.VisualAt(1) != first {
		t.Error("sync reallocated a visual instead of reusing the slot's instance")
	}
}

func TestSceneSyncNilLevel(t *testing.T) {
	s := NewScene()
	s.Sync(nil)
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0 for nil level", s.Len())
	}
	r := NewRecorder()
	s.QueueFrame(r)
	if len(r.Commands()) != 0 {
		t.Errorf("empty scene emitted %d ops, want 0", len(r.Commands()))
	}
}

func TestSceneWireCornerRefreshOnSync(t *testing.T) {
	l := &level.Level{Entities: []level.Entity{wire(1, 1, 1), wire(2, 1, 1)}}
	s := NewScene()
	s.Sync(l)
	if got := s.VisualAt(1).Image().ImageName(); got != "wire" {
		t.Fatalf("sprite = %q, want %q before the bend exists", got, "wire")
	}

	// Placing a vertical neighbor turns the first segment into a corner even
	// though its own type never changed.
	l.Entities = append(l.Entities, wire(1, 0, 1))
	s.Sync(l)
	if got := s.VisualAt(1).Image().ImageName(); got != SpriteWireCorner {
		t.Errorf("sprite = %q, want %q after adding the bend", got, SpriteWireCorner)
	}
}
