package level

import "math"

// MaxEntityCount is the cap on placed entities per level, the entrance and
// exit excluded.
const MaxEntityCount = 256

// Position is a grid cell coordinate. X grows rightward, Y grows downward.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Neighbor returns the cell one step in the given direction.
func (p Position) Neighbor(d Direction) Position {
	o := d.Offset()
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// Direction is one of the four cardinal directions. It doubles as a rotation
// measured counter-clockwise from RIGHT in 90° steps.
type Direction string

const (
	DirRight Direction = "RIGHT"
	DirUp    Direction = "UP"
	DirLeft  Direction = "LEFT"
	DirDown  Direction = "DOWN"
)

// Directions lists all four cardinal directions.
var Directions = [...]Direction{DirRight, DirUp, DirLeft, DirDown}

// Offset returns the unit grid step for the direction. UP is negative Y
// because Y grows downward.
func (d Direction) Offset() Position {
	switch d {
	case DirRight:
		return Position{X: 1}
	case DirUp:
		return Position{Y: -1}
	case DirLeft:
		return Position{X: -1}
	case DirDown:
		return Position{Y: 1}
	}
	return Position{}
}

// Radians returns the rotation as counter-clockwise radians from RIGHT.
func (d Direction) Radians() float64 {
	switch d {
	case DirUp:
		return math.Pi / 2
	case DirLeft:
		return math.Pi
	case DirDown:
		return 3 * math.Pi / 2
	}
	return 0
}

// Horizontal reports whether the direction lies on the X axis.
func (d Direction) Horizontal() bool {
	return d == DirRight || d == DirLeft
}

// Alignment names one of the two canonical edges owned by a cell. A cell owns
// its RIGHT and TOP edges; its left and bottom edges belong to the neighboring
// cells.
type Alignment string

const (
	AlignRight Alignment = "RIGHT"
	AlignTop   Alignment = "TOP"
)

// EdgePosition identifies a shared boundary between two grid cells in its
// canonical form. Every physical edge has exactly one EdgePosition; code that
// compares edges must normalize through EdgeAt first.
type EdgePosition struct {
	Cell      Position  `yaml:"cell"`
	Alignment Alignment `yaml:"alignment"`
}

// EdgeAt returns the canonical EdgePosition for the edge on the given side of
// cell. Left and bottom sides normalize to the owning neighbor's RIGHT and
// TOP edges.
func EdgeAt(cell Position, side Direction) EdgePosition {
	switch side {
	case DirRight:
		return EdgePosition{Cell: cell, Alignment: AlignRight}
	case DirUp:
		return EdgePosition{Cell: cell, Alignment: AlignTop}
	case DirLeft:
		return EdgePosition{Cell: cell.Neighbor(DirLeft), Alignment: AlignRight}
	case DirDown:
		return EdgePosition{Cell: cell.Neighbor(DirDown), Alignment: AlignTop}
	}
	return EdgePosition{Cell: cell, Alignment: AlignRight}
}

// Canonical reports whether the edge is in canonical form.
func (e EdgePosition) Canonical() bool {
	return e.Alignment == AlignRight || e.Alignment == AlignTop
}

// EntityType tags the variants of the placed-entity union.
type EntityType string

const (
	TypeTimeMachine EntityType = "TIME_MACHINE"
	TypeWall        EntityType = "WALL"
	TypeCurtain     EntityType = "CURTAIN"
	TypeOneWay      EntityType = "ONE_WAY"
	TypeGlass       EntityType = "GLASS"
	TypeStaff       EntityType = "STAFF"
	TypeSauce       EntityType = "SAUCE"
	TypeMushroom    EntityType = "MUSHROOM"
	TypeButton      EntityType = "BUTTON"
	TypeDoor        EntityType = "DOOR"
	TypeWire        EntityType = "WIRE"
)

// Ownership is the tile-exclusivity class of an entity type.
type Ownership uint8

const (
	// OnlyEntityInTile types may not coexist with any other entity at the
	// same position or edge.
	OnlyEntityInTile Ownership = iota
	// OnlyTypeInTile types may not coexist with another entity of the same
	// type at the same position, but may share a cell with other
	// ownership-compatible types.
	OnlyTypeInTile
)

// Ownership returns the tile-exclusivity class for the type.
func (t EntityType) Ownership() Ownership {
	switch t {
	case TypeStaff, TypeSauce, TypeMushroom, TypeButton, TypeWire:
		return OnlyTypeInTile
	}
	return OnlyEntityInTile
}

// EdgeAnchored reports whether entities of this type sit on a cell edge
// rather than in a cell.
func (t EntityType) EdgeAnchored() bool {
	switch t {
	case TypeWall, TypeCurtain, TypeOneWay, TypeGlass, TypeDoor:
		return true
	}
	return false
}

// MushroomType distinguishes mushroom pickup variants.
type MushroomType string

const (
	MushroomNormal MushroomType = "NORMAL"
	MushroomPoison MushroomType = "POISON"
)

// Entity is one placed object in the level data. Exactly one of Position and
// EdgePosition is set, according to the type's anchoring. The remaining
// fields are type-specific and zero when unused.
type Entity struct {
	Type          EntityType    `yaml:"type"`
	Position      *Position     `yaml:"position,omitempty"`
	EdgePosition  *EdgePosition `yaml:"edge_position,omitempty"`
	Rotation      Direction     `yaml:"rotation,omitempty"`
	FlipDirection Direction     `yaml:"flip_direction,omitempty"`
	Channel       int           `yaml:"channel,omitempty"`
	MushroomType  MushroomType  `yaml:"mushroom_type,omitempty"`
	// Sprite overrides the type's default sprite name when non-empty.
	Sprite string `yaml:"sprite,omitempty"`
}

// At reports whether the entity is cell-anchored at p.
func (e *Entity) At(p Position) bool {
	return e.Position != nil && *e.Position == p
}

// AtEdge reports whether the entity is edge-anchored at the canonical edge ep.
func (e *Entity) AtEdge(ep EdgePosition) bool {
	return e.EdgePosition != nil && *e.EdgePosition == ep
}

// TimeMachine is the level entrance: the cell the player materializes in and
// the direction they face.
type TimeMachine struct {
	Position Position  `yaml:"position"`
	Rotation Direction `yaml:"rotation,omitempty"`
}

// Level is the declarative schema consumed by the visual synthesis layer.
type Level struct {
	Entrance     TimeMachine `yaml:"entrance"`
	ExitPosition Position    `yaml:"exit_position"`
	Entities     []Entity    `yaml:"entities"`
}

// EntitiesAt returns the indices of entities cell-anchored at p, in slice order.
func EntitiesAt(entities []Entity, p Position) []int {
	var out []int
	for i := range entities {
		if entities[i].At(p) {
			out = append(out, i)
		}
	}
	return out
}

// Activators returns the indices of buttons emitting the given channel.
// Channels are many-to-many: no entity owns one.
func Activators(entities []Entity, channel int) []int {
	var out []int
	for i := range entities {
		if entities[i].Type == TypeButton && entities[i].Channel == channel {
			out = append(out, i)
		}
	}
	return out
}

// Listeners returns the indices of doors and wires listening on the given
// channel.
func Listeners(entities []Entity, channel int) []int {
	var out []int
	for i := range entities {
		e := &entities[i]
		if (e.Type == TypeDoor || e.Type == TypeWire) && e.Channel == channel {
			out = append(out, i)
		}
	}
	return out
}
