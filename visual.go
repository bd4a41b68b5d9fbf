package easel

import "github.com/loophole-game/easel/level"

// VisualType extends the level schema's entity types with editor-only
// overlay types that have no schema representation.
type VisualType string

// VisualExplosion marks a cell as part of an explosion preview overlay. It
// renders as a pooled rectangle, not a sprite.
const VisualExplosion VisualType = "EXPLOSION"

// VisualTypeOf converts a schema entity type to its visual type.
func VisualTypeOf(t level.EntityType) VisualType {
	return VisualType(t)
}

// SpriteWireCorner is the sprite for a wire segment that turns a corner.
const SpriteWireCorner = "wire_corner"

// defaultSprites maps each schema entity type to its sprite name. Types not
// listed (and editor-only visual types) have no sprite.
var defaultSprites = map[VisualType]string{
	VisualType(level.TypeTimeMachine): "time_machine",
	VisualType(level.TypeWall):        "wall",
	VisualType(level.TypeCurtain):     "curtain",
	VisualType(level.TypeOneWay):      "one_way",
	VisualType(level.TypeGlass):       "glass",
	VisualType(level.TypeStaff):       "staff",
	VisualType(level.TypeSauce):       "sauce",
	VisualType(level.TypeMushroom):    "mushroom",
	VisualType(level.TypeButton):      "button",
	VisualType(level.TypeDoor):        "door",
	VisualType(level.TypeWire):        "wire",
}

// explosionFillStyle is the overlay color for explosion rectangles.
const explosionFillStyle = "#ff5a1f"

// EntityVisual is the scene entity synthesized for one placed level entity.
// It owns a single image component plus a grow-only pool of shape overlays,
// and re-resolves its sprite and overlays when the underlying schema type
// changes.
type EntityVisual struct {
	Entity

	image  *Image
	shapes []*Shape

	currentType VisualType
	hasType     bool

	style Style
}

// NewEntityVisual creates a visual with an empty image component attached.
// Components are sized to one tile, centered on the placement translation.
func NewEntityVisual() *EntityVisual {
	v := &EntityVisual{Entity: Entity{Kind: "entity_visual"}}
	v.image = NewImage("")
	applyTileTransform(&v.image.Drawable)
	v.AddComponents(v.image)
	return v
}

// applyTileTransform centers a drawable on its local origin at tile size.
func applyTileTransform(d *Drawable) {
	origin := Splat(0.5)
	scale := Splat(TileSize)
	d.SetOrigin(&origin)
	d.SetScale(&scale)
}

// Image returns the visual's image component.
func (v *EntityVisual) Image() *Image {
	return v.image
}

// Shapes returns the pooled shape components, enabled and disabled alike.
// The returned slice MUST NOT be mutated by the caller.
func (v *EntityVisual) Shapes() []*Shape {
	return v.shapes
}

// OnEntityChanged re-resolves the visual for the given schema type. Calling
// it again with the current type is a no-op, so re-applying the same entity
// while dragging a brush costs nothing.
//
// entity is the placed schema entity when one exists; entities is the full
// level entity list used for neighbor inspection. Both may be nil, in which
// case type defaults are used.
func (v *EntityVisual) OnEntityChanged(typ VisualType, entity *level.Entity, entities []level.Entity) {
	if v.hasType && v.currentType == typ {
		return
	}
	v.currentType = typ
	v.hasType = true

	// Release overlays back to the pool and clear the sprite before
	// re-resolving, so stale visuals never leak across type changes.
	v.requestTileShapes(0)
	v.image.SetImageName("")

	switch typ {
	case VisualExplosion:
		sh := v.requestTileShapes(1)[0]
		sh.SetKind(ShapeRect)
		st := sh.Style()
		st.FillStyle = explosionFillStyle
		sh.SetStyle(st)
	case VisualType(level.TypeWire):
		v.image.SetImageName(wireSprite(entity, entities))
	default:
		v.image.SetImageName(spriteFor(typ, entity))
	}
}

// CurrentType returns the cached schema type and whether one has been applied.
func (v *EntityVisual) CurrentType() (VisualType, bool) {
	return v.currentType, v.hasType
}

// Style returns the visual's shared style.
func (v *EntityVisual) Style() Style {
	return v.style
}

// SetStyle replaces the shared style and propagates the effective global
// alpha (1 when unset) to the image and to every pooled shape, disabled ones
// included, so a later re-enable inherits the correct alpha without
// re-application. Fill and stroke pass through to the image unchanged.
func (v *EntityVisual) SetStyle(style Style) {
	v.style = style
	a := style.Alpha()
	v.image.SetStyle(style.WithAlpha(a))
	for _, sh := range v.shapes {
		sh.SetStyle(sh.Style().WithAlpha(a))
	}
}

// requestTileShapes sets the number of active shape overlays to n, enabling
// slots 0..n-1 and disabling the rest. The pool only grows: shapes beyond n
// are retained disabled for reuse, trading memory for amortized allocation
// while entity types churn under the brush.
func (v *EntityVisual) requestTileShapes(n int) []*Shape {
	for len(v.shapes) < n {
		sh := NewShape(ShapeRect)
		applyTileTransform(&sh.Drawable)
		sh.SetStyle(sh.Style().WithAlpha(v.style.Alpha()))
		v.AddComponents(sh)
		v.shapes = append(v.shapes, sh)
	}
	for i, sh := range v.shapes {
		sh.SetEnabled(i < n)
	}
	return v.shapes[:n]
}

// spriteFor returns the sprite name for a non-wire type, honoring a custom
// per-entity override. Unknown types resolve to "" and draw nothing.
func spriteFor(typ VisualType, entity *level.Entity) string {
	if entity != nil && entity.Sprite != "" {
		return entity.Sprite
	}
	return defaultSprites[typ]
}

// wireSprite resolves straight-vs-corner wire art by inspecting the wire's
// cardinal neighbors. A neighbor connects when its cell holds a wire on the
// same channel or a button emitting that channel. Corner art is used when
// connections exist on both axes; with no entity to inspect, the default
// sprite is used.
func wireSprite(entity *level.Entity, entities []level.Entity) string {
	straight := spriteFor(VisualType(level.TypeWire), entity)
	if entity == nil || entity.Position == nil {
		return straight
	}
	var horizontal, vertical bool
	for _, d := range level.Directions {
		if !wireConnects(entities, entity.Position.Neighbor(d), entity.Channel) {
			continue
		}
		if d.Horizontal() {
			horizontal = true
		} else {
			vertical = true
		}
	}
	if horizontal && vertical {
		return SpriteWireCorner
	}
	return straight
}

func wireConnects(entities []level.Entity, p level.Position, channel int) bool {
	for i := range entities {
		e := &entities[i]
		if !e.At(p) {
			continue
		}
		switch e.Type {
		case level.TypeWire, level.TypeButton:
			if e.Channel == channel {
				return true
			}
		}
	}
	return false
}
