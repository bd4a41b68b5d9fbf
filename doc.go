// Package easel is the scene and rendering core of the level editor for a
// 2D time-travel puzzle game.
//
// Easel keeps a small retained-mode scene model: each visual object is an
// [Entity] owning zero or more [Component] values ([Image], [Shape]).
// Rendering walks the model once per frame and appends an ordered,
// side-effect-free stream of drawing instructions to a [CommandStream];
// later draws paint over earlier ones.
//
// On top sits a derived-visual synthesis layer: [Scene.Sync] maps the
// declarative [github.com/loophole-game/easel/level] data model (grid cells,
// shared edges, wiring channels) into entity visuals, disambiguating sprites
// (wire corners by neighbor inspection) and pooling shape overlays.
//
// # Frame loop
//
//	scene := easel.NewScene()
//	scene.Sync(lvl)                // after every level mutation
//
//	drawer := easel.NewDrawer(nil) // or any CommandStream backend
//	// ... drawer.Register sprite images ...
//
//	// once per tick:
//	drawer.SetTarget(screen)
//	scene.QueueFrame(drawer)
//
// Everything is single-threaded and frame-driven: no method blocks, and
// emission order is deterministic: type-priority table first
// ([EntityTypeDrawOrder]), then level array order, then per-entity component
// insertion order.
//
// Expected edge cases (unattached components, empty sprite names, nil
// repeat/origin) degrade to silent no-ops or defaults rather than errors,
// so a momentarily invalid in-progress edit never halts rendering. Schema
// invariants are checked separately by the level package's Validate, which
// belongs to the editing layer, not this core.
package easel
