package level

import (
	"errors"
	"fmt"
)

// Validation errors. Validate wraps these with the offending entity's index,
// so use errors.Is to classify.
var (
	ErrTooManyEntities  = errors.New("too many entities")
	ErrMissingAnchor    = errors.New("entity anchor missing or mismatched")
	ErrEdgeNotCanonical = errors.New("edge position not canonical")
	ErrTileOccupied     = errors.New("tile ownership violated")
	ErrExitBlocked      = errors.New("exit position blocked")
)

// Validate checks the schema-level invariants the editing layer must enforce
// before data reaches synthesis: entity count, anchoring, canonical edges,
// tile ownership, and a free exit cell. The render core itself never calls
// this — it stays defined on invalid levels.
func Validate(l *Level) error {
	if len(l.Entities) > MaxEntityCount {
		return fmt.Errorf("level: %d entities: %w", len(l.Entities), ErrTooManyEntities)
	}

	for i := range l.Entities {
		e := &l.Entities[i]
		if err := checkAnchor(e); err != nil {
			return fmt.Errorf("level: entity %d (%s): %w", i, e.Type, err)
		}
		if err := checkOwnership(l, i); err != nil {
			return fmt.Errorf("level: entity %d (%s): %w", i, e.Type, err)
		}
	}

	if blocked, i := exitBlocked(l); blocked {
		return fmt.Errorf("level: entity %d occupies exit cell: %w", i, ErrExitBlocked)
	}
	return nil
}

func checkAnchor(e *Entity) error {
	if e.Type.EdgeAnchored() {
		if e.EdgePosition == nil || e.Position != nil {
			return ErrMissingAnchor
		}
		if !e.EdgePosition.Canonical() {
			return ErrEdgeNotCanonical
		}
		return nil
	}
	if e.Position == nil || e.EdgePosition != nil {
		return ErrMissingAnchor
	}
	return nil
}

// checkOwnership verifies entity i against every earlier entity and the
// entrance, so a full validation reports each conflict exactly once.
func checkOwnership(l *Level, i int) error {
	e := &l.Entities[i]

	// The entrance time machine claims its cell exclusively.
	if e.Position != nil && *e.Position == l.Entrance.Position {
		return ErrTileOccupied
	}

	for j := 0; j < i; j++ {
		o := &l.Entities[j]
		if !sameTile(e, o) {
			continue
		}
		if e.Type.Ownership() == OnlyEntityInTile || o.Type.Ownership() == OnlyEntityInTile {
			return ErrTileOccupied
		}
		if e.Type == o.Type {
			return ErrTileOccupied
		}
	}
	return nil
}

// sameTile reports whether two entities occupy the same cell or the same
// canonical edge. Cell and edge anchors never collide with each other.
func sameTile(a, b *Entity) bool {
	if a.Position != nil && b.Position != nil {
		return *a.Position == *b.Position
	}
	if a.EdgePosition != nil && b.EdgePosition != nil {
		return *a.EdgePosition == *b.EdgePosition
	}
	return false
}

// exitBlocked reports whether a cell-anchored exclusive entity sits on the
// exit cell. Edge entities never occupy the exit cell itself.
func exitBlocked(l *Level) (bool, int) {
	for i := range l.Entities {
		e := &l.Entities[i]
		if e.At(l.ExitPosition) && e.Type.Ownership() == OnlyEntityInTile {
			return true, i
		}
	}
	return false, 0
}
