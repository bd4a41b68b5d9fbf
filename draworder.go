package easel

import "github.com/loophole-game/easel/level"

// EntityTypeDrawOrder lists the schema entity types in paint order: earlier
// types are painted first, so later types sit visually on top. The driver
// that walks level entities must emit commands in this order, ties keeping
// the level's array order.
var EntityTypeDrawOrder = [...]level.EntityType{
	level.TypeWire,
	level.TypeButton,
	level.TypeMushroom,
	level.TypeStaff,
	level.TypeWall,
	level.TypeOneWay,
	level.TypeGlass,
	level.TypeCurtain,
	level.TypeDoor,
	level.TypeTimeMachine,
	level.TypeSauce,
}

// drawRank is the read-only rank lookup built from EntityTypeDrawOrder.
var drawRank = func() map[level.EntityType]int {
	m := make(map[level.EntityType]int, len(EntityTypeDrawOrder))
	for i, t := range EntityTypeDrawOrder {
		m[t] = i
	}
	return m
}()

// DrawRank returns the paint rank of a type. Unknown types rank last so they
// are painted on top of everything and stay visible while editing.
func DrawRank(t level.EntityType) int {
	if r, ok := drawRank[t]; ok {
		return r
	}
	return len(EntityTypeDrawOrder)
}

// sortPlacements orders placements by draw rank, preserving source order for
// equal ranks. Stable insertion sort: zero allocations and optimal for the
// nearly-sorted slices produced by incremental edits.
func sortPlacements(ps []placement) {
	for i := 1; i < len(ps); i++ {
		key := ps[i]
		j := i - 1
		for j >= 0 && placementAfter(ps[j], key) {
			ps[j+1] = ps[j]
			j--
		}
		ps[j+1] = key
	}
}

func placementAfter(a, b placement) bool {
	if a.rank != b.rank {
		return a.rank > b.rank
	}
	return a.index > b.index
}
