package room

import (
	"fmt"

	"github.com/lixenwraith/open-island/core"
	"github.com/lixenwraith/open-island/parameter"
	"github.com/lixenwraith/open-island/physics"
	"github.com/lixenwraith/open-island/vmath"
)

// Wall is a closed stretch of one room side
type Wall struct {
	Room     Index
	Side     core.Direction
	Collider physics.Collider
}

// span is a closed interval along a room side
type span struct {
	lo, hi float64
}

type sides struct {
	area vmath.Aabb
	// Indexed by core.Direction
	open [4][]span
}

// openSpan excises seg from the side, splitting an interval that contains it
func openSpan(side []span, seg span) []span {
scan:
	for i := 0; i < len(side); i++ {
		s := &side[i]
		in0 := seg.lo >= s.lo && seg.lo <= s.hi
		in1 := seg.hi >= s.lo && seg.hi <= s.hi
		switch {
		case in0 && in1:
			rest := span{lo: seg.hi, hi: s.hi}
			s.hi = seg.lo
			side = append(side, span{})
			copy(side[i+2:], side[i+1:])
			side[i+1] = rest
			break scan
		case in0:
			s.hi = seg.lo
		case in1:
			s.lo = seg.hi
		case seg.lo < s.lo && seg.hi > s.hi:
			s.hi = s.lo
		}
	}

	out := side[:0]
	for _, s := range side {
		if s.hi > s.lo {
			out = append(out, s)
		}
	}
	return out
}

// ComputeWalls derives wall colliders from the room topology
// Every side starts closed; each parent link opens the shared stretch on both rooms
// A link whose rooms share no wall is reported through invalid and skipped
func ComputeWalls(rooms *Rooms, invalid func(idx Index, err error)) []Wall {
	all := make(map[Index]*sides, rooms.Len())
	order := rooms.Indices()
	for _, idx := range order {
		a := rooms.Get(idx).Area
		all[idx] = &sides{
			area: a,
			open: [4][]span{
				core.Left:  {{a.Min.Y, a.Max.Y}},
				core.Right: {{a.Min.Y, a.Max.Y}},
				core.Down:  {{a.Min.X, a.Max.X}},
				core.Up:    {{a.Min.X, a.Max.X}},
			},
		}
	}

	for _, idx := range order {
		r := rooms.Get(idx)
		if r.UnlockedAfter == nil {
			continue
		}
		parentSides, ok := all[r.UnlockedAfter.Parent]
		if !ok {
			continue
		}
		cur, prev := r.Area, parentSides.area
		own := all[idx]

		switch {
		case prev.Max.X == cur.Min.X:
			seg := span{max(cur.Min.Y, prev.Min.Y), min(cur.Max.Y, prev.Max.Y)}
			parentSides.open[core.Right] = openSpan(parentSides.open[core.Right], seg)
			own.open[core.Left] = openSpan(own.open[core.Left], seg)
		case prev.Min.X == cur.Max.X:
			seg := span{max(cur.Min.Y, prev.Min.Y), min(cur.Max.Y, prev.Max.Y)}
			parentSides.open[core.Left] = openSpan(parentSides.open[core.Left], seg)
			own.open[core.Right] = openSpan(own.open[core.Right], seg)
		case prev.Max.Y == cur.Min.Y:
			seg := span{max(cur.Min.X, prev.Min.X), min(cur.Max.X, prev.Max.X)}
			parentSides.open[core.Up] = openSpan(parentSides.open[core.Up], seg)
			own.open[core.Down] = openSpan(own.open[core.Down], seg)
		case prev.Min.Y == cur.Max.Y:
			seg := span{max(cur.Min.X, prev.Min.X), min(cur.Max.X, prev.Max.X)}
			parentSides.open[core.Down] = openSpan(parentSides.open[core.Down], seg)
			own.open[core.Up] = openSpan(own.open[core.Up], seg)
		default:
			if invalid != nil {
				invalid(idx, fmt.Errorf("room %v shares no wall with parent %v", idx, r.UnlockedAfter.Parent))
			}
		}
	}

	var walls []Wall
	for _, idx := range order {
		s := all[idx]
		for _, dir := range core.Directions {
			for _, seg := range s.open[dir] {
				walls = append(walls, Wall{Room: idx, Side: dir, Collider: wallCollider(s.area, dir, seg)})
			}
		}
	}
	return walls
}

func wallCollider(area vmath.Aabb, side core.Direction, seg span) physics.Collider {
	const w = parameter.WallThickness
	length := seg.hi - seg.lo
	mid := (seg.lo + seg.hi) / 2
	switch side {
	case core.Left:
		return physics.NewCollider(vmath.V(area.Min.X, mid), physics.Rectangle(w, length))
	case core.Right:
		return physics.NewCollider(vmath.V(area.Max.X, mid), physics.Rectangle(w, length))
	case core.Down:
		return physics.NewCollider(vmath.V(mid, area.Min.Y), physics.Rectangle(length, w))
	default:
		return physics.NewCollider(vmath.V(mid, area.Max.Y), physics.Rectangle(length, w))
	}
}
