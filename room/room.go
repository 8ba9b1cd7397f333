package room

import (
	"math"

	"github.com/lixenwraith/open-island/core"
	"github.com/lixenwraith/open-island/vmath"
)

// Link ties a room to the room it was unlocked from
// Side is the wall of this room that faces the parent
type Link struct {
	Parent Index
	Side   core.Direction
}

// Room is an axis-aligned playable area
type Room struct {
	Area          vmath.Aabb
	UnlockedAfter *Link
	// ExpandedDirection is the wall the player broke to create a child room
	ExpandedDirection *core.Direction
}

// Rooms is the arena holding the dungeon topology
type Rooms = Arena[Room]

// Contains reports whether p is inside the room area
func (r *Room) Contains(p vmath.Vec2) bool {
	return r.Area.Contains(p)
}

// ClosestWall returns the wall nearest to p and the distance to its line
// Walls are scanned Left, Right, Down, Up; only a strictly closer wall replaces the current pick
func (r *Room) ClosestWall(p vmath.Vec2) (float64, core.Direction) {
	dists := [4]float64{
		math.Abs(p.X - r.Area.Min.X),
		math.Abs(p.X - r.Area.Max.X),
		math.Abs(p.Y - r.Area.Min.Y),
		math.Abs(p.Y - r.Area.Max.Y),
	}
	best, dir := dists[0], core.Directions[0]
	for i := 1; i < len(dists); i++ {
		if dists[i] < best {
			best, dir = dists[i], core.Directions[i]
		}
	}
	return best, dir
}

// Breakable reports whether the wall on side may be broken to expand
func (r *Room) Breakable(side core.Direction) bool {
	if r.ExpandedDirection != nil {
		return false
	}
	return r.UnlockedAfter == nil || r.UnlockedAfter.Side != side
}

// Find returns the first room in slot order containing p
func Find(rooms *Rooms, p vmath.Vec2) (Index, *Room, bool) {
	var (
		found Index
		room  *Room
	)
	rooms.Each(func(idx Index, r *Room) bool {
		if r.Contains(p) {
			found, room = idx, r
			return false
		}
		return true
	})
	return found, room, room != nil
}

// Inside reports whether any room contains p
func Inside(rooms *Rooms, p vmath.Vec2) bool {
	_, _, ok := Find(rooms, p)
	return ok
}

// Adjacent builds a room of size next to area on the given side, centered on that wall
func Adjacent(area vmath.Aabb, side core.Direction, size vmath.Vec2) vmath.Aabb {
	c := area.Center()
	switch side {
	case core.Left:
		return vmath.AabbPoint(vmath.V(area.Min.X, c.Y)).ExtendLeft(size.X).ExtendSymmetric(vmath.V(0, size.Y/2))
	case core.Right:
		return vmath.AabbPoint(vmath.V(area.Max.X, c.Y)).ExtendRight(size.X).ExtendSymmetric(vmath.V(0, size.Y/2))
	case core.Down:
		return vmath.AabbPoint(vmath.V(c.X, area.Min.Y)).ExtendDown(size.Y).ExtendSymmetric(vmath.V(size.X/2, 0))
	default:
		return vmath.AabbPoint(vmath.V(c.X, area.Max.Y)).ExtendUp(size.Y).ExtendSymmetric(vmath.V(size.X/2, 0))
	}
}
