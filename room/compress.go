package room

import (
	"math"

	"github.com/lixenwraith/open-island/core"
	"github.com/lixenwraith/open-island/parameter"
	"github.com/lixenwraith/open-island/vmath"
)

// CompressionSpeed returns wall travel per second for the given room count
func CompressionSpeed(count int) float64 {
	return parameter.CompressionBase * math.Pow(float64(count), parameter.CompressionExponent)
}

// CompressDirection returns the direction a room collapses toward
// Only rooms whose parent is gone, or that never had one, compress
func CompressDirection(rooms *Rooms, r *Room) (core.Direction, bool) {
	if r.UnlockedAfter != nil && rooms.Contains(r.UnlockedAfter.Parent) {
		return 0, false
	}
	if r.ExpandedDirection != nil {
		return *r.ExpandedDirection, true
	}
	if r.UnlockedAfter != nil {
		return r.UnlockedAfter.Side.Opposite(), true
	}
	return 0, false
}

// Compress shifts the far wall of every compressing room by shift
// Returns the rooms whose width or height reached the squash threshold
func Compress(rooms *Rooms, shift float64) []Index {
	rooms.Each(func(_ Index, r *Room) bool {
		dir, ok := CompressDirection(rooms, r)
		if !ok {
			return true
		}
		switch dir {
		case core.Right:
			r.Area.Min.X += shift
		case core.Left:
			r.Area.Max.X -= shift
		case core.Up:
			r.Area.Min.Y += shift
		case core.Down:
			r.Area.Max.Y -= shift
		}
		return true
	})

	var squashed []Index
	rooms.Each(func(idx Index, r *Room) bool {
		if r.Area.Width() <= parameter.RoomSquashSize || r.Area.Height() <= parameter.RoomSquashSize {
			squashed = append(squashed, idx)
		}
		return true
	})
	return squashed
}

// ShouldSquash reports whether p sits in a squashed room or outside every room
func ShouldSquash(rooms *Rooms, squashed []Index, p vmath.Vec2) bool {
	idx, _, ok := Find(rooms, p)
	if !ok {
		return true
	}
	for _, s := range squashed {
		if s == idx {
			return true
		}
	}
	return false
}
