package core

import "fmt"

// Direction is one of the four axis-aligned sides of a room
type Direction uint8

const (
	Left Direction = iota
	Right
	Down
	Up
)

// Directions lists every direction in scan order; tie breaks depend on this order
var Directions = [4]Direction{Left, Right, Down, Up}

// Opposite returns the facing direction
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Down:
		return Up
	default:
		return Down
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Down:
		return "down"
	case Up:
		return "up"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}
