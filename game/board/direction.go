package board

import (
	"fmt"
	"strings"
)

// Direction selects one of the four axis-aligned neighbours of a cell.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// offset is the coordinate step taken when moving one cell in a direction.
type offset struct {
	di, dj int
}

var offsets = [...]offset{
	Up:    {di: -1},
	Down:  {di: 1},
	Left:  {dj: -1},
	Right: {dj: 1},
}

var directionNames = [...]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

// Directions returns every direction in declaration order.
func Directions() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// ParseDirection converts "up", "down", "left" or "right" (any case) to a Direction.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d, n := range directionNames {
		if n == name {
			return Direction(d), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

func (d Direction) String() string {
	if !d.valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

func (d Direction) valid() bool {
	return d >= Up && d <= Right
}
