package motion

import (
	"fmt"
	"strings"
)

// Direction is the horizontal facing of a mover.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// Valid reports whether d is one of the defined directions.
func (d Direction) Valid() bool {
	return d == Left || d == Right
}

// Sign returns -1 or 1 as a float, or 0 for an undefined direction.
func (d Direction) Sign() float64 {
	if !d.Valid() {
		return 0
	}
	return float64(d)
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts "left"/"right" in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("motion: unknown direction %q", s)
}
