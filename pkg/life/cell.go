package life

import "fmt"

// LifeCell identifies a live cell by its zero-based coordinates.
type LifeCell struct {
	X, Y int
}

func (c LifeCell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }
