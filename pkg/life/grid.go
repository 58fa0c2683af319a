package life

import (
	"bytes"
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// BlockBits is the number of cells packed into one stored byte.
const BlockBits = 8

// Grid is one generation of a toroidal Life board. The zero value is not
// usable; construct grids with New.
type Grid struct {
	width       int
	height      int
	bytesPerRow int
	state       []byte
}

// New returns an all-dead grid. width must be a positive multiple of 8 and
// height must be positive.
func New(width, height int) (*Grid, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width %d must be positive", ErrInvalidArgument, width)
	}
	if height <= 0 {
		return nil, fmt.Errorf("%w: height %d must be positive", ErrInvalidArgument, height)
	}
	if width%BlockBits != 0 {
		return nil, fmt.Errorf("%w: width %d must be a multiple of %d", ErrInvalidArgument, width, BlockBits)
	}
	bytesPerRow := width / BlockBits
	return &Grid{
		width:       width,
		height:      height,
		bytesPerRow: bytesPerRow,
		state:       make([]byte, bytesPerRow*height),
	}, nil
}

// derive wraps a freshly allocated buffer in a grid with the receiver's shape.
func (g *Grid) derive(state []byte) *Grid {
	return &Grid{width: g.width, height: g.height, bytesPerRow: g.bytesPerRow, state: state}
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

func (g *Grid) checkBounds(x, y int) error {
	if x < 0 || x >= g.width {
		return fmt.Errorf("%w: x=%d not in [0,%d)", ErrOutOfRange, x, g.width)
	}
	if y < 0 || y >= g.height {
		return fmt.Errorf("%w: y=%d not in [0,%d)", ErrOutOfRange, y, g.height)
	}
	return nil
}

// blockIndex returns the byte holding (x, y) and the mask selecting its bit.
func (g *Grid) blockIndex(x, y int) (int, byte) {
	return y*g.bytesPerRow + x/BlockBits, 0x80 >> (x % BlockBits)
}

// SetLiveCell returns a new grid with (x, y) live. The receiver is unchanged.
func (g *Grid) SetLiveCell(x, y int) (*Grid, error) {
	if err := g.checkBounds(x, y); err != nil {
		return nil, err
	}
	next := make([]byte, len(g.state))
	copy(next, g.state)
	idx, mask := g.blockIndex(x, y)
	next[idx] |= mask
	return g.derive(next), nil
}

// SetLiveCells returns a new grid with every listed cell live. Nothing is
// returned if any cell is out of range.
func (g *Grid) SetLiveCells(cells ...LifeCell) (*Grid, error) {
	next := make([]byte, len(g.state))
	copy(next, g.state)
	for _, c := range cells {
		if err := g.checkBounds(c.X, c.Y); err != nil {
			return nil, err
		}
		idx, mask := g.blockIndex(c.X, c.Y)
		next[idx] |= mask
	}
	return g.derive(next), nil
}

// Alive reports whether (x, y) is live.
func (g *Grid) Alive(x, y int) (bool, error) {
	if err := g.checkBounds(x, y); err != nil {
		return false, err
	}
	idx, mask := g.blockIndex(x, y)
	return g.state[idx]&mask != 0, nil
}

// LiveCells yields the live cells in row-major order, left to right within a
// row. Each call starts a fresh traversal.
func (g *Grid) LiveCells() iter.Seq[LifeCell] {
	return func(yield func(LifeCell) bool) {
		for b, block := range g.state {
			if block == 0 {
				continue
			}
			y := b / g.bytesPerRow
			baseX := (b % g.bytesPerRow) * BlockBits
			for i := 0; i < BlockBits; i++ {
				if block&(0x80>>i) == 0 {
					continue
				}
				if !yield(LifeCell{X: baseX + i, Y: y}) {
					return
				}
			}
		}
	}
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, block := range g.state {
		n += bits.OnesCount8(block)
	}
	return n
}

// Equal reports whether both grids have the same shape and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.width != other.width || g.height != other.height {
		return false
	}
	return bytes.Equal(g.state, other.state)
}

// String renders the grid one row per line, O for live and . for dead.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		row := g.state[y*g.bytesPerRow : (y+1)*g.bytesPerRow]
		for _, block := range row {
			for i := 0; i < BlockBits; i++ {
				if block&(0x80>>i) != 0 {
					sb.WriteByte('O')
				} else {
					sb.WriteByte('.')
				}
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
