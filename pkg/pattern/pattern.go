// Package pattern parses plaintext Life patterns and places them on a grid.
//
// The plaintext format is one row per line: O, X or * mark live cells and
// '.', '-' or a space mark dead ones. Lines starting with '!' are comments.
package pattern

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"bitlife/pkg/life"
)

// ErrSyntax indicates malformed pattern text.
var ErrSyntax = errors.New("pattern: syntax error")

// Pattern is a set of live cells relative to its own top-left corner.
type Pattern struct {
	Name          string
	Width, Height int
	Cells         []life.LifeCell
}

// Parse reads a plaintext pattern.
func Parse(name, text string) (Pattern, error) {
	p := Pattern{Name: name}
	var rows []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.HasPrefix(line, "!") {
			continue
		}
		rows = append(rows, strings.TrimRight(line, " \t"))
	}
	for len(rows) > 0 && rows[0] == "" {
		rows = rows[1:]
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	for y, row := range rows {
		for x, r := range row {
			switch r {
			case 'O', 'X', '*':
				p.Cells = append(p.Cells, life.LifeCell{X: x, Y: y})
			case '.', '-', ' ':
			default:
				return Pattern{}, fmt.Errorf("%w: %s line %d column %d: unexpected %q", ErrSyntax, name, y+1, x+1, r)
			}
			if x+1 > p.Width {
				p.Width = x + 1
			}
		}
	}
	p.Height = len(rows)
	return p, nil
}

// MustParse is like Parse but panics on error.
func MustParse(name, text string) Pattern {
	p, err := Parse(name, text)
	if err != nil {
		panic(err)
	}
	return p
}

// Place returns a new grid with p's top-left corner at (x, y). Cells that run
// past an edge wrap around to the opposite side.
func Place(g *life.Grid, p Pattern, x, y int) (*life.Grid, error) {
	w, h := g.Width(), g.Height()
	cells := make([]life.LifeCell, len(p.Cells))
	for i, c := range p.Cells {
		cells[i] = life.LifeCell{
			X: ((x+c.X)%w + w) % w,
			Y: ((y+c.Y)%h + h) % h,
		}
	}
	return g.SetLiveCells(cells...)
}

// Centered places p in the middle of g.
func Centered(g *life.Grid, p Pattern) (*life.Grid, error) {
	return Place(g, p, (g.Width()-p.Width)/2, (g.Height()-p.Height)/2)
}

var builtins = map[string]Pattern{
	"block": MustParse("block", `
OO
OO`),
	"blinker": MustParse("blinker", `
OOO`),
	"glider": MustParse("glider", `
.O.
..O
OOO`),
	"acorn": MustParse("acorn", `
! Methuselah that stabilises after 5206 generations.
.O.....
...O...
OO..OOO`),
	"r-pentomino": MustParse("r-pentomino", `
.OO
OO.
.O.`),
	"diehard": MustParse("diehard", `
......O.
OO......
.O...OOO`),
}

// Lookup returns the built-in pattern with the given name.
func Lookup(name string) (Pattern, bool) {
	p, ok := builtins[strings.ToLower(name)]
	return p, ok
}

// Names lists the built-in patterns in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
