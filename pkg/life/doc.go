// Package life implements Conway's Game of Life on a fixed-size toroidal grid.
//
// Cells are bit-packed: each byte holds eight horizontally adjacent cells,
// most significant bit first, and rows are stored contiguously. A Grid is
// immutable. SetLiveCell and Step return a new Grid and never touch the
// receiver, so a generation can be read by one goroutine while the next one
// is computed by another.
//
// Step skips any block whose 3×3 neighbourhood of blocks is entirely dead,
// which makes sparse grids cheap to advance.
//
// Errors:
//
//   - ErrInvalidArgument: width or height is not positive, or width is not a multiple of 8.
//   - ErrOutOfRange: a coordinate lies outside [0,width)×[0,height).
package life
