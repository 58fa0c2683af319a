package life

// Step returns the next generation. A live cell with two or three live
// neighbours survives, a dead cell with exactly three becomes live, and every
// other cell is dead. Neighbourhoods wrap around both edges.
func (g *Grid) Step() *Grid {
	next := make([]byte, len(g.state))
	for b := range g.state {
		y := b / g.bytesPerRow
		col := b % g.bytesPerRow

		above := ((y+g.height-1)%g.height)*g.bytesPerRow + col
		below := ((y+1)%g.height)*g.bytesPerRow + col
		left, right := g.blockOffsets(col)

		// Nine dead blocks cannot produce a live cell in the middle one.
		if g.neighbourhoodSum(above, b, below, left, right) == 0 {
			continue
		}
		next[b] = g.stepBlock(above, b, below, left, right)
	}
	return g.derive(next)
}

// blockOffsets returns the index offsets of the blocks to the left and right
// of block column col, wrapping at the row ends.
func (g *Grid) blockOffsets(col int) (left, right int) {
	left, right = -1, 1
	if col == 0 {
		left += g.bytesPerRow
	}
	if col == g.bytesPerRow-1 {
		right -= g.bytesPerRow
	}
	return left, right
}

func (g *Grid) neighbourhoodSum(above, self, below, left, right int) int {
	s := g.state
	return int(s[above+left]) + int(s[above]) + int(s[above+right]) +
		int(s[self+left]) + int(s[self]) + int(s[self+right]) +
		int(s[below+left]) + int(s[below]) + int(s[below+right])
}

// stepBlock computes the next value of block self.
func (g *Grid) stepBlock(above, self, below, left, right int) byte {
	s := g.state
	var out byte
	for i := 0; i < BlockBits; i++ {
		center := byte(0x80) >> i
		leftMask, rightMask := neighbourMasks(center)

		// Only the edge bits borrow from the adjacent block.
		cellLeft, cellRight := 0, 0
		if i == 0 {
			cellLeft = left
		}
		if i == BlockBits-1 {
			cellRight = right
		}

		n := 0
		for r, row := range [3]int{above, self, below} {
			if s[row+cellLeft]&leftMask != 0 {
				n++
			}
			// The middle row's centre is the cell itself.
			if r != 1 && s[row]&center != 0 {
				n++
			}
			if s[row+cellRight]&rightMask != 0 {
				n++
			}
		}

		alive := s[self]&center != 0
		if n == 3 || (alive && n == 2) {
			out |= center
		}
	}
	return out
}

// neighbourMasks rotates a single-bit mask one position towards each side.
// The leftmost bit's left neighbour is bit 0 of the previous block and the
// rightmost bit's right neighbour is bit 7 of the next block.
func neighbourMasks(center byte) (left, right byte) {
	left = center<<1 | center>>7
	right = center>>1 | center<<7
	return left, right
}
