package arrTree

import "math/bits"

// colors is a growable bit array; bit i is set when node i is red.
// Bit 0 belongs to the sentinel and is never set.
type colors struct {
	bits []uint
}

// grow makes room for index i.
func (u *colors) grow(i int) {
	for need := i/bits.UintSize + 1; len(u.bits) < need; {
		u.bits = append(u.bits, 0)
	}
}

func (u *colors) red(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u *colors) paint(i int, red bool) {
	if red {
		u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
	} else {
		u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
	}
}

func (u *colors) reset() {
	clear(u.bits)
}
