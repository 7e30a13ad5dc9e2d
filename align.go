package arena

import "math/bits"

// MaxChunkSize is the largest chunk, request or alignment the arena accepts.
// Keeping every quantity at or below it lets offset arithmetic stay in int.
const MaxChunkSize = 1 << (bits.UintSize - 2)

// alignUp rounds n up to the nearest multiple of alignment.
// alignment must be >= 1.
func alignUp(n, alignment int) int {
	rem := n % alignment
	if rem == 0 {
		return n
	}
	return n + alignment - rem
}

// nextPow2 returns the smallest power of two >= n. nextPow2(0) is 1.
func nextPow2(n uint) uint {
	if n == 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> (bits.UintSize / 2)
	return n + 1
}
