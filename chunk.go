package arena

// chunk is one fixed-capacity block of the arena. buf is reserved once and
// never resized; used is the offset of the next free byte.
type chunk struct {
	buf  []byte
	used int
}

func (c *chunk) capacity() int {
	return len(c.buf)
}

// fits reports whether n bytes at offset off lie inside the buffer. off and n
// may each be as large as MaxChunkSize, so their sum is never formed.
func (c *chunk) fits(off, n int) bool {
	return n <= len(c.buf) && off <= len(c.buf)-n
}

// alloc bump-allocates n bytes using n itself as the alignment, so a 24 byte
// request lands on a multiple of 24. allocAligned is the entry point that takes
// a real alignment.
func (c *chunk) alloc(n int) []byte {
	return c.take(alignUp(c.used, n), n)
}

// allocAligned bump-allocates n bytes at the next offset that is a multiple of
// alignment. It returns nil and leaves the chunk untouched if they don't fit.
func (c *chunk) allocAligned(n, alignment int) []byte {
	return c.take(alignUp(c.used, alignment), n)
}

func (c *chunk) take(off, n int) []byte {
	if !c.fits(off, n) {
		return nil
	}
	c.used = off + n
	return c.buf[off : off+n : off+n]
}
