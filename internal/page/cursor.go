// Package page tracks how many records of each (category, concept)
// bucket are currently revealed.
package page

// DefaultPageSize is how many records each reveal step adds.
const DefaultPageSize = 20

// Bucket identifies one (category, concept) pagination unit.
type Bucket struct {
	Category string
	Concept  string
}

// Cursors holds the per-bucket reveal offsets for one session. The
// zero offset means "first page visible". Offsets only grow through
// Advance, except for the deliberate wrap-to-zero on an exhausted
// bucket: revisiting a fully revealed bucket starts over at page one.
type Cursors struct {
	pageSize int
	offsets  map[Bucket]int
}

// NewCursors creates an empty cursor set. A pageSize of zero or less
// falls back to DefaultPageSize.
func NewCursors(pageSize int) *Cursors {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Cursors{pageSize: pageSize, offsets: make(map[Bucket]int)}
}

// PageSize returns the reveal step size.
func (c *Cursors) PageSize() int {
	return c.pageSize
}

// Visible returns how many of the bucket's total records are revealed,
// clamped to total. Never panics on out-of-range offsets.
func (c *Cursors) Visible(b Bucket, total int) int {
	n := c.offsets[b] + c.pageSize
	if n > total {
		n = total
	}
	if n < 0 {
		n = 0
	}
	return n
}

// Exhausted reports whether the bucket's current window already covers
// every record, meaning there is nothing left to reveal.
func (c *Cursors) Exhausted(b Bucket, total int) bool {
	return c.offsets[b]+c.pageSize >= total
}

// Advance reveals one more page of the bucket. Advancing an exhausted
// bucket wraps its offset back to zero instead.
func (c *Cursors) Advance(b Bucket, total int) {
	if c.Exhausted(b, total) {
		delete(c.offsets, b)
		return
	}
	c.offsets[b] += c.pageSize
}

// Reset drops all bucket offsets. Called when a new table is ingested;
// cursors from a previous dataset are never reused.
func (c *Cursors) Reset() {
	c.offsets = make(map[Bucket]int)
}
