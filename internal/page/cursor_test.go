package page

import "testing"

func TestRevealSequence(t *testing.T) {
	// 45 records, page size 20: 20 → 40 → 45 (exhausted) → back to 20.
	c := NewCursors(20)
	b := Bucket{Category: "cat", Concept: "conc"}
	const total = 45

	if got := c.Visible(b, total); got != 20 {
		t.Errorf("initial visible = %d, want 20", got)
	}
	if c.Exhausted(b, total) {
		t.Error("bucket reported exhausted at first page")
	}

	c.Advance(b, total)
	if got := c.Visible(b, total); got != 40 {
		t.Errorf("after one reveal, visible = %d, want 40", got)
	}

	c.Advance(b, total)
	if got := c.Visible(b, total); got != 45 {
		t.Errorf("after two reveals, visible = %d, want 45", got)
	}
	if !c.Exhausted(b, total) {
		t.Error("bucket should be exhausted at full extent")
	}

	// Reveal on an exhausted bucket wraps to the first page.
	c.Advance(b, total)
	if got := c.Visible(b, total); got != 20 {
		t.Errorf("after wrap, visible = %d, want 20", got)
	}
}

func TestSmallBucketAlwaysExhausted(t *testing.T) {
	c := NewCursors(20)
	b := Bucket{Category: "c", Concept: "k"}
	if got := c.Visible(b, 5); got != 5 {
		t.Errorf("visible = %d, want 5", got)
	}
	if !c.Exhausted(b, 5) {
		t.Error("bucket smaller than a page should be exhausted immediately")
	}
	c.Advance(b, 5)
	if got := c.Visible(b, 5); got != 5 {
		t.Errorf("visible after wrap = %d, want 5", got)
	}
}

func TestBucketsIndependent(t *testing.T) {
	c := NewCursors(10)
	b1 := Bucket{Category: "a", Concept: "x"}
	b2 := Bucket{Category: "a", Concept: "y"}

	c.Advance(b1, 100)
	if got := c.Visible(b1, 100); got != 20 {
		t.Errorf("b1 visible = %d, want 20", got)
	}
	if got := c.Visible(b2, 100); got != 10 {
		t.Errorf("b2 visible = %d, want 10 (untouched)", got)
	}
}

func TestReset(t *testing.T) {
	c := NewCursors(10)
	b := Bucket{Category: "a", Concept: "x"}
	c.Advance(b, 100)
	c.Reset()
	if got := c.Visible(b, 100); got != 10 {
		t.Errorf("visible after reset = %d, want 10", got)
	}
}

func TestDefaultPageSize(t *testing.T) {
	c := NewCursors(0)
	if c.PageSize() != DefaultPageSize {
		t.Errorf("PageSize = %d, want %d", c.PageSize(), DefaultPageSize)
	}
}

func TestVisibleClamped(t *testing.T) {
	c := NewCursors(20)
	b := Bucket{Category: "a", Concept: "x"}
	if got := c.Visible(b, 0); got != 0 {
		t.Errorf("visible of empty bucket = %d, want 0", got)
	}
}
