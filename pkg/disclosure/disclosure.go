// Package disclosure models the open/selected state of accordions and
// carousels. Each value belongs to exactly one widget instance.
package disclosure

// Accordion keeps at most one of count panels open.
type Accordion struct {
	count int
	open  int
}

// NewAccordion returns an accordion of count panels, all closed.
func NewAccordion(count int) *Accordion {
	if count < 0 {
		count = 0
	}
	return &Accordion{count: count, open: -1}
}

func (a *Accordion) Count() int {
	return a.count
}

// Toggle opens panel i and closes the others, or closes i if it was open.
// Out-of-range indexes are ignored.
func (a *Accordion) Toggle(i int) {
	if i < 0 || i >= a.count {
		return
	}
	if a.open == i {
		a.open = -1
		return
	}
	a.open = i
}

// Close closes every panel.
func (a *Accordion) Close() {
	a.open = -1
}

// Open returns the open panel, if any.
func (a *Accordion) Open() (int, bool) {
	return a.open, a.open >= 0
}

func (a *Accordion) IsOpen(i int) bool {
	return a.open >= 0 && a.open == i
}

// ToggleTarget is the open index that results from toggling i, without
// mutating a; -1 means everything closed. Views use it to build links.
func (a *Accordion) ToggleTarget(i int) int {
	next := *a
	next.Toggle(i)
	return next.open
}

// Carousel selects one of count items with wraparound navigation.
type Carousel struct {
	count     int
	index     int
	direction int
}

// NewCarousel returns a carousel positioned on the first item.
func NewCarousel(count int) *Carousel {
	if count < 0 {
		count = 0
	}
	return &Carousel{count: count}
}

func (c *Carousel) Count() int {
	return c.count
}

func (c *Carousel) Index() int {
	return c.index
}

// Direction is +1 after moving forward, -1 after moving back, 0 initially.
func (c *Carousel) Direction() int {
	return c.direction
}

// NextIndex is (index+1) mod count.
func (c *Carousel) NextIndex() int {
	if c.count == 0 {
		return 0
	}
	return (c.index + 1) % c.count
}

// PrevIndex is (index-1+count) mod count.
func (c *Carousel) PrevIndex() int {
	if c.count == 0 {
		return 0
	}
	return (c.index - 1 + c.count) % c.count
}

func (c *Carousel) Next() {
	c.Select(c.NextIndex())
}

func (c *Carousel) Prev() {
	c.Select(c.PrevIndex())
}

// Select jumps to i. Out-of-range indexes and reselecting the current item
// are ignored.
func (c *Carousel) Select(i int) {
	if i < 0 || i >= c.count || i == c.index {
		return
	}
	if i > c.index {
		c.direction = 1
	} else {
		c.direction = -1
	}
	c.index = i
}
