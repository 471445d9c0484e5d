// Package idgen allocates entity ids from one shared, strictly increasing
// id space that is partitioned into four running category counts.
//
// A new id is always the current sum of all four counts; only the count of
// the category being allocated is incremented afterward. Rooms, gateway
// barriers, wall barriers and template objects therefore never share an id,
// and ids grow monotonically across categories.
//
// A Counter is not safe for concurrent use. Extraction is a single-threaded
// batch pass and owns its Counter for the duration of the run.
package idgen

import (
	"errors"
	"fmt"
)

// ErrUnknownCategory is returned by Count for a category outside the four known ones.
var ErrUnknownCategory = errors.New("idgen: unknown category")

// Category selects which running count an allocation belongs to.
type Category int

const (
	// Room counts rooms, both flood-filled and promoted doorway rooms.
	Room Category = iota
	// Gateway counts gateway barriers.
	Gateway
	// Wall counts wall barriers.
	Wall
	// Object counts cell objects created from templates.
	Object

	numCategories
)

func (c Category) String() string {
	switch c {
	case Room:
		return "room"
	case Gateway:
		return "gateway"
	case Wall:
		return "wall"
	case Object:
		return "object"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Counter hands out ids. The zero value is ready to use and starts at 0.
type Counter struct {
	counts [numCategories]int
}

// New returns an empty Counter.
func New() *Counter {
	return &Counter{}
}

// Next returns the next id and charges it to cat.
// Panics on an unknown category, since that is a programming error.
func (c *Counter) Next(cat Category) int {
	if cat < 0 || cat >= numCategories {
		panic(fmt.Sprintf("idgen: Next(%v): %v", cat, ErrUnknownCategory))
	}
	id := c.Total()
	c.counts[cat]++

	return id
}

// Count returns how many ids have been charged to cat.
func (c *Counter) Count(cat Category) (int, error) {
	if cat < 0 || cat >= numCategories {
		return 0, fmt.Errorf("%w: %v", ErrUnknownCategory, cat)
	}
	return c.counts[cat], nil
}

// Total returns the number of ids allocated so far, which is also the next id.
func (c *Counter) Total() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}
