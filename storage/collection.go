package storage

import "sort"

// collection is the generic in-memory table shared by all three entity
// kinds: values keyed by id, with a sequential id counter that never
// hands out the same id twice, deletions included.
type collection[T any] struct {
	items  map[int]T
	nextID int
}

func newCollection[T any]() collection[T] {
	return collection[T]{items: make(map[int]T), nextID: 1}
}

// allocID reserves and returns the next id.
func (c *collection[T]) allocID() int {
	id := c.nextID
	c.nextID++
	return id
}

func (c *collection[T]) get(id int) (T, bool) {
	v, ok := c.items[id]
	return v, ok
}

func (c *collection[T]) set(id int, v T) {
	c.items[id] = v
}

func (c *collection[T]) delete(id int) bool {
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	return true
}

// list returns the values in id order. Ids are sequential, so this is
// also insertion order.
func (c *collection[T]) list() []T {
	ids := make([]int, 0, len(c.items))
	for id := range c.items {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.items[id])
	}
	return out
}
