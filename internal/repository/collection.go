package repository

type cloner[T any] interface {
	Clone() T
}

// collection is an insertion-ordered id -> record map. Callers hold the store lock.
type collection[T cloner[T]] struct {
	items map[int64]T
	order []int64
}

func newCollection[T cloner[T]]() *collection[T] {
	return &collection[T]{items: make(map[int64]T)}
}

func (c *collection[T]) all() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id].Clone())
	}
	return out
}

func (c *collection[T]) filter(keep func(T) bool) []T {
	out := make([]T, 0)
	for _, id := range c.order {
		if v := c.items[id]; keep(v) {
			out = append(out, v.Clone())
		}
	}
	return out
}

func (c *collection[T]) get(id int64) (T, bool) {
	v, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	return v.Clone(), true
}

func (c *collection[T]) find(match func(T) bool) (T, bool) {
	for _, id := range c.order {
		if v := c.items[id]; match(v) {
			return v.Clone(), true
		}
	}
	var zero T
	return zero, false
}

// insert stores v under a fresh id. It reports false and leaves the
// collection untouched when id is already taken.
func (c *collection[T]) insert(id int64, v T) bool {
	if _, exists := c.items[id]; exists {
		return false
	}
	c.order = append(c.order, id)
	c.items[id] = v.Clone()
	return true
}

// put stores v under id, replacing any existing record. Used for seeding.
func (c *collection[T]) put(id int64, v T) {
	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = v.Clone()
}

// update applies fn to a working copy and stores the result. It returns
// copies of the record before and after the change.
func (c *collection[T]) update(id int64, fn func(*T)) (before, after T, ok bool) {
	current, ok := c.items[id]
	if !ok {
		return before, after, false
	}
	v := current.Clone()
	fn(&v)
	c.items[id] = v
	return current.Clone(), v.Clone(), true
}

func (c *collection[T]) remove(id int64) bool {
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

func (c *collection[T]) len() int {
	return len(c.items)
}
