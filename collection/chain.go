package collection

// Chained wraps a sequence so that combinators can be applied one after the other.
// Each step returns a new Chained value and the wrapped sequence is never modified.
type Chained[V any] struct {
	value Sequence[V]
}

// Chain starts a chain of operations on s. Call Value to retrieve the result.
func Chain[V any](s Sequence[V]) *Chained[V] {
	return &Chained[V]{value: s}
}

func (c *Chained[V]) Filter(predicate func(V) bool) *Chained[V] {
	return Chain(Filter(c.value, valuePredicate(predicate)))
}

func (c *Chained[V]) Reject(predicate func(V) bool) *Chained[V] {
	return Chain(Reject(c.value, valuePredicate(predicate)))
}

// Map transforms values without changing their type. Use the Map function for other transformations.
func (c *Chained[V]) Map(transform func(V) V) *Chained[V] {
	if transform == nil {
		return Chain(Map[int, V, V](c.value, nil))
	}
	return Chain(Map(c.value, func(v V, _ int, _ Collection[int, V]) V {
		return transform(v)
	}))
}

// UniqBy keeps the first value of each group of values with the same key.
func (c *Chained[V]) UniqBy(key func(V) any) *Chained[V] {
	if key == nil {
		return c
	}
	seen := map[any]struct{}{}
	return c.Filter(func(v V) bool {
		k := key(v)
		if _, found := seen[k]; found {
			return false
		}
		seen[k] = struct{}{}
		return true
	})
}

// SortFunc sorts values stably according to compare (see slices.SortStableFunc).
func (c *Chained[V]) SortFunc(compare func(a, b V) int) *Chained[V] {
	if compare == nil {
		return c
	}
	return Chain(sortByCriterion(c.value, func(v V) V { return v }, compare))
}

func (c *Chained[V]) Shuffle() *Chained[V] {
	return Chain(Shuffle(c.value))
}

func (c *Chained[V]) First(n int) *Chained[V] {
	return Chain(First(c.value, n))
}

func (c *Chained[V]) Last(n int) *Chained[V] {
	return Chain(Last(c.value, n))
}

// Each calls iterator on every value and returns the chain unchanged.
func (c *Chained[V]) Each(iterator func(V)) *Chained[V] {
	EachValue(c.value, iterator)
	return c
}

func (c *Chained[V]) Len() int {
	return len(c.value)
}

// Value returns the result of the chain.
func (c *Chained[V]) Value() Sequence[V] {
	return c.value
}

func valuePredicate[V any](predicate func(V) bool) PredicateFunc[int, V] {
	if predicate == nil {
		return nil
	}
	return func(v V, _ int, _ Collection[int, V]) bool {
		return predicate(v)
	}
}
