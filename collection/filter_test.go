package collection

import (
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
)

func isEven(v int, _ int, _ Collection[int, int]) bool {
	return v%2 == 0
}

func TestIndexOf(t *testing.T) {
	assert.Equal(t, NotFound, IndexOf(Sequence[string]{}, "a"))
	assert.Equal(t, NotFound, IndexOf(Sequence[string](nil), "a"))
	assert.Equal(t, NotFound, IndexOf(SequenceOf("A", "b", "c"), "D"))
	assert.Equal(t, 2, IndexOf(SequenceOf("A", "B", "b", "c", "b"), "b"))
	word := faker.Word()
	assert.Zero(t, IndexOf(SequenceOf(word, word), word))
}

func TestFilter(t *testing.T) {
	assert.Equal(t, Sequence[int]{2, 4, 6}, Filter(SequenceOf(1, 2, 3, 4, 5, 6), isEven))
	assert.Empty(t, Filter(Sequence[int](nil), isEven))
	assert.Empty(t, Filter(SequenceOf(1, 3, 5), isEven))

	m := MappingOf(
		Entry[string, int]{Key: "one", Value: 1},
		Entry[string, int]{Key: "two", Value: 2},
		Entry[string, int]{Key: "four", Value: 4},
	)
	assert.Equal(t, Sequence[int]{2, 4}, Filter[string, int](m, func(v int, _ string, _ Collection[string, int]) bool {
		return v%2 == 0
	}))
	assert.Equal(t, Sequence[int]{1}, Filter[string, int](m, func(_ int, k string, _ Collection[string, int]) bool {
		return k == "one"
	}))
}

func TestFilter_Truthiness(t *testing.T) {
	assert.Equal(t, Sequence[int]{1, 2, 3}, Filter[int, int](SequenceOf(0, 1, 0, 2, 3), nil))
	assert.Equal(t, Sequence[string]{"a", "b"}, Filter[int, string](SequenceOf("", "a", "", "b"), nil))
	assert.Equal(t, Sequence[any]{true, "a", 1}, Filter[int, any](SequenceOf[any](nil, false, true, "", "a", 0, 1), nil))
}

func TestReject(t *testing.T) {
	assert.Equal(t, Sequence[int]{1, 3, 5}, Reject(SequenceOf(1, 2, 3, 4, 5, 6), isEven))
	assert.Equal(t, Sequence[int]{0, 0}, Reject[int, int](SequenceOf(0, 1, 0, 2), nil))
}

func TestFilterRejectPartition(t *testing.T) {
	s := Sequence[int]{}
	for i := 0; i < 50; i++ {
		var v int
		_ = faker.FakeData(&v)
		s = append(s, v)
	}
	kept := Filter(s, isEven)
	rejected := Reject(s, isEven)
	assert.Len(t, append(kept, rejected...), len(s))
	assert.ElementsMatch(t, s, append(Sequence[int]{}, append(kept, rejected...)...))
	for _, v := range kept {
		assert.True(t, v%2 == 0)
	}
	for _, v := range rejected {
		assert.False(t, v%2 == 0)
	}
}

func TestNegate(t *testing.T) {
	odd := Negate(isEven)
	assert.True(t, odd(1, 0, nil))
	assert.False(t, odd(2, 0, nil))
	falsy := Negate[int, string](nil)
	assert.True(t, falsy("", 0, nil))
	assert.False(t, falsy("a", 0, nil))
}

func TestUniq(t *testing.T) {
	assert.Equal(t, Sequence[int]{1, 2, 3}, Uniq(SequenceOf(1, 2, 1, 3, 3, 2)))
	assert.Equal(t, Sequence[string]{"b", "a"}, Uniq(SequenceOf("b", "a", "b", "a")))
	assert.Empty(t, Uniq(Sequence[string](nil)))

	s := SequenceOf(faker.Word(), faker.Word(), faker.Word(), faker.Word())
	unique := Uniq(s)
	assert.Equal(t, unique, Uniq(unique))
	assert.Equal(t, unique, Uniq(append(s, s...)))
}
