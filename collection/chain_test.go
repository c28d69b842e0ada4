package collection

import (
	"cmp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChain(t *testing.T) {
	s := SequenceOf(6, 1, 5, 2, 4, 3, 2)
	var visited []int
	result := Chain(s).
		Filter(func(v int) bool { return v > 1 }).
		Reject(func(v int) bool { return v == 5 }).
		Map(func(v int) int { return v * 10 }).
		UniqBy(func(v int) any { return v }).
		SortFunc(cmp.Compare[int]).
		Each(func(v int) { visited = append(visited, v) }).
		Value()
	assert.Equal(t, Sequence[int]{20, 30, 40, 60}, result)
	assert.Equal(t, []int{20, 30, 40, 60}, visited)
	assert.Equal(t, Sequence[int]{6, 1, 5, 2, 4, 3, 2}, s)

	assert.Equal(t, Sequence[int]{1, 5}, Chain(s).First(3).Last(2).Value())
	assert.Equal(t, 7, Chain(s).Shuffle().Len())
	assert.Equal(t, s, Chain(s).SortFunc(nil).UniqBy(nil).Value())
	assert.Equal(t, Sequence[int]{0, 0}, Chain(SequenceOf(1, 2)).Map(nil).Value())
	assert.Equal(t, Sequence[int]{1, 2}, Chain(SequenceOf(0, 1, 0, 2)).Filter(nil).Value())
}

func TestChain_UniqByKey(t *testing.T) {
	words := SequenceOf("Apple", "avocado", "Banana", "blueberry", "cherry")
	byInitial := Chain(words).
		UniqBy(func(w string) any { return strings.ToLower(w[:1]) }).
		Value()
	assert.Equal(t, Sequence[string]{"Apple", "Banana", "cherry"}, byInitial)
}
