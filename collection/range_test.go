package collection

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ARM-software/golang-underbar/field"
)

func TestRange(t *testing.T) {
	tests := []struct {
		start    int
		stop     int
		step     *int
		expected Sequence[int]
	}{
		{2, 5, nil, Sequence[int]{2, 3, 4}},
		{5, 2, nil, Sequence[int]{}},
		{2, 10, field.ToOptionalInt(2), Sequence[int]{2, 4, 6, 8}},
		{0, 10, field.ToOptionalInt(3), Sequence[int]{0, 3, 6, 9}},
		{1, 10, field.ToOptionalInt(3), Sequence[int]{1, 4, 7}},
		{10, 2, field.ToOptionalInt(-2), Sequence[int]{10, 8, 6, 4}},
		{5, -1, field.ToOptionalInt(-1), Sequence[int]{5, 4, 3, 2, 1, 0}},
		{0, -5, field.ToOptionalInt(-2), Sequence[int]{0, -2, -4}},
		{0, 5, field.ToOptionalInt(0), Sequence[int]{}},
		{2, 2, field.ToOptionalInt(1), Sequence[int]{}},
	}

	for i := range tests {
		test := tests[i]
		t.Run(fmt.Sprintf("[%v,%v,%v]", test.start, test.stop, field.OptionalInt(test.step, 1)), func(t *testing.T) {
			assert.Equal(t, test.expected, Range(test.start, test.stop, test.step))
			assert.Equal(t, []int(test.expected), append([]int{}, slices.Collect(RangeSequence(test.start, test.stop, test.step))...))
		})
	}
}
