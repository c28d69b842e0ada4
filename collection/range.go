package collection

import (
	"iter"
	"slices"

	"github.com/ARM-software/golang-underbar/field"
)

// Range returns the sequence of integers from start (inclusive) to stop (exclusive) by step, which defaults to 1.
// The sequence is empty if step is 0 or does not lead from start to stop.
func Range(start, stop int, step *int) Sequence[int] {
	s := field.OptionalInt(step, 1)
	return slices.AppendSeq(make(Sequence[int], 0, rangeLength(start, stop, s)), RangeSequence(start, stop, step))
}

// RangeSequence is the lazy counterpart of Range.
func RangeSequence(start, stop int, step *int) iter.Seq[int] {
	s := field.OptionalInt(step, 1)
	n := rangeLength(start, stop, s)
	return func(yield func(int) bool) {
		for v := range n {
			if !yield(start + v*s) {
				return
			}
		}
	}
}

func rangeLength(start, stop, step int) int {
	switch {
	case step > 0 && start < stop:
		return (stop - start + step - 1) / step
	case step < 0 && start > stop:
		return (start - stop - step - 1) / -step
	default:
		return 0
	}
}
