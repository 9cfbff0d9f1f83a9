/*
Package frequency defines the frequency table produced by a simulation run.
*/
package frequency

import (
	"errors"
	"fmt"
)

// ErrSizeMismatch is returned when two tables of different lengths are merged.
var ErrSizeMismatch = errors.New("frequency tables differ in size")

/*
Table counts trials by the number of positive draws they produced.
Index i holds the number of trials that ended with exactly i positives, so a
table built for n draws per trial always has n+1 entries.
*/
type Table []int

// New returns an all-zero table for trials of occurrencesPerTrial draws.
func New(occurrencesPerTrial int) Table {
	return make(Table, occurrencesPerTrial+1)
}

// Record tallies one trial that produced the given number of positives.
func (t Table) Record(positives int) {
	t[positives]++
}

// Merge adds every count of other into t.
func (t Table) Merge(other Table) error {
	if len(other) != len(t) {
		return fmt.Errorf("%w: %d and %d", ErrSizeMismatch, len(t), len(other))
	}
	for i, count := range other {
		t[i] += count
	}
	return nil
}

// Total returns the number of trials recorded in the table.
func (t Table) Total() int {
	total := 0
	for _, count := range t {
		total += count
	}
	return total
}

// Peak returns the first index holding the largest count, or -1 for an empty table.
func (t Table) Peak() int {
	peak := -1
	for i, count := range t {
		if peak == -1 || count > t[peak] {
			peak = i
		}
	}
	return peak
}

// Clone returns an independent copy of t.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	c := make(Table, len(t))
	copy(c, t)
	return c
}
