package frequencycounter

import (
	"cmp"
	"slices"
)

// Entry value of a column and the amount of times it appears
type Entry[K cmp.Ordered] struct {
	Value K
	Count int
}

// FrequencyCounter counts the occurrences of each value of a column.
// It remembers the order in which values were first seen so rankings are deterministic.
type FrequencyCounter[K cmp.Ordered] struct {
	counts map[K]int
	order  []K
	total  int
}

func NewFrequencyCounter[K cmp.Ordered]() *FrequencyCounter[K] {
	return &FrequencyCounter[K]{
		counts: make(map[K]int),
	}
}

func (fc *FrequencyCounter[K]) Add(value K) {
	if _, ok := fc.counts[value]; !ok {
		fc.order = append(fc.order, value)
	}
	fc.counts[value] += 1
	fc.total += 1
}

// GetCount returns the amount of times value was added
func (fc *FrequencyCounter[K]) GetCount(value K) int {
	return fc.counts[value]
}

// GetTotal returns the amount of values added
func (fc *FrequencyCounter[K]) GetTotal() int {
	return fc.total
}

func (fc *FrequencyCounter[K]) IsEmpty() bool {
	return fc.total == 0
}

// Ranking returns every value sorted by count in descending order. Ties keep first-seen order
func (fc *FrequencyCounter[K]) Ranking() []Entry[K] {
	ranking := make([]Entry[K], 0, len(fc.order))
	for _, value := range fc.order {
		ranking = append(ranking, Entry[K]{Value: value, Count: fc.counts[value]})
	}
	slices.SortStableFunc(ranking, func(a, b Entry[K]) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return ranking
}

// MostFrequent returns the value with the highest count, the first one seen wins a tie.
// False is returned if nothing was added
func (fc *FrequencyCounter[K]) MostFrequent() (Entry[K], bool) {
	var best Entry[K]
	found := false
	for _, value := range fc.order {
		count := fc.counts[value]
		if !found || count > best.Count {
			best = Entry[K]{Value: value, Count: count}
			found = true
		}
	}
	return best, found
}

// Mode returns the value with the highest count, the smallest value wins a tie.
// False is returned if nothing was added
func (fc *FrequencyCounter[K]) Mode() (Entry[K], bool) {
	var best Entry[K]
	found := false
	for value, count := range fc.counts {
		if !found || count > best.Count || (count == best.Count && value < best.Value) {
			best = Entry[K]{Value: value, Count: count}
			found = true
		}
	}
	return best, found
}

// Min returns the smallest value added and false if nothing was added
func (fc *FrequencyCounter[K]) Min() (K, bool) {
	if len(fc.order) == 0 {
		var zero K
		return zero, false
	}
	return slices.Min(fc.order), true
}

// Max returns the greatest value added and false if nothing was added
func (fc *FrequencyCounter[K]) Max() (K, bool) {
	if len(fc.order) == 0 {
		var zero K
		return zero, false
	}
	return slices.Max(fc.order), true
}
