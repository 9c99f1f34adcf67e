package interval

import (
	"github.com/kay64/computer-science/container/tree"
)

// Int represents an interval with integers. An interval
// is represented by two integers a, b such that
// [a, b]. An interval is immutable.
type Int struct {
	min int
	max int
}

// NewInt returns a new interval
func NewInt(lo, hi int) Int {
	if lo > hi {
		panic("min cannot be greater than max")
	}

	return Int{min: lo, max: hi}
}

// Min returns the a of the interval [a, b]
func (i Int) Min() int {
	return i.min
}

// Max returns the b of the interval [a, b]
func (i Int) Max() int {
	return i.max
}

// Len returns the length of the interval
func (i Int) Len() int {
	return i.max - i.min + 1
}

// Contains returns true if the interval represented
// by j is contained by i
func (i Int) Contains(j Int) bool {
	return i.min <= j.min && j.max <= i.max
}

// Disjoints returns true if the intersection between
// i and j is empty. All empty intervals are disjoint
func (i Int) Disjoints(j Int) bool {
	return (i.min < j.min && i.max < j.min) ||
		(j.min < i.min && j.max < i.min)
}

// Intersection returns the interval of intersection
// between i and j
func (i Int) Intersection(j Int) Int {
	if i.Disjoints(j) {
		panic("intersection between two disjoint intervals")
	}

	return Int{
		min: max(i.min, j.min),
		max: min(i.max, j.max),
	}
}

// CanMerge returns true if the both intervals can be
// merged into one. That is, if i and j are not disjoints
// or they share a boundary. For example, i = [a, b] and
// j = [b + 1, c], in which case the resulting merged
// interval would be k = [a, c]
func (i Int) CanMerge(j Int) bool {
	return !i.Disjoints(j) || i.min == j.max+1 || i.max+1 == j.min
}

// Merge merges two intervals and returns the result
// in a new interval. Only a pair of non disjoints
// intervals can be merged. If j is disjoint with i
// Merge will panic
func (i Int) Merge(j Int) Int {
	if !i.CanMerge(j) {
		panic("cannot merge intervals")
	}

	return Int{
		min: min(i.min, j.min),
		max: max(i.max, j.max),
	}
}

// IntSet represents a set of disjoint intervals
// {[Ii.Min(), Ii.Max()], i = 0 .. Len()}. An IntSet is a
// useful data structure to keep track of continuous
// sets of objects.
//
// A use case for this is to keep track of message offsets
// that are continous. Instead of keeping [1, 2, 3, 5],
// the set can keep [1, 3], [5] and when 4 is added, the
// result will be [1, 5], instead of [1, 2, 3, 4, 5].
type IntSet struct {
	// intervals are indexed by their minimum. Since the intervals
	// are disjoint, no two of them share a minimum
	intervals *tree.Tree[int, Int]
}

// NewIntSet creates a new instance of a interval set
func NewIntSet() *IntSet {
	return &IntSet{intervals: tree.NewOrdered[int, Int]()}
}

// Len returns the number of disjoint intervals
func (s *IntSet) Len() int {
	return s.intervals.Len()
}

// Contains returns true if the set contains
// any interval which contains the interval
func (s *IntSet) Contains(i Int) bool {
	lower, ok := s.lower(i)
	return ok && lower.Contains(i)
}

// Insert inserts an interval to the set. Any interval in the
// set that overlaps or is adjacent to i is merged with it
func (s *IntSet) Insert(i Int) {
	if lower, ok := s.lower(i); ok && i.CanMerge(lower) {
		s.remove(lower)
		i = i.Merge(lower)
	}

	for {
		higher, ok := s.higher(i)
		if !ok || !i.CanMerge(higher) {
			break
		}

		s.remove(higher)
		i = i.Merge(higher)
	}

	s.intervals.Put(i.min, i)
}

// Remove takes out of the set all the values in i, splitting
// the intervals that only partially overlap with it
func (s *IntSet) Remove(i Int) {
	var remainders []Int

	if lower, ok := s.lower(i); ok && !lower.Disjoints(i) {
		s.remove(lower)
		remainders = append(remainders, subtract(lower, i)...)
	}

	for {
		higher, ok := s.higher(i)
		if !ok || higher.Disjoints(i) {
			break
		}

		s.remove(higher)
		remainders = append(remainders, subtract(higher, i)...)
	}

	for _, r := range remainders {
		s.intervals.Put(r.min, r)
	}
}

// Intervals returns all the intervals of the set in increasing
// order
func (s *IntSet) Intervals() []Int {
	res := make([]Int, 0, s.intervals.Len())
	s.intervals.InOrderWalk(func(_ int, i Int) {
		res = append(res, i)
	})
	return res
}

// subtract returns the parts of i that are not in j
func subtract(i, j Int) []Int {
	var res []Int
	if i.min < j.min {
		res = append(res, Int{min: i.min, max: j.min - 1})
	}
	if i.max > j.max {
		res = append(res, Int{min: j.max + 1, max: i.max})
	}
	return res
}

func (s *IntSet) remove(i Int) {
	if _, ok := s.intervals.Remove(i.min); !ok {
		panic("failed to delete interval")
	}
}

func (s *IntSet) higher(i Int) (Int, bool) {
	_, higher, ok := s.intervals.Higher(i.min)
	return higher, ok
}

func (s *IntSet) lower(i Int) (Int, bool) {
	_, lower, ok := s.intervals.Lower(i.min)
	return lower, ok
}
