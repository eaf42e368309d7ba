package core

import "sort"

// Key extracts one ordering criterion from a process.
type Key func(p *Process) int

var (
	ByBurst     Key = func(p *Process) int { return p.BurstTime }
	ByRemaining Key = func(p *Process) int { return p.RemainingTime }
	ByPriority  Key = func(p *Process) int { return p.Priority }
	ByArrival   Key = func(p *Process) int { return p.ArrivalTime }
	ByID        Key = func(p *Process) int { return p.ID }
)

// Comparator orders processes lexicographically by its keys, all ascending.
// Each key breaks ties left by the ones before it.
type Comparator []Key

// Less reports whether a sorts before b.
func (c Comparator) Less(a, b *Process) bool {
	for _, key := range c {
		ka, kb := key(a), key(b)
		if ka != kb {
			return ka < kb
		}
	}
	return false
}

// ArrivalOrder is the FCFS and Round Robin ordering.
var ArrivalOrder = Comparator{ByArrival, ByID}

// Ready returns the positions of processes that have arrived by now and are
// not completed, in set order.
func (s ProcessSet) Ready(now int) []int {
	var ready []int
	for i := range s {
		if !s[i].IsCompleted && s[i].ArrivalTime <= now {
			ready = append(ready, i)
		}
	}
	return ready
}

// SelectMin returns the position among indices that sorts first under cmp,
// or -1 when indices is empty.
func (s ProcessSet) SelectMin(indices []int, cmp Comparator) int {
	best := -1
	for _, i := range indices {
		if best == -1 || cmp.Less(&s[i], &s[best]) {
			best = i
		}
	}
	return best
}

// NextArrival returns the earliest arrival strictly after now among processes
// that are not completed. ok is false when nothing else will ever arrive.
func (s ProcessSet) NextArrival(now int) (next int, ok bool) {
	for i := range s {
		if s[i].IsCompleted || s[i].ArrivalTime <= now {
			continue
		}
		if !ok || s[i].ArrivalTime < next {
			next, ok = s[i].ArrivalTime, true
		}
	}
	return next, ok
}

// Sorted returns the positions of the given indices ordered by cmp. The set
// itself is not reordered.
func (s ProcessSet) Sorted(indices []int, cmp Comparator) []int {
	out := make([]int, len(indices))
	copy(out, indices)
	sort.SliceStable(out, func(i, j int) bool {
		return cmp.Less(&s[out[i]], &s[out[j]])
	})
	return out
}

// SortInPlace reorders the set itself by cmp.
func (s ProcessSet) SortInPlace(cmp Comparator) {
	sort.SliceStable(s, func(i, j int) bool {
		return cmp.Less(&s[i], &s[j])
	})
}

// All returns every position of the set.
func (s ProcessSet) All() []int {
	out := make([]int, len(s))
	for i := range s {
		out[i] = i
	}
	return out
}
