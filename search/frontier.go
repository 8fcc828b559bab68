package search

import "container/heap"

// Frontier is the lexicographic priority queue (PQD) that drives the
// bi-objective searches in package bod and package stages. It orders
// pending States on (F1, F2) and assigns each pushed State a sequence
// number so that equal-(F1,F2) States still have a total order.
//
// Frontier performs no deduplication or dominance pruning on Push —
// that bookkeeping belongs to the caller, which tracks a per-vertex
// g2-minimum. PruneDominatedBy is available to discard entries once
// they can no longer contribute a non-dominated solution; the searches
// in package bod and package stages do not call it.
type Frontier struct {
	pq      pqd
	nextSeq uint64
}

// NewFrontier returns an empty Frontier ready for use.
func NewFrontier() *Frontier {
	f := &Frontier{}
	heap.Init(&f.pq)
	return f
}

// Push inserts s into the frontier, stamping it with the next
// insertion sequence number.
func (f *Frontier) Push(s *State) {
	s.seq = f.nextSeq
	f.nextSeq++
	heap.Push(&f.pq, s)
}

// PopBest removes and returns the State with the lexicographically
// smallest (F1, F2, seq). It panics if the frontier is empty; callers
// must check Empty first.
func (f *Frontier) PopBest() *State {
	return heap.Pop(&f.pq).(*State)
}

// Empty reports whether the frontier holds no pending States.
func (f *Frontier) Empty() bool { return f.pq.Len() == 0 }

// Len returns the number of States currently pending.
func (f *Frontier) Len() int { return f.pq.Len() }

// PruneDominatedBy removes every pending State whose (F1, F2) is
// dominated by the given (f1, f2) pair, under the strict product
// order with weak dominance on ties. This lets a caller that has just
// found a solution with cost (f1, f2) discard frontier entries that
// can no longer improve on it — the optional bound described for the
// bounded pipeline stages.
func (f *Frontier) PruneDominatedBy(f1, f2 float64) {
	kept := f.pq[:0]
	for _, s := range f.pq {
		dominated := (f1 < s.F1 && f2 <= s.F2) || (f1 <= s.F1 && f2 < s.F2)
		if !dominated {
			kept = append(kept, s)
		}
	}
	f.pq = kept
	heap.Init(&f.pq)
}
