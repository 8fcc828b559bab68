package search

// pqd is a min-heap of *State ordered lexicographically on (F1, F2),
// with seq as a deterministic tertiary tie-break. It implements
// heap.Interface and is wrapped by Frontier rather than used directly.
type pqd []*State

func (pq pqd) Len() int { return len(pq) }

func (pq pqd) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.F1 != b.F1 {
		return a.F1 < b.F1
	}
	if a.F2 != b.F2 {
		return a.F2 < b.F2
	}
	return a.seq < b.seq
}

func (pq pqd) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new *State onto the heap. Called by heap.Push; x must
// be of type *State.
func (pq *pqd) Push(x interface{}) { *pq = append(*pq, x.(*State)) }

// Pop removes and returns the last element of the underlying slice —
// the element heap.Pop has already swapped to the end.
func (pq *pqd) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
