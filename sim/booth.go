// Implements the BoothPool, which tracks when each occupied voting booth frees up.

package sim

import (
	"container/heap"
	"fmt"
)

// departureHeap implements heap.Interface and orders scheduled departures ascending.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type departureHeap []float64

func (h departureHeap) Len() int           { return len(h) }
func (h departureHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h departureHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *departureHeap) Push(x any) {
	*h = append(*h, x.(float64))
}

func (h *departureHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}

// BoothPool is a bounded min-heap of scheduled departure times, one per occupied booth.
// It never blocks: a full pool rejects admissions and an empty pool rejects evictions.
// Occupancy always lies in [0, Capacity()].
type BoothPool struct {
	departures departureHeap
	capacity   int
}

// NewBoothPool creates an empty pool with numBooths booths.
// Panics if numBooths is not positive; callers validate the Precinct first.
func NewBoothPool(numBooths int) *BoothPool {
	if numBooths <= 0 {
		panic(fmt.Sprintf("NewBoothPool: numBooths must be positive, got %d", numBooths))
	}
	return &BoothPool{
		departures: make(departureHeap, 0, numBooths),
		capacity:   numBooths,
	}
}

// TryAdmit schedules a departure in a free booth. It returns false, leaving the
// pool untouched, when every booth is occupied.
func (bp *BoothPool) TryAdmit(departureTime float64) bool {
	if bp.IsFull() {
		return false
	}
	heap.Push(&bp.departures, departureTime)
	return true
}

// EvictEarliest removes and returns the earliest scheduled departure.
func (bp *BoothPool) EvictEarliest() (float64, error) {
	if bp.IsEmpty() {
		return 0, ErrBoothPoolEmpty
	}
	return heap.Pop(&bp.departures).(float64), nil
}

// IsFull reports whether every booth is occupied.
func (bp *BoothPool) IsFull() bool {
	return len(bp.departures) >= bp.capacity
}

// IsEmpty reports whether every booth is free.
func (bp *BoothPool) IsEmpty() bool {
	return len(bp.departures) == 0
}

// Len returns the number of occupied booths.
func (bp *BoothPool) Len() int {
	return len(bp.departures)
}

// Capacity returns the number of booths.
func (bp *BoothPool) Capacity() int {
	return bp.capacity
}
