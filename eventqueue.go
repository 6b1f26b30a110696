package sisrejection

import "container/heap"

// eventHeap is the backing slice for EventQueue's container/heap.Interface
// implementation, in the same shape as the timer heap in a cooperative
// event loop (see eventloop.timerHeap): Less orders by scheduled time,
// Push/Pop operate on the tail, and no stable tie-break is provided --
// simultaneous events have no defined relative order (spec section 4.2).
type eventHeap []Event

func (h eventHeap) Len() int            { return len(h) }
func (h eventHeap) Less(i, j int) bool  { return h[i].Time < h[j].Time }
func (h eventHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *eventHeap) Push(x interface{}) { *h = append(*h, x.(Event)) }
func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// EventQueue is a min-heap of Event ordered by Time, with O(log n) push
// and pop (spec section 4.2).
type EventQueue struct {
	h eventHeap
}

// NewEventQueue returns an empty event queue.
func NewEventQueue() *EventQueue {
	q := &EventQueue{h: make(eventHeap, 0)}
	heap.Init(&q.h)
	return q
}

// Push schedules e on the queue.
func (q *EventQueue) Push(e Event) {
	heap.Push(&q.h, e)
}

// PopMin removes and returns the event with the smallest Time. Panics if
// the queue is empty; callers must check Len first.
func (q *EventQueue) PopMin() Event {
	return heap.Pop(&q.h).(Event)
}

// PeekMin returns the event with the smallest Time without removing it.
// Panics if the queue is empty.
func (q *EventQueue) PeekMin() Event {
	return q.h[0]
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.h)
}
