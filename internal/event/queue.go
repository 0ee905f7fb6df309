package event

// Queue is a single-frame FIFO of simulation events. Producers Push during
// the frame; the consuming system Drains once, after which the queue is empty.
type Queue[T any] struct {
	events []T
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{events: make([]T, 0, 16)}
}

// Push appends e to the back of the queue.
func (q *Queue[T]) Push(e T) {
	q.events = append(q.events, e)
}

// Drain returns all pending events in push order and empties the queue.
// Events pushed while the caller iterates the result land in the next drain.
func (q *Queue[T]) Drain() []T {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]T, 0, cap(out))
	return out
}

// Len returns the number of pending events.
func (q *Queue[T]) Len() int {
	return len(q.events)
}

// Clear drops all pending events.
func (q *Queue[T]) Clear() {
	q.events = q.events[:0]
}
