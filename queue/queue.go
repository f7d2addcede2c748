// Package queue provides FIFO queues backed by a slice, a linked chain of
// nodes, a fixed size ring buffer and a pair of stacks.
package queue

// Interface is the behaviour shared by every queue in this package.
// Enqueue reports whether the value was accepted; only a full Ring refuses.
type Interface[T any] interface {
	Enqueue(value T) bool
	Dequeue() (T, bool)
	Peek() (T, bool)
	IsEmpty() bool
	Len() int
	Values() []T
}

var (
	_ Interface[int] = (*Queue[int])(nil)
	_ Interface[int] = (*Linked[int])(nil)
	_ Interface[int] = (*Ring[int])(nil)
	_ Interface[int] = (*TwoStack[int])(nil)
)

// Queue keeps its elements in a slice, front first.
type Queue[T any] struct {
	elements []T
}

func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

func (q *Queue[T]) IsEmpty() bool {
	return len(q.elements) == 0
}

func (q *Queue[T]) Len() int {
	return len(q.elements)
}

func (q *Queue[T]) Enqueue(value T) bool {
	q.elements = append(q.elements, value)
	return true
}

func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.IsEmpty() {
		return zero, false
	}

	out := q.elements[0]
	q.elements[0] = zero
	q.elements = q.elements[1:]
	return out, true
}

func (q *Queue[T]) Peek() (T, bool) {
	if q.IsEmpty() {
		var zero T
		return zero, false
	}
	return q.elements[0], true
}

func (q *Queue[T]) Values() []T {
	return append([]T{}, q.elements...)
}
