package queue

import "slices"

// TwoStack queues into right and dequeues from left. When left runs dry
// the right stack is reversed into it, which makes Dequeue amortised O(1).
type TwoStack[T any] struct {
	left  []T
	right []T
}

func NewTwoStack[T any]() *TwoStack[T] {
	return &TwoStack[T]{}
}

func (q *TwoStack[T]) IsEmpty() bool {
	return len(q.left) == 0 && len(q.right) == 0
}

func (q *TwoStack[T]) Len() int {
	return len(q.left) + len(q.right)
}

func (q *TwoStack[T]) Enqueue(value T) bool {
	q.right = append(q.right, value)
	return true
}

func (q *TwoStack[T]) Dequeue() (T, bool) {
	var zero T
	if q.IsEmpty() {
		return zero, false
	}

	if len(q.left) == 0 {
		q.left = q.right
		slices.Reverse(q.left)
		q.right = nil
	}

	last := len(q.left) - 1
	out := q.left[last]
	q.left[last] = zero
	q.left = q.left[:last]
	return out, true
}

func (q *TwoStack[T]) Peek() (T, bool) {
	if len(q.left) > 0 {
		return q.left[len(q.left)-1], true
	}
	if len(q.right) > 0 {
		return q.right[0], true
	}

	var zero T
	return zero, false
}

func (q *TwoStack[T]) Values() []T {
	values := make([]T, 0, q.Len())
	for i := len(q.left) - 1; i >= 0; i-- {
		values = append(values, q.left[i])
	}
	return append(values, q.right...)
}
