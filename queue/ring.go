package queue

import "errors"

var ErrInvalidCapacity = errors.New("ring capacity must be at least 1")

// Ring is a bounded queue over a fixed slice. Enqueue fails once Cap
// elements are waiting.
type Ring[T any] struct {
	elements []T
	front    int
	count    int
}

func NewRing[T any](capacity int) (*Ring[T], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Ring[T]{elements: make([]T, capacity)}, nil
}

func (r *Ring[T]) Cap() int {
	return len(r.elements)
}

func (r *Ring[T]) Len() int {
	return r.count
}

func (r *Ring[T]) IsEmpty() bool {
	return r.count == 0
}

func (r *Ring[T]) IsFull() bool {
	return r.count == len(r.elements)
}

func (r *Ring[T]) Enqueue(value T) bool {
	if r.IsFull() {
		return false
	}

	rear := (r.front + r.count) % len(r.elements)
	r.elements[rear] = value
	r.count++
	return true
}

func (r *Ring[T]) Dequeue() (T, bool) {
	var zero T
	if r.IsEmpty() {
		return zero, false
	}

	out := r.elements[r.front]
	r.elements[r.front] = zero
	r.count--
	if r.count == 0 {
		r.front = 0
	} else {
		r.front = (r.front + 1) % len(r.elements)
	}
	return out, true
}

func (r *Ring[T]) Peek() (T, bool) {
	if r.IsEmpty() {
		var zero T
		return zero, false
	}
	return r.elements[r.front], true
}

// Values returns the waiting elements from front to rear.
func (r *Ring[T]) Values() []T {
	values := make([]T, 0, r.count)
	for i := 0; i < r.count; i++ {
		values = append(values, r.elements[(r.front+i)%len(r.elements)])
	}
	return values
}
