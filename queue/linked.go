package queue

type qNode[T any] struct {
	value T
	next  *qNode[T]
}

// Linked is a queue made of singly linked nodes with front and rear pointers.
type Linked[T any] struct {
	length int
	front  *qNode[T]
	rear   *qNode[T]
}

func NewLinked[T any]() *Linked[T] {
	return &Linked[T]{length: 0, front: nil, rear: nil}
}

func (q *Linked[T]) IsEmpty() bool {
	return q.front == nil
}

func (q *Linked[T]) Len() int {
	return q.length
}

func (q *Linked[T]) Enqueue(value T) bool {
	node := &qNode[T]{value: value}
	q.length++
	if q.rear == nil {
		q.front, q.rear = node, node
		return true
	}

	q.rear.next = node
	q.rear = node
	return true
}

func (q *Linked[T]) Dequeue() (T, bool) {
	if q.front == nil {
		var zero T
		return zero, false
	}

	q.length--
	front := q.front
	q.front = front.next
	if q.front == nil {
		q.rear = nil
	}
	return front.value, true
}

func (q *Linked[T]) Peek() (T, bool) {
	if q.front == nil {
		var zero T
		return zero, false
	}
	return q.front.value, true
}

func (q *Linked[T]) Values() []T {
	values := make([]T, 0, q.length)
	for node := q.front; node != nil; node = node.next {
		values = append(values, node.value)
	}
	return values
}
