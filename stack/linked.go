package stack

type sNode[T any] struct {
	value T
	next  *sNode[T]
}

type Linked[T any] struct {
	length int
	top    *sNode[T]
}

func NewLinked[T any]() *Linked[T] {
	return &Linked[T]{}
}

func (s *Linked[T]) IsEmpty() bool {
	return s.top == nil
}

func (s *Linked[T]) Len() int {
	return s.length
}

func (s *Linked[T]) Push(value T) {
	s.length++
	s.top = &sNode[T]{value: value, next: s.top}
}

func (s *Linked[T]) Pop() (T, bool) {
	if s.top == nil {
		var zero T
		return zero, false
	}

	s.length--
	top := s.top
	s.top = top.next
	return top.value, true
}

func (s *Linked[T]) Peek() (T, bool) {
	if s.top == nil {
		var zero T
		return zero, false
	}
	return s.top.value, true
}

func (s *Linked[T]) Values() []T {
	values := make([]T, 0, s.length)
	for node := s.top; node != nil; node = node.next {
		values = append(values, node.value)
	}
	return values
}
