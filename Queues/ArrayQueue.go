package Queues

// circArrQ is a ring buffer. Elements live in content[head:tail), wrapping
// around the end of content; sz tells full from empty when head==tail.
type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return makeCircArrQ[T](initCap)
}

func MakeDeque[T any](initCap uint) Deque[T] {
	return makeCircArrQ[T](initCap)
}

func makeCircArrQ[T any](initCap uint) *circArrQ[T] {
	return &circArrQ[T]{0, 0, 0, make([]T, initCap)}
}

func (this circArrQ[T]) Empty() bool {
	return this.sz == 0
}

// resize the buffer to newLen>=sz, newLen>0. The elements are moved to the
// beginning of the new buffer.
func (this *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if this.sz > 0 {
		if this.head < this.tail {
			copy(nc, this.content[this.head:this.tail])
		} else {
			n := copy(nc, this.content[this.head:])
			copy(nc[n:], this.content[:this.tail])
		}
	}
	this.content = nc
	this.head, this.tail = 0, this.sz%newLen
}

func (this *circArrQ[T]) grow() {
	if this.sz == uint(len(this.content)) {
		this.resize(this.sz*3/2 + 1)
	}
}

func (this *circArrQ[T]) Shrink() {
	this.resize(this.sz | 1)
}

// Clear the queue. The buffer is kept, but zeroed so that it doesn't hold
// references.
func (this *circArrQ[T]) Clear() {
	clear(this.content)
	this.tail, this.head, this.sz = 0, 0, 0
}

func (this circArrQ[T]) Size() uint {
	return this.sz
}

func (this *circArrQ[T]) Push(item T) {
	this.grow()
	this.content[this.tail] = item
	this.tail = (this.tail + 1) % uint(len(this.content))
	this.sz++
}

func (this *circArrQ[T]) PushFront(item T) {
	this.grow()
	this.head = (this.head + uint(len(this.content)) - 1) % uint(len(this.content))
	this.content[this.head] = item
	this.sz++
}

func (this *circArrQ[T]) Pop() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	} else {
		t := this.content[this.head]
		this.content[this.head] = *new(T)
		this.head = (this.head + 1) % uint(len(this.content))
		this.sz--
		return t, nil
	}
}

func (this *circArrQ[T]) PopBack() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	} else {
		this.tail = (this.tail + uint(len(this.content)) - 1) % uint(len(this.content))
		t := this.content[this.tail]
		this.content[this.tail] = *new(T)
		this.sz--
		return t, nil
	}
}

func (this circArrQ[T]) Peek() (item T) {
	if this.Empty() {
		return *new(T)
	} else {
		return this.content[this.head]
	}
}

func (this circArrQ[T]) PeekBack() (item T) {
	if this.Empty() {
		return *new(T)
	} else {
		return this.content[(this.tail+uint(len(this.content))-1)%uint(len(this.content))]
	}
}
