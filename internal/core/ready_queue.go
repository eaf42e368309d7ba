package core

// ReadyQueue is a FIFO ring buffer of process positions. Each position can be
// queued at most once at a time.
type ReadyQueue struct {
	items  []int
	head   int
	size   int
	queued map[int]bool
}

// NewReadyQueue returns a queue sized for n processes.
func NewReadyQueue(n int) *ReadyQueue {
	if n < 1 {
		n = 1
	}
	return &ReadyQueue{
		items:  make([]int, n),
		queued: make(map[int]bool, n),
	}
}

// Enqueue appends i unless it is already queued. It reports whether i was added.
func (q *ReadyQueue) Enqueue(i int) bool {
	if q.queued[i] {
		return false
	}
	if q.size == len(q.items) {
		q.grow()
	}
	q.items[(q.head+q.size)%len(q.items)] = i
	q.size++
	q.queued[i] = true
	return true
}

// Dequeue removes and returns the front position.
func (q *ReadyQueue) Dequeue() (int, bool) {
	if q.size == 0 {
		return 0, false
	}
	i := q.items[q.head]
	q.head = (q.head + 1) % len(q.items)
	q.size--
	delete(q.queued, i)
	return i, true
}

func (q *ReadyQueue) IsEmpty() bool { return q.size == 0 }

func (q *ReadyQueue) Len() int { return q.size }

// Contains reports whether i is waiting in the queue.
func (q *ReadyQueue) Contains(i int) bool { return q.queued[i] }

func (q *ReadyQueue) grow() {
	items := make([]int, len(q.items)*2)
	for k := 0; k < q.size; k++ {
		items[k] = q.items[(q.head+k)%len(q.items)]
	}
	q.items = items
	q.head = 0
}
