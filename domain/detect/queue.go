package detect

// queue is a FIFO of pixel indices. Popping advances a head index instead of
// shifting the slice, so a flood over n pixels costs O(n) overall. The backing
// array is reused across components.
type queue struct {
	items []int32
	head  int
}

func (q *queue) reset() {
	q.items = q.items[:0]
	q.head = 0
}

func (q *queue) push(i int32) { q.items = append(q.items, i) }

func (q *queue) pop() int32 {
	v := q.items[q.head]
	q.head++
	return v
}

func (q *queue) empty() bool { return q.head >= len(q.items) }

// visit enqueues i if it is opaque and not yet visited.
func (q *queue) visit(i int, visited []bool, opaque func(int) bool) {
	if visited[i] || !opaque(i) {
		return
	}
	visited[i] = true
	q.push(int32(i))
}
