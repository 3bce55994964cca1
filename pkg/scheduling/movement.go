package scheduling

import "disk-scheduling/internal/domain"

// headTracker follows the head through a run and accumulates its travel.
type headTracker struct {
	start int
	head  int
	order []int
	seeks []int
	total int
}

func newHeadTracker(start, capacity int) *headTracker {
	return &headTracker{
		start: start,
		head:  start,
		order: make([]int, 0, capacity),
		seeks: make([]int, 0, capacity+1),
	}
}

// visit moves the head to pos and records pos as serviced.
func (t *headTracker) visit(pos int) {
	t.move(pos)
	t.order = append(t.order, pos)
}

// jump moves the head to pos without servicing anything on the way.
func (t *headTracker) jump(pos int) {
	t.move(pos)
}

func (t *headTracker) move(pos int) {
	d := distance(t.head, pos)
	t.seeks = append(t.seeks, d)
	t.total += d
	t.head = pos
}

func (t *headTracker) ascending(positions []int) {
	for _, pos := range positions {
		t.visit(pos)
	}
}

func (t *headTracker) descending(positions []int) {
	for i := len(positions) - 1; i >= 0; i-- {
		t.visit(positions[i])
	}
}

func (t *headTracker) schedule(algorithm string) *domain.Schedule {
	return &domain.Schedule{
		Algorithm:     algorithm,
		Head:          t.start,
		Order:         t.order,
		Seeks:         t.seeks,
		TotalMovement: t.total,
	}
}

// partition splits requests into those strictly below head and the rest.
// Each side gets one extra slot of capacity for a boundary track.
func partition(requests []int, head int) (left, right []int) {
	left = make([]int, 0, len(requests)+1)
	right = make([]int, 0, len(requests)+1)
	for _, pos := range requests {
		if pos < head {
			left = append(left, pos)
		} else {
			right = append(right, pos)
		}
	}
	return left, right
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
