package scheduling

import (
	"disk-scheduling/internal/domain"

	"go.uber.org/zap"
)

const AlgorithmCSCAN = "C-SCAN"

// CSCANPlanner always sweeps upward to the last track, returns to track 0
// without servicing anything and continues upward. The return trip counts
// toward the total movement.
type CSCANPlanner struct {
	logger *zap.Logger
}

func NewCSCANPlanner(logger *zap.Logger) *CSCANPlanner {
	return &CSCANPlanner{logger: logger}
}

func (p *CSCANPlanner) Name() string {
	return AlgorithmCSCAN
}

func (p *CSCANPlanner) Plan(w *domain.Workload) (*domain.Schedule, error) {
	if err := w.Validate(0); err != nil {
		return nil, err
	}

	t := newHeadTracker(w.Head, len(w.Requests)+2)
	if len(w.Requests) == 0 {
		return t.schedule(AlgorithmCSCAN), nil
	}

	left, right := partition(w.Requests, w.Head)
	left = domain.SortAscending(append(left, w.LowBoundary()))
	right = domain.SortAscending(append(right, w.HighBoundary()))

	t.ascending(right)
	t.jump(w.LowBoundary())
	t.ascending(left)

	p.logger.Debug("C-SCAN planned",
		zap.Int("left", len(left)),
		zap.Int("right", len(right)),
		zap.Int("total", t.total))

	return t.schedule(AlgorithmCSCAN), nil
}
