package scheduling

import (
	"disk-scheduling/internal/domain"

	"go.uber.org/zap"
)

const AlgorithmSCAN = "SCAN"

// SCANPlanner sweeps toward the boundary chosen by the workload direction,
// then reverses and services the remaining requests. Only that one boundary
// is ever visited; the head turns around at the last request on the way back.
type SCANPlanner struct {
	logger *zap.Logger
}

func NewSCANPlanner(logger *zap.Logger) *SCANPlanner {
	return &SCANPlanner{logger: logger}
}

func (p *SCANPlanner) Name() string {
	return AlgorithmSCAN
}

func (p *SCANPlanner) Plan(w *domain.Workload) (*domain.Schedule, error) {
	if err := w.Validate(0); err != nil {
		return nil, err
	}

	t := newHeadTracker(w.Head, len(w.Requests)+1)
	if len(w.Requests) == 0 {
		return t.schedule(AlgorithmSCAN), nil
	}

	left, right := partition(w.Requests, w.Head)
	if w.Direction == domain.DirectionLow {
		left = append(left, w.LowBoundary())
	} else {
		right = append(right, w.HighBoundary())
	}
	left = domain.SortAscending(left)
	right = domain.SortAscending(right)

	switch w.Direction {
	case domain.DirectionLow:
		t.descending(left)
		t.ascending(right)
	case domain.DirectionHigh:
		t.ascending(right)
		t.descending(left)
	}

	p.logger.Debug("SCAN planned",
		zap.Stringer("direction", w.Direction),
		zap.Int("left", len(left)),
		zap.Int("right", len(right)),
		zap.Int("total", t.total))

	return t.schedule(AlgorithmSCAN), nil
}
