package scheduling

import (
	"disk-scheduling/internal/domain"

	"go.uber.org/zap"
)

const AlgorithmFCFS = "FCFS"

// FCFSPlanner services requests strictly in arrival order.
type FCFSPlanner struct {
	logger *zap.Logger
}

func NewFCFSPlanner(logger *zap.Logger) *FCFSPlanner {
	return &FCFSPlanner{logger: logger}
}

func (p *FCFSPlanner) Name() string {
	return AlgorithmFCFS
}

func (p *FCFSPlanner) Plan(w *domain.Workload) (*domain.Schedule, error) {
	if err := w.Validate(0); err != nil {
		return nil, err
	}

	t := newHeadTracker(w.Head, len(w.Requests))
	t.ascending(w.Requests)

	p.logger.Debug("FCFS planned",
		zap.Int("requests", len(w.Requests)),
		zap.Int("total", t.total))

	return t.schedule(AlgorithmFCFS), nil
}
