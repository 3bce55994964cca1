package app

import (
	"fmt"

	"disk-scheduling/internal/domain"
	"disk-scheduling/pkg/scheduling"

	"go.uber.org/zap"
)

type DiskSimulator struct {
	logger   *zap.Logger
	planners []domain.Planner
	config   *domain.Config
}

func NewDiskSimulator(logger *zap.Logger, config *domain.Config) (*DiskSimulator, error) {
	planners, err := scheduling.Resolve(logger, config.Algorithms)
	if err != nil {
		return nil, err
	}
	return &DiskSimulator{
		logger:   logger,
		planners: planners,
		config:   config,
	}, nil
}

// Run validates the workload once and runs every planner on it in order.
func (s *DiskSimulator) Run(w *domain.Workload) ([]*domain.Schedule, error) {
	if err := w.Validate(s.config.MaxRequests); err != nil {
		return nil, err
	}

	s.logger.Info("Starting disk scheduling simulation",
		zap.Int("requests", len(w.Requests)),
		zap.Int("head", w.Head),
		zap.Int("disk_size", w.DiskSize),
		zap.Stringer("direction", w.Direction),
		zap.Int("planners", len(s.planners)))

	schedules := make([]*domain.Schedule, 0, len(s.planners))
	for _, p := range s.planners {
		schedule, err := p.Plan(w)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.Name(), err)
		}

		s.logger.Info("Planner finished",
			zap.String("algorithm", schedule.Algorithm),
			zap.Ints("order", schedule.Order),
			zap.Int("total_movement", schedule.TotalMovement))

		schedules = append(schedules, schedule)
	}

	return schedules, nil
}
