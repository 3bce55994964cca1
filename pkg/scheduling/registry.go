package scheduling

import (
	"fmt"
	"strings"

	"disk-scheduling/internal/domain"

	"go.uber.org/zap"
)

// DefaultAlgorithms is the run order used when the config names none.
var DefaultAlgorithms = []string{"fcfs", "scan", "cscan"}

// Lookup returns the planner registered under name.
func Lookup(logger *zap.Logger, name string) (domain.Planner, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fcfs":
		return NewFCFSPlanner(logger), nil
	case "scan":
		return NewSCANPlanner(logger), nil
	case "cscan", "c-scan":
		return NewCSCANPlanner(logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAlgorithm, name)
	}
}

// Resolve maps every name to its planner, preserving order.
func Resolve(logger *zap.Logger, names []string) ([]domain.Planner, error) {
	if len(names) == 0 {
		names = DefaultAlgorithms
	}
	planners := make([]domain.Planner, 0, len(names))
	for _, name := range names {
		p, err := Lookup(logger, name)
		if err != nil {
			return nil, err
		}
		planners = append(planners, p)
	}
	return planners, nil
}
