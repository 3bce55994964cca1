package scheduling

import (
	"disk-scheduling/internal/domain"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SeekStatistics computes the population mean, standard deviation and
// maximum of the individual head moves of s.
func SeekStatistics(s *domain.Schedule) domain.SeekStats {
	if s == nil || len(s.Seeks) == 0 {
		return domain.SeekStats{}
	}

	seeks := make([]float64, len(s.Seeks))
	for i, d := range s.Seeks {
		seeks[i] = float64(d)
	}

	mean, std := stat.PopMeanStdDev(seeks, nil)
	return domain.SeekStats{
		Count:  len(seeks),
		Mean:   mean,
		StdDev: std,
		Max:    floats.Max(seeks),
	}
}

// Best returns the schedule with the smallest total movement. Ties keep the
// earliest schedule.
func Best(schedules []*domain.Schedule) *domain.Schedule {
	var best *domain.Schedule
	for _, s := range schedules {
		if s == nil {
			continue
		}
		if best == nil || s.TotalMovement < best.TotalMovement {
			best = s
		}
	}
	return best
}
