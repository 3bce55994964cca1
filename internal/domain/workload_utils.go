package domain

import (
	"cmp"
	"fmt"
	"slices"
)

// SortAscending returns a sorted copy of values.
func SortAscending[T cmp.Ordered](values []T) []T {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return sorted
}

// ParseDirection converts the 0/1 console flag into a Direction.
func ParseDirection(v int) (Direction, error) {
	switch Direction(v) {
	case DirectionLow, DirectionHigh:
		return Direction(v), nil
	default:
		return 0, fmt.Errorf("%w: got %d", ErrInvalidDirection, v)
	}
}

// Validate checks the workload against maxRequests and the disk geometry.
// A non-positive maxRequests disables the count check.
func (w *Workload) Validate(maxRequests int) error {
	if w == nil {
		return fmt.Errorf("%w: nil workload", ErrInvalidInput)
	}
	if maxRequests > 0 && len(w.Requests) > maxRequests {
		return fmt.Errorf("%w: %d requests, maximum is %d", ErrTooManyRequests, len(w.Requests), maxRequests)
	}
	if w.DiskSize < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDiskSize, w.DiskSize)
	}
	if !w.inRange(w.Head) {
		return fmt.Errorf("%w: head %d not in [0, %d)", ErrHeadOutOfRange, w.Head, w.DiskSize)
	}
	for i, pos := range w.Requests {
		if !w.inRange(pos) {
			return fmt.Errorf("%w: request #%d = %d not in [0, %d)", ErrRequestOutOfRange, i+1, pos, w.DiskSize)
		}
	}
	if _, err := ParseDirection(int(w.Direction)); err != nil {
		return err
	}
	return nil
}

func (w *Workload) inRange(pos int) bool {
	return pos >= 0 && pos < w.DiskSize
}
