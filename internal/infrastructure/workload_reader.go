package infrastructure

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"disk-scheduling/internal/domain"

	"go.uber.org/zap"
)

var _ domain.WorkloadReader = (*ConsoleWorkloadReader)(nil)

// ConsoleWorkloadReader reads whitespace separated integers in the order
// n, n request positions, head, disk size, direction.
type ConsoleWorkloadReader struct {
	logger      *zap.Logger
	scanner     *bufio.Scanner
	prompts     io.Writer
	maxRequests int
}

// NewConsoleWorkloadReader reads from in. Prompts go to prompts when it is
// not nil.
func NewConsoleWorkloadReader(logger *zap.Logger, in io.Reader, prompts io.Writer, maxRequests int) *ConsoleWorkloadReader {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &ConsoleWorkloadReader{
		logger:      logger,
		scanner:     scanner,
		prompts:     prompts,
		maxRequests: maxRequests,
	}
}

func (r *ConsoleWorkloadReader) ReadWorkload() (*domain.Workload, error) {
	r.prompt("Enter number of requests: ")
	n, err := r.readInt("number of requests")
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: number of requests must not be negative, got %d", domain.ErrInvalidInput, n)
	}
	if r.maxRequests > 0 && n > r.maxRequests {
		return nil, fmt.Errorf("%w: %d requests, maximum is %d", domain.ErrTooManyRequests, n, r.maxRequests)
	}

	r.prompt("Enter request sequence:\n")
	requests := make([]int, n)
	for i := 0; i < n; i++ {
		if requests[i], err = r.readInt(fmt.Sprintf("request #%d", i+1)); err != nil {
			return nil, err
		}
	}

	r.prompt("Enter initial head position: ")
	head, err := r.readInt("head position")
	if err != nil {
		return nil, err
	}

	r.prompt("Enter total disk size: ")
	diskSize, err := r.readInt("disk size")
	if err != nil {
		return nil, err
	}

	r.prompt("Enter head movement direction (0 for left, 1 for right): ")
	rawDirection, err := r.readInt("direction")
	if err != nil {
		return nil, err
	}
	direction, err := domain.ParseDirection(rawDirection)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Workload read",
		zap.Int("requests", n),
		zap.Int("head", head),
		zap.Int("disk_size", diskSize),
		zap.Stringer("direction", direction))

	return &domain.Workload{
		Requests:  requests,
		Head:      head,
		DiskSize:  diskSize,
		Direction: direction,
	}, nil
}

func (r *ConsoleWorkloadReader) prompt(text string) {
	if r.prompts != nil {
		fmt.Fprint(r.prompts, text)
	}
}

func (r *ConsoleWorkloadReader) readInt(field string) (int, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return 0, fmt.Errorf("read %s: %w", field, err)
		}
		return 0, fmt.Errorf("%w: missing %s", domain.ErrInvalidInput, field)
	}

	token := r.scanner.Text()
	v, err := strconv.Atoi(token)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %s %q is out of range", domain.ErrInvalidInput, field, token)
		}
		return 0, fmt.Errorf("%w: %s %q is not an integer", domain.ErrInvalidInput, field, token)
	}
	return v, nil
}
