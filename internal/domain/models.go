package domain

import (
	"errors"
	"fmt"
)

// Config holds the application settings loaded from YAML and flags.
type Config struct {
	MaxRequests int      `yaml:"max_requests"`
	Algorithms  []string `yaml:"algorithms"`
	InputFile   string   `yaml:"input_file"`
	Prompt      *bool    `yaml:"prompt"`
	ShowStats   bool     `yaml:"show_stats"`
	LogLevel    string   `yaml:"log_level"`
	LogFile     string   `yaml:"log_file"`
}

// PromptEnabled reports whether the console reader should print prompts.
func (c *Config) PromptEnabled() bool {
	return c.Prompt == nil || *c.Prompt
}

// Direction is the initial sweep direction of the SCAN planner.
type Direction int

const (
	DirectionLow Direction = iota
	DirectionHigh
)

func (d Direction) String() string {
	switch d {
	case DirectionLow:
		return "low"
	case DirectionHigh:
		return "high"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Workload is the immutable input shared by every planner.
type Workload struct {
	Requests  []int
	Head      int
	DiskSize  int
	Direction Direction
}

// LowBoundary returns the lowest addressable track.
func (w *Workload) LowBoundary() int {
	return 0
}

// HighBoundary returns the highest addressable track.
func (w *Workload) HighBoundary() int {
	return w.DiskSize - 1
}

// Schedule is the result of one planner run.
type Schedule struct {
	Algorithm     string
	Head          int
	Order         []int
	Seeks         []int
	TotalMovement int
}

// SeekStats summarises the individual head moves of a schedule.
type SeekStats struct {
	Count  int
	Mean   float64
	StdDev float64
	Max    float64
}

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrTooManyRequests   = fmt.Errorf("%w: too many requests", ErrInvalidInput)
	ErrInvalidDiskSize   = fmt.Errorf("%w: disk size must be positive", ErrInvalidInput)
	ErrHeadOutOfRange    = fmt.Errorf("%w: head position out of range", ErrInvalidInput)
	ErrRequestOutOfRange = fmt.Errorf("%w: request position out of range", ErrInvalidInput)
	ErrInvalidDirection  = fmt.Errorf("%w: direction must be 0 or 1", ErrInvalidInput)
	ErrUnknownAlgorithm  = errors.New("unknown algorithm")
)
