package domain

// WorkloadReader reads the scheduling input.
type WorkloadReader interface {
	ReadWorkload() (*Workload, error)
}

// ReportWriter prints planner results.
type ReportWriter interface {
	WriteSchedules(schedules []*Schedule) error
}

// ConfigReader loads the application configuration.
type ConfigReader interface {
	ReadConfig(path string) (*Config, error)
}
