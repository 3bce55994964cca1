package domain

// Planner orders the requests of a workload and measures the head travel.
type Planner interface {
	Name() string
	Plan(w *Workload) (*Schedule, error)
}
