package cp

import "context"

type Status int

const (
	Unknown Status = iota
	Optimal
	Feasible
	Infeasible
)

func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Feasible:
		return "feasible"
	case Infeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// Solution carries the terminal status of a solve and, on Optimal or
// Feasible, the value assigned to every variable of the model.
type Solution struct {
	Status    Status
	Objective int64

	intValues  []int64
	boolValues []bool
}

// HasAssignment reports whether variable values may be read from the
// solution. Infeasible and Unknown solutions carry none.
func (s *Solution) HasAssignment() bool {
	return s.Status == Optimal || s.Status == Feasible
}

func (s *Solution) Value(v IntVar) int64 {
	return s.intValues[v]
}

func (s *Solution) BoolValue(b BoolVar) bool {
	return s.boolValues[b]
}

// Solver is a black-box optimization backend. Solve blocks until a terminal
// status is reached or the time budget (solver configuration or context
// deadline, whichever is tighter) runs out; on budget exhaustion it still
// returns Feasible or Unknown, never an error.
type Solver interface {
	Solve(ctx context.Context, model *Model) (*Solution, error)
}
