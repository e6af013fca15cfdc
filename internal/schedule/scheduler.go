package schedule

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/me/jobshop/internal/cp"
)

// Interval is the half-open execution window [Start, End) of one job.
type Interval struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// Schedule maps every job (downtime jobs included) to its interval.
type Schedule map[string]Interval

func (schedule Schedule) Makespan() int64 {
	return lo.MaxBy(lo.Values(schedule), func(a, b Interval) bool { return a.End > b.End }).End
}

// Stats describes the constraint system handed to the engine and how long
// the invocation took.
type Stats struct {
	Variables   int
	Constraints int
	Duration    time.Duration
}

// Result is the outcome of one solve. Schedule is nil unless Status is
// Optimal or Feasible; Infeasible and Unknown carry no timing data.
type Result struct {
	Status   cp.Status
	Schedule Schedule
	Makespan int64
	Stats    Stats
}

type Scheduler interface {
	// Build validates the instance, constructs the constraint system and
	// drives the solver once. Input validation failures surface as an
	// InvalidInputError; structural infeasibility surfaces as a Result
	// with Infeasible status, never as an error.
	Build(ctx context.Context, instance Instance) (*Result, error)

	// Verify independently re-checks every schedule invariant against the
	// instance, without consulting the solver.
	Verify(schedule Schedule, instance Instance) bool
}

func NewScheduler(solver cp.Solver) Scheduler {
	return newCpScheduler(solver)
}
