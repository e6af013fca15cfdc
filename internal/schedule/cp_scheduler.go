package schedule

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/samber/lo"

	"github.com/me/jobshop/internal/cp"
)

// cpScheduler translates an Instance into a constraint system and reads the
// engine's assignment back into a Schedule. Machine mutual exclusion uses
// the capacity-1 resource encoding: one interval per task, one no-overlap
// group per machine.
type cpScheduler struct {
	solver cp.Solver
}

func newCpScheduler(solver cp.Solver) *cpScheduler {
	return &cpScheduler{solver: solver}
}

func (scheduler *cpScheduler) Build(ctx context.Context, instance Instance) (*Result, error) {
	if err := validate(instance); err != nil {
		return nil, err
	}

	//** Timing variables and duration linkage
	horizon := instance.horizon()
	tasks := instance.tasks()
	model := cp.NewModel()

	starts := make(map[string]cp.IntVar, len(tasks))
	ends := make(map[string]cp.IntVar, len(tasks))
	for _, task := range tasks {
		start := model.NewIntVar(0, horizon, "start_"+task.id)
		end := model.NewIntVar(0, horizon, "end_"+task.id)
		starts[task.id], ends[task.id] = start, end

		// end = start + duration
		model.AddEquality([]cp.Term{{Var: end, Coeff: 1}, {Var: start, Coeff: -1}}, task.duration)
	}

	//** Precedences: start(job) >= end(predecessor)
	for _, precedence := range instance.Precedences {
		model.AddGreaterOrEqual([]cp.Term{
			{Var: starts[precedence.Job], Coeff: 1},
			{Var: ends[precedence.Predecessor], Coeff: -1},
		}, 0)
	}

	//** Machine mutual exclusion
	tasksPerMachine := lo.GroupBy(tasks, func(task task) string { return task.machine })
	machines := lo.Keys(tasksPerMachine)
	slices.Sort(machines)
	for _, machine := range machines {
		intervals := lo.Map(tasksPerMachine[machine], func(task task, _ int) cp.IntervalVar {
			return model.NewInterval(starts[task.id], task.duration, ends[task.id])
		})
		model.AddNoOverlap(intervals...)
	}

	//** Downtime containment: the downtime job must lie inside its window
	for _, downtime := range instance.Downtimes {
		model.AddGreaterOrEqual([]cp.Term{{Var: starts[downtime.Job], Coeff: 1}}, downtime.WindowStart)
		model.AddLessOrEqual([]cp.Term{{Var: ends[downtime.Job], Coeff: 1}}, downtime.WindowEnd)
	}

	//** Breaks: every task on the machine finishes before or starts after
	breaksPerMachine := lo.GroupBy(instance.Breaks, func(machineBreak Break) string { return machineBreak.Machine })
	for _, task := range tasks {
		for _, machineBreak := range breaksPerMachine[task.machine] {
			before := model.NewBoolVar(fmt.Sprintf("before_break_%v_%v", task.id, machineBreak.WindowStart))
			after := model.NewBoolVar(fmt.Sprintf("after_break_%v_%v", task.id, machineBreak.WindowEnd))

			model.AddLessOrEqual([]cp.Term{{Var: ends[task.id], Coeff: 1}}, machineBreak.WindowStart).OnlyEnforceIf(before)
			model.AddGreaterOrEqual([]cp.Term{{Var: starts[task.id], Coeff: 1}}, machineBreak.WindowEnd).OnlyEnforceIf(after)
			model.AddBoolOr(before, after)
		}
	}

	//** Objective: minimize the maximum end time
	makespan := model.NewIntVar(0, horizon, "makespan")
	for _, task := range tasks {
		model.AddLessOrEqual([]cp.Term{{Var: ends[task.id], Coeff: 1}, {Var: makespan, Coeff: -1}}, 0)
	}
	model.Minimize(makespan)

	//** Solve and extract
	began := time.Now()
	solution, err := scheduler.solver.Solve(ctx, model)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Status: solution.Status,
		Stats: Stats{
			Variables:   model.Variables(),
			Constraints: model.Constraints(),
			Duration:    time.Since(began),
		},
	}
	if !solution.HasAssignment() {
		return result, nil
	}

	schedule := make(Schedule, len(tasks))
	for _, task := range tasks {
		schedule[task.id] = Interval{
			Start: solution.Value(starts[task.id]),
			End:   solution.Value(ends[task.id]),
		}
	}
	result.Schedule = schedule
	result.Makespan = solution.Value(makespan)

	return result, nil
}

func (scheduler *cpScheduler) Verify(schedule Schedule, instance Instance) bool {
	return verify(schedule, instance)
}
