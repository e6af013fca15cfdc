package schedule

import (
	"slices"

	"github.com/samber/lo"
)

func verify(schedule Schedule, instance Instance) bool {
	tasks := instance.tasks()

	// Check that:
	// - Every task is scheduled and end = start + duration
	// - Every precedence orders its pair of intervals
	// - No two tasks on a machine overlap
	// - Every downtime job lies inside its window
	// - No task straddles a break on its machine
	for _, task := range tasks {
		interval, scheduled := schedule[task.id]
		if !scheduled || interval.End != interval.Start+task.duration {
			return false
		}
	}

	for _, precedence := range instance.Precedences {
		if schedule[precedence.Job].Start < schedule[precedence.Predecessor].End {
			return false
		}
	}

	tasksPerMachine := lo.GroupBy(tasks, func(task task) string { return task.machine })
	for _, machineTasks := range tasksPerMachine {
		intervals := lo.Map(machineTasks, func(task task, _ int) Interval { return schedule[task.id] })
		slices.SortFunc(intervals, func(a, b Interval) int {
			if a.Start != b.Start {
				return int(a.Start - b.Start)
			}
			return int(a.End - b.End)
		})
		for i := 1; i < len(intervals); i++ {
			if intervals[i].Start < intervals[i-1].End {
				return false
			}
		}
	}

	for _, downtime := range instance.Downtimes {
		interval := schedule[downtime.Job]
		if interval.Start < downtime.WindowStart || interval.End > downtime.WindowEnd {
			return false
		}
	}

	breaksPerMachine := lo.GroupBy(instance.Breaks, func(machineBreak Break) string { return machineBreak.Machine })
	for _, task := range tasks {
		interval := schedule[task.id]
		for _, machineBreak := range breaksPerMachine[task.machine] {
			if interval.End > machineBreak.WindowStart && interval.Start < machineBreak.WindowEnd {
				return false
			}
		}
	}

	return true
}
