// Package gantt renders a schedule as a machine-per-row text chart, one
// character cell per time unit (scaled down for long horizons).
package gantt

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/me/jobshop/internal/schedule"
)

const maxWidth = 100

type bar struct {
	id      string
	machine string
	start   int64
	end     int64
}

func Render(instance schedule.Instance, sched schedule.Schedule) string {
	bars := make([]bar, 0, len(instance.Jobs)+len(instance.Downtimes))
	for _, job := range instance.Jobs {
		interval := sched[job.ID]
		bars = append(bars, bar{id: job.ID, machine: job.Machine, start: interval.Start, end: interval.End})
	}
	for _, downtime := range instance.Downtimes {
		interval := sched[downtime.Job]
		bars = append(bars, bar{id: downtime.Job, machine: downtime.Machine, start: interval.Start, end: interval.End})
	}
	if len(bars) == 0 {
		return ""
	}

	makespan := sched.Makespan()
	scale := int64(1)
	for makespan/scale > maxWidth {
		scale++
	}
	width := int(makespan/scale) + 1

	machines := lo.Uniq(lo.Map(bars, func(b bar, _ int) string { return b.machine }))
	slices.Sort(machines)
	label := len(lo.MaxBy(machines, func(a, b string) bool { return len(a) > len(b) }))

	var builder strings.Builder
	fmt.Fprintf(&builder, "%*s |%s\n", label, "", ruler(width, scale))

	barsPerMachine := lo.GroupBy(bars, func(b bar) string { return b.machine })
	for _, machine := range machines {
		row := []byte(strings.Repeat(".", width))
		for _, b := range barsPerMachine[machine] {
			from, to := int(b.start/scale), int(b.end/scale)
			for i := from; i < to && i < width; i++ {
				row[i] = '='
			}
			copy(row[from:min(from+len(b.id), to)], b.id)
		}
		for _, machineBreak := range instance.Breaks {
			if machineBreak.Machine != machine {
				continue
			}
			for i := int(machineBreak.WindowStart / scale); i < int(machineBreak.WindowEnd/scale) && i < width; i++ {
				row[i] = 'x'
			}
		}
		fmt.Fprintf(&builder, "%*s |%s\n", label, machine, row)
	}

	fmt.Fprintf(&builder, "makespan: %v\n", makespan)
	return builder.String()
}

// ruler marks every tenth cell with the time value it represents.
func ruler(width int, scale int64) string {
	row := []byte(strings.Repeat(" ", width))
	for cell := 0; cell < width; cell += 10 {
		mark := fmt.Sprint(int64(cell) * scale)
		copy(row[cell:min(cell+len(mark), width)], mark)
	}
	return string(row)
}
