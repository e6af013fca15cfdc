package schedule

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
)

type Job struct {
	ID       string
	Machine  string
	Duration int64
}

type Precedence struct {
	Job         string
	Predecessor string
}

// Downtime pins a dedicated job onto a machine: the job occupies machine
// time like any other and must lie fully inside [WindowStart, WindowEnd].
type Downtime struct {
	Job         string
	Machine     string
	Duration    int64
	WindowStart int64 `mapstructure:"windowStart"`
	WindowEnd   int64 `mapstructure:"windowEnd"`
}

// Break is a machine-wide unavailability window: no job on the machine may
// straddle [WindowStart, WindowEnd].
type Break struct {
	Machine     string
	WindowStart int64 `mapstructure:"windowStart"`
	WindowEnd   int64 `mapstructure:"windowEnd"`
}

// Instance is one static scheduling problem. It is built once from input
// data and never mutated afterwards.
type Instance struct {
	Jobs        []Job
	Precedences []Precedence
	Downtimes   []Downtime
	Breaks      []Break

	// Horizon bounds every start/end variable. Zero means "derive a safe
	// default from the instance itself".
	Horizon int64
}

func InputFromJson(file string) (Instance, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Instance{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Instance{}, err
	}

	var instance Instance
	if err := mapstructure.Decode(inputJson, &instance); err != nil {
		return Instance{}, err
	}

	return instance, nil
}

// task is the unit the model builder works with: regular jobs and
// downtime-introduced jobs, flattened.
type task struct {
	id       string
	machine  string
	duration int64
}

func (instance Instance) tasks() []task {
	tasks := make([]task, 0, len(instance.Jobs)+len(instance.Downtimes))
	for _, job := range instance.Jobs {
		tasks = append(tasks, task{id: job.ID, machine: job.Machine, duration: job.Duration})
	}
	for _, downtime := range instance.Downtimes {
		tasks = append(tasks, task{id: downtime.Job, machine: downtime.Machine, duration: downtime.Duration})
	}
	return tasks
}

// horizon returns the configured horizon, or a default large enough to admit
// any feasible schedule: the sum of all durations plus the span of every
// downtime and break window.
func (instance Instance) horizon() int64 {
	if instance.Horizon > 0 {
		return instance.Horizon
	}

	var horizon int64
	for _, task := range instance.tasks() {
		horizon += task.duration
	}
	for _, downtime := range instance.Downtimes {
		if downtime.WindowEnd > downtime.WindowStart {
			horizon += downtime.WindowEnd - downtime.WindowStart
		}
	}
	for _, machineBreak := range instance.Breaks {
		if machineBreak.WindowEnd > machineBreak.WindowStart {
			horizon += machineBreak.WindowEnd - machineBreak.WindowStart
		}
	}
	return horizon
}
