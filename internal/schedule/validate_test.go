package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	scenarios := []struct {
		name     string
		instance Instance
		field    string
	}{
		{
			name: "valid instance",
			instance: Instance{
				Jobs:        []Job{{ID: "j1", Machine: "m1", Duration: 5}, {ID: "j2", Machine: "m1", Duration: 3}},
				Precedences: []Precedence{{Job: "j2", Predecessor: "j1"}},
				Downtimes:   []Downtime{{Job: "dt1", Machine: "m1", Duration: 10, WindowStart: 10, WindowEnd: 20}},
				Breaks:      []Break{{Machine: "m1", WindowStart: 30, WindowEnd: 40}},
			},
		},
		{
			name:     "zero duration",
			instance: Instance{Jobs: []Job{{ID: "j1", Machine: "m1", Duration: 0}}},
			field:    "job",
		},
		{
			name:     "negative duration",
			instance: Instance{Jobs: []Job{{ID: "j1", Machine: "m1", Duration: -4}}},
			field:    "job",
		},
		{
			name:     "empty job identifier",
			instance: Instance{Jobs: []Job{{Machine: "m1", Duration: 5}}},
			field:    "job",
		},
		{
			name: "duplicate job identifier",
			instance: Instance{Jobs: []Job{
				{ID: "j1", Machine: "m1", Duration: 5},
				{ID: "j1", Machine: "m2", Duration: 3},
			}},
			field: "job",
		},
		{
			name: "downtime shadowing a job",
			instance: Instance{
				Jobs:      []Job{{ID: "j1", Machine: "m1", Duration: 5}},
				Downtimes: []Downtime{{Job: "j1", Machine: "m1", Duration: 2, WindowStart: 0, WindowEnd: 10}},
			},
			field: "downtime",
		},
		{
			name: "downtime with non-positive duration",
			instance: Instance{
				Jobs:      []Job{{ID: "j1", Machine: "m1", Duration: 5}},
				Downtimes: []Downtime{{Job: "dt1", Machine: "m1", Duration: 0, WindowStart: 0, WindowEnd: 10}},
			},
			field: "downtime",
		},
		{
			name: "precedence on unknown job",
			instance: Instance{
				Jobs:        []Job{{ID: "j1", Machine: "m1", Duration: 5}},
				Precedences: []Precedence{{Job: "ghost", Predecessor: "j1"}},
			},
			field: "precedence",
		},
		{
			name: "precedence on unknown predecessor",
			instance: Instance{
				Jobs:        []Job{{ID: "j1", Machine: "m1", Duration: 5}},
				Precedences: []Precedence{{Job: "j1", Predecessor: "ghost"}},
			},
			field: "precedence",
		},
		{
			name: "self precedence",
			instance: Instance{
				Jobs:        []Job{{ID: "j1", Machine: "m1", Duration: 5}},
				Precedences: []Precedence{{Job: "j1", Predecessor: "j1"}},
			},
			field: "precedence",
		},
		{
			name: "break on machine with no job",
			instance: Instance{
				Jobs:   []Job{{ID: "j1", Machine: "m1", Duration: 5}},
				Breaks: []Break{{Machine: "m9", WindowStart: 30, WindowEnd: 40}},
			},
			field: "break",
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			err := validate(scenario.instance)

			if scenario.field == "" {
				assert.Nil(t, err)
				return
			}
			var invalid InvalidInputError
			assert.ErrorAs(t, err, &invalid)
			assert.Equal(t, scenario.field, invalid.Field)
		})
	}
}

func TestPrecedenceMayReferenceDowntimeJob(t *testing.T) {
	instance := Instance{
		Jobs:        []Job{{ID: "j1", Machine: "m1", Duration: 5}},
		Downtimes:   []Downtime{{Job: "dt1", Machine: "m1", Duration: 3, WindowStart: 0, WindowEnd: 10}},
		Precedences: []Precedence{{Job: "j1", Predecessor: "dt1"}},
	}

	assert.Nil(t, validate(instance))
}
