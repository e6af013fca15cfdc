package schedule

import "fmt"

// InvalidInputError names the field that made an instance unusable. Nothing
// carrying this error ever reaches the constraint engine.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (err InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %v: %v", err.Field, err.Reason)
}

func validate(instance Instance) error {
	seen := make(map[string]bool, len(instance.Jobs)+len(instance.Downtimes))
	machines := make(map[string]bool)

	for _, job := range instance.Jobs {
		if job.ID == "" {
			return InvalidInputError{Field: "job", Reason: "empty identifier"}
		}
		if seen[job.ID] {
			return InvalidInputError{Field: "job", Reason: fmt.Sprintf("duplicate identifier %q", job.ID)}
		}
		if job.Duration <= 0 {
			return InvalidInputError{Field: "job", Reason: fmt.Sprintf("%q has non-positive duration %v", job.ID, job.Duration)}
		}
		seen[job.ID] = true
		machines[job.Machine] = true
	}

	for _, downtime := range instance.Downtimes {
		if downtime.Job == "" {
			return InvalidInputError{Field: "downtime", Reason: "empty job identifier"}
		}
		if seen[downtime.Job] {
			return InvalidInputError{Field: "downtime", Reason: fmt.Sprintf("duplicate identifier %q", downtime.Job)}
		}
		if downtime.Duration <= 0 {
			return InvalidInputError{Field: "downtime", Reason: fmt.Sprintf("%q has non-positive duration %v", downtime.Job, downtime.Duration)}
		}
		seen[downtime.Job] = true
		machines[downtime.Machine] = true
	}

	for _, precedence := range instance.Precedences {
		if !seen[precedence.Job] {
			return InvalidInputError{Field: "precedence", Reason: fmt.Sprintf("unknown job %q", precedence.Job)}
		}
		if !seen[precedence.Predecessor] {
			return InvalidInputError{Field: "precedence", Reason: fmt.Sprintf("unknown predecessor %q", precedence.Predecessor)}
		}
		if precedence.Job == precedence.Predecessor {
			return InvalidInputError{Field: "precedence", Reason: fmt.Sprintf("job %q depends on itself", precedence.Job)}
		}
	}

	for _, machineBreak := range instance.Breaks {
		if !machines[machineBreak.Machine] {
			return InvalidInputError{Field: "break", Reason: fmt.Sprintf("machine %q runs no job", machineBreak.Machine)}
		}
	}

	return nil
}
