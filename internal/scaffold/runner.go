package scaffold

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
)

// Step is one fallible unit of a flow.
type Step struct {
	Name string

	// File is the path the step creates or patches, if any.
	File string

	// Status is the output status word for File ("created", "patched").
	Status string

	// Interactive steps talk to the user and must not be wrapped.
	Interactive bool

	Run func(ctx context.Context) error
}

// StepError reports which step failed.
type StepError struct {
	Index int
	Name  string
	Err   error
}

// Error returns the underlying message unchanged; it is what the user sees.
func (e *StepError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the cause.
func (e *StepError) Unwrap() error {
	return e.Err
}

// Describe includes the failed step.
func (e *StepError) Describe() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index+1, e.Name, e.Err)
}

// Result is the outcome of a run.
type Result struct {
	// Completed lists the steps that finished, in order.
	Completed []Step

	// Failed is nil when every step succeeded.
	Failed *StepError
}

// OK reports whether every step succeeded.
func (r Result) OK() bool {
	return r.Failed == nil
}

// Err returns Failed as an error, or nil.
func (r Result) Err() error {
	if r.Failed == nil {
		return nil
	}
	return r.Failed
}

// Runner executes steps sequentially and stops at the first failure.
type Runner struct {
	Logger *log.Logger

	// Around, when set, wraps every non-interactive step (for example to
	// show a spinner). It must call run exactly once.
	Around func(ctx context.Context, step Step, run func() error) error
}

// Run executes steps in order.
func (r Runner) Run(ctx context.Context, steps []Step) Result {
	var res Result

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			res.Failed = &StepError{Index: i, Name: step.Name, Err: err}
			return res
		}

		if r.Logger != nil {
			r.Logger.Debug("running step", "step", i+1, "name", step.Name)
		}

		if err := r.run(ctx, step); err != nil {
			if r.Logger != nil {
				r.Logger.Debug("step failed", "step", i+1, "name", step.Name, "error", err)
			}
			res.Failed = &StepError{Index: i, Name: step.Name, Err: err}
			return res
		}

		res.Completed = append(res.Completed, step)
	}

	return res
}

func (r Runner) run(ctx context.Context, step Step) error {
	if r.Around == nil || step.Interactive {
		return step.Run(ctx)
	}
	return r.Around(ctx, step, func() error { return step.Run(ctx) })
}
