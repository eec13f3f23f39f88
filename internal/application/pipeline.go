package application

import (
	"context"

	"github.com/iwat/bookend/internal/domain"
	"github.com/lmittmann/tint"
)

// State is a step of the read, transform, write pipeline.
type State int

const (
	Reading State = iota
	Transforming
	Writing
	Succeeded
	Aborted
)

func (s State) String() string {
	switch s {
	case Reading:
		return "reading"
	case Transforming:
		return "transforming"
	case Writing:
		return "writing"
	case Succeeded:
		return "succeeded"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Outcome describes how a pipeline run ended. AbortedAt is only meaningful
// when State is Aborted.
type Outcome struct {
	Input     string
	Output    string
	State     State
	AbortedAt State
}

func (o *Outcome) abort(at State) {
	o.AbortedAt = at
	o.State = Aborted
}

// Process reads input, wraps its content and writes the result to output.
// A read failure means output is never touched. The error returned is the
// failure of the stage that aborted the run.
func (app *App) Process(ctx context.Context, input, output string) (*Outcome, error) {
	outcome := &Outcome{Input: input, Output: output, State: Reading}

	content, err := app.ReadContent(ctx, input)
	if err != nil {
		outcome.abort(Reading)
		app.logger.ErrorContext(ctx, "Operation aborted due to reading error.")
		return outcome, err
	}
	if err := ctx.Err(); err != nil {
		outcome.abort(Reading)
		app.logger.WarnContext(ctx, "Operation aborted", tint.Err(err))
		return outcome, &domain.Failure{Op: "process", Kind: domain.Cancelled, Err: err}
	}

	outcome.State = Transforming
	modified := domain.Wrap(content)
	app.logger.DebugContext(ctx, "wrapped content", "in", len(content), "out", len(modified))

	outcome.State = Writing
	if err := app.WriteContent(ctx, output, modified); err != nil {
		outcome.abort(Writing)
		app.logger.ErrorContext(ctx, "Operation aborted due to writing error.")
		return outcome, err
	}

	outcome.State = Succeeded
	app.logger.InfoContext(ctx, "Successfully wrote modified content", "path", output)
	return outcome, nil
}
