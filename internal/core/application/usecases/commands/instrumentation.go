package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "dispatch/internal/core/application/usecases/commands"

// Operation outcomes reported to the Recorder.
const (
	OutcomeSuccess    = "success"
	OutcomeNotFound   = "not_found"
	OutcomeValidation = "validation"
	OutcomeConflict   = "conflict"
	OutcomeError      = "error"
)

// Recorder receives the result of every coordinator operation.
type Recorder interface {
	ObserveOperation(operation, outcome string, elapsed time.Duration)
	ObserveStatusChanges(changes []ports.StatusChange)
}

type nopRecorder struct{}

func (nopRecorder) ObserveOperation(string, string, time.Duration) {}
func (nopRecorder) ObserveStatusChanges([]ports.StatusChange)      {}

func recorderOrNop(r Recorder) Recorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}

// Outcome classifies an operation error.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, errs.ErrObjectNotFound):
		return OutcomeNotFound
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrResourceUnavailable):
		return OutcomeConflict
	case errs.IsValidation(err):
		return OutcomeValidation
	default:
		return OutcomeError
	}
}

// operation spans one handler call.
type operation struct {
	name     string
	recorder Recorder
	span     trace.Span
	started  time.Time
}

func startOperation(ctx context.Context, recorder Recorder, name, spanName string) (context.Context, *operation) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, spanName)
	return ctx, &operation{
		name:     name,
		recorder: recorderOrNop(recorder),
		span:     span,
		started:  time.Now(),
	}
}

// end closes the span and reports the outcome. Status changes are reported
// only for committed operations.
func (o *operation) end(err error, log ChangeLog) {
	outcome := Outcome(err)
	if err != nil {
		o.span.RecordError(err)
		o.span.SetStatus(codes.Error, outcome)
	} else if log != nil {
		o.recorder.ObserveStatusChanges(log.Changes())
	}
	o.span.End()

	o.recorder.ObserveOperation(o.name, outcome, time.Since(o.started))
}
