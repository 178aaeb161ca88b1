package observability

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/aretw0/cascade/pkg/dispatch"
	"github.com/aretw0/cascade/pkg/domain"
)

// TracingHooks records one span per top-level dispatch call.
//
// The returned hooks keep the open span between OnDispatch and OnComplete
// and are therefore bound to a single store.
func TracingHooks(tracer trace.Tracer) dispatch.Hooks[domain.Action] {
	var span trace.Span

	return dispatch.Hooks[domain.Action]{
		OnDispatch: func(a domain.Action) {
			_, span = tracer.Start(context.Background(), "dispatch "+a.Kind.String(),
				trace.WithAttributes(attribute.String("cascade.action", a.String())),
			)
		},
		OnComplete: func(_ domain.Action, o dispatch.Outcome, err error) {
			if span == nil {
				return
			}
			span.SetAttributes(
				attribute.Int("cascade.applied", o.Applied),
				attribute.Int("cascade.cancelled", o.Cancelled),
				attribute.Int("cascade.injected", o.Injected),
				attribute.Int("cascade.depth", o.Depth),
				attribute.Bool("cascade.changed", o.Changed),
				attribute.Bool("cascade.terminated", o.Terminated),
			)
			var limitErr *dispatch.LimitError
			if errors.As(err, &limitErr) {
				span.SetAttributes(attribute.String("cascade.limit", string(limitErr.Limit)))
			}
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			span.End()
			span = nil
		},
	}
}
