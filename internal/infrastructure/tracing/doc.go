// Package tracing records lightweight spans around bridge operations.
//
// Spans carry ULID trace and span identifiers, propagate through
// context.Context and are emitted as debug-level zap records when finished.
//
// Example Usage:
//
//	tracer := tracing.New("delegate", logger)
//	span, ctx := tracer.StartSpan(ctx, "init")
//	span.SetTag("route", "kernel")
//	err := kernel.Init(ctx)
//	span.SetError(err)
//	tracer.Finish(span)
package tracing
