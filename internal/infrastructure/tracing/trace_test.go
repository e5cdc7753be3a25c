package tracing

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/GriffinCanCode/kernelbridge/internal/shared/id"
)

func TestStartSpanNewTrace(t *testing.T) {
	tracer := New("test", nil)

	span, ctx := tracer.StartSpan(context.Background(), "init")

	assert.True(t, strings.HasPrefix(string(span.TraceID), id.TracePrefix+"_"))
	assert.True(t, strings.HasPrefix(string(span.SpanID), id.SpanPrefix+"_"))
	assert.Empty(t, span.ParentID)
	assert.Equal(t, span.TraceID, GetTraceID(ctx))
	assert.Equal(t, span.SpanID, GetSpanID(ctx))
}

func TestStartSpanChild(t *testing.T) {
	tracer := New("test", nil)

	parent, ctx := tracer.StartSpan(context.Background(), "start")
	child, _ := tracer.StartSpan(ctx, "init")

	assert.Equal(t, parent.TraceID, child.TraceID)
	assert.Equal(t, parent.SpanID, child.ParentID)
}

func TestWithTraceID(t *testing.T) {
	ctx := WithTraceID(context.Background(), "trace_fixed")
	span, _ := New("test", nil).StartSpan(ctx, "stop")

	assert.Equal(t, id.TraceID("trace_fixed"), span.TraceID)
}

func TestFinishLogsSpan(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	tracer := New("delegate", zap.New(core))

	span, _ := tracer.StartSpan(context.Background(), "stop")
	span.SetTag("route", "forward")
	span.SetError(errors.New("stop failed"))
	tracer.Finish(span)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.DebugLevel, entry.Level)
	fields := entry.ContextMap()
	assert.Equal(t, "stop", fields["operation"])
	assert.Equal(t, "forward", fields["tag.route"])
	assert.Equal(t, "stop failed", fields["span_error"])
	assert.False(t, span.EndTime.IsZero())
}

func TestFormatTrace(t *testing.T) {
	assert.Equal(t, "[trace:t1 span:s1]", FormatTrace("t1", "s1"))
}
