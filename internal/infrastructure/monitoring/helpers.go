package monitoring

import "time"

// Timer measures one operation and records it on Stop
type Timer struct {
	metrics *Metrics
	op      string
	route   string
	start   time.Time
}

// NewTimer starts timing op along route
func NewTimer(metrics *Metrics, op, route string) *Timer {
	return &Timer{
		metrics: metrics,
		op:      op,
		route:   route,
		start:   time.Now(),
	}
}

// Stop records the elapsed time and outcome, returning err unchanged
func (t *Timer) Stop(err error) error {
	t.metrics.RecordOperation(t.op, t.route, time.Since(t.start), err)
	return err
}
