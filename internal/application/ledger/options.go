package ledger

import "time"

// PostingRecorder counts posting attempts by category and outcome
type PostingRecorder interface {
	RecordPosting(category, outcome string, amount float64)
}

// ShiftGauge tracks the number of running shifts
type ShiftGauge interface {
	ShiftStarted()
	ShiftEnded()
}

type noopMetrics struct{}

func (noopMetrics) RecordPosting(string, string, float64) {}
func (noopMetrics) ShiftStarted()                         {}
func (noopMetrics) ShiftEnded()                           {}

type options struct {
	now      func() time.Time
	recorder PostingRecorder
	gauge    ShiftGauge
}

// Option configures a Poster or a ShiftTracker
type Option func(*options)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithPostingRecorder reports every posting attempt
func WithPostingRecorder(r PostingRecorder) Option {
	return func(o *options) { o.recorder = r }
}

// WithShiftGauge reports shift starts and ends
func WithShiftGauge(g ShiftGauge) Option {
	return func(o *options) { o.gauge = g }
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now, recorder: noopMetrics{}, gauge: noopMetrics{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
