// Package metrics counts invocation outcomes and produces the run report.
package metrics

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"
)

// Metrics collects counters for a run of one or more invocations.
// All methods are safe on a nil receiver, which records nothing.
type Metrics struct {
	mu sync.Mutex

	calls     int64 // remote calls made
	succeeded int64 // calls that returned a response
	failed    int64 // calls that returned an error
	stopped   int64 // calls cancelled by a stop request
	declined  int64 // invocations declined at confirmation
	warnings  int64 // binding warnings emitted
	records   int64 // pipeline records consumed

	callTime  time.Duration // total time spent in remote calls
	startTime time.Time
}

// NewMetrics creates a new Metrics instance with initialized counters
func NewMetrics() *Metrics {
	return &Metrics{
		startTime: time.Now(),
	}
}

// RecordCall records one remote call and its latency.
func (m *Metrics) RecordCall(d time.Duration) {
	if m == nil {
		return
	}
	atomic.AddInt64(&m.calls, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callTime += d
}

// RecordSucceeded increments the succeeded counter
func (m *Metrics) RecordSucceeded() {
	if m != nil {
		atomic.AddInt64(&m.succeeded, 1)
	}
}

// RecordFailed increments the failed counter
func (m *Metrics) RecordFailed() {
	if m != nil {
		atomic.AddInt64(&m.failed, 1)
	}
}

// RecordStopped increments the stopped counter
func (m *Metrics) RecordStopped() {
	if m != nil {
		atomic.AddInt64(&m.stopped, 1)
	}
}

// RecordDeclined increments the declined counter
func (m *Metrics) RecordDeclined() {
	if m != nil {
		atomic.AddInt64(&m.declined, 1)
	}
}

// RecordWarning increments the warnings counter
func (m *Metrics) RecordWarning() {
	if m != nil {
		atomic.AddInt64(&m.warnings, 1)
	}
}

// RecordRecord increments the pipeline records counter
func (m *Metrics) RecordRecord() {
	if m != nil {
		atomic.AddInt64(&m.records, 1)
	}
}

// Failed returns the number of failed and stopped calls.
func (m *Metrics) Failed() int64 {
	if m == nil {
		return 0
	}
	return atomic.LoadInt64(&m.failed) + atomic.LoadInt64(&m.stopped)
}

// Report summarises a run.
type Report struct {
	StartTime   time.Time     `json:"startTime"`
	EndTime     time.Time     `json:"endTime"`
	Records     int64         `json:"records"`
	Calls       int64         `json:"calls"`
	Succeeded   int64         `json:"succeeded"`
	Failed      int64         `json:"failed"`
	Stopped     int64         `json:"stopped"`
	Declined    int64         `json:"declined"`
	Warnings    int64         `json:"warnings"`
	Duration    time.Duration `json:"duration"`
	MeanLatency time.Duration `json:"meanLatency"`
}

// GenerateReport snapshots the counters into a Report.
func (m *Metrics) GenerateReport() Report {
	endTime := time.Now()
	if m == nil {
		return Report{StartTime: endTime, EndTime: endTime}
	}

	calls := atomic.LoadInt64(&m.calls)
	m.mu.Lock()
	callTime := m.callTime
	m.mu.Unlock()

	var mean time.Duration
	if calls > 0 {
		mean = callTime / time.Duration(calls)
	}

	return Report{
		StartTime:   m.startTime,
		EndTime:     endTime,
		Records:     atomic.LoadInt64(&m.records),
		Calls:       calls,
		Succeeded:   atomic.LoadInt64(&m.succeeded),
		Failed:      atomic.LoadInt64(&m.failed),
		Stopped:     atomic.LoadInt64(&m.stopped),
		Declined:    atomic.LoadInt64(&m.declined),
		Warnings:    atomic.LoadInt64(&m.warnings),
		Duration:    endTime.Sub(m.startTime),
		MeanLatency: mean,
	}
}

// MarshalJSON renders durations as strings.
func (r Report) MarshalJSON() ([]byte, error) {
	type Alias Report
	return json.Marshal(&struct {
		Alias
		Duration    string `json:"duration"`
		MeanLatency string `json:"meanLatency"`
	}{
		Alias:       Alias(r),
		Duration:    r.Duration.String(),
		MeanLatency: r.MeanLatency.String(),
	})
}

// String returns a human-readable summary.
func (r Report) String() string {
	return fmt.Sprintf(
		"Completed in %s\n"+
			"Records: %d\n"+
			"Calls: %d (succeeded %d, failed %d, stopped %d)\n"+
			"Declined: %d\n"+
			"Warnings: %d\n"+
			"Mean latency: %s",
		r.Duration,
		r.Records,
		r.Calls, r.Succeeded, r.Failed, r.Stopped,
		r.Declined,
		r.Warnings,
		r.MeanLatency,
	)
}
