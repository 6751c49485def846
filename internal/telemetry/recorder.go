package telemetry

import (
	"strings"
	"sync"
)

// ReportKind distinguishes the API method a Report was recorded through.
type ReportKind int

const (
	REPORT_BROKEN ReportKind = iota
	REPORT_WARNING
	REPORT_DEBUG
	REPORT_COUNT
	REPORT_INFO
)

// Report is a single call made against a Recorder.
type Report struct {
	Kind   ReportKind
	ID     string
	Params []any
	Count  int64
}

// Recorder is an in-memory API used to assert on what a component reported.
type Recorder struct {
	mu      sync.Mutex
	reports []Report
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(report Report) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, report)
}

func (r *Recorder) ReportBroken(id string, params ...any) {
	r.record(Report{Kind: REPORT_BROKEN, ID: id, Params: params})
}

func (r *Recorder) ReportWarning(id string, params ...any) {
	r.record(Report{Kind: REPORT_WARNING, ID: id, Params: params})
}

func (r *Recorder) ReportInfo(id string, params ...any) {
	r.record(Report{Kind: REPORT_INFO, ID: id, Params: params})
}

func (r *Recorder) ReportDebug(msg string, params ...any) {
	r.record(Report{Kind: REPORT_DEBUG, ID: msg, Params: params})
}

func (r *Recorder) ReportCount(id string, count int64) {
	r.record(Report{Kind: REPORT_COUNT, ID: id, Count: count})
}

// Find returns every recorded report of the given kind whose id ends with suffix,
// ScopedAPI prefixes are ignored this way.
func (r *Recorder) Find(kind ReportKind, suffix string) []Report {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Report
	for _, report := range r.reports {
		if report.Kind == kind && strings.HasSuffix(report.ID, suffix) {
			out = append(out, report)
		}
	}
	return out
}

// Count returns the last value reported through ReportCount for an id ending with suffix.
func (r *Recorder) Count(suffix string) (int64, bool) {
	found := r.Find(REPORT_COUNT, suffix)
	if len(found) == 0 {
		return 0, false
	}
	return found[len(found)-1].Count, true
}
