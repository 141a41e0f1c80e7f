package validator

import "github.com/wadoon/hf3lint/pkg/lint/report"

// Recorder appends numbered entries to a report.
type Recorder struct {
	report *report.Report
	next   int
}

// NewRecorder returns a Recorder writing to rep. Numbering continues after
// any entries rep already holds.
func NewRecorder(rep *report.Report) *Recorder {
	return &Recorder{report: rep, next: rep.Len()}
}

// Report returns the report being written.
func (r *Recorder) Report() *report.Report {
	return r.report
}

func (r *Recorder) add(level report.Level, message, path string) {
	r.next++
	r.report.Add(report.Entry{
		Level:   level,
		Number:  r.next,
		Message: message,
		Path:    path,
	})
}

// AddError records an error unconditionally.
func (r *Recorder) AddError(message, path string) {
	r.add(report.Error, message, path)
}

// AddWarning records a warning unconditionally.
func (r *Recorder) AddWarning(message, path string) {
	r.add(report.Warning, message, path)
}

// AddInformation records an information entry unconditionally.
func (r *Recorder) AddInformation(message, path string) {
	r.add(report.Information, message, path)
}

// Error records an error when ok is false and returns ok.
func (r *Recorder) Error(ok bool, message, path string) bool {
	if !ok {
		r.AddError(message, path)
	}
	return ok
}

// Warning records a warning when ok is false and returns ok.
func (r *Recorder) Warning(ok bool, message, path string) bool {
	if !ok {
		r.AddWarning(message, path)
	}
	return ok
}

// Information records an information entry when ok is false and returns ok.
func (r *Recorder) Information(ok bool, message, path string) bool {
	if !ok {
		r.AddInformation(message, path)
	}
	return ok
}
