package diag

import "velox/internal/source"

// Reporter is the minimal contract for phases that emit diagnostics.
// Implementations: BagReporter (collects into a Bag), NopReporter.
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string)
}

// BagReporter writes every report into a *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, primary source.Span, msg string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
	})
}

// NopReporter discards everything.
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, source.Span, string) {}

// ReportError is a shortcut for SevError diagnostics.
func ReportError(r Reporter, code Code, primary source.Span, msg string) {
	if r != nil {
		r.Report(code, SevError, primary, msg)
	}
}
