package diag

// Reporter receives every failure raised by a loader operation exactly once,
// before the error is returned to the caller.
type Reporter interface {
	Report(err *Error)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(err *Error)

// Report calls f(err).
func (f ReporterFunc) Report(err *Error) {
	f(err)
}

// Logger is the subset of a leveled logger used by LoggerReporter.
type Logger interface {
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// LoggerReporter forwards muted errors to Warnf and fatal ones to Errorf.
// A nil Logger discards everything.
type LoggerReporter struct {
	Logger Logger
}

// Report implements Reporter.
func (r LoggerReporter) Report(err *Error) {
	if r.Logger == nil || err == nil {
		return
	}
	if err.Muted() {
		r.Logger.Warnf("%v", err)
		return
	}
	r.Logger.Errorf("%v", err)
}

// Discard is a Reporter that drops every error.
var Discard Reporter = ReporterFunc(func(*Error) {})
