// Package diag carries diagnostic context for loader operations.
//
// Each operation attaches a Frame to its context.Context before doing any
// work. Frames live exactly as long as the derived context, so they are
// released on every exit path without explicit cleanup. Errors created with
// New snapshot the frame chain at the point of failure and carry a Severity
// that tells the host whether processing should stop.
package diag

import (
	"context"
	"fmt"
	"strings"
)

// Severity classifies a reported failure.
type Severity int

const (
	// Fatal failures abort the current operation and must reach the operator.
	Fatal Severity = iota
	// Muted failures are logged but tolerated, e.g. a missing resource that
	// belongs to another mod's domain.
	Muted
)

func (s Severity) String() string {
	switch s {
	case Fatal:
		return "fatal"
	case Muted:
		return "muted"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Arg is a single key/value pair recorded on a Frame.
type Arg struct {
	Key   string
	Value string
}

// Frame describes one operation in the chain that led to an error.
type Frame struct {
	Op   string
	Args []Arg
}

// NewFrame builds a Frame from alternating key/value strings. A trailing key
// without a value is recorded with an empty value.
func NewFrame(op string, kv ...string) Frame {
	f := Frame{Op: op}
	for i := 0; i < len(kv); i += 2 {
		arg := Arg{Key: kv[i]}
		if i+1 < len(kv) {
			arg.Value = kv[i+1]
		}
		f.Args = append(f.Args, arg)
	}
	return f
}

func (f Frame) String() string {
	parts := make([]string, 0, len(f.Args))
	for _, a := range f.Args {
		parts = append(parts, fmt.Sprintf("%s = '%s'", a.Key, a.Value))
	}
	if f.Op == "" {
		return strings.Join(parts, ", ")
	}
	if len(parts) == 0 {
		return f.Op
	}
	return f.Op + ": " + strings.Join(parts, ", ")
}

type framesKey struct{}

// WithFrame returns a copy of ctx with f pushed on top of its frame chain.
func WithFrame(ctx context.Context, f Frame) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	parent := Frames(ctx)
	chain := make([]Frame, len(parent), len(parent)+1)
	copy(chain, parent)
	chain = append(chain, f)
	return context.WithValue(ctx, framesKey{}, chain)
}

// Frames returns the frame chain of ctx, outermost first.
// The returned slice must not be modified.
func Frames(ctx context.Context) []Frame {
	if ctx == nil {
		return nil
	}
	chain, _ := ctx.Value(framesKey{}).([]Frame)
	return chain
}

// Error is a failure annotated with its severity and the frame chain that
// was active when it was raised.
type Error struct {
	Severity Severity
	Frames   []Frame
	Err      error
}

// New wraps err with the frames of ctx. It returns nil when err is nil.
func New(ctx context.Context, severity Severity, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Severity: severity,
		Frames:   Frames(ctx),
		Err:      err,
	}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if len(e.Frames) == 0 {
		return e.Err.Error()
	}

	var b strings.Builder
	b.WriteString(e.Err.Error())
	for i := len(e.Frames) - 1; i >= 0; i-- {
		b.WriteString("\n  at ")
		b.WriteString(e.Frames[i].String())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Muted reports whether the error may be tolerated by the caller.
func (e *Error) Muted() bool {
	return e != nil && e.Severity == Muted
}
