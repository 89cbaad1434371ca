package diag

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestWithFrameScoping(t *testing.T) {
	root := context.Background()
	outer := WithFrame(root, NewFrame("outer", "identifier", "tfc:ore"))
	inner := WithFrame(outer, NewFrame("inner", "resource_type", "models", "resource_root", "assets"))

	if got := len(Frames(root)); got != 0 {
		t.Fatalf("root context has %d frames, want 0", got)
	}
	if got := len(Frames(outer)); got != 1 {
		t.Fatalf("outer context has %d frames, want 1", got)
	}
	if got := len(Frames(inner)); got != 2 {
		t.Fatalf("inner context has %d frames, want 2", got)
	}

	// A sibling pushed on outer must not see inner's frame.
	sibling := WithFrame(outer, NewFrame("sibling"))
	frames := Frames(sibling)
	if len(frames) != 2 || frames[1].Op != "sibling" {
		t.Errorf("sibling frames = %v, want [outer sibling]", frames)
	}
	if Frames(inner)[1].Op != "inner" {
		t.Errorf("inner frame was overwritten by sibling push")
	}
}

func TestErrorCarriesChain(t *testing.T) {
	sentinel := errors.New("resource not found")
	ctx := WithFrame(context.Background(), NewFrame("load_document", "identifier", "othermod:foo"))

	err := New(ctx, Muted, fmt.Errorf("%w: %s", sentinel, "/tmp/x.json"))
	if !errors.Is(err, sentinel) {
		t.Fatalf("errors.Is(err, sentinel) = false")
	}
	if !err.Muted() {
		t.Errorf("Muted() = false, want true")
	}

	msg := err.Error()
	if !strings.Contains(msg, "identifier = 'othermod:foo'") {
		t.Errorf("Error() = %q, missing identifier frame", msg)
	}

	var diagErr *Error
	if !errors.As(fmt.Errorf("wrapped: %w", err), &diagErr) {
		t.Fatalf("errors.As failed to find *Error")
	}

	if New(ctx, Fatal, nil) != nil {
		t.Errorf("New with nil error should return nil")
	}
}

func TestNewFrameString(t *testing.T) {
	tests := []struct {
		frame Frame
		want  string
	}{
		{frame: NewFrame("op"), want: "op"},
		{frame: NewFrame("", "identifier", "ore"), want: "identifier = 'ore'"},
		{frame: NewFrame("op", "a", "1", "b"), want: "op: a = '1', b = ''"},
	}

	for _, tt := range tests {
		if got := tt.frame.String(); got != tt.want {
			t.Errorf("Frame.String() = %q, want %q", got, tt.want)
		}
	}
}

type recordingLogger struct {
	warns  []string
	errors []string
}

func (l *recordingLogger) Warnf(format string, args ...any) {
	l.warns = append(l.warns, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Errorf(format string, args ...any) {
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

func TestLoggerReporter(t *testing.T) {
	logger := &recordingLogger{}
	r := LoggerReporter{Logger: logger}

	r.Report(New(context.Background(), Muted, errors.New("quiet")))
	r.Report(New(context.Background(), Fatal, errors.New("loud")))
	r.Report(nil)

	if len(logger.warns) != 1 || logger.warns[0] != "quiet" {
		t.Errorf("warns = %v, want [quiet]", logger.warns)
	}
	if len(logger.errors) != 1 || logger.errors[0] != "loud" {
		t.Errorf("errors = %v, want [loud]", logger.errors)
	}

	// nil logger is silent
	LoggerReporter{}.Report(New(context.Background(), Fatal, errors.New("x")))
}

func TestSeverityString(t *testing.T) {
	if Fatal.String() != "fatal" || Muted.String() != "muted" {
		t.Errorf("unexpected severity names: %s, %s", Fatal, Muted)
	}
	if got := Severity(7).String(); got != "severity(7)" {
		t.Errorf("Severity(7).String() = %q", got)
	}
}
