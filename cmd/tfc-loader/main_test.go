package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestCLILoggerWritesToStderr(t *testing.T) {
	if got := newCLILogger().out; got != color.Error {
		t.Errorf("newCLILogger().out = %v, want color.Error", got)
	}
}

func TestCLILogger(t *testing.T) {
	var buf bytes.Buffer
	l := &cliLogger{out: &buf}

	l.Infof("Assets: %s", "/mods/tfc")
	l.Warnf("missing %s", "forge:ingots")
	l.Errorf("broken %s", "ore")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}

	tests := []struct {
		line int
		want string
	}{
		{line: 0, want: "Assets: /mods/tfc"},
		{line: 1, want: "⚠ missing forge:ingots"},
		{line: 2, want: "✗ broken ore"},
	}
	for _, tt := range tests {
		if !strings.Contains(lines[tt.line], tt.want) {
			t.Errorf("line %d = %q, want it to contain %q", tt.line, lines[tt.line], tt.want)
		}
	}
}
