package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestToZapLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		DebugLevel: zapcore.DebugLevel,
		InfoLevel:  zapcore.InfoLevel,
		WarnLevel:  zapcore.WarnLevel,
		ErrorLevel: zapcore.ErrorLevel,
		"bogus":    defaultZapLevel,
	}
	for in, want := range cases {
		if got := toZapLevel(in); got != want {
			t.Errorf("toZapLevel(%q): want %v, got %v", in, want, got)
		}
	}
}

func TestSetLevel_PropagatesToChildren(t *testing.T) {
	l := New(InfoLevel)
	child := l.With("system_id", 1)

	if child.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("debug should be disabled at info level")
	}
	l.SetLevel(DebugLevel)
	if !child.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("child should follow parent level change")
	}
}

func TestGet_ReappliesLevel(t *testing.T) {
	l := Get(ErrorLevel)
	if l.Desugar().Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("info should be disabled at error level")
	}
	if Get(InfoLevel) != l {
		t.Fatalf("Get must return the process-wide logger")
	}
	if !l.Desugar().Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("second Get should lower the level to info")
	}
}

func TestValid(t *testing.T) {
	for _, lvl := range []string{DebugLevel, InfoLevel, WarnLevel, ErrorLevel} {
		if !Valid(lvl) {
			t.Errorf("%q should be valid", lvl)
		}
	}
	if Valid("verbose") {
		t.Errorf("verbose should be rejected")
	}
}
