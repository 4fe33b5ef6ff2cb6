package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestPlainSinkAndLevels(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)

	prev := GetLevel()
	defer SetLevel(prev)

	logger := New("logtest")

	SetLevel(Warning)
	logger.Infof("hidden %d", 1)
	logger.Warningf("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected info message to be filtered at warning level; got %q", out)
	}
	if !strings.Contains(out, "[logtest] [WARNING] shown 2") {
		t.Fatalf("expected plain warning line; got %q", out)
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debug("now visible")
	if !strings.Contains(buf.String(), "[DEBUG] now visible") {
		t.Fatalf("expected debug line after SetLevel(Debug); got %q", buf.String())
	}
}

func TestSetSinkKeepsLevel(t *testing.T) {
	prev := GetLevel()
	defer SetLevel(prev)

	SetLevel(Error)

	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)

	if GetLevel() != Error {
		t.Fatalf("expected level to survive SetSink; got %d", GetLevel())
	}

	New("logtest").Warning("dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below error level; got %q", buf.String())
	}
}
