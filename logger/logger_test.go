package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelsGoToTheirWriters(t *testing.T) {
	var out, errOut bytes.Buffer
	l := New(&out, &errOut)

	l.Info("round %d", 3)
	l.Warn("layout fallback")
	l.Error("boom")
	l.Event("reset", "abc", "score=10")

	o := out.String()
	for _, want := range []string{"[QSNAKE-INFO] ", "round 3", "[QSNAKE-WARN] ", "[EVENT:reset] Actor:abc | score=10"} {
		if !strings.Contains(o, want) {
			t.Errorf("stdout missing %q in %q", want, o)
		}
	}
	if strings.Contains(o, "boom") {
		t.Error("error line leaked to stdout")
	}
	if !strings.Contains(errOut.String(), "[QSNAKE-ERROR] ") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Info("nothing")
	l.Error("nothing")
}
