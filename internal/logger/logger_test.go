package logger

import "testing"

func TestParseLevel(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		if !ParseLevel(lvl) {
			t.Errorf("ParseLevel(%q) = false, want true", lvl)
		}
	}
	for _, lvl := range []string{"", "trace", "INFO"} {
		if ParseLevel(lvl) {
			t.Errorf("ParseLevel(%q) = true, want false", lvl)
		}
	}
}

func TestNewAndWith(t *testing.T) {
	for _, pretty := range []bool{true, false} {
		log := New("error", pretty)
		child := log.With(String("component", "test"))
		child.Info("not emitted at error level", Int("n", 1))
		_ = log.Sync()
	}
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Error("discarded", String("id", "a"))
	log.Infof("discarded %d", 1)
}
