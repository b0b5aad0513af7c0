package progress

import (
	"bytes"
	"testing"
)

func TestScanSpinnerCounts(t *testing.T) {
	var buf bytes.Buffer
	s := newScanSpinner(&buf, "Scanning", true)

	for _, p := range []string{"a.png", "sub", "sub/b.svg"} {
		s.Visit(p)
	}

	if got := s.bar.State().CurrentNum; got != 3 {
		t.Errorf("visited count = %d, want 3", got)
	}
	if err := s.Finish(); err != nil {
		t.Errorf("Finish() error = %v", err)
	}
}

func TestScanSpinnerHidden(t *testing.T) {
	s := NewScanSpinner("Scanning", false)
	s.Visit("a.png")
	if got := s.bar.State().CurrentNum; got != 1 {
		t.Errorf("visited count = %d, want 1", got)
	}
	if err := s.Finish(); err != nil {
		t.Errorf("Finish() error = %v", err)
	}
}
