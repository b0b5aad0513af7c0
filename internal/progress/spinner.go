package progress

import (
	"io"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
)

// ScanSpinner shows a spinner with the number of entries examined while a
// directory tree is walked. The total is unknown up front.
type ScanSpinner struct {
	bar          *progressbar.ProgressBar
	showProgress bool
}

// NewScanSpinner creates a spinner writing to stderr so it never mixes with
// HTML written to stdout.
// The showProgress parameter controls whether progress should be shown (typically util.IsATTY() && !quietMode)
func NewScanSpinner(description string, showProgress bool) *ScanSpinner {
	var writer io.Writer = ansi.NewAnsiStderr()
	if !showProgress {
		writer = io.Discard
	}
	return newScanSpinner(writer, description, showProgress)
}

func newScanSpinner(writer io.Writer, description string, showProgress bool) *ScanSpinner {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionShowCount(),
		progressbar.OptionSetItsString("entries"),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetDescription("[cyan]"+description+"[reset]"),
	)
	return &ScanSpinner{bar: bar, showProgress: showProgress}
}

// Visit counts one examined entry. It matches scan.Scanner.OnVisit.
func (s *ScanSpinner) Visit(path string) {
	s.bar.Add(1)
}

// Finish clears the spinner line
func (s *ScanSpinner) Finish() error {
	return s.bar.Finish()
}
