package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/tympanix/iconview/internal/scan"
	"github.com/tympanix/iconview/internal/util"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{"zero", 0, "0 B"},
		{"bytes", 512, "512 B"},
		{"1 KiB", 1024, "1.0 KiB"},
		{"1.5 KiB", 1536, "1.5 KiB"},
		{"1 MiB", 1048576, "1.0 MiB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatBytes(tt.bytes)
			if result != tt.expected {
				t.Errorf("formatBytes(%d) = %s, want %s", tt.bytes, result, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		contains string
	}{
		{"milliseconds", 500 * time.Millisecond, "ms"},
		{"seconds", 5 * time.Second, "s"},
		{"minutes", 2 * time.Minute, "m"},
		{"hours", 2 * time.Hour, "h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatDuration(tt.duration)
			if !strings.Contains(result, tt.contains) {
				t.Errorf("formatDuration(%v) = %s, should contain %s", tt.duration, result, tt.contains)
			}
		})
	}
}

func testResult() *scan.Result {
	return &scan.Result{
		Root:    "/icons",
		Visited: 5,
		Icons: []scan.Icon{
			{Path: "a.png", Size: 1024},
			{Path: "sub/b.svg", Size: 512},
		},
	}
}

func TestScanReport(t *testing.T) {
	var buf bytes.Buffer
	report := NewScanReport("/icons", util.NewLogger(&buf), false, false)

	report.PrintHeader()
	report.RecordIcons(testResult())
	report.PrintSummary(testResult())

	out := buf.String()
	if !strings.Contains(out, "Scanning /icons") {
		t.Errorf("header missing, got %q", out)
	}
	if !strings.Contains(out, "Icons found: 2, scanned: 5, size: 1.5 KiB") {
		t.Errorf("summary missing, got %q", out)
	}
	if strings.Contains(out, "✓") {
		t.Errorf("per-icon lines printed outside verbose mode: %q", out)
	}
}

func TestScanReportVerbose(t *testing.T) {
	var buf bytes.Buffer
	report := NewScanReport("/icons", util.NewVerboseLogger(&buf), false, true)

	report.PrintHeader()
	report.RecordIcons(testResult())

	out := buf.String()
	if !strings.Contains(out, "Extensions: [.png .jpg .jpeg .svg .ico]") {
		t.Errorf("extension list missing, got %q", out)
	}
	if !strings.Contains(out, "✓ a.png (1.0 KiB)") {
		t.Errorf("icon line missing, got %q", out)
	}
}

func TestScanReportQuiet(t *testing.T) {
	var buf bytes.Buffer
	report := NewScanReport("/icons", util.NewVerboseLogger(&buf), true, true)

	report.PrintHeader()
	report.RecordIcons(testResult())
	report.PrintSummary(testResult())

	if buf.Len() != 0 {
		t.Errorf("quiet report wrote %q", buf.String())
	}
}
