package output

import (
	"fmt"
	"time"

	"github.com/tympanix/iconview/internal/scan"
	"github.com/tympanix/iconview/internal/util"
)

// ScanReport prints what a scan found. Per-icon lines only appear in verbose mode.
type ScanReport struct {
	root        string
	startTime   time.Time
	endTime     time.Time
	logger      util.Logger
	quietMode   bool
	verboseMode bool
}

func NewScanReport(root string, logger util.Logger, quietMode, verboseMode bool) *ScanReport {
	return &ScanReport{
		root:        root,
		startTime:   time.Now(),
		logger:      logger,
		quietMode:   quietMode,
		verboseMode: verboseMode,
	}
}

func (r *ScanReport) PrintHeader() {
	if r.quietMode {
		return
	}
	r.logger.Printf("Scanning %s\n", r.root)
	r.logger.VerbosePrintf("Extensions: %v\n", scan.SupportedExtensions())
}

func (r *ScanReport) RecordIcons(res *scan.Result) {
	r.endTime = time.Now()
	if r.quietMode || !r.verboseMode {
		return
	}
	for _, icon := range res.Icons {
		r.logger.VerbosePrintf("✓ %s (%s)\n", icon.Label(), formatBytes(icon.Size))
	}
}

func (r *ScanReport) PrintSummary(res *scan.Result) {
	if r.endTime.IsZero() {
		r.endTime = time.Now()
	}
	if r.quietMode {
		return
	}

	summary := fmt.Sprintf("Icons found: %d", len(res.Icons))
	summary += fmt.Sprintf(", scanned: %d", res.Visited)
	summary += fmt.Sprintf(", size: %s", formatBytes(res.TotalSize()))
	summary += fmt.Sprintf(", time: %s", formatDuration(r.endTime.Sub(r.startTime)))

	r.logger.Println(summary)
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", d.Seconds()*1000)
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%.1fm", d.Minutes())
	}
	return fmt.Sprintf("%.1fh", d.Hours())
}
