package operations

import (
	"fmt"
	"path/filepath"

	"github.com/tympanix/iconview/internal/output"
	"github.com/tympanix/iconview/internal/progress"
	"github.com/tympanix/iconview/internal/scan"
	"github.com/tympanix/iconview/internal/util"
)

// scanFolder scans folder with progress and reporting, and fails with
// scan.ErrNoIcons when nothing matched.
func scanFolder(folder, globPattern string, logger util.Logger, quietMode, verboseMode bool) (*scan.Result, error) {
	if folder == "" {
		return nil, ErrNoFolder
	}

	root, err := filepath.Abs(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", folder, err)
	}

	report := output.NewScanReport(root, logger, quietMode, verboseMode)
	report.PrintHeader()

	spinner := progress.NewScanSpinner("Scanning", util.IsATTY() && !quietMode)
	scanner := &scan.Scanner{Glob: globPattern, OnVisit: spinner.Visit}
	res, err := scanner.ScanDir(root)
	spinner.Finish()
	if err != nil {
		return nil, err
	}

	report.RecordIcons(res)
	report.PrintSummary(res)

	if len(res.Icons) == 0 {
		return nil, scan.ErrNoIcons
	}
	return res, nil
}
