package operations

import (
	"errors"
	"io"

	"github.com/tympanix/iconview/internal/scan"
	"github.com/tympanix/iconview/internal/util"
)

// ErrNoFolder is returned when no folder was given to scan
var ErrNoFolder = errors.New("no folder selected")

const (
	MessageNoFolder = "Please select a folder."
	MessageNoIcons  = "No icons found in the selected folder and its subfolders."
)

// RenderOptions holds options for render operations
type RenderOptions struct {
	Output      string    // Destination file; empty or "-" writes to Stdout
	Stdout      io.Writer // Used when Output is empty or "-"
	GlobPattern string    // Optional glob pattern(s) to narrow the icons (comma-separated, supports negation with !)
	Logger      util.Logger
	QuietMode   bool
	VerboseMode bool
}

// WritesToStdout reports whether the page goes to Stdout
func (opts *RenderOptions) WritesToStdout() bool {
	return opts.Output == "" || opts.Output == "-"
}

// ServeOptions holds options for serve operations
type ServeOptions struct {
	Open        bool   // Open the viewer in the default browser
	GlobPattern string // Optional glob pattern(s) to narrow the icons
	Logger      util.Logger
	QuietMode   bool
	VerboseMode bool
}

// Status represents the exit status of an operation
type Status int

const (
	StatusSuccess  Status = 0
	StatusError    Status = 1
	StatusNoFolder Status = 64
	StatusNoIcons  Status = 66
)

// StatusFor maps an operation error to the process exit status
func StatusFor(err error) Status {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, ErrNoFolder):
		return StatusNoFolder
	case errors.Is(err, scan.ErrNoIcons):
		return StatusNoIcons
	default:
		return StatusError
	}
}

// UserMessage is the text shown to the user for err
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrNoFolder):
		return MessageNoFolder
	case errors.Is(err, scan.ErrNoIcons):
		return MessageNoIcons
	default:
		return "Error: " + err.Error()
	}
}
