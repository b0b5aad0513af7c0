package operations

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tympanix/iconview/internal/config"
	"github.com/tympanix/iconview/internal/render"
)

// Render scans folder and writes a standalone page referencing the icons
// by file:// URI.
func Render(folder string, cfg *config.Config, opts *RenderOptions) error {
	pageOpts, err := cfg.RenderOptions()
	if err != nil {
		return err
	}

	res, err := scanFolder(folder, opts.GlobPattern, opts.Logger, opts.QuietMode, opts.VerboseMode)
	if err != nil {
		return err
	}

	page := render.NewPage(res, pageOpts, render.FileURL(res))

	if opts.WritesToStdout() {
		return render.Render(opts.Stdout, page)
	}

	if err := writePage(opts.Output, page); err != nil {
		return err
	}
	opts.Logger.Printf("Wrote %d icons to %s\n", len(page.Cards), opts.Output)
	return nil
}

// writePage renders into a temporary file next to filename and renames it
// into place, so a failed render never leaves a truncated page behind.
func writePage(filename string, page *render.Page) error {
	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, ".iconview-*.html")
	if err != nil {
		return fmt.Errorf("failed to create output file in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	if err := render.Render(w, page); err != nil {
		tmp.Close()
		return err
	}
	if err := flushAndClose(w, tmp); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", filename, err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("failed to move page to %s: %w", filename, err)
	}
	return nil
}

func flushAndClose(w *bufio.Writer, c io.Closer) error {
	if err := w.Flush(); err != nil {
		c.Close()
		return err
	}
	return c.Close()
}
