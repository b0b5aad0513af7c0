package operations

import (
	"context"
	"fmt"
	"net"

	"github.com/tympanix/iconview/internal/config"
	"github.com/tympanix/iconview/internal/viewer"
)

// Serve scans folder and serves the viewer on cfg.Addr until ctx is cancelled.
func Serve(ctx context.Context, folder string, cfg *config.Config, opts *ServeOptions) error {
	pageOpts, err := cfg.RenderOptions()
	if err != nil {
		return err
	}

	res, err := scanFolder(folder, opts.GlobPattern, opts.Logger, opts.QuietMode, opts.VerboseMode)
	if err != nil {
		return err
	}

	handler, err := viewer.NewHandler(res, pageOpts, opts.Logger)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Addr, err)
	}

	url := viewer.URL(ln)
	opts.Logger.Printf("Serving %d icons at %s\n", len(res.Icons), url)
	if opts.Open {
		if err := viewer.Open(url); err != nil {
			opts.Logger.Printf("Could not open browser: %v\n", err)
		}
	}

	return viewer.Serve(ctx, ln, handler, opts.Logger)
}
