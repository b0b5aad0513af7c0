// Package viewer serves the icons page and the scanned images over HTTP.
package viewer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/klauspost/compress/gzhttp"
	"github.com/pkg/browser"
	"github.com/tympanix/iconview/internal/render"
	"github.com/tympanix/iconview/internal/scan"
	"github.com/tympanix/iconview/internal/util"
)

const iconsPrefix = "/icons/"

const shutdownTimeout = 5 * time.Second

var openURL = browser.OpenURL

// IconURL is the route an icon is served from.
func IconURL(icon scan.Icon) string {
	return iconsPrefix + util.URLPath(icon.Path)
}

type handler struct {
	result *scan.Result
	icons  map[string]scan.Icon
	page   []byte
	logger util.Logger
}

// NewHandler renders the page once and returns a handler serving it at "/".
// Only files found by the scan are reachable under /icons/.
func NewHandler(res *scan.Result, opts render.Options, logger util.Logger) (http.Handler, error) {
	var buf bytes.Buffer
	if err := render.Render(&buf, render.NewPage(res, opts, IconURL)); err != nil {
		return nil, err
	}

	icons := make(map[string]scan.Icon, len(res.Icons))
	for _, icon := range res.Icons {
		icons[icon.Path] = icon
	}
	h := &handler{result: res, icons: icons, page: buf.Bytes(), logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.servePage)
	mux.HandleFunc("GET "+iconsPrefix+"{path...}", h.serveIcon)

	return gzhttp.GzipHandler(mux), nil
}

func (h *handler) servePage(w http.ResponseWriter, r *http.Request) {
	h.logger.VerbosePrintf("GET %s\n", r.URL.Path)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write(h.page); err != nil {
		h.logger.VerbosePrintf("GET %s: write failed: %v\n", r.URL.Path, err)
	}
}

func (h *handler) serveIcon(w http.ResponseWriter, r *http.Request) {
	rel := r.PathValue("path")
	icon, ok := h.icons[rel]
	if !ok {
		h.logger.VerbosePrintf("GET %s: not a scanned icon\n", r.URL.Path)
		http.NotFound(w, r)
		return
	}
	h.logger.VerbosePrintf("GET %s\n", r.URL.Path)
	http.ServeFile(w, r, h.result.AbsPath(icon))
}

// URL returns the address a browser should open for ln.
func URL(ln net.Listener) string {
	addr, ok := ln.Addr().(*net.TCPAddr)
	if !ok {
		return "http://" + ln.Addr().String() + "/"
	}
	host := "localhost"
	if !addr.IP.IsUnspecified() {
		host = addr.IP.String()
	}
	return fmt.Sprintf("http://%s/", net.JoinHostPort(host, fmt.Sprint(addr.Port)))
}

// Open launches the default browser on url.
func Open(url string) error {
	if err := openURL(url); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}

// Serve serves h on ln until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, ln net.Listener, h http.Handler, logger util.Logger) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Serve(ln)
	}()

	select {
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("viewer stopped: %w", err)
	case <-ctx.Done():
	}

	logger.VerbosePrintln("Shutting down viewer")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down viewer: %w", err)
	}
	return nil
}
