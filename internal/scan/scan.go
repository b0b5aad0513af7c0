// Package scan finds image files under a folder.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/tympanix/iconview/internal/util"
)

var (
	// ErrNoIcons is returned by callers that require at least one icon.
	ErrNoIcons = errors.New("no icons found in the selected folder and its subfolders")
	// ErrNotDirectory is returned when the scan root is not a directory.
	ErrNotDirectory = errors.New("not a directory")
)

var supportedExtensions = []string{".png", ".jpg", ".jpeg", ".svg", ".ico"}

// SupportedExtensions returns the fixed extension allow-list.
func SupportedExtensions() []string {
	return append([]string(nil), supportedExtensions...)
}

// IsSupported reports whether name carries an allowed extension, ignoring case.
// A name whose only dot is its first character, like ".png", has no extension.
func IsSupported(name string) bool {
	base := path.Base(name)
	if strings.LastIndex(base, ".") <= 0 {
		return false
	}
	ext := strings.ToLower(path.Ext(base))
	for _, e := range supportedExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Icon is a matched image file.
type Icon struct {
	Path string // slash-separated, relative to the scan root
	Size int64
}

// Label returns the relative path with the host separator.
func (i Icon) Label() string {
	return filepath.FromSlash(i.Path)
}

// Result holds the icons of one scan in discovery order.
type Result struct {
	Root    string
	Icons   []Icon
	Visited int
}

// AbsPath returns the on-disk location of icon.
func (r *Result) AbsPath(icon Icon) string {
	return filepath.Join(r.Root, filepath.FromSlash(icon.Path))
}

// TotalSize sums the sizes of all icons.
func (r *Result) TotalSize() int64 {
	var total int64
	for _, icon := range r.Icons {
		total += icon.Size
	}
	return total
}

// Scanner walks a directory tree depth-first and collects supported images.
type Scanner struct {
	// Glob optionally narrows the result with comma-separated doublestar patterns.
	Glob string
	// OnVisit is called for every entry examined.
	OnVisit func(path string)
}

// ScanDir scans the folder at root on the local filesystem.
func (s *Scanner) ScanDir(root string) (*Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", root, ErrNotDirectory)
	}

	res, err := s.Scan(os.DirFS(root))
	if err != nil {
		return nil, err
	}
	res.Root = root
	return res, nil
}

// Scan walks fsys from its root. Symlinks are followed; a directory already
// on the current descent path is not entered again.
func (s *Scanner) Scan(fsys fs.FS) (*Result, error) {
	gp := util.ParseGlobPattern(s.Glob)
	if err := gp.Validate(); err != nil {
		return nil, err
	}

	rootInfo, err := fs.Stat(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to stat scan root: %w", err)
	}

	w := &walker{scanner: s, fsys: fsys, glob: gp, result: &Result{}}
	if err := w.walk(".", []fs.FileInfo{rootInfo}); err != nil {
		return nil, err
	}
	return w.result, nil
}

type walker struct {
	scanner *Scanner
	fsys    fs.FS
	glob    *util.GlobPattern
	result  *Result
}

func (w *walker) walk(dir string, ancestors []fs.FileInfo) error {
	entries, err := fs.ReadDir(w.fsys, dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		rel := path.Join(dir, entry.Name())
		w.result.Visited++
		if w.scanner.OnVisit != nil {
			w.scanner.OnVisit(rel)
		}

		info, err := fs.Stat(w.fsys, rel)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", rel, err)
		}

		switch {
		case info.IsDir():
			if visited(ancestors, info) {
				continue
			}
			if err := w.walk(rel, append(ancestors, info)); err != nil {
				return err
			}
		case info.Mode().IsRegular() && IsSupported(entry.Name()):
			if !w.glob.Empty() {
				matched, err := w.glob.Match(rel)
				if err != nil {
					return err
				}
				if !matched {
					continue
				}
			}
			w.result.Icons = append(w.result.Icons, Icon{Path: rel, Size: info.Size()})
		}
	}
	return nil
}

func visited(ancestors []fs.FileInfo, info fs.FileInfo) bool {
	for _, a := range ancestors {
		if os.SameFile(a, info) {
			return true
		}
	}
	return false
}
