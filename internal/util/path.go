package util

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// IsATTY checks if stdout is a terminal
func IsATTY() bool {
	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// FileURL converts an absolute filesystem path into a file:// URL.
// Windows drive paths gain the leading slash browsers expect.
func FileURL(absPath string) string {
	p := filepath.ToSlash(absPath)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String()
}

// URLPath escapes each segment of a slash-separated relative path.
func URLPath(rel string) string {
	segments := strings.Split(filepath.ToSlash(rel), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
