package util

import (
	"runtime"
	"testing"
)

func TestFileURL(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix paths only")
	}

	tests := []struct {
		path string
		want string
	}{
		{path: "/tmp/icons/logo.png", want: "file:///tmp/icons/logo.png"},
		{path: "/tmp/my icons/a#1.svg", want: "file:///tmp/my%20icons/a%231.svg"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FileURL(tt.path); got != tt.want {
				t.Errorf("FileURL(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestURLPath(t *testing.T) {
	tests := []struct {
		rel  string
		want string
	}{
		{rel: "logo.png", want: "logo.png"},
		{rel: "sub dir/icon?.svg", want: "sub%20dir/icon%3F.svg"},
		{rel: "a/b/c.ico", want: "a/b/c.ico"},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			if got := URLPath(tt.rel); got != tt.want {
				t.Errorf("URLPath(%q) = %q, want %q", tt.rel, got, tt.want)
			}
		})
	}
}
