package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/tympanix/iconview/internal/render"
)

const DefaultAddr = "127.0.0.1:0"

// Config holds the viewer settings shared by render and serve
type Config struct {
	Title   string `toml:"title"`
	Theme   string `toml:"theme"`
	Columns int    `toml:"columns"`
	Addr    string `toml:"addr"`
}

// New creates a new Config with values from environment variables or defaults
func New() *Config {
	return &Config{
		Title:   getenv("ICONVIEW_TITLE", render.DefaultTitle),
		Theme:   getenv("ICONVIEW_THEME", render.DefaultTheme.String()),
		Columns: getenvInt("ICONVIEW_COLUMNS", render.DefaultColumns),
		Addr:    getenv("ICONVIEW_ADDR", DefaultAddr),
	}
}

// LoadFile overlays the values set in a TOML file onto c. Keys missing from
// the file keep their current value.
func (c *Config) LoadFile(filename string) error {
	if _, err := toml.DecodeFile(filename, c); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return nil
}

// RenderOptions validates the page settings and converts them for the renderer
func (c *Config) RenderOptions() (render.Options, error) {
	theme, err := render.ParseTheme(c.Theme)
	if err != nil {
		return render.Options{}, err
	}
	opts := render.Options{
		Title:   c.Title,
		Theme:   theme,
		Columns: c.Columns,
	}
	if err := opts.Validate(); err != nil {
		return render.Options{}, err
	}
	return opts, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getenvInt ignores values that are not integers and keeps the fallback.
func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
