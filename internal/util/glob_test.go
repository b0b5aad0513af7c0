package util

import (
	"testing"
)

func TestParseGlobPattern(t *testing.T) {
	tests := []struct {
		name         string
		globPattern  string
		wantPositive []string
		wantNegative []string
	}{
		{
			name:         "empty pattern",
			globPattern:  "",
			wantPositive: nil,
			wantNegative: nil,
		},
		{
			name:         "single positive pattern",
			globPattern:  "**/*.svg",
			wantPositive: []string{"**/*.svg"},
			wantNegative: nil,
		},
		{
			name:         "single negative pattern",
			globPattern:  "!**/*.ico",
			wantPositive: nil,
			wantNegative: []string{"**/*.ico"},
		},
		{
			name:         "mixed positive and negative patterns",
			globPattern:  "icons/**, !icons/legacy/**",
			wantPositive: []string{"icons/**"},
			wantNegative: []string{"icons/legacy/**"},
		},
		{
			name:         "pattern with empty elements",
			globPattern:  "**/*.png,,**/*.jpg",
			wantPositive: []string{"**/*.png", "**/*.jpg"},
			wantNegative: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gp := ParseGlobPattern(tt.globPattern)

			if len(gp.positivePatterns) != len(tt.wantPositive) {
				t.Fatalf("ParseGlobPattern() positive patterns = %v, want %v", gp.positivePatterns, tt.wantPositive)
			}
			for i, want := range tt.wantPositive {
				if gp.positivePatterns[i] != want {
					t.Errorf("ParseGlobPattern() positive pattern[%d] = %v, want %v", i, gp.positivePatterns[i], want)
				}
			}

			if len(gp.negativePatterns) != len(tt.wantNegative) {
				t.Fatalf("ParseGlobPattern() negative patterns = %v, want %v", gp.negativePatterns, tt.wantNegative)
			}
			for i, want := range tt.wantNegative {
				if gp.negativePatterns[i] != want {
					t.Errorf("ParseGlobPattern() negative pattern[%d] = %v, want %v", i, gp.negativePatterns[i], want)
				}
			}

			if gp.Empty() != (tt.globPattern == "") {
				t.Errorf("Empty() = %v for pattern %q", gp.Empty(), tt.globPattern)
			}
		})
	}
}

func TestGlobPatternMatch(t *testing.T) {
	tests := []struct {
		name        string
		globPattern string
		path        string
		want        bool
	}{
		{
			name:        "empty pattern matches all",
			globPattern: "",
			path:        "assets/logo.png",
			want:        true,
		},
		{
			name:        "recursive wildcard match",
			globPattern: "**/*.svg",
			path:        "assets/icons/arrow.svg",
			want:        true,
		},
		{
			name:        "recursive wildcard no match",
			globPattern: "**/*.svg",
			path:        "assets/icons/arrow.png",
			want:        false,
		},
		{
			name:        "directory prefix",
			globPattern: "icons/**",
			path:        "icons/small/a.png",
			want:        true,
		},
		{
			name:        "negative pattern excludes match",
			globPattern: "icons/**,!icons/legacy/**",
			path:        "icons/legacy/old.ico",
			want:        false,
		},
		{
			name:        "only negative pattern keeps other paths",
			globPattern: "!**/*.ico",
			path:        "favicon.png",
			want:        true,
		},
		{
			name:        "only negative pattern drops matched path",
			globPattern: "!**/*.ico",
			path:        "favicon.ico",
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gp := ParseGlobPattern(tt.globPattern)
			got, err := gp.Match(tt.path)
			if err != nil {
				t.Fatalf("Match() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestGlobPatternValidate(t *testing.T) {
	if err := ParseGlobPattern("**/*.png,!tmp/**").Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
	if err := ParseGlobPattern("[invalid").Validate(); err == nil {
		t.Error("Validate() expected error for invalid pattern, got nil")
	}
	if err := ParseGlobPattern("**/*.png,![bad").Validate(); err == nil {
		t.Error("Validate() expected error for invalid negative pattern, got nil")
	}
}
