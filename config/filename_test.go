package config

import (
	"strings"
	"testing"
)

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Dark Matter", "Dark Matter"},
		{"..hidden", "hidden"},
		{"tab\tname", "tabname"},
		{"", "_bad_file_name_"},
		{"...", "_bad_file_name_"},
		{"   ", "_bad_file_name_"},
	}
	for _, tt := range tests {
		if got := CleanFileName(tt.in); got != tt.expected {
			t.Errorf("CleanFileName(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}

	if got := CleanFileName("a/b"); strings.ContainsRune(got, '/') {
		t.Errorf("CleanFileName kept path separator: %q", got)
	}
}
