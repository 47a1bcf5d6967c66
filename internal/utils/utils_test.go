//nolint:nolintlint,revive // utils is a common and acceptable package name for utility functions.
package utils

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsTextContentType tests the IsTextContentType function.
func TestIsTextContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		expected    bool
	}{
		{
			name:        "plain text",
			contentType: "text/plain",
			expected:    true,
		},
		{
			name:        "html",
			contentType: "text/html; charset=utf-8",
			expected:    true,
		},
		{
			name:        "json",
			contentType: "application/json",
			expected:    true,
		},
		{
			name:        "json with charset",
			contentType: "application/json; charset=utf-8",
			expected:    true,
		},
		{
			name:        "problem json",
			contentType: "application/problem+json",
			expected:    true,
		},
		{
			name:        "json with unsupported charset",
			contentType: "application/json; charset=windows-1251",
			expected:    false,
		},
		{
			name:        "binary",
			contentType: "application/octet-stream",
			expected:    false,
		},
		{
			name:        "image",
			contentType: "image/png",
			expected:    false,
		},
		{
			name:        "empty",
			contentType: "",
			expected:    false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, IsTextContentType(tt.contentType))
		})
	}
}

// TestReadUniqueLinesFromFile tests the ReadUniqueLinesFromFile function.
func TestReadUniqueLinesFromFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "unique lines",
			content:  "one\ntwo\nthree\n",
			expected: []string{"one", "two", "three"},
		},
		{
			name:     "duplicates removed",
			content:  "one\ntwo\none\n",
			expected: []string{"one", "two"},
		},
		{
			name:     "empty lines and whitespace skipped",
			content:  "one\n\n  \n two \n",
			expected: []string{"one", "two"},
		},
		{
			name:     "empty file",
			content:  "",
			expected: nil,
		},
	}

	for i, tt := range tests {
		i, tt := i, tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "lines_"+strconv.Itoa(i)+".txt")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			lines, err := ReadUniqueLinesFromFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, lines)
		})
	}
}

// TestReadUniqueLinesFromFile_MissingFile tests reading a non-existent file.
func TestReadUniqueLinesFromFile_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := ReadUniqueLinesFromFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

// TestMap tests the Map function.
func TestMap(t *testing.T) {
	t.Parallel()

	doubled := Map([]int{1, 2, 3}, func(v int) int { return v * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled)

	asStrings := Map([]int{1, 2}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2"}, asStrings)

	empty := Map(nil, func(v int) int { return v })
	assert.Empty(t, empty)
}
