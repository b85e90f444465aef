package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunModes(t *testing.T) {
	dir := t.TempDir()
	subjects := writeFile(t, dir, "subjects.txt", "abcabc\nxyz\nNA\n")
	patterns := writeFile(t, dir, "patterns.txt", "bc\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "first",
			args: []string{"-patterns", patterns, subjects},
			want: "1\t(2,3)\n2\tNA\n3\tNA\n",
		},
		{
			name: "last_length",
			args: []string{"-mode", "last", "-length", "-patterns", patterns, subjects},
			want: "1\t(5,2)\n2\t(-1,-1)\n3\tNA\n",
		},
		{
			name: "all_omit",
			args: []string{"-mode", "all", "-omit", "-patterns", patterns, subjects},
			want: "1\t(2,3)\t(5,6)\n2\n3\tNA\n",
		},
		{
			name: "matrix",
			args: []string{"-mode", "all", "-format", "matrix", "-patterns", patterns, subjects},
			want: "position\tstart\tend\n1\t2\t3\n1\t5\t6\n2\tNA\tNA\n3\tNA\tNA\n",
		},
		{
			name: "any",
			args: []string{"-mode", "any", "-ci", "-patterns", writeFile(t, dir, "dict.txt", "YZ\nCA\n"), subjects},
			want: "1\t(3,4)\n2\t(2,3)\n3\tNA\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := runWithArgs(tt.args, &stdout, &stderr)
			require.Equal(t, 0, code, stderr.String())
			assert.Equal(t, tt.want, stdout.String())
		})
	}
}

func TestRunCompressedInput(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = zw.Write([]byte("ébc\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	subjects := filepath.Join(dir, "subjects.txt.zst")
	require.NoError(t, os.WriteFile(subjects, buf.Bytes(), 0o600))

	var stdout, stderr bytes.Buffer
	code := runWithArgs([]string{"-v", "-patterns", writeFile(t, dir, "p.txt", "bc\n"), subjects}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "1\t(2,3)\n", stdout.String())
	assert.Contains(t, stderr.String(), "locate completed")
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	subjects := writeFile(t, dir, "subjects.txt", "a\nb\nc\nd\n")
	patterns := writeFile(t, dir, "patterns.txt", "a\nb\nc\n")

	tests := []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{"missing_patterns", []string{subjects}, 2, "-patterns is required"},
		{"no_subjects", []string{"-patterns", patterns}, 2, "exactly one subjects file"},
		{"bad_mode", []string{"-mode", "middle", "-patterns", patterns, subjects}, 2, "unknown -mode"},
		{"bad_format", []string{"-format", "csv", "-patterns", patterns, subjects}, 2, "unknown -format"},
		{"bad_workers", []string{"-workers", "0", "-patterns", patterns, subjects}, 2, "Workers"},
		{"bad_flag", []string{"-nope"}, 2, "flag provided but not defined"},
		{"recycling", []string{"-patterns", patterns, subjects}, 1, "not a multiple"},
		{"missing_file", []string{"-patterns", patterns, filepath.Join(dir, "none.txt")}, 1, "error reading subjects"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, tt.code, runWithArgs(tt.args, &stdout, &stderr))
			assert.Contains(t, stderr.String(), tt.msg)
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRunFailureWithBrokenStderr(t *testing.T) {
	dir := t.TempDir()
	patterns := writeFile(t, dir, "patterns.txt", "a\n")

	var stdout bytes.Buffer
	code := runWithArgs([]string{"-patterns", patterns, filepath.Join(dir, "none.txt")}, &stdout, failingWriter{})
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
}
