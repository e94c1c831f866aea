package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "FID,AccessName,Address,BikeTrail,FISHING,ADAtrail"

func writeInput(t *testing.T, dir, body string) string {
	t.Helper()

	path := filepath.Join(dir, "trails.csv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, header+"\n1, Walden Ponds ,75th St,Yes,Yes,Easy\n")
	out := filepath.Join(dir, "out.json")

	require.NoError(t, run([]string{in, out}, &bytes.Buffer{}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, `[
    {
        "FID": 1,
        "AccessName": "Walden Ponds",
        "Address": "75th St",
        "BikeTrail": "Yes",
        "FISHING": "Yes",
        "ADAtrail": "Easy"
    }
]
`, string(data))
}

func TestRun_HeaderOnly(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, header+"\n")
	out := filepath.Join(dir, "out.json")

	require.NoError(t, run([]string{in, out}, &bytes.Buffer{}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestRun_WrongArgumentCount(t *testing.T) {
	var stdout bytes.Buffer
	err := run([]string{"only.csv"}, &stdout)

	assert.ErrorIs(t, err, errUsage)
	assert.Contains(t, stdout.String(), "<input.csv> <output.json>")
}

func TestRun_Failures(t *testing.T) {
	dir := t.TempDir()
	good := writeInput(t, dir, header+"\n1,A,B,No,No,Easy\n")

	tests := []struct {
		name string
		args []string
	}{
		{name: "missing input", args: []string{filepath.Join(dir, "absent.csv"), filepath.Join(dir, "out.json")}},
		{name: "unwritable output", args: []string{good, filepath.Join(dir, "missing", "out.json")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args, &bytes.Buffer{})
			require.Error(t, err)
			assert.NotErrorIs(t, err, errUsage)
		})
	}
}

func TestRun_BadRowAbortsConversion(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, header+"\n1,A,B,No,No,Easy\nx,C,D,No,No,Easy\n")
	out := filepath.Join(dir, "out.json")

	assert.Error(t, run([]string{in, out}, &bytes.Buffer{}))
	assert.NoFileExists(t, out)
}
