package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWith(t *testing.T, input string, args ...string) (int, string, string) {
	t.Helper()
	args = append([]string{"-config", filepath.Join(t.TempDir(), "none.yaml")}, args...)
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(input), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunTextbookWorkload(t *testing.T) {
	code, out, _ := runWith(t, "8\n98 183 37 122 14 124 65 67\n53\n200\n1\n", "-quiet")

	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "\nFCFS Disk Scheduling:\nOrder: 53 -> 98 -> 183 -> 37 -> 122 -> 14 -> 124 -> 65 -> 67\nTotal Head Movement = 640\n")
	assert.Contains(t, out, "\nSCAN Disk Scheduling:\nOrder: 53 -> 65 -> 67 -> 98 -> 122 -> 124 -> 183 -> 199 -> 37 -> 14\nTotal Head Movement = 331\n")
	assert.Contains(t, out, "\nC-SCAN Disk Scheduling:\nOrder: 53 -> 65 -> 67 -> 98 -> 122 -> 124 -> 183 -> 199 -> 0 -> 14 -> 37\nTotal Head Movement = 382\n")
	assert.NotContains(t, out, "Enter number of requests")
}

func TestRunPrintsPrompts(t *testing.T) {
	code, out, _ := runWith(t, "0 5 10 0")

	require.Equal(t, exitOK, code)
	assert.True(t, strings.HasPrefix(out, "Enter number of requests: "))
	assert.Equal(t, 3, strings.Count(out, "Total Head Movement = 0\n"))
}

func TestRunInvalidInputExitCode(t *testing.T) {
	code, _, errOut := runWith(t, "2 10 250 53 200 1", "-quiet")
	assert.Equal(t, exitInvalidInput, code)
	assert.Contains(t, errOut, "request position out of range")

	code, _, _ = runWith(t, "3 1 2 3 0 10 0", "-quiet", "-max-requests", "2")
	assert.Equal(t, exitInvalidInput, code)

	code, _, _ = runWith(t, "x", "-quiet")
	assert.Equal(t, exitInvalidInput, code)
}

func TestRunInputFileAndStats(t *testing.T) {
	input := filepath.Join(t.TempDir(), "workload.txt")
	require.NoError(t, os.WriteFile(input, []byte("2 1 4 0 10 1"), 0o644))

	code, out, _ := runWith(t, "", "-input", input, "-algorithms", "fcfs", "-stats")

	require.Equal(t, exitOK, code)
	assert.NotContains(t, out, "Enter")
	assert.Contains(t, out, "Total Head Movement = 4\nAverage Seek = 2.00 (stddev 1.00, max 3)\n")
	assert.Contains(t, out, "Best: FCFS (4)")
}

func TestRunConfigErrors(t *testing.T) {
	code, _, _ := runWith(t, "", "-algorithms", "sstf")
	assert.Equal(t, exitFailure, code)

	code, _, _ = runWith(t, "", "-input", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, exitFailure, code)
}
