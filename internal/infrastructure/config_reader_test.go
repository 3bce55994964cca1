package infrastructure

import (
	"os"
	"path/filepath"
	"testing"

	"disk-scheduling/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestReadConfigDefaultsWhenMissing(t *testing.T) {
	cl, err := ParseCommandLine("test", nil)
	require.NoError(t, err)

	cfg, err := NewYAMLConfigReader(zaptest.NewLogger(t), cl).ReadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxRequests, cfg.MaxRequests)
	assert.Equal(t, []string{"fcfs", "scan", "cscan"}, cfg.Algorithms)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.PromptEnabled())
	assert.False(t, cfg.ShowStats)
}

func TestReadConfigFromYAML(t *testing.T) {
	path := writeConfig(t, `
max_requests: 50
algorithms: [scan, cscan]
prompt: false
show_stats: true
log_level: debug
`)
	cl, err := ParseCommandLine("test", nil)
	require.NoError(t, err)

	cfg, err := NewYAMLConfigReader(zaptest.NewLogger(t), cl).ReadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.MaxRequests)
	assert.Equal(t, []string{"scan", "cscan"}, cfg.Algorithms)
	assert.False(t, cfg.PromptEnabled())
	assert.True(t, cfg.ShowStats)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestReadConfigFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "max_requests: 50\nshow_stats: true\nlog_level: debug\n")
	cl, err := ParseCommandLine("test", []string{
		"-config", path,
		"-max-requests", "8",
		"-algorithms", "cscan, fcfs",
		"-stats=false",
		"-quiet",
		"-input", "workload.txt",
	})
	require.NoError(t, err)
	assert.Equal(t, path, cl.ConfigPath)

	cfg, err := NewYAMLConfigReader(zaptest.NewLogger(t), cl).ReadConfig(cl.ConfigPath)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.MaxRequests)
	assert.Equal(t, []string{"cscan", "fcfs"}, cfg.Algorithms)
	assert.False(t, cfg.ShowStats)
	assert.False(t, cfg.PromptEnabled())
	assert.Equal(t, "workload.txt", cfg.InputFile)
	// not given on the command line, so the file value stays
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestReadConfigErrors(t *testing.T) {
	cl, err := ParseCommandLine("test", nil)
	require.NoError(t, err)
	reader := NewYAMLConfigReader(zaptest.NewLogger(t), cl)

	_, err = reader.ReadConfig(writeConfig(t, "algorithms: [sstf]\n"))
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)

	_, err = reader.ReadConfig(writeConfig(t, "max_requests: -1\n"))
	assert.Error(t, err)

	_, err = reader.ReadConfig(writeConfig(t, "max_requests: [1\n"))
	assert.Error(t, err)
}
