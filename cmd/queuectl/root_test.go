package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huynhanx03/go-queue/pkg/datastructs/queue"
	"github.com/huynhanx03/go-queue/pkg/script"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDemo(t *testing.T) {
	for _, kind := range []string{"slice", "ring"} {
		t.Run(kind, func(t *testing.T) {
			out, err := execute(t, "", "demo", "--kind", kind)
			require.NoError(t, err)
			assert.Equal(t, "queue size: 3\nqueue size: 1\n", out)
		})
	}
}

func TestDemo_UnknownKind(t *testing.T) {
	_, err := execute(t, "", "demo", "--kind", "stack")
	assert.True(t, errors.Is(err, queue.ErrUnknownKind), "got %v", err)
}

func TestDemo_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queue.yaml")
	require.NoError(t, os.WriteFile(path, []byte("queue:\n  kind: ring\n  initial_capacity: 4\nlogger:\n  log_level: error\n"), 0o600))

	out, err := execute(t, "", "demo", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "queue size: 3\nqueue size: 1\n", out)
}

func TestDemo_BadConfig(t *testing.T) {
	_, err := execute(t, "", "demo", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestClosesLogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "queuectl.log")
	cfgPath := filepath.Join(dir, "queue.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("logger:\n  file_log_name: "+logPath+"\n"), 0o600))

	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantErr bool
	}{
		{"demo", "", []string{"demo"}, false},
		{"repl_error", "shift\n", []string{"repl"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &app{}
			cmd := a.rootCmd()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetIn(strings.NewReader(tt.stdin))
			cmd.SetArgs(append(tt.args, "--config", cfgPath))

			err := cmd.Execute()
			assert.Equal(t, tt.wantErr, err != nil, "err = %v", err)
			assert.Nil(t, a.closeLog, "log file left open")

			raw, rerr := os.ReadFile(logPath)
			require.NoError(t, rerr)
			assert.Contains(t, string(raw), "finished")
		})
	}
}

func TestRepl(t *testing.T) {
	out, err := execute(t, "offer a b\npoll\nsize\nend\npoll\n", "repl", "--kind", "ring")
	require.NoError(t, err)
	assert.Equal(t, "a\n1\n", out)
}

func TestRepl_Error(t *testing.T) {
	_, err := execute(t, "shift\n", "repl")
	assert.True(t, errors.Is(err, script.ErrUnknownCommand), "got %v", err)
}
