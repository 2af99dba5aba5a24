//go:build unix

package main

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runMainEnv makes the test binary act as the command itself.
const runMainEnv = "NGRAM_CSV_RUN_MAIN"

func TestMain(m *testing.M) {
	if os.Getenv(runMainEnv) == "1" {
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func startCommand(t *testing.T) (*exec.Cmd, io.WriteCloser, *bytes.Buffer) {
	t.Helper()
	cmd := exec.Command(os.Args[0])
	cmd.Env = append(os.Environ(), runMainEnv+"=1", "CONFIG_PATH=")
	cmd.Dir = t.TempDir()

	stdin, err := cmd.StdinPipe()
	require.NoError(t, err)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	require.NoError(t, cmd.Start())
	return cmd, stdin, &stdout
}

func TestCommand_ConvertsStdin(t *testing.T) {
	cmd, stdin, stdout := startCommand(t)

	_, err := io.WriteString(stdin, "120 слово\nмусор\n45 кот.сущ\n")
	require.NoError(t, err)
	require.NoError(t, stdin.Close())

	require.NoError(t, cmd.Wait())
	assert.Equal(t, "120,слово\n45,кот,сущ\n", stdout.String())
}

func TestCommand_TerminatesOnSIGTERMWhileReading(t *testing.T) {
	cmd, stdin, _ := startCommand(t)
	defer stdin.Close()

	// stdin stays open, so the command is blocked reading.
	_, err := io.WriteString(stdin, "120 слово\n")
	require.NoError(t, err)
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, cmd.Process.Signal(syscall.SIGTERM))

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case err := <-done:
		var exitErr *exec.ExitError
		require.ErrorAs(t, err, &exitErr)
		status, ok := exitErr.Sys().(syscall.WaitStatus)
		require.True(t, ok)
		assert.True(t, status.Signaled())
		assert.Equal(t, syscall.SIGTERM, status.Signal())
	case <-time.After(5 * time.Second):
		_ = cmd.Process.Kill()
		t.Fatal("command still running 5s after SIGTERM")
	}
}
