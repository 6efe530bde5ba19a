package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBinary writes an executable shell script named name into a fresh
// directory and puts only that directory on PATH.
func fakeBinary(t *testing.T, name, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script binaries are not supported on windows")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	t.Setenv("PATH", dir)
	return path
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestOptionsArgs(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "config only",
			opts: Options{ConfigPath: "tailwind.config.js"},
			want: []string{"-c", "tailwind.config.js"},
		},
		{
			name: "all flags",
			opts: Options{ConfigPath: "tailwind.config.js", Input: "src/input.css", Output: "dist/output.css", Minify: true},
			want: []string{"-c", "tailwind.config.js", "-i", "src/input.css", "-o", "dist/output.css", "--minify"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.Args())
		})
	}
}

func TestLocate(t *testing.T) {
	t.Run("tailwindcss on PATH", func(t *testing.T) {
		path := fakeBinary(t, "tailwindcss", "exit 0\n")
		cmd, err := Locate("")
		require.NoError(t, err)
		assert.Equal(t, Command{Path: path}, cmd)
	})

	t.Run("npx fallback", func(t *testing.T) {
		path := fakeBinary(t, "npx", "exit 0\n")
		cmd, err := Locate("")
		require.NoError(t, err)
		assert.Equal(t, Command{Path: path, Args: []string{"tailwindcss"}}, cmd)
		assert.Equal(t, path+" tailwindcss", cmd.String())
	})

	t.Run("explicit path", func(t *testing.T) {
		path := fakeBinary(t, "tailwindcss-linux-x64", "exit 0\n")
		t.Setenv("PATH", t.TempDir())
		cmd, err := Locate(path)
		require.NoError(t, err)
		assert.Equal(t, path, cmd.Path)
	})

	t.Run("not found", func(t *testing.T) {
		t.Setenv("PATH", t.TempDir())
		_, err := Locate("")
		require.ErrorIs(t, err, ErrBinaryNotFound)

		_, err = Locate("tailwindcss-missing")
		require.ErrorIs(t, err, ErrBinaryNotFound)
	})
}

func TestBuild(t *testing.T) {
	fakeBinary(t, "tailwindcss", `echo "$@"`+"\n")

	var stdout bytes.Buffer
	err := Build(context.Background(), Options{
		ConfigPath: "tailwind.config.js",
		Input:      "input.css",
		Output:     "output.css",
		Minify:     true,
		Stdout:     &stdout,
		Stderr:     io.Discard,
		Logger:     quietLogger(),
	})
	require.NoError(t, err)
	assert.Equal(t, "-c tailwind.config.js -i input.css -o output.css --minify\n", stdout.String())
}

func TestBuildFailure(t *testing.T) {
	fakeBinary(t, "tailwindcss", "echo 'CssSyntaxError' >&2\nexit 3\n")

	var stderr bytes.Buffer
	err := Build(context.Background(), Options{
		ConfigPath: "tailwind.config.js",
		Stdout:     io.Discard,
		Stderr:     &stderr,
		Logger:     quietLogger(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit status 3")
	assert.Contains(t, stderr.String(), "CssSyntaxError")

	err = Build(context.Background(), Options{Logger: quietLogger()})
	require.Error(t, err)
}

func countLines(t *testing.T, path string) int {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	return strings.Count(string(data), "\n")
}

func TestWatchRestartsOnlyOnValidChange(t *testing.T) {
	sleep, err := exec.LookPath("sleep")
	if err != nil {
		t.Skip("sleep not available")
	}
	starts := filepath.Join(t.TempDir(), "starts.log")
	t.Setenv("STARTS_LOG", starts)
	fakeBinary(t, "tailwindcss", `echo "$@" >> "$STARTS_LOG"`+"\nexec "+sleep+" 30\n")

	dir := t.TempDir()
	config := filepath.Join(dir, "tailwind.config.js")
	require.NoError(t, os.WriteFile(config, []byte("valid"), 0o600))

	var validations atomic.Int32
	validate := func() error {
		validations.Add(1)
		data, err := os.ReadFile(config)
		if err != nil {
			return err
		}
		if strings.Contains(string(data), "invalid") {
			return errors.New("invalid configuration")
		}
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- Watch(ctx, WatchOptions{
			Options: Options{
				ConfigPath: config,
				Stdout:     io.Discard,
				Stderr:     io.Discard,
				Logger:     quietLogger(),
			},
			Paths:    []string{config},
			Validate: validate,
			Debounce: 50 * time.Millisecond,
		})
	}()

	require.Eventually(t, func() bool { return countLines(t, starts) == 1 }, 5*time.Second, 10*time.Millisecond)
	data, err := os.ReadFile(starts)
	require.NoError(t, err)
	assert.Equal(t, "-c "+config+" --watch\n", string(data))

	require.NoError(t, os.WriteFile(config, []byte("invalid"), 0o600))
	require.Eventually(t, func() bool { return validations.Load() >= 2 }, 5*time.Second, 10*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, countLines(t, starts))

	require.NoError(t, os.WriteFile(config, []byte("valid again"), 0o600))
	require.Eventually(t, func() bool { return countLines(t, starts) == 2 }, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatchRejectsInvalidStart(t *testing.T) {
	fakeBinary(t, "tailwindcss", "exit 0\n")

	want := errors.New("broken")
	err := Watch(context.Background(), WatchOptions{
		Options:  Options{ConfigPath: "tailwind.config.js", Logger: quietLogger()},
		Validate: func() error { return want },
	})
	require.ErrorIs(t, err, want)
}
