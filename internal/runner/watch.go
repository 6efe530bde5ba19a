package runner

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events an editor save produces.
const DefaultDebounce = 200 * time.Millisecond

// WatchOptions configures Watch.
type WatchOptions struct {
	Options

	// Paths are the configuration files to watch. Their directories are
	// watched so that editors replacing the file are noticed too.
	Paths []string

	// Validate reloads the configuration. The build restarts only when it
	// returns nil.
	Validate func() error

	Debounce time.Duration
}

// process is a running build tool child.
type process struct {
	cmd    *exec.Cmd
	cancel context.CancelFunc
	done   chan error
}

func startProcess(ctx context.Context, bin Command, opts Options) (*process, error) {
	pctx, cancel := context.WithCancel(ctx)
	cmd := command(pctx, bin, opts, "--watch")
	if err := cmd.Start(); err != nil {
		cancel()
		return nil, fmt.Errorf("starting %s: %w", bin, err)
	}

	p := &process{cmd: cmd, cancel: cancel, done: make(chan error, 1)}
	go func() {
		p.done <- cmd.Wait()
	}()
	return p, nil
}

// stop kills the child and waits for it to exit.
func (p *process) stop() {
	p.cancel()
	<-p.done
}

// Watch runs the build tool in watch mode and restarts it whenever a watched
// configuration file changes and still validates. Invalid edits are logged and
// the previous build keeps running. Watch returns nil when ctx is cancelled.
func Watch(ctx context.Context, opts WatchOptions) error {
	if opts.ConfigPath == "" {
		return errors.New("config path is required")
	}
	if opts.Validate == nil {
		opts.Validate = func() error { return nil }
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	logger := opts.logger()

	if err := opts.Validate(); err != nil {
		return err
	}

	bin, err := Locate(opts.Binary)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	watched := make(map[string]bool, len(opts.Paths))
	dirs := make(map[string]bool)
	for _, p := range opts.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	proc, err := startProcess(ctx, bin, opts.Options)
	if err != nil {
		return err
	}
	logger.Info("watching configuration", "files", len(watched), "cmd", bin.String())

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
		if proc != nil {
			proc.stop()
		}
	}()

	// done is nil while no child is running.
	done := proc.done

	for {
		select {
		case <-ctx.Done():
			return nil

		case err := <-done:
			if err != nil {
				logger.Warn("build exited", "err", err)
			} else {
				logger.Info("build exited")
			}
			proc, done = nil, nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}
			logger.Debug("configuration changed", "file", event.Name, "op", event.Op.String())
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(opts.Debounce)
			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "err", err)

		case <-fire:
			fire = nil
			if err := opts.Validate(); err != nil {
				logger.Error("configuration is invalid, keeping the running build", "err", err)
				continue
			}
			if proc != nil {
				proc.stop()
				proc, done = nil, nil
			}
			next, err := startProcess(ctx, bin, opts.Options)
			if err != nil {
				logger.Error("failed to restart build", "err", err)
				continue
			}
			proc, done = next, next.done
			logger.Info("configuration reloaded, build restarted")
		}
	}
}
