// Package runner forwards a validated configuration to the tailwindcss CLI.
//
// Flags belong to the external tool; runner only locates the binary and passes
// them through.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// ErrBinaryNotFound is returned when neither tailwindcss nor npx is available.
var ErrBinaryNotFound = errors.New("tailwindcss binary not found")

// DefaultBinary is looked up on PATH when Options.Binary is empty.
const DefaultBinary = "tailwindcss"

// Options describes one invocation of the build tool.
type Options struct {
	ConfigPath string // passed as -c
	Input      string // passed as -i, optional
	Output     string // passed as -o, optional
	Minify     bool
	Binary     string // explicit binary name or path
	Dir        string // working directory of the build, default: current

	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger
}

// Command is a located build tool: the executable plus leading arguments.
type Command struct {
	Path string
	Args []string
}

// String renders the command for logs.
func (c Command) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}

// Args returns the flags forwarded to the build tool.
func (o Options) Args() []string {
	args := []string{"-c", o.ConfigPath}
	if o.Input != "" {
		args = append(args, "-i", o.Input)
	}
	if o.Output != "" {
		args = append(args, "-o", o.Output)
	}
	if o.Minify {
		args = append(args, "--minify")
	}
	return args
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}

// Locate finds the build tool: the configured binary, then tailwindcss on
// PATH, then npx tailwindcss.
func Locate(binary string) (Command, error) {
	if binary != "" {
		path, err := exec.LookPath(binary)
		if err != nil {
			return Command{}, fmt.Errorf("%w: %s: %w", ErrBinaryNotFound, binary, err)
		}
		return Command{Path: path}, nil
	}

	if path, err := exec.LookPath(DefaultBinary); err == nil {
		return Command{Path: path}, nil
	}
	if path, err := exec.LookPath("npx"); err == nil {
		return Command{Path: path, Args: []string{DefaultBinary}}, nil
	}
	return Command{}, fmt.Errorf("%w: install the standalone CLI or Node.js", ErrBinaryNotFound)
}

// Build runs the build tool once and waits for it.
func Build(ctx context.Context, opts Options) error {
	if opts.ConfigPath == "" {
		return errors.New("config path is required")
	}

	bin, err := Locate(opts.Binary)
	if err != nil {
		return err
	}

	cmd := command(ctx, bin, opts)
	opts.logger().Debug("running build", "cmd", cmd.String())

	start := time.Now()
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", bin, err)
	}
	opts.logger().Debug("build finished", "took", time.Since(start).Round(time.Millisecond))
	return nil
}

// command prepares the child process. extra is appended after the forwarded flags.
func command(ctx context.Context, bin Command, opts Options, extra ...string) *exec.Cmd {
	args := append(append(append([]string{}, bin.Args...), opts.Args()...), extra...)

	// #nosec G204 - binary and flags come from the user's own configuration
	cmd := exec.CommandContext(ctx, bin.Path, args...)
	cmd.Dir = opts.Dir
	cmd.Stdout = opts.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = opts.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	cmd.WaitDelay = time.Second
	return cmd
}
