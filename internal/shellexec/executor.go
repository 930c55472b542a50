// Package shellexec runs fallback system commands in the user's shell.
package shellexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ErrTimeout marks a command killed by the execution deadline, as opposed to
// one that ran to completion with a non-zero exit code.
var ErrTimeout = errors.New("command timed out")

// Result holds the captured output of a completed command. A non-zero
// ExitCode is a normal outcome, not an error.
type Result struct {
	Stdout    string
	Stderr    string
	ExitCode  int
	Truncated bool
}

// Executor runs commands through the user's shell with a deadline and an
// output size cap.
type Executor struct {
	shell     string
	timeout   time.Duration
	maxOutput int
}

// New creates an Executor using the given shell binary. An empty shell falls
// back to /bin/bash.
func New(shell string, timeout time.Duration, maxOutput int) *Executor {
	if shell == "" {
		shell = "/bin/bash"
	}
	return &Executor{
		shell:     shell,
		timeout:   timeout,
		maxOutput: maxOutput,
	}
}

// Run executes command through the shell. It returns ErrTimeout when the
// deadline kills the command; a command that exits non-zero returns a Result
// with the exit code and a nil error.
func (e *Executor) Run(ctx context.Context, command string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, e.shell, "-c", e.wrap(command))

	stdout := newCappedBuffer(e.maxOutput)
	stderr := newCappedBuffer(e.maxOutput)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return nil, fmt.Errorf("%w after %s", ErrTimeout, e.timeout)
	}

	result := &Result{
		Stdout:    stdout.String(),
		Stderr:    stderr.String(),
		Truncated: stdout.truncated || stderr.truncated,
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, err
	}
	return result, nil
}

// wrap prefixes the command so it runs with the user's shell configuration,
// matching what they would get typing it interactively.
func (e *Executor) wrap(command string) string {
	switch {
	case strings.Contains(e.shell, "zsh"):
		return "source ~/.zshrc 2>/dev/null; " + command
	case strings.Contains(e.shell, "bash"):
		return "source ~/.bashrc 2>/dev/null; " + command
	default:
		return command
	}
}

// cappedBuffer records writes up to a byte limit and drops the rest,
// remembering that it did.
type cappedBuffer struct {
	buf       bytes.Buffer
	limit     int
	truncated bool
}

func newCappedBuffer(limit int) *cappedBuffer {
	return &cappedBuffer{limit: limit}
}

// Write always reports the full length so the child process never sees a
// short write; excess bytes are simply not retained.
func (c *cappedBuffer) Write(p []byte) (int, error) {
	remaining := c.limit - c.buf.Len()
	if remaining <= 0 {
		c.truncated = true
		return len(p), nil
	}
	if len(p) > remaining {
		c.buf.Write(p[:remaining])
		c.truncated = true
		return len(p), nil
	}
	c.buf.Write(p)
	return len(p), nil
}

func (c *cappedBuffer) String() string {
	return c.buf.String()
}
