// Package execpipe pipes text through external programs such as source formatters.
package execpipe

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/goaux/stacktrace/v2"
)

// CheckPath checks if the given executable exists in the system's PATH.
func CheckPath(executable string) error {
	_, err := stacktrace.Trace2(exec.LookPath(executable))
	return err
}

// Run executes name with args, reading stdin from r and writing stdout to w.
// The error includes the captured stderr of the command.
func Run(ctx context.Context, w io.Writer, r io.Reader, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = r
	cmd.Stdout = w
	stderr := new(bytes.Buffer)
	cmd.Stderr = stderr
	if err := stacktrace.Trace(cmd.Run()); err != nil {
		return fmt.Errorf("%s: %w, stderr=%q", name, err, stderr.String())
	}
	return nil
}

// Filter is Run over strings.
func Filter(ctx context.Context, in string, name string, args ...string) (string, error) {
	out := new(bytes.Buffer)
	if err := Run(ctx, out, bytes.NewBufferString(in), name, args...); err != nil {
		return "", err
	}
	return out.String(), nil
}
