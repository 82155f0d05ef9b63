package introspect

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/text/encoding"
)

// Javap runs the JDK's javap tool.
type Javap struct {
	Path     string
	Timeout  time.Duration
	Encoding encoding.Encoding
}

func (j *Javap) Describe(ctx context.Context, classFile string) (string, error) {
	if _, err := os.Stat(classFile); err != nil {
		return "", fmt.Errorf("stat class file: %w", err)
	}
	out, err := j.run(ctx, "-private", classFile)
	if err != nil {
		return "", err
	}
	return decode(j.Encoding, out)
}

func (j *Javap) run(ctx context.Context, args ...string) ([]byte, error) {
	if j.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.Timeout)
		defer cancel()
	}

	log.Debugf("running %s %s", j.Path, strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, j.Path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		toolErr := &ToolError{
			Path:     j.Path,
			ExitCode: -1,
			Stderr:   strings.TrimSpace(stderr.String()),
			Err:      err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			toolErr.ExitCode = exitErr.ExitCode()
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			toolErr.Err = ctxErr
		}
		return nil, toolErr
	}
	return stdout.Bytes(), nil
}
