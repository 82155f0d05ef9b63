// Package introspect produces `javap -private` listings for compiled
// classes, either by running the JDK's javap or by reading the class file
// directly.
package introspect

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tliron/commonlog"
)

const DefaultTimeout = 30 * time.Second

var log = commonlog.GetLogger("genuml.introspect")

// Introspector returns the textual listing of a class file in the format
// of `javap -private`.
type Introspector interface {
	Describe(ctx context.Context, classFile string) (string, error)
}

type Options struct {
	// JavapPath overrides the javap lookup; see ResolveJavap.
	JavapPath string
	Builtin   bool
	Timeout   time.Duration
	// Encoding is the IANA charset of javap's output. Empty means UTF-8.
	Encoding string
}

func New(opts Options) (Introspector, error) {
	if opts.Builtin {
		log.Debug("using builtin class reader")
		return Builtin{}, nil
	}

	enc, err := LookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	path := ResolveJavap(opts.JavapPath)
	log.Debugf("using javap at %s", path)
	return &Javap{Path: path, Timeout: timeout, Encoding: enc}, nil
}

// ResolveJavap picks the javap binary: the explicit path, then
// $GENUML_JAVAP, then $JAVA_HOME/bin/javap, then javap from PATH.
func ResolveJavap(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv("GENUML_JAVAP"); env != "" {
		return env
	}
	if home := os.Getenv("JAVA_HOME"); home != "" {
		candidate := filepath.Join(home, "bin", "javap")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return "javap"
}

// ToolError reports a javap invocation that did not succeed.
type ToolError struct {
	Path     string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ToolError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s exited with status %d: %s", e.Path, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("run %s: %v", e.Path, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}
