package main

import (
	"time"

	"github.com/dhamidi/genuml/introspect"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("genuml")

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	javap    string
	builtin  bool
	timeout  time.Duration
	encoding string
	verbose  int
	logPath  string
}

func (o *globalOptions) bind(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.javap, "javap", "", "javap binary (default: $GENUML_JAVAP, $JAVA_HOME/bin/javap, javap)")
	flags.BoolVar(&o.builtin, "builtin", false, "read class files directly instead of running javap")
	flags.DurationVar(&o.timeout, "timeout", introspect.DefaultTimeout, "timeout for each javap invocation")
	flags.StringVar(&o.encoding, "encoding", "", "charset of javap output (default UTF-8)")
	flags.CountVarP(&o.verbose, "verbose", "v", "increase log verbosity (repeatable)")
	flags.StringVar(&o.logPath, "log", "", "write logs to this file instead of stderr")
}

func (o *globalOptions) configureLogging() {
	var path *string
	if o.logPath != "" {
		path = &o.logPath
	}
	commonlog.Configure(o.verbose, path)
}

func (o *globalOptions) introspector() (introspect.Introspector, error) {
	return introspect.New(introspect.Options{
		JavapPath: o.javap,
		Builtin:   o.builtin,
		Timeout:   o.timeout,
		Encoding:  o.encoding,
	})
}
