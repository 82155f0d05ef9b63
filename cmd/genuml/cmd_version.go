package main

import (
	"fmt"

	"github.com/dhamidi/genuml/introspect"
	"github.com/spf13/cobra"
)

func newVersionCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the genuml version and the javap in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "genuml, version %s\n", version)

			if opts.builtin {
				fmt.Fprintln(out, "javap: builtin class reader")
				return nil
			}

			j := &introspect.Javap{Path: introspect.ResolveJavap(opts.javap), Timeout: opts.timeout}
			v, err := j.Version(cmd.Context())
			if err != nil {
				fmt.Fprintf(out, "javap: unavailable (%v)\n", err)
				return nil
			}
			fmt.Fprintf(out, "javap: %s (%s)\n", v, j.Path)
			if !introspect.Supported(v) {
				log.Warningf("javap %s is older than 1.8; listings may not parse", v)
			}
			return nil
		},
	}
}
