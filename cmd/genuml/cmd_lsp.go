package main

import (
	"github.com/dhamidi/genuml/diagram"
	"github.com/dhamidi/genuml/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd(opts *globalOptions) *cobra.Command {
	var marker string

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server for PlantUML files",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := opts.introspector()
			if err != nil {
				return err
			}
			server := lsp.NewServer(version, in, marker)
			return server.RunStdio()
		},
	}

	cmd.Flags().StringVar(&marker, "pattern-marker", diagram.DefaultMarker, "marker that identifies directive comments")

	return cmd
}
