package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dhamidi/genuml/diagram"
	"github.com/dhamidi/genuml/javap"
	"github.com/spf13/cobra"
)

func newGenerateCmd(opts *globalOptions) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "generate <class-file> [members]",
		Short: "Print the class diagram of a compiled Java class",
		Long: `Print the PlantUML class diagram of a single compiled Java class.

The optional second argument is a space separated list of the only fields
and methods to show, for example "length toUpperCase".`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			classFile := args[0]
			info, err := os.Stat(classFile)
			if err != nil {
				return fmt.Errorf("class file: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("class file %s is a directory", classFile)
			}

			var keep []string
			if len(args) == 2 {
				keep = strings.Fields(args[1])
			}

			in, err := opts.introspector()
			if err != nil {
				return err
			}
			g := &diagram.Generator{Introspector: in, Format: outputFormat}

			uml, err := g.Generate(cmd.Context(), classFile, keep)
			if err != nil {
				var unknown *javap.UnknownMemberError
				if errors.As(err, &unknown) {
					return err
				}
				log.Errorf("%v", err)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), uml)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "plantuml", "output format (plantuml, json)")

	return cmd
}
