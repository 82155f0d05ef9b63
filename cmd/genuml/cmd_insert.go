package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dhamidi/genuml/diagram"
	"github.com/spf13/cobra"
)

func newInsertCmd(opts *globalOptions) *cobra.Command {
	var (
		classDir string
		marker   string
		jobs     int
		output   string
		watch    bool
	)

	cmd := &cobra.Command{
		Use:   "insert <plantuml-file>",
		Short: "Insert class diagrams after directive comments in a PlantUML file",
		Long: `Copy a PlantUML file and insert a class diagram after every directive.

A directive is a PlantUML comment starting with the pattern marker, followed
by a fully qualified class name and optionally a colon and the only members
to show:

  '[JAVA] java.lang.String: length replaceAll toUpperCase

Class files are looked up under --class-dir, e.g. classes/java/lang/String.class.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			if err := requireFile(input); err != nil {
				return err
			}
			info, err := os.Stat(classDir)
			if err != nil {
				return fmt.Errorf("class directory: %w", err)
			}
			if !info.IsDir() {
				return fmt.Errorf("class directory %s is not a directory", classDir)
			}
			if watch && output == "" {
				return fmt.Errorf("--watch requires --output")
			}
			if watch {
				same, err := samePath(input, output)
				if err != nil {
					return err
				}
				if same {
					return fmt.Errorf("--output %s is the watched input file", output)
				}
			}

			in, err := opts.introspector()
			if err != nil {
				return err
			}
			ins := &diagram.Inserter{
				ClassDir:    classDir,
				Marker:      marker,
				Generator:   &diagram.Generator{Introspector: in},
				Concurrency: jobs,
			}

			run := func() error {
				f, err := os.Open(input)
				if err != nil {
					return fmt.Errorf("open %s: %w", input, err)
				}
				defer f.Close()

				if output == "" {
					return ins.Insert(cmd.Context(), f, cmd.OutOrStdout())
				}
				var buf bytes.Buffer
				if err := ins.Insert(cmd.Context(), f, &buf); err != nil {
					return err
				}
				if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				log.Infof("wrote %s", output)
				return nil
			}

			if watch {
				return diagram.Watch(cmd.Context(), input, run)
			}
			return run()
		},
	}

	cmd.Flags().StringVar(&classDir, "class-dir", "classes", "directory containing class files")
	cmd.Flags().StringVar(&marker, "pattern-marker", diagram.DefaultMarker, "marker that identifies directive comments")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 1, "number of classes to describe in parallel")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result to this file instead of stdout")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "regenerate whenever the input file changes")

	return cmd
}

func requireFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("plantuml file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("plantuml file %s is a directory", path)
	}
	return nil
}

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	return absA == absB, nil
}
