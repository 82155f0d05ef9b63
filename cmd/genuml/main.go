package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	_ "github.com/tliron/commonlog/simple"
)

var version = "0.1.0"

func main() {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:          "genuml",
		Short:        "Generate PlantUML class diagrams from compiled Java classes",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.configureLogging()
		},
	}
	rootCmd.SetVersionTemplate("genuml, version {{.Version}}\n")
	opts.bind(rootCmd)

	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newInsertCmd(opts))
	rootCmd.AddCommand(newLSPCmd(opts))
	rootCmd.AddCommand(newVersionCmd(opts))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
