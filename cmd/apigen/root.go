package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmguest/apigen/internal/config"
)

var (
	verbose bool
	quiet   bool
	outDir  string
	listOut bool
)

var rootCmd = &cobra.Command{
	Use:   "apigen",
	Short: "Generate the guest filesystem API's wire schema, headers, daemon stubs, shell commands, manual pages and host bindings",
	Long: `apigen reads the in-memory API call table and writes every
generated artefact derived from it: the wire-protocol schema, the public
and daemon-side C headers and implementations, the interactive shell's
command dispatcher, the manual pages, and the OCaml and Perl host
bindings. There is exactly one source of truth for the call table; every
artefact is regenerated from it on every run.`,
	Version: "0.1.0",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := config.DefaultOptions()
		opts.Level = config.LevelFromFlags(verbose, quiet)
		opts.List = listOut
		if outDir != "" {
			opts.OutDir = outDir
		}
		initLogger(opts.Level)
		return runGenerate(opts)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress all logging except errors")
	rootCmd.Flags().StringVarP(&outDir, "outdir", "o", "", "directory to write generated artefacts under (default \"generated\")")
	rootCmd.Flags().BoolVar(&listOut, "list", false, "print target paths and exit without writing anything")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
