package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:               "seqview",
		Short:             "Print lazily computed concatenations, products and coordinate boxes",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
	}
	root.SetOut(a.out)
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML file with defaults for axes, lists, extents and workers")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug information to stderr")

	root.AddCommand(
		newConcatCommand(a),
		newProductCommand(a),
		newCoordsCommand(a),
		newFilterCommand(a),
		newVersionCommand(a),
	)

	return root
}
