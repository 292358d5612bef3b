package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ydb-platform/ydb-go-seqview"
	"github.com/ydb-platform/ydb-go-seqview/internal/xerrors"
)

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the library and Go runtime versions",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := fmt.Fprintf(a.out, "%s (%s %s/%s)\n", seqview.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)

			return xerrors.WithStackTrace(err)
		},
	}
}
