package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ydb-platform/ydb-go-seqview"
	"github.com/ydb-platform/ydb-go-seqview/internal/xerrors"
)

func newCoordsCommand(a *app) *cobra.Command {
	var extents []int
	cmd := &cobra.Command{
		Use:   "coords",
		Short: "Print every integer point of a box, last axis fastest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("extent") {
				fromConfig, err := a.config().Ints("extents")
				if err != nil {
					return xerrors.WithStackTrace(fmt.Errorf("no extents given: %w", err))
				}
				extents = fromConfig
			}
			start := a.clock.Now()

			var (
				n int
				b strings.Builder
			)
			for point := range seqview.Coordinates(extents...).All() {
				b.Reset()
				for i, c := range point {
					if i > 0 {
						b.WriteByte(' ')
					}
					b.WriteString(strconv.Itoa(c))
				}
				if _, err := fmt.Fprintln(a.out, b.String()); err != nil {
					return xerrors.WithStackTrace(err)
				}
				n++
			}

			a.logger.Info("coordinates enumerated",
				zap.Ints("extents", extents),
				zap.Int("points", n),
				zap.Duration("elapsed", a.clock.Since(start)),
			)

			return nil
		},
	}
	cmd.Flags().IntSliceVarP(&extents, "extent", "e", nil, "axis extent, repeat or comma-separate for more axes")

	return cmd
}
