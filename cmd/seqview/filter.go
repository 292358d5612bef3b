package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ydb-platform/ydb-go-seqview"
	"github.com/ydb-platform/ydb-go-seqview/internal/xerrors"
	"github.com/ydb-platform/ydb-go-seqview/internal/xslices"
)

func matcher(typ string) (seqview.Match[any, any], error) {
	switch typ {
	case "int":
		return narrow(seqview.OfType[int, any]()), nil
	case "float":
		return narrow(seqview.OfType[float64, any]()), nil
	case "bool":
		return narrow(seqview.OfType[bool, any]()), nil
	case "string":
		return narrow(seqview.OfType[string, any]()), nil
	default:
		return nil, xerrors.WithStackTrace(fmt.Errorf("unknown type %q: want int, float, bool or string", typ))
	}
}

func narrow[T any](match seqview.Match[any, T]) seqview.Match[any, any] {
	return func(s any) (any, bool) {
		return match(s)
	}
}

func newFilterCommand(a *app) *cobra.Command {
	var typ string
	cmd := &cobra.Command{
		Use:   "filter TOKEN...",
		Short: "Print the tokens which parse as the given type",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			match, err := matcher(typ)
			if err != nil {
				return err
			}
			values := xslices.Transform(args, classify)

			it := seqview.Filter(seqview.Iterator[any](seqview.Iterate(&values)), match)
			n := 0
			for v := range it.All() {
				if _, err := fmt.Fprintln(a.out, toString(v)); err != nil {
					return xerrors.WithStackTrace(err)
				}
				n++
			}

			a.logger.Info("tokens filtered",
				zap.String("type", typ),
				zap.Int("scanned", len(values)),
				zap.Int("matched", n),
			)

			return nil
		},
	}
	cmd.Flags().StringVarP(&typ, "type", "t", "string", "type to keep: int, float, bool or string")

	return cmd
}
