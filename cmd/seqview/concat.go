package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ydb-platform/ydb-go-seqview"
	"github.com/ydb-platform/ydb-go-seqview/internal/xerrors"
	"github.com/ydb-platform/ydb-go-seqview/internal/xslices"
)

func newConcatCommand(a *app) *cobra.Command {
	var lists []string
	cmd := &cobra.Command{
		Use:   "concat",
		Short: "Print the concatenation of comma-separated lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sources, err := a.lists(lists, "lists")
			if err != nil {
				return err
			}
			start := a.clock.Now()

			v := seqview.Concat(sources...)
			for i, s := range v.All() {
				if _, err := fmt.Fprintf(a.out, "%d\t%s\n", i, s); err != nil {
					return xerrors.WithStackTrace(err)
				}
			}

			a.logger.Info("concatenated",
				zap.Int("sources", len(sources)),
				zap.Int("len", v.Len()),
				zap.Duration("elapsed", a.clock.Since(start)),
			)

			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&lists, "list", "l", nil, "comma-separated list, repeat for more lists")

	return cmd
}

// lists reads lists from flags, falling back to the config key.
func (a *app) lists(flags []string, key string) ([]seqview.List[string], error) {
	var items [][]string
	if len(flags) > 0 {
		for _, f := range flags {
			items = append(items, splitItems(f))
		}
	} else if a.config().Has(key) {
		var err error
		items, err = a.config().StringLists(key)
		if err != nil {
			return nil, xerrors.WithStackTrace(err)
		}
	}
	if len(items) == 0 {
		return nil, xerrors.WithStackTrace(fmt.Errorf("no lists given: use flags or %q in config", key))
	}

	return xslices.Transform(items, func(l []string) seqview.List[string] {
		return seqview.Slice[string](l)
	}), nil
}
