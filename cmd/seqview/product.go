package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ydb-platform/ydb-go-seqview"
	"github.com/ydb-platform/ydb-go-seqview/internal/xerrors"
)

type productOptions struct {
	axes    []string
	flat    bool
	from    int
	limit   int
	workers int
}

func newProductCommand(a *app) *cobra.Command {
	var opts productOptions
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Print the cartesian product of comma-separated axes",
		Long: "Print the cartesian product of comma-separated axes. " +
			"With --flat an axis item like x+y is a nested list expanded in place.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("workers") {
				opts.workers = a.config().IntOr("workers", opts.workers)
			}

			return a.runProduct(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringArrayVarP(&opts.axes, "axis", "a", nil, "comma-separated axis, repeat for more axes")
	cmd.Flags().BoolVar(&opts.flat, "flat", false, "flatten nested axis items (x+y) into the output row")
	cmd.Flags().IntVar(&opts.from, "from", 0, "first ordinal to print")
	cmd.Flags().IntVar(&opts.limit, "limit", -1, "maximum number of tuples to print, -1 for all")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 1, "number of goroutines rendering tuples")

	return cmd
}

func (a *app) runProduct(ctx context.Context, opts productOptions) error {
	lists, err := a.lists(opts.axes, "axes")
	if err != nil {
		return err
	}
	axes := make([]seqview.List[any], 0, len(lists))
	for _, l := range lists {
		axis := make(seqview.Slice[any], 0, l.Len())
		for _, item := range seqview.All(l) {
			if opts.flat {
				axis = append(axis, nested(item))
			} else {
				axis = append(axis, item)
			}
		}
		axes = append(axes, axis)
	}

	v, err := seqview.Product(axes...)
	if err != nil {
		return xerrors.WithStackTrace(err)
	}

	from, to := window(v.Len(), opts.from, opts.limit)
	start := a.clock.Now()

	rows, err := renderProduct(ctx, v, from, to, opts.workers, opts.flat)
	if err != nil {
		return xerrors.WithStackTrace(err)
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(a.out, row); err != nil {
			return xerrors.WithStackTrace(err)
		}
	}

	a.logger.Info("product rendered",
		zap.Int("axes", v.Axes()),
		zap.Int("len", v.Len()),
		zap.Int("tuples", len(rows)),
		zap.Int("workers", opts.workers),
		zap.Bool("flat", opts.flat),
		zap.Duration("elapsed", a.clock.Since(start)),
	)

	return nil
}

// window clamps [from, from+limit) to [0, total). A negative limit means no limit.
func window(total, from, limit int) (int, int) {
	from = max(0, min(from, total))
	if limit < 0 || limit > total-from {
		return from, total
	}

	return from, from + limit
}

// renderProduct formats tuples [from, to) splitting the range into
// contiguous chunks, one per worker. Every worker owns its output slice and
// its FillFlat buffer; the view itself is only read.
func renderProduct(
	ctx context.Context, v *seqview.ProductView[any], from, to, workers int, flat bool,
) ([]string, error) {
	rows := make([]string, to-from)
	if len(rows) == 0 {
		return rows, nil
	}
	workers = max(1, min(workers, len(rows)))
	chunk := (len(rows) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for lo := 0; lo < len(rows); lo += chunk {
		hi := min(lo+chunk, len(rows))
		g.Go(func() error {
			var dst []any
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				ordinal := from + i
				if !flat {
					tuple, err := v.Get(ordinal)
					if err != nil {
						return err
					}
					rows[i] = joinValues(tuple)

					continue
				}
				need, err := v.FlatLen(ordinal)
				if err != nil {
					return err
				}
				if cap(dst) < need {
					dst = make([]any, need)
				}
				n, err := v.FillFlat(ordinal, dst[:need])
				if err != nil {
					return err
				}
				rows[i] = joinValues(dst[:n])
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return rows, nil
}
