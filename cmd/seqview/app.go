package main

import (
	"fmt"
	"io"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ydb-platform/ydb-go-seqview/internal/config"
	"github.com/ydb-platform/ydb-go-seqview/internal/version"
	"github.com/ydb-platform/ydb-go-seqview/internal/xerrors"
	"github.com/ydb-platform/ydb-go-seqview/internal/xsync"
)

type app struct {
	out    io.Writer
	clock  clockwork.Clock
	logger *zap.Logger

	newLogger func(verbose bool) (*zap.Logger, error)

	configPath string
	verbose    bool
	properties *xsync.Once[*config.Properties]
}

func newApp(out io.Writer) *app {
	return &app{
		out:       out,
		clock:     clockwork.NewRealClock(),
		logger:    zap.NewNop(),
		newLogger: newLogger,
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

	return cfg.Build()
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path := a.configPath
	a.properties = xsync.OnceValue(func() (*config.Properties, error) {
		if path == "" {
			return config.Empty(), nil
		}

		return config.Load(path)
	})

	p, err := a.properties.Get()
	if err != nil {
		return xerrors.WithStackTrace(err)
	}
	if !cmd.Flags().Changed("verbose") {
		a.verbose = boolOr(p, "verbose")
	}

	logger, err := a.newLogger(a.verbose)
	if err != nil {
		return xerrors.WithStackTrace(err)
	}
	a.logger = logger.With(zap.String("command", cmd.Name()))

	if p.Has("requires") {
		constraint, err := p.String("requires")
		if err != nil {
			return xerrors.WithStackTrace(err)
		}
		ok, err := version.Satisfies(version.Version, constraint)
		if err != nil {
			return xerrors.WithStackTrace(err)
		}
		if !ok {
			return xerrors.WithStackTrace(fmt.Errorf(
				"config %q requires %s %s, running %s",
				a.configPath, version.Package, constraint, version.Version,
			))
		}
	}

	a.logger.Debug("config loaded",
		zap.String("path", a.configPath),
		zap.Bool("verbose", a.verbose),
	)

	return nil
}

func (a *app) config() *config.Properties {
	if a.properties == nil {
		return config.Empty()
	}
	p, err := a.properties.Get()
	if err != nil {
		return config.Empty()
	}

	return p
}

func (a *app) teardown(*cobra.Command, []string) {
	_ = a.logger.Sync()
}

func boolOr(p *config.Properties, key string) bool {
	b, err := p.Bool(key)

	return err == nil && b
}
