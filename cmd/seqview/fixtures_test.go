package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonboulle/clockwork"
	"github.com/rekby/fixenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type testApp struct {
	*app

	stdout *bytes.Buffer
	logs   *observer.ObservedLogs
}

func Clock(e fixenv.Env) clockwork.Clock {
	f := func() (*fixenv.GenericResult[clockwork.Clock], error) {
		return fixenv.NewGenericResult[clockwork.Clock](clockwork.NewFakeClock()), nil
	}

	return fixenv.CacheResult(e, f)
}

func ConfigFile(e fixenv.Env, content string) string {
	var f fixenv.GenericFixtureFunction[string] = func() (*fixenv.GenericResult[string], error) {
		dir, err := os.MkdirTemp("", "seqview-test-")
		if err != nil {
			return nil, fmt.Errorf("failed to create temp dir: %w", err)
		}
		path := filepath.Join(dir, "seqview.yaml")
		if err = os.WriteFile(path, []byte(content), 0o600); err != nil {
			_ = os.RemoveAll(dir)

			return nil, fmt.Errorf("failed to write config: %w", err)
		}

		return fixenv.NewGenericResultWithCleanup(path, func() {
			_ = os.RemoveAll(dir)
		}), nil
	}

	return fixenv.CacheResult(e, f, fixenv.CacheOptions{CacheKey: content})
}

func App(e fixenv.Env) *testApp {
	f := func() (*fixenv.GenericResult[*testApp], error) {
		core, logs := observer.New(zapcore.DebugLevel)
		stdout := &bytes.Buffer{}

		a := newApp(stdout)
		a.clock = Clock(e)
		a.newLogger = func(bool) (*zap.Logger, error) {
			return zap.New(core), nil
		}

		return fixenv.NewGenericResult(&testApp{
			app:    a,
			stdout: stdout,
			logs:   logs,
		}), nil
	}

	return fixenv.CacheResult(e, f)
}

func (a *testApp) run(args ...string) error {
	cmd := newRootCommand(a.app)
	cmd.SetArgs(args)
	cmd.SetErr(&bytes.Buffer{})

	return cmd.Execute()
}
