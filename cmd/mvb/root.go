package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-mvb"
	"github.com/goliatone/go-mvb/cmd/mvb/internal/bootstrap"
	"github.com/goliatone/go-mvb/internal/logging"
	"github.com/goliatone/go-mvb/pkg/interfaces"
)

// app carries the persistent flags shared by every subcommand.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	overrides  bootstrap.Overrides
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "mvb",
		Short: "mvb loads Markdown articles and builds pages from them",
		Long: `mvb discovers Markdown articles with glob patterns, infers their id and
date from the file name, renders them and exposes the ordered collection
to page templates.

Usage:
  mvb build [flags]
  mvb list [--json]
  mvb show <file>`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Config file (YAML or TOML); defaults to mvb.yaml, mvb.yml or mvb.toml when present")
	flags.StringSliceVarP(&a.overrides.Glob, "glob", "g", nil, "Article glob pattern, repeatable; replaces articles.glob")
	flags.StringVar(&a.overrides.Permalink, "permalink", "", "Permalink pattern using :id, :slug, :filename, :year, :month and :day")
	flags.StringVar(&a.overrides.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")

	root.AddCommand(
		newBuildCommand(a),
		newListCommand(a),
		newShowCommand(a),
	)
	return root
}

// load resolves configuration, logging and the article collection. Every
// entry logged during the load carries the command name.
func (a *app) load(ctx context.Context, command string) (mvb.Config, interfaces.LoggerProvider, *mvb.Collection, error) {
	cfg, err := bootstrap.LoadConfig(a.configPath, a.overrides)
	if err != nil {
		return mvb.Config{}, nil, nil, err
	}
	provider, err := bootstrap.LoggerProvider(cfg.Logging, a.stderr)
	if err != nil {
		return mvb.Config{}, nil, nil, err
	}
	opts, err := mvb.OptionsFromConfig(cfg, provider)
	if err != nil {
		return mvb.Config{}, nil, nil, err
	}
	ctx = logging.ContextWithFields(ctx, map[string]any{"command": command})
	collection, err := mvb.Load(ctx, opts)
	if err != nil {
		return mvb.Config{}, nil, nil, err
	}
	return cfg, provider, collection, nil
}
