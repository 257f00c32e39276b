package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-mvb/internal/logging"
	"github.com/goliatone/go-mvb/internal/site"
)

func newBuildCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render article pages and site pages into the output directory",
		Long: `Build loads the collection, maps every article onto site.template at its
permalink, renders site.pages with the same view data and writes the
result under site.output_dir.

Examples:
  mvb build
  mvb build --config blog.toml --output public`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runBuild(cmd)
		},
	}
	cmd.Flags().StringVarP(&a.overrides.OutputDir, "output", "o", "", "Output directory; replaces site.output_dir")
	return cmd
}

func (a *app) runBuild(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, provider, collection, err := a.load(ctx, cmd.Name())
	if err != nil {
		return err
	}
	if err := cfg.Site.Validate(); err != nil {
		return err
	}

	template, err := os.ReadFile(cfg.Site.Template)
	if err != nil {
		return fmt.Errorf("read template %s: %w", cfg.Site.Template, err)
	}

	logger := logging.SiteLogger(provider)
	pipeline, err := site.NewPipeline(collection, site.PipelineOptions{
		Template: template,
		DataKey:  cfg.Site.DataKey,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	files := make([]*site.File, 0, len(collection.Articles))
	for _, article := range collection.Articles {
		files = append(files, &site.File{Path: article.FilePath, Base: cfg.Site.Base})
	}
	if pages := cfg.Site.Pages.Compact(); len(pages) > 0 {
		extra, err := site.ReadFiles(pages, cfg.Site.Base)
		if err != nil {
			return err
		}
		files = append(files, extra...)
	}

	builder, err := site.NewBuilder(site.BuilderConfig{
		OutputDir: cfg.Site.OutputDir,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	result, err := builder.Build(ctx, pipeline.ProcessAll(files))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "built %d pages into %s\n", len(result.Written), cfg.Site.OutputDir)
	return nil
}
