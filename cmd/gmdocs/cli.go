package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/gmdocs"
	"github.com/fwojciec/gmdocs/assemble"
	"github.com/fwojciec/gmdocs/fs"
	"github.com/fwojciec/gmdocs/goquery"
	gmslog "github.com/fwojciec/gmdocs/slog"
)

// Dependencies holds the services and writers used by a run.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Builds gmdocs.BuildService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Input       string `arg:"" type:"existingdir" help:"Root directory of the unpacked manual"`
	Output      string `short:"o" type:"path" help:"Output file (default stdout)"`
	Check       bool   `short:"c" help:"Parse everything and print a summary without writing"`
	DB          string `name:"db" type:"path" help:"Also store the build in this SQLite database"`
	BaseURL     string `name:"base-url" default:"${base_url}" env:"GMDOCS_BASE_URL" help:"Base URL for generated links"`
	Index       string `default:"${index}" help:"Keyword index file, relative to the input directory"`
	ScanTree    bool   `name:"scan-tree" default:"true" negatable:"" help:"Scan every page under the input for constants"`
	Concurrency int    `short:"j" default:"8" env:"GMDOCS_CONCURRENCY" help:"Pages parsed concurrently"`
	Verbose     bool   `short:"v" help:"Log every page"`
}

// Run extracts the manual and writes it, or prints a summary in check
// mode.
func (c *CLI) Run(deps *Dependencies) error {
	ctx := deps.Ctx
	logger := deps.Logger

	linker, err := gmdocs.NewLinker(c.Input, c.BaseURL)
	if err != nil {
		return err
	}
	root := linker.Root()

	parser := goquery.NewPageParser(linker, goquery.WithLogger(logger))

	a := &assemble.Assembler{
		Source:      gmslog.NewLoggingPageSource(fs.NewIndexSource(root, c.Index), "index", logger),
		Parser:      gmslog.NewLoggingPageParser(parser, logger),
		Logger:      logger,
		Concurrency: c.Concurrency,
	}
	if c.ScanTree {
		a.Extra = gmslog.NewLoggingPageSource(fs.NewTreeSource(root), "tree", logger)
	}

	res, err := a.Assemble(ctx)
	if err != nil {
		return err
	}

	digest, err := fs.Digest(res.Manual)
	if err != nil {
		return fmt.Errorf("digest manual: %w", err)
	}

	if c.Check {
		printSummary(deps.Stdout, res, digest)
		return nil
	}

	logger.Info("extraction complete",
		"pages", res.Pages,
		"functions", res.Functions,
		"variables", res.Variables,
		"constants", res.Constants,
		"skipped", res.Skipped,
		"failed", res.Failed,
		"collisions", len(res.Collisions),
		"digest", digest,
	)

	writer := gmslog.NewLoggingManualWriter(fs.NewWriter(c.Output, deps.Stdout), logger)
	if err := writer.WriteManual(ctx, res.Manual); err != nil {
		return fmt.Errorf("write manual: %w", err)
	}

	if deps.Builds != nil {
		build := &gmdocs.Build{Digest: digest}
		if err := deps.Builds.CreateBuild(ctx, build, res.Manual); err != nil {
			return fmt.Errorf("store build: %w", err)
		}
		logger.Info("stored build", "id", build.ID)
	}

	return nil
}

func printSummary(w io.Writer, res *assemble.Result, digest string) {
	fmt.Fprintf(w, "pages:      %d\n", res.Pages)
	fmt.Fprintf(w, "functions:  %d\n", res.Functions)
	fmt.Fprintf(w, "variables:  %d\n", res.Variables)
	fmt.Fprintf(w, "constants:  %d\n", res.Constants)
	fmt.Fprintf(w, "skipped:    %d\n", res.Skipped)
	fmt.Fprintf(w, "failed:     %d\n", res.Failed)
	fmt.Fprintf(w, "collisions: %d\n", len(res.Collisions))
	fmt.Fprintf(w, "digest:     %s\n", digest)
}
