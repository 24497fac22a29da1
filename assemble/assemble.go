// Package assemble runs page extraction over the whole manual and merges
// the per-page records into one document.
package assemble

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/fwojciec/gmdocs"
	"golang.org/x/sync/errgroup"
)

// Assembler orchestrates the extraction of a manual.
type Assembler struct {
	// Source lists the pages that may describe a function or variable.
	Source gmdocs.PageSource

	// Extra optionally lists more pages. Pages found only here are
	// scanned for constants.
	Extra gmdocs.PageSource

	Parser      gmdocs.PageParser
	Logger      *slog.Logger
	Concurrency int
}

// Result holds the outcome of an assembly.
type Result struct {
	Manual *gmdocs.Manual

	Pages     int
	Functions int
	Variables int
	Constants int
	Skipped   int // pages with missing sections
	Failed    int // pages that could not be read or parsed

	Collisions []gmdocs.Collision
}

// job is one page to extract.
type job struct {
	path          string
	constantsOnly bool
}

// pageOutcome holds the outcome of extracting a single page.
type pageOutcome struct {
	result *gmdocs.PageResult
	err    error
}

var allSections = []gmdocs.Section{
	gmdocs.SectionName,
	gmdocs.SectionSyntax,
	gmdocs.SectionReturns,
	gmdocs.SectionExample,
}

// Assemble extracts every page and merges the records. Pages are parsed
// concurrently but merged in sorted path order, so name collisions are
// resolved the same way on every run. Per-page failures are logged and
// counted; only source and context errors are returned.
func (a *Assembler) Assemble(ctx context.Context) (*Result, error) {
	logger := a.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	jobs, err := a.jobs(ctx)
	if err != nil {
		return nil, err
	}

	concurrency := a.Concurrency
	if concurrency <= 0 {
		concurrency = 8
	}

	outcomes := make([]pageOutcome, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := a.Parser.ParsePage(gctx, j.path)
			outcomes[i] = pageOutcome{result: result, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{
		Manual: gmdocs.NewManual(),
		Pages:  len(jobs),
	}

	for i, j := range jobs {
		out := outcomes[i]
		if out.err != nil {
			res.Failed++
			logger.Warn("page failed", "page", j.path, "err", out.err)
			continue
		}

		page := out.result
		if j.constantsOnly {
			page = &gmdocs.PageResult{Path: page.Path, Link: page.Link, Constants: page.Constants}
		} else if !page.OK() {
			res.Skipped++
			logger.Info("page skipped",
				"page", j.path,
				"found", found(page.Missing),
				"missing", page.Missing,
			)
		} else if err := validate(page); err != nil {
			res.Skipped++
			logger.Warn("page skipped", "page", j.path, "err", err)
			page = &gmdocs.PageResult{Path: page.Path, Link: page.Link, Constants: page.Constants}
		}

		for _, c := range res.Manual.Merge(page) {
			logger.Warn("name collision",
				"category", c.Category,
				"name", c.Name,
				"previous", c.Previous,
				"current", c.Current,
			)
			res.Collisions = append(res.Collisions, c)
		}
	}

	res.Functions = len(res.Manual.Functions)
	res.Variables = len(res.Manual.Variables)
	res.Constants = len(res.Manual.Constants)
	return res, nil
}

// jobs lists the pages to extract in sorted path order.
func (a *Assembler) jobs(ctx context.Context) ([]job, error) {
	pages, err := a.Source.Pages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}

	seen := make(map[string]struct{}, len(pages))
	jobs := make([]job, 0, len(pages))
	for _, p := range pages {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		jobs = append(jobs, job{path: p})
	}

	if a.Extra != nil {
		extra, err := a.Extra.Pages(ctx)
		if err != nil {
			return nil, fmt.Errorf("list extra pages: %w", err)
		}
		for _, p := range extra {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			jobs = append(jobs, job{path: p, constantsOnly: true})
		}
	}

	sort.Slice(jobs, func(i, j int) bool { return jobs[i].path < jobs[j].path })
	return jobs, nil
}

func validate(page *gmdocs.PageResult) error {
	if page.Function != nil {
		return page.Function.Validate()
	}
	return page.Variable.Validate()
}

// found lists the sections that are not missing.
func found(missing []gmdocs.Section) []gmdocs.Section {
	var out []gmdocs.Section
	for _, s := range allSections {
		isMissing := false
		for _, m := range missing {
			if m == s {
				isMissing = true
				break
			}
		}
		if !isMissing {
			out = append(out, s)
		}
	}
	return out
}
