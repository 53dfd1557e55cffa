// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"iter"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/datasize/fsize"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type walkFlags struct {
	CommonFlags
	cmdutil.LoggingFlags
	FollowSymlinks bool   `subcmd:"follow-symlinks,false,'follow symbolic links, overrides the configuration file'"`
	Relative       bool   `subcmd:"relative,false,'display paths relative to the current directory, overrides the configuration file'"`
	Filter         string `subcmd:"filter,,'only display files whose names match this glob pattern, overrides the configuration file'"`
	Summary        bool   `subcmd:"summary,false,only display the totals for each directory tree"`
}

func walk(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*walkFlags)
	ctx, cfg, done, err := setup(ctx, &fv.CommonFlags, &fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	cfg.FollowSymlinks = cfg.FollowSymlinks || fv.FollowSymlinks
	cfg.RelativePaths = cfg.RelativePaths || fv.Relative
	if len(fv.Filter) > 0 {
		cfg.Filter = fv.Filter
	}
	return walkTrees(ctx, os.Stdout, cfg, fv.Summary, args)
}

// walkTrees displays the sizes of the files in each of the specified
// directory trees followed by a summary. An error in one tree does not
// prevent the remaining trees from being walked.
func walkTrees(ctx context.Context, out io.Writer, cfg Config, summaryOnly bool, roots []string) error {
	opts, err := cfg.walkerOptions()
	if err != nil {
		return err
	}
	walker := fsize.NewWalker(fsize.LocalFS(), opts...)
	intPrinter := message.NewPrinter(language.English)
	errs := &errors.M{}
	for _, root := range roots {
		ctxlog.Logger(ctx).Info("walking", "root", root, "follow_symlinks", cfg.FollowSymlinks)
		seq := walker.Walk(ctx, root)
		if !summaryOnly {
			seq = display(out, cfg, seq)
		}
		summary, err := fsize.Summarize(seq)
		if err != nil {
			errs.Append(err)
			if ctx.Err() != nil {
				break
			}
			continue
		}
		intPrinter.Fprintf(out, "%v: %v files, %s\n", root, summary.Files, cfg.render(summary.Total))
		if summary.Files > 0 {
			fmt.Fprintf(out, "largest: %s\t%s\n", cfg.render(summary.Largest.Size), summary.Largest.Path)
		}
	}
	return errs.Err()
}

// display returns a walk that displays each entry as it is consumed.
func display(out io.Writer, cfg Config, seq iter.Seq2[fsize.Entry, error]) iter.Seq2[fsize.Entry, error] {
	return func(yield func(fsize.Entry, error) bool) {
		for entry, err := range seq {
			if err == nil {
				fmt.Fprintf(out, "%s\t%s\n", cfg.render(entry.Size), entry.Path)
			}
			if !yield(entry, err) {
				return
			}
		}
	}
}
