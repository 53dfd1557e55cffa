// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/datasize/fsize"
	"cloudeng.io/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type measureFlags struct {
	CommonFlags
	cmdutil.LoggingFlags
	Bytes bool `subcmd:"bytes,false,also display the size in bytes"`
}

func measure(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*measureFlags)
	ctx, cfg, done, err := setup(ctx, &fv.CommonFlags, &fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	return measureFiles(ctx, os.Stdout, cfg, fv.Bytes, args)
}

// measureFiles displays the size of each of the specified files, errors
// are reported once all of the files have been measured.
func measureFiles(ctx context.Context, out io.Writer, cfg Config, showBytes bool, paths []string) error {
	fs := fsize.LocalFS()
	intPrinter := message.NewPrinter(language.English)
	errs := &errors.M{}
	for _, path := range paths {
		size, err := fsize.Measure(ctx, fs, path, cfg.System)
		if err != nil {
			errs.Append(err)
			continue
		}
		if showBytes {
			intPrinter.Fprintf(out, "%s\t%d\t%s\n", cfg.render(size), int64(size.Bytes()), path)
			continue
		}
		fmt.Fprintf(out, "%s\t%s\n", cfg.render(size), path)
	}
	return errs.Err()
}
