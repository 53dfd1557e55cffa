// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"cloudeng.io/cmdutil"
	"cloudeng.io/datasize"
)

type convertFlags struct {
	CommonFlags
	cmdutil.LoggingFlags
}

type calcFlags struct {
	CommonFlags
	cmdutil.LoggingFlags
	Bytes bool `subcmd:"bytes,false,display sizes in bytes rather than in the best unit"`
}

func convert(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*convertFlags)
	_, cfg, done, err := setup(ctx, &fv.CommonFlags, &fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	return convertSize(os.Stdout, cfg, args[0], args[1])
}

// convertSize displays size in the specified unit, or in the best unit
// for the configured system if unit is "best".
func convertSize(out io.Writer, cfg Config, size, unit string) error {
	s, err := datasize.Parse(size)
	if err != nil {
		return err
	}
	if unit == "best" {
		fmt.Fprintln(out, cfg.render(s))
		return nil
	}
	u, err := datasize.LookupUnit(unit)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%.*f\n", cfg.Precision, s.To(u))
	return nil
}

func calc(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*calcFlags)
	_, cfg, done, err := setup(ctx, &fv.CommonFlags, &fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	result, err := evaluate(args)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, formatOperand(cfg, result, fv.Bytes))
	return nil
}

// evaluate evaluates an expression of the form
// <operand> <op> <operand> [<op> <operand>]... from left to right.
func evaluate(args []string) (datasize.Operand, error) {
	if len(args)%2 == 0 {
		return datasize.Operand{}, fmt.Errorf("incomplete expression: %v arguments", len(args))
	}
	result, err := datasize.ParseOperand(args[0])
	if err != nil {
		return datasize.Operand{}, err
	}
	for i := 1; i < len(args); i += 2 {
		op, err := datasize.ParseOp(args[i])
		if err != nil {
			return datasize.Operand{}, err
		}
		operand, err := datasize.ParseOperand(args[i+1])
		if err != nil {
			return datasize.Operand{}, err
		}
		if result, err = datasize.Apply(result, op, operand); err != nil {
			return datasize.Operand{}, err
		}
	}
	return result, nil
}

func formatOperand(cfg Config, o datasize.Operand, bytes bool) string {
	if s, ok := o.Size(); ok {
		if bytes {
			return strconv.FormatFloat(s.Bytes(), 'f', -1, 64) + " " + datasize.Byte.Symbol()
		}
		return cfg.render(s)
	}
	f, _ := o.Scalar()
	return strconv.FormatFloat(f, 'g', -1, 64)
}
