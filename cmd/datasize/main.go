// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command datasize measures files and directory trees, converts between
// units of data size and performs simple arithmetic on sizes.
package main

import (
	"context"
	"errors"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

var cmdSet *subcmd.CommandSet

// CommonFlags represents the flags shared by all commands, the logging
// flags are shared via cmdutil.LoggingFlags.
type CommonFlags struct {
	ConfigFile string `subcmd:"config,,'YAML configuration file, if specified its logging section overrides the logging flags'"`
	System     string `subcmd:"system,,'the unit system to use: NIST or SI, overrides the configuration file'"`
	Precision  int    `subcmd:"precision,-1,'the number of digits displayed after the decimal point, overrides the configuration file'"`
}

func init() {
	measureFlagSet := subcmd.NewFlagSet()
	measureFlagSet.MustRegisterFlagStruct(&measureFlags{}, nil, nil)
	walkFlagSet := subcmd.NewFlagSet()
	walkFlagSet.MustRegisterFlagStruct(&walkFlags{}, nil, nil)
	convertFlagSet := subcmd.NewFlagSet()
	convertFlagSet.MustRegisterFlagStruct(&convertFlags{}, nil, nil)
	calcFlagSet := subcmd.NewFlagSet()
	calcFlagSet.MustRegisterFlagStruct(&calcFlags{}, nil, nil)
	configFlagSet := subcmd.NewFlagSet()
	configFlagSet.MustRegisterFlagStruct(&configFlags{}, nil, nil)

	measureCmd := subcmd.NewCommand("measure", measureFlagSet, measure, subcmd.AtLeastNArguments(1))
	measureCmd.Document("display the size of the specified files", "<file>...")

	walkCmd := subcmd.NewCommand("walk", walkFlagSet, walk, subcmd.AtLeastNArguments(1))
	walkCmd.Document("display the sizes of all files in the specified directory trees", "<directory>...")

	convertCmd := subcmd.NewCommand("convert", convertFlagSet, convert, subcmd.ExactlyNumArguments(2))
	convertCmd.Document("convert a size to the specified unit, or to the best unit if the unit is 'best'", "<size>", "<unit>")

	calcCmd := subcmd.NewCommand("calc", calcFlagSet, calc, subcmd.AtLeastNArguments(3))
	calcCmd.Document("evaluate an arithmetic expression of sizes and scalars from left to right, eg. '1 GiB' / 4", "<operand>", "<op>", "<operand>", "...")

	configCmd := subcmd.NewCommand("config", configFlagSet, config, subcmd.WithoutArguments())
	configCmd.Document("display the effective configuration")

	cmdSet = subcmd.NewCommandSet(calcCmd, configCmd, convertCmd, measureCmd, walkCmd)
}

var errInterrupt = errors.New("interrupt")

func main() {
	ctx, cancel := context.WithCancelCause(context.Background())
	cmdutil.HandleSignals(func() { cancel(errInterrupt) }, os.Interrupt)
	err := cmdSet.Dispatch(ctx)
	if context.Cause(ctx) == errInterrupt {
		cmdutil.Exit("%v", errInterrupt)
	}
	if err != nil {
		cmdutil.Exit("%v", err)
	}
}
