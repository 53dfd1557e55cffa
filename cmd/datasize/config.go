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
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/datasize"
	"cloudeng.io/datasize/diskusage"
	"cloudeng.io/datasize/fsize"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

// Config represents the YAML configuration file, eg:
//
//	system: SI
//	precision: 3
//	follow_symlinks: true
//	relative_paths: false
//	filter: "*.log"
//	layout:
//	  type: simple
//	  block_size: 4 KiB
//	logging:
//	  level: 3
//	  format: text
type Config struct {
	System         datasize.System       `yaml:"system" cmd:"the unit system used for display: NIST or SI"`
	Precision      int                   `yaml:"precision" cmd:"the number of digits displayed after the decimal point"`
	FollowSymlinks bool                  `yaml:"follow_symlinks" cmd:"follow symbolic links when walking directory trees"`
	RelativePaths  bool                  `yaml:"relative_paths" cmd:"display paths relative to the current directory"`
	Filter         string                `yaml:"filter,omitempty" cmd:"only display files whose names match this glob pattern"`
	Layout         diskusage.Layout      `yaml:"layout" cmd:"the on-disk layout used to calculate disk usage"`
	Logging        cmdutil.LoggingConfig `yaml:"logging" cmd:"logging configuration"`
}

func defaultConfig() Config {
	return Config{
		System:    datasize.NIST,
		Precision: 2,
		Layout:    diskusage.Layout{Type: "identity"},
		Logging:   cmdutil.LoggingConfig{Format: "text"},
	}
}

// loadConfig returns the configuration specified by the config file,
// if any, with the command line flags applied.
func loadConfig(ctx context.Context, cf *CommonFlags, lf *cmdutil.LoggingFlags) (Config, error) {
	cfg := defaultConfig()
	if len(cf.ConfigFile) > 0 {
		if err := cmdyaml.ParseConfigFile(ctx, cf.ConfigFile, &cfg); err != nil {
			return Config{}, err
		}
	} else {
		cfg.Logging = lf.LoggingConfig()
	}
	if len(cf.System) > 0 {
		system, err := datasize.ParseSystem(cf.System)
		if err != nil {
			return Config{}, err
		}
		cfg.System = system
	}
	if cf.Precision >= 0 {
		cfg.Precision = cf.Precision
	}
	if !cfg.System.Valid() {
		return Config{}, fmt.Errorf("invalid unit system: %v", cfg.System)
	}
	return cfg, nil
}

// setup loads the configuration and creates the logger to be used by
// a command. The returned function must be called to close the logger.
func setup(ctx context.Context, cf *CommonFlags, lf *cmdutil.LoggingFlags) (context.Context, Config, func(), error) {
	cfg, err := loadConfig(ctx, cf, lf)
	if err != nil {
		return ctx, Config{}, nil, err
	}
	logger, err := cfg.Logging.NewLogger()
	if err != nil {
		return ctx, Config{}, nil, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), cfg, func() { logger.Close() }, nil
}

// walkerOptions returns the fsize options specified by the configuration.
func (c Config) walkerOptions() ([]fsize.Option, error) {
	calc, err := c.Layout.Calculator()
	if err != nil {
		return nil, err
	}
	opts := []fsize.Option{
		fsize.FollowSymlinks(c.FollowSymlinks),
		fsize.WithOnDiskSize(calc),
	}
	if c.RelativePaths {
		opts = append(opts, fsize.RelativeTo("."))
	}
	if len(c.Filter) > 0 {
		opts = append(opts, fsize.WithFilter(c.Filter))
	}
	return opts, nil
}

func (c Config) render(s datasize.Size) string {
	return s.Render(c.System, c.Precision)
}

type configFlags struct {
	CommonFlags
	cmdutil.LoggingFlags
}

func config(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*configFlags)
	_, cfg, done, err := setup(ctx, &fv.CommonFlags, &fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	return printConfig(os.Stdout, cfg)
}

func printConfig(out io.Writer, cfg Config) error {
	buf, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(buf)
	return err
}
