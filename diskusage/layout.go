// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package diskusage

import (
	"fmt"
	"sort"

	"cloudeng.io/datasize"
	"gopkg.in/yaml.v3"
)

// Layout describes the on-disk layout of a filesystem as specified in
// a YAML configuration file, eg:
//
//	type: simple
//	block_size: 4 KiB
//
// or
//
//	type: raid0
//	stripe_size: 64 KiB
//	num_stripes: 4
type Layout struct {
	Type       string        `yaml:"type" cmd:"one of identity, simple or raid0"`
	BlockSize  datasize.Size `yaml:"block_size,omitempty" cmd:"block size used by a simple layout"`
	StripeSize datasize.Size `yaml:"stripe_size,omitempty" cmd:"the size of the raid0 stripes"`
	NumStripes int           `yaml:"num_stripes,omitempty" cmd:"the number of raid0 stripes"`
}

type layoutFactory func(Layout) (Calculator, error)

var supportedLayouts = map[string]layoutFactory{
	"":         newIdentity,
	"identity": newIdentity,
	"simple":   newSimple,
	"raid0":    newRAID0,
}

// SupportedLayouts returns the names of the supported layouts.
func SupportedLayouts() []string {
	var names []string
	for name := range supportedLayouts {
		if len(name) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Calculator returns the Calculator described by the layout.
func (l Layout) Calculator() (Calculator, error) {
	factory, ok := supportedLayouts[l.Type]
	if !ok {
		return nil, fmt.Errorf("unsupported layout: %q", l.Type)
	}
	return factory(l)
}

// UnmarshalYAML implements yaml.Unmarshaler. The layout is validated
// as it is decoded.
func (l *Layout) UnmarshalYAML(node *yaml.Node) error {
	type plain Layout
	var tmp plain
	if err := node.Decode(&tmp); err != nil {
		return err
	}
	if _, err := Layout(tmp).Calculator(); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*l = Layout(tmp)
	return nil
}

func newIdentity(Layout) (Calculator, error) {
	return Identity{}, nil
}

func newSimple(l Layout) (Calculator, error) {
	bs := int64(l.BlockSize.Bytes())
	if bs <= 0 {
		return nil, fmt.Errorf("invalid block size: %v", l.BlockSize)
	}
	return Simple{BlockSize: bs}, nil
}

func newRAID0(l Layout) (Calculator, error) {
	ss := int64(l.StripeSize.Bytes())
	if ss <= 0 {
		return nil, fmt.Errorf("invalid stripe size: %v", l.StripeSize)
	}
	if l.NumStripes <= 0 {
		return nil, fmt.Errorf("invalid number of stripes: %v", l.NumStripes)
	}
	return RAID0{StripeSize: ss, NumStripes: l.NumStripes}, nil
}
