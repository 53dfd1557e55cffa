// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package diskusage_test

import (
	"fmt"
	"strings"
	"testing"

	"cloudeng.io/datasize"
	"cloudeng.io/datasize/diskusage"
	"gopkg.in/yaml.v3"
)

func TestCalculators(t *testing.T) {
	for i, tc := range []struct {
		calc     diskusage.Calculator
		size     int64
		expected int64
	}{
		{diskusage.Identity{}, 0, 0},
		{diskusage.Identity{}, 38, 38},
		{diskusage.Simple{BlockSize: 4096}, 0, 0},
		{diskusage.Simple{BlockSize: 4096}, 1, 4096},
		{diskusage.Simple{BlockSize: 4096}, 4096, 4096},
		{diskusage.Simple{BlockSize: 4096}, 4097, 8192},
		{diskusage.Simple{}, 10, 10},
		{diskusage.RAID0{StripeSize: 1024, NumStripes: 4}, 0, 0},
		{diskusage.RAID0{StripeSize: 1024, NumStripes: 4}, 10, 4096},
		{diskusage.RAID0{StripeSize: 1024, NumStripes: 4}, 4096, 4096},
		{diskusage.RAID0{StripeSize: 1024, NumStripes: 4}, 5000, 5120},
		{diskusage.OnDiskSize(func(s int64) int64 { return s * 2 }), 10, 20},
	} {
		if got, want := tc.calc.OnDiskSize(tc.size), tc.expected; got != want {
			t.Errorf("%v: %T(%v): got %v, want %v", i, tc.calc, tc.size, got, want)
		}
	}
}

func TestSize(t *testing.T) {
	s, err := diskusage.Size(diskusage.Simple{BlockSize: 1024}, 10)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := s, datasize.Must(datasize.KiB.Of(1)); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	s, err = diskusage.Size(nil, 10)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := s.Bytes(), 10.0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := diskusage.Size(nil, -1); err == nil {
		t.Errorf("expected an error")
	}
}

func TestLayouts(t *testing.T) {
	type config struct {
		Layout diskusage.Layout `yaml:"layout"`
	}
	for _, tc := range []struct {
		spec     string
		size     int64
		expected int64
	}{
		{"layout:\n  type: identity\n", 100, 100},
		{"layout:\n  type: simple\n  block_size: 4 KiB\n", 100, 4096},
		{"layout:\n  type: simple\n  block_size: 512\n", 100, 512},
		{"layout:\n  type: raid0\n  stripe_size: 1 KiB\n  num_stripes: 2\n", 100, 2048},
		{"other: 1\n", 100, 100},
	} {
		var cfg config
		if err := yaml.Unmarshal([]byte(tc.spec), &cfg); err != nil {
			t.Errorf("%v: %v", tc.spec, err)
			continue
		}
		calc, err := cfg.Layout.Calculator()
		if err != nil {
			t.Errorf("%v: %v", tc.spec, err)
			continue
		}
		if got, want := calc.OnDiskSize(tc.size), tc.expected; got != want {
			t.Errorf("%v: got %v, want %v", tc.spec, got, want)
		}
	}

	for _, tc := range []struct {
		spec string
		err  string
	}{
		{"layout:\n  type: zfs\n", "unsupported layout"},
		{"layout:\n  type: simple\n", "invalid block size"},
		{"layout:\n  type: raid0\n  stripe_size: 1 KiB\n", "invalid number of stripes"},
		{"layout:\n  type: raid0\n  num_stripes: 2\n", "invalid stripe size"},
		{"layout:\n  type: simple\n  block_size: 4 QiB\n", "unknown unit"},
	} {
		var cfg config
		err := yaml.Unmarshal([]byte(tc.spec), &cfg)
		if err == nil || !strings.Contains(err.Error(), tc.err) {
			t.Errorf("%v: got %v, want an error containing %q", tc.spec, err, tc.err)
		}
	}
}

func ExampleLayout() {
	var layout diskusage.Layout
	if err := yaml.Unmarshal([]byte("type: simple\nblock_size: 4 KiB\n"), &layout); err != nil {
		panic(err)
	}
	calc, _ := layout.Calculator()
	size, _ := diskusage.Size(calc, 38)
	fmt.Println(size)
	fmt.Println(diskusage.SupportedLayouts())
	// Output:
	// 4.00 KiB
	// [identity raid0 simple]
}
