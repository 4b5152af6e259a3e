// Copyright (c) 2026, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/lumencolor/lumen"
)

// tomlPalette is the on-disk TOML shape:
//
//	[[sets]]
//	name = "warm"
//	colors = [
//	    { name = "Crimson", hex = "#DC143C" },
//	]
type tomlPalette struct {
	Sets []struct {
		Name   string `toml:"name"`
		Colors []struct {
			Name string `toml:"name"`
			Hex  string `toml:"hex"`
		} `toml:"colors"`
	} `toml:"sets"`
}

// ParseTOML reads a palette from its TOML form. Color names are
// lowercased, matching [Parse].
func ParseTOML(r io.Reader) (*Palette, error) {
	var doc tomlPalette
	if err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	p := &Palette{}
	for _, s := range doc.Sets {
		p.AddSet(s.Name)
		for _, tc := range s.Colors {
			c, err := lumen.FromHex(tc.Hex)
			if err != nil {
				return nil, fmt.Errorf("palette: set %q: %w", s.Name, err)
			}
			if err := p.Add(strings.ToLower(tc.Name), c); err != nil {
				return nil, err
			}
		}
	}
	return p, nil
}
