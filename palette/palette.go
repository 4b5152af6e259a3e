// Copyright (c) 2026, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette loads named color collections and summarizes their
// colors. A palette is an ordered list of color sets plus a reverse
// name lookup; it can be parsed from a simple line format (see
// [Parse]), from TOML (see [ParseTOML]), or built in code.
package palette

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lumencolor/lumen"
)

// ErrColorWithoutSet is returned when a color is declared before any
// color set has been started.
var ErrColorWithoutSet = errors.New("palette: color declared before any color set")

// Set is one named, ordered group of colors within a palette.
type Set struct {
	Name   string
	Colors []lumen.SRGB
}

// Palette is an ordered collection of color sets with a name for each
// color. The zero value is an empty palette ready for [Palette.AddSet].
type Palette struct {
	sets  []Set
	names map[color.RGBA]string
}

// AddSet starts a new, empty color set; following [Palette.Add] calls
// append to it.
func (p *Palette) AddSet(name string) {
	p.sets = append(p.sets, Set{Name: name})
}

// Add appends a named color to the current (last started) set.
func (p *Palette) Add(name string, c lumen.SRGB) error {
	if len(p.sets) == 0 {
		return fmt.Errorf("%w: %q", ErrColorWithoutSet, name)
	}
	s := &p.sets[len(p.sets)-1]
	s.Colors = append(s.Colors, c)
	if p.names == nil {
		p.names = map[color.RGBA]string{}
	}
	p.names[c.AsRGBA()] = name
	return nil
}

// Sets returns the palette's color sets in declaration order.
func (p *Palette) Sets() []Set {
	return p.sets
}

// Name returns the palette's name for the given color, if it has one.
func (p *Palette) Name(ci color.Color) (string, bool) {
	name, ok := p.names[lumen.FromColor(ci).AsRGBA()]
	return name, ok
}

// Open reads a palette file, choosing the format by extension: .toml
// is parsed as TOML, everything else as the line format of [Parse].
func Open(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML(f)
	}
	return Parse(f)
}

// Parse reads the palette line format: a line ending a name with a
// colon starts a color set, and a line of the form
//
//	* color name #RRGGBB
//
// adds a color to the current set. Color names are lowercased; other
// lines are ignored. A color line before any set line is an error.
func Parse(r io.Reader) (*Palette, error) {
	p := &Palette{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, ':'); i >= 0 {
			p.AddSet(strings.TrimSpace(line[:i]))
			continue
		}
		name, c, ok := parseColorLine(line)
		if !ok {
			continue
		}
		if err := p.Add(name, c); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	return p, nil
}

// parseColorLine parses a "* name #RRGGBB" line; ok is false for lines
// of any other shape.
func parseColorLine(line string) (name string, c lumen.SRGB, ok bool) {
	t := strings.TrimSpace(line)
	if !strings.HasPrefix(t, "*") {
		return "", lumen.SRGB{}, false
	}
	rest := t[1:]
	i := strings.IndexByte(rest, '#')
	if i < 0 {
		return "", lumen.SRGB{}, false
	}
	name = strings.ToLower(strings.TrimSpace(rest[:i]))
	hex := rest[i+1:]
	if name == "" || len(hex) < 6 {
		return "", lumen.SRGB{}, false
	}
	c, err := lumen.FromHex(hex[:6])
	if err != nil {
		return "", lumen.SRGB{}, false
	}
	return name, c, true
}
