// Copyright (c) 2026, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"golang.org/x/image/colornames"

	"github.com/lumencolor/lumen"
)

// Web returns a palette of the SVG 1.1 web color names, as a single
// "web" color set in alphabetical order.
func Web() *Palette {
	p := &Palette{}
	p.AddSet("web")
	for _, name := range colornames.Names {
		p.Add(name, lumen.FromColor(colornames.Map[name]))
	}
	return p
}
