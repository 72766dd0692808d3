// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package legend implements a legend builder
// that collects the entries of the layers
// actually drawn in a render pass.
package legend

import (
	"github.com/js-arias/ensplot/render"
	"github.com/js-arias/ensplot/style"
)

// Size is the size of a swatch,
// in pixels.
const Size = 12

// Swatch is the kind of marker
// used to identify a legend entry.
type Swatch int

// Valid swatch kinds.
const (
	SimpleLine Swatch = iota
	CircledLine
	FilledCircle
	ErrorBar
	FilledRect
)

var swatchNames = map[Swatch]string{
	SimpleLine:   "line",
	CircledLine:  "circled-line",
	FilledCircle: "filled-circle",
	ErrorBar:     "error-bar",
	FilledRect:   "filled-rect",
}

func (s Swatch) String() string {
	if n, ok := swatchNames[s]; ok {
		return n
	}
	return "unknown"
}

// Draw draws the swatch with a given style
// into a surface,
// with its lower left corner at x, y.
func (s Swatch) Draw(sf *render.Surface, st style.Style, x, y float64) {
	id := func(v float64) float64 { return v }
	p := render.Painter{Style: st, X: id, Y: id}

	mid := y + Size/2
	switch s {
	case SimpleLine:
		p.Line(sf, []float64{x, x + Size}, []float64{mid, mid})
	case CircledLine:
		p.Line(sf, []float64{x, x + Size}, []float64{mid, mid})
		p.Circle(sf, x+Size/2, mid)
	case FilledCircle:
		p.Circle(sf, x+Size/2, mid)
	case ErrorBar:
		p.ErrorBar(sf, x+Size/2, mid, Size/2-1)
	case FilledRect:
		p.Area(sf, []float64{x + 1, x + Size - 1, x + Size - 1, x + 1}, []float64{y + 1, y + 1, y + Size - 1, y + Size - 1})
	}
}

// An Entry is a legend entry.
type Entry struct {
	Style  style.Style
	Label  string
	Swatch Swatch
}

// A Builder collects legend entries.
//
// A builder must be reset at the start of each render pass,
// so it only contains the entries of the drawn layers.
type Builder struct {
	entries []Entry
}

// Reset removes all the entries.
func (b *Builder) Reset() {
	b.entries = nil
}

// Add adds an entry.
// An entry with the same style class,
// label,
// and swatch of a previous entry
// is ignored.
// It returns true if the entry was added.
func (b *Builder) Add(st style.Style, label string, sw Swatch) bool {
	for _, e := range b.entries {
		if e.Style.Name == st.Name && e.Label == label && e.Swatch == sw {
			return false
		}
	}
	b.entries = append(b.entries, Entry{
		Style:  st,
		Label:  label,
		Swatch: sw,
	})
	return true
}

// Len returns the number of entries.
func (b *Builder) Len() int {
	return len(b.entries)
}

// Entries returns the entries
// in the order they were added.
func (b *Builder) Entries() []Entry {
	e := make([]Entry, len(b.entries))
	copy(e, b.entries)
	return e
}
