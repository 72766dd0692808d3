// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrNoSurface is returned when a drawing surface
// can not be allocated.
var ErrNoSurface = errors.New("drawing surface unavailable")

// dpi used by surfaces,
// at 72 dots per inch
// a pixel is a vg point.
const dpi = 72

// A Surface is a raster drawing target.
type Surface struct {
	w, h int
	img  *vgimg.Canvas
	c    draw.Canvas

	// If defined,
	// Trace is called with each primitive
	// drawn on the surface.
	Trace func(Op)
}

// NewSurface returns a new transparent surface
// with the indicated size in pixels.
func NewSurface(w, h int) (*Surface, error) {
	s := &Surface{}
	if err := s.Resize(w, h); err != nil {
		return nil, err
	}
	return s, nil
}

// Resize sets the size of the surface,
// all previous content is lost.
func (s *Surface) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: invalid size %dx%d", ErrNoSurface, w, h)
	}
	s.w, s.h = w, h
	s.Clear()
	return nil
}

// Clear removes the content of the surface.
func (s *Surface) Clear() {
	if s.w <= 0 || s.h <= 0 {
		return
	}
	s.img = vgimg.NewWith(
		vgimg.UseWH(vg.Length(s.w), vg.Length(s.h)),
		vgimg.UseDPI(dpi),
		vgimg.UseBackgroundColor(color.Transparent),
	)
	s.c = draw.New(s.img)
}

// Size returns the size of the surface in pixels.
func (s *Surface) Size() (w, h int) {
	return s.w, s.h
}

// Canvas returns the drawing canvas of the surface.
func (s *Surface) Canvas() draw.Canvas {
	return s.c
}

// Image returns the raster image of the surface.
func (s *Surface) Image() image.Image {
	if s.img == nil {
		return nil
	}
	return s.img.Image()
}

// WritePNG writes the surface content
// as a PNG image.
func (s *Surface) WritePNG(w io.Writer) error {
	if s.img == nil {
		return ErrNoSurface
	}
	png := vgimg.PngCanvas{Canvas: s.img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("while encoding PNG: %v", err)
	}
	return nil
}

func (s *Surface) trace(k Kind, class string) {
	if s.Trace != nil {
		s.Trace(Op{Kind: k, Class: class})
	}
}
