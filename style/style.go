// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package style implements an immutable registry
// of visual styles
// for the semantic series classes of an ensemble plot
// (observations, reference case, and ensemble cases).
//
// A registry is built once,
// any derived value
// (for example the fill of the ensemble cases,
// blended with white)
// is calculated at construction time.
// After that,
// the registry is read only
// and can be shared by all renderers.
package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Semantic class names.
const (
	DefaultClass = "default"
	Observation  = "observation"
	ErrorBar     = "observation_error_bar"
	ObsArea      = "observation_area"
	Refcase      = "refcase"
	EnsemblePref = "ensemble_"
)

// FillAlpha is the alpha of ensemble fills
// after blending them with white.
const FillAlpha = 0.7

// A Style is a visual style
// used to draw a series.
type Style struct {
	// Name is the class name of the style.
	Name string

	Stroke color.NRGBA
	Fill   color.NRGBA
	Width  float64

	// Dashes is the dash pattern
	// (alternating lengths of drawn and skipped segments).
	// An empty pattern means a solid line.
	Dashes []float64

	// Cap is the line cap
	// ("butt", "round", or "square").
	Cap string
}

// LineStyle returns the solid line style
// of a style.
func (s Style) LineStyle() draw.LineStyle {
	return draw.LineStyle{
		Color: s.Stroke,
		Width: vg.Length(s.Width),
	}
}

// WithDashes returns a copy of the style
// with the indicated dash pattern.
func (s Style) WithDashes(dashes ...float64) Style {
	s.Dashes = slices.Clone(dashes)
	return s
}

// Dashed returns true if the style uses a dash pattern.
func (s Style) Dashed() bool {
	for _, d := range s.Dashes {
		if d > 0 {
			return true
		}
	}
	return false
}

// EnsembleName returns the class name
// of the k-th ensemble case
// (starting from 0).
func EnsembleName(k int) string {
	return EnsemblePref + strconv.Itoa(k+1)
}

// A Registry is an immutable set of styles.
type Registry struct {
	raw     map[string]Style
	styles  map[string]Style
	palette Gradienter
	cases   int
}

// New creates a new registry from a set of styles.
//
// Fills of ensemble styles are blended with white
// using FillAlpha as the resulting alpha.
// If no default style is given,
// the built-in default is used.
// The palette is used to derive ensemble styles
// beyond the ones explicitly defined;
// if nil, the iridescent palette is used.
func New(p Gradienter, styles ...Style) *Registry {
	if p == nil {
		p = Iridescent{}
	}
	r := &Registry{
		raw:     make(map[string]Style, len(styles)),
		styles:  make(map[string]Style, len(styles)),
		palette: p,
	}

	for _, s := range styles {
		s.Name = strings.ToLower(strings.TrimSpace(s.Name))
		if s.Name == "" {
			continue
		}
		s.Dashes = slices.Clone(s.Dashes)
		r.raw[s.Name] = s

		if strings.HasPrefix(s.Name, EnsemblePref) {
			s.Fill = BlendWithWhite(s.Fill, FillAlpha)
		}
		r.styles[s.Name] = s
	}
	if _, ok := r.styles[DefaultClass]; !ok {
		r.styles[DefaultClass] = defaultStyles[0]
	}

	for k := 0; ; k++ {
		if _, ok := r.styles[EnsembleName(k)]; !ok {
			r.cases = k
			break
		}
	}
	return r
}

// Default returns a registry
// with the default styles.
func Default() *Registry {
	return New(Iridescent{}, defaultStyles...)
}

// Defaults returns a copy of the default styles,
// before any blending.
func Defaults() []Style {
	return slices.Clone(defaultStyles)
}

// Style returns the style of a given class.
// If the class is not defined,
// it returns the default style
// with the name of the class.
func (r *Registry) Style(class string) Style {
	class = strings.ToLower(strings.TrimSpace(class))
	if s, ok := r.styles[class]; ok {
		s.Dashes = slices.Clone(s.Dashes)
		return s
	}
	if strings.HasPrefix(class, EnsemblePref) {
		k, err := strconv.Atoi(strings.TrimPrefix(class, EnsemblePref))
		if err == nil && k > 0 {
			return r.Ensemble(k - 1)
		}
	}
	s := r.styles[DefaultClass]
	s.Name = class
	s.Dashes = slices.Clone(s.Dashes)
	return s
}

// Ensemble returns the style of the k-th ensemble case
// (starting from 0).
//
// Cases without an explicit style
// take their colors from the registry palette.
func (r *Registry) Ensemble(k int) Style {
	name := EnsembleName(k)
	if s, ok := r.styles[name]; ok {
		s.Dashes = slices.Clone(s.Dashes)
		return s
	}

	// golden ratio steps give well separated colors
	// for any number of cases
	v := float64(k-r.cases) * 0.618033988749895
	v -= float64(int(v))
	c := color.NRGBAModel.Convert(r.palette.Gradient(v)).(color.NRGBA)

	base := r.styles[DefaultClass]
	stroke := c
	stroke.A = alpha(0.8)
	fill := c
	fill.A = alpha(0.5)
	return Style{
		Name:   name,
		Stroke: stroke,
		Fill:   BlendWithWhite(fill, FillAlpha),
		Width:  base.Width,
		Cap:    base.Cap,
	}
}

// Cases returns the number of ensemble styles
// explicitly defined in the registry.
func (r *Registry) Cases() int {
	return r.cases
}

// Classes returns the defined classes
// in the registry.
func (r *Registry) Classes() []string {
	cls := make([]string, 0, len(r.styles))
	for c := range r.styles {
		cls = append(cls, c)
	}
	slices.Sort(cls)
	return cls
}

var defaultStyles = []Style{
	{
		Name:   DefaultClass,
		Stroke: color.NRGBA{0, 0, 0, 255},
		Fill:   color.NRGBA{200, 200, 200, 255},
		Width:  1,
		Cap:    "butt",
	},
	{
		Name:   Observation,
		Stroke: color.NRGBA{0, 0, 0, 255},
		Fill:   color.NRGBA{0, 0, 0, 0},
		Width:  1,
		Cap:    "butt",
	},
	{
		Name:   ErrorBar,
		Stroke: color.NRGBA{0, 0, 0, 255},
		Fill:   color.NRGBA{0, 0, 0, 0},
		Width:  1,
		Cap:    "butt",
	},
	{
		Name:   ObsArea,
		Stroke: color.NRGBA{0, 0, 0, alpha(0.15)},
		Fill:   color.NRGBA{0, 0, 0, alpha(0.2)},
		Width:  2,
		Cap:    "butt",
	},
	{
		Name:   Refcase,
		Stroke: color.NRGBA{0, 0, 0, alpha(0.7)},
		Fill:   color.NRGBA{0, 0, 0, 0},
		Width:  2,
		Cap:    "butt",
	},
	{
		Name:   EnsembleName(0),
		Stroke: color.NRGBA{56, 108, 176, alpha(0.8)},
		Fill:   color.NRGBA{56, 108, 176, alpha(0.5)},
		Width:  1,
		Cap:    "butt",
	},
	{
		Name:   EnsembleName(1),
		Stroke: color.NRGBA{127, 201, 127, alpha(0.8)},
		Fill:   color.NRGBA{127, 201, 127, alpha(0.5)},
		Width:  1,
		Cap:    "butt",
	},
	{
		Name:   EnsembleName(2),
		Stroke: color.NRGBA{253, 192, 134, alpha(0.8)},
		Fill:   color.NRGBA{253, 192, 134, alpha(0.5)},
		Width:  1,
		Cap:    "butt",
	},
	{
		Name:   EnsembleName(3),
		Stroke: color.NRGBA{240, 2, 127, alpha(0.8)},
		Fill:   color.NRGBA{240, 2, 127, alpha(0.5)},
		Width:  1,
		Cap:    "butt",
	},
	{
		Name:   EnsembleName(4),
		Stroke: color.NRGBA{191, 91, 23, alpha(0.8)},
		Fill:   color.NRGBA{191, 91, 23, alpha(0.5)},
		Width:  1,
		Cap:    "butt",
	},
}

func (s Style) String() string {
	return fmt.Sprintf("%s: stroke %s fill %s width %g", s.Name, FormatColor(s.Stroke), FormatColor(s.Fill), s.Width)
}
