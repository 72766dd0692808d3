// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package scale implements the mapping
// between data space
// (time or scalar values)
// and pixel space,
// with user pinned bounds
// that take precedence over data derived bounds.
package scale

import (
	"time"

	"gonum.org/v1/plot"
)

// Kind is the kind of values of an axis.
type Kind int

// Valid axis kinds.
const (
	Linear Kind = iota

	// Time values are seconds since the Unix epoch.
	Time
)

// DefaultTicks is the approximate number of ticks
// used to nicen a domain.
const DefaultTicks = 10

// A Domain is the extent of the data space.
type Domain struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Pins are the user defined bounds of a domain.
// A nil value means that the bound is derived from the data.
// Pinned bounds replace the data bounds
// before the domain is nicened.
type Pins struct {
	XMin, XMax *float64
	YMin, YMax *float64
}

// Value returns a pointer to v,
// to be used as a pin.
func Value(v float64) *float64 {
	return &v
}

// Equal returns true if both pins are the same.
func (p Pins) Equal(o Pins) bool {
	return samePin(p.XMin, o.XMin) && samePin(p.XMax, o.XMax) &&
		samePin(p.YMin, o.YMin) && samePin(p.YMax, o.YMax)
}

func samePin(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (p Pins) clone() Pins {
	return Pins{
		XMin: clonePin(p.XMin),
		XMax: clonePin(p.XMax),
		YMin: clonePin(p.YMin),
		YMax: clonePin(p.YMax),
	}
}

func clonePin(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return Value(*v)
}

// A Scale is a linear projection
// from a domain to a pixel range.
type Scale struct {
	D0, D1 float64 // domain
	R0, R1 float64 // range
}

// Map projects a value into the range.
func (s Scale) Map(v float64) float64 {
	if s.D1 == s.D0 {
		return s.R0
	}
	return s.R0 + (v-s.D0)/(s.D1-s.D0)*(s.R1-s.R0)
}

// A Mapping is an immutable pair of scales,
// used by a render pass for its whole duration.
type Mapping struct {
	X, Y Scale
}

// MapX projects an x value into pixel space.
func (m Mapping) MapX(v float64) float64 { return m.X.Map(v) }

// MapY projects an y value into pixel space.
// Pixels are counted from the bottom of the surface.
func (m Mapping) MapY(v float64) float64 { return m.Y.Map(v) }

// Manager keeps the effective domain of a plot
// and its pixel extent.
type Manager struct {
	xKind Kind
	count int

	data    Domain
	hasData bool
	pins    Pins
	eff     Domain

	width, height float64

	onChange func()
}

// NewManager returns a new manager
// with a [0, 1] domain
// and an empty pixel extent.
func NewManager(x Kind) *Manager {
	m := &Manager{
		xKind: x,
		count: DefaultTicks,
	}
	m.update()
	return m
}

// OnChange sets the function called
// when a pin is changed.
func (m *Manager) OnChange(f func()) {
	m.onChange = f
}

// XKind returns the kind of the X axis.
func (m *Manager) XKind() Kind {
	return m.xKind
}

// SetXKind sets the kind of the X axis.
func (m *Manager) SetXKind(k Kind) {
	if m.xKind == k {
		return
	}
	m.xKind = k
	m.update()
}

// SetDomain sets the data derived domain,
// and returns the effective domain.
func (m *Manager) SetDomain(d Domain) Domain {
	m.data = d
	m.hasData = true
	m.update()
	return m.eff
}

// Pin sets the user defined bounds.
// It returns true if at least one bound was changed,
// in which case the change function is called.
func (m *Manager) Pin(p Pins) bool {
	if m.pins.Equal(p) {
		return false
	}
	m.pins = p.clone()
	m.update()
	if m.onChange != nil {
		m.onChange()
	}
	return true
}

// Pins returns the current pins.
func (m *Manager) Pins() Pins {
	return m.pins.clone()
}

// Domain returns the effective domain.
func (m *Manager) Domain() Domain {
	return m.eff
}

// SetExtent sets the size of the pixel space.
func (m *Manager) SetExtent(width, height float64) {
	m.width = width
	m.height = height
}

// Extent returns the size of the pixel space.
func (m *Manager) Extent() (width, height float64) {
	return m.width, m.height
}

// MapX projects an x value into pixel space.
func (m *Manager) MapX(v float64) float64 {
	return m.Snapshot().MapX(v)
}

// MapY projects an y value into pixel space.
func (m *Manager) MapY(v float64) float64 {
	return m.Snapshot().MapY(v)
}

// Snapshot returns the current mapping.
func (m *Manager) Snapshot() Mapping {
	return Mapping{
		X: Scale{D0: m.eff.XMin, D1: m.eff.XMax, R0: 0, R1: m.width},
		Y: Scale{D0: m.eff.YMin, D1: m.eff.YMax, R0: 0, R1: m.height},
	}
}

func (m *Manager) update() {
	d := Domain{XMin: 0, XMax: 1, YMin: 0, YMax: 1}
	if m.hasData {
		d = m.data
	}

	xMin, xMax, xCross := withPins(d.XMin, d.XMax, m.pins.XMin, m.pins.XMax)
	yMin, yMax, yCross := withPins(d.YMin, d.YMax, m.pins.YMin, m.pins.YMax)

	switch {
	case xCross:
	case m.xKind == Time:
		xMin, xMax = NiceTime(xMin, xMax, m.count)
	default:
		xMin, xMax = Nice(xMin, xMax, m.count)
	}
	if !yCross {
		yMin, yMax = Nice(yMin, yMax, m.count)
	}

	m.eff = Domain{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}
}

// withPins overrides the data bounds with the pinned values.
//
// If a single bound is pinned
// beyond the opposite data bound,
// the pinned value is kept,
// and the other bound is placed away from the pin
// as in a degenerate domain.
// In that case cross is true,
// and the bounds must not be nicened.
func withPins(min, max float64, pMin, pMax *float64) (float64, float64, bool) {
	switch {
	case pMin != nil && pMax != nil:
		min, max = Normalize(*pMin, *pMax)
		return min, max, false
	case pMin != nil:
		if *pMin >= max && finite(*pMin) {
			return *pMin, *pMin + spread(*pMin), true
		}
		min = *pMin
	case pMax != nil:
		if *pMax <= min && finite(*pMax) {
			return *pMax - spread(*pMax), *pMax, true
		}
		max = *pMax
	}
	min, max = Normalize(min, max)
	return min, max, false
}

// XTicks returns the ticks of the X axis.
func (m *Manager) XTicks() []plot.Tick {
	if m.xKind == Time {
		return TimeTicks(m.eff.XMin, m.eff.XMax)
	}
	return plot.DefaultTicks{}.Ticks(m.eff.XMin, m.eff.XMax)
}

// YTicks returns the ticks of the Y axis.
func (m *Manager) YTicks() []plot.Tick {
	return plot.DefaultTicks{}.Ticks(m.eff.YMin, m.eff.YMax)
}

// TimeTicks returns the ticks of a time domain
// in seconds since the Unix epoch.
func TimeTicks(min, max float64) []plot.Tick {
	format := "2006-01-02"
	switch span := max - min; {
	case span > 5*365*86400:
		format = "2006"
	case span > 120*86400:
		format = "Jan 2006"
	case span < 2*86400:
		format = "Jan 2 15:04"
	}
	tt := plot.TimeTicks{
		Ticker: plot.DefaultTicks{},
		Format: format,
		Time:   func(t float64) time.Time { return unix(t) },
	}
	return tt.Ticks(min, max)
}
