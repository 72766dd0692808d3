// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package scale

import (
	"math"
	"time"
)

// Epsilon is the half width used
// to expand a degenerate domain at zero.
const Epsilon = 1e-6

// Normalize returns a domain with a strictly positive width.
//
// Inverted bounds are swapped.
// If min == max,
// the domain is expanded symmetrically by 10% of the value,
// or by Epsilon if the value is 0.
// Non finite bounds produce the [0, 1] domain.
func Normalize(min, max float64) (float64, float64) {
	if !finite(min) || !finite(max) {
		return 0, 1
	}
	if min > max {
		min, max = max, min
	}
	if min < max {
		return min, max
	}

	d := spread(min)
	return min - d, max + d
}

// spread is the half width
// of a degenerate domain at v.
func spread(v float64) float64 {
	d := math.Abs(v) * 0.1
	if d == 0 {
		return Epsilon
	}
	return d
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Step returns the tick step of a linear domain
// for approximately count ticks.
// Steps are powers of ten
// multiplied by 1, 2, or 5.
func Step(min, max float64, count int) float64 {
	if count < 1 {
		count = 1
	}
	span := max - min
	if span <= 0 {
		return 0
	}
	step := math.Pow(10, math.Floor(math.Log10(span/float64(count))))
	e := float64(count) / span * step
	switch {
	case e <= 0.15:
		step *= 10
	case e <= 0.35:
		step *= 5
	case e <= 0.75:
		step *= 2
	}
	return step
}

// Nice extends a linear domain
// so both bounds are multiples of the tick step.
func Nice(min, max float64, count int) (float64, float64) {
	min, max = Normalize(min, max)
	step := Step(min, max, count)
	if step == 0 {
		return min, max
	}
	return floorStep(min, step), ceilStep(max, step)
}

// steps smaller than one are used through its inverse
// (always an integer)
// to reduce rounding errors.

func floorStep(v, step float64) float64 {
	if step < 1 {
		inv := math.Round(1 / step)
		return math.Floor(v*inv) / inv
	}
	return math.Floor(v/step) * step
}

func ceilStep(v, step float64) float64 {
	if step < 1 {
		inv := math.Round(1 / step)
		return math.Ceil(v*inv) / inv
	}
	return math.Ceil(v/step) * step
}

// Ticks returns the tick values of a linear domain
// for approximately count ticks.
func Ticks(min, max float64, count int) []float64 {
	if min > max {
		min, max = max, min
	}
	step := Step(min, max, count)
	if step == 0 {
		return []float64{min}
	}

	if step < 1 {
		inv := math.Round(1 / step)
		start := math.Ceil(min * inv)
		stop := math.Floor(max * inv)
		ticks := make([]float64, 0, int(stop-start)+1)
		for i := start; i <= stop; i++ {
			ticks = append(ticks, i/inv)
		}
		return ticks
	}

	start := math.Ceil(min / step)
	stop := math.Floor(max / step)
	ticks := make([]float64, 0, int(stop-start)+1)
	for i := start; i <= stop; i++ {
		ticks = append(ticks, i*step)
	}
	return ticks
}

// calendar intervals used by time domains.
type interval struct {
	seconds float64
	months  int // for calendar intervals
}

var intervals = []interval{
	{seconds: 1},
	{seconds: 5},
	{seconds: 15},
	{seconds: 30},
	{seconds: 60},
	{seconds: 5 * 60},
	{seconds: 15 * 60},
	{seconds: 30 * 60},
	{seconds: 3600},
	{seconds: 3 * 3600},
	{seconds: 6 * 3600},
	{seconds: 12 * 3600},
	{seconds: 86400},
	{seconds: 2 * 86400},
	{seconds: 7 * 86400},
	{seconds: 30 * 86400, months: 1},
	{seconds: 91 * 86400, months: 3},
	{seconds: 365 * 86400, months: 12},
}

// NiceTime extends a time domain,
// given in seconds since the Unix epoch,
// to a calendar interval,
// so it produces approximately count ticks.
func NiceTime(min, max float64, count int) (float64, float64) {
	min, max = Normalize(min, max)
	if count < 1 {
		count = 1
	}
	target := (max - min) / float64(count)

	iv := intervals[len(intervals)-1]
	for _, v := range intervals {
		if v.seconds >= target {
			iv = v
			break
		}
	}

	if iv.months == 0 {
		// fixed size intervals (up to weeks)
		d := iv.seconds
		if d == 7*86400 {
			// weeks start on Sunday;
			// the Unix epoch was a Thursday
			off := 4 * 86400.0
			return math.Floor((min+off)/d)*d - off, math.Ceil((max+off)/d)*d - off
		}
		return math.Floor(min/d) * d, math.Ceil(max/d) * d
	}

	months := iv.months
	if months == 12 {
		years := Step(yearOf(min), yearOf(max), count)
		if years < 1 {
			years = 1
		}
		months = int(years) * 12
	}
	return floorMonth(min, months), ceilMonth(max, months)
}

func yearOf(v float64) float64 {
	t := unix(v)
	return float64(t.Year()) + float64(t.YearDay())/366
}

func unix(v float64) time.Time {
	sec, frac := math.Modf(v)
	return time.Unix(int64(sec), int64(frac*1e9)).UTC()
}

func floorMonth(v float64, months int) float64 {
	t := unix(v)
	m := (t.Year()*12 + int(t.Month()) - 1)
	m = floorDiv(m, months) * months
	f := time.Date(m/12, time.Month(m%12+1), 1, 0, 0, 0, 0, time.UTC)
	return float64(f.Unix())
}

func ceilMonth(v float64, months int) float64 {
	f := floorMonth(v, months)
	if f == v {
		return f
	}
	t := unix(f)
	return float64(t.AddDate(0, months, 0).Unix())
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
