// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package chart

import (
	"fmt"

	"github.com/hashicorp/golang-lru/simplelru"
	"github.com/js-arias/ensplot/dataset"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultCacheSize is the default number of cases
// stored in a statistics cache.
const DefaultCacheSize = 64

// Stats are the statistics of the realizations
// of an ensemble case
// at each report step.
type Stats struct {
	X   []float64
	Min []float64
	Max []float64
	P10 []float64
	P50 []float64
	P90 []float64
}

// Len returns the number of report steps.
func (s Stats) Len() int {
	return len(s.X)
}

// CaseStats calculates the statistics of a case.
// Report steps are taken from the first realization
// with samples,
// and the value of each realization
// is taken at its closest sample.
func CaseStats(c *dataset.Case) Stats {
	var xs []float64
	for _, r := range c.Realizations {
		if len(r.Samples) > 0 {
			xs, _ = r.Samples.XY()
			break
		}
	}

	s := Stats{
		X:   xs,
		Min: make([]float64, len(xs)),
		Max: make([]float64, len(xs)),
		P10: make([]float64, len(xs)),
		P50: make([]float64, len(xs)),
		P90: make([]float64, len(xs)),
	}
	for i, x := range xs {
		v := c.SamplesAt(x)
		slices.Sort(v)
		s.Min[i] = floats.Min(v)
		s.Max[i] = floats.Max(v)
		s.P10[i] = stat.Quantile(0.1, stat.Empirical, v, nil)
		s.P50[i] = stat.Quantile(0.5, stat.Empirical, v, nil)
		s.P90[i] = stat.Quantile(0.9, stat.Empirical, v, nil)
	}
	return s
}

// A Cache keeps the statistics
// of the most recently used cases.
//
// A cache is not safe for concurrent use,
// so it can only be shared by controllers
// of the same event loop.
type Cache struct {
	lru *simplelru.LRU
}

// NewCache returns a new cache
// with the indicated capacity.
func NewCache(size int) (*Cache, error) {
	lru, err := simplelru.NewLRU(size, nil)
	if err != nil {
		return nil, fmt.Errorf("while creating statistics cache: %v", err)
	}
	return &Cache{lru: lru}, nil
}

// Stats returns the statistics of a case.
// Cases are identified by its address,
// so a case must not be modified
// after its statistics are calculated.
func (c *Cache) Stats(cs *dataset.Case) Stats {
	if v, ok := c.lru.Get(cs); ok {
		if s, ok := v.(Stats); ok {
			return s
		}
	}
	s := CaseStats(cs)
	c.lru.Add(cs, s)
	return s
}

// Len returns the number of cached cases.
func (c *Cache) Len() int {
	return c.lru.Len()
}
