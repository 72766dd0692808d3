// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package reportstep implements a set of report steps
// of a simulation,
// in seconds since the Unix epoch.
package reportstep

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/slices"
)

// A Reporter is an interface for types
// that return a list of report steps.
type Reporter interface {
	ReportSteps() []int64
}

// Steps is a set of report steps.
type Steps map[int64]bool

// New returns an empty set of report steps.
func New() Steps {
	return Steps(make(map[int64]bool))
}

// Read reads one or more report steps from a TSV file.
//
// The TSV must be without header
// and the first column should indicate the report time,
// either as seconds since the Unix epoch,
// or as a date in RFC 3339 format,
// or as a plain date (YYYY-MM-DD).
// Any other columns will be ignored.
//
// Here is an example file
//
//	# report steps
//	2010-01-01
//	2010-07-01
//	1293840000
//	2011-07-01T00:00:00Z
func Read(r io.Reader) (Steps, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'
	tsv.FieldsPerRecord = -1

	st := New()
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, fmt.Errorf("on line %d: %v", pe.Line, pe.Err)
			}
			return nil, err
		}
		ln, _ := tsv.FieldPos(0)

		v := strings.TrimSpace(row[0])
		if v == "" {
			continue
		}
		s, err := Parse(v)
		if err != nil {
			return nil, fmt.Errorf("on line %d: read %q: %v", ln, v, err)
		}
		st.AddStep(s)
	}

	return st, nil
}

// Parse parses a report time.
func Parse(v string) (int64, error) {
	if s, err := strconv.ParseInt(v, 10, 64); err == nil {
		return s, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.Unix(), nil
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return 0, fmt.Errorf("invalid report time %q", v)
	}
	return t.Unix(), nil
}

// Add adds report steps from a reporter.
func (s Steps) Add(r Reporter) {
	for _, v := range r.ReportSteps() {
		s[v] = true
	}
}

// AddStep adds a report step.
func (s Steps) AddStep(v int64) {
	s[v] = true
}

// Closest returns the closest report step
// to the indicated time.
// On ties the earliest step is returned.
// If the set is empty,
// it returns false.
func (s Steps) Closest(t int64) (int64, bool) {
	st := s.Steps()
	if len(st) == 0 {
		return 0, false
	}
	i, ok := slices.BinarySearch(st, t)
	if ok {
		return t, true
	}
	if i == 0 {
		return st[0], true
	}
	if i == len(st) {
		return st[len(st)-1], true
	}
	if st[i]-t < t-st[i-1] {
		return st[i], true
	}
	return st[i-1], true
}

// Last returns the latest report step.
func (s Steps) Last() (int64, bool) {
	st := s.Steps()
	if len(st) == 0 {
		return 0, false
	}
	return st[len(st)-1], true
}

// Steps returns a sorted slice
// of the defined report steps.
func (s Steps) Steps() []int64 {
	st := make([]int64, 0, len(s))
	for v := range s {
		st = append(st, v)
	}
	slices.Sort(st)

	return st
}

// Write writes report steps into a tab-delimited file.
func (s Steps) Write(w io.Writer) (err error) {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# report steps\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))

	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	for _, v := range s.Steps() {
		row := []string{
			strconv.FormatInt(v, 10),
			time.Unix(v, 0).UTC().Format(time.RFC3339),
		}
		if err := tsv.Write(row); err != nil {
			return err
		}
	}
	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}
