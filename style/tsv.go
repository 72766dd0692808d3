// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package style

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

var headerFields = []string{
	"class",
	"stroke",
	"fill",
	"width",
}

// ReadTSV reads a style table from a TSV file.
//
// The TSV must contain the following fields:
//
//   - class, the semantic class of the style
//   - stroke, the stroke color
//   - fill, the fill color
//   - width, the stroke width
//
// Optionally it can contain the fields
// "dashes",
// a comma separated list of dash lengths,
// and "cap",
// for the line cap.
//
// Here is an example file:
//
//	# ensplot styles
//	class	stroke	fill	width	dashes	cap
//	observation	rgba(0,0,0,1)	rgba(0,0,0,0)	1		butt
//	refcase	rgba(0,0,0,0.7)	rgba(0,0,0,0)	2	6,4	butt
//	ensemble_1	rgba(56,108,176,0.8)	rgba(56,108,176,0.5)	1		butt
//
// Fill colors of ensemble classes are given before blending,
// the blend is made when the registry is built.
func ReadTSV(r io.Reader, p Gradienter) (*Registry, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range headerFields {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	var styles []Style
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, fmt.Errorf("on row %d: %v", pe.Line, pe.Err)
			}
			return nil, err
		}
		ln, _ := tsv.FieldPos(0)

		f := "class"
		s := Style{
			Name: strings.ToLower(strings.TrimSpace(row[fields[f]])),
			Cap:  "butt",
		}
		if s.Name == "" {
			continue
		}

		f = "stroke"
		s.Stroke, err = ParseColor(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		f = "fill"
		s.Fill, err = ParseColor(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		f = "width"
		s.Width, err = strconv.ParseFloat(strings.TrimSpace(row[fields[f]]), 64)
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}
		if s.Width < 0 {
			return nil, fmt.Errorf("on row %d: field %q: negative width %.3f", ln, f, s.Width)
		}

		f = "dashes"
		if i, ok := fields[f]; ok {
			if v := strings.TrimSpace(row[i]); v != "" {
				for _, d := range strings.Split(v, ",") {
					l, err := strconv.ParseFloat(strings.TrimSpace(d), 64)
					if err != nil {
						return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
					}
					s.Dashes = append(s.Dashes, l)
				}
			}
		}

		f = "cap"
		if i, ok := fields[f]; ok {
			if v := strings.ToLower(strings.TrimSpace(row[i])); v != "" {
				switch v {
				case "butt", "round", "square":
				default:
					return nil, fmt.Errorf("on row %d: field %q: unknown cap %q", ln, f, v)
				}
				s.Cap = v
			}
		}
		styles = append(styles, s)
	}

	return New(p, styles...), nil
}

// WriteTSV writes the styles of a registry
// into a tab-delimited file.
// Ensemble fills are written before blending.
func (r *Registry) WriteTSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# ensplot styles\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))

	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write([]string{"class", "stroke", "fill", "width", "dashes", "cap"}); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}

	classes := make([]string, 0, len(r.raw))
	for c := range r.raw {
		classes = append(classes, c)
	}
	slices.Sort(classes)

	for _, c := range classes {
		s := r.raw[c]
		dashes := make([]string, 0, len(s.Dashes))
		for _, d := range s.Dashes {
			dashes = append(dashes, strconv.FormatFloat(d, 'f', -1, 64))
		}
		row := []string{
			s.Name,
			FormatColor(s.Stroke),
			FormatColor(s.Fill),
			strconv.FormatFloat(s.Width, 'f', -1, 64),
			strings.Join(dashes, ","),
			s.Cap,
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
