// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"

	"github.com/js-arias/ensplot/dataset"
	"github.com/js-arias/ensplot/reportstep"
	"github.com/js-arias/ensplot/style"
)

// Datasets reads the ensemble datasets
// defined in a project.
func (p *Project) Datasets() ([]*dataset.Dataset, error) {
	var ds []*dataset.Dataset
	for _, name := range p.Paths(Data) {
		d, err := dataset.ReadFile(name)
		if err != nil {
			return nil, err
		}
		ds = append(ds, d)
	}
	return ds, nil
}

// Styles reads the style table
// defined in a project.
// If no style table is defined,
// it returns the default styles.
// The palette is used for ensemble cases
// without an explicit style.
func (p *Project) Styles(pal style.Gradienter) (*style.Registry, error) {
	name := p.Path(Styles)
	if name == "" {
		if pal == nil {
			return style.Default(), nil
		}
		return style.New(pal, style.Defaults()...), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := style.ReadTSV(f, pal)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return r, nil
}

// ReportSteps reads the report steps
// defined in a project.
// If no report steps file is defined,
// it returns the steps of the given reporters.
func (p *Project) ReportSteps(rs ...reportstep.Reporter) (reportstep.Steps, error) {
	name := p.Path(Steps)
	if name == "" {
		st := reportstep.New()
		for _, r := range rs {
			st.Add(r)
		}
		return st, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := reportstep.Read(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return st, nil
}
