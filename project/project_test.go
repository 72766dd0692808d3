// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/ensplot/project"
	"github.com/js-arias/ensplot/style"
)

type setPath struct {
	set   project.Dataset
	paths []string
}

func TestProject(t *testing.T) {
	p := project.New()

	sets := []setPath{
		{project.Data, []string{"fopr.json", "wwct.json"}},
		{project.Steps, []string{"steps.tab"}},
		{project.Styles, []string{"styles.tab"}},
	}

	for _, s := range sets {
		for _, path := range s.paths {
			p.Add(s.set, path)
		}
	}
	// duplicated data files are ignored
	p.Add(project.Data, "fopr.json")
	testProject(t, p, sets)

	name := filepath.Join(t.TempDir(), "project.tab")
	p.SetName(name)
	if err := p.Write(); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}

	np, err := project.Read(name)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	testProject(t, np, sets)

	if prev := np.Add(project.Styles, "other.tab"); prev != "styles.tab" {
		t.Errorf("replace: got previous %q, want %q", prev, "styles.tab")
	}
	np.Add(project.Steps, "")
	if path := np.Path(project.Steps); path != "" {
		t.Errorf("remove: got path %q, want empty", path)
	}
}

func testProject(t testing.TB, p *project.Project, sets []setPath) {
	t.Helper()

	datasets := make([]project.Dataset, 0, len(sets))
	for _, s := range sets {
		if paths := p.Paths(s.set); !reflect.DeepEqual(paths, s.paths) {
			t.Errorf("set %s: got paths %v, want %v", s.set, paths, s.paths)
		}
		datasets = append(datasets, s.set)
	}

	if ls := p.Sets(); !reflect.DeepEqual(ls, datasets) {
		t.Errorf("sets: got %v, want %v", ls, datasets)
	}
}

func TestProjectStyles(t *testing.T) {
	p := project.New()
	r, err := p.Styles(nil)
	if err != nil {
		t.Fatalf("default styles: %v", err)
	}
	if got, want := r.Style(style.Refcase), style.Default().Style(style.Refcase); !reflect.DeepEqual(got, want) {
		t.Errorf("default refcase: got %v, want %v", got, want)
	}

	dir := t.TempDir()
	name := filepath.Join(dir, "styles.tab")
	f, err := os.Create(name)
	if err != nil {
		t.Fatalf("unable to create file: %v", err)
	}
	if err := style.Default().WriteTSV(f); err != nil {
		t.Fatalf("unable to write styles: %v", err)
	}
	f.Close()

	p.Add(project.Styles, name)
	r, err = p.Styles(nil)
	if err != nil {
		t.Fatalf("table styles: %v", err)
	}
	if got, want := r.Ensemble(0), style.Default().Ensemble(0); !reflect.DeepEqual(got, want) {
		t.Errorf("table ensemble: got %v, want %v", got, want)
	}
}

func TestReadMalformed(t *testing.T) {
	name := filepath.Join(t.TempDir(), "project.tab")
	in := "dataset\tpath\n" +
		"data\tfo\"pr.json\n"
	if err := os.WriteFile(name, []byte(in), 0o644); err != nil {
		t.Fatalf("unable to write project: %v", err)
	}

	_, err := project.Read(name)
	if err == nil {
		t.Fatalf("bare quote: expecting error")
	}
	if want := "on row 2:"; !strings.Contains(err.Error(), want) {
		t.Errorf("bare quote: got error %q, want %q", err, want)
	}
}
