// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prj implements a command to print
// the basic information of a project.
package prj

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/js-arias/command"
	"github.com/js-arias/ensplot/dataset"
	"github.com/js-arias/ensplot/project"
	"github.com/js-arias/ensplot/reportstep"
	"github.com/js-arias/ensplot/style"
)

var Command = &command.Command{
	Usage: "prj <project-file>",
	Short: "print information about a project",
	Long: `
Command prj reads an ensplot project and prints the information of the
different project elements into the standard output.

The argument of the command is the name of the project file.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	steps := reportstep.New()
	for _, name := range p.Paths(project.Data) {
		d, err := dataset.ReadFile(name)
		if err != nil {
			return err
		}
		printDataset(c.Stdout(), name, d)
		steps.Add(d)
	}

	if err := readStyles(c.Stdout(), p.Path(project.Styles)); err != nil {
		return err
	}
	if err := readReportSteps(c.Stdout(), p.Path(project.Steps), steps); err != nil {
		return err
	}
	return nil
}

func printDataset(w io.Writer, name string, d *dataset.Dataset) {
	fmt.Fprintf(w, "Dataset %q:\n", d.Name)
	fmt.Fprintf(w, "\tfile: %s\n", name)

	var realizations int
	for _, c := range d.Ensembles {
		realizations += len(c.Realizations)
	}
	fmt.Fprintf(w, "\tcases: %d\n", len(d.Ensembles))
	fmt.Fprintf(w, "\trealizations: %s\n", humanize.Comma(int64(realizations)))
	if d.Observation != nil {
		kind := "discrete"
		if d.Observation.Continuous {
			kind = "continuous"
		}
		fmt.Fprintf(w, "\tobservation: %s, %d samples\n", kind, len(d.Observation.Samples))
	}
	if d.Refcase != nil {
		fmt.Fprintf(w, "\trefcase: %d samples\n", len(d.Refcase.Samples))
	}
	if b, ok := d.DataBounds(); ok {
		if d.Time {
			fmt.Fprintf(w, "\ttime: [%s-%s]\n", formatTime(b.MinX), formatTime(b.MaxX))
		} else {
			fmt.Fprintf(w, "\tx: [%s-%s]\n", humanize.SIWithDigits(b.MinX, 2, ""), humanize.SIWithDigits(b.MaxX, 2, ""))
		}
		fmt.Fprintf(w, "\tvalues: [%s-%s]\n", humanize.SIWithDigits(b.MinY, 2, ""), humanize.SIWithDigits(b.MaxY, 2, ""))
	}
	fmt.Fprintf(w, "\n")
}

func formatTime(v float64) string {
	return time.Unix(int64(v), 0).UTC().Format(time.DateOnly)
}

func readStyles(w io.Writer, name string) error {
	fmt.Fprintf(w, "Styles:\n")
	if name == "" {
		fmt.Fprintf(w, "\tdefault styles\n")
		fmt.Fprintf(w, "\n")
		return nil
	}

	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	r, err := style.ReadTSV(f, nil)
	if err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}
	fmt.Fprintf(w, "\tfile: %s\n", name)
	fmt.Fprintf(w, "\tclasses: %d\n", len(r.Classes()))
	fmt.Fprintf(w, "\tensemble cases: %d\n", r.Cases())
	fmt.Fprintf(w, "\n")
	return nil
}

func readReportSteps(w io.Writer, name string, steps reportstep.Steps) error {
	fmt.Fprintf(w, "Report steps:\n")

	if name != "" {
		fmt.Fprintf(w, "\tfile: %s\n", name)

		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()

		st, err := reportstep.Read(f)
		if err != nil {
			return fmt.Errorf("on file %q: %v", name, err)
		}
		steps = st
	}

	st := steps.Steps()
	if len(st) == 0 {
		fmt.Fprintf(w, "\tsteps: 0\n")
		fmt.Fprintf(w, "\n")
		return nil
	}
	fmt.Fprintf(w, "\tsteps: %d [%d-%d]\n", len(st), st[0], st[len(st)-1])
	fmt.Fprintf(w, "\n")
	return nil
}
