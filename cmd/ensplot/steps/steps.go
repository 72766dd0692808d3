// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package steps implements a command to view
// and set the report steps of a project.
package steps

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/ensplot/project"
	"github.com/js-arias/ensplot/reportstep"
)

var Command = &command.Command{
	Usage: `steps [--add <steps-file>] <project-file>`,
	Short: "view or set the report steps of a project",
	Long: `
Command steps reads an ensplot project and prints its report steps into the
standard output. If the project does not define a report steps file, the
report steps of all the datasets of the project are printed.

The argument of the command is the name of the project file.

If the flag --add is defined, the report steps will be written into the
indicated file, and the file will be set as the report steps file of the
project. The file can be edited later to keep only the steps of interest.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var addFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&addFile, "add", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	ds, err := p.Datasets()
	if err != nil {
		return err
	}
	rs := make([]reportstep.Reporter, 0, len(ds))
	for _, d := range ds {
		rs = append(rs, d)
	}
	st, err := p.ReportSteps(rs...)
	if err != nil {
		return err
	}

	if addFile == "" {
		return st.Write(c.Stdout())
	}

	if err := writeSteps(addFile, st); err != nil {
		return err
	}
	p.Add(project.Steps, addFile)
	return p.Write()
}

func writeSteps(name string, st reportstep.Steps) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := st.Write(f); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}
