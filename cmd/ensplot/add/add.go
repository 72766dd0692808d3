// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add
// dataset files to a project.
package add

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/ensplot/dataset"
	"github.com/js-arias/ensplot/project"
	"github.com/js-arias/ensplot/reportstep"
)

var Command = &command.Command{
	Usage: `add [--steps] <project-file> <file>...`,
	Short: "add dataset files to a project",
	Long: `
Command add adds one or more files to an ensplot project. If the project file
does not exist, a new project will be created.

The first argument of the command is the name of the project file. The
following arguments are the files to be added.

By default, the files are ensemble dataset files (JSON). A project can have
several dataset files. If the flag --steps is defined, the file will be used
as the report steps file of the project, and it will replace any previous
report steps file.

Files are validated before they are added.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var stepsFile bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&stepsFile, "steps", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if len(args) < 2 {
		return c.UsageError("expecting dataset file")
	}

	p, err := project.Read(args[0])
	if errors.Is(err, fs.ErrNotExist) {
		p = project.New()
		p.SetName(args[0])
	} else if err != nil {
		return err
	}

	for _, name := range args[1:] {
		if stepsFile {
			if err := checkSteps(name); err != nil {
				return err
			}
			if prev := p.Add(project.Steps, name); prev != "" && prev != name {
				fmt.Fprintf(c.Stderr(), "report steps file %q replaced by %q\n", prev, name)
			}
			continue
		}

		if _, err := dataset.ReadFile(name); err != nil {
			return err
		}
		p.Add(project.Data, name)
	}
	return p.Write()
}

func checkSteps(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := reportstep.Read(f); err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}
	return nil
}
