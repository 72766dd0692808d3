// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package stylecmd implements a command to view
// and set the style table of a project.
package stylecmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/ensplot/project"
	"github.com/js-arias/ensplot/style"
)

var Command = &command.Command{
	Usage: `style [--palette <name>] [--add <style-file>]
	<project-file>`,
	Short: "view or set the style table of a project",
	Long: `
Command style reads an ensplot project and prints its style table into the
standard output. If the project does not define a style table, the default
styles are printed.

The argument of the command is the name of the project file.

If the flag --add is defined, the style table will be written into the
indicated file, and the file will be set as the style table of the project.
This is the recommended way to create a style table that can be edited later.

The flag --palette sets the palette used for ensemble cases without an
explicit style. Valid palettes are "iridescent" (the default),
"incandescent", "rainbow", and "gray". With --verbose, the styles of the
first ensemble cases, as used in the plots, are printed into the standard
error.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var addFile string
var palette string
var verbose bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&addFile, "add", "", "")
	c.Flags().StringVar(&palette, "palette", "", "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
}

// number of ensemble styles printed
// in verbose mode.
const verboseCases = 8

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	pal, ok := style.Palette(palette)
	if !ok {
		return fmt.Errorf("unknown palette %q", palette)
	}
	reg, err := p.Styles(pal)
	if err != nil {
		return err
	}

	if verbose {
		for k := 0; k < verboseCases; k++ {
			fmt.Fprintf(c.Stderr(), "%s\n", reg.Ensemble(k))
		}
	}

	if addFile == "" {
		return reg.WriteTSV(c.Stdout())
	}

	if err := writeStyles(addFile, reg); err != nil {
		return err
	}
	p.Add(project.Styles, addFile)
	return p.Write()
}

func writeStyles(name string, reg *style.Registry) (err error) {
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

	bw := bufio.NewWriter(f)
	if err := reg.WriteTSV(bw); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}
