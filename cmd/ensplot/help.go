// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(datasetFilesGuide)
	app.Add(projectsGuide)
	app.Add(reportStepsGuide)
	app.Add(styleFilesGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
Ensplot plots the datasets referenced in a project file. A project file holds
the references to all the files used to draw the plots. This guide explains
the structure of the file, but most of the time, the best way to edit or view
this file is by using ensplot commands.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# ensplot project files
	dataset	path
	data	fopr.json
	data	wwct-op1.json
	styles	styles.tab
	steps	steps.tab

The valid file types are:

- Ensemble datasets. Defined by the dataset keyword "data". A project can
  have several dataset files, and each one will be drawn in its own plot. The
  recommended way to add a dataset is by using the command 'ensplot add'.
- Style tables. Defined by the dataset keyword "styles". This file contains
  the colors and line styles used in the plots. The recommended way to add a
  style table is by using the command 'ensplot style --add'.
- Report steps. Defined by the dataset keyword "steps". This file contains
  the report steps used by histograms. The recommended way to add a report
  steps file is by using the command 'ensplot add --steps'.
	`,
}

var datasetFilesGuide = &command.Command{
	Usage: "dataset-files",
	Short: "about ensemble dataset files",
	Long: `
An ensemble dataset is a JSON file with a time series (or a series of any
scalar key) of a simulated quantity, as produced by each realization of one or
more ensemble cases. Optionally, it can contain the observed values and a
reference case.

The dataset is an object with the following fields:

	- name          the name of the dataset, used as the title of the plot
	- time          true, if the X values are times
	                (in seconds since the Unix epoch)
	- bounds        optional, the bounds of the data, with the fields
	                "minX", "maxX", "minY", and "maxY"
	- observation   optional, the observed values, with the fields
	                "continuous" (true for a continuous series) and
	                "samples"
	- refcase       optional, the reference case, with the field "samples"
	- ensembles     the ensemble cases, each one with the fields "caseName"
	                and "realizations"; each realization has the field
	                "samples"

Samples are objects with the fields "x", "y", and optionally "std" (the
standard deviation of an observation).

Here is an example file:

	{
		"name": "FOPR",
		"time": true,
		"observation": {
			"continuous": false,
			"samples": [{"x": 1577836800, "y": 120, "std": 10}]
		},
		"ensembles": [
			{
				"caseName": "default",
				"realizations": [
					{"samples": [{"x": 1577836800, "y": 115}]}
				]
			}
		]
	}
	`,
}

var styleFilesGuide = &command.Command{
	Usage: "style-files",
	Short: "about style table files",
	Long: `
The colors and line styles of the plots are defined by semantic classes. The
valid classes are:

	- default                the style used by any undefined class
	- observation            the line of continuous observations
	- observation_area       the error band of continuous observations
	- observation_error_bar  the error bars of discrete observations
	- refcase                the reference case
	- ensemble_<k>           the k-th ensemble case (starting from 1)

Ensemble cases without an explicit style take their colors from a palette.

A style table is a tab-delimited file with the following columns:

	- class   the semantic class
	- stroke  the stroke color, as "rgba(r,g,b,a)" or "#rrggbb"
	- fill    the fill color
	- width   the stroke width, in pixels

Optionally, it can contain the following columns:

	- dashes  a comma separated list of dash lengths
	- cap     the line cap

Here is an example file:

	# ensplot styles
	class	stroke	fill	width	dashes	cap
	observation	rgba(0,0,0,1)	rgba(0,0,0,0)	1		butt
	refcase	rgba(0,0,0,0.7)	rgba(0,0,0,0)	2	6,4	butt
	ensemble_1	rgba(56,108,176,0.8)	rgba(56,108,176,0.5)	1		butt

The fill colors of ensemble cases are blended with white when the table is
read. In a project, the file that contains the style table is indicated with
the "styles" keyword.
	`,
}

var reportStepsGuide = &command.Command{
	Usage: "report-steps",
	Short: "about report steps files",
	Long: `
Histograms are drawn at a report step. By default, the last report step of a
dataset is used. A report steps file defines the steps that can be selected.
The command 'ensplot steps' prints the report steps of a project.

A report steps file is a tab-delimited file without header. The first column
is the report step, as seconds since the Unix epoch, or as a date (e.g.,
"2020-01-01" or "2020-01-01T00:00:00Z"). Any other columns will be ignored.

Here is an example file:

	# report steps
	1577836800	2020-01-01T00:00:00Z
	2020-07-01
	1609459200	2021-01-01T00:00:00Z

In a project, the file that contains the report steps is indicated with the
"steps" keyword.
	`,
}
