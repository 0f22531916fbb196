// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(anglesGuide)
	app.Add(configGuide)
	app.Add(notebookGuide)
}

var anglesGuide = &command.Command{
	Usage: "angles",
	Short: "about angle and time formats",
	Long: `
The astronomy commands read sky coordinates and times in several formats.

Right ascension can be given as:

	10.5         decimal hours
	10h12m45s    sexagesimal hours, with markers
	10:12:45     sexagesimal hours, with colons
	153.2deg     degrees, when explicitly marked ("d", "deg", or "°")

A bare number without markers is read as hours if it is at most 24, and as
degrees otherwise; so "153.2" is read as degrees.

Declination is always given in degrees:

	-12.5        decimal degrees
	-12d30m00s   sexagesimal degrees, with markers
	-12:30:00    sexagesimal degrees, with colons

A leading sign applies to the whole value, so "-00:30:00" is half a degree
south of the celestial equator. Declinations must be in the range [-90, 90].

Latitudes and longitudes of the observer are decimal degrees. Longitudes are
positive to the east of Greenwich.

Times are ISO-8601, for example:

	2024-03-20T21:00:00Z
	2024-03-20T18:00:00-03:00
	2024-03-20 21:00

A time without a zone is taken as UTC. If no time is given, the current time
is used.

Flag values can be negative, for example "--dec -12:30:00". Positional
arguments that start with a minus sign must be preceded by "--", otherwise
they are read as flags; for example:

	sciops stats describe -- -1 -2 3
	`,
}

var configGuide = &command.Command{
	Usage: "config-file",
	Short: "about the configuration file",
	Long: `
Sciops stores its configuration in a tab-delimited file. By default, the file
is "sciops/config.tab" in the user configuration directory (for example
"~/.config/sciops/config.tab" on Linux). Use the environment variable
SCIOPS_CONFIG to use a different file.

If the file does not exist, default values are used. The recommended way to
view or edit the configuration is with the commands "sciops config show" and
"sciops config set".

The configuration file is a tab-delimited file with the following fields:

	- parameter  the name of the parameter
	- value      the value of the parameter

Here is an example file:

	# sciops configuration
	parameter	value
	notebook	/home/user/lab-notebook.md
	default_body	mars
	color	true

The valid parameters are:

	notebook      the path of the lab notebook. By default, the file
	              "lab-notebook.md" in the folder of the configuration file.
	default_body  the body used when a command accepts a --body flag and no
	              value is given. Empty, or "none", means the Earth.
	color         if true (the default), results are styled, and the lab
	              notebook is rendered as markdown.

Parameter names are case insensitive. Rows with an unknown parameter, or an
invalid value, are ignored with a warning, and the default value is used.
The next "sciops config set" removes them from the file.

Diagnostics are written to the standard error. Use the environment variable
SCIOPS_LOG to set the level of the diagnostics: debug, info, warn (the
default), or error.
	`,
}

var notebookGuide = &command.Command{
	Usage: "notebook-file",
	Short: "about the lab notebook file",
	Long: `
The lab notebook is a markdown text file in which each entry is a line of a
list. Each entry starts with the local time in which it was written, in
ISO-8601 format. Here is an example file:

	- [2024-06-01T10:00:00] sample A centrifuged at 4000 rpm
	- [2024-06-01T10:25:12] pellet resuspended in 2 mL of buffer

Entries are only appended, so the file can also be edited with any text
editor. Use "sciops notebook log" to add an entry, "sciops notebook show" to
print the notebook, and "sciops notebook path" to print or set the location
of the file.
	`,
}
