package args

/*
   Args - command-line argument parsing library
   Copyright (C) 2021 Maxime Landon

   This program is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   This program is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

import (
	"strings"

	"github.com/fatih/color"
)

const (
	defaultWidth = 80 // wrap column when none is configured
	minWrapWidth = 10 // below this, wrapping does more harm than good
	labelGap     = 2  // spaces between the label column and descriptions
)

// UsageOption configures the text produced by Usage.
type UsageOption func(*usageOpts)

type usageOpts struct {
	preamble string
	prologue string
	epilogue string
	width    int
	color    bool
}

func newUsageOpts(options ...UsageOption) *usageOpts {
	opts := &usageOpts{width: defaultWidth}
	for _, option := range options {
		option(opts)
	}

	return opts
}

// WithPreamble places a text block before the invocation summary.
func WithPreamble(text string) UsageOption {
	return func(o *usageOpts) { o.preamble = text }
}

// WithPrologue places a text block between the summary and the options.
func WithPrologue(text string) UsageOption {
	return func(o *usageOpts) { o.prologue = text }
}

// WithEpilogue appends a text block after the parameter list.
func WithEpilogue(text string) UsageOption {
	return func(o *usageOpts) { o.epilogue = text }
}

// WithWidth sets the wrap column for descriptions and text blocks.
// The default is 80.
func WithWidth(cols int) UsageOption {
	return func(o *usageOpts) { o.width = cols }
}

// WithColor renders the section headers in bold.
func WithColor(enabled bool) UsageOption {
	return func(o *usageOpts) { o.color = enabled }
}

func (o *usageOpts) header(s string) string {
	if !o.color {
		return s
	}

	return color.New(color.Bold).Sprint(s)
}

// Usage renders the registry as a help screen: an invocation summary, an
// aligned "Options:" block, an aligned "Parameters:" block, and any text
// blocks configured through the options. It is a pure function of the
// validated definition list and may be called before or after Parse.
func (a *Args) Usage(program string, options ...UsageOption) string {
	opts := newUsageOpts(options...)

	var buf strings.Builder

	if opts.preamble != "" {
		buf.WriteString(wrapText(opts.preamble, opts.width))
		buf.WriteString("\n\n")
	}

	a.writeSummary(&buf, program, opts)

	if opts.prologue != "" {
		buf.WriteString("\n")
		buf.WriteString(wrapText(opts.prologue, opts.width))
		buf.WriteString("\n")
	}

	col := a.labelColumn()

	if len(a.options) > 0 {
		buf.WriteString("\n" + opts.header("Options:") + "\n")

		for _, opt := range a.options {
			writeRow(&buf, optionLabel(opt), opt.Description, col, opts.width)
		}
	}

	if len(a.params) > 0 {
		buf.WriteString("\n" + opts.header("Parameters:") + "\n")

		for _, par := range a.params {
			writeRow(&buf, "  "+paramTag(par), par.Description, col, opts.width)
		}
	}

	if opts.epilogue != "" {
		buf.WriteString("\n")
		buf.WriteString(wrapText(opts.epilogue, opts.width))
		buf.WriteString("\n")
	}

	return buf.String()
}

// writeSummary writes the one-line invocation summary:
// "Usage: prog [option]... <param> [opt-param] <files>...".
func (a *Args) writeSummary(buf *strings.Builder, program string, opts *usageOpts) {
	buf.WriteString(opts.header("Usage:") + " " + program)

	if len(a.options) > 0 {
		buf.WriteString(" [option]...")
	}

	for _, par := range a.params {
		buf.WriteString(" " + paramTag(par))

		if par.Repeatable {
			buf.WriteString("...")
		}
	}

	buf.WriteString("\n")
}

// labelColumn returns the shared description column: the widest label
// across both blocks, plus the gap.
func (a *Args) labelColumn() int {
	widest := 0

	for _, opt := range a.options {
		if l := len(optionLabel(opt)); l > widest {
			widest = l
		}
	}

	for _, par := range a.params {
		if l := len(paramTag(par)) + 2; l > widest {
			widest = l
		}
	}

	return widest + labelGap
}

// optionLabel renders the left column of an option row, including the
// two-space indent: "  -s, --long=<VAL>".
func optionLabel(opt *Option) string {
	var value string

	if opt.ValueName != "" {
		value = "<" + opt.ValueName + ">"

		if opt.Long != "" {
			value = "=" + value
		}

		if opt.OptionalValue {
			value = "[" + value + "]"
		}

		if opt.Long == "" {
			value = " " + value
		}
	}

	var sep string

	if opt.Long != "" {
		if opt.Short != "" {
			sep = ", "
		} else {
			sep = "    "
		}
	}

	return "  " + opt.Short + sep + opt.Long + value
}

// paramTag renders a param for the summary and the parameter rows:
// "<name>" when required, "[name]" when optional.
func paramTag(par *Param) string {
	if par.Optional {
		return "[" + par.Name + "]"
	}

	return "<" + par.Name + ">"
}

// writeRow writes one aligned row: the label padded to the description
// column, then the wrapped description with continuation lines indented.
func writeRow(buf *strings.Builder, label, desc string, col, width int) {
	if desc == "" {
		buf.WriteString(label + "\n")

		return
	}

	lines := strings.Split(wrapText(desc, width-col), "\n")

	buf.WriteString(label + strings.Repeat(" ", col-len(label)) + lines[0] + "\n")

	for _, line := range lines[1:] {
		buf.WriteString(strings.Repeat(" ", col) + line + "\n")
	}
}

// wrapText splits lines longer than width at spaces. Existing newlines
// (and any leading indentation after them) are preserved.
func wrapText(text string, width int) string {
	if width < minWrapWidth {
		width = minWrapWidth
	}

	var wrapped []string

	for _, line := range strings.Split(text, "\n") {
		for len(line) > width {
			cut := strings.LastIndex(line[:width+1], " ")
			if cut <= 0 {
				cut = width
			}

			wrapped = append(wrapped, strings.TrimRight(line[:cut], " "))
			line = strings.TrimLeft(line[cut:], " ")
		}

		wrapped = append(wrapped, line)
	}

	return strings.Join(wrapped, "\n")
}
