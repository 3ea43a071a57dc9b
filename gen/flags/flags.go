// Package flags exports argument definitions onto spf13/pflag flag sets,
// so that programs built on pflag or cobra can reuse a registry's options.
//
// The translation is one-way and covers options only: positional params
// have no pflag counterpart and are skipped. Parse semantics remain those
// of the exporting program's chosen parser.
package flags

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/reeflective/args"
)

// FlagSet returns a new flag set containing one pflag per option in the
// registry.
func FlagSet(name string, reg *args.Args) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	AddTo(reg, flagSet)

	return flagSet
}

// AddTo registers every option of the registry onto dst. No-value options
// become bools (counts when repeatable); valued options become strings
// (string arrays when repeatable).
func AddTo(reg *args.Args, dst *pflag.FlagSet) {
	for _, opt := range reg.Options() {
		long := strings.TrimPrefix(opt.Long, "--")
		short := strings.TrimPrefix(opt.Short, "-")

		if long == "" {
			// pflag identifies flags by long name; fall back to the
			// short letter for short-only options.
			long = short
		}

		switch {
		case opt.ValueName == "" && opt.Repeatable:
			dst.CountP(long, short, opt.Description)
		case opt.ValueName == "":
			dst.BoolP(long, short, false, opt.Description)
		case opt.Repeatable:
			dst.StringArrayP(long, short, nil, opt.Description)
		default:
			dst.StringP(long, short, "", opt.Description)
		}

		flag := dst.Lookup(long)

		if opt.OptionalValue {
			// Presence without a value records the empty string. Note
			// that pflag only honors a non-empty NoOptDefVal, so this
			// is advisory for consumers reading the flag definition.
			flag.NoOptDefVal = ""
		}

		if opt.Required {
			flag.Annotations = map[string][]string{"flags": {"required"}}
		}
	}
}
