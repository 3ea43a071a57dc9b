package args

import (
	"github.com/reeflective/args/internal/scan"
)

// Option is the option variant of a definition: a named flag introduced
// by "-" or "--", optionally carrying a value. At least one of the two
// name forms is always set.
type Option struct {
	Short       string // short name, e.g. "-v" (may be empty)
	Long        string // long name, e.g. "--verbose" (may be empty)
	ValueName   string // value placeholder; empty means the option takes no value
	Description string

	Required      bool // must appear at least once
	Repeatable    bool // may appear several times
	OptionalValue bool // the value may be omitted
}

// Name returns the option identity used in messages: "-v/--verbose",
// or whichever of the two name forms is set.
func (o *Option) Name() string {
	switch {
	case o.Short != "" && o.Long != "":
		return o.Short + "/" + o.Long
	case o.Short != "":
		return o.Short
	default:
		return o.Long
	}
}

// Param is the positional variant of a definition, bound by position.
type Param struct {
	Name        string
	Description string

	Optional   bool // may be omitted; params are required by default
	Repeatable bool // absorbs several positional tokens
}

// Arg is one declared option or positional parameter: a two-variant
// tagged union of which exactly one variant is set.
type Arg struct {
	opt *Option
	par *Param
}

// IsOption reports whether the definition is an option.
func (a *Arg) IsOption() bool { return a.opt != nil }

// IsParam reports whether the definition is a positional parameter.
func (a *Arg) IsParam() bool { return a.par != nil }

// Option returns the option variant, or nil for params.
func (a *Arg) Option() *Option { return a.opt }

// Param returns the param variant, or nil for options.
func (a *Arg) Param() *Param { return a.par }

// NewArg builds one definition from 2 to 4 string fields: one to three
// name fields followed by a description. See the package documentation
// for the field grammar and specifier characters. Fields are validated
// left to right and the first invalid one is reported.
func NewArg(fields ...string) (*Arg, error) {
	if len(fields) < 2 || len(fields) > 4 {
		return nil, newErrorf(ErrInvalidDefinition, "",
			"a definition is 1 to 3 names and a description, got %d fields", len(fields))
	}

	names, description := fields[:len(fields)-1], fields[len(fields)-1]

	switch len(names) {
	case 1:
		return oneName(names[0], description)
	case 2:
		return twoNames(names[0], names[1], description)
	default:
		return threeNames(names[0], names[1], names[2], description)
	}
}

// oneName classifies a single name as a short option, a long option, or
// a positional parameter, in that order.
func oneName(name, description string) (*Arg, error) {
	if scan.IsShortOption(name) {
		return &Arg{opt: &Option{Short: name, Description: description}}, nil
	}

	if scan.IsLongOption(name) {
		return &Arg{opt: &Option{Long: name, Description: description}}, nil
	}

	stripped, specs, err := stripField(name)
	if err != nil {
		return nil, err
	}

	// Required is the default for params; '!' only applies to options.
	if specs.Required {
		return nil, newErrorf(ErrInvalidDefinition, name,
			"specifier '!' does not apply to param %q", name)
	}

	if !scan.IsParamName(stripped) {
		return nil, newErrorf(ErrInvalidDefinition, name,
			"%q is not a valid option or param name", name)
	}

	return &Arg{par: &Param{
		Name:        stripped,
		Description: description,
		Optional:    specs.Optional,
		Repeatable:  specs.Repeatable,
	}}, nil
}

// twoNames handles an option with either both name forms, or one name
// form and a value field.
func twoNames(name1, name2, description string) (*Arg, error) {
	opt := &Option{Description: description}

	switch {
	case scan.IsShortOption(name1):
		opt.Short = name1
	case scan.IsLongOption(name1):
		opt.Long = name1
	default:
		return nil, newErrorf(ErrInvalidDefinition, name1,
			"%q is not a valid short or long option name", name1)
	}

	if opt.Short != "" && scan.IsLongOption(name2) {
		opt.Long = name2

		return &Arg{opt: opt}, nil
	}

	if err := setValueField(opt, name2); err != nil {
		return nil, err
	}

	return &Arg{opt: opt}, nil
}

// threeNames handles the full form: short option, long option, value field.
func threeNames(short, long, value, description string) (*Arg, error) {
	if !scan.IsShortOption(short) {
		return nil, newErrorf(ErrInvalidDefinition, short,
			"%q is not a valid short option name", short)
	}

	if !scan.IsLongOption(long) {
		return nil, newErrorf(ErrInvalidDefinition, long,
			"%q is not a valid long option name", long)
	}

	opt := &Option{Short: short, Long: long, Description: description}

	if err := setValueField(opt, value); err != nil {
		return nil, err
	}

	return &Arg{opt: opt}, nil
}

// setValueField applies a value-name field, possibly specifier-only or
// carrying trailing specifiers, to an option.
func setValueField(opt *Option, field string) error {
	name, specs, err := stripField(field)
	if err != nil {
		return err
	}

	opt.Required = specs.Required
	opt.Repeatable = specs.Repeatable
	opt.OptionalValue = specs.Optional

	if name == "" {
		// The option takes no value at all, so an optional value
		// cannot apply to it.
		if specs.Optional {
			return newErrorf(ErrInvalidDefinition, field,
				"specifier '?' needs a value name in %q", field)
		}

		return nil
	}

	if !scan.IsValueName(name) {
		return newErrorf(ErrInvalidDefinition, field,
			"%q is not a valid option value name", field)
	}

	opt.ValueName = name

	return nil
}

// stripField wraps specifier stripping, converting its error into the
// definition error taxonomy.
func stripField(field string) (string, scan.Specifiers, error) {
	name, specs, err := scan.StripSpecifiers(field)
	if err != nil {
		return "", specs, newErrorf(ErrInvalidDefinition, field, "%s", err)
	}

	return name, specs, nil
}
