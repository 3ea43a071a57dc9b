package args

import (
	"golang.org/x/exp/slices"
)

// Args is the definition registry: the ordered options and positional
// params of one program. Option order only affects display; param order
// defines positional binding order. A registry is built once with Add,
// then parsed and queried any number of times. It is not safe for
// concurrent use while definitions are still being added.
type Args struct {
	options []*Option
	params  []*Param
}

// New returns an empty registry.
func New() *Args {
	return &Args{}
}

// Add builds a definition from its string fields and registers it.
// See NewArg for the field grammar.
func (a *Args) Add(fields ...string) error {
	arg, err := NewArg(fields...)
	if err != nil {
		return err
	}

	return a.AddArg(arg)
}

// MustAdd is Add for program-literal definitions; it panics on error.
func (a *Args) MustAdd(fields ...string) {
	if err := a.Add(fields...); err != nil {
		panic(err)
	}
}

// AddArg registers a prebuilt definition, enforcing the registry
// invariants: no duplicate option or param names, and at most one
// repeatable param.
func (a *Args) AddArg(arg *Arg) error {
	switch {
	case arg == nil:
		return newErrorf(ErrInvalidDefinition, "", "nil definition")
	case arg.IsOption():
		return a.addOption(arg.opt)
	default:
		return a.addParam(arg.par)
	}
}

func (a *Args) addOption(opt *Option) error {
	// Short names only collide with short names, long with long.
	if opt.Short != "" && slices.ContainsFunc(a.options,
		func(o *Option) bool { return o.Short == opt.Short }) {
		return newErrorf(ErrInvalidDefinition, opt.Short,
			"duplicate short option %q", opt.Short)
	}

	if opt.Long != "" && slices.ContainsFunc(a.options,
		func(o *Option) bool { return o.Long == opt.Long }) {
		return newErrorf(ErrInvalidDefinition, opt.Long,
			"duplicate long option %q", opt.Long)
	}

	a.options = append(a.options, opt)

	return nil
}

func (a *Args) addParam(par *Param) error {
	if slices.ContainsFunc(a.params,
		func(p *Param) bool { return p.Name == par.Name }) {
		return newErrorf(ErrInvalidDefinition, par.Name,
			"duplicate param %q", par.Name)
	}

	if par.Repeatable && slices.ContainsFunc(a.params,
		func(p *Param) bool { return p.Repeatable }) {
		return newErrorf(ErrInvalidDefinition, par.Name,
			"param %q cannot repeat, another param already does", par.Name)
	}

	a.params = append(a.params, par)

	return nil
}

// Options returns the declared options in insertion order.
// The returned slice is shared with the registry; treat it as read-only.
func (a *Args) Options() []*Option {
	return a.options
}

// Params returns the declared params in declaration order.
// The returned slice is shared with the registry; treat it as read-only.
func (a *Args) Params() []*Param {
	return a.params
}

// findOption returns the option matching a short or long name, with its
// registry index, or (-1, nil).
func (a *Args) findOption(name string) (int, *Option) {
	i := slices.IndexFunc(a.options, func(o *Option) bool {
		return (o.Short != "" && o.Short == name) ||
			(o.Long != "" && o.Long == name)
	})
	if i < 0 {
		return -1, nil
	}

	return i, a.options[i]
}

// findParam returns the param with the given name and its registry
// index, or (-1, nil).
func (a *Args) findParam(name string) (int, *Param) {
	i := slices.IndexFunc(a.params, func(p *Param) bool {
		return p.Name == name
	})
	if i < 0 {
		return -1, nil
	}

	return i, a.params[i]
}
