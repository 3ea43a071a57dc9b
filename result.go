package args

import "fmt"

// Result holds the values accumulated over one Parse call, in a side
// table indexed identically to the registry's definitions. Each Parse
// returns a fresh Result; the registry itself stays immutable.
type Result struct {
	args    *Args
	options [][]string
	params  [][]string
}

func newResult(a *Args) *Result {
	return &Result{
		args:    a,
		options: make([][]string, len(a.options)),
		params:  make([][]string, len(a.params)),
	}
}

// Lookup returns the value view for the option (matched by short or long
// name) or param whose identifier equals name. A name matching no
// definition is an ErrInvalidArgument error.
func (r *Result) Lookup(name string) (*ArgVal, error) {
	if name != "" {
		if i, opt := r.args.findOption(name); opt != nil {
			return &ArgVal{name: name, data: r.options[i]}, nil
		}

		if i, par := r.args.findParam(name); par != nil {
			return &ArgVal{name: name, data: r.params[i]}, nil
		}
	}

	return nil, newErrorf(ErrInvalidArgument, name,
		"option or param %q not defined", name)
}

// MustLookup is Lookup for names known to be defined; it panics otherwise.
func (r *Result) MustLookup(name string) *ArgVal {
	val, err := r.Lookup(name)
	if err != nil {
		panic(err)
	}

	return val
}

// ArgVal is a read-only view over the values bound to one definition,
// in command-line encounter order.
type ArgVal struct {
	name string
	data []string
}

// Count returns the number of accumulated values.
func (v *ArgVal) Count() int {
	return len(v.data)
}

// Present reports whether the definition matched at least once. Note that
// a no-value or optional-value option records the empty string when it
// matches, so Present distinguishes "seen" from "seen with a value".
func (v *ArgVal) Present() bool {
	return len(v.data) > 0
}

// Value returns the first accumulated value. It panics when none is
// present: indexed access to absent values is a programming error, not
// a parse failure.
func (v *ArgVal) Value() string {
	return v.ValueAt(0)
}

// ValueAt returns the n-th accumulated value, panicking when n is out
// of range.
func (v *ArgVal) ValueAt(n int) string {
	if n < 0 || n >= len(v.data) {
		panic(fmt.Sprintf("args: value %d of %q out of range (have %d)",
			n, v.name, len(v.data)))
	}

	return v.data[n]
}

// ValueOr returns the first value, or def when none is present. An option
// seen without a value records "", which ValueOr returns as-is: the
// default only applies when the definition did not match at all.
func (v *ArgVal) ValueOr(def string) string {
	if len(v.data) == 0 {
		return def
	}

	return v.data[0]
}

// Values returns all accumulated values in encounter order.
// The returned slice is shared; treat it as read-only.
func (v *ArgVal) Values() []string {
	return v.data
}
