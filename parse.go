package args

import (
	"errors"

	"github.com/reeflective/args/internal/positional"
	"github.com/reeflective/args/internal/scan"
)

// Parse consumes an OS-style argument vector (argv[0] is the program name
// and is skipped) and binds every token to a definition. The registry
// itself is never mutated: accumulated values live in the returned Result,
// so the same registry can be parsed any number of times.
//
// The Result is non-nil even on error and holds everything bound before
// the failure, so hosts can honor options like "--help" seen earlier on
// the line before surfacing the error.
func (a *Args) Parse(argv []string) (*Result, error) {
	res := newResult(a)

	var queue []string
	if len(argv) > 0 {
		queue = append(queue, argv[1:]...)
	}

	var pending []string // positional tokens, bound after the scan

	terminated := false // saw the "--" terminator

	for len(queue) > 0 {
		tok := queue[0]
		queue = queue[1:]

		switch {
		case terminated || scan.IsPositional(tok):
			pending = append(pending, tok)
		case tok == "--":
			terminated = true
		default:
			var err error

			queue, err = a.parseOption(res, tok, queue)
			if err != nil {
				return res, err
			}
		}
	}

	if err := a.checkRequired(res); err != nil {
		return res, err
	}

	if err := a.bindParams(res, pending); err != nil {
		return res, err
	}

	return res, nil
}

// parseOption resolves one option token, consuming lookahead values from
// the queue as needed, and returns the possibly modified queue.
func (a *Args) parseOption(res *Result, tok string, queue []string) ([]string, error) {
	name, value, hasValue := scan.SplitOption(tok)

	idx, opt := a.findOption(name)
	if opt == nil {
		return queue, newErrorf(ErrInvalidArgument, name,
			"option %q not defined", name)
	}

	switch {
	case opt.ValueName == "": // takes no value
		if hasValue {
			if len(name) != 2 {
				return queue, newErrorf(ErrInvalidArgument, name,
					"option %q does not take a value", name)
			}

			// A joined value on a 2-character match means a group of
			// short options: requeue "-abc" minus its head as "-bc".
			queue = append([]string{"-" + value}, queue...)
		}

		value = ""

	case opt.OptionalValue:
		if !hasValue {
			// Take the next token if it is not itself an option,
			// otherwise record presence only.
			if len(queue) > 0 && scan.IsPositional(queue[0]) {
				value = queue[0]
				queue = queue[1:]
			}
		}

	default: // requires a value
		if !hasValue {
			if len(queue) == 0 || queue[0] == "--" {
				return queue, newErrorf(ErrMissingArgument, name,
					"option %q requires a value", name)
			}

			value = queue[0]
			queue = queue[1:]
		}
	}

	if len(res.options[idx]) > 0 && !opt.Repeatable {
		return queue, newErrorf(ErrInvalidArgument, name,
			"duplicate option %q", name)
	}

	res.options[idx] = append(res.options[idx], value)

	return queue, nil
}

// checkRequired verifies that every required option matched at least once.
func (a *Args) checkRequired(res *Result) error {
	for i, opt := range a.options {
		if opt.Required && len(res.options[i]) == 0 {
			return newErrorf(ErrMissingArgument, opt.Name(),
				"option %q is required", opt.Name())
		}
	}

	return nil
}

// bindParams distributes the pending positional tokens over the params.
func (a *Args) bindParams(res *Result, pending []string) error {
	slots := make([]positional.Slot, len(a.params))
	for i, par := range a.params {
		slots[i] = positional.Slot{
			Name:       par.Name,
			Optional:   par.Optional,
			Repeatable: par.Repeatable,
		}
	}

	bound, err := positional.Distribute(slots, pending)
	if err != nil {
		var required *positional.RequiredError
		if errors.As(err, &required) {
			return newErrorf(ErrMissingArgument, required.Name,
				"param %q is required", required.Name)
		}

		var extra *positional.ExtraError
		if errors.As(err, &extra) {
			return newErrorf(ErrInvalidArgument, extra.Word,
				"extra param %q", extra.Word)
		}

		return newErrorf(ErrUnknown, "", "%s", err)
	}

	res.params = bound

	return nil
}
