package scan

import "fmt"

// Specifiers is the set of markers stripped from the end of a name field.
type Specifiers struct {
	Repeatable bool // '+': may match several times
	Optional   bool // '?': optional value (options) or optional param
	Required   bool // '!': mandatory (options only)
}

// DuplicateSpecifierError reports a marker occurring twice in one field.
type DuplicateSpecifierError struct {
	Field     string
	Specifier byte
}

func (e *DuplicateSpecifierError) Error() string {
	return fmt.Sprintf("duplicate specifier %q in %q", string(e.Specifier), e.Field)
}

// StripSpecifiers removes trailing specifier characters from a name field,
// in any order but at most once each, and reports which were present.
// The returned name may be empty: a bare specifier field declares an
// option that takes no value.
func StripSpecifiers(field string) (string, Specifiers, error) {
	name := field

	var specs Specifiers

	for i := 0; i < 3 && name != ""; i++ {
		var seen *bool

		switch c := name[len(name)-1]; c {
		case '+':
			seen = &specs.Repeatable
		case '?':
			seen = &specs.Optional
		case '!':
			seen = &specs.Required
		default:
			return name, specs, nil
		}

		if *seen {
			return "", Specifiers{}, &DuplicateSpecifierError{
				Field:     field,
				Specifier: name[len(name)-1],
			}
		}

		*seen = true
		name = name[:len(name)-1]
	}

	return name, specs, nil
}
