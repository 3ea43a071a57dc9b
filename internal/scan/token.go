package scan

import "strings"

// IsPositional reports whether a command-line token is a positional value
// rather than an option: the empty string, the bare "-" (conventionally
// stdin/stdout), or anything not starting with a dash.
func IsPositional(tok string) bool {
	return tok == "" || tok == "-" || tok[0] != '-'
}

// SplitOption splits an option token into its name and inline value.
// Long options split at the first '=' past the "--" prefix. Short options
// are the first two characters, with any remainder as the joined value
// (which may later turn out to be a group of short options).
func SplitOption(tok string) (name, value string, hasValue bool) {
	if strings.HasPrefix(tok, "--") {
		if i := strings.IndexByte(tok[2:], '='); i >= 0 {
			return tok[:i+2], tok[i+3:], true
		}

		return tok, "", false
	}

	if len(tok) > 2 {
		return tok[:2], tok[2:], true
	}

	return tok, "", false
}
