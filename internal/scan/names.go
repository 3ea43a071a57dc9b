package scan

// Name classifiers for option and param definitions. Names are restricted
// to the ASCII range regardless of locale, so the checks work on raw bytes.

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// isGraph reports whether c is a printable, non-space ASCII character.
func isGraph(c byte) bool {
	return c > 0x20 && c < 0x7f
}

// IsShortOption reports whether s is a valid short option name: exactly
// a dash followed by one alphanumeric character, e.g. "-v".
func IsShortOption(s string) bool {
	return len(s) == 2 && s[0] == '-' && isAlnum(s[1])
}

// IsLongOption reports whether s is a valid long option name: "--" followed
// by alphanumerics and dashes, the first of which must not be a dash,
// e.g. "--verbose" or "--log-level".
func IsLongOption(s string) bool {
	if len(s) <= 2 || s[0] != '-' || s[1] != '-' || s[2] == '-' {
		return false
	}

	for i := 2; i < len(s); i++ {
		if s[i] != '-' && !isAlnum(s[i]) {
			return false
		}
	}

	return true
}

// IsValueName reports whether s can name an option value: non-empty, not
// dash-led, printable, and free of the specifier characters (those must
// have been stripped beforehand, so any left over mark a malformed field).
func IsValueName(s string) bool {
	if len(s) == 0 || s[0] == '-' {
		return false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '+' || c == '?' || c == '!' || !isGraph(c) {
			return false
		}
	}

	return true
}

// IsParamName reports whether s can name a positional parameter.
// Params follow the same character rules as option value names.
func IsParamName(s string) bool {
	return IsValueName(s)
}
