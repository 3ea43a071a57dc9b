package args

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serverArgs is the addr/port/help shape used across the parse tests.
func serverArgs(t *testing.T) *Args {
	t.Helper()

	reg := New()
	reg.MustAdd("-h", "--help", "show this help screen and exit")
	reg.MustAdd("-v", "--verbose", "+", "increase verbosity")
	reg.MustAdd("-p", "--port", "PORT", "port to listen on")
	reg.MustAdd("addr?", "address to bind to")

	return reg
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	res, err := serverArgs(t).Parse([]string{"server"})
	require.NoError(t, err)

	assert.False(t, res.MustLookup("-h").Present())
	assert.Zero(t, res.MustLookup("-v").Count())
	assert.False(t, res.MustLookup("addr").Present())
}

func TestParseLongAndShortForms(t *testing.T) {
	t.Parallel()

	reg := serverArgs(t)

	// The same definition matches under either name.
	for _, argv := range [][]string{
		{"server", "-p", "8080"},
		{"server", "--port", "8080"},
		{"server", "-p8080"},
		{"server", "--port=8080"},
	} {
		res, err := reg.Parse(argv)
		require.NoError(t, err, "argv %v", argv)

		port := res.MustLookup("--port")
		assert.Equal(t, "8080", port.Value(), "argv %v", argv)
		assert.Equal(t, 1, res.MustLookup("-p").Count(), "argv %v", argv)
	}
}

func TestParseGrouping(t *testing.T) {
	t.Parallel()

	reg := New()
	reg.MustAdd("-a", "flag a")
	reg.MustAdd("-b", "flag b")
	reg.MustAdd("-c", "flag c")

	grouped, err := reg.Parse([]string{"prog", "-abc"})
	require.NoError(t, err)

	spelled, err := reg.Parse([]string{"prog", "-a", "-b", "-c"})
	require.NoError(t, err)

	for _, name := range []string{"-a", "-b", "-c"} {
		assert.Equal(t,
			spelled.MustLookup(name).Count(),
			grouped.MustLookup(name).Count(), name)
		assert.True(t, grouped.MustLookup(name).Present(), name)
	}
}

// A group may end in an option that takes a value: the rest of the token
// becomes that value.
func TestParseGroupWithTrailingValue(t *testing.T) {
	t.Parallel()

	reg := New()
	reg.MustAdd("-x", "flag")
	reg.MustAdd("-f", "FILE", "input file")

	res, err := reg.Parse([]string{"prog", "-xf", "in.txt"})
	require.NoError(t, err)
	assert.True(t, res.MustLookup("-x").Present())
	assert.Equal(t, "in.txt", res.MustLookup("-f").Value())

	res, err = reg.Parse([]string{"prog", "-xfin.txt"})
	require.NoError(t, err)
	assert.Equal(t, "in.txt", res.MustLookup("-f").Value())
}

func TestParseRepeatable(t *testing.T) {
	t.Parallel()

	reg := New()
	reg.MustAdd("-f", "--filter", "RULE+", "add a filter rule")

	res, err := reg.Parse([]string{"prog", "-f", "one", "--filter=two", "-fthree"})
	require.NoError(t, err)

	filter := res.MustLookup("--filter")
	assert.Equal(t, 3, filter.Count())
	assert.Equal(t, []string{"one", "two", "three"}, filter.Values())
	assert.Equal(t, "two", filter.ValueAt(1))
}

func TestParseDuplicate(t *testing.T) {
	t.Parallel()

	res, err := serverArgs(t).Parse([]string{"server", "-p", "80", "-p", "81"})

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ErrInvalidArgument, perr.Kind)
	assert.Equal(t, "-p", perr.Token)

	// Values bound before the failure survive on the partial result.
	require.NotNil(t, res)
	assert.Equal(t, "80", res.MustLookup("-p").Value())
}

func TestParseUnknownOption(t *testing.T) {
	t.Parallel()

	_, err := serverArgs(t).Parse([]string{"server", "--bogus"})

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ErrInvalidArgument, perr.Kind)
	assert.Equal(t, "--bogus", perr.Token)
}

func TestParseValueOnNoValueOption(t *testing.T) {
	t.Parallel()

	_, err := serverArgs(t).Parse([]string{"server", "--help=now"})

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ErrInvalidArgument, perr.Kind)
	assert.Equal(t, "--help", perr.Token)
}

func TestParseMissingValue(t *testing.T) {
	t.Parallel()

	t.Run("at end of line", func(t *testing.T) {
		t.Parallel()

		_, err := serverArgs(t).Parse([]string{"server", "--port"})

		var perr *Error
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, ErrMissingArgument, perr.Kind)
		assert.Equal(t, "--port", perr.Token)
	})

	t.Run("before terminator", func(t *testing.T) {
		t.Parallel()

		_, err := serverArgs(t).Parse([]string{"server", "-p", "--"})
		assert.True(t, IsKind(err, ErrMissingArgument))
	})

	t.Run("option-looking token consumed", func(t *testing.T) {
		t.Parallel()

		// A required value takes the next token even when it looks like
		// an option.
		res, err := serverArgs(t).Parse([]string{"server", "-p", "-v"})
		require.NoError(t, err)
		assert.Equal(t, "-v", res.MustLookup("-p").Value())
		assert.False(t, res.MustLookup("-v").Present())
	})
}

func TestParseRequiredOption(t *testing.T) {
	t.Parallel()

	reg := New()
	reg.MustAdd("-o", "--output", "FILE!", "output file")
	reg.MustAdd("-q", "quiet")

	_, err := reg.Parse([]string{"prog", "-q"})

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ErrMissingArgument, perr.Kind)
	assert.Equal(t, "-o/--output", perr.Token)

	res, err := reg.Parse([]string{"prog", "-o", "out.txt"})
	require.NoError(t, err)
	assert.Equal(t, "out.txt", res.MustLookup("--output").Value())
}

func TestParseOptionalValue(t *testing.T) {
	t.Parallel()

	chmod := func(t *testing.T) *Args {
		t.Helper()

		reg := New()
		reg.MustAdd("--chmod", "CHMOD?", "permissions for the files")
		reg.MustAdd("-q", "quiet")
		reg.MustAdd("FILE?", "file to send")

		return reg
	}

	t.Run("joined value", func(t *testing.T) {
		t.Parallel()

		res, err := chmod(t).Parse([]string{"prog", "--chmod=0755"})
		require.NoError(t, err)
		assert.Equal(t, "0755", res.MustLookup("--chmod").Value())
	})

	t.Run("lookahead value", func(t *testing.T) {
		t.Parallel()

		// The next token is not an option, so it becomes the value and
		// is no longer available as a param.
		res, err := chmod(t).Parse([]string{"prog", "--chmod", "0755"})
		require.NoError(t, err)
		assert.Equal(t, "0755", res.MustLookup("--chmod").Value())
		assert.False(t, res.MustLookup("FILE").Present())
	})

	t.Run("lookahead skips options", func(t *testing.T) {
		t.Parallel()

		res, err := chmod(t).Parse([]string{"prog", "--chmod", "-q"})
		require.NoError(t, err)

		mode := res.MustLookup("--chmod")
		assert.True(t, mode.Present())
		assert.Equal(t, "", mode.Value())
		assert.True(t, res.MustLookup("-q").Present())
	})

	t.Run("bare at end of line", func(t *testing.T) {
		t.Parallel()

		// Seen without a value: present, value is the empty string, and
		// a default does not apply.
		res, err := chmod(t).Parse([]string{"prog", "--chmod"})
		require.NoError(t, err)

		mode := res.MustLookup("--chmod")
		assert.True(t, mode.Present())
		assert.Equal(t, "", mode.Value())
		assert.Equal(t, "", mode.ValueOr("0644"))
	})
}

func TestParseTerminator(t *testing.T) {
	t.Parallel()

	reg := New()
	reg.MustAdd("-x", "flag")
	reg.MustAdd("FILE+", "files")

	res, err := reg.Parse([]string{"prog", "-x", "--", "-y", "--zap", "--"})
	require.NoError(t, err)

	assert.True(t, res.MustLookup("-x").Present())
	assert.Equal(t, []string{"-y", "--zap", "--"},
		res.MustLookup("FILE").Values())
}

func TestParseDashTokens(t *testing.T) {
	t.Parallel()

	reg := New()
	reg.MustAdd("FILE+", "files, - meaning stdin")

	// "-" and "" are ordinary positional tokens.
	res, err := reg.Parse([]string{"prog", "-", ""})
	require.NoError(t, err)
	assert.Equal(t, []string{"-", ""}, res.MustLookup("FILE").Values())
}

func TestParseOptionsAmongParams(t *testing.T) {
	t.Parallel()

	res, err := serverArgs(t).Parse(
		[]string{"server", "localhost", "-v", "-p", "8080"})
	require.NoError(t, err)

	assert.Equal(t, "localhost", res.MustLookup("addr").Value())
	assert.Equal(t, 1, res.MustLookup("-v").Count())
	assert.Equal(t, "8080", res.MustLookup("--port").Value())
}

func TestParseParamDistribution(t *testing.T) {
	t.Parallel()

	reg := New()
	reg.MustAdd("p1", "first")
	reg.MustAdd("p2?", "second")
	reg.MustAdd("p3", "third")

	t.Run("mandatory reserved", func(t *testing.T) {
		t.Parallel()

		res, err := reg.Parse([]string{"prog", "a", "b"})
		require.NoError(t, err)
		assert.Equal(t, "a", res.MustLookup("p1").Value())
		assert.False(t, res.MustLookup("p2").Present())
		assert.Equal(t, "b", res.MustLookup("p3").Value())
	})

	t.Run("optional filled", func(t *testing.T) {
		t.Parallel()

		res, err := reg.Parse([]string{"prog", "a", "b", "c"})
		require.NoError(t, err)
		assert.Equal(t, "b", res.MustLookup("p2").Value())
		assert.Equal(t, "c", res.MustLookup("p3").Value())
	})

	t.Run("missing mandatory", func(t *testing.T) {
		t.Parallel()

		_, err := reg.Parse([]string{"prog", "a"})

		var perr *Error
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, ErrMissingArgument, perr.Kind)
		assert.Equal(t, "p3", perr.Token)
	})

	t.Run("extra", func(t *testing.T) {
		t.Parallel()

		_, err := reg.Parse([]string{"prog", "a", "b", "c", "d"})

		var perr *Error
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, ErrInvalidArgument, perr.Kind)
		assert.Equal(t, "d", perr.Token)
	})
}

func TestParseRepeatableParamTail(t *testing.T) {
	t.Parallel()

	reg := New()
	reg.MustAdd("SRC+", "source files")
	reg.MustAdd("DEST", "destination")

	res, err := reg.Parse([]string{"sync", "a.c", "b.c", "c.c", "dest/"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.c", "b.c", "c.c"},
		res.MustLookup("SRC").Values())
	assert.Equal(t, "dest/", res.MustLookup("DEST").Value())
}

// A partial result still answers lookups, so a host can honor --help seen
// before the failing token.
func TestParsePartialResult(t *testing.T) {
	t.Parallel()

	reg := New()
	reg.MustAdd("-h", "--help", "show help")
	reg.MustAdd("-o", "FILE!", "output file")

	res, err := reg.Parse([]string{"prog", "-h"})
	require.Error(t, err)
	require.NotNil(t, res)
	assert.True(t, res.MustLookup("--help").Present())
}

// Parsing never mutates the registry: back-to-back runs are independent.
func TestParseReuse(t *testing.T) {
	t.Parallel()

	reg := serverArgs(t)

	first, err := reg.Parse([]string{"server", "-v", "-v", "-p", "80"})
	require.NoError(t, err)

	second, err := reg.Parse([]string{"server"})
	require.NoError(t, err)

	assert.Equal(t, 2, first.MustLookup("-v").Count())
	assert.Zero(t, second.MustLookup("-v").Count())
	assert.False(t, second.MustLookup("-p").Present())
}

func TestParseNilArgv(t *testing.T) {
	t.Parallel()

	reg := New()
	reg.MustAdd("-v", "verbosity")

	res, err := reg.Parse(nil)
	require.NoError(t, err)
	assert.False(t, res.MustLookup("-v").Present())
}
