// Package args implements POSIX-style command-line argument definition,
// parsing and usage-text generation.
//
// A program declares its options and positional parameters on a registry,
// parses the OS argument vector against it, and queries the bound values:
//
//	cli := args.New()
//	cli.MustAdd("-v", "--verbose", "+", "increase verbosity")
//	cli.MustAdd("-p", "--port", "N!", "port to listen on")
//	cli.MustAdd("FILE+", "input file(s)")
//
//	res, err := cli.Parse(os.Args)
//	if err != nil {
//		fmt.Fprintln(os.Stderr, err)
//		os.Exit(1)
//	}
//	port := res.MustLookup("--port").Value()
//
// # Definition grammar
//
// A definition is 2 to 4 strings: one to three name fields followed by a
// mandatory description. The name fields are, in order:
//
//   - One name: a short option ("-x"), a long option ("--xxx"), or a
//     positional parameter name.
//   - Two names: a short or long option name, then either the other option
//     form or a value name (the option accepts a value).
//   - Three names: short option, long option, value name.
//
// Short option names are a dash and one alphanumeric character. Long option
// names start with "--" followed by alphanumerics and dashes. Value and
// parameter names are printable, not dash-led, and may end in specifier
// characters, stripped right to left, at most once each, in any order:
//
//   - '+' repeatable: the option may appear several times, or the param
//     absorbs several positional tokens. At most one param may carry it.
//   - '?' optional: the option's value may be omitted, or the param itself
//     may be omitted (params are required by default).
//   - '!' required: the option must appear at least once (options only).
//
// A bare specifier field such as "+" or "!" declares an option that takes
// no value with those specifiers applied.
//
// # Parsing
//
// Parsing follows the usual POSIX conventions: "--long=value" or
// "--long value", "-xvalue" or "-x value", short option grouping
// ("-abc" for "-a -b -c" when the options take no values), and the "--"
// terminator after which every token is positional. The registry is never
// mutated by Parse; values accumulate in the returned Result, so one
// registry may be parsed any number of times.
//
// Errors from Add, Parse and Lookup are *Error values carrying an ErrorKind
// and the offending token, so hosts can branch on the class of failure
// without matching message text.
package args
