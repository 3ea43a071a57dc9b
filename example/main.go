// Command sync is a dummy file transfer program demonstrating argument
// definition, parsing, querying and usage output.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/reeflective/args"
)

const version = "0.42"

const preamble = `sync is a dummy file transfer program created solely for demonstrating
capabilities of the args package.`

const epilogue = `You must specify at least one source file or directory and a destination to
copy to. For example:

    sync *.c /dest/path/

In theory, this would transfer all files matching the pattern *.c from the
current directory to the directory /dest/path/. However, since this is a dummy
program, nothing will actually be transferred.`

func main() {
	name := filepath.Base(os.Args[0])

	cli := args.New()
	cli.MustAdd("-v", "--verbose", "+", "increase verbosity")
	cli.MustAdd("--info", "FLAGS", "fine-grained informational verbosity")
	cli.MustAdd("--debug", "FLAGS", "fine-grained debug verbosity")
	cli.MustAdd("-q", "--quiet", "suppress non-error messages")
	cli.MustAdd("-r", "--recursive", "recurse into directories")
	cli.MustAdd("-l", "copy symlinks as symlinks")
	cli.MustAdd("-L", "transform symlink into referent file/dir")
	cli.MustAdd("--chmod", "CHMOD?", "affect file and/or directory permissions")
	cli.MustAdd("-f", "--filter", "RULE+", "add a file-filtering RULE")
	cli.MustAdd("-V", "--version", "print the version and exit")
	cli.MustAdd("-h", "--help", "show this help")

	cli.MustAdd("SRC+", "source file(s) or directory(s)")
	cli.MustAdd("DEST", "destination file or directory")

	// Parse errors are deferred: a --help or --version seen before the
	// failure still takes precedence over reporting it.
	res, perr := cli.Parse(os.Args)

	switch {
	case res.MustLookup("--help").Present():
		fmt.Println(cli.Usage(name,
			args.WithPreamble(preamble),
			args.WithEpilogue(epilogue),
		))
	case res.MustLookup("--version").Present():
		fmt.Println(name, version)
	case perr != nil:
		fmt.Fprintln(os.Stderr, perr)
		os.Exit(1)
	default:
		if err := run(res); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func run(res *args.Result) error {
	verbosity := res.MustLookup("-v").Count()
	quiet := res.MustLookup("--quiet").Present()

	copyLinks := res.MustLookup("-l").Present()
	derefLinks := res.MustLookup("-L").Present()

	if copyLinks && derefLinks {
		return fmt.Errorf("options '-l' and '-L' are mutually exclusive")
	}

	chmod := res.MustLookup("--chmod").ValueOr("0644")
	rules := res.MustLookup("--filter").Values()

	sources := res.MustLookup("SRC").Values()
	dest := res.MustLookup("DEST").Value()

	if verbosity > 1 {
		fmt.Printf("chmod=%s filters=%d\n", chmod, len(rules))
	}

	for _, source := range sources {
		if !quiet {
			fmt.Printf("Sending %s to %s\n", source, dest)
		}
		transfer(source, dest)
	}

	return nil
}

func transfer(source, dest string) {
	_ = source
	_ = dest
}
