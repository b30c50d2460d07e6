package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/structext/ir"
)

// readInput reads the file at path, or cc.In when path is "-".
func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// eachInput calls fn with the contents of every file in args, or of
// standard input when args is empty.  Format errors are reported on
// stderr as they are and processing continues with the next file; the
// returned error then asks for exit code 1.
func eachInput(cc *cli.Context, args []string, fn func(name string, d []byte) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := false
	for _, arg := range args {
		d, err := readInput(cc, arg)
		if err != nil {
			return err
		}
		err = fn(arg, d)
		if err == nil {
			continue
		}
		if !reportFormatError(os.Stderr, arg, len(args) > 1, err) {
			return err
		}
		failed = true
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// reportFormatError writes err to w if it is a format error, prefixed
// by name when named is set.
func reportFormatError(w io.Writer, name string, named bool, err error) bool {
	fe, ok := ir.AsFormatError(err)
	if !ok {
		return false
	}
	if named {
		fmt.Fprintf(w, "%s: %s\n", name, fe)
	} else {
		fmt.Fprintln(w, fe)
	}
	return true
}

// separator is written between the documents of consecutive files.
func separator(w io.Writer, i int, sep string) error {
	if i == 0 {
		return nil
	}
	_, err := io.WriteString(w, sep)
	return err
}
