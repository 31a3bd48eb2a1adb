package main

import (
	"fmt"
	"io"
	"os"

	"github.com/creachadair/jnode"
	"github.com/scott-cotton/cli"
)

// A document is the unparsed contents of one input.
type document struct {
	name string
	data []byte
}

// loadDocs reads the named files, or standard input if there are none. The
// name "-" also denotes standard input.
func loadDocs(cc *cli.Context, paths []string) ([]document, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	var out []document
	for _, path := range paths {
		d, err := loadDoc(cc, path)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func loadDoc(cc *cli.Context, path string) (document, error) {
	var r io.Reader
	if path == "-" {
		r = cc.In
	} else {
		f, err := os.Open(path)
		if err != nil {
			return document{}, err
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return document{}, fmt.Errorf("error reading %q: %w", path, err)
	}
	return document{name: path, data: data}, nil
}

// parse parses the document, as JWCC if jwcc is true.
func (d document) parse(jwcc bool) (*jnode.Node, error) {
	var root *jnode.Node
	var err error
	if jwcc {
		root, err = jnode.ParseJWCC(d.data)
	} else {
		root, err = jnode.Parse(d.data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.name, err)
	}
	return root, nil
}
