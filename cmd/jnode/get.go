package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
)

func getCmd(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a path", cli.ErrUsage)
	}
	docs, err := loadDocs(cc, args[1:])
	if err != nil {
		return err
	}
	return getPath(cfg, cc.Out, args[0], docs)
}

// getPath writes the node at path in each document to w. It is an error if
// any document lacks the path.
func getPath(cfg *GetConfig, w io.Writer, path string, docs []document) error {
	log := cfg.logger()
	f := cfg.formatter(w)
	for _, d := range docs {
		root, err := d.parse(cfg.JWCC)
		if err != nil {
			return err
		}
		n := root.Lookup(path)
		if n == nil {
			return fmt.Errorf("%s: no value at %q", d.name, path)
		}
		log.Debug("found path", "name", d.name, "path", path, "at", n.Path(), "type", n.Type())
		if err := f.Format(w, n); err != nil {
			return err
		}
	}
	return nil
}
