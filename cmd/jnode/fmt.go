package main

import (
	"io"

	"github.com/scott-cotton/cli"
)

func fmtCmd(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	docs, err := loadDocs(cc, args)
	if err != nil {
		return err
	}
	return formatDocs(cfg, cc.Out, docs)
}

func formatDocs(cfg *FmtConfig, w io.Writer, docs []document) error {
	log := cfg.logger()
	f := cfg.formatter(w)
	for _, d := range docs {
		root, err := d.parse(cfg.JWCC)
		if err != nil {
			return err
		}
		log.Debug("parsed document", "name", d.name, "bytes", len(d.data), "items", root.Items())
		if err := f.Format(w, root); err != nil {
			return err
		}
	}
	return nil
}
