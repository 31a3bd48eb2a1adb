package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/creachadair/jnode"
	"github.com/creachadair/jnode/schema"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func checkCmd(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires a schema file", cli.ErrUsage)
	}
	sd, err := loadDoc(cc, args[0])
	if err != nil {
		return err
	}
	rule, err := parseSchema(sd)
	if err != nil {
		return err
	}
	docs, err := loadDocs(cc, args[1:])
	if err != nil {
		return err
	}
	ok, err := checkDocs(cfg, cc.Out, os.Stderr, rule, docs)
	if err != nil {
		return err
	} else if !ok {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// parseSchema parses a schema document, converting it from YAML first if
// its name has a YAML extension.
func parseSchema(d document) (*jnode.Node, error) {
	switch filepath.Ext(d.name) {
	case ".yaml", ".yml":
		data, err := yaml.YAMLToJSON(d.data)
		if err != nil {
			return nil, fmt.Errorf("%s: convert YAML: %w", d.name, err)
		}
		d.data = data
	}
	return d.parse(false)
}

// checkDocs validates each document against rule, writing a result line for
// each to w, and diagnostics to ew. It reports whether all the documents
// are valid.
func checkDocs(cfg *CheckConfig, w, ew io.Writer, rule *jnode.Node, docs []document) (bool, error) {
	log := cfg.logger()
	all := true
	for _, d := range docs {
		data, err := d.parse(false)
		if err != nil {
			return false, err
		}
		var nerr, nwarn int
		v := schema.Validator{
			Report: func(diag schema.Diagnostic) {
				if diag.Severity == schema.Warning {
					nwarn++
				} else {
					nerr++
				}
				if !cfg.Quiet {
					fmt.Fprintf(ew, "%s: %v\n", d.name, diag)
				}
			},
		}
		ok := v.Validate(data, rule)
		log.Debug("validated", "name", d.name, "valid", ok, "errors", nerr, "warnings", nwarn)
		if ok {
			fmt.Fprintf(w, "%s: valid\n", d.name)
		} else {
			fmt.Fprintf(w, "%s: invalid (%d errors)\n", d.name, nerr)
			all = false
		}
	}
	return all, nil
}
