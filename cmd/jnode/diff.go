package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/creachadair/jnode"
	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diffCmd(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %d", cli.ErrUsage, len(args))
	}
	docs, err := loadDocs(cc, args)
	if err != nil {
		return err
	}
	same, err := diffDocs(cfg, cc.Out, docs[0], docs[1])
	if err != nil {
		return err
	} else if !same {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffDocs reports whether a and b are structurally equal. If not, it
// writes a line diff of their formatted text to w.
func diffDocs(cfg *DiffConfig, w io.Writer, a, b document) (bool, error) {
	ra, err := a.parse(false)
	if err != nil {
		return false, err
	}
	rb, err := b.parse(false)
	if err != nil {
		return false, err
	}
	if jnode.Equal(ra, rb) {
		cfg.logger().Debug("documents are equal", "a", a.name, "b", b.name)
		return true, nil
	}

	dp := diffpatch.New()
	ca, cb, lines := dp.DiffLinesToChars(jnode.FormatToString(ra), jnode.FormatToString(rb))
	diffs := dp.DiffCharsToLines(dp.DiffMain(ca, cb, false), lines)

	fmt.Fprintf(w, "--- %s\n+++ %s\n", a.name, b.name)
	if cfg.formatter(w).Colors != nil {
		_, err := io.WriteString(w, dp.DiffPrettyText(diffs))
		return false, err
	}
	var sb strings.Builder
	for _, d := range diffs {
		tag := " "
		switch d.Type {
		case diffpatch.DiffInsert:
			tag = "+"
		case diffpatch.DiffDelete:
			tag = "-"
		}
		for line := range strings.Lines(d.Text) {
			sb.WriteString(tag)
			sb.WriteString(line)
		}
	}
	_, err = io.WriteString(w, sb.String())
	return false, err
}
