package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/creachadair/jnode"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='colorize output even if it is not a terminal'"`
	NoColor bool `cli:"name=nocolor desc='never colorize output'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log debugging details to stderr'"`

	Main *cli.Command
}

// logger returns a logger that writes to stderr if verbose logging is
// enabled, and discards otherwise.
func (cfg *MainConfig) logger() *slog.Logger {
	if !cfg.Verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// formatter returns a formatter for output to w.
func (cfg *MainConfig) formatter(w io.Writer) jnode.Formatter {
	if cfg.NoColor {
		return jnode.Formatter{}
	}
	if !cfg.Color {
		f, ok := w.(*os.File)
		if !ok || !isatty.IsTerminal(f.Fd()) {
			return jnode.Formatter{}
		}
	}
	return jnode.Formatter{Colors: newColors()}
}

func newColors() *jnode.Colors {
	paint := func(attrs ...color.Attribute) func(string, ...any) string {
		c := color.New(attrs...)
		c.EnableColor()
		return c.SprintfFunc()
	}
	return &jnode.Colors{
		Name:    paint(color.FgBlue, color.Bold),
		String:  paint(color.FgGreen),
		Number:  paint(color.FgCyan),
		Literal: paint(color.FgMagenta),
		Punct:   paint(color.Faint),
	}
}

type FmtConfig struct {
	*MainConfig

	JWCC bool `cli:"name=c aliases=jwcc desc='accept comments and trailing commas'"`

	Fmt *cli.Command
}

type GetConfig struct {
	*MainConfig

	JWCC bool `cli:"name=c aliases=jwcc desc='accept comments and trailing commas'"`

	Get *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='report only the result for each input'"`

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
