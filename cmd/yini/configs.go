package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/andrewpillar/yini"
	"github.com/andrewpillar/yini/encode"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='always colorize diagnostics'"`
	NoColor bool `cli:"name=nocolor desc='never colorize diagnostics'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log each document processed'"`

	Main *cli.Command

	log *slog.Logger
}

func (cfg *MainConfig) logger() *slog.Logger {
	if cfg.log == nil {
		cfg.log = newLog(cfg.Verbose)
	}
	return cfg.log
}

// printer writes diagnostics as file:line:col: message.
type printer struct {
	w io.Writer

	loc    func(...any) string
	kind   func(...any) string
	detail func(...any) string
}

func (cfg *MainConfig) printer(w io.Writer) *printer {
	p := &printer{
		w:      w,
		loc:    fmt.Sprint,
		kind:   fmt.Sprint,
		detail: fmt.Sprint,
	}

	colored := cfg.Color

	if !colored && !cfg.NoColor {
		if f, ok := w.(*os.File); ok {
			colored = isatty.IsTerminal(f.Fd())
		}
	}

	if !colored {
		return p
	}

	loc := color.New(color.Bold)
	kind := color.New(color.FgRed, color.Bold)
	detail := color.New(color.FgYellow)

	for _, c := range []*color.Color{loc, kind, detail} {
		c.EnableColor()
	}

	p.loc = loc.SprintFunc()
	p.kind = kind.SprintFunc()
	p.detail = detail.SprintFunc()
	return p
}

func (p *printer) print(name string, e yini.ParseError) {
	msg := p.kind(e.Kind.String())

	switch e.Kind {
	case yini.InvalidFloatFormat, yini.InvalidIntegerFormat:
		msg += " " + p.detail(fmt.Sprintf("%q", e.Text))
	case yini.UnexpectedCharacter:
		msg += " " + p.detail(fmt.Sprintf("%q", rune(e.Char)))
	}
	fmt.Fprintf(p.w, "%s: %s\n", p.loc(name+":"+e.Pos.String()), msg)
}

func (p *printer) printAll(name string, errs []yini.ParseError) {
	for _, e := range errs {
		p.print(name, e)
	}
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Format  string `cli:"name=f aliases=format desc='output format: json/j, yaml/y, toml/t'"`
	Compact bool   `cli:"name=c desc='compact json output'"`

	Dump *cli.Command
}

func encOpts(format string, compact bool) ([]encode.EncodeOption, error) {
	var opts []encode.EncodeOption

	if format != "" {
		f, err := encode.ParseFormat(format)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		opts = append(opts, encode.EncodeFormat(f))
	}
	if compact {
		opts = append(opts, encode.EncodeIndent(0))
	}
	return opts, nil
}

type GetConfig struct {
	*MainConfig

	Format string `cli:"name=f aliases=format desc='output format for structured values: json/j, yaml/y'"`

	Get *cli.Command
}

type BenchConfig struct {
	*MainConfig

	N      int `cli:"name=n desc='number of timed parses (default 10000)'"`
	Warmup int `cli:"name=w aliases=warmup desc='number of untimed parses first (default 100)'"`

	Bench *cli.Command
}
