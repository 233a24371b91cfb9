package main

import (
	"fmt"
	"os"

	"github.com/andrewpillar/yini"
	"github.com/andrewpillar/yini/encode"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	opts, err := encOpts(cfg.Format, cfg.Compact)
	if err != nil {
		return err
	}
	docs, err := readDocuments(cc.In, args)
	if err != nil {
		return err
	}
	pr := cfg.printer(os.Stderr)
	n := len(docs)
	for i, doc := range docs {
		p := yini.NewParser(doc.src, yini.WithErrorHandler(func(e yini.ParseError) {
			pr.print(doc.name, e)
		}))
		s := p.Parse()
		cfg.logger().Debug("parsed", "file", doc.name, "keys", s.Len(), "errors", len(p.Errors()))
		if err := encode.Encode(s, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", doc.name, err)
		}
		if i < n-1 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return fmt.Errorf("error writing document %d: %w", i, err)
			}
		}
	}
	return nil
}
