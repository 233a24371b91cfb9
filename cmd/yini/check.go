package main

import (
	"github.com/andrewpillar/yini"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	docs, err := readDocuments(cc.In, args)
	if err != nil {
		return err
	}
	pr := cfg.printer(cc.Out)
	log := cfg.logger()
	n := 0
	for _, doc := range docs {
		p := yini.NewParser(doc.src)
		s := p.Parse()
		pr.printAll(doc.name, p.Errors())
		n += len(p.Errors())
		log.Debug("checked", "file", doc.name, "keys", s.Len(), "errors", len(p.Errors()))
	}
	if n > 0 {
		log.Debug("check failed", "documents", len(docs), "errors", n)
		return cli.ExitCodeErr(1)
	}
	return nil
}
