package main

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/andrewpillar/yini"

	"github.com/scott-cotton/cli"
)

//go:embed sample.yini
var sample []byte

func bench(cfg *BenchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Bench.Parse(cc, args)
	if err != nil {
		return err
	}
	n := cfg.N
	if n <= 0 {
		n = 10000
	}
	warmup := cfg.Warmup
	if warmup <= 0 {
		warmup = 100
	}
	docs := []document{{name: "sample", src: sample}}
	if len(args) > 0 {
		docs, err = readDocuments(cc.In, args)
		if err != nil {
			return err
		}
	}
	log := cfg.logger()
	for _, doc := range docs {
		for i := 0; i < warmup; i++ {
			yini.NewParser(doc.src).Parse()
		}
		start := time.Now()
		for i := 0; i < n; i++ {
			yini.NewParser(doc.src).Parse()
		}
		elapsed := time.Since(start)
		per := elapsed / time.Duration(n)
		rate := "inf"
		if per > 0 {
			rate = fmt.Sprintf("%.0f", 1/per.Seconds())
		}
		log.Info("bench",
			"file", doc.name,
			"iterations", n,
			"elapsed", elapsed,
			"per_parse", per,
			"parses_per_sec", rate)
	}
	return nil
}
