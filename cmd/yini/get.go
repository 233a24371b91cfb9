package main

import (
	"fmt"
	"io"
	"os"

	"github.com/andrewpillar/yini"
	"github.com/andrewpillar/yini/encode"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	path := args[0]
	opts, err := encOpts(cfg.Format, false)
	if err != nil {
		return err
	}
	docs, err := readDocuments(cc.In, args[1:])
	if err != nil {
		return err
	}
	pr := cfg.printer(os.Stderr)
	for _, doc := range docs {
		p := yini.NewParser(doc.src)
		s := p.Parse()
		pr.printAll(doc.name, p.Errors())
		v, ok := s.Path(path)
		if !ok {
			return fmt.Errorf("%s: no value at %q", doc.name, path)
		}
		if err := writeValue(cc.Out, v, opts); err != nil {
			return fmt.Errorf("error writing %s: %w", path, err)
		}
	}
	return nil
}

// writeValue writes scalars as plain text and anything else through encode.
func writeValue(w io.Writer, v yini.Value, opts []encode.EncodeOption) error {
	var err error
	switch n := v.(type) {
	case yini.String:
		_, err = fmt.Fprintln(w, string(n))
	case yini.Int, yini.Float, yini.Bool:
		_, err = fmt.Fprintln(w, n)
	case yini.Variant:
		if n.Payload == nil {
			_, err = fmt.Fprintln(w, ":"+n.Name)
			break
		}
		err = encode.EncodeValue(v, w, opts...)
	default:
		err = encode.EncodeValue(v, w, opts...)
	}
	return err
}
