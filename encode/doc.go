// Package encode writes parsed yini trees as JSON, YAML or TOML for
// inspection by other tools.
//
// Tuples are written as sequences. A variant with no payload is written as
// the string ":name", and a variant with a payload as a mapping with the
// single key ":name".
//
//	s := yini.NewParser(src).Parse()
//
//	if err := encode.Encode(s, os.Stdout, encode.EncodeFormat(encode.YAMLFormat)); err != nil {
//		...
//	}
package encode
