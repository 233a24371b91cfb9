package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/andrewpillar/yini"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

type EncState struct {
	format Format
	indent int
}

type EncodeOption func(*EncState)

func EncodeFormat(f Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeIndent sets the number of spaces used per level of nesting. Zero
// writes compact JSON.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

type member struct {
	key string
	val any
}

// object is a JSON object that keeps the order of its members.
type object []member

func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := json.Marshal(m.key)

		if err != nil {
			return nil, err
		}

		v, err := json.Marshal(m.val)

		if err != nil {
			return nil, err
		}

		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func jsonObject(mm []member) any {
	return object(mm)
}

func yamlObject(mm []member) any {
	ms := make(yaml.MapSlice, 0, len(mm))

	for _, m := range mm {
		ms = append(ms, yaml.MapItem{Key: m.key, Value: m.val})
	}
	return ms
}

func tomlObject(mm []member) any {
	tab := make(map[string]any, len(mm))

	for _, m := range mm {
		tab[m.key] = m.val
	}
	return tab
}

// convert turns v into plain Go values, build is used for anything that is
// written as a mapping.
func convert(v yini.Value, build func([]member) any) any {
	switch n := v.(type) {
	case yini.String:
		return string(n)
	case yini.Int:
		return int64(n)
	case yini.Float:
		return float64(n)
	case yini.Bool:
		return bool(n)
	case yini.Array:
		return convertList(n, build)
	case yini.Tuple:
		return convertList(n, build)
	case yini.Variant:
		if n.Payload == nil {
			return ":" + n.Name
		}
		return build([]member{{key: ":" + n.Name, val: convert(n.Payload, build)}})
	case *yini.Struct:
		mm := make([]member, 0, n.Len())

		for k, v := range n.All() {
			mm = append(mm, member{key: k, val: convert(v, build)})
		}
		return build(mm)
	}
	return nil
}

func convertList(items []yini.Value, build func([]member) any) []any {
	list := make([]any, 0, len(items))

	for _, it := range items {
		list = append(list, convert(it, build))
	}
	return list
}

// Encode writes s to w in the configured format, JSON by default.
func Encode(s *yini.Struct, w io.Writer, opts ...EncodeOption) error {
	return EncodeValue(s, w, opts...)
}

// EncodeValue writes any value to w. TOML can only encode a struct.
func EncodeValue(v yini.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}

	for _, opt := range opts {
		opt(es)
	}

	indent := strings.Repeat(" ", es.indent)

	switch es.format {
	case JSONFormat:
		enc := json.NewEncoder(w)

		if indent != "" {
			enc.SetIndent("", indent)
		}
		return enc.Encode(convert(v, jsonObject))
	case YAMLFormat:
		n := es.indent

		if n == 0 {
			n = 2
		}
		return yaml.NewEncoder(w, yaml.Indent(n)).Encode(convert(v, yamlObject))
	case TOMLFormat:
		if _, ok := v.(*yini.Struct); !ok {
			return fmt.Errorf("%w: toml cannot encode a top level %s", ErrBadFormat, v.Kind())
		}

		enc := toml.NewEncoder(w)
		enc.Indent = indent
		return enc.Encode(convert(v, tomlObject))
	}
	return fmt.Errorf("%w: %s", ErrBadFormat, es.format)
}
