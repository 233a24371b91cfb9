package yini

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"time"
)

// DecodeError reports a field that could not be decoded.
type DecodeError struct {
	Pos   Pos
	Key   string
	Type  reflect.Type
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("yini: %s - cannot decode %q into field %s of type %s", e.Pos, e.Key, e.Field, e.Type)

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

var (
	valueType    = reflect.TypeOf((*Value)(nil)).Elem()
	variantType  = reflect.TypeOf(Variant{})
	structType   = reflect.TypeOf((*Struct)(nil))
	durationType = reflect.TypeOf(time.Duration(0))
)

func kindOf(v Value) string {
	if v == nil {
		return "nothing"
	}
	return v.Kind().String()
}

// Option is a callback that is used to modify the behaviour of a Decoder.
type Option func(d *Decoder) *Decoder

// Envvars enables the expansion of environment variables in decoded strings.
// Environment variables are specified like so ${VARIABLE}.
func Envvars(d *Decoder) *Decoder {
	d.envvars = true
	return d
}

// ErrorHandler configures the handler that is given each diagnostic found
// while parsing.
func ErrorHandler(errh func(ParseError)) Option {
	return func(d *Decoder) *Decoder {
		d.errh = errh
		return d
	}
}

type Decoder struct {
	name string

	envvars bool
	errh    func(ParseError)
}

// NewDecoder returns a new decoder configured with the given options. The
// name is used in error messages.
func NewDecoder(name string, opts ...Option) *Decoder {
	d := &Decoder{
		name: name,
		errh: Stderrh,
	}

	for _, opt := range opts {
		d = opt(d)
	}
	return d
}

// Decode decodes the file into the given interface.
func Decode(v any, name string, opts ...Option) error {
	f, err := os.Open(name)

	if err != nil {
		return err
	}

	defer f.Close()

	return NewDecoder(name, opts...).Decode(v, f)
}

// Decode parses the contents of the given reader and decodes them into v,
// which must be a pointer to a struct. Nothing is decoded if the document
// has any diagnostics.
func (d *Decoder) Decode(v any, r io.Reader) error {
	s, err := Parse(d.name, r, d.errh)

	if err != nil {
		return err
	}
	return d.DecodeStruct(v, s)
}

// DecodeStruct decodes an already parsed struct into v, which must be a
// pointer to a struct.
func (d *Decoder) DecodeStruct(v any, s *Struct) error {
	rv := reflect.ValueOf(v)

	if kind := rv.Kind(); kind != reflect.Ptr || rv.IsNil() {
		return errors.New("yini: cannot decode into " + kind.String())
	}

	el := rv.Elem()

	if kind := el.Kind(); kind != reflect.Struct {
		return errors.New("yini: cannot decode into pointer to " + kind.String())
	}
	return d.decodeFields(el, s)
}

type field struct {
	name string
	val  reflect.Value
}

type fields struct {
	arr []*field
	tab map[string]int
}

func loadFields(rv reflect.Value) *fields {
	fs := &fields{
		arr: make([]*field, 0),
		tab: make(map[string]int),
	}

	t := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		sf := t.Field(i)

		if !sf.IsExported() {
			continue
		}

		name := sf.Name

		if tag := sf.Tag.Get("yini"); tag != "" {
			name = tag
		}

		if name == "-" {
			continue
		}

		fs.tab[name] = len(fs.arr)
		fs.arr = append(fs.arr, &field{
			name: name,
			val:  rv.Field(i),
		})
	}
	return fs
}

func (fs *fields) get(name string) (*field, bool) {
	if i, ok := fs.tab[name]; ok {
		return fs.arr[i], true
	}

	// Lazily search across all fields ignoring case.
	for _, f := range fs.arr {
		if strings.EqualFold(f.name, name) {
			return f, true
		}
	}
	return nil, false
}

func (d *Decoder) decodeFields(rv reflect.Value, s *Struct) error {
	fs := loadFields(rv)

	for _, sf := range s.Fields {
		f, ok := fs.get(sf.Key)

		if !ok {
			continue
		}

		v, err := d.decodeValue(f.val.Type(), sf.Value)

		if err != nil {
			var derr *DecodeError

			if errors.As(err, &derr) {
				return err
			}

			return &DecodeError{
				Pos:   sf.Pos,
				Key:   sf.Key,
				Type:  f.val.Type(),
				Field: f.name,
				Err:   err,
			}
		}
		f.val.Set(v)
	}
	return nil
}

// interpolate expands ${VARIABLE} references if enabled.
func (d *Decoder) interpolate(s string) string {
	if !d.envvars || !strings.Contains(s, "${") {
		return s
	}

	var buf bytes.Buffer

	for {
		i := strings.Index(s, "${")

		if i < 0 {
			break
		}

		end := strings.IndexByte(s[i:], '}')

		if end < 0 {
			break
		}

		buf.WriteString(s[:i])
		buf.WriteString(os.Getenv(s[i+2 : i+end]))

		s = s[i+end+1:]
	}

	buf.WriteString(s)
	return buf.String()
}

func (d *Decoder) decodeValue(rt reflect.Type, v Value) (reflect.Value, error) {
	var rv reflect.Value

	switch rt {
	case valueType:
		rv = reflect.New(rt).Elem()

		if v != nil {
			rv.Set(reflect.ValueOf(v))
		}
		return rv, nil
	case variantType:
		vr, ok := v.(Variant)

		if !ok {
			return rv, fmt.Errorf("cannot use %s as variant", kindOf(v))
		}
		return reflect.ValueOf(vr), nil
	case structType:
		s, ok := v.(*Struct)

		if !ok {
			return rv, fmt.Errorf("cannot use %s as struct", kindOf(v))
		}
		return reflect.ValueOf(s), nil
	}

	if rt.Kind() == reflect.Ptr {
		el, err := d.decodeValue(rt.Elem(), v)

		if err != nil {
			return rv, err
		}

		rv = reflect.New(rt.Elem())
		rv.Elem().Set(el)
		return rv, nil
	}

	switch n := v.(type) {
	case String:
		return d.decodeString(rt, string(n))
	case Variant:
		if rt.Kind() != reflect.String {
			return rv, fmt.Errorf("cannot use variant as %s", rt.Kind())
		}
		return reflect.ValueOf(n.Name).Convert(rt), nil
	case Int:
		return decodeInt(rt, int64(n))
	case Float:
		switch rt.Kind() {
		case reflect.Float32, reflect.Float64:
			rv = reflect.New(rt).Elem()

			if rv.OverflowFloat(float64(n)) {
				return rv, fmt.Errorf("%v overflows %s", float64(n), rt)
			}
			rv.SetFloat(float64(n))
			return rv, nil
		}
		return rv, fmt.Errorf("cannot use float as %s", rt.Kind())
	case Bool:
		if rt.Kind() != reflect.Bool {
			return rv, fmt.Errorf("cannot use bool as %s", rt.Kind())
		}
		return reflect.ValueOf(bool(n)).Convert(rt), nil
	case *Struct:
		return d.decodeStruct(rt, n)
	case Array:
		return d.decodeList(rt, n)
	case Tuple:
		return d.decodeList(rt, n)
	}
	return rv, fmt.Errorf("cannot decode %s", kindOf(v))
}

func (d *Decoder) decodeString(rt reflect.Type, s string) (reflect.Value, error) {
	var rv reflect.Value

	s = d.interpolate(s)

	if rt == durationType {
		dur, err := time.ParseDuration(s)

		if err != nil {
			return rv, err
		}
		return reflect.ValueOf(dur), nil
	}

	if kind := rt.Kind(); kind != reflect.String {
		return rv, fmt.Errorf("cannot use string as %s", kind)
	}
	return reflect.ValueOf(s).Convert(rt), nil
}

func decodeInt(rt reflect.Type, i int64) (reflect.Value, error) {
	rv := reflect.New(rt).Elem()

	switch rt.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.OverflowInt(i) {
			return rv, fmt.Errorf("%d overflows %s", i, rt)
		}
		rv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if i < 0 || rv.OverflowUint(uint64(i)) {
			return rv, fmt.Errorf("%d overflows %s", i, rt)
		}
		rv.SetUint(uint64(i))
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(float64(i))
	default:
		return rv, fmt.Errorf("cannot use integer as %s", rt.Kind())
	}
	return rv, nil
}

func (d *Decoder) decodeStruct(rt reflect.Type, s *Struct) (reflect.Value, error) {
	var rv reflect.Value

	switch rt.Kind() {
	case reflect.Struct:
		rv = reflect.New(rt).Elem()

		if err := d.decodeFields(rv, s); err != nil {
			return rv, err
		}
		return rv, nil
	case reflect.Map:
		if rt.Key().Kind() != reflect.String {
			return rv, fmt.Errorf("cannot use struct as map with %s keys", rt.Key())
		}

		rv = reflect.MakeMapWithSize(rt, s.Len())

		for _, f := range s.Fields {
			el, err := d.decodeValue(rt.Elem(), f.Value)

			if err != nil {
				var derr *DecodeError

				if errors.As(err, &derr) {
					return rv, err
				}

				return rv, &DecodeError{
					Pos:   f.Pos,
					Key:   f.Key,
					Type:  rt.Elem(),
					Field: f.Key,
					Err:   err,
				}
			}
			rv.SetMapIndex(reflect.ValueOf(f.Key).Convert(rt.Key()), el)
		}
		return rv, nil
	}
	return rv, fmt.Errorf("cannot use struct as %s", rt.Kind())
}

func (d *Decoder) decodeList(rt reflect.Type, items []Value) (reflect.Value, error) {
	var rv reflect.Value

	switch rt.Kind() {
	case reflect.Slice:
		rv = reflect.MakeSlice(rt, 0, len(items))
	case reflect.Array:
		if rt.Len() != len(items) {
			return rv, fmt.Errorf("cannot use %d items as %s", len(items), rt)
		}
		rv = reflect.New(rt).Elem()
	default:
		return rv, fmt.Errorf("cannot use list as %s", rt.Kind())
	}

	el := rt.Elem()

	for i, it := range items {
		val, err := d.decodeValue(el, it)

		if err != nil {
			return rv, fmt.Errorf("item %d: %w", i, err)
		}

		if rt.Kind() == reflect.Array {
			rv.Index(i).Set(val)
			continue
		}
		rv = reflect.Append(rv, val)
	}
	return rv, nil
}
