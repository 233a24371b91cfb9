package yini

import (
	"iter"
	"strconv"
	"strings"
)

// Value is a node in a parsed tree. It is one of String, Int, Float, Bool,
// Variant, *Struct, Array or Tuple.
type Value interface {
	Kind() Kind
}

type (
	String string
	Int    int64
	Float  float64
	Bool   bool

	// Array is a whitespace separated list written in [...].
	Array []Value

	// Tuple is a list written in (...), its arity is fixed by the source.
	Tuple []Value
)

// Variant is a named tag, written :name, with an optional payload written
// directly after the name.
type Variant struct {
	Name    string
	Payload Value
}

func (String) Kind() Kind  { return StringKind }
func (Int) Kind() Kind     { return IntKind }
func (Float) Kind() Kind   { return FloatKind }
func (Bool) Kind() Kind    { return BoolKind }
func (Variant) Kind() Kind { return VariantKind }
func (*Struct) Kind() Kind { return StructKind }
func (Array) Kind() Kind   { return ArrayKind }
func (Tuple) Kind() Kind   { return TupleKind }

// Field is a single key in a Struct along with the position of the key in
// the source.
type Field struct {
	Pos

	Key   string
	Value Value
}

// Struct is an ordered mapping of unique keys to values. Setting an existing
// key replaces its value but keeps its place in the order.
type Struct struct {
	Fields []*Field

	tab map[string]int
}

func NewStruct() *Struct {
	return &Struct{
		Fields: make([]*Field, 0),
		tab:    make(map[string]int),
	}
}

func (s *Struct) index(key string) (int, bool) {
	if s.tab == nil {
		s.tab = make(map[string]int, len(s.Fields))

		for i, f := range s.Fields {
			s.tab[f.Key] = i
		}
	}

	i, ok := s.tab[key]
	return i, ok
}

// Set binds key to v.
func (s *Struct) Set(key string, v Value) {
	s.set(key, Pos{}, v)
}

func (s *Struct) set(key string, pos Pos, v Value) {
	if i, ok := s.index(key); ok {
		s.Fields[i].Pos = pos
		s.Fields[i].Value = v
		return
	}

	s.tab[key] = len(s.Fields)
	s.Fields = append(s.Fields, &Field{
		Pos:   pos,
		Key:   key,
		Value: v,
	})
}

// Lookup returns the field for the given key.
func (s *Struct) Lookup(key string) (*Field, bool) {
	if s == nil {
		return nil, false
	}

	i, ok := s.index(key)

	if !ok {
		return nil, false
	}
	return s.Fields[i], true
}

// Get returns the value for the given key, or nil if there is none.
func (s *Struct) Get(key string) Value {
	if f, ok := s.Lookup(key); ok {
		return f.Value
	}
	return nil
}

func (s *Struct) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Fields)
}

// Keys returns the keys in insertion order.
func (s *Struct) Keys() []string {
	keys := make([]string, 0, s.Len())

	for k := range s.All() {
		keys = append(keys, k)
	}
	return keys
}

// All iterates over the key/value pairs in insertion order.
func (s *Struct) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if s == nil {
			return
		}

		for _, f := range s.Fields {
			if !yield(f.Key, f.Value) {
				return
			}
		}
	}
}

// Path resolves a dot separated path against the struct. Struct keys are
// matched by name, numeric segments index into arrays and tuples, and a
// variant is stepped through into its payload.
func (s *Struct) Path(path string) (Value, bool) {
	var v Value = s

	if path == "" {
		return v, true
	}

	for _, seg := range strings.Split(path, ".") {
		if vr, ok := v.(Variant); ok {
			v = vr.Payload
		}

		switch n := v.(type) {
		case *Struct:
			f, ok := n.Lookup(seg)

			if !ok {
				return nil, false
			}
			v = f.Value
		case Array:
			i, err := strconv.Atoi(seg)

			if err != nil || i < 0 || i >= len(n) {
				return nil, false
			}
			v = n[i]
		case Tuple:
			i, err := strconv.Atoi(seg)

			if err != nil || i < 0 || i >= len(n) {
				return nil, false
			}
			v = n[i]
		default:
			return nil, false
		}
	}
	return v, true
}

func AsString(v Value) (string, bool) {
	s, ok := v.(String)
	return string(s), ok
}

func AsInt(v Value) (int64, bool) {
	i, ok := v.(Int)
	return int64(i), ok
}

func AsFloat(v Value) (float64, bool) {
	f, ok := v.(Float)
	return float64(f), ok
}

func AsBool(v Value) (bool, bool) {
	b, ok := v.(Bool)
	return bool(b), ok
}

func AsArray(v Value) (Array, bool) {
	a, ok := v.(Array)
	return a, ok
}

func AsStruct(v Value) (*Struct, bool) {
	s, ok := v.(*Struct)
	return s, ok && s != nil
}

func AsTuple(v Value) (Tuple, bool) {
	t, ok := v.(Tuple)
	return t, ok
}

// AsVariant returns the name of a variant.
func AsVariant(v Value) (string, bool) {
	vr, ok := v.(Variant)
	return vr.Name, ok
}

// AsVariantWithPayload returns the name of a variant and its payload, the
// payload is nil for a variant written without one.
func AsVariantWithPayload(v Value) (string, Value, bool) {
	vr, ok := v.(Variant)
	return vr.Name, vr.Payload, ok
}

// AsPair returns the two elements of a 2-tuple.
func AsPair(v Value) (Value, Value, bool) {
	t, ok := v.(Tuple)

	if !ok || len(t) != 2 {
		return nil, nil, false
	}
	return t[0], t[1], true
}
