package normalize

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dmitrymomot/textkit/pkg/text"
)

// Kind identifies what a Value was built from.
type Kind uint8

const (
	KindNull Kind = iota
	KindText
	KindInt
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "null"
	}
}

// Value is the input accepted by every pipeline: a string-like value, a
// number or null. It is reduced to its string form on construction.
type Value struct {
	kind Kind
	s    string
	enc  string
	n    int64
}

// Null returns the null Value.
func Null() Value { return Value{} }

// String wraps s.
func String(s string) Value { return Value{kind: KindText, s: s} }

// Int wraps n; its string form is the decimal representation.
func Int(n int64) Value { return Value{kind: KindInt, s: strconv.FormatInt(n, 10), n: n} }

// Float wraps f using the shortest decimal representation that round-trips.
func Float(f float64) Value {
	v := Value{kind: KindFloat, s: strconv.FormatFloat(f, 'f', -1, 64)}
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		v.n = int64(f)
	}
	return v
}

// Stringer wraps the result of s.String(). A nil s is null.
func Stringer(s fmt.Stringer) Value {
	if s == nil {
		return Null()
	}
	return String(s.String())
}

// Encoded decodes b from the named character encoding.
func Encoded(b []byte, enc string) (Value, error) {
	t, err := text.Decode(b, enc)
	if err != nil {
		return Value{}, err
	}
	return Value{kind: KindText, s: t.String(), enc: t.Encoding()}, nil
}

// Of converts a Go value into a Value. It accepts nil, strings, byte slices,
// text.Text, fmt.Stringer, every integer and float type and pointers to
// string.
func Of(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case string:
		return String(x), nil
	case *string:
		if x == nil {
			return Null(), nil
		}
		return String(*x), nil
	case []byte:
		if x == nil {
			return Null(), nil
		}
		return String(string(x)), nil
	case text.Text:
		return Value{kind: KindText, s: x.String(), enc: x.Encoding()}, nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return unsigned(uint64(x))
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return unsigned(x)
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case fmt.Stringer:
		return Stringer(x), nil
	}
	return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
}

func unsigned(n uint64) (Value, error) {
	if n > math.MaxInt64 {
		return Value{kind: KindText, s: strconv.FormatUint(n, 10)}, nil
	}
	return Int(int64(n)), nil
}

// MustOf is like Of but panics on an unsupported type.
func MustOf(v any) Value {
	out, err := Of(v)
	if err != nil {
		panic(err)
	}
	return out
}

// Kind reports what v was built from.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// String returns the string form of v; null renders as "".
func (v Value) String() string { return v.s }

// Int returns v as an integer. Text values are parsed.
func (v Value) Int() (int64, error) {
	switch v.kind {
	case KindInt:
		return v.n, nil
	case KindFloat:
		if strconv.FormatInt(v.n, 10) == v.s {
			return v.n, nil
		}
	case KindText:
		if n, err := strconv.ParseInt(v.s, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrNotInteger, v.s)
}

// Text converts v into a text.Text carrying its declared encoding. ok is
// false for null.
func Text(v Value) (t text.Text, ok bool) {
	if v.IsNull() {
		return text.Text{}, false
	}
	if v.enc == "" {
		return text.New(v.s), true
	}
	return text.New(v.s, text.WithEncoding(v.enc)), true
}
