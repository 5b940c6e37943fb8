package stmt

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/google/uuid"
)

var ErrUnsupportedType = errors.New("unsupported value type")

// Value is a literal that can be assigned to a column. The set of
// implementations is closed: Text, Int, Bool, Time, UUID, Raw and Null.
type Value interface {
	// Literal renders the value as SQL text.
	Literal() string
	// Arg returns the value as a bind argument for a prepared statement.
	Arg() interface{}

	value()
}

// Text is rendered between single quotes. Embedded quotes are not escaped.
type Text string

func (t Text) Literal() string  { return "'" + string(t) + "'" }
func (t Text) Arg() interface{} { return string(t) }
func (Text) value()             {}

type Int int64

func (i Int) Literal() string  { return strconv.FormatInt(int64(i), 10) }
func (i Int) Arg() interface{} { return int64(i) }
func (Int) value()             {}

// Bool is stored as an integer, 1 for true and 0 for false.
type Bool bool

func (b Bool) asInt() Int {
	if b {
		return 1
	}
	return 0
}

func (b Bool) Literal() string  { return b.asInt().Literal() }
func (b Bool) Arg() interface{} { return b.asInt().Arg() }
func (Bool) value()             {}

// Time is stored as milliseconds since the unix epoch.
type Time time.Time

func (t Time) millis() Int { return Int(time.Time(t).UnixMilli()) }

func (t Time) Literal() string  { return t.millis().Literal() }
func (t Time) Arg() interface{} { return t.millis().Arg() }
func (Time) value()             {}

type UUID uuid.UUID

func (u UUID) Literal() string  { return Text(uuid.UUID(u).String()).Literal() }
func (u UUID) Arg() interface{} { return uuid.UUID(u).String() }
func (UUID) value()             {}

// Raw is emitted verbatim, e.g. Raw("hits + 1"). It is never turned into a
// placeholder.
type Raw string

func (r Raw) Literal() string  { return string(r) }
func (r Raw) Arg() interface{} { return string(r) }
func (Raw) value()             {}

type null struct{}

func (null) Literal() string  { return "NULL" }
func (null) Arg() interface{} { return nil }
func (null) value()           {}

var Null Value = null{}

var timeType = reflect.TypeOf(time.Time{})
var uuidType = reflect.TypeOf(uuid.UUID{})

// ValueOf converts a plain Go value into a Value.
func ValueOf(v any) (Value, error) {
	switch v := v.(type) {
	case nil:
		return Null, nil
	case Value:
		return v, nil
	case string:
		return Text(v), nil
	case bool:
		return Bool(v), nil
	case time.Time:
		return Time(v), nil
	case uuid.UUID:
		return UUID(v), nil
	}
	return valueOfReflect(reflect.ValueOf(v))
}

func valueOfReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return Null, nil
		}
		return valueOfReflect(rv.Elem())
	case reflect.String:
		return Text(rv.String()), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if rv.Uint() > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %s %d overflows int64", ErrUnsupportedType, rv.Type(), rv.Uint())
		}
		return Int(int64(rv.Uint())), nil
	}
	switch rv.Type() {
	case timeType:
		return Time(rv.Interface().(time.Time)), nil
	case uuidType:
		return UUID(rv.Interface().(uuid.UUID)), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type())
}

// Lit renders v as a SQL literal. Strings are quoted; types without a
// Value mapping fall back to fmt.Sprint.
func Lit(v any) string {
	val, err := ValueOf(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return val.Literal()
}
