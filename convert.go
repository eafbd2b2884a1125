package clitree

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/napalu/clitree/errs"
	"github.com/napalu/clitree/internal/util"
)

// Converter turns the raw text of a token into a typed value. The zero
// Converter converts nothing and is rejected by NewCommand.
type Converter struct {
	typeName    string
	unsupported bool
	convert     func(raw string) (any, error)
}

// TryConvert converts raw. Any error or panic raised by the conversion is
// reported as ok == false.
func (c Converter) TryConvert(raw string) (value any, ok bool) {
	value, err := c.Convert(raw)
	return value, err == nil
}

// Convert converts raw and returns the reason of a failure. A panic raised by
// the conversion is returned as an error.
func (c Converter) Convert(raw string) (value any, err error) {
	if c.convert == nil {
		return nil, errs.ErrConversionFailed.WithArgs(raw, "nil converter")
	}
	defer func() {
		if r := recover(); r != nil {
			value = nil
			err = errs.ErrConversionFailed.WithArgs(raw, c.typeName).Wrap(fmt.Errorf("panic: %v", r))
		}
	}()

	return c.convert(raw)
}

// TypeName returns the name of the type produced by the converter.
func (c Converter) TypeName() string {
	return c.typeName
}

func (c Converter) isZero() bool {
	return c.convert == nil
}

// Default returns the locale-invariant converter for T. Supported types are
// string, bool, all integer and float widths, time.Duration, time.Time and
// uuid.UUID. For any other T the converter is rejected by NewCommand.
func Default[T any]() Converter {
	name := util.TypeName[T]()
	var probe T
	if !util.CanConvert(&probe) {
		return Converter{
			typeName:    name,
			unsupported: true,
			convert: func(string) (any, error) {
				return nil, errs.ErrUnsupportedType.WithArgs(name)
			},
		}
	}

	return Converter{
		typeName: name,
		convert: func(raw string) (any, error) {
			var v T
			if err := util.ConvertString(raw, &v); err != nil {
				return nil, err
			}
			return v, nil
		},
	}
}

// ConvertWith wraps a custom conversion function. A nil fn yields the zero
// Converter.
func ConvertWith[T any](fn func(raw string) (T, error)) Converter {
	if fn == nil {
		return Converter{}
	}

	return Converter{
		typeName: util.TypeName[T](),
		convert: func(raw string) (any, error) {
			v, err := fn(raw)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
	}
}

// Converters for the common types, also reachable by name through
// ConverterByName.
func String() Converter { return Default[string]() }
func Int() Converter { return Default[int]() }
func Int64() Converter { return Default[int64]() }
func Uint() Converter { return Default[uint]() }
func Float64() Converter { return Default[float64]() }
func Bool() Converter { return Default[bool]() }
func Duration() Converter { return Default[time.Duration]() }
func Time() Converter { return Default[time.Time]() }
func UUID() Converter { return Default[uuid.UUID]() }

var namedConverters = map[string]func() Converter{
	"string":   String,
	"int":      Int,
	"int64":    Int64,
	"uint":     Uint,
	"float64":  Float64,
	"bool":     Bool,
	"duration": Duration,
	"time":     Time,
	"uuid":     UUID,
}

// ConverterByName resolves one of the names string, int, int64, uint,
// float64, bool, duration, time and uuid.
func ConverterByName(name string) (Converter, bool) {
	fn, ok := namedConverters[name]
	if !ok {
		return Converter{}, false
	}

	return fn(), true
}

// ConverterNames returns the names understood by ConverterByName.
func ConverterNames() []string {
	return []string{"string", "int", "int64", "uint", "float64", "bool", "duration", "time", "uuid"}
}
