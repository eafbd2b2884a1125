package clitree

import (
	"fmt"

	"github.com/napalu/clitree/errs"
	"github.com/napalu/clitree/internal/util"
)

// OptionValue returns the first value of the option called name, given as
// full ("--output") or short ("-o") name. It fails with
// errs.ErrOptionNotFound when the command declares no such option,
// errs.ErrParsedOptionNotFound when the option received no value and
// errs.ErrTypeConversionFailed when the value is not a T.
func OptionValue[T any](s *Success, name string) (T, error) {
	v, ok, err := LookupOptionValue[T](s, name)
	if err == nil && !ok {
		err = errs.ErrParsedOptionNotFound.WithArgs(name)
	}

	return v, err
}

// OptionValues returns every value of the option called name.
func OptionValues[T any](s *Success, name string) ([]T, error) {
	v, ok, err := LookupOptionValues[T](s, name)
	if err == nil && !ok {
		err = errs.ErrParsedOptionNotFound.WithArgs(name)
	}

	return v, err
}

// LookupOptionValue is OptionValue for optional options: an option that
// received no value yields ok == false and no error.
func LookupOptionValue[T any](s *Success, name string) (value T, ok bool, err error) {
	raw, ok, err := s.optionValues(name)
	if err != nil || !ok {
		return value, false, err
	}
	value, err = downcast[T](name, raw[0])

	return value, err == nil, err
}

// LookupOptionValues is OptionValues for optional options.
func LookupOptionValues[T any](s *Success, name string) ([]T, bool, error) {
	raw, ok, err := s.optionValues(name)
	if err != nil || !ok {
		return nil, false, err
	}
	values, err := downcastAll[T](name, raw)
	if err != nil {
		return nil, false, err
	}

	return values, true, nil
}

// PositionalValue returns the first value of the positional argument declared
// at index.
func PositionalValue[T any](s *Success, index int) (T, error) {
	var zero T
	arg, raw, err := s.positionalValues(index)
	if err != nil {
		return zero, err
	}

	return downcast[T](arg.name, raw[0])
}

// PositionalValues returns every value of the positional argument declared at
// index.
func PositionalValues[T any](s *Success, index int) ([]T, error) {
	arg, raw, err := s.positionalValues(index)
	if err != nil {
		return nil, err
	}

	return downcastAll[T](arg.name, raw)
}

// Flag reports whether the flag called name was seen.
func (s *Success) Flag(name string) (bool, error) {
	n, err := s.FlagCount(name)
	return n > 0, err
}

// FlagCount returns how many times the flag called name was seen, so that
// -vvv yields 3.
func (s *Success) FlagCount(name string) (int, error) {
	opt := s.command.Option(name)
	if opt == nil {
		return 0, errs.ErrOptionNotFound.WithArgs(name, s.command.path)
	}

	n := 0
	for _, f := range s.flags {
		if f.id == opt.id {
			n++
		}
	}

	return n, nil
}

func (s *Success) optionValues(name string) ([]any, bool, error) {
	opt := s.command.Option(name)
	if opt == nil {
		return nil, false, errs.ErrOptionNotFound.WithArgs(name, s.command.path)
	}
	v, ok := s.options.Get(opt.id)
	if !ok {
		return nil, false, nil
	}
	raw := v.([]any)

	return raw, len(raw) > 0, nil
}

func (s *Success) positionalValues(index int) (*Argument, []any, error) {
	if index < 0 || index >= len(s.command.positional) {
		return nil, nil, errs.ErrPositionalArgumentNotFound.WithArgs(index, s.command.path)
	}
	arg := s.command.positional[index]
	v, ok := s.positional.Get(arg.id)
	if !ok || len(v.([]any)) == 0 {
		return nil, nil, errs.ErrPositionalArgumentNotFound.WithArgs(index, s.command.path)
	}

	return arg, v.([]any), nil
}

func downcast[T any](name string, v any) (T, error) {
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, errs.ErrTypeConversionFailed.WithArgs(name, fmt.Sprintf("%T", v), util.TypeName[T]())
	}

	return t, nil
}

func downcastAll[T any](name string, raw []any) ([]T, error) {
	out := make([]T, len(raw))
	for i, v := range raw {
		t, err := downcast[T](name, v)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}

	return out, nil
}
