package clitree

import (
	"errors"
	"testing"

	"github.com/napalu/clitree/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parsedFixture(t *testing.T) *Success {
	t.Helper()
	root, err := NewCommand("main", "description",
		WithPositional(str("arg1"), str("arg2", Repeated())),
		WithOption(
			NewOption("--opt1", "description", WithShortName('a'), WithArgument(str("opt1arg"))),
			NewOption("--opt2", "description", WithShortName('b'), WithArgument(str("opt2arg", Repeated()))),
			NewOption("--opt3", "description", WithShortName('c'), WithArgument(str("opt3arg"))),
			NewOption("--opt4", "description", WithShortName('d'), WithArgument(NewArgument("opt4arg", Int(), Repeated()))),
			NewOption("--flag1", "description", WithShortName('f')),
			NewOption("--flag2", "description", WithShortName('e')),
		))
	require.NoError(t, err)

	result := Parse(root, []string{"argfoo", "argbar", "argbaz", "--opt1", "optfoo", "-b", "optbar", "optbaz", "-f"})
	require.True(t, result.OK(), "%v", result)

	return result.(*Success)
}

func TestSuccess_OptionValue(t *testing.T) {
	s := parsedFixture(t)

	for _, name := range []string{"--opt1", "-a"} {
		v, err := OptionValue[string](s, name)
		assert.NoError(t, err)
		assert.Equal(t, "optfoo", v)

		_, err = OptionValue[int](s, name)
		assert.True(t, errors.Is(err, errs.ErrTypeConversionFailed), "%v", err)
	}

	_, err := OptionValue[string](s, "--missing")
	assert.True(t, errors.Is(err, errs.ErrOptionNotFound))
	_, err = OptionValue[string](s, "-z")
	assert.True(t, errors.Is(err, errs.ErrOptionNotFound))
	_, err = OptionValue[string](s, "--opt3")
	assert.True(t, errors.Is(err, errs.ErrParsedOptionNotFound))
	_, err = OptionValue[string](s, "-c")
	assert.True(t, errors.Is(err, errs.ErrParsedOptionNotFound))
}

func TestSuccess_OptionValues(t *testing.T) {
	s := parsedFixture(t)

	for _, name := range []string{"--opt2", "-b"} {
		v, err := OptionValues[string](s, name)
		assert.NoError(t, err)
		assert.Equal(t, []string{"optbar", "optbaz"}, v)

		_, err = OptionValues[int](s, name)
		assert.True(t, errors.Is(err, errs.ErrTypeConversionFailed))
	}

	_, err := OptionValues[string](s, "--missing")
	assert.True(t, errors.Is(err, errs.ErrOptionNotFound))
	_, err = OptionValues[int](s, "--opt4")
	assert.True(t, errors.Is(err, errs.ErrParsedOptionNotFound))
}

func TestSuccess_LookupOptionValue(t *testing.T) {
	s := parsedFixture(t)

	v, ok, err := LookupOptionValue[string](s, "-a")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "optfoo", v)

	v, ok, err = LookupOptionValue[string](s, "--opt3")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "", v)

	_, _, err = LookupOptionValue[string](s, "--missing")
	assert.True(t, errors.Is(err, errs.ErrOptionNotFound))

	_, ok, err = LookupOptionValue[bool](s, "--opt1")
	assert.False(t, ok)
	assert.True(t, errors.Is(err, errs.ErrTypeConversionFailed))

	values, ok, err := LookupOptionValues[string](s, "--opt2")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"optbar", "optbaz"}, values)

	values, ok, err = LookupOptionValues[string](s, "-d")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, values)

	_, ok, err = LookupOptionValues[int](s, "-b")
	assert.False(t, ok)
	assert.True(t, errors.Is(err, errs.ErrTypeConversionFailed))
}

func TestSuccess_Flag(t *testing.T) {
	s := parsedFixture(t)

	for _, name := range []string{"--flag1", "-f"} {
		seen, err := s.Flag(name)
		assert.NoError(t, err)
		assert.True(t, seen)
	}
	for _, name := range []string{"--flag2", "-e"} {
		seen, err := s.Flag(name)
		assert.NoError(t, err)
		assert.False(t, seen)
	}
	for _, name := range []string{"--flag3", "-g"} {
		_, err := s.Flag(name)
		assert.True(t, errors.Is(err, errs.ErrOptionNotFound))
	}
}

func TestSuccess_FlagCount(t *testing.T) {
	root, err := NewCommand("main", "description",
		WithOption(NewOption("--verbose", "description", WithShortName('v'))))
	require.NoError(t, err)

	s := Parse(root, []string{"-vvv", "--verbose"}).(*Success)
	n, err := s.FlagCount("-v")
	assert.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestSuccess_PositionalValue(t *testing.T) {
	s := parsedFixture(t)

	v, err := PositionalValue[string](s, 0)
	assert.NoError(t, err)
	assert.Equal(t, "argfoo", v)

	first, err := PositionalValue[string](s, 1)
	assert.NoError(t, err)
	assert.Equal(t, "argbar", first)

	for _, index := range []int{-1, 2} {
		_, err = PositionalValue[string](s, index)
		assert.True(t, errors.Is(err, errs.ErrPositionalArgumentNotFound))
	}

	_, err = PositionalValue[int](s, 0)
	assert.True(t, errors.Is(err, errs.ErrTypeConversionFailed))
}

func TestSuccess_PositionalValues(t *testing.T) {
	s := parsedFixture(t)

	v, err := PositionalValues[string](s, 1)
	assert.NoError(t, err)
	assert.Equal(t, []string{"argbar", "argbaz"}, v)

	_, err = PositionalValues[string](s, 5)
	assert.True(t, errors.Is(err, errs.ErrPositionalArgumentNotFound))

	_, err = PositionalValues[float64](s, 1)
	assert.True(t, errors.Is(err, errs.ErrTypeConversionFailed))
}

func TestSuccess_TypedValues(t *testing.T) {
	root, err := NewCommand("main", "description",
		WithPositional(NewArgument("count", Int())),
		WithOption(NewOption("--timeout", "description", WithArgument(NewArgument("", Duration())))))
	require.NoError(t, err)

	s := Parse(root, []string{"--timeout=1m", "3"}).(*Success)

	count, err := PositionalValue[int](s, 0)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)

	timeout, err := OptionValue[float64](s, "--timeout")
	assert.Zero(t, timeout)
	assert.ErrorContains(t, err, "time.Duration")
}
