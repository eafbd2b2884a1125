package clitree

import (
	"unicode"

	"github.com/napalu/clitree/errs"
)

// WithShortName sets the single-rune short form of the option, used as -x
// and inside clusters such as -xyz. The dash, the equals sign and whitespace
// are rejected.
func WithShortName(short rune) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		if !validShortName(short) {
			*err = errs.ErrInvalidShortName.WithArgs(string(short), option.fullName)
			return
		}
		option.shortName = short
	}
}

func validShortName(short rune) bool {
	return short != 0 && short != '-' && short != '=' && !unicode.IsSpace(short) && unicode.IsPrint(short)
}

// SetRequired when true, an option with an argument must be supplied on the
// command line
func SetRequired(required bool) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.required = required
	}
}

// WithArgument attaches the value argument of the option. An argument with an
// empty name is labelled after the option.
func WithArgument(argument *Argument) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.argument = argument
	}
}

// WithOptionDescription replaces the description given to NewOption
func WithOptionDescription(description string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.description = description
	}
}
