package clitree

import (
	"github.com/napalu/clitree/errs"
	"github.com/napalu/clitree/i18n"
	"golang.org/x/text/language"
)

// ParsingErrorType is the kind of a ParsingError.
type ParsingErrorType int

const (
	// UnknownOption: a long or short name no option of the command matches.
	UnknownOption ParsingErrorType = iota
	// ArgumentValueForFlag: an inline value was given to a flag.
	ArgumentValueForFlag
	// UnknownToken: a positional token with no declared slot left.
	UnknownToken
	// MissingArgumentValue: an option argument had no token to consume.
	MissingArgumentValue
	// ConversionFailed: a token could not be converted to the declared type.
	ConversionFailed
	// MissingRequiredOption: a required option with an argument never got a value.
	MissingRequiredOption
	// MissingPositionalArgument: a declared positional argument never got a value.
	MissingPositionalArgument
)

var parsingErrorTypeNames = [...]string{
	UnknownOption:             "UnknownOption",
	ArgumentValueForFlag:      "ArgumentValueForFlag",
	UnknownToken:              "UnknownToken",
	MissingArgumentValue:      "MissingArgumentValue",
	ConversionFailed:          "ConversionFailed",
	MissingRequiredOption:     "MissingRequiredOption",
	MissingPositionalArgument: "MissingPositionalArgument",
}

func (t ParsingErrorType) String() string {
	if t < 0 || int(t) >= len(parsingErrorTypeNames) {
		return "Unknown"
	}

	return parsingErrorTypeNames[t]
}

// Fatal reports whether errors of this kind abort the token walk. The other
// kinds are found by the completeness check at the end of a parse.
func (t ParsingErrorType) Fatal() bool {
	return t != MissingRequiredOption && t != MissingPositionalArgument
}

// ParsingError describes one problem found while parsing. TokenName and
// TokenValue are empty when they do not apply to the kind:
//
//	UnknownOption              name "--foo" or "-x", value the whole token
//	ArgumentValueForFlag       name the flag's full name, value the inline value
//	UnknownToken               value the token
//	MissingArgumentValue       name the option's full name, value the option token
//	ConversionFailed           name the argument name, value the raw token
//	MissingRequiredOption      name the option's full name
//	MissingPositionalArgument  name the argument name
type ParsingError struct {
	Type       ParsingErrorType
	TokenName  string
	TokenValue string
}

func NewParsingError(kind ParsingErrorType, name, value string) *ParsingError {
	return &ParsingError{Type: kind, TokenName: name, TokenValue: value}
}

// Error returns the message in the default language.
func (e *ParsingError) Error() string {
	return e.translatable().Error()
}

// Translate returns the message in lang.
func (e *ParsingError) Translate(lang language.Tag) string {
	return e.translatable().Translate(lang)
}

// Unwrap returns the errs sentinel of the kind, so that
// errors.Is(err, errs.ErrUnknownOption) holds for an UnknownOption.
func (e *ParsingError) Unwrap() error {
	return e.translatable()
}

func (e *ParsingError) translatable() i18n.TranslatableError {
	switch e.Type {
	case UnknownOption:
		return errs.ErrUnknownOption.WithArgs(e.TokenName)
	case ArgumentValueForFlag:
		return errs.ErrArgumentValueForFlag.WithArgs(e.TokenName, e.TokenValue)
	case UnknownToken:
		return errs.ErrUnknownToken.WithArgs(e.TokenValue)
	case MissingArgumentValue:
		return errs.ErrMissingArgumentValue.WithArgs(e.TokenName)
	case ConversionFailed:
		return errs.ErrConversionFailed.WithArgs(e.TokenValue, e.TokenName)
	case MissingRequiredOption:
		return errs.ErrMissingRequiredOption.WithArgs(e.TokenName)
	default:
		return errs.ErrMissingPositionalArgument.WithArgs(e.TokenName)
	}
}
