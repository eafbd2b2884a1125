package errs

import (
	"github.com/napalu/clitree/i18n"
)

// Token walk and completeness errors
var (
	ErrUnknownOption             = i18n.NewError(ErrUnknownOptionKey)
	ErrArgumentValueForFlag      = i18n.NewError(ErrArgumentValueForFlagKey)
	ErrUnknownToken              = i18n.NewError(ErrUnknownTokenKey)
	ErrMissingArgumentValue      = i18n.NewError(ErrMissingArgumentValueKey)
	ErrConversionFailed          = i18n.NewError(ErrConversionFailedKey)
	ErrMissingRequiredOption     = i18n.NewError(ErrMissingRequiredOptionKey)
	ErrMissingPositionalArgument = i18n.NewError(ErrMissingPositionalArgumentKey)
)

// Result lookup errors
var (
	ErrOptionNotFound             = i18n.NewError(ErrOptionNotFoundKey)
	ErrParsedOptionNotFound       = i18n.NewError(ErrParsedOptionNotFoundKey)
	ErrPositionalArgumentNotFound = i18n.NewError(ErrPositionalArgumentNotFoundKey)
	ErrTypeConversionFailed       = i18n.NewError(ErrTypeConversionFailedKey)
)

// Descriptor construction errors
var (
	ErrEmptyCommandName  = i18n.NewError(ErrEmptyCommandNameKey)
	ErrDuplicateCommand  = i18n.NewError(ErrDuplicateCommandKey)
	ErrRepeatedNotLast   = i18n.NewError(ErrRepeatedNotLastKey)
	ErrInvalidOptionName = i18n.NewError(ErrInvalidOptionNameKey)
	ErrDuplicateOption   = i18n.NewError(ErrDuplicateOptionKey)
	ErrDuplicateShort    = i18n.NewError(ErrDuplicateShortKey)
	ErrInvalidShortName  = i18n.NewError(ErrInvalidShortNameKey)
	ErrNilConverter      = i18n.NewError(ErrNilConverterKey)
	ErrUnsupportedType   = i18n.NewError(ErrUnsupportedTypeKey)
	ErrEmptyArgumentName = i18n.NewError(ErrEmptyArgumentNameKey)
	ErrNilDescriptor     = i18n.NewError(ErrNilDescriptorKey)
	ErrArgumentNotOwned  = i18n.NewError(ErrArgumentNotOwnedKey)
)

// Dispatch errors
var (
	ErrNilCommand    = i18n.NewError(ErrNilCommandKey)
	ErrNoHandler     = i18n.NewError(ErrNoHandlerKey)
	ErrParsingFailed = i18n.NewError(ErrParsingFailedKey)
	ErrHandlerPanic  = i18n.NewError(ErrHandlerPanicKey)
)

// Schema errors
var (
	ErrUnknownType             = i18n.NewError(ErrUnknownTypeKey)
	ErrInvalidSchema           = i18n.NewError(ErrInvalidSchemaKey)
	ErrUnsupportedSchemaFormat = i18n.NewError(ErrUnsupportedSchemaFormatKey)
)

// Value conversion errors
var (
	ErrParseBool     = i18n.NewError(ErrParseBoolKey)
	ErrParseInt      = i18n.NewError(ErrParseIntKey)
	ErrParseUint     = i18n.NewError(ErrParseUintKey)
	ErrParseFloat    = i18n.NewError(ErrParseFloatKey)
	ErrParseOverflow = i18n.NewError(ErrParseOverflowKey)
	ErrParseDuration = i18n.NewError(ErrParseDurationKey)
	ErrParseTime     = i18n.NewError(ErrParseTimeKey)
	ErrParseUUID     = i18n.NewError(ErrParseUUIDKey)
	ErrParseLine     = i18n.NewError(ErrParseLineKey)
)

// All returns every sentinel error of the package, in declaration order.
func All() []i18n.TranslatableError {
	return []i18n.TranslatableError{
		ErrUnknownOption,
		ErrArgumentValueForFlag,
		ErrUnknownToken,
		ErrMissingArgumentValue,
		ErrConversionFailed,
		ErrMissingRequiredOption,
		ErrMissingPositionalArgument,
		ErrOptionNotFound,
		ErrParsedOptionNotFound,
		ErrPositionalArgumentNotFound,
		ErrTypeConversionFailed,
		ErrEmptyCommandName,
		ErrDuplicateCommand,
		ErrRepeatedNotLast,
		ErrInvalidOptionName,
		ErrDuplicateOption,
		ErrDuplicateShort,
		ErrInvalidShortName,
		ErrNilConverter,
		ErrUnsupportedType,
		ErrEmptyArgumentName,
		ErrNilDescriptor,
		ErrArgumentNotOwned,
		ErrNilCommand,
		ErrNoHandler,
		ErrParsingFailed,
		ErrHandlerPanic,
		ErrUnknownType,
		ErrInvalidSchema,
		ErrUnsupportedSchemaFormat,
		ErrParseBool,
		ErrParseInt,
		ErrParseUint,
		ErrParseFloat,
		ErrParseOverflow,
		ErrParseDuration,
		ErrParseTime,
		ErrParseUUID,
		ErrParseLine,
	}
}
