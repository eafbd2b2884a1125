// Package errs contains the sentinel errors returned by clitree. Every error
// is an i18n.TrError keyed by one of the translation keys below; compare with
// errors.Is and specialise with WithArgs and Wrap.
package errs

const (
	prefixKey = "clitree"
)

const (
	ErrorPrefixKey    = prefixKey + ".error"
	ParseErrorPathKey = ErrorPrefixKey + ".parse"
)

// Token walk and completeness errors
const (
	ErrUnknownOptionKey             = ErrorPrefixKey + ".unknown_option"
	ErrArgumentValueForFlagKey      = ErrorPrefixKey + ".argument_value_for_flag"
	ErrUnknownTokenKey              = ErrorPrefixKey + ".unknown_token"
	ErrMissingArgumentValueKey      = ErrorPrefixKey + ".missing_argument_value"
	ErrConversionFailedKey          = ErrorPrefixKey + ".conversion_failed"
	ErrMissingRequiredOptionKey     = ErrorPrefixKey + ".missing_required_option"
	ErrMissingPositionalArgumentKey = ErrorPrefixKey + ".missing_positional_argument"
)

// Result lookup errors
const (
	ErrOptionNotFoundKey             = ErrorPrefixKey + ".option_not_found"
	ErrParsedOptionNotFoundKey       = ErrorPrefixKey + ".parsed_option_not_found"
	ErrPositionalArgumentNotFoundKey = ErrorPrefixKey + ".positional_argument_not_found"
	ErrTypeConversionFailedKey       = ErrorPrefixKey + ".type_conversion_failed"
)

// Descriptor construction errors
const (
	ErrEmptyCommandNameKey  = ErrorPrefixKey + ".empty_command_name"
	ErrDuplicateCommandKey  = ErrorPrefixKey + ".duplicate_command"
	ErrRepeatedNotLastKey   = ErrorPrefixKey + ".repeated_not_last"
	ErrInvalidOptionNameKey = ErrorPrefixKey + ".invalid_option_name"
	ErrDuplicateOptionKey   = ErrorPrefixKey + ".duplicate_option"
	ErrDuplicateShortKey    = ErrorPrefixKey + ".duplicate_short_name"
	ErrInvalidShortNameKey  = ErrorPrefixKey + ".invalid_short_name"
	ErrNilConverterKey      = ErrorPrefixKey + ".nil_converter"
	ErrUnsupportedTypeKey   = ErrorPrefixKey + ".unsupported_type"
	ErrEmptyArgumentNameKey = ErrorPrefixKey + ".empty_argument_name"
	ErrNilDescriptorKey     = ErrorPrefixKey + ".nil_descriptor"
	ErrArgumentNotOwnedKey  = ErrorPrefixKey + ".argument_not_owned"
)

// Dispatch errors
const (
	ErrNilCommandKey    = ErrorPrefixKey + ".nil_command"
	ErrNoHandlerKey     = ErrorPrefixKey + ".no_handler"
	ErrParsingFailedKey = ErrorPrefixKey + ".parsing_failed"
	ErrHandlerPanicKey  = ErrorPrefixKey + ".handler_panic"
)

// Schema errors
const (
	ErrUnknownTypeKey             = ErrorPrefixKey + ".unknown_type"
	ErrInvalidSchemaKey           = ErrorPrefixKey + ".invalid_schema"
	ErrUnsupportedSchemaFormatKey = ErrorPrefixKey + ".unsupported_schema_format"
)

// Value conversion errors
const (
	ErrParseBoolKey     = ParseErrorPathKey + ".bool"
	ErrParseIntKey      = ParseErrorPathKey + ".int"
	ErrParseUintKey     = ParseErrorPathKey + ".uint"
	ErrParseFloatKey    = ParseErrorPathKey + ".float"
	ErrParseOverflowKey = ParseErrorPathKey + ".overflow"
	ErrParseDurationKey = ParseErrorPathKey + ".duration"
	ErrParseTimeKey     = ParseErrorPathKey + ".time"
	ErrParseUUIDKey     = ParseErrorPathKey + ".uuid"
	ErrParseLineKey     = ParseErrorPathKey + ".line"
)
