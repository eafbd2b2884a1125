package parse

import "strings"

const (
	// Separator ends option processing.
	Separator   = "--"
	LongPrefix  = "--"
	ShortPrefix = "-"
)

// IsSeparator reports whether tok is the bare separator.
func IsSeparator(tok string) bool {
	return tok == Separator
}

// IsLong reports whether tok has the form --name or --name=value.
func IsLong(tok string) bool {
	return len(tok) > len(LongPrefix) && strings.HasPrefix(tok, LongPrefix)
}

// IsShortCluster reports whether tok is a single dash followed by at least
// one character that is not a dash.
func IsShortCluster(tok string) bool {
	return len(tok) > len(ShortPrefix) && strings.HasPrefix(tok, ShortPrefix) && !strings.HasPrefix(tok, LongPrefix)
}

// LooksLikeOption reports whether tok would be read as an option or the
// separator while options are enabled. A lone dash is not an option.
func LooksLikeOption(tok string) bool {
	return IsSeparator(tok) || IsLong(tok) || IsShortCluster(tok)
}

// SplitLong splits a long option token at the first '='. The returned name
// keeps its leading dashes.
func SplitLong(tok string) (name, value string, hasValue bool) {
	if i := strings.IndexByte(tok, '='); i >= 0 {
		return tok[:i], tok[i+1:], true
	}

	return tok, "", false
}
