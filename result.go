package clitree

import (
	"errors"

	orderedmap "github.com/wk8/go-ordered-map"
)

// Result is the outcome of a parse: either *Success or *Failure.
type Result interface {
	// Command returns the deepest command the subcommand walk reached.
	Command() *Command
	// OK reports whether the result is a *Success.
	OK() bool
	isResult()
}

// Success holds every value recorded for the resolved command. Values are
// kept in the order they were seen.
type Success struct {
	command    *Command
	positional *orderedmap.OrderedMap
	options    *orderedmap.OrderedMap
	flags      []*Option
}

// Failure holds the errors of a parse in the order they were found: at most
// one fatal error from the token walk, followed by completeness errors.
type Failure struct {
	command *Command
	errors  []*ParsingError
}

func (s *Success) Command() *Command { return s.command }
func (s *Success) OK() bool { return true }
func (*Success) isResult() {}

func (f *Failure) Command() *Command { return f.command }
func (f *Failure) OK() bool { return false }
func (*Failure) isResult() {}

// Flags returns the flags seen, once per occurrence.
func (s *Success) Flags() []*Option {
	return append([]*Option(nil), s.flags...)
}

// PositionalIDs returns the IDs of the positional arguments that received
// values, in the order their first value was seen.
func (s *Success) PositionalIDs() []ID {
	return keys(s.positional)
}

// OptionIDs returns the IDs of the options that received values, in the order
// their first value was seen.
func (s *Success) OptionIDs() []ID {
	return keys(s.options)
}

// Values returns the values recorded for a positional argument or option ID.
func (s *Success) Values(id ID) ([]any, bool) {
	if v, ok := s.positional.Get(id); ok {
		return append([]any(nil), v.([]any)...), true
	}
	if v, ok := s.options.Get(id); ok {
		return append([]any(nil), v.([]any)...), true
	}

	return nil, false
}

// Errors returns the parsing errors.
func (f *Failure) Errors() []*ParsingError {
	return append([]*ParsingError(nil), f.errors...)
}

// Err joins the parsing errors into one error.
func (f *Failure) Err() error {
	joined := make([]error, len(f.errors))
	for i, e := range f.errors {
		joined[i] = e
	}

	return errors.Join(joined...)
}

// Has reports whether the failure contains an error of kind.
func (f *Failure) Has(kind ParsingErrorType) bool {
	for _, e := range f.errors {
		if e.Type == kind {
			return true
		}
	}

	return false
}

func keys(m *orderedmap.OrderedMap) []ID {
	ids := make([]ID, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		ids = append(ids, pair.Key.(ID))
	}

	return ids
}
