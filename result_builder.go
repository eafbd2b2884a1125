package clitree

import (
	"github.com/napalu/clitree/errs"
	orderedmap "github.com/wk8/go-ordered-map"
)

// ResultRecorder receives the observations of a Parser. ResultBuilder is the
// implementation used by Parse and App; tests may substitute a recording fake.
type ResultRecorder interface {
	// SetCurrentCommand is called for the root and for every subcommand
	// descended into.
	SetCurrentCommand(cmd *Command)
	// AddFlag records one occurrence of a flag.
	AddFlag(option *Option)
	// AddValue records a converted value for the argument identified by id,
	// which belongs either to a positional argument or to an option of the
	// current command. A non-nil error stops the walk and is returned by
	// Parser.Parse.
	AddValue(id ID, value any) error
	// AddError records a parsing error.
	AddError(err *ParsingError)
}

// ResultBuilder accumulates the observations of one parse and validates them
// when the walk is over. A ResultBuilder must not be reused across parses.
type ResultBuilder struct {
	command    *Command
	positional *orderedmap.OrderedMap
	options    *orderedmap.OrderedMap
	flags      []*Option
	errors     []*ParsingError
}

func NewResultBuilder() *ResultBuilder {
	return &ResultBuilder{
		positional: orderedmap.New(),
		options:    orderedmap.New(),
	}
}

func (b *ResultBuilder) SetCurrentCommand(cmd *Command) {
	b.command = cmd
}

func (b *ResultBuilder) AddFlag(option *Option) {
	b.flags = append(b.flags, option)
}

// AddValue appends value to the values of the owner of id. An owner that is
// not repeated keeps only the last value. An id that the current command does
// not own is rejected with errs.ErrArgumentNotOwned.
func (b *ResultBuilder) AddValue(id ID, value any) error {
	if b.command == nil {
		return errs.ErrArgumentNotOwned.WithArgs(string(id), "")
	}

	own, ok := b.command.owners[id]
	switch {
	case !ok:
		return errs.ErrArgumentNotOwned.WithArgs(string(id), b.command.path)
	case own.option != nil:
		record(b.options, own.option.id, value, own.option.argument.repeated)
	default:
		record(b.positional, own.argument.id, value, own.argument.repeated)
	}

	return nil
}

func (b *ResultBuilder) AddError(err *ParsingError) {
	b.errors = append(b.errors, err)
}

// Build checks that every positional argument and every required option
// argument of the current command received a value, then returns *Success
// when no error was recorded and *Failure otherwise. Build panics when no
// command was set.
func (b *ResultBuilder) Build() Result {
	if b.command == nil {
		panic("clitree: ResultBuilder.Build called before SetCurrentCommand")
	}

	for _, arg := range b.command.positional {
		if _, ok := b.positional.Get(arg.id); !ok {
			b.AddError(NewParsingError(MissingPositionalArgument, arg.name, ""))
		}
	}
	for _, opt := range b.command.options {
		if !opt.required || opt.argument == nil {
			continue
		}
		if _, ok := b.options.Get(opt.id); !ok {
			b.AddError(NewParsingError(MissingRequiredOption, opt.fullName, ""))
		}
	}

	if len(b.errors) > 0 {
		return &Failure{
			command: b.command,
			errors:  append([]*ParsingError(nil), b.errors...),
		}
	}

	return &Success{
		command:    b.command,
		positional: b.positional,
		options:    b.options,
		flags:      append([]*Option(nil), b.flags...),
	}
}

func record(m *orderedmap.OrderedMap, id ID, value any, repeated bool) {
	existing, ok := m.Get(id)
	if !ok || !repeated {
		m.Set(id, []any{value})
		return
	}
	m.Set(id, append(existing.([]any), value))
}
