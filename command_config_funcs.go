package clitree

import (
	"github.com/napalu/clitree/errs"
)

// NewCommand creates, validates and returns a new Command. Supplied
// subcommands, arguments and options are copied into the command, so a
// descriptor may be shared between several commands; use Subcommand, Option
// and Positional to reach the attached copies.
//
// Usage example:
//
//	root, err := NewCommand("tool", "does things",
//	    WithOption(NewOption("--verbose", "chatty output", WithShortName('v'))),
//	    WithSubcommands(build, deploy))
func NewCommand(name, description string, configs ...ConfigureCommandFunc) (*Command, error) {
	cmd := &Command{
		name:        name,
		description: description,
	}

	var err error
	for _, config := range configs {
		config(cmd, &err)
		if err != nil {
			return nil, err
		}
	}

	if err = cmd.validate(); err != nil {
		return nil, err
	}

	return cmd.build(name), nil
}

// WithSubcommands appends subcommands in the order given.
func WithSubcommands(subcommands ...*Command) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		for _, sub := range subcommands {
			if sub == nil {
				*err = errs.ErrNilDescriptor.WithArgs("subcommand", command.name)
				return
			}
			command.subcommands = append(command.subcommands, sub)
		}
	}
}

// WithPositional appends positional arguments in declaration order.
func WithPositional(arguments ...*Argument) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		for _, arg := range arguments {
			if arg == nil {
				*err = errs.ErrNilDescriptor.WithArgs("argument", command.name)
				return
			}
			command.positional = append(command.positional, arg)
		}
	}
}

// WithOption appends options in declaration order.
func WithOption(options ...*Option) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		for _, opt := range options {
			if opt == nil {
				*err = errs.ErrNilDescriptor.WithArgs("option", command.name)
				return
			}
			command.options = append(command.options, opt)
		}
	}
}

// WithHandler sets the function App.Run calls when the command is the one
// resolved by a successful parse.
func WithHandler(handler HandlerFunc) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.handler = handler
	}
}

// WithCommandDescription replaces the description given to NewCommand
func WithCommandDescription(description string) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.description = description
	}
}
