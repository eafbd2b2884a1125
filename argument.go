package clitree

import (
	"fmt"
)

// NewArgument creates an argument named name whose tokens are converted by
// converter. The name is the label used in errors and the key used by
// schema files.
//
// Usage example:
//
//	files := NewArgument("files", String(),
//	    Repeated(),
//	    WithArgumentDescription("files to process"))
func NewArgument(name string, converter Converter, configs ...ConfigureArgumentFunc) *Argument {
	argument := &Argument{
		name:      name,
		converter: converter,
	}
	if err := argument.Set(configs...); err != nil {
		argument.err = err
	}

	return argument
}

// Set configures the Argument instance with the provided ConfigureArgumentFunc(s),
// and returns an error if a configuration results in an error.
func (a *Argument) Set(configs ...ConfigureArgumentFunc) error {
	var err error
	for _, config := range configs {
		config(a, &err)
		if err != nil {
			return err
		}
	}

	return nil
}

// ID returns the identity assigned when the owning command was built. It is
// empty for an argument that is not part of a command.
func (a *Argument) ID() ID {
	return a.id
}

func (a *Argument) Name() string {
	return a.name
}

func (a *Argument) Description() string {
	return a.description
}

// Repeated reports whether the argument greedily consumes more than one token.
func (a *Argument) Repeated() bool {
	return a.repeated
}

func (a *Argument) Converter() Converter {
	return a.converter
}

// String returns a string representation of the Argument instance
func (a *Argument) String() string {
	if a.repeated {
		return fmt.Sprintf("%s... (%s)", a.name, a.converter.TypeName())
	}

	return fmt.Sprintf("%s (%s)", a.name, a.converter.TypeName())
}

func (a *Argument) clone(id ID) *Argument {
	c := *a
	c.id = id

	return &c
}
