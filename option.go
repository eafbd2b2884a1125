package clitree

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/napalu/clitree/internal/parse"
)

// NewOption creates an option named fullName, which must start with "--".
// Without WithArgument the option is a flag.
//
// Usage example:
//
//	output := NewOption("--output", "where to write results",
//	    WithShortName('o'),
//	    SetRequired(true),
//	    WithArgument(NewArgument("", String())))
func NewOption(fullName, description string, configs ...ConfigureOptionFunc) *Option {
	option := &Option{
		fullName:    fullName,
		description: description,
	}
	if err := option.Set(configs...); err != nil {
		option.err = err
	}

	return option
}

// Set configures the Option instance with the provided ConfigureOptionFunc(s),
// and returns an error if a configuration results in an error.
func (o *Option) Set(configs ...ConfigureOptionFunc) error {
	var err error
	for _, config := range configs {
		config(o, &err)
		if err != nil {
			return err
		}
	}

	return nil
}

// ID returns the identity assigned when the owning command was built.
func (o *Option) ID() ID {
	return o.id
}

func (o *Option) FullName() string {
	return o.fullName
}

// ShortName returns the short name and whether one is set.
func (o *Option) ShortName() (rune, bool) {
	return o.shortName, o.shortName != 0
}

func (o *Option) Description() string {
	return o.description
}

// Required reports whether an option with an argument must be supplied.
// Required has no effect on flags.
func (o *Option) Required() bool {
	return o.required
}

// Argument returns the argument of the option, or nil for a flag.
func (o *Option) Argument() *Argument {
	return o.argument
}

// IsFlag reports whether the option takes no value.
func (o *Option) IsFlag() bool {
	return o.argument == nil
}

// Matches reports whether name is the full name of the option or, for a
// single-dash name, its short name.
func (o *Option) Matches(name string) bool {
	if name == o.fullName {
		return true
	}
	if o.shortName == 0 || !strings.HasPrefix(name, parse.ShortPrefix) || strings.HasPrefix(name, parse.LongPrefix) {
		return false
	}

	return name[len(parse.ShortPrefix):] == string(o.shortName)
}

func (o *Option) String() string {
	var sb strings.Builder
	sb.WriteString(o.fullName)
	if o.shortName != 0 {
		fmt.Fprintf(&sb, ", -%c", o.shortName)
	}
	if o.argument != nil {
		fmt.Fprintf(&sb, " %s", o.argument)
	}
	if o.required {
		sb.WriteString(" (required)")
	}

	return sb.String()
}

// argumentLabel derives the label of an unnamed option argument from the
// option name, e.g. "--output-dir" yields "<output-dir>".
func argumentLabel(fullName string) string {
	return "<" + strcase.ToKebab(strings.TrimLeft(fullName, "-")) + ">"
}

func (o *Option) clone(id ID) *Option {
	c := *o
	c.id = id
	if o.argument != nil {
		c.argument = o.argument.clone(id + "=")
		if c.argument.name == "" {
			c.argument.name = argumentLabel(o.fullName)
		}
	}

	return &c
}
