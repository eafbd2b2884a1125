package clitree

import (
	"fmt"
	"strings"

	"github.com/napalu/clitree/errs"
	"github.com/napalu/clitree/internal/parse"
)

func (c *Command) Name() string {
	return c.name
}

// Path returns the space separated names from the root to this command.
func (c *Command) Path() string {
	return c.path
}

func (c *Command) Description() string {
	return c.description
}

func (c *Command) Handler() HandlerFunc {
	return c.handler
}

// Subcommands returns the subcommands in declaration order.
func (c *Command) Subcommands() []*Command {
	return append([]*Command(nil), c.subcommands...)
}

// Subcommand returns the direct subcommand called name, or nil.
func (c *Command) Subcommand(name string) *Command {
	return c.byName[name]
}

// Positional returns the positional arguments in declaration order.
func (c *Command) Positional() []*Argument {
	return append([]*Argument(nil), c.positional...)
}

// Options returns the options in declaration order.
func (c *Command) Options() []*Option {
	return append([]*Option(nil), c.options...)
}

// Option returns the option matching name, given either as the full name
// ("--output") or as the short name ("-o"), or nil.
func (c *Command) Option(name string) *Option {
	if opt, ok := c.byLong[name]; ok {
		return opt
	}
	if r, ok := shortRune(name); ok {
		return c.byShort[r]
	}

	return nil
}

// Lookup resolves a space separated path of subcommand names below c.
func (c *Command) Lookup(path string) *Command {
	cur := c
	for _, name := range strings.Fields(path) {
		if cur = cur.Subcommand(name); cur == nil {
			return nil
		}
	}

	return cur
}

func (c *Command) String() string {
	return c.path
}

func shortRune(name string) (rune, bool) {
	if !parse.IsShortCluster(name) {
		return 0, false
	}
	runes := []rune(name[len(parse.ShortPrefix):])
	if len(runes) != 1 {
		return 0, false
	}

	return runes[0], true
}

func (c *Command) validate() error {
	if strings.TrimSpace(c.name) == "" {
		return errs.ErrEmptyCommandName
	}

	seen := make(map[string]bool, len(c.subcommands))
	for _, sub := range c.subcommands {
		if seen[sub.name] {
			return errs.ErrDuplicateCommand.WithArgs(sub.name, c.name)
		}
		seen[sub.name] = true
	}

	for i, arg := range c.positional {
		if arg.name == "" {
			return errs.ErrEmptyArgumentName.WithArgs(c.name)
		}
		if err := validateArgument(arg); err != nil {
			return err
		}
		if arg.repeated && i != len(c.positional)-1 {
			return errs.ErrRepeatedNotLast.WithArgs(arg.name, c.name)
		}
	}

	long := make(map[string]bool, len(c.options))
	short := make(map[rune]*Option, len(c.options))
	for _, opt := range c.options {
		if opt.err != nil {
			return opt.err
		}
		if !validFullName(opt.fullName) {
			return errs.ErrInvalidOptionName.WithArgs(opt.fullName, parse.LongPrefix)
		}
		if long[opt.fullName] {
			return errs.ErrDuplicateOption.WithArgs(opt.fullName, c.name)
		}
		long[opt.fullName] = true
		if opt.shortName != 0 {
			if prev, ok := short[opt.shortName]; ok {
				return errs.ErrDuplicateShort.WithArgs(string(opt.shortName), prev.fullName, opt.fullName)
			}
			short[opt.shortName] = opt
		}
		if opt.argument != nil {
			if err := validateArgument(opt.argument); err != nil {
				return err
			}
		}
	}

	return nil
}

func validateArgument(arg *Argument) error {
	if arg.err != nil {
		return arg.err
	}
	if arg.converter.isZero() {
		return errs.ErrNilConverter.WithArgs(arg.name)
	}
	if arg.converter.unsupported {
		return errs.ErrUnsupportedType.WithArgs(arg.converter.typeName)
	}

	return nil
}

func validFullName(name string) bool {
	if !parse.IsLong(name) {
		return false
	}
	rest := name[len(parse.LongPrefix):]

	return !strings.HasPrefix(rest, "-") && !strings.ContainsAny(rest, "= \t\n")
}

// build returns a copy of c rooted at path, with identities assigned to
// every argument and option and lookup indexes filled in. It does not
// validate.
func (c *Command) build(path string) *Command {
	b := &Command{
		name:        c.name,
		path:        path,
		description: c.description,
		handler:     c.handler,
		subcommands: make([]*Command, 0, len(c.subcommands)),
		positional:  make([]*Argument, 0, len(c.positional)),
		options:     make([]*Option, 0, len(c.options)),
		byName:      make(map[string]*Command, len(c.subcommands)),
		byLong:      make(map[string]*Option, len(c.options)),
		byShort:     make(map[rune]*Option, len(c.options)),
		owners:      make(map[ID]owner, len(c.positional)+len(c.options)),
	}

	for i, arg := range c.positional {
		clone := arg.clone(ID(fmt.Sprintf("%s#%d", path, i)))
		b.positional = append(b.positional, clone)
		b.owners[clone.id] = owner{argument: clone}
	}

	for _, opt := range c.options {
		clone := opt.clone(ID(path + "#" + opt.fullName))
		b.options = append(b.options, clone)
		b.byLong[clone.fullName] = clone
		if clone.shortName != 0 {
			b.byShort[clone.shortName] = clone
		}
		if clone.argument != nil {
			b.owners[clone.argument.id] = owner{option: clone}
		}
	}

	for _, sub := range c.subcommands {
		clone := sub.build(path + " " + sub.name)
		b.subcommands = append(b.subcommands, clone)
		b.byName[clone.name] = clone
	}

	return b
}
