// Package schema builds clitree command trees from declarative documents.
//
// A schema describes one root command with its positional arguments, options
// and nested subcommands. JSON and HCL documents decode to the same Command
// model, which is then built with clitree.NewCommand, so a loaded tree obeys
// the same construction rules as one declared in code. Argument types are
// the names understood by clitree.ConverterByName; an empty type is "string".
package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/napalu/clitree"
	"github.com/napalu/clitree/errs"
)

// Command is the declarative form of a clitree.Command.
type Command struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Positional  []Argument `json:"positional,omitempty"`
	Options     []Option   `json:"options,omitempty"`
	Commands    []Command  `json:"commands,omitempty"`
}

// Argument is the declarative form of a positional or option argument.
type Argument struct {
	Name        string `json:"name,omitempty"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Repeated    bool   `json:"repeated,omitempty"`
}

// Option is the declarative form of a clitree.Option. An option without
// Value is a flag.
type Option struct {
	Name        string    `json:"name"`
	Short       string    `json:"short,omitempty"`
	Description string    `json:"description,omitempty"`
	Required    bool      `json:"required,omitempty"`
	Value       *Argument `json:"value,omitempty"`
}

// LoadFile reads the schema at path. The format is chosen by extension:
// .json or .hcl.
func LoadFile(path string) (*clitree.Command, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".json" && ext != ".hcl" {
		return nil, errs.ErrUnsupportedSchemaFormat.WithArgs(ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema %s: %w", path, err)
	}

	if ext == ".json" {
		return LoadJSON(data)
	}

	return LoadHCL(path, data)
}

// Build creates the command tree described by c.
func Build(c Command) (*clitree.Command, error) {
	var configs []clitree.ConfigureCommandFunc

	for _, a := range c.Positional {
		arg, err := buildArgument(a)
		if err != nil {
			return nil, err
		}
		configs = append(configs, clitree.WithPositional(arg))
	}

	for _, o := range c.Options {
		opt, err := buildOption(o)
		if err != nil {
			return nil, err
		}
		configs = append(configs, clitree.WithOption(opt))
	}

	for _, sc := range c.Commands {
		sub, err := Build(sc)
		if err != nil {
			return nil, err
		}
		configs = append(configs, clitree.WithSubcommands(sub))
	}

	return clitree.NewCommand(c.Name, c.Description, configs...)
}

// Describe returns the declarative form of cmd. Building the returned model
// yields a tree equivalent to cmd, handlers aside.
func Describe(cmd *clitree.Command) Command {
	c := Command{
		Name:        cmd.Name(),
		Description: cmd.Description(),
	}
	for _, arg := range cmd.Positional() {
		c.Positional = append(c.Positional, describeArgument(arg))
	}
	for _, opt := range cmd.Options() {
		o := Option{
			Name:        opt.FullName(),
			Description: opt.Description(),
			Required:    opt.Required(),
		}
		if short, ok := opt.ShortName(); ok {
			o.Short = string(short)
		}
		if arg := opt.Argument(); arg != nil {
			value := describeArgument(arg)
			o.Value = &value
		}
		c.Options = append(c.Options, o)
	}
	for _, sub := range cmd.Subcommands() {
		c.Commands = append(c.Commands, Describe(sub))
	}

	return c
}

func buildArgument(a Argument) (*clitree.Argument, error) {
	typ := a.Type
	if typ == "" {
		typ = "string"
	}
	converter, ok := clitree.ConverterByName(typ)
	if !ok {
		return nil, errs.ErrUnknownType.WithArgs(typ)
	}

	return clitree.NewArgument(a.Name, converter,
		clitree.SetRepeated(a.Repeated),
		clitree.WithArgumentDescription(a.Description)), nil
}

func buildOption(o Option) (*clitree.Option, error) {
	configs := []clitree.ConfigureOptionFunc{clitree.SetRequired(o.Required)}

	if o.Short != "" {
		if utf8.RuneCountInString(o.Short) != 1 {
			return nil, invalid(o.Name, "short name must be a single character")
		}
		r, _ := utf8.DecodeRuneInString(o.Short)
		configs = append(configs, clitree.WithShortName(r))
	}

	if o.Value != nil {
		arg, err := buildArgument(*o.Value)
		if err != nil {
			return nil, err
		}
		configs = append(configs, clitree.WithArgument(arg))
	}

	return clitree.NewOption(o.Name, o.Description, configs...), nil
}

func describeArgument(arg *clitree.Argument) Argument {
	return Argument{
		Name:        arg.Name(),
		Type:        typeName(arg.Converter()),
		Description: arg.Description(),
		Repeated:    arg.Repeated(),
	}
}

// typeName maps a converter back to its schema name, or to its Go type name
// for converters not reachable by name.
func typeName(c clitree.Converter) string {
	for _, name := range clitree.ConverterNames() {
		if known, _ := clitree.ConverterByName(name); known.TypeName() == c.TypeName() {
			return name
		}
	}

	return c.TypeName()
}

func invalid(where, reason string) error {
	return errs.ErrInvalidSchema.WithArgs(where + ": " + reason)
}
