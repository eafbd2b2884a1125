package clitree

import (
	"context"
	"log/slog"

	"github.com/napalu/clitree/internal/parse"
)

// ID identifies a positional argument, an option or an option argument within
// a command tree. IDs are derived from the command path and the declared
// index or name, and are assigned when the owning command is built.
type ID string

// ConfigureArgumentFunc is used when defining positional or option arguments
type ConfigureArgumentFunc func(argument *Argument, err *error)

// ConfigureOptionFunc is used when defining options
type ConfigureOptionFunc func(option *Option, err *error)

// ConfigureCommandFunc is used when defining commands
type ConfigureCommandFunc func(command *Command, err *error)

// ConfigureParserFunc is used when configuring a Parser
type ConfigureParserFunc func(parser *Parser)

// ConfigureAppFunc is used when configuring an App
type ConfigureAppFunc func(app *App)

// HandlerFunc is called by App.Run with the successful parse of the command
// it is attached to.
type HandlerFunc func(ctx context.Context, result *Success) error

// NextFunc invokes the remainder of the middleware chain.
type NextFunc func(ctx context.Context, result Result) error

// MiddlewareFunc wraps the dispatch of a parse result. A middleware may
// inspect or replace the result, short-circuit by not calling next, or
// decorate the context passed on.
type MiddlewareFunc func(ctx context.Context, result Result, next NextFunc) error

// SeparatorPolicy decides what a repeated argument does when it meets the bare
// separator while consuming values. The separator is consumed and disables
// option parsing under every policy.
type SeparatorPolicy int

const (
	// SeparatorStopsRepeated ends the repeated argument at the separator.
	SeparatorStopsRepeated SeparatorPolicy = iota
	// SeparatorContinuesRepeated keeps feeding the repeated argument after the
	// separator.
	SeparatorContinuesRepeated
)

func (p SeparatorPolicy) String() string {
	switch p {
	case SeparatorStopsRepeated:
		return "stops-repeated"
	case SeparatorContinuesRepeated:
		return "continues-repeated"
	default:
		return "unknown"
	}
}

// Argument describes a positional argument or the value of an option.
type Argument struct {
	id          ID
	name        string
	description string
	repeated    bool
	converter   Converter
	// err holds the first configuration error, reported by NewCommand
	err         error
}

// Option describes a named option. An option without an argument is a flag.
type Option struct {
	id          ID
	fullName    string
	shortName   rune
	description string
	required    bool
	argument    *Argument
	err         error
}

// Command describes a command and its subcommands. A Command returned by
// NewCommand is immutable and safe for concurrent parses.
type Command struct {
	name        string
	path        string
	description string
	subcommands []*Command
	positional  []*Argument
	options     []*Option
	handler     HandlerFunc

	byName  map[string]*Command
	byLong  map[string]*Option
	byShort map[rune]*Option
	owners  map[ID]owner
}

// owner is the declaration a recorded value belongs to: a positional argument
// or an option.
type owner struct {
	argument *Argument
	option   *Option
}

// Parser walks the tokens of one invocation and reports what it sees to a
// ResultRecorder.
type Parser struct {
	logger          *slog.Logger
	separatorPolicy SeparatorPolicy

	recorder       ResultRecorder
	tokens         *parse.Tokens
	command        *Command
	optionsEnabled bool
	cursor         int
	aborted        bool
	err            error
}

// App couples a command tree with a middleware chain and dispatches parse
// results to command handlers.
type App struct {
	root          *Command
	logger        *slog.Logger
	parserConfigs []ConfigureParserFunc
	middlewares   []MiddlewareFunc
}
