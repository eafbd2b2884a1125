package clitree

import (
	"log/slog"
	"unicode/utf8"

	"github.com/napalu/clitree/internal/parse"
)

// Parse parses args against root with a fresh Parser and ResultBuilder and
// returns the built result. args must not include the program name.
func Parse(root *Command, args []string, configs ...ConfigureParserFunc) Result {
	builder := NewResultBuilder()
	if err := NewParser(configs...).Parse(root, args, builder); err != nil {
		// values only come from the owners of the current command
		panic(err)
	}

	return builder.Build()
}

// NewParser creates a parser. By default it logs nothing and a repeated
// argument stops at the separator.
func NewParser(configs ...ConfigureParserFunc) *Parser {
	p := &Parser{
		logger:          slog.New(slog.DiscardHandler),
		separatorPolicy: SeparatorStopsRepeated,
	}
	for _, config := range configs {
		config(p)
	}

	return p
}

// Parse walks args against root and reports every observation to recorder.
// The walk stops at the first fatal error, which is the only error it
// records. If recorder rejects a value, the walk stops without recording
// anything more and the rejection is returned. A Parser holds the state of
// one walk and must not be used by several goroutines at once.
func (p *Parser) Parse(root *Command, args []string, recorder ResultRecorder) error {
	p.recorder = recorder
	p.tokens = parse.NewTokens(args)
	p.command = root
	p.optionsEnabled = true
	p.cursor = 0
	p.aborted = false
	p.err = nil

	recorder.SetCurrentCommand(root)
	p.resolveSubcommands()

	for !p.aborted {
		tok, ok := p.tokens.Next()
		if !ok {
			break
		}
		p.parseToken(tok)
	}

	p.logger.Debug("parse finished",
		"command", p.command.path,
		"consumed", p.tokens.Pos(),
		"aborted", p.aborted)

	return p.err
}

func (p *Parser) resolveSubcommands() {
	for {
		tok, ok := p.tokens.Peek()
		if !ok {
			return
		}
		sub := p.command.Subcommand(tok)
		if sub == nil {
			return
		}
		p.tokens.Next()
		p.command = sub
		p.recorder.SetCurrentCommand(sub)
		p.logger.Debug("subcommand", "command", sub.path)
	}
}

func (p *Parser) parseToken(tok string) {
	switch {
	case !p.optionsEnabled:
		p.parsePositional(tok)
	case parse.IsSeparator(tok):
		p.disableOptions()
	case parse.IsLong(tok):
		p.parseLong(tok)
	case parse.IsShortCluster(tok):
		p.parseShortCluster(tok)
	default:
		p.parsePositional(tok)
	}
}

func (p *Parser) parseLong(tok string) {
	name, value, hasValue := parse.SplitLong(tok)
	opt := p.command.byLong[name]
	if opt == nil {
		p.abort(UnknownOption, name, tok)
		return
	}

	if opt.argument == nil {
		if hasValue {
			p.abort(ArgumentValueForFlag, opt.fullName, value)
			return
		}
		p.recordFlag(opt)
		return
	}

	if hasValue {
		// an inline value is exactly one value, even for a repeated argument
		p.addValue(opt.argument, value)
		return
	}

	p.parseOptionArgument(opt, tok)
}

func (p *Parser) parseShortCluster(tok string) {
	rest := tok[len(parse.ShortPrefix):]
	for i := 0; i < len(rest) && !p.aborted; {
		r, size := utf8.DecodeRuneInString(rest[i:])
		var opt *Option
		if r != utf8.RuneError || size != 1 {
			opt = p.command.byShort[r]
		}
		if opt == nil {
			p.abort(UnknownOption, parse.ShortPrefix+rest[i:i+size], tok)
			return
		}
		i += size
		if opt.argument == nil {
			p.recordFlag(opt)
			continue
		}

		// a valued option ends the cluster; the tail is kept byte for byte
		if tail := rest[i:]; tail != "" {
			p.addValue(opt.argument, tail)
			return
		}
		p.parseOptionArgument(opt, tok)
		return
	}
}

// parseOptionArgument takes the first value of opt from the next token,
// whatever it looks like, then continues for a repeated argument.
func (p *Parser) parseOptionArgument(opt *Option, tok string) {
	value, ok := p.tokens.Next()
	if !ok {
		p.abort(MissingArgumentValue, opt.fullName, tok)
		return
	}
	if !p.addValue(opt.argument, value) {
		return
	}
	if opt.argument.repeated {
		p.consumeRepeated(opt.argument)
	}
}

func (p *Parser) parsePositional(tok string) {
	if p.cursor >= len(p.command.positional) {
		p.abort(UnknownToken, "", tok)
		return
	}

	arg := p.command.positional[p.cursor]
	if !p.addValue(arg, tok) {
		return
	}
	if arg.repeated {
		p.consumeRepeated(arg)
	}
	p.cursor++
}

// consumeRepeated feeds following tokens to arg until input ends, an
// option-looking token appears while options are enabled, or the separator
// is met.
func (p *Parser) consumeRepeated(arg *Argument) {
	for !p.aborted {
		tok, ok := p.tokens.Peek()
		if !ok {
			return
		}
		if p.optionsEnabled && parse.IsSeparator(tok) {
			p.tokens.Next()
			p.disableOptions()
			if p.separatorPolicy == SeparatorStopsRepeated {
				return
			}
			continue
		}
		if p.optionsEnabled && parse.LooksLikeOption(tok) {
			return
		}
		p.tokens.Next()
		p.addValue(arg, tok)
	}
}

func (p *Parser) addValue(arg *Argument, raw string) bool {
	value, err := arg.converter.Convert(raw)
	if err != nil {
		p.logger.Debug("conversion failed", "argument", arg.name, "value", raw, "error", err)
		p.abort(ConversionFailed, arg.name, raw)
		return false
	}
	if err := p.recorder.AddValue(arg.id, value); err != nil {
		p.logger.Debug("value rejected", "argument", arg.name, "id", arg.id, "error", err)
		p.err = err
		p.aborted = true
		return false
	}
	p.logger.Debug("value", "argument", arg.name, "id", arg.id)

	return true
}

func (p *Parser) recordFlag(opt *Option) {
	p.recorder.AddFlag(opt)
	p.logger.Debug("flag", "option", opt.fullName)
}

func (p *Parser) disableOptions() {
	p.optionsEnabled = false
	p.logger.Debug("separator, options disabled")
}

func (p *Parser) abort(kind ParsingErrorType, name, value string) {
	p.recorder.AddError(NewParsingError(kind, name, value))
	p.aborted = true
	p.logger.Debug("parse aborted", "kind", kind.String(), "name", name, "value", value)
}
