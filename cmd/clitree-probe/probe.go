package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/napalu/clitree"
	"github.com/napalu/clitree/ctxlog"
	"github.com/napalu/clitree/i18n"
	"github.com/napalu/clitree/internal/parse"
	"github.com/napalu/clitree/schema"
	"golang.org/x/text/language"
)

type probe struct {
	stdout io.Writer
	stderr io.Writer
	tty    bool
}

// settings are the common options of every subcommand.
type settings struct {
	schema string
	format string
	lang   language.Tag
	logger *slog.Logger
}

type settingsKey struct{}

func withSettings(ctx context.Context, cfg *settings) context.Context {
	return context.WithValue(ctx, settingsKey{}, cfg)
}

func settingsFrom(ctx context.Context) *settings {
	cfg, _ := ctx.Value(settingsKey{}).(*settings)
	return cfg
}

// oneOf accepts exactly one of values.
func oneOf(values ...string) clitree.Converter {
	return clitree.ConvertWith(func(raw string) (string, error) {
		for _, v := range values {
			if raw == v {
				return raw, nil
			}
		}
		return "", fmt.Errorf("must be one of %s", strings.Join(values, ", "))
	})
}

func commonOptions() []*clitree.Option {
	return []*clitree.Option{
		clitree.NewOption("--schema", "schema file, .json or .hcl",
			clitree.WithShortName('s'),
			clitree.SetRequired(true),
			clitree.WithArgument(clitree.NewArgument("file", clitree.String()))),
		clitree.NewOption("--format", "output format: text or json (default text on a terminal, json otherwise)",
			clitree.WithShortName('f'),
			clitree.WithArgument(clitree.NewArgument("", oneOf("text", "json")))),
		clitree.NewOption("--log-level", "debug, info, warn or error",
			clitree.WithArgument(clitree.NewArgument("", oneOf("debug", "info", "warn", "error")))),
		clitree.NewOption("--log-format", "text or json",
			clitree.WithArgument(clitree.NewArgument("", oneOf("text", "json")))),
		clitree.NewOption("--lang", "language of error messages, e.g. de",
			clitree.WithArgument(clitree.NewArgument("", clitree.ConvertWith(language.Parse)))),
	}
}

func (p *probe) app() (*clitree.App, error) {
	common := clitree.WithOption(commonOptions()...)

	check, err := clitree.NewCommand("check", "load a schema and print its command tree",
		common, clitree.WithHandler(p.check))
	if err != nil {
		return nil, err
	}
	parseCmd, err := clitree.NewCommand("parse", "parse tokens against a schema",
		common,
		clitree.WithPositional(clitree.NewArgument("tokens", clitree.String(), clitree.Repeated())),
		clitree.WithHandler(p.parse))
	if err != nil {
		return nil, err
	}
	split, err := clitree.NewCommand("split", "split a line like a shell, then parse the tokens",
		common,
		clitree.WithPositional(clitree.NewArgument("line", clitree.String())),
		clitree.WithHandler(p.split))
	if err != nil {
		return nil, err
	}

	root, err := clitree.NewCommand("clitree-probe", "inspect clitree schemas",
		clitree.WithSubcommands(check, parseCmd, split))
	if err != nil {
		return nil, err
	}

	return clitree.NewApp(root,
		clitree.WithMiddleware(p.configure, clitree.Recovery(), clitree.LogResult())), nil
}

// configure reads the common options of a successful parse into the context.
// Usage errors end the run with exit code 2.
func (p *probe) configure(ctx context.Context, result clitree.Result, next clitree.NextFunc) error {
	s, ok := result.(*clitree.Success)
	if !ok {
		f := result.(*clitree.Failure)
		return &ExitError{Code: 2, Message: f.Err().Error() + "\n" + usage(f.Command())}
	}
	if s.Command().Handler() == nil {
		return &ExitError{Code: 2, Message: usage(s.Command())}
	}

	cfg, err := p.settings(s)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	logger := cfg.logger.With("run_id", ctxlog.RunID(ctx))
	ctx = withSettings(ctxlog.WithLogger(ctx, logger), cfg)

	return next(ctx, result)
}

func (p *probe) settings(s *clitree.Success) (*settings, error) {
	cfg := &settings{format: "json", lang: language.English}
	if p.tty {
		cfg.format = "text"
	}

	var err error
	if cfg.schema, err = clitree.OptionValue[string](s, "--schema"); err != nil {
		return nil, err
	}
	if format, ok, err := clitree.LookupOptionValue[string](s, "--format"); err != nil {
		return nil, err
	} else if ok {
		cfg.format = format
	}
	if lang, ok, err := clitree.LookupOptionValue[language.Tag](s, "--lang"); err != nil {
		return nil, err
	} else if ok {
		cfg.lang = i18n.Default().Match(lang)
	}

	level, _, err := clitree.LookupOptionValue[string](s, "--log-level")
	if err != nil {
		return nil, err
	}
	logFormat, _, err := clitree.LookupOptionValue[string](s, "--log-format")
	if err != nil {
		return nil, err
	}
	cfg.logger = newLogger(level, logFormat, p.stderr)

	return cfg, nil
}

func (p *probe) check(ctx context.Context, _ *clitree.Success) error {
	cfg := settingsFrom(ctx)
	root, err := p.load(ctx, cfg)
	if err != nil {
		return err
	}

	if cfg.format == "json" {
		return writeJSON(p.stdout, schema.Describe(root))
	}
	writeTree(p.stdout, root, 0)

	return nil
}

func (p *probe) parse(ctx context.Context, s *clitree.Success) error {
	tokens, err := clitree.PositionalValues[string](s, 0)
	if err != nil {
		return err
	}

	return p.report(ctx, tokens)
}

func (p *probe) split(ctx context.Context, s *clitree.Success) error {
	line, err := clitree.PositionalValue[string](s, 0)
	if err != nil {
		return err
	}
	tokens, err := parse.Split(line)
	if err != nil {
		return &ExitError{Code: 2, Message: translate(err, settingsFrom(ctx).lang)}
	}
	ctxlog.FromContext(ctx).Debug("split line", "tokens", len(tokens))

	return p.report(ctx, tokens)
}

// report parses tokens against the loaded schema and prints the result. A
// failed parse ends the run with exit code 1.
func (p *probe) report(ctx context.Context, tokens []string) error {
	cfg := settingsFrom(ctx)
	root, err := p.load(ctx, cfg)
	if err != nil {
		return err
	}

	result := clitree.Parse(root, tokens, clitree.WithLogger(ctxlog.FromContext(ctx)))
	rep := newReport(result, cfg.lang)
	if cfg.format == "json" {
		err = writeJSON(p.stdout, rep)
	} else {
		rep.writeText(p.stdout)
	}
	if err != nil {
		return err
	}
	if !result.OK() {
		return &ExitError{Code: 1}
	}

	return nil
}

func (p *probe) load(ctx context.Context, cfg *settings) (*clitree.Command, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("loading schema", "path", cfg.schema)

	root, err := schema.LoadFile(cfg.schema)
	if err != nil {
		return nil, &ExitError{Code: 2, Message: translate(err, cfg.lang)}
	}
	logger.Info("schema loaded", "path", cfg.schema, "command", root.Name())

	return root, nil
}

// translate renders err in lang when it carries a translation.
func translate(err error, lang language.Tag) string {
	if te, ok := err.(i18n.TranslatableError); ok {
		return te.Translate(lang)
	}

	return err.Error()
}

func usage(cmd *clitree.Command) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "usage: %s", cmd.Path())
	subs := cmd.Subcommands()
	if len(subs) == 0 {
		for _, arg := range cmd.Positional() {
			fmt.Fprintf(&sb, " %s", arg.Name())
		}
		sb.WriteString(" [options]\n")
		for _, opt := range cmd.Options() {
			fmt.Fprintf(&sb, "  %s\n      %s\n", opt, opt.Description())
		}
		return strings.TrimRight(sb.String(), "\n")
	}

	sb.WriteString(" <command> [options]\n")
	for _, sub := range subs {
		fmt.Fprintf(&sb, "  %-8s %s\n", sub.Name(), sub.Description())
	}

	return strings.TrimRight(sb.String(), "\n")
}

func writeTree(w io.Writer, cmd *clitree.Command, depth int) {
	indent := strings.Repeat("  ", depth)
	if cmd.Description() != "" {
		fmt.Fprintf(w, "%s%s - %s\n", indent, cmd.Name(), cmd.Description())
	} else {
		fmt.Fprintf(w, "%s%s\n", indent, cmd.Name())
	}
	for _, arg := range cmd.Positional() {
		fmt.Fprintf(w, "%s  %s\n", indent, arg)
	}
	for _, opt := range cmd.Options() {
		fmt.Fprintf(w, "%s  %s\n", indent, opt)
	}
	for _, sub := range cmd.Subcommands() {
		writeTree(w, sub, depth+1)
	}
}
