package clitree

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/napalu/clitree/ctxlog"
	"github.com/napalu/clitree/errs"
)

// NewApp creates an App dispatching parses of root.
//
// Usage example:
//
//	app := NewApp(root, WithAppLogger(logger))
//	app.Use(Recovery())
//	if err := app.Run(ctx, os.Args[1:]); err != nil {
//	    // handle error
//	}
func NewApp(root *Command, configs ...ConfigureAppFunc) *App {
	app := &App{
		root:   root,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, config := range configs {
		config(app)
	}

	return app
}

// Use appends middlewares. The first registered middleware is the outermost
// one; the last registered runs right before the command handler.
func (a *App) Use(middlewares ...MiddlewareFunc) *App {
	for _, mw := range middlewares {
		if mw != nil {
			a.middlewares = append(a.middlewares, mw)
		}
	}

	return a
}

// Root returns the command tree of the app.
func (a *App) Root() *Command {
	return a.root
}

// Run parses args with a fresh Parser and ResultBuilder, then passes the
// result through the middleware chain. The final step calls the handler of
// the resolved command for a *Success, and returns errs.ErrParsingFailed
// wrapping every parsing error for a *Failure. The context seen by
// middlewares and handlers carries the app logger and a run ID, see ctxlog.
func (a *App) Run(ctx context.Context, args []string) error {
	if a.root == nil {
		return errs.ErrNilCommand
	}

	runID := uuid.NewString()
	logger := a.logger.With("run_id", runID)
	ctx = ctxlog.WithLogger(ctxlog.WithRunID(ctx, runID), logger)

	configs := make([]ConfigureParserFunc, 0, len(a.parserConfigs)+1)
	configs = append(configs, WithLogger(logger))
	configs = append(configs, a.parserConfigs...)

	result := Parse(a.root, args, configs...)
	logger.Debug("parsed", "command", result.Command().Path(), "ok", result.OK())

	return a.chain()(ctx, result)
}

func (a *App) chain() NextFunc {
	next := NextFunc(dispatch)
	for i := len(a.middlewares) - 1; i >= 0; i-- {
		mw, inner := a.middlewares[i], next
		next = func(ctx context.Context, result Result) error {
			return mw(ctx, result, inner)
		}
	}

	return next
}

func dispatch(ctx context.Context, result Result) error {
	switch r := result.(type) {
	case *Success:
		if r.command.handler == nil {
			return errs.ErrNoHandler.WithArgs(r.command.path)
		}
		return r.command.handler(ctx, r)
	case *Failure:
		return errs.ErrParsingFailed.Wrap(r.Err())
	default:
		return errs.ErrParsingFailed
	}
}
