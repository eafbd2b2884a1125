package clitree

import (
	"context"
	"runtime"

	"github.com/napalu/clitree/ctxlog"
	"github.com/napalu/clitree/errs"
)

// Recovery turns a panic raised further down the chain, including in the
// command handler, into errs.ErrHandlerPanic. The stack is logged at error
// level through the context logger.
func Recovery() MiddlewareFunc {
	return func(ctx context.Context, result Result, next NextFunc) (err error) {
		defer func() {
			if r := recover(); r != nil {
				stack := make([]byte, 4096)
				stack = stack[:runtime.Stack(stack, false)]
				path := ""
				if result != nil && result.Command() != nil {
					path = result.Command().Path()
				}
				ctxlog.FromContext(ctx).Error("handler panicked", "command", path, "panic", r, "stack", string(stack))
				err = errs.ErrHandlerPanic.WithArgs(path, r)
			}
		}()

		return next(ctx, result)
	}
}

// LogResult logs every parse result and the outcome of the rest of the
// chain at debug level, and parsing errors at warn level.
func LogResult() MiddlewareFunc {
	return func(ctx context.Context, result Result, next NextFunc) error {
		logger := ctxlog.FromContext(ctx)
		if f, ok := result.(*Failure); ok {
			for _, e := range f.errors {
				logger.Warn("parsing error", "kind", e.Type.String(), "name", e.TokenName, "value", e.TokenValue)
			}
		}

		err := next(ctx, result)
		logger.Debug("dispatched", "command", result.Command().Path(), "error", err)

		return err
	}
}
