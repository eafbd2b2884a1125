package clitree

import "log/slog"

// WithAppLogger sets the logger of the app. Records are tagged with the run
// ID of each Run and the logger is also handed to the parser.
func WithAppLogger(logger *slog.Logger) ConfigureAppFunc {
	return func(app *App) {
		if logger != nil {
			app.logger = logger
		}
	}
}

// WithParserConfig adds parser settings applied on every Run.
func WithParserConfig(configs ...ConfigureParserFunc) ConfigureAppFunc {
	return func(app *App) {
		app.parserConfigs = append(app.parserConfigs, configs...)
	}
}

// WithMiddleware registers middlewares, see App.Use.
func WithMiddleware(middlewares ...MiddlewareFunc) ConfigureAppFunc {
	return func(app *App) {
		app.Use(middlewares...)
	}
}
