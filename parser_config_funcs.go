package clitree

import "log/slog"

// WithLogger sets the logger receiving debug records of the token walk. A nil
// logger keeps the default, which discards everything.
func WithLogger(logger *slog.Logger) ConfigureParserFunc {
	return func(parser *Parser) {
		if logger != nil {
			parser.logger = logger
		}
	}
}

// WithSeparatorPolicy decides whether a repeated argument stops at the
// separator (SeparatorStopsRepeated, the default) or keeps consuming the
// tokens after it (SeparatorContinuesRepeated).
func WithSeparatorPolicy(policy SeparatorPolicy) ConfigureParserFunc {
	return func(parser *Parser) {
		parser.separatorPolicy = policy
	}
}
