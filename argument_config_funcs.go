package clitree

// Repeated marks the argument as variable-arity: it consumes tokens greedily
// until input ends, an option-looking token appears while options are
// enabled, or the separator is met. Only the last positional argument of a
// command may be repeated.
func Repeated() ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.repeated = true
	}
}

// SetRepeated sets the repeated state of the argument explicitly.
func SetRepeated(repeated bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.repeated = repeated
	}
}

// WithArgumentDescription the description is kept with the descriptor for
// tooling and schema output
func WithArgumentDescription(description string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.description = description
	}
}
