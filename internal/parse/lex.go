package parse

import (
	"github.com/google/shlex"
	"github.com/napalu/clitree/errs"
)

// Split splits a command line into arguments using shell quoting rules.
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, errs.ErrParseLine.WithArgs(s).Wrap(err)
	}

	return args, nil
}
