package parse

import (
	"github.com/ef-ds/deque"
)

// Tokens is a forward-only cursor over the argument vector of one parse.
type Tokens struct {
	queue    *deque.Deque
	consumed int
}

// NewTokens creates a token stream over args. args is not modified.
func NewTokens(args []string) *Tokens {
	q := deque.New()
	for _, arg := range args {
		q.PushBack(arg)
	}

	return &Tokens{queue: q}
}

// Len returns the number of tokens not yet consumed.
func (t *Tokens) Len() int {
	return t.queue.Len()
}

// Pos returns the number of tokens consumed so far.
func (t *Tokens) Pos() int {
	return t.consumed
}

// Peek returns the next token without consuming it.
func (t *Tokens) Peek() (string, bool) {
	v, ok := t.queue.Front()
	if !ok {
		return "", false
	}

	return v.(string), true
}

// Next consumes and returns the next token.
func (t *Tokens) Next() (string, bool) {
	v, ok := t.queue.PopFront()
	if !ok {
		return "", false
	}
	t.consumed++

	return v.(string), true
}
