package clitree

import (
	"strings"
	"testing"

	"github.com/napalu/clitree/internal/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func FuzzParse(f *testing.F) {
	// Seed corpus with edge cases
	f.Add("-a2こんにちは")
	f.Add("--long")            // missing value
	f.Add("-vxffile")          // cluster with glued value
	f.Add("-- value")          // separator
	f.Add("   --spaces ok   ") // leading/trailing spaces
	f.Add("-漢=こんにちは こんにち")   // unicode
	f.Add("0")
	f.Add("-")
	f.Add("-a \\'-xtra\\'")
	f.Add("-a -xtra 000000")
	f.Add("-a -xtra -123.45")
	f.Add("first --files a b -- --c")

	root, err := NewCommand("main", "description",
		WithPositional(str("first"), str("rest", Repeated())),
		WithOption(
			NewOption("--a", "description", WithShortName('a'), WithArgument(str(""))),
			NewOption("--xtra", "description", WithShortName('x')),
			NewOption("--verbose", "description", WithShortName('v')),
			NewOption("--file", "description", WithShortName('f'), WithArgument(str(""))),
			NewOption("--files", "description", WithArgument(str("", Repeated()))),
			NewOption("--long", "description", WithArgument(NewArgument("", Int()))),
			NewOption("--spaces", "description", WithShortName('漢')),
		))
	require.NoError(f, err)

	f.Fuzz(func(t *testing.T, rawArgs string) {
		args, err := parse.Split(rawArgs)
		if err != nil || len(args) == 0 {
			return
		}

		first := Parse(root, args)
		second := Parse(root, args)
		// parsing is a pure function of the tree and the tokens
		assert.Equal(t, first, second)

		switch r := first.(type) {
		case *Success:
			for _, opt := range r.Flags() {
				assert.True(t, opt.IsFlag())
			}
			for _, id := range append(r.PositionalIDs(), r.OptionIDs()...) {
				values, ok := r.Values(id)
				assert.True(t, ok)
				assert.NotEmpty(t, values)
			}
		case *Failure:
			fatal := 0
			for _, e := range r.Errors() {
				if e.Type.Fatal() {
					fatal++
				}
				assert.NotContains(t, e.Error(), "%!")
			}
			assert.LessOrEqual(t, fatal, 1)
			assert.NotEmpty(t, strings.TrimSpace(r.Err().Error()))
		default:
			t.Fatalf("unexpected result %T", first)
		}
	})
}
