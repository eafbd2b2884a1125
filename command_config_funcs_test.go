package clitree

import (
	"errors"
	"testing"

	"github.com/napalu/clitree/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommand_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cmdName string
		configs []ConfigureCommandFunc
		want    error
	}{
		{
			name:    "empty name",
			cmdName: " ",
			want:    errs.ErrEmptyCommandName,
		},
		{
			name:    "duplicate subcommand",
			cmdName: "main",
			configs: []ConfigureCommandFunc{WithSubcommands(&Command{name: "sub"}, &Command{name: "sub"})},
			want:    errs.ErrDuplicateCommand,
		},
		{
			name:    "repeated not last",
			cmdName: "main",
			configs: []ConfigureCommandFunc{WithPositional(str("a", Repeated()), str("b"))},
			want:    errs.ErrRepeatedNotLast,
		},
		{
			name:    "empty argument name",
			cmdName: "main",
			configs: []ConfigureCommandFunc{WithPositional(str(""))},
			want:    errs.ErrEmptyArgumentName,
		},
		{
			name:    "nil converter",
			cmdName: "main",
			configs: []ConfigureCommandFunc{WithPositional(NewArgument("a", Converter{}))},
			want:    errs.ErrNilConverter,
		},
		{
			name:    "unsupported type",
			cmdName: "main",
			configs: []ConfigureCommandFunc{WithPositional(NewArgument("a", Default[[]string]()))},
			want:    errs.ErrUnsupportedType,
		},
		{
			name:    "option without double dash",
			cmdName: "main",
			configs: []ConfigureCommandFunc{WithOption(NewOption("-o", "description"))},
			want:    errs.ErrInvalidOptionName,
		},
		{
			name:    "option with equals sign",
			cmdName: "main",
			configs: []ConfigureCommandFunc{WithOption(NewOption("--a=b", "description"))},
			want:    errs.ErrInvalidOptionName,
		},
		{
			name:    "bare double dash",
			cmdName: "main",
			configs: []ConfigureCommandFunc{WithOption(NewOption("--", "description"))},
			want:    errs.ErrInvalidOptionName,
		},
		{
			name:    "duplicate option",
			cmdName: "main",
			configs: []ConfigureCommandFunc{WithOption(NewOption("--opt", "a"), NewOption("--opt", "b"))},
			want:    errs.ErrDuplicateOption,
		},
		{
			name:    "duplicate short name",
			cmdName: "main",
			configs: []ConfigureCommandFunc{WithOption(
				NewOption("--one", "a", WithShortName('x')),
				NewOption("--two", "b", WithShortName('x')))},
			want: errs.ErrDuplicateShort,
		},
		{
			name:    "invalid short name",
			cmdName: "main",
			configs: []ConfigureCommandFunc{WithOption(NewOption("--opt", "a", WithShortName('-')))},
			want:    errs.ErrInvalidShortName,
		},
		{
			name:    "option argument without converter",
			cmdName: "main",
			configs: []ConfigureCommandFunc{WithOption(NewOption("--opt", "a", WithArgument(NewArgument("v", Converter{}))))},
			want:    errs.ErrNilConverter,
		},
		{
			name:    "nil option",
			cmdName: "main",
			configs: []ConfigureCommandFunc{WithOption(nil)},
			want:    errs.ErrNilDescriptor,
		},
		{
			name:    "nil subcommand",
			cmdName: "main",
			configs: []ConfigureCommandFunc{WithSubcommands(nil)},
			want:    errs.ErrNilDescriptor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := NewCommand(tt.cmdName, "description", tt.configs...)
			assert.Nil(t, cmd)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestNewCommand_ArgumentConfigError(t *testing.T) {
	failing := func(argument *Argument, err *error) {
		*err = errs.ErrEmptyArgumentName.WithArgs("custom")
	}

	arg := NewArgument("a", String(), failing)
	err := arg.Set(failing)
	assert.True(t, errors.Is(err, errs.ErrEmptyArgumentName))

	_, err = NewCommand("main", "description", WithPositional(arg))
	assert.True(t, errors.Is(err, errs.ErrEmptyArgumentName))
}

func TestNewCommand_Identities(t *testing.T) {
	remote, err := NewCommand("remote", "manage remotes",
		WithPositional(str("name")),
		WithOption(NewOption("--verbose", "description", WithShortName('v'))))
	require.NoError(t, err)

	root, err := NewCommand("git", "description",
		WithPositional(str("first"), str("rest", Repeated())),
		WithOption(NewOption("--output-dir", "description", WithArgument(NewArgument("", String())))),
		WithSubcommands(remote))
	require.NoError(t, err)

	assert.Equal(t, "git", root.Path())
	assert.Equal(t, ID("git#0"), root.Positional()[0].ID())
	assert.Equal(t, ID("git#1"), root.Positional()[1].ID())

	out := root.Option("--output-dir")
	require.NotNil(t, out)
	assert.Equal(t, ID("git#--output-dir"), out.ID())
	assert.Equal(t, ID("git#--output-dir="), out.Argument().ID())
	assert.Equal(t, "<output-dir>", out.Argument().Name())

	sub := root.Lookup("remote")
	require.NotNil(t, sub)
	assert.Equal(t, "git remote", sub.Path())
	assert.Equal(t, ID("git remote#0"), sub.Positional()[0].ID())
	assert.Equal(t, ID("git remote#--verbose"), sub.Option("-v").ID())
	assert.Same(t, sub.Option("-v"), sub.Option("--verbose"))

	assert.Nil(t, root.Lookup("remote add"))
	assert.Same(t, root, root.Lookup(""))
	assert.Nil(t, root.Option("-z"))
	assert.Nil(t, root.Option("--missing"))
}

func TestNewCommand_CopiesDescriptors(t *testing.T) {
	shared := str("file")
	verbose := NewOption("--verbose", "description", WithShortName('v'))

	a, err := NewCommand("a", "description", WithPositional(shared), WithOption(verbose))
	require.NoError(t, err)
	b, err := NewCommand("b", "description", WithPositional(shared), WithOption(verbose))
	require.NoError(t, err)

	assert.Equal(t, ID(""), shared.ID())
	assert.Equal(t, ID("a#0"), a.Positional()[0].ID())
	assert.Equal(t, ID("b#0"), b.Positional()[0].ID())
	assert.NotSame(t, a.Option("--verbose"), b.Option("--verbose"))
}

func TestNewCommand_Descriptions(t *testing.T) {
	cmd, err := NewCommand("main", "old", WithCommandDescription("new"),
		WithOption(NewOption("--opt", "old", WithOptionDescription("new"), SetRequired(true),
			WithArgument(NewArgument("value", Int(), WithArgumentDescription("new"), SetRepeated(true))))))
	require.NoError(t, err)

	assert.Equal(t, "new", cmd.Description())
	opt := cmd.Option("--opt")
	assert.Equal(t, "new", opt.Description())
	assert.True(t, opt.Required())
	assert.False(t, opt.IsFlag())
	assert.Equal(t, "new", opt.Argument().Description())
	assert.True(t, opt.Argument().Repeated())
	assert.Equal(t, "--opt value... (int) (required)", opt.String())
}

func TestOption_Matches(t *testing.T) {
	opt := NewOption("--verbose", "description", WithShortName('v'))

	assert.True(t, opt.Matches("--verbose"))
	assert.True(t, opt.Matches("-v"))
	assert.False(t, opt.Matches("--v"))
	assert.False(t, opt.Matches("-vv"))
	assert.False(t, opt.Matches("verbose"))

	short, ok := opt.ShortName()
	assert.True(t, ok)
	assert.Equal(t, 'v', short)

	_, ok = NewOption("--quiet", "description").ShortName()
	assert.False(t, ok)
}
