package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/napalu/clitree/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const toolSchema = `{
  "name": "tool",
  "description": "does things",
  "options": [{"name": "--verbose", "short": "v"}],
  "commands": [{
    "name": "copy",
    "positional": [{"name": "dest"}, {"name": "sources", "repeated": true}],
    "options": [{"name": "--depth", "required": true, "value": {"type": "int"}}]
  }]
}`

func writeSchema(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tool.json")
	require.NoError(t, os.WriteFile(path, []byte(toolSchema), 0o600))

	return path
}

func runProbe(t *testing.T, tty bool, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr, tty)

	return code, stdout.String(), stderr.String()
}

func TestProbe_CheckJSON(t *testing.T) {
	path := writeSchema(t)

	code, out, _ := runProbe(t, false, "check", "--schema", path, "--log-level", "error")
	require.Equal(t, 0, code)

	var got schema.Command
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	want, err := schema.DecodeJSON([]byte(toolSchema))
	require.NoError(t, err)
	assert.Equal(t, want.Name, got.Name)
	assert.Len(t, got.Commands, 1)
	assert.Equal(t, "copy", got.Commands[0].Name)
	assert.Equal(t, "int", got.Commands[0].Options[0].Value.Type)
}

func TestProbe_CheckTextOnTerminal(t *testing.T) {
	path := writeSchema(t)

	code, out, _ := runProbe(t, true, "check", "-s", path)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "tool - does things\n")
	assert.Contains(t, out, "  --verbose, -v\n")
	assert.Contains(t, out, "  copy\n")
	assert.Contains(t, out, "    sources... (string)\n")
	assert.Contains(t, out, "    --depth <depth> (int) (required)\n")
}

func TestProbe_ParseSuccess(t *testing.T) {
	path := writeSchema(t)

	code, out, _ := runProbe(t, false, "parse", "--schema", path, "--", "copy", "--depth", "2", "/tmp", "a", "b")
	require.Equal(t, 0, code)

	var rep report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.True(t, rep.OK)
	assert.Equal(t, "tool copy", rep.Command)
	require.Len(t, rep.Values, 3)
	assert.Equal(t, "dest", rep.Values[0].Name)
	assert.Equal(t, []string{"/tmp"}, rep.Values[0].Values)
	assert.Equal(t, []string{"a", "b"}, rep.Values[1].Values)
	assert.Equal(t, "--depth", rep.Values[2].Name)
}

func TestProbe_ParseFailureTranslated(t *testing.T) {
	path := writeSchema(t)

	code, out, _ := runProbe(t, false, "parse", "--lang", "de-AT", "--schema", path, "--", "copy", "/tmp")
	assert.Equal(t, 1, code)

	var rep report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.False(t, rep.OK)
	require.Len(t, rep.Errors, 2)
	assert.Equal(t, "MissingPositionalArgument", rep.Errors[0].Kind)
	assert.Equal(t, "Positionsargument sources fehlt", rep.Errors[0].Message)
	assert.Equal(t, "MissingRequiredOption", rep.Errors[1].Kind)
}

func TestProbe_SplitText(t *testing.T) {
	path := writeSchema(t)

	code, out, _ := runProbe(t, false, "split", "--format", "text", "--schema", path, "--", "-v 'two words'")
	assert.Equal(t, 1, code)
	assert.Equal(t, "command: tool\nerror: UnknownToken: unexpected argument \"two words\"\n", out)

	code, out, _ = runProbe(t, false, "split", "--format", "text", "--schema", path, "--", "-vv")
	assert.Equal(t, 0, code)
	assert.Equal(t, "command: tool\nflag: --verbose\nflag: --verbose\n", out)
}

func TestProbe_SplitUnbalancedQuote(t *testing.T) {
	path := writeSchema(t)

	code, _, errOut := runProbe(t, false, "split", "--schema", path, "copy 'open")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "copy 'open")
}

func TestProbe_UsageErrors(t *testing.T) {
	path := writeSchema(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no command", nil, "usage: clitree-probe <command> [options]"},
		{"unknown command", []string{"frobnicate"}, `unexpected argument "frobnicate"`},
		{"missing schema", []string{"check"}, "required option --schema is missing"},
		{"bad format", []string{"check", "--schema", path, "--format", "xml"}, `invalid value "xml" for <format>`},
		{"missing tokens", []string{"parse", "--schema", path}, "missing positional argument tokens"},
		{"unsupported schema", []string{"check", "--schema", "tool.yaml"}, `unsupported schema format ".yaml"`},
		{"missing file", []string{"check", "--schema", filepath.Join(t.TempDir(), "none.json")}, "failed to read schema"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runProbe(t, false, tt.args...)
			assert.Equal(t, 2, code)
			assert.Contains(t, errOut, tt.want)
		})
	}
}

func TestProbe_InvalidSchemaTranslated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`command "a" { argument "x" { type = "complex" } }`), 0o600))

	code, _, errOut := runProbe(t, false, "check", "--schema", path, "--lang", "de")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, `unbekannter Argumenttyp "complex"`)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := newLogger("warn", "json", &buf)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	logger = newLogger("bogus", "bogus", &buf)
	logger.Debug("hidden")
	logger.Info("shown")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("msg=shown")))
}
