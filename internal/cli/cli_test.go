package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/efscriptgen/internal/app"
)

func TestParse_NoArgumentsPrintsUsage(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse(nil, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "-e string")
}

func TestParse_FolderAndFlagsInAnyOrder(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
	}{
		{name: "flags first", args: []string{"-e", "xnb", "-tree", "shaders"}},
		{name: "flags last", args: []string{"shaders", "-e", "xnb", "-tree"}},
		{name: "mixed", args: []string{"-tree", "shaders", "-e", "xnb"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, shouldExit, err := Parse(tc.args, &bytes.Buffer{})

			require.NoError(t, err)
			assert.False(t, shouldExit)
			assert.Equal(t, &app.Config{
				InputFolder: "shaders",
				Extension:   "xnb",
				LogFormat:   "text",
				LogLevel:    "info",
				PrintTree:   true,
			}, cfg)
		})
	}
}

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	cfg, _, err := Parse([]string{"first", "second"}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "second", cfg.InputFolder, "last positional argument wins")
	assert.Equal(t, "efb", cfg.Extension)
	assert.False(t, cfg.PrintTree)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"-tree"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, app.ErrMissingInputFolder)

	_, _, err = Parse([]string{"--not-a-flag", "shaders"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flag provided but not defined: -not-a-flag")

	_, _, err = Parse([]string{"-log-level", "loud", "shaders"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "invalid log-level")
}

func TestParse_HelpAndVersion(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	_, shouldExit, err := Parse([]string{"-h"}, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Contains(t, out.String(), "Usage:")

	out.Reset()
	_, shouldExit, err = Parse([]string{"-version"}, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Equal(t, "efscriptgen "+app.Version+"\n", out.String())
}

func TestParse_MissingFlagValue(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
		want string
	}{
		{name: "extension", args: []string{"shaders", "-e"}, want: "'-e'"},
		{name: "log level", args: []string{"shaders", "-log-level"}, want: "'-log-level'"},
		{name: "log format double dash", args: []string{"shaders", "--log-format"}, want: "'-log-format'"},
		{name: "only flag", args: []string{"-e"}, want: "'-e'"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(tc.args, &bytes.Buffer{})

			require.ErrorIs(t, err, ErrMissingFlagValue)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestParse_FlagValueLooksLikeFlag(t *testing.T) {
	t.Parallel()

	cfg, _, err := Parse([]string{"shaders", "-e", "-tree"}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "-tree", cfg.Extension)
	assert.False(t, cfg.PrintTree)
}

func TestParse_UnknownFlagIsRejected(t *testing.T) {
	t.Parallel()

	_, shouldExit, err := Parse([]string{"shaders", "-x"}, &bytes.Buffer{})

	require.Error(t, err)
	assert.False(t, shouldExit)
	assert.Contains(t, err.Error(), "flag provided but not defined: -x")
}
