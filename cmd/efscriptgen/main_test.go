package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/efscriptgen/internal/cli"
	"github.com/vk/efscriptgen/internal/variants"
)

func TestRun_GeneratesScripts(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "DefaultEffect.fx"), []byte("// fx"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "DefaultEffect.xml"), []byte(`<Variants>
	<MultiCompile>TEXTURE;_</MultiCompile>
	<MultiCompile>LIGHTNING;_</MultiCompile>
</Variants>`), 0600))
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, []string{tempDir, "-e", "xnb"})

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "The scripts generation was a success.")
	for _, sub := range []string{"MonoGameDX11", "MonoGameOGL", "FNA"} {
		require.FileExists(t, filepath.Join(tempDir, sub, "compile_DefaultEffect.bat"))
		require.FileExists(t, filepath.Join(tempDir, sub, "compile_all.bat"))
	}
	data, err := os.ReadFile(filepath.Join(tempDir, "FNA", "compile_DefaultEffect.bat"))
	require.NoError(t, err)
	require.Contains(t, string(data), "DefaultEffect_TEXTURE_LIGHTNING.xnb")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	err := run(out, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, []string{"shaders", "-e"})

	require.ErrorIs(t, err, cli.ErrMissingFlagValue)
}

func TestRun_MalformedDescriptor(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "Broken.fx"), nil, 0600))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "Broken.xml"), []byte("<Variants>"), 0600))

	err := run(&bytes.Buffer{}, []string{tempDir})

	require.ErrorIs(t, err, variants.ErrMalformedDescriptor)
}
