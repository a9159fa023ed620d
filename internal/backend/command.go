package backend

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vk/efscriptgen/internal/variants"
)

// DefaultExtension is the extension given to compiled effects.
const DefaultExtension = "efb"

// ErrorGuard aborts a batch script when the previous command failed.
const ErrorGuard = "@if %errorlevel% neq 0 exit /b %errorlevel%"

// Invocation is the synthesized result for one variant.
type Invocation struct {
	// OutputFile is the compiled artifact path.
	OutputFile string
	// Lines are the script lines for the variant, command first.
	Lines []string
}

// OutputName returns the artifact file name for source compiled with defines:
// the source base name, then "_NAME" and, for non-default values, "_VALUE" for
// each define in materialization order, then ext.
func OutputName(source string, defines variants.DefineSet, ext string) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	var sb strings.Builder
	sb.WriteString(base)
	for _, d := range defines.Entries() {
		sb.WriteString("_")
		sb.WriteString(d.Name)
		if d.Value != variants.DefaultValue {
			sb.WriteString("_")
			sb.WriteString(d.Value)
		}
	}
	if ext = strings.TrimPrefix(ext, "."); ext != "" {
		sb.WriteString(".")
		sb.WriteString(ext)
	}
	return sb.String()
}

// Tokens returns the define tokens of a set sorted ascending as whole strings.
func Tokens(defines variants.DefineSet) []string {
	entries := defines.Entries()
	tokens := make([]string, 0, len(entries))
	for _, d := range entries {
		tokens = append(tokens, d.Token())
	}
	sort.Strings(tokens)
	return tokens
}

// CommandLine returns the compiler invocation for compiling src into out.
func (b Backend) CommandLine(src, out string, defines variants.DefineSet) string {
	tokens := Tokens(defines)

	var sb strings.Builder
	switch b.Family {
	case Legacy:
		fmt.Fprintf(&sb, "%s \"%s\" /Fo \"%s\" /T:%s", b.Tool, src, out, b.Profile)
		for _, tok := range tokens {
			name, value, ok := strings.Cut(tok, "=")
			if !ok {
				value = variants.DefaultValue
			}
			fmt.Fprintf(&sb, " /D %s=%s", name, value)
		}
	default:
		fmt.Fprintf(&sb, "%s \"%s\" \"%s\" /Profile:%s", b.Tool, src, out, b.Profile)
		if len(tokens) > 0 {
			sb.WriteString(" /Defines:")
			sb.WriteString(strings.Join(tokens, ";"))
		}
	}
	return sb.String()
}

// Synthesize builds the invocation for one variant. The artifact lands in
// outputDir; src should already be absolute.
func (b Backend) Synthesize(src, outputDir string, defines variants.DefineSet, ext string) Invocation {
	out := filepath.Join(outputDir, OutputName(src, defines, ext))
	lines := []string{b.CommandLine(src, out, defines)}
	if b.Family == Modern {
		lines = append(lines, ErrorGuard)
	}
	return Invocation{OutputFile: out, Lines: lines}
}
