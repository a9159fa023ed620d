package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/efscriptgen/internal/app"
)

// ErrMissingFlagValue is returned when a flag that takes a value is the last argument.
var ErrMissingFlagValue = errors.New("flag value isn't provided")

// Parse processes command-line arguments. It returns a populated Config, or a
// boolean indicating the program should exit cleanly without doing any work.
// Flags may come before or after the folder argument.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("efscriptgen", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
efscriptgen - Effect compilation script generator.

Usage:
  efscriptgen <folder> [options]

Arguments:
  folder
    Directory scanned recursively for .fx sources and their .xml or .hcl
    variant descriptors.

Options:
`)
		flagSet.PrintDefaults()
	}

	extFlag := flagSet.String("e", "efb", "Specifies the compiled files extension.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	treeFlag := flagSet.Bool("tree", false, "Print the variant tree of every descriptor.")
	versionFlag := flagSet.Bool("version", false, "Print the version and exit.")

	if len(args) == 0 {
		slog.Debug("No arguments provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	if name := missingValue(flagSet, args); name != "" {
		return nil, false, fmt.Errorf("%w for '-%s'", ErrMissingFlagValue, name)
	}

	// flag stops at the first positional argument, so parse the remainder again
	// after each one. The last positional argument is the folder.
	folder := ""
	rest := args
	for {
		if err := flagSet.Parse(rest); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil, true, nil
			}
			return nil, false, err
		}
		if flagSet.NArg() == 0 {
			break
		}
		folder = flagSet.Arg(0)
		rest = flagSet.Args()[1:]
	}
	slog.Debug("Arguments parsed successfully.", "folder", folder)

	if *versionFlag {
		fmt.Fprintf(output, "efscriptgen %s\n", app.Version)
		return nil, true, nil
	}

	config, err := app.NewConfig(app.Config{
		InputFolder: folder,
		Extension:   *extFlag,
		LogFormat:   *logFormatFlag,
		LogLevel:    *logLevelFlag,
		PrintTree:   *treeFlag,
	})
	if err != nil {
		return nil, false, err
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// missingValue returns the name of a value-taking flag that ends args with no
// value after it, or "" when every such flag has one.
func missingValue(flagSet *flag.FlagSet, args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return ""
		}
		if len(arg) < 2 || arg[0] != '-' {
			continue
		}
		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		f := flagSet.Lookup(name)
		if f == nil || isBoolFlag(f) {
			continue
		}
		if i == len(args)-1 {
			return name
		}
		i++
	}
	return ""
}

func isBoolFlag(f *flag.Flag) bool {
	bf, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && bf.IsBoolFlag()
}
