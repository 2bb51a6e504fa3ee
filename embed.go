package main

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"
	"go.uber.org/zap"

	"github.com/ksco/embed/pkg/objfile"
	"github.com/ksco/embed/pkg/utils"
)

var version string

type embedParams struct {
	single    bool
	verbose   bool
	output    string
	outputDir string
}

func main() {
	if err := newRootCommand(afero.NewOsFs()).Execute(); err != nil {
		utils.Die(err)
	}
}

func newRootCommand(fs afero.Fs) *cobra.Command {
	env.Load()
	params := &embedParams{
		single:    env.Bool("EMBED_SINGLE"),
		verbose:   env.Bool("EMBED_VERBOSE"),
		outputDir: env.Str("EMBED_OUTPUT_DIR"),
	}

	cmd := &cobra.Command{
		Use:   "embed <symbol-name> <input-file>",
		Short: "Wrap a binary file in a relocatable object",
		Long: `embed turns any file into an x86-64 ELF relocatable object whose .rodata
section holds the file's bytes. By default the data is bracketed by the
symbols <symbol-name>_begin and <symbol-name>_end; with --single one symbol
<symbol-name> covers it instead.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return &UsageError{Msg: "not enough arguments", Usage: cmd.UseLine()}
			}
			return checkSymbolName(args[0])
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmbed(fs, params, args[0], args[1])
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.BoolVar(&params.single, "single", params.single, "emit one <symbol-name> symbol sized to the data instead of _begin/_end markers")
	flags.BoolVarP(&params.verbose, "verbose", "v", params.verbose, "log the object layout to stderr")
	flags.StringVarP(&params.output, "output", "o", "", "output path (default: input path with its extension replaced by .o)")

	// "help" stays usable as a symbol name; --help still prints usage.
	cmd.SetHelpCommand(&cobra.Command{
		Use:    "help/",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkSymbolName(cmd.Name())
		},
	})
	cmd.AddCommand(newInspectCommand(fs))
	return cmd
}

func checkSymbolName(name string) error {
	switch {
	case name == "":
		return &UsageError{Msg: "symbol name is empty"}
	case strings.ContainsAny(name, "\x00/"):
		return &UsageError{Msg: "invalid symbol name: " + name}
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// OutputPath replaces the extension of input with .o. A path whose last
// element has no dot just gets .o appended.
func OutputPath(input string) string {
	for i := len(input) - 1; i >= 0; i-- {
		switch input[i] {
		case '.':
			return input[:i] + ".o"
		case '/':
			return input + ".o"
		}
	}
	return input + ".o"
}

func runEmbed(fs afero.Fs, params *embedParams, name, input string) error {
	log, err := newLogger(params.verbose)
	if err != nil {
		return errors.Wrap(err, "cannot set up logging")
	}
	defer log.Sync()

	file, err := objfile.NewFile(fs, input)
	if err != nil {
		return &InputReadError{Path: input, Err: err}
	}
	if objfile.GetFileType(file.Contents) == objfile.FileTypeObject {
		log.Warn("input is already a relocatable object", zap.String("input", input))
	}

	output := params.output
	if output == "" {
		output = OutputPath(input)
		if params.outputDir != "" {
			output = filepath.Join(params.outputDir, filepath.Base(output))
		}
	}

	ctx := objfile.NewContext(name, file.Contents)
	ctx.Log = log
	if params.single {
		ctx.Arg.Mode = objfile.ModeSingle
	}

	image := objfile.Build(ctx)
	if err := objfile.WriteObject(fs, output, image); err != nil {
		return &OutputWriteError{Path: output, Err: err}
	}

	log.Info("wrote object", zap.String("output", output), zap.Int("size", len(image)))
	return nil
}
