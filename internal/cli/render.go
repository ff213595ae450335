package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/makegen-labs/makegen/internal/config"
	"github.com/makegen-labs/makegen/internal/render"
	"github.com/makegen-labs/makegen/internal/values"
	"github.com/makegen-labs/makegen/internal/version"
	"github.com/makegen-labs/makegen/internal/watch"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	renderTemplate string
	renderOutput   string
	renderValues   string
	renderDryRun   bool
	renderWatch    bool
)

func init() {
	f := renderCmd.Flags()
	f.StringVarP(&renderTemplate, "template", "t", "", `Template to read (default: "template" setting or Makefile.tmp)`)
	f.StringVarP(&renderOutput, "output", "o", "", `File to write (default: "output" setting or Makefile)`)
	f.StringVarP(&renderValues, "values", "f", "", "Values file (YAML, JSON or TOML)")
	f.BoolVar(&renderDryRun, "dry-run", false, "Print the rendered output instead of writing it")
	f.BoolVar(&renderWatch, "watch", false, "Re-render whenever the template or values file changes")
	config.AddValueFlags(f)
	renderCmd.MarkFlagsMutuallyExclusive("dry-run", "watch")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:     "render",
	Aliases: []string{"generate", "gen"},
	Short:   "Render the Makefile template",
	Long: `Render the Makefile template by replacing its six placeholders.

Values are layered, highest precedence first:
  1. flags (--lib-name, --lib-name-caps, --cc, --cflags, --mand, --bonus)
  2. environment (MAKEGEN_LIB_NAME, ..., MAKEGEN_MAND_FUNCTIONS="a b c")
  3. the values file given with --values

Unset values render as empty strings. Other $(...) references in the
template are left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		opts := renderOptions{
			Template:   config.TemplatePath(renderTemplate),
			Output:     config.OutputPath(renderOutput),
			ValuesFile: renderValues,
			DryRun:     renderDryRun,
		}
		if renderWatch {
			return watchRender(cmd.Context(), cmd.OutOrStdout(), cmd.Flags(), opts)
		}
		return runRender(cmd.OutOrStdout(), cmd.Flags(), opts)
	},
}

type renderOptions struct {
	Template   string
	Output     string
	ValuesFile string
	DryRun     bool
}

func runRender(out io.Writer, flags *pflag.FlagSet, opts renderOptions) error {
	v, err := resolveValues(opts.ValuesFile, flags)
	if err != nil {
		return err
	}

	r := render.New(out, logger)
	if opts.DryRun {
		return r.Render(out, opts.Template, v)
	}
	return r.RenderFile(opts.Template, opts.Output, v)
}

func watchRender(ctx context.Context, out io.Writer, flags *pflag.FlagSet, opts renderOptions) error {
	if err := runRender(out, flags, opts); err != nil {
		return err
	}

	paths := []string{opts.Template}
	if opts.ValuesFile != "" {
		paths = append(paths, opts.ValuesFile)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(out, "Watching %s for changes (Ctrl+C to stop)\n", strings.Join(paths, ", "))
	return watch.Run(ctx, paths, watch.DefaultDebounce, logger, func() error {
		return runRender(out, flags, opts)
	})
}

// resolveValues validates the values file, enforces its version requirement
// and layers the environment and flags over it.
func resolveValues(valuesFile string, flags *pflag.FlagSet) (render.Values, error) {
	if valuesFile != "" {
		result, err := values.ValidateFile(valuesFile)
		if err != nil {
			return render.Values{}, err
		}
		if !result.Valid {
			return render.Values{}, invalidValuesError(valuesFile, result.Issues)
		}
	}

	res, err := config.Resolve(valuesFile, flags)
	if err != nil {
		return render.Values{}, err
	}
	if err := version.Check(res.Requires, buildVersion); err != nil {
		return render.Values{}, fmt.Errorf("values file %s: %w", valuesFile, err)
	}

	logger.Debug("resolved values",
		zap.String("values_file", valuesFile),
		zap.String("lib_name", res.Values.LibName),
		zap.String("cc_compiler", res.Values.CCCompiler),
		zap.Strings("mand_functions", res.Values.MandFunctions),
		zap.Strings("bonus_functions", res.Values.BonusFunctions))
	return res.Values, nil
}
