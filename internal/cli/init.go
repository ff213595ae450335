package cli

import (
	"fmt"
	"io"

	"github.com/makegen-labs/makegen/internal/config"
	"github.com/makegen-labs/makegen/internal/scaffold"
	"github.com/makegen-labs/makegen/internal/values"
	"github.com/makegen-labs/makegen/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing files")
	config.AddValueFlags(initCmd.Flags())
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create a starter Makefile.tmp and makegen.yaml",
	Long: `Create a starter Makefile template and values file in dir (default: the
current directory). Value flags and MAKEGEN_* environment variables pre-fill
the values file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		return runInit(cmd.OutOrStdout(), cmd.Flags(), dir, initForce)
	},
}

func runInit(out io.Writer, flags *pflag.FlagSet, dir string, force bool) error {
	res, err := config.Resolve("", flags)
	if err != nil {
		return err
	}

	file := values.FromValues(res.Values)
	if version.IsRelease(buildVersion) {
		file.Requires = ">= " + buildVersion
	}

	result, err := scaffold.Generate(dir, file, force)
	if err != nil {
		return fmt.Errorf("initializing %s: %w", dir, err)
	}

	for _, f := range result.Files {
		fmt.Fprintf(out, "Created %s\n", f)
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(out, "Warning: %s\n", w)
	}
	fmt.Fprintf(out, "\nEdit %s, then run '%s render -f %s'.\n", values.DefaultFileName, rootCmd.Name(), values.DefaultFileName)
	return nil
}
