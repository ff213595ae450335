package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/makegen-labs/makegen/internal/config"
	"github.com/makegen-labs/makegen/internal/render"
	"github.com/makegen-labs/makegen/internal/values"
	"github.com/makegen-labs/makegen/internal/version"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check [values-file]",
	Short: "Validate a values file and show the resolved placeholders",
	Long: `Validate a values file against the values schema and its "requires"
constraint, then print the value each placeholder would receive after
environment overrides are applied. Defaults to ./` + values.DefaultFileName + `.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := values.DefaultFileName
		if len(args) == 1 {
			path = args[0]
		}
		return runCheck(cmd.OutOrStdout(), path)
	},
}

func runCheck(out io.Writer, path string) error {
	result, err := values.ValidateFile(path)
	if err != nil {
		return err
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "  ✗ %s\n", issue)
		}
		return fmt.Errorf("values file %s is invalid", path)
	}

	res, err := config.Resolve(path, nil)
	if err != nil {
		return err
	}
	if err := version.Check(res.Requires, buildVersion); err != nil {
		return fmt.Errorf("values file %s: %w", path, err)
	}

	fmt.Fprintf(out, "%s is valid.\n\n", path)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, s := range res.Values.Substitutions() {
		fmt.Fprintf(w, "  %s\t%q\n", render.Placeholder(s.Name), s.Value)
	}
	return w.Flush()
}

func invalidValuesError(path string, issues []values.ValidationIssue) error {
	msgs := make([]string, 0, len(issues))
	for _, issue := range issues {
		msgs = append(msgs, issue.String())
	}
	return fmt.Errorf("values file %s is invalid: %s", path, strings.Join(msgs, "; "))
}
