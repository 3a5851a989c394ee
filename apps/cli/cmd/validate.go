package cmd

import (
	"errors"
	"fmt"

	"github.com/abdul-hamid-achik/reqforge/packages/recipe"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file|directory>...",
	Short: "Check recipe files without displaying them",
	Long: `Check recipe files against the recipe schema and build every request
they describe, without displaying anything.

Examples:
  reqforge validate api.yaml
  reqforge validate ./recipes/`,
	Args: cobra.MinimumNArgs(1),
	RunE: validateCommand,
}

func init() {
	validateCmd.Flags().StringVar(&envFileFlag, "env-file", getEnvString("REQFORGE_ENV_FILE", ""), "Path to .env file for variable interpolation (env: REQFORGE_ENV_FILE)")
	validateCmd.Flags().StringArrayVar(&varFlags, "var", nil, `Set a variable as "key=value" (repeatable)`)
}

func validateCommand(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return &usageError{msg: "no .yaml, .yml or .json recipe files found"}
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	resolver, err := newResolver(cmd, cfg)
	if err != nil {
		return err
	}
	// Unresolved placeholders are reported by Lint instead.
	resolver.SetWarnFunc(nil)

	var errs []error
	for _, file := range files {
		f, err := recipe.Load(file)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error in %s: %v\n", file, err)
			errs = append(errs, err)
			continue
		}
		f.ApplyDefaults(cfg.Headers, cfg.Timeout)

		entries, err := f.Build(resolver)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error in %s: %v\n", file, err)
			errs = append(errs, err)
			continue
		}

		for _, w := range recipe.Lint(entries, resolver) {
			warnf(cmd, "%s: %s", file, w)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Valid: %s (%d requests)\n", file, len(entries))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %w", errors.Join(errs...))
	}

	return nil
}
