package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/abdul-hamid-achik/reqforge/packages/core/config"
	"github.com/abdul-hamid-achik/reqforge/packages/core/env"
	"github.com/abdul-hamid-achik/reqforge/packages/http"
	"github.com/abdul-hamid-achik/reqforge/packages/output"
	"github.com/abdul-hamid-achik/reqforge/packages/recipe"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Environment variable helpers
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// Formatter interface for all output formatters
type Formatter interface {
	FormatRequest(name string, req *http.Request)
	FormatDivider()
	FormatError(err error)
}

// Flushable interface for formatters that need to flush output
type Flushable interface {
	Flush() error
}

// loadSettings loads the config file and applies persistent flag overrides.
func loadSettings() (*config.Config, error) {
	cfg, err := config.LoadConfig(configFlag)
	if err != nil {
		return nil, &configError{err: err}
	}

	overrides := &config.Config{Output: outputFlag}
	if noColorFlag {
		overrides.NoColor = config.BoolPtr(true)
	}
	if verboseFlag {
		overrides.Verbose = config.BoolPtr(true)
	}
	cfg = cfg.Merge(overrides)

	if err := cfg.Validate(); err != nil {
		return nil, &usageError{msg: err.Error()}
	}
	if pickFlag != "" && cfg.Output != config.OutputJSON {
		return nil, &usageError{msg: "--pick requires --output json"}
	}
	return cfg, nil
}

func newFormatter(w io.Writer, cfg *config.Config) Formatter {
	if cfg.Output == config.OutputJSON {
		return output.NewJSONFormatter(output.JSONWithWriter(w))
	}
	return output.NewConsoleFormatter(
		output.WithWriter(w),
		output.WithNoColor(cfg.GetNoColor()),
		output.WithVerbose(cfg.GetVerbose()),
	)
}

// render displays entries separated by dividers, followed by errs, honoring
// --output and --pick.
func render(cmd *cobra.Command, cfg *config.Config, entries []recipe.Entry, errs []error) error {
	out := cmd.OutOrStdout()

	var buf bytes.Buffer
	w := out
	if pickFlag != "" {
		w = &buf
	}

	formatter := newFormatter(w, cfg)
	for i, e := range entries {
		if i > 0 {
			formatter.FormatDivider()
		}
		formatter.FormatRequest(e.Name, e.Request)
	}
	for _, err := range errs {
		formatter.FormatError(err)
	}

	if flushable, ok := formatter.(Flushable); ok {
		if err := flushable.Flush(); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	if pickFlag != "" {
		v, err := output.Pick(buf.Bytes(), pickFlag)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, v)
	}
	return nil
}

// renderOne is render for commands that build a single request.
func renderOne(cmd *cobra.Command, name string, req *http.Request) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	return render(cmd, cfg, []recipe.Entry{{Name: name, Request: req}}, nil)
}

func warnf(cmd *cobra.Command, format string, args ...any) {
	yellow := color.New(color.FgYellow)
	if noColorFlag {
		yellow.DisableColor()
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", yellow.Sprint("warning:"), fmt.Sprintf(format, args...))
}

// parsePairs splits "key<sep>value" flag values. Whitespace around both parts is trimmed.
func parsePairs(values []string, sep, flag string) (map[string]string, error) {
	result := make(map[string]string, len(values))
	for _, v := range values {
		key, value, found := strings.Cut(v, sep)
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return nil, &usageError{msg: fmt.Sprintf("invalid --%s %q, expected key%svalue", flag, v, sep)}
		}
		result[key] = strings.TrimSpace(value)
	}
	return result, nil
}

// collectFiles expands directories into the recipe files they contain.
func collectFiles(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}

		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		err = filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && isRecipeFile(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

func isRecipeFile(path string) bool {
	switch filepath.Ext(path) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}

// newResolver collects variables from, in increasing precedence: the config
// file, the env file, REQFORGE_VAR_* environment variables and --var flags.
func newResolver(cmd *cobra.Command, cfg *config.Config) (*env.Resolver, error) {
	r := env.NewResolver()
	r.SetWarnFunc(func(format string, args ...any) {
		warnf(cmd, format, args...)
	})

	envFile := cfg.EnvFile
	if envFileFlag != "" {
		envFile = envFileFlag
	}

	var fileVars map[string]string
	if envFile != "" {
		vars, err := env.LoadDotEnv(envFile)
		if err != nil {
			return nil, &configError{err: err}
		}
		fileVars = vars
	}

	cliVars, err := env.ParseAssignments(varFlags)
	if err != nil {
		return nil, &usageError{msg: err.Error()}
	}

	r.SetVariables(env.MergeVariables(cfg.Variables, fileVars, env.LoadSystemEnv("REQFORGE_VAR_"), cliVars))
	return r, nil
}
