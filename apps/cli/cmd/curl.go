package cmd

import (
	"fmt"

	"github.com/abdul-hamid-achik/reqforge/packages/import/curl"
	"github.com/abdul-hamid-achik/reqforge/packages/recipe"
	"github.com/spf13/cobra"
)

var curlCmd = &cobra.Command{
	Use:   "curl <curl command...>",
	Short: "Build and display requests from curl command lines",
	Long: `Parse a curl command line, or a file of them, into the builder and display
the resulting requests.

Examples:
  reqforge curl 'curl -X POST -H "Content-Type: application/json" -d "{}" https://api.example.com/users'
  reqforge curl https://api.example.com/users -H "Accept: text/plain"
  reqforge curl --file requests.sh`,
	RunE: curlCommand,
}

var curlFileFlag string

func init() {
	curlCmd.Flags().StringVarP(&curlFileFlag, "file", "f", "", "Read curl commands from a file")
	// Everything after the command name belongs to curl, not to reqforge.
	curlCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(curlCmd)
}

func curlCommand(cmd *cobra.Command, args []string) error {
	var commands []*curl.Command

	switch {
	case curlFileFlag != "":
		parsed, err := curl.ParseFile(curlFileFlag)
		if err != nil {
			return err
		}
		commands = parsed
	case len(args) == 1:
		c, err := curl.Parse(args[0])
		if err != nil {
			return err
		}
		commands = append(commands, c)
	case len(args) > 1:
		c, err := curl.ParseArgs(args)
		if err != nil {
			return err
		}
		commands = append(commands, c)
	default:
		return &usageError{msg: "expected a curl command or --file"}
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	entries := make([]recipe.Entry, 0, len(commands))
	for _, c := range commands {
		req, err := c.Builder.Build()
		if err != nil {
			return fmt.Errorf("%s: %w", c.Name, err)
		}
		entries = append(entries, recipe.Entry{Name: c.Name, Request: req})
	}
	return render(cmd, cfg, entries, nil)
}
