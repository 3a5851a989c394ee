package cmd

import (
	"github.com/abdul-hamid-achik/reqforge/packages/http"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build <url>",
	Short: "Build a request field by field and display it",
	Long: `Build a request with the builder and display it.

Examples:
  reqforge build https://api.example.com/users
  reqforge build https://api.example.com/users -X PUT -H "Content-Type: application/json" -d '{"id": 1}'
  reqforge build https://api.example.com/search -q term=go -q page=2 --timeout 10`,
	Args: cobra.ExactArgs(1),
	RunE: buildCommand,
}

var (
	methodFlag  string
	headerFlags []string
	queryFlags  []string
	bodyFlag    string
	timeoutFlag int
)

func init() {
	buildCmd.Flags().StringVarP(&methodFlag, "method", "X", http.MethodGet, "HTTP method")
	buildCmd.Flags().StringArrayVarP(&headerFlags, "header", "H", nil, `Header as "Key: value" (repeatable)`)
	buildCmd.Flags().StringArrayVarP(&queryFlags, "query", "q", nil, `Query parameter as "key=value" (repeatable)`)
	buildCmd.Flags().StringVarP(&bodyFlag, "body", "d", "", "Request body")
	buildCmd.Flags().IntVar(&timeoutFlag, "timeout", getEnvInt("REQFORGE_TIMEOUT", 0), "Timeout in seconds (env: REQFORGE_TIMEOUT)")
}

func buildCommand(cmd *cobra.Command, args []string) error {
	headers, err := parsePairs(headerFlags, ":", "header")
	if err != nil {
		return err
	}
	query, err := parsePairs(queryFlags, "=", "query")
	if err != nil {
		return err
	}

	req, err := http.NewBuilder().
		WithURL(args[0]).
		WithMethod(methodFlag).
		WithHeaders(headers).
		WithQueryParams(query).
		WithBody(bodyFlag).
		WithTimeout(timeoutFlag).
		Build()
	if err != nil {
		return err
	}

	return renderOne(cmd, "build", req)
}
