package cmd

import (
	"github.com/abdul-hamid-achik/reqforge/packages/http"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <url>",
	Short: "Display a GET request built by the director",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := http.CreateGetRequest(args[0])
		if err != nil {
			return err
		}
		return renderOne(cmd, "get", req)
	},
}

var postCmd = &cobra.Command{
	Use:   "post <url> [json-body]",
	Short: "Display a JSON POST request built by the director",
	Long: `Display a JSON POST request built by the director. Content-Type and
Accept are set to application/json.

Examples:
  reqforge post https://api.example.com/users '{"name": "Aditya"}'`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := ""
		if len(args) == 2 {
			body = args[1]
		}
		req, err := http.CreateJSONPostRequest(args[0], body)
		if err != nil {
			return err
		}
		return renderOne(cmd, "post", req)
	},
}
