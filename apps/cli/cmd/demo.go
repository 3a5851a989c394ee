package cmd

import (
	"github.com/abdul-hamid-achik/reqforge/packages/http"
	"github.com/abdul-hamid-achik/reqforge/packages/recipe"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build and display three sample requests",
	Long: `Build three sample requests and display each one:

  1. a POST configured field by field with the builder
  2. a GET from the director
  3. a JSON POST from the director`,
	Args: cobra.NoArgs,
	RunE: demoCommand,
}

func demoCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	entries, err := demoRequests()
	if err != nil {
		return err
	}
	return render(cmd, cfg, entries, nil)
}

func demoRequests() ([]recipe.Entry, error) {
	normal, err := http.NewBuilder().
		WithURL("https://api.example.com").
		WithMethod(http.MethodPost).
		WithHeader("Content-Type", http.ContentTypeJSON).
		WithHeader("Accept", http.ContentTypeJSON).
		WithQueryParam("key", "12345").
		WithBody(`{"name": "Aditya"}`).
		WithTimeout(60).
		Build()
	if err != nil {
		return nil, err
	}

	get, err := http.CreateGetRequest("https://api.example.com/users")
	if err != nil {
		return nil, err
	}

	post, err := http.CreateJSONPostRequest(
		"https://api.example.com/users",
		`{"name": "Aditya", "email": "aditya@example.com"}`,
	)
	if err != nil {
		return nil, err
	}

	return []recipe.Entry{
		{Name: "builder", Request: normal},
		{Name: "director-get", Request: get},
		{Name: "director-json-post", Request: post},
	}, nil
}
