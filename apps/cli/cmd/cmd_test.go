package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/abdul-hamid-achik/reqforge/packages/http"
	"github.com/abdul-hamid-achik/reqforge/packages/recipe"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag to its default so tests do not leak state
// through the package-level flag variables.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	// Run from an empty directory so no stray config file is picked up.
	// Equivalent of t.Chdir (Go 1.24+) for the Go 1.21 toolchain.
	origWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(origWD) })

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append(args, "--no-color"))

	err = rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDemoCommand(t *testing.T) {
	out, _, err := executeCommand(t, "demo")
	require.NoError(t, err)

	expected := `Executing POST request to https://api.example.com
Query Parameters:
  key=12345
Headers:
  Accept: application/json
  Content-Type: application/json
Body: {"name": "Aditya"}
Timeout: 60 seconds
Request executed successfully!

----------------------------

Executing GET request to https://api.example.com/users
Headers:
Timeout: 0 seconds
Request executed successfully!

----------------------------

Executing POST request to https://api.example.com/users
Headers:
  Accept: application/json
  Content-Type: application/json
Body: {"name": "Aditya", "email": "aditya@example.com"}
Timeout: 0 seconds
Request executed successfully!
`
	assert.Equal(t, expected, out)
}

func TestBuildCommand(t *testing.T) {
	out, _, err := executeCommand(t, "build", "https://api.example.com/search",
		"-X", "PUT",
		"-H", "X-Token: abc",
		"-H", "X-Token: def",
		"-q", "term=go",
		"-d", "payload",
		"--timeout", "10",
	)
	require.NoError(t, err)

	assert.Equal(t, `Executing PUT request to https://api.example.com/search
Query Parameters:
  term=go
Headers:
  X-Token: def
Body: payload
Timeout: 10 seconds
Request executed successfully!
`, out)
}

func TestBuildCommand_InvalidHeader(t *testing.T) {
	_, _, err := executeCommand(t, "build", "https://x", "-H", "no-colon")
	require.Error(t, err)
	assert.Equal(t, ExitUsageError, exitCodeFor(err))
}

func TestBuildCommand_EmptyURL(t *testing.T) {
	_, _, err := executeCommand(t, "build", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, http.ErrEmptyURL)
	assert.Equal(t, ExitValidationError, exitCodeFor(err))
}

func TestGetCommand_JSONPick(t *testing.T) {
	out, _, err := executeCommand(t, "get", "https://x", "-o", "json", "--pick", "requests.0.method")
	require.NoError(t, err)
	assert.Equal(t, "GET\n", out)
}

func TestPickRequiresJSON(t *testing.T) {
	_, _, err := executeCommand(t, "get", "https://x", "--pick", "requests.0.method")
	require.Error(t, err)
	assert.Equal(t, ExitUsageError, exitCodeFor(err))
}

func TestPostCommand(t *testing.T) {
	out, _, err := executeCommand(t, "post", "https://x", "{}")
	require.NoError(t, err)
	assert.Contains(t, out, "Executing POST request to https://x\n")
	assert.Contains(t, out, "  Content-Type: application/json\n")
	assert.Contains(t, out, "Body: {}\n")
}

const showRecipe = `
variables:
  host: https://api.example.com
requests:
  - name: list
    preset: get
    url: "{{host}}/users"
  - name: create
    preset: json-post
    url: "{{host}}/users"
    body: '{"token": "{{token}}"}'
`

func TestShowCommand_Vars(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "api.yaml", showRecipe)

	out, stderr, err := executeCommand(t, "show", path, "--var", "token=abc", "-o", "json", "--pick", "requests.1.body")
	require.NoError(t, err)
	assert.Equal(t, `{"token": "abc"}`+"\n", out)
	assert.Empty(t, stderr)
}

func TestShowCommand_EnvFileAndWarnings(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "api.yaml", showRecipe)
	envFile := writeFile(t, dir, ".env", "host=http://localhost:8080\n")

	out, stderr, err := executeCommand(t, "show", path, "--env-file", envFile)
	require.NoError(t, err)

	assert.Contains(t, out, "Executing GET request to http://localhost:8080/users\n")
	assert.Contains(t, out, "----------------------------")
	assert.Contains(t, stderr, "warning: unresolved variable: token")
}

func TestShowCommand_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "requests:\n  - url: https://a\n")
	writeFile(t, dir, "b.json", `{"requests": [{"url": "https://b", "method": "DELETE"}]}`)
	writeFile(t, dir, "notes.txt", "ignored")

	out, _, err := executeCommand(t, "show", dir, "-o", "json", "--pick", "requests.#.method")
	require.NoError(t, err)
	assert.Equal(t, `["GET","DELETE"]`+"\n", out)
}

func TestShowCommand_EntryError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "api.yaml", "requests:\n  - name: broken\n  - url: https://ok\n")

	out, _, err := executeCommand(t, "show", path)
	require.Error(t, err)
	assert.Contains(t, out, "Executing GET request to https://ok\n")
	assert.Equal(t, ExitValidationError, exitCodeFor(err))
}

func TestShowCommand_EntryErrorInJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "api.yaml", "requests:\n  - name: broken\n  - url: https://ok\n")

	out, _, err := executeCommand(t, "show", path, "-o", "json")
	require.Error(t, err)
	assert.Equal(t, ExitValidationError, exitCodeFor(err))

	var doc struct {
		Requests []struct {
			URL string `json:"url"`
		} `json:"requests"`
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Requests, 1)
	assert.Equal(t, "https://ok", doc.Requests[0].URL)
	require.Len(t, doc.Errors, 1)
	assert.Contains(t, doc.Errors[0], `request "broken": validation failed: url cannot be empty`)
}

func TestShowCommand_EntryErrorInConsole(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "api.yaml", "requests:\n  - name: broken\n  - url: https://ok\n")

	out, _, err := executeCommand(t, "show", path)
	require.Error(t, err)
	assert.Contains(t, out, "Request executed successfully!\nError: "+path+`: request "broken": validation failed: url cannot be empty`)
}

func TestWatchFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "api.yaml", "requests:\n  - url: https://x\n")

	var out bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&out)
	c.SetErr(&out)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- watchFiles(ctx, c, []string{path}, func() {
			changes <- struct{}{}
		})
	}()

	// The watcher may not be registered yet, so keep writing until a change
	// is seen. The interval is longer than the debounce delay.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("requests:\n  - url: https://y\n"), 0644)
		select {
		case <-changes:
			return true
		default:
			return false
		}
	}, 10*time.Second, 2*WatchDebounceDelay)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watchFiles did not stop after cancel")
	}
}

func TestShowCommand_ConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "api.yaml", "requests:\n  - url: https://x\n")
	cfgPath := writeFile(t, dir, "reqforge.json", `{"headers": {"User-Agent": "reqforge"}, "timeout": 20}`)

	out, _, err := executeCommand(t, "show", path, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "  User-Agent: reqforge\n")
	assert.Contains(t, out, "Timeout: 20 seconds\n")
}

func TestShowCommand_BadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "api.yaml", "requests:\n  - url: https://x\n")
	cfgPath := writeFile(t, dir, "reqforge.json", "{broken")

	_, _, err := executeCommand(t, "show", path, "--config", cfgPath)
	require.Error(t, err)
	assert.Equal(t, ExitConfigError, exitCodeFor(err))
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.yaml", `
requests:
  - preset: json-post
    url: https://x
    body: '{"a": '
`)

	out, stderr, err := executeCommand(t, "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "Valid: "+good+" (1 requests)")
	assert.Contains(t, stderr, "body is not valid JSON")
}

func TestValidateCommand_SchemaError(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.yaml", "requests:\n  - url: https://x\n    retries: 3\n")

	_, stderr, err := executeCommand(t, "validate", bad)
	require.Error(t, err)
	assert.Contains(t, stderr, "Error in "+bad)

	var serr *recipe.SchemaError
	assert.True(t, errors.As(err, &serr))
	assert.Equal(t, ExitParseError, exitCodeFor(err))
}

func TestValidateCommand_NonStringKey(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.yaml", "requests:\n  - url: https://x\n    headers:\n      1: a\n")

	_, _, err := executeCommand(t, "validate", bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, recipe.ErrSyntax)
	assert.Equal(t, ExitParseError, exitCodeFor(err))
}

func TestShowCommand_HelpListsBuiltins(t *testing.T) {
	out, _, err := executeCommand(t, "show", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "base64, date, now, randomString, timestamp, urlEncode, uuid")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "reqforge version dev\n"))
}

func TestExitCodeFor(t *testing.T) {
	assert.Equal(t, ExitSuccess, exitCodeFor(nil))
	assert.Equal(t, ExitFailure, exitCodeFor(errors.New("boom")))
	assert.Equal(t, ExitParseError, exitCodeFor(recipe.ErrSyntax))
	assert.Equal(t, ExitConfigError, exitCodeFor(&configError{err: errors.New("x")}))
}

func TestCurlCommand_File(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "requests.sh", `curl https://api.example.com/users?page=2
curl --json '{"a": 1}' https://api.example.com/items
`)

	out, _, err := executeCommand(t, "curl", "--file", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Executing GET request to https://api.example.com/users\nQuery Parameters:\n  page=2\n")
	assert.Contains(t, out, "Executing POST request to https://api.example.com/items\n")
	assert.Contains(t, out, `Body: {"a": 1}`)
}

func TestCurlCommand_NoInput(t *testing.T) {
	_, _, err := executeCommand(t, "curl")
	require.Error(t, err)
	assert.Equal(t, ExitUsageError, exitCodeFor(err))
}

func TestCompletionCommand(t *testing.T) {
	out, _, err := executeCommand(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "reqforge")
}
