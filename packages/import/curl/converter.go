// Package curl turns curl command lines into request builders.
package curl

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/abdul-hamid-achik/reqforge/packages/http"
)

// Command is a parsed curl invocation. The builder is returned unbuilt so
// callers can adjust it before calling Build.
type Command struct {
	Name    string
	Builder *http.Builder
}

// Parse parses a single curl command line.
//
// Supported options: -X/--request, -H/--header, -d/--data/--data-raw/--data-binary,
// --json, -G/--get, -A/--user-agent, -e/--referer, -b/--cookie, -m/--max-time.
// Query parameters in the URL are moved into the builder's query parameters.
// Other options are skipped.
func Parse(curlCmd string) (*Command, error) {
	return ParseArgs(tokenize(curlCmd))
}

// ParseArgs is Parse for a command line that the shell already split into
// arguments. A leading "curl" argument is ignored.
func ParseArgs(tokens []string) (*Command, error) {
	if len(tokens) > 0 && tokens[0] == "curl" {
		tokens = tokens[1:]
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no URL specified")
	}

	method := ""
	rawURL := ""
	var data []string
	useGet := false
	b := http.NewBuilder()

	next := func(i int) (string, error) {
		if i+1 >= len(tokens) {
			return "", fmt.Errorf("missing value for %s", tokens[i])
		}
		return tokens[i+1], nil
	}

	for i := 0; i < len(tokens); i++ {
		token := tokens[i]

		switch token {
		case "-X", "--request":
			v, err := next(i)
			if err != nil {
				return nil, err
			}
			method = strings.ToUpper(v)
			i++

		case "-H", "--header":
			v, err := next(i)
			if err != nil {
				return nil, err
			}
			if key, value, found := strings.Cut(v, ":"); found {
				b.WithHeader(strings.TrimSpace(key), strings.TrimSpace(value))
			}
			i++

		case "-d", "--data", "--data-raw", "--data-binary":
			v, err := next(i)
			if err != nil {
				return nil, err
			}
			data = append(data, v)
			i++

		case "--json":
			v, err := next(i)
			if err != nil {
				return nil, err
			}
			data = append(data, v)
			preset, _ := http.LookupPreset("json-post")
			preset(b)
			i++

		case "-G", "--get":
			useGet = true

		case "-A", "--user-agent":
			v, err := next(i)
			if err != nil {
				return nil, err
			}
			b.WithHeader("User-Agent", v)
			i++

		case "-e", "--referer":
			v, err := next(i)
			if err != nil {
				return nil, err
			}
			b.WithHeader("Referer", v)
			i++

		case "-b", "--cookie":
			v, err := next(i)
			if err != nil {
				return nil, err
			}
			b.WithHeader("Cookie", v)
			i++

		case "-m", "--max-time":
			v, err := next(i)
			if err != nil {
				return nil, err
			}
			seconds, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid %s value %q", token, v)
			}
			b.WithTimeout(int(seconds))
			i++

		default:
			if strings.HasPrefix(token, "-") {
				// Skip unknown flags along with a value that does not look like a URL
				if i+1 < len(tokens) && !strings.HasPrefix(tokens[i+1], "-") && !isURL(tokens[i+1]) {
					i++
				}
				continue
			}
			if rawURL == "" && isURL(token) {
				rawURL = token
			}
		}
	}

	if rawURL == "" {
		return nil, fmt.Errorf("no URL found in curl command")
	}
	b.WithURL(splitQuery(rawURL, b))

	switch {
	case useGet:
		for _, d := range data {
			addFormQuery(d, b)
		}
	case len(data) > 0:
		b.WithBody(strings.Join(data, "&"))
		if method == "" {
			method = http.MethodPost
		}
	}
	if method == "" {
		method = http.MethodGet
	}
	b.WithMethod(method)

	return &Command{
		Name:    generateName(rawURL, method),
		Builder: b,
	}, nil
}

// ParseFile parses a file of curl commands. Blank lines and # comments are
// skipped; a trailing backslash continues a command on the next line.
func ParseFile(path string) ([]*Command, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var lines []string
	var current strings.Builder
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasSuffix(line, "\\") {
			current.WriteString(strings.TrimSuffix(line, "\\"))
			current.WriteString(" ")
			continue
		}

		current.WriteString(line)
		lines = append(lines, current.String())
		current.Reset()
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if current.Len() > 0 {
		lines = append(lines, current.String())
	}

	commands := make([]*Command, 0, len(lines))
	for i, line := range lines {
		c, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("failed to parse command %d: %w", i+1, err)
		}
		commands = append(commands, c)
	}
	return commands, nil
}

// splitQuery moves the query string of rawURL into b and returns the URL
// without it. URLs that do not parse are returned unchanged.
func splitQuery(rawURL string, b *http.Builder) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.RawQuery == "" {
		return rawURL
	}
	for k, vs := range u.Query() {
		if len(vs) > 0 {
			b.WithQueryParam(k, vs[len(vs)-1])
		}
	}
	u.RawQuery = ""
	return u.String()
}

func addFormQuery(data string, b *http.Builder) {
	values, err := url.ParseQuery(data)
	if err != nil {
		return
	}
	for k, vs := range values {
		if len(vs) > 0 {
			b.WithQueryParam(k, vs[len(vs)-1])
		}
	}
}

// tokenize splits a curl command into tokens, respecting quotes.
func tokenize(cmd string) []string {
	var tokens []string
	var current strings.Builder
	inSingleQuote := false
	inDoubleQuote := false
	escaped := false

	for _, r := range cmd {
		if escaped {
			current.WriteRune(r)
			escaped = false
			continue
		}

		switch r {
		case '\\':
			if inSingleQuote {
				current.WriteRune(r)
			} else {
				escaped = true
			}
		case '\'':
			if inDoubleQuote {
				current.WriteRune(r)
			} else {
				inSingleQuote = !inSingleQuote
			}
		case '"':
			if inSingleQuote {
				current.WriteRune(r)
			} else {
				inDoubleQuote = !inDoubleQuote
			}
		case ' ', '\t', '\n':
			if inSingleQuote || inDoubleQuote {
				current.WriteRune(r)
			} else if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "{{")
}

var pathPattern = regexp.MustCompile(`https?://[^/]+(/[^?#]*)?`)

// generateName derives a request name such as "get_users" from the method and URL path.
func generateName(rawURL, method string) string {
	path := ""
	if m := pathPattern.FindStringSubmatch(rawURL); len(m) > 1 {
		path = m[1]
	}

	path = strings.Trim(path, "/")
	if path == "" {
		path = "root"
	}
	path = strings.NewReplacer("/", "_", "-", "_").Replace(path)

	return strings.ToLower(method) + "_" + path
}
