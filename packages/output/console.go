package output

import (
	"fmt"
	"io"
	"os"

	"github.com/abdul-hamid-achik/reqforge/packages/http"
	"github.com/fatih/color"
)

// Divider separates consecutive requests in console output.
const Divider = "----------------------------"

type ConsoleFormatter struct {
	writer  io.Writer
	verbose bool
	noColor bool

	success *color.Color
	accent  *color.Color
	failure *color.Color
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.success = color.New(color.FgGreen)
	f.accent = color.New(color.FgCyan)
	f.failure = color.New(color.FgRed)
	if f.noColor {
		f.success.DisableColor()
		f.accent.DisableColor()
		f.failure.DisableColor()
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

// WithVerbose prints the request name above each request.
func WithVerbose(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

// FormatRequest prints a request the way executing it would be reported.
// Query parameters and body are only printed when present; headers and
// timeout are always printed.
func (f *ConsoleFormatter) FormatRequest(name string, req *http.Request) {
	if f.verbose && name != "" {
		fmt.Fprintf(f.writer, "%s\n", f.accent.Sprint("# "+name))
	}

	fmt.Fprintf(f.writer, "Executing %s request to %s\n", req.Method(), req.URL())

	if keys := req.QueryKeys(); len(keys) > 0 {
		fmt.Fprintf(f.writer, "Query Parameters:\n")
		for _, k := range keys {
			v, _ := req.QueryParam(k)
			fmt.Fprintf(f.writer, "  %s=%s\n", k, v)
		}
	}

	fmt.Fprintf(f.writer, "Headers:\n")
	for _, k := range req.HeaderKeys() {
		v, _ := req.Header(k)
		fmt.Fprintf(f.writer, "  %s: %s\n", k, v)
	}

	if body := req.Body(); body != "" {
		fmt.Fprintf(f.writer, "Body: %s\n", body)
	}

	fmt.Fprintf(f.writer, "Timeout: %d seconds\n", req.Timeout())
	fmt.Fprintf(f.writer, "%s\n", f.success.Sprint("Request executed successfully!"))
}

func (f *ConsoleFormatter) FormatDivider() {
	fmt.Fprintf(f.writer, "\n%s\n\n", f.accent.Sprint(Divider))
}

func (f *ConsoleFormatter) FormatError(err error) {
	fmt.Fprintf(f.writer, "%s %v\n", f.failure.Sprint("Error:"), err)
}
