package cmd

import (
	"errors"

	"github.com/abdul-hamid-achik/reqforge/packages/http"
	"github.com/abdul-hamid-achik/reqforge/packages/recipe"
)

// Exit codes for reqforge CLI
const (
	// ExitSuccess indicates every request was built and displayed
	ExitSuccess = 0

	// ExitFailure indicates an error not covered by a more specific code
	ExitFailure = 1

	// ExitParseError indicates a recipe file that is not valid YAML/JSON or fails the schema
	ExitParseError = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitValidationError indicates a request could not be built (e.g. empty URL)
	ExitValidationError = 5

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

// configError marks failures loading the config or env file.
type configError struct {
	err error
}

func (e *configError) Error() string {
	return e.err.Error()
}

func (e *configError) Unwrap() error {
	return e.err
}

// usageError marks bad flag values that cobra itself does not catch.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var cerr *configError
	var uerr *usageError
	var serr *recipe.SchemaError
	var verr *http.ValidationError

	switch {
	case errors.As(err, &uerr):
		return ExitUsageError
	case errors.As(err, &cerr):
		return ExitConfigError
	case errors.As(err, &serr), errors.Is(err, recipe.ErrSyntax):
		return ExitParseError
	case errors.As(err, &verr):
		return ExitValidationError
	default:
		return ExitFailure
	}
}
