package recipe

import (
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/reqforge/packages/core/env"
	"github.com/abdul-hamid-achik/reqforge/packages/http"
	"github.com/tidwall/gjson"
)

// Lint reports suspicious but buildable requests: JSON content types with a
// body that is not valid JSON, and placeholders that r cannot resolve in the
// method, URL, header values, query values or body.
func Lint(entries []Entry, r *env.Resolver) []string {
	if r == nil {
		r = env.NewResolver()
	}

	var warnings []string
	for _, e := range entries {
		req := e.Request
		unresolved := func(field, value string) {
			if r.HasUnresolved(value) {
				warnings = append(warnings, fmt.Sprintf("%s: %s has unresolved placeholders", e.Name, field))
			}
		}

		if ct, ok := req.Header("Content-Type"); ok && strings.HasPrefix(ct, http.ContentTypeJSON) {
			if body := req.Body(); body != "" && !gjson.Valid(body) {
				warnings = append(warnings, fmt.Sprintf("%s: body is not valid JSON", e.Name))
			}
		}

		unresolved("method", req.Method())
		unresolved("url", req.URL())
		for _, k := range req.HeaderKeys() {
			v, _ := req.Header(k)
			unresolved("header "+k, v)
		}
		for _, k := range req.QueryKeys() {
			v, _ := req.QueryParam(k)
			unresolved("query parameter "+k, v)
		}
		unresolved("body", req.Body())
	}
	return warnings
}
