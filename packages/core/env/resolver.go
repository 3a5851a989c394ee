package env

import (
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/abdul-hamid-achik/reqforge/packages/builtin"
)

var variablePattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// WarnFunc is a function type for handling warnings
type WarnFunc func(format string, args ...any)

// Resolver expands {{...}} placeholders. Supported forms:
//
//	{{name}}       user variable
//	{{$NAME}}      process environment variable
//	{{fn(args)}}   builtin function
//
// Placeholders that cannot be resolved are left as-is and reported to the
// WarnFunc, if one is set.
type Resolver struct {
	mu        sync.RWMutex
	variables map[string]string
	funcs     *builtin.Registry
	warnFunc  WarnFunc
}

func NewResolver() *Resolver {
	return &Resolver{
		variables: make(map[string]string),
		funcs:     builtin.NewRegistry(),
	}
}

// SetWarnFunc sets a function to be called when warnings occur (e.g., unresolved variables)
func (r *Resolver) SetWarnFunc(fn WarnFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnFunc = fn
}

func (r *Resolver) warn(format string, args ...any) {
	r.mu.RLock()
	fn := r.warnFunc
	r.mu.RUnlock()
	if fn != nil {
		fn(format, args...)
	}
}

func (r *Resolver) SetVariables(vars map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, v := range vars {
		r.variables[k] = v
	}
}

func (r *Resolver) SetVariable(name, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.variables[name] = value
}

func (r *Resolver) GetVariable(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.variables[name]
	return v, ok
}

func (r *Resolver) Resolve(input string) string {
	return variablePattern.ReplaceAllStringFunc(input, func(match string) string {
		expr := strings.TrimSpace(match[2 : len(match)-2])

		if strings.HasPrefix(expr, "$") {
			envVar := expr[1:]
			if val, ok := os.LookupEnv(envVar); ok {
				return val
			}
			r.warn("unresolved environment variable: $%s", envVar)
			return match
		}

		if strings.Contains(expr, "(") {
			result, ok, err := r.funcs.Call(expr)
			if err != nil {
				r.warn("function call %s failed: %v", expr, err)
				return match
			}
			if ok {
				return result
			}
			r.warn("unresolved function call: %s", expr)
			return match
		}

		if val, ok := r.GetVariable(expr); ok {
			return val
		}

		r.warn("unresolved variable: %s", expr)
		return match
	})
}

func (r *Resolver) ResolveAll(values map[string]string) map[string]string {
	result := make(map[string]string, len(values))
	for k, v := range values {
		result[k] = r.Resolve(v)
	}
	return result
}

// HasUnresolved reports whether input still contains a placeholder after
// resolution would run, without emitting warnings.
func (r *Resolver) HasUnresolved(input string) bool {
	for _, m := range variablePattern.FindAllStringSubmatch(input, -1) {
		expr := strings.TrimSpace(m[1])
		switch {
		case strings.HasPrefix(expr, "$"):
			if _, ok := os.LookupEnv(expr[1:]); !ok {
				return true
			}
		case strings.Contains(expr, "("):
			if _, ok, err := r.funcs.Call(expr); !ok || err != nil {
				return true
			}
		default:
			if _, ok := r.GetVariable(expr); !ok {
				return true
			}
		}
	}
	return false
}

func (r *Resolver) Clone() *Resolver {
	r.mu.RLock()
	defer r.mu.RUnlock()
	clone := NewResolver()
	clone.warnFunc = r.warnFunc
	for k, v := range r.variables {
		clone.variables[k] = v
	}
	return clone
}
