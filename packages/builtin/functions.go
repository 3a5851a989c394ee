package builtin

import (
	"encoding/base64"
	"fmt"
	"math/rand"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Func computes a placeholder value from its string arguments.
type Func func(args []string) (string, error)

type Registry struct {
	funcs map[string]Func
}

func NewRegistry() *Registry {
	r := &Registry{
		funcs: make(map[string]Func),
	}
	r.registerDefaults()
	return r
}

func (r *Registry) registerDefaults() {
	r.register("uuid", funcUUID)
	r.register("now", funcNow)
	r.register("timestamp", funcTimestamp)
	r.register("date", funcDate)
	r.register("base64", funcBase64)
	r.register("urlEncode", funcURLEncode)
	r.register("randomString", funcRandomString)
}

func (r *Registry) register(name string, fn Func) {
	r.funcs[name] = fn
}

// Names returns the registered function names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var funcCallPattern = regexp.MustCompile(`^(\w+)\((.*)\)$`)

// Call evaluates expressions of the form name(arg, "arg"). The boolean is
// false when expr is not a call to a registered function.
func (r *Registry) Call(expr string) (string, bool, error) {
	matches := funcCallPattern.FindStringSubmatch(expr)
	if matches == nil {
		return "", false, nil
	}

	fn, ok := r.funcs[matches[1]]
	if !ok {
		return "", false, nil
	}

	var args []string
	if matches[2] != "" {
		args = parseArgs(matches[2])
	}

	v, err := fn(args)
	if err != nil {
		return "", true, err
	}
	return v, true, nil
}

func parseArgs(s string) []string {
	var args []string
	var current strings.Builder
	inQuote := false
	quoteChar := byte(0)

	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case !inQuote && (ch == '"' || ch == '\''):
			inQuote = true
			quoteChar = ch
		case inQuote && ch == quoteChar:
			inQuote = false
			quoteChar = 0
		case !inQuote && ch == ',':
			args = append(args, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}

	if current.Len() > 0 {
		args = append(args, strings.TrimSpace(current.String()))
	}

	return args
}

func funcUUID(_ []string) (string, error) {
	return uuid.New().String(), nil
}

func funcNow(_ []string) (string, error) {
	return time.Now().UTC().Format(time.RFC3339), nil
}

func funcTimestamp(_ []string) (string, error) {
	return strconv.FormatInt(time.Now().Unix(), 10), nil
}

func funcDate(args []string) (string, error) {
	layout := "2006-01-02"
	if len(args) >= 1 && args[0] != "" {
		layout = args[0]
	}
	return time.Now().UTC().Format(layout), nil
}

func funcBase64(args []string) (string, error) {
	if len(args) < 1 {
		return "", nil
	}
	return base64.StdEncoding.EncodeToString([]byte(args[0])), nil
}

func funcURLEncode(args []string) (string, error) {
	if len(args) < 1 {
		return "", nil
	}
	return url.QueryEscape(args[0]), nil
}

const maxRandomStringLength = 1 << 16

func funcRandomString(args []string) (string, error) {
	length := 16
	if len(args) >= 1 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return "", fmt.Errorf("randomString() length %q is not a valid integer", args[0])
		}
		if v < 0 || v > maxRandomStringLength {
			return "", fmt.Errorf("randomString() length %d out of range [0, %d]", v, maxRandomStringLength)
		}
		length = v
	}
	return randomString(length, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"), nil
}

func randomString(length int, charset string) string {
	result := make([]byte, length)
	for i := range result {
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
