// Package builtin provides functions usable inside {{...}} placeholders in
// reqforge recipe files.
//
// Available functions:
//   - uuid(): random UUID v4
//   - now(): current UTC time in RFC 3339
//   - timestamp(): current Unix timestamp
//   - date(layout): current UTC date, Go layout, default 2006-01-02
//   - base64(value): base64 encode a string
//   - urlEncode(value): query-escape a string
//   - randomString(length): random alphanumeric string
package builtin
