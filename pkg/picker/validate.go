package picker

import (
	"fmt"
	"strings"
)

// Defaults for Limits.
const (
	DefaultMaxSizeBytes = int64(10 * 1024 * 1024) // 10 MB
	DefaultAccept       = "image/*"
)

// Limits configures file validation.
type Limits struct {
	// MaxSizeBytes is the maximum allowed file size.
	MaxSizeBytes int64

	// Accept is a comma-separated list of accepted type patterns:
	// exact MIME ("image/png"), wildcard subtype ("image/*"), universal
	// wildcard ("*/*"), or filename extension (".png", case-insensitive).
	Accept string
}

// withDefaults fills zero fields with the package defaults.
func (l Limits) withDefaults() Limits {
	if l.MaxSizeBytes <= 0 {
		l.MaxSizeBytes = DefaultMaxSizeBytes
	}
	if l.Accept == "" {
		l.Accept = DefaultAccept
	}
	return l
}

// Validate checks a candidate file against the limits. It returns nil when
// the file is acceptable, or a typed error naming the first failed check.
// Size is checked before type. No side effects.
func Validate(f *File, limits Limits) *Error {
	limits = limits.withDefaults()

	if f.Size > limits.MaxSizeBytes {
		return &Error{
			Kind:    KindTooLarge,
			Message: fmt.Sprintf("%s is larger than the %d byte limit", f.Name, limits.MaxSizeBytes),
			File:    f,
		}
	}
	if !matchesAccept(limits.Accept, f.ContentType, f.Name) {
		return &Error{
			Kind:    KindInvalidType,
			Message: fmt.Sprintf("%s is not an accepted file type", f.Name),
			File:    f,
		}
	}
	return nil
}

// matchesAccept reports whether any pattern in the comma-separated accept
// list matches the declared content type or the filename.
func matchesAccept(accept, contentType, filename string) bool {
	for _, pattern := range strings.Split(accept, ",") {
		if matchPattern(strings.TrimSpace(pattern), contentType, filename) {
			return true
		}
	}
	return false
}

// matchPattern matches a single accept pattern.
func matchPattern(pattern, contentType, filename string) bool {
	if pattern == "" {
		return false
	}

	// Extension pattern: case-insensitive filename suffix.
	if strings.HasPrefix(pattern, ".") {
		return strings.HasSuffix(strings.ToLower(filename), strings.ToLower(pattern))
	}

	if pattern == "*/*" {
		return true
	}

	// Wildcard subtype: "image/*" matches any image type.
	if base, ok := strings.CutSuffix(pattern, "/*"); ok {
		return strings.HasPrefix(strings.ToLower(contentType), strings.ToLower(base)+"/")
	}

	// Exact MIME match. MIME types compare case-insensitively.
	return strings.EqualFold(contentType, pattern)
}
