// Package namespace resolves user-supplied, possibly partial package fragments into
// fully-qualified Java package names.
package namespace

import (
	"strings"
	"sync"
)

// Separator delimits namespace segments.
const Separator = "."

// Conventional sub-packages below the base namespace.
const (
	SubModel      = "model"
	SubController = "controller"
	SubService    = "service"
	SubRepository = "repository"
	SubSecurity   = "security"
)

// Resolve returns the fully-qualified namespace for input.
//
//   - blank input: base + "." + defaultSub
//   - input containing a separator: already absolute, returned trimmed
//   - anything else: a relative segment, base + "." + input
func Resolve(input, defaultSub, base string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return Join(base, defaultSub)
	}
	if IsAbsolute(input) {
		return input
	}
	return Join(base, input)
}

// IsAbsolute reports whether ns is treated as fully qualified.
func IsAbsolute(ns string) bool {
	return strings.Contains(ns, Separator)
}

// Join concatenates namespace segments, skipping empty ones.
func Join(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s = strings.Trim(s, Separator+" "); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, Separator)
}

// ReplaceLastSegment swaps a trailing segment: ("com.acme.model", "model", "repository")
// gives "com.acme.repository". Namespaces that do not end in from are returned unchanged.
func ReplaceLastSegment(ns, from, to string) string {
	suffix := Separator + from
	if !strings.HasSuffix(ns, suffix) {
		return ns
	}
	return strings.TrimSuffix(ns, suffix) + Separator + to
}

// Sibling replaces the last segment of ns with name: ("com.acme.security", "controller")
// gives "com.acme.controller". A single-segment ns yields name itself.
func Sibling(ns, name string) string {
	if i := strings.LastIndex(ns, Separator); i >= 0 {
		return ns[:i] + Separator + name
	}
	return name
}

// ToPath converts a namespace to a slash-separated relative path.
func ToPath(ns string) string {
	return strings.ReplaceAll(ns, Separator, "/")
}

// BaseProvider yields the detected base namespace. The pipeline calls it lazily and at
// most once per command.
type BaseProvider func() string

// Once wraps detect so the underlying detection runs a single time; every later call
// returns the cached value.
func Once(detect func() string) BaseProvider {
	var (
		once sync.Once
		base string
	)
	return func() string {
		once.Do(func() {
			base = detect()
		})
		return base
	}
}

// Resolver resolves namespaces for one command invocation against a shared base.
type Resolver struct {
	base BaseProvider
}

// NewResolver creates a Resolver. detect is wrapped with Once.
func NewResolver(detect func() string) *Resolver {
	return &Resolver{base: Once(detect)}
}

// Base returns the detected base namespace.
func (r *Resolver) Base() string {
	return r.base()
}

// Resolve resolves input against the shared base. The detector is not consulted when
// input is already absolute.
func (r *Resolver) Resolve(input, defaultSub string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed != "" && IsAbsolute(trimmed) {
		return trimmed
	}
	return Resolve(trimmed, defaultSub, r.base())
}
