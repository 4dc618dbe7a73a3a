// Package patch implements the insert-before-anchor text splice used to update files that
// were generated earlier.
package patch

import "strings"

// Spec describes one splice.
type Spec struct {
	// Anchor is the marker the snippet is inserted in front of. The last occurrence wins
	// unless First is set.
	Anchor string
	First  bool
	// Snippet is the text to insert.
	Snippet string
	// Guards are substrings whose joint presence means the patch was already applied.
	Guards []string
	// Imports are full import lines added after the package declaration when missing.
	Imports []string
}

// Outcome classifies the result of applying a Spec.
type Outcome string

const (
	Applied       Outcome = "applied"
	Unchanged     Outcome = "unchanged"
	AnchorMissing Outcome = "anchor-missing"
)

// IsApplied reports whether all guards already hold in content. An empty guard list never
// holds.
func IsApplied(content string, guards []string) bool {
	if len(guards) == 0 {
		return false
	}
	for _, g := range guards {
		if !strings.Contains(content, g) {
			return false
		}
	}
	return true
}

// Apply splices s.Snippet into content immediately before the anchor.
func Apply(content string, s Spec) (string, Outcome) {
	if IsApplied(content, s.Guards) {
		return content, Unchanged
	}
	idx := strings.LastIndex(content, s.Anchor)
	if s.First {
		idx = strings.Index(content, s.Anchor)
	}
	if s.Anchor == "" || idx < 0 {
		return content, AnchorMissing
	}

	out := content[:idx] + s.Snippet + content[idx:]
	for _, imp := range s.Imports {
		out = addImport(out, imp)
	}
	return out, Applied
}

// addImport inserts line after the first package declaration unless it is already present.
func addImport(content, line string) string {
	if strings.Contains(content, line) {
		return content
	}
	pkg := strings.Index(content, "package ")
	if pkg < 0 {
		return line + "\n" + content
	}
	eol := strings.IndexByte(content[pkg:], '\n')
	if eol < 0 {
		return content + "\n\n" + line + "\n"
	}
	at := pkg + eol + 1
	return content[:at] + "\n" + line + content[at:]
}
