// Package fields parses the field mini-format and derives the per-field annotation
// fragments and imports used by generated data classes.
package fields

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/example/springscaffold/internal/models"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Warning reports a token that was dropped during parsing.
type Warning struct {
	Token  string
	Reason string
}

func (w Warning) String() string {
	return fmt.Sprintf("ignoring field %q: %s", w.Token, w.Reason)
}

// Parse parses field tokens given either as separate arguments or as a comma-separated
// --fields value. Format: "name:type" optionally followed by ":modifier" segments
// (required, unique, notnull, max=N, min=V, maxval=V, pattern=REGEX). A plain token must
// split into exactly two non-empty parts; modifiers are the only accepted further parts.
//
// Each positional argument is one token and is never split on commas. In the --fields
// value a comma inside an open pattern= modifier belongs to the expression.
//
// Malformed tokens never fail the call: each is dropped and reported as a Warning while the
// remaining tokens are kept in input order.
func Parse(positional []string, fieldsFlag string) ([]models.FieldDescriptor, []Warning) {
	var tokens []string
	for _, arg := range positional {
		if arg = strings.TrimSpace(arg); arg != "" {
			tokens = append(tokens, arg)
		}
	}
	tokens = append(tokens, splitList(fieldsFlag)...)

	var (
		out      []models.FieldDescriptor
		warnings []Warning
	)
	for _, tok := range tokens {
		field, err := ParseToken(tok)
		if err != nil {
			warnings = append(warnings, Warning{Token: tok, Reason: err.Error()})
			continue
		}
		out = append(out, field)
	}
	return out, warnings
}

var tokenStart = regexp.MustCompile(`^\s*[A-Za-z_$][A-Za-z0-9_$]*\s*:`)

// splitList splits a comma-separated token list, skipping empty entries. A fragment that
// follows a token with a pattern= modifier is glued back onto it unless the fragment
// itself starts a new "name:" token.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if n := len(out); n > 0 && hasPattern(out[n-1]) && !tokenStart.MatchString(part) {
			out[n-1] += "," + part
			continue
		}
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	for i := range out {
		out[i] = strings.TrimSpace(out[i])
	}
	return out
}

func hasPattern(token string) bool {
	return strings.Contains(token, ":pattern=")
}

// ParseToken parses a single field token.
func ParseToken(token string) (models.FieldDescriptor, error) {
	parts := strings.Split(strings.TrimSpace(token), ":")
	if len(parts) < 2 {
		return models.FieldDescriptor{}, fmt.Errorf("expected 'name:type'")
	}

	name := strings.TrimSpace(parts[0])
	typ := strings.TrimSpace(parts[1])
	if name == "" {
		return models.FieldDescriptor{}, fmt.Errorf("empty field name")
	}
	if typ == "" {
		return models.FieldDescriptor{}, fmt.Errorf("empty field type")
	}
	if !identifierPattern.MatchString(name) {
		return models.FieldDescriptor{}, fmt.Errorf("field name must be a Java identifier")
	}

	field := models.NewField(name, typ)
	mods := parts[2:]
	for i := 0; i < len(mods); i++ {
		mod := strings.TrimSpace(mods[i])
		key, value, hasValue := strings.Cut(mod, "=")
		switch key {
		case "required":
			field.Required = true
		case "notnull":
			field.Nullable = false
		case "unique":
			field.Unique = true
		case "max":
			n, err := strconv.Atoi(value)
			if !hasValue || err != nil || n <= 0 {
				return models.FieldDescriptor{}, fmt.Errorf("max must be a positive integer")
			}
			field.MaxLength = &n
		case "min":
			if !hasValue || value == "" {
				return models.FieldDescriptor{}, fmt.Errorf("min requires a value")
			}
			field.MinValue = &value
		case "maxval":
			if !hasValue || value == "" {
				return models.FieldDescriptor{}, fmt.Errorf("maxval requires a value")
			}
			field.MaxValue = &value
		case "pattern":
			// The expression may itself contain ':'; it consumes the rest of the token.
			pattern := strings.Join(append([]string{value}, mods[i+1:]...), ":")
			if !hasValue || pattern == "" {
				return models.FieldDescriptor{}, fmt.Errorf("pattern requires a value")
			}
			field.Pattern = &pattern
			i = len(mods)
		case "":
			return models.FieldDescriptor{}, fmt.Errorf("empty modifier")
		default:
			return models.FieldDescriptor{}, fmt.Errorf("unknown modifier %q", key)
		}
	}
	return field, nil
}
