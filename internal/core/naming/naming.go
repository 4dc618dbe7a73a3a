// Package naming derives the conventional secondary names (instance names, resource
// paths, table names, interface/implementation pairs) from a primary entity name.
//
// Every function is total: degenerate input yields a best-effort value, never an error.
package naming

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ImplSuffix is appended to a service name to form its implementation class.
const ImplSuffix = "Impl"

// FallbackEntitySuffix is appended when an artifact name does not carry the expected suffix.
const FallbackEntitySuffix = "Model"

var camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)

// InstanceName lower-cases the first character: "UserService" -> "userService".
func InstanceName(name string) string {
	if name == "" {
		return name
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:]
}

// Capitalize upper-cases the first character: "price" -> "Price".
func Capitalize(name string) string {
	if name == "" {
		return name
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// ResourcePath is the REST collection segment for a model: "Order" -> "orders".
// Pluralization is a plain "s" suffix; irregular plurals are not handled.
func ResourcePath(modelName string) string {
	return InstanceName(modelName) + "s"
}

// TableName converts a class name to a pluralized snake_case table name.
//
//	User -> users, Category -> categories, Address -> addresses, OrderItem -> order_items
func TableName(className string) string {
	snake := strings.ToLower(camelBoundary.ReplaceAllString(className, "${1}_${2}"))
	if snake == "" {
		return snake
	}

	switch {
	case strings.HasSuffix(snake, "y"):
		return snake[:len(snake)-1] + "ies"
	case strings.HasSuffix(snake, "s"),
		strings.HasSuffix(snake, "sh"),
		strings.HasSuffix(snake, "ch"),
		strings.HasSuffix(snake, "x"),
		strings.HasSuffix(snake, "z"):
		return snake + "es"
	default:
		return snake + "s"
	}
}

// InferAssociatedEntity strips suffix ("Controller", "Service", "Repository") from an
// artifact name to recover the entity it serves. Names without the suffix get "Model"
// appended as a placeholder. A name that is only the suffix is never stripped to an empty
// entity: "Controller" yields "ControllerModel".
func InferAssociatedEntity(artifactName, suffix string) string {
	if suffix != "" && strings.HasSuffix(artifactName, suffix) && len(artifactName) > len(suffix) {
		return strings.TrimSuffix(artifactName, suffix)
	}
	return artifactName + FallbackEntitySuffix
}

// InterfaceImplPair returns the service interface name and its implementation class name.
func InterfaceImplPair(serviceName string) (iface, impl string) {
	return serviceName, serviceName + ImplSuffix
}

// ToPascalCase converts a string to PascalCase: "my-app" -> "MyApp".
func ToPascalCase(s string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = Capitalize(strings.ToLower(word))
	}
	return strings.Join(words, "")
}

var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

// ToKebabCase lower-cases s and collapses every run of non-alphanumerics to "-":
// "My Shop_API" -> "my-shop-api".
func ToKebabCase(s string) string {
	return strings.Trim(nonAlnumRun.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

// splitWords splits a string into words (handles camelCase, PascalCase, snake_case, kebab-case).
func splitWords(s string) []string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, s)

	var result strings.Builder
	var prev rune
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) && !unicode.IsSpace(prev) && !unicode.IsUpper(prev) {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
		prev = r
	}

	return strings.Fields(result.String())
}
