package fields

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/example/springscaffold/internal/models"
)

// Qualified imports for the toggles of a data class.
const (
	ImportPersistence = "jakarta.persistence.*"
	ImportValidation  = "jakarta.validation.constraints.*"
	ImportObjects     = "java.util.Objects"
)

// LombokImports are added when boilerplate reduction is enabled.
var LombokImports = []string{"lombok.Data", "lombok.NoArgsConstructor", "lombok.AllArgsConstructor"}

var typeImports = map[string]string{
	"BigDecimal":    "java.math.BigDecimal",
	"BigInteger":    "java.math.BigInteger",
	"LocalDate":     "java.time.LocalDate",
	"LocalDateTime": "java.time.LocalDateTime",
	"LocalTime":     "java.time.LocalTime",
	"Instant":       "java.time.Instant",
	"Date":          "java.util.Date",
	"Timestamp":     "java.sql.Timestamp",
	"List":          "java.util.List",
	"Set":           "java.util.Set",
	"Map":           "java.util.Map",
}

var numericTypes = map[string]bool{
	"Integer": true, "Long": true, "Double": true, "Float": true,
	"BigDecimal": true, "BigInteger": true,
	"int": true, "long": true, "double": true, "float": true,
}

// IsString reports whether typ is the Java string type.
func IsString(typ string) bool {
	return typ == "String"
}

// IsNumeric reports whether typ accepts @Min/@Max constraints.
func IsNumeric(typ string) bool {
	return numericTypes[typ]
}

// RequiredImport returns the qualified import for typ, or "" when none is needed.
// Generic types resolve by their raw type: "List<String>" imports java.util.List.
func RequiredImport(typ string) string {
	if i := strings.IndexByte(typ, '<'); i > 0 {
		typ = typ[:i]
	}
	return typeImports[strings.TrimSpace(typ)]
}

// ColumnAttributes returns the non-default @Column attributes of f, in the fixed order
// nullable, unique, length.
func ColumnAttributes(f models.FieldDescriptor) []string {
	var attrs []string
	if !f.Nullable {
		attrs = append(attrs, "nullable = false")
	}
	if f.Unique {
		attrs = append(attrs, "unique = true")
	}
	if f.MaxLength != nil && IsString(f.Type) {
		attrs = append(attrs, fmt.Sprintf("length = %d", *f.MaxLength))
	}
	return attrs
}

// ColumnAnnotation returns the @Column annotation for f, or "" when every attribute is at
// its default.
func ColumnAnnotation(f models.FieldDescriptor) string {
	attrs := ColumnAttributes(f)
	if len(attrs) == 0 {
		return ""
	}
	return "@Column(" + strings.Join(attrs, ", ") + ")"
}

// ValidationAnnotations returns the Bean Validation annotations for f in emission order.
func ValidationAnnotations(f models.FieldDescriptor) []string {
	var out []string
	if f.Required {
		out = append(out, "@NotNull")
	}
	if IsString(f.Type) {
		if f.Required {
			out = append(out, "@NotBlank")
		}
		if f.MaxLength != nil {
			out = append(out, fmt.Sprintf("@Size(max = %d)", *f.MaxLength))
		}
		if f.Pattern != nil {
			out = append(out, fmt.Sprintf("@Pattern(regexp = %s)", JavaString(*f.Pattern)))
		}
	}
	if IsNumeric(f.Type) {
		if f.MinValue != nil {
			out = append(out, fmt.Sprintf("@Min(%s)", *f.MinValue))
		}
		if f.MaxValue != nil {
			out = append(out, fmt.Sprintf("@Max(%s)", *f.MaxValue))
		}
	}
	return out
}

// ImportToggles selects the conditional imports of a data class.
type ImportToggles struct {
	Persistence bool
	Validation  bool
	Lombok      bool
}

// CollectImports returns the sorted, de-duplicated imports required by fields and toggles.
func CollectImports(fields []models.FieldDescriptor, toggles ImportToggles) []string {
	set := make(map[string]struct{})
	for _, f := range fields {
		if imp := RequiredImport(f.Type); imp != "" {
			set[imp] = struct{}{}
		}
	}
	if toggles.Persistence {
		set[ImportPersistence] = struct{}{}
	}
	if toggles.Validation {
		set[ImportValidation] = struct{}{}
	}
	if toggles.Lombok {
		for _, imp := range LombokImports {
			set[imp] = struct{}{}
		}
	} else {
		set[ImportObjects] = struct{}{}
	}

	out := make([]string, 0, len(set))
	for imp := range set {
		out = append(out, imp)
	}
	sort.Strings(out)
	return out
}

// JavaString quotes s as a Java string literal. Control characters without a short escape
// become \uXXXX; line terminators always use \n and \r since unicode escapes are decoded
// before string literals are lexed.
func JavaString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 || r == 0x7f || !unicode.IsPrint(r) && r <= 0xffff {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
