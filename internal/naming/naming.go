// Package naming translates between the storage layer's snake_case names and
// the GraphQL layer's camelCase names. The two functions are inverses over the
// names the catalog registers, which is what makes the field-name map
// authoritative in both directions.
package naming

import (
	"strings"

	"github.com/jinzhu/inflection"
)

// ToCamelCase converts snake_case to camelCase.
// Example: "opener_ip" -> "openerIp"
func ToCamelCase(s string) string {
	parts := strings.Split(s, "_")
	for i := 1; i < len(parts); i++ {
		if len(parts[i]) > 0 {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

// ToSnakeCase converts camelCase to snake_case.
// Example: "openerIp" -> "opener_ip"
func ToSnakeCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ToPascalCase converts snake_case to PascalCase.
// Example: "landing_pages" -> "LandingPages"
func ToPascalCase(s string) string {
	parts := strings.Split(s, "_")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, "")
}

// Pluralize converts a singular word to its plural form.
// Example: "company" -> "companies"
func Pluralize(word string) string {
	return inflection.Plural(word)
}

// Singularize converts a plural word to its singular form.
func Singularize(word string) string {
	return inflection.Singular(word)
}
