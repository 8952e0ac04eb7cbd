package supacamel

import (
	"strings"
	"unicode"
)

var (
	// DefaultColumnNamer is the default function used to convert
	// caller-side column names and payload keys to their backing form.
	// Default is ToSnake.
	DefaultColumnNamer func(string) string = ToSnake

	// DefaultResultNamer is the default function used to convert result
	// row keys back to the caller form. Default is ToCamel.
	DefaultResultNamer func(string) string = ToCamel
)

// verbatimTokens mark column references that embed PostgREST syntax and
// must never be case-converted.
var verbatimTokens = []string{"(", ")", ".", "->", "::"}

// Convert a "camelCase" word to its "snake_case" (underscore) form. For
// example, "userId" will be converted to "user_id". Word boundaries are
// detected purely by letter case; consecutive capitals are split one by one,
// so "userID" becomes "user_i_d".
func ToSnake(str string) string { // from govalidator
	var output []rune
	var segment []rune
	for _, r := range str {
		// not treat number as separate segment
		if !unicode.IsLower(r) && string(r) != "_" && !unicode.IsNumber(r) {
			output = addSegment(output, segment)
			segment = nil
		}
		segment = append(segment, unicode.ToLower(r))
	}
	output = addSegment(output, segment)
	return string(output)
}

func addSegment(inrune, segment []rune) []rune { // from govalidator
	if len(segment) == 0 {
		return inrune
	}
	if len(inrune) != 0 {
		inrune = append(inrune, '_')
	}
	inrune = append(inrune, segment...)
	return inrune
}

// Convert a "snake_case" word to its "camelCase" form. Every underscore
// followed by a letter is dropped and the letter uppercased, so "user_id"
// becomes "userId". Underscores not followed by a letter are kept, so
// "user_1" stays "user_1".
func ToCamel(str string) string {
	runes := []rune(str)
	out := make([]rune, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		if runes[i] == '_' && i+1 < len(runes) && unicode.IsLetter(runes[i+1]) {
			out = append(out, unicode.ToUpper(runes[i+1]))
			i++
			continue
		}
		out = append(out, runes[i])
	}
	return string(out)
}

// convertColumn converts a single column reference with namer, passing it
// through unmodified when it is the wildcard, already snake_case, or embeds
// PostgREST syntax (aggregates, embedded resources, JSON paths, casts).
func convertColumn(name string, namer func(string) string) string {
	if isVerbatimColumn(name) {
		return name
	}
	return namer(name)
}

func isVerbatimColumn(name string) bool {
	if name == "*" || strings.Contains(name, "_") {
		return true
	}
	for _, token := range verbatimTokens {
		if strings.Contains(name, token) {
			return true
		}
	}
	return false
}

// convertColumnList converts a comma-separated column list, applying
// convertColumn to each entry. Entries carrying embedded-resource syntax
// pass through untouched, so "id,teams(teamName)" keeps the inner list.
func convertColumnList(columns string, namer func(string) string) string {
	if columns == "" || columns == "*" {
		return columns
	}
	parts := strings.Split(columns, ",")
	for i, part := range parts {
		parts[i] = convertColumn(strings.TrimSpace(part), namer)
	}
	return strings.Join(parts, ",")
}
