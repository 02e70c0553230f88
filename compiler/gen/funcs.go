package gen

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
)

// =============================================================================
// Name case transcoding
// =============================================================================

// charClass tracks the classification of the previous character during a
// transcoding pass.
type charClass uint8

const (
	classNone charClass = iota
	classUpper
	classLower
	classOther
)

func classify(r rune) charClass {
	switch {
	case unicode.IsUpper(r):
		return classUpper
	case unicode.IsLower(r):
		return classLower
	default:
		return classOther
	}
}

// The three transcoders below share the same single left-to-right pass: a
// separator is inserted before an uppercase character whose immediate
// predecessor was lowercase, so acronym runs stay joined ("InQA" splits to
// "In QA", never "In Q A"). Classification tracks the input character, not
// the lowered output.

// PascalSpaced converts a PascalCase identifier to spaced PascalCase:
// "InQA" becomes "In QA".
func PascalSpaced(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 5)
	prev := classNone
	for _, r := range s {
		if unicode.IsUpper(r) && prev == classLower {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
		prev = classify(r)
	}
	return b.String()
}

// SnakeCase converts a PascalCase identifier to snake_case: "InQA" becomes
// "in_qa".
func SnakeCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 5)
	prev := classNone
	for _, r := range s {
		if unicode.IsUpper(r) && prev == classLower {
			b.WriteRune('_')
		}
		prev = classify(r)
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// KebabCase converts a PascalCase identifier to kebab-case: "InQA" becomes
// "in-qa".
func KebabCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 5)
	prev := classNone
	for _, r := range s {
		if unicode.IsUpper(r) && prev == classLower {
			b.WriteRune('-')
		}
		prev = classify(r)
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// =============================================================================
// Identifier helpers for emission dialects
// =============================================================================

var (
	rules = ruleset()
	// acronyms keeps common initialisms intact when pascalizing
	// snake_case payload field names.
	acronyms = map[string]struct{}{
		"id": {}, "url": {}, "uri": {}, "api": {}, "sql": {}, "json": {},
		"http": {}, "uuid": {}, "qa": {},
	}
)

func ruleset() *inflect.Ruleset {
	rs := inflect.NewDefaultRuleset()
	for a := range acronyms {
		rs.AddAcronym(strings.ToUpper(a))
	}
	return rs
}

// Pascal converts a snake_case or kebab-case word sequence to PascalCase.
// Used by dialects to derive Go identifiers from payload field names.
func Pascal(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == '-' || r == ' ' })
	for i, w := range words {
		if _, ok := acronyms[strings.ToLower(w)]; ok {
			words[i] = strings.ToUpper(w)
			continue
		}
		words[i] = rules.Capitalize(w)
	}
	return strings.Join(words, "")
}

// Plural pluralizes an identifier, preserving the case of the final word:
// "TicketStatus" becomes "TicketStatuses". Used by dialects for collection
// helper names.
func Plural(s string) string {
	return rules.Pluralize(s)
}

// Receiver derives a short method receiver name from a type name: the
// lowered first rune.
func Receiver(name string) string {
	if name == "" {
		return "x"
	}
	return string(unicode.ToLower([]rune(name)[0]))
}
