package css

import (
	"strings"
)

// SelectorKind classifies a selector for merge eligibility.
type SelectorKind int

const (
	SelectorSimple    SelectorKind = iota // element, .class, #id, element.class
	SelectorPseudo                        // :hover, ::before, :nth-child(...)
	SelectorAttribute                     // [attr], [attr=value]
	SelectorComplex                       // combinators: >, +, ~, descendant space
	SelectorAtRule                        // @media, @keyframes, @supports
)

// String returns a human-readable name for the selector kind.
func (k SelectorKind) String() string {
	switch k {
	case SelectorSimple:
		return "simple"
	case SelectorPseudo:
		return "pseudo"
	case SelectorAttribute:
		return "attribute"
	case SelectorComplex:
		return "complex"
	case SelectorAtRule:
		return "at-rule"
	default:
		return "unknown"
	}
}

// Fallback names the suggested strategy when a selector cannot take part in
// class-level merging.
type Fallback int

const (
	FallbackNone      Fallback = iota // mergeable, no fallback needed
	FallbackInline                    // apply override as inline styles
	FallbackImportant                 // apply override as !important inline styles
)

// SelectorClass is the classification result for a selector string.
type SelectorClass struct {
	Raw       string
	Kind      SelectorKind
	Mergeable bool
	Fallback  Fallback
}

// statePseudos are pseudo-classes that depend on user interaction or document
// state; overrides for them cannot be expressed as a merged class and need the
// !important fallback to win against the stateful rule.
var statePseudos = map[string]struct{}{
	"hover":   {},
	"focus":   {},
	"active":  {},
	"visited": {},
	"checked": {},
	"target":  {},
}

// ClassifySelector decides whether a selector is eligible for class-level
// property merging. Simple element/class/id selectors (with optional
// element.class compounds) are mergeable; pseudo, attribute, combinator and
// at-rule selectors are not and carry a suggested fallback strategy.
func ClassifySelector(selector string) SelectorClass {
	sel := strings.TrimSpace(selector)
	sc := SelectorClass{Raw: sel}

	switch {
	case strings.HasPrefix(sel, "@"):
		sc.Kind = SelectorAtRule
		sc.Fallback = FallbackInline

	case strings.Contains(sel, ":"):
		sc.Kind = SelectorPseudo
		sc.Fallback = FallbackInline
		if _, ok := statePseudos[pseudoName(sel)]; ok {
			sc.Fallback = FallbackImportant
		}

	case strings.Contains(sel, "["):
		sc.Kind = SelectorAttribute
		sc.Fallback = FallbackInline

	case strings.ContainsAny(sel, ">+~") || strings.ContainsAny(sel, " \t"):
		sc.Kind = SelectorComplex
		sc.Fallback = FallbackInline

	default:
		sc.Kind = SelectorSimple
		sc.Mergeable = true
	}

	return sc
}

// pseudoName extracts the first pseudo-class name from a selector, without
// leading colons or arguments.
func pseudoName(sel string) string {
	_, after, found := strings.Cut(sel, ":")
	if !found {
		return ""
	}
	after = strings.TrimPrefix(after, ":")
	for i, r := range after {
		if r == '(' || r == ':' || r == ' ' {
			return strings.ToLower(after[:i])
		}
	}
	return strings.ToLower(after)
}
