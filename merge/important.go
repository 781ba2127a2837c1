package merge

import (
	"github.com/sebieire/csscade/css"
)

// ImportantStrategy selects how conflicting !important annotations between an
// existing property and its override are resolved.
type ImportantStrategy string

const (
	// ImportantMatch carries the original's !important over to the override
	// unless the override sets its own. Default.
	ImportantMatch ImportantStrategy = "match"
	// ImportantRespect keeps an !important original untouched - the override
	// is skipped for that property.
	ImportantRespect ImportantStrategy = "respect"
	// ImportantOverride always applies the override with its own importance,
	// warning when that may lose to the original in a real cascade.
	ImportantOverride ImportantStrategy = "override"
	// ImportantForce marks every overridden property !important.
	ImportantForce ImportantStrategy = "force"
	// ImportantStrip removes !important from every overridden property.
	ImportantStrip ImportantStrategy = "strip"
)

// ParseImportantStrategy validates a strategy name.
func ParseImportantStrategy(s string) (ImportantStrategy, bool) {
	switch ImportantStrategy(s) {
	case ImportantMatch, ImportantRespect, ImportantOverride, ImportantForce, ImportantStrip:
		return ImportantStrategy(s), true
	}
	return ImportantMatch, false
}

// ShorthandStrategy selects which shorthand groups the engine expands before
// merging.
type ShorthandStrategy string

const (
	// ShorthandCascade performs no expansion; conflicts resolve by plain name
	// replacement, as the CSS cascade would.
	ShorthandCascade ShorthandStrategy = "cascade"
	// ShorthandSmart expands only the simple box-model groups (margin and
	// padding families) where expansion is lossless. Default.
	ShorthandSmart ShorthandStrategy = "smart"
	// ShorthandExpand expands every catalog group that has a distribution
	// rule.
	ShorthandExpand ShorthandStrategy = "expand"
)

// ParseShorthandStrategy validates a shorthand strategy name.
func ParseShorthandStrategy(s string) (ShorthandStrategy, bool) {
	switch ShorthandStrategy(s) {
	case ShorthandCascade, ShorthandSmart, ShorthandExpand:
		return ShorthandStrategy(s), true
	}
	return ShorthandSmart, false
}

// resolveImportant computes the final property for an overridden name. The
// respect skip is handled by the caller before resolution; every other
// strategy produces a property here. original is nil when the name exists
// only in the override.
func resolveImportant(original *css.Property, override css.Property, strategy ImportantStrategy, s *session) css.Property {
	// Be lenient about !important embedded in the value string by callers
	// that construct properties directly.
	clean, explicit := css.ParseValue(override.Value)
	result := css.Property{
		Name:      override.Name,
		Value:     clean,
		Important: override.Important || explicit,
	}

	switch strategy {
	case ImportantMatch:
		if original != nil && original.Important && !result.Important {
			result.Important = true
			s.infof("Property '%s' marked !important to match original", override.Name)
		}

	case ImportantOverride:
		if original != nil && original.Important && !result.Important {
			s.warnf("Property '%s' had !important but override doesn't - may not apply", override.Name)
		}

	case ImportantForce:
		if !result.Important {
			result.Important = true
			s.infof("Force mode: Adding !important to '%s'", override.Name)
		}

	case ImportantStrip:
		if result.Important || (original != nil && original.Important) {
			s.infof("Strip mode: Removing !important from '%s'", override.Name)
		}
		result.Important = false
	}

	return result
}
