package merge

import (
	"strings"

	"go.uber.org/zap"

	"github.com/sebieire/csscade/css"
)

// borderStyles is the fixed set of border-style keywords used to classify
// border shorthand components.
var borderStyles = map[string]struct{}{
	"none":   {},
	"hidden": {},
	"dotted": {},
	"dashed": {},
	"solid":  {},
	"double": {},
	"groove": {},
	"ridge":  {},
	"inset":  {},
	"outset": {},
}

// widthKeywords are the named border widths.
var widthKeywords = map[string]struct{}{
	"thin":   {},
	"medium": {},
	"thick":  {},
}

// Expander expands shorthand properties into longhand equivalents according
// to the catalog's distribution rules.
type Expander struct {
	cat *Catalog
	log *zap.Logger
}

// NewExpander creates an expander over the given catalog. A nil catalog uses
// the default one.
func NewExpander(cat *Catalog, log *zap.Logger) *Expander {
	if cat == nil {
		cat = DefaultCatalog()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Expander{cat: cat, log: log.Named("css-expander")}
}

// Expand expands a single property into its longhand components. Properties
// that are not expandable shorthands (unknown names, opaque grammars,
// malformed values) are returned unchanged; malformed values additionally
// produce a warning. Expanded longhands inherit the shorthand's !important
// flag.
func (e *Expander) Expand(p css.Property) ([]css.Property, []string) {
	dist, ok := e.cat.distributionOf(p.Name)
	if !ok || dist == distOpaque {
		return []css.Property{p}, nil
	}

	var expanded []css.Property
	var warnings []string

	switch dist {
	case distBox:
		expanded, warnings = e.expandBox(p)
	case distBorder:
		expanded, warnings = e.expandBorder(p)
	case distCorner:
		expanded, warnings = e.expandCorners(p)
	case distTwoAxis:
		expanded, warnings = e.expandTwoAxis(p)
	}

	if expanded == nil {
		// Fall back to the original property untouched.
		return []css.Property{p}, warnings
	}
	if p.Important {
		for i := range expanded {
			expanded[i].Important = true
		}
	}
	return expanded, warnings
}

// boxSides resolves 1/2/3/4 shorthand values to (top, right, bottom, left).
// CSS shorthand formats:
//   - 1 value: all sides
//   - 2 values: top/bottom, left/right
//   - 3 values: top, left/right, bottom
//   - 4 values: top, right, bottom, left
func boxSides(parts []string) (top, right, bottom, left string, ok bool) {
	switch len(parts) {
	case 1:
		return parts[0], parts[0], parts[0], parts[0], true
	case 2:
		return parts[0], parts[1], parts[0], parts[1], true
	case 3:
		return parts[0], parts[1], parts[2], parts[1], true
	case 4:
		return parts[0], parts[1], parts[2], parts[3], true
	}
	return "", "", "", "", false
}

// expandBox expands box-model shorthands (margin, padding, border-width,
// border-style, border-color) into four per-side longhands.
func (e *Expander) expandBox(p css.Property) ([]css.Property, []string) {
	parts := strings.Fields(p.Value)
	top, right, bottom, left, ok := boxSides(parts)
	if !ok {
		e.log.Debug("invalid box shorthand", zap.String("property", p.Name), zap.String("value", p.Value))
		return nil, []string{"invalid shorthand value for '" + p.Name + "': " + p.Value}
	}

	longhands := e.cat.LonghandsOf(p.Name) // canonical order: top, right, bottom, left
	return []css.Property{
		{Name: longhands[0], Value: top},
		{Name: longhands[1], Value: right},
		{Name: longhands[2], Value: bottom},
		{Name: longhands[3], Value: left},
	}, nil
}

// expandBorder expands the border shorthand. Each token is classified as a
// width (numeric or thin/medium/thick), a style (fixed keyword set) or a
// color, and every detected component is applied to all four sides. A value
// with no recognizable component stays unexpanded.
func (e *Expander) expandBorder(p css.Property) ([]css.Property, []string) {
	parts := strings.Fields(p.Value)
	if len(parts) == 0 || len(parts) > 3 {
		return nil, []string{"invalid shorthand value for '" + p.Name + "': " + p.Value}
	}

	var width, style, color string
	for _, part := range parts {
		lower := strings.ToLower(part)
		switch {
		case isBorderStyle(lower):
			style = part
		case isBorderWidth(lower):
			width = part
		default:
			color = part
		}
	}

	var out []css.Property
	appendSides := func(kind, value string) {
		out = append(out,
			css.Property{Name: "border-top-" + kind, Value: value},
			css.Property{Name: "border-right-" + kind, Value: value},
			css.Property{Name: "border-bottom-" + kind, Value: value},
			css.Property{Name: "border-left-" + kind, Value: value},
		)
	}
	if width != "" {
		appendSides("width", width)
	}
	if style != "" {
		appendSides("style", style)
	}
	if color != "" {
		appendSides("color", color)
	}
	if len(out) == 0 {
		return nil, []string{"unrecognized border shorthand: " + p.Value}
	}
	return out, nil
}

// expandCorners expands border-radius. The elliptical "/" syntax is treated
// as opaque - splitting it would lose the pairing between axes.
func (e *Expander) expandCorners(p css.Property) ([]css.Property, []string) {
	if strings.Contains(p.Value, "/") {
		return nil, nil
	}

	parts := strings.Fields(p.Value)
	var tl, tr, br, bl string
	switch len(parts) {
	case 1:
		tl, tr, br, bl = parts[0], parts[0], parts[0], parts[0]
	case 2:
		tl, tr, br, bl = parts[0], parts[1], parts[0], parts[1]
	case 3:
		tl, tr, br, bl = parts[0], parts[1], parts[2], parts[1]
	case 4:
		tl, tr, br, bl = parts[0], parts[1], parts[2], parts[3]
	default:
		return nil, []string{"invalid shorthand value for '" + p.Name + "': " + p.Value}
	}

	longhands := e.cat.LonghandsOf(p.Name) // tl, tr, br, bl
	return []css.Property{
		{Name: longhands[0], Value: tl},
		{Name: longhands[1], Value: tr},
		{Name: longhands[2], Value: br},
		{Name: longhands[3], Value: bl},
	}, nil
}

// expandTwoAxis expands two-axis shorthands (overflow, gap, grid-gap,
// place-content, place-items, place-self). One value applies to both axes.
func (e *Expander) expandTwoAxis(p css.Property) ([]css.Property, []string) {
	parts := strings.Fields(p.Value)
	longhands := e.cat.LonghandsOf(p.Name)

	switch len(parts) {
	case 1:
		return []css.Property{
			{Name: longhands[0], Value: parts[0]},
			{Name: longhands[1], Value: parts[0]},
		}, nil
	case 2:
		return []css.Property{
			{Name: longhands[0], Value: parts[0]},
			{Name: longhands[1], Value: parts[1]},
		}, nil
	}
	return nil, []string{"invalid shorthand value for '" + p.Name + "': " + p.Value}
}

func isBorderStyle(s string) bool {
	_, ok := borderStyles[s]
	return ok
}

// isBorderWidth reports whether s looks like a border width: a named width
// keyword or a numeric value with an optional unit.
func isBorderWidth(s string) bool {
	if _, ok := widthKeywords[s]; ok {
		return true
	}
	if s == "" {
		return false
	}
	c := s[0]
	return c >= '0' && c <= '9' || c == '.' || c == '+' || c == '-'
}
