package merge

import (
	"strings"

	"github.com/sebieire/csscade/css"
)

// recombinable lists the groups eligible for longhand-to-shorthand
// recombination, in fixed priority order. Member names are disjoint across
// groups, so the order can never double-consume a longhand.
//
// border itself, font, animation, transition and background are deliberately
// absent: recombining those either loses information or has no safe
// reduction.
var recombinable = []string{
	"margin",
	"padding",
	"border-width",
	"border-style",
	"border-color",
	"border-radius",
	"overflow",
	"gap",
}

// Recombiner converts complete longhand groups back into the shortest valid
// shorthand notation.
type Recombiner struct {
	cat *Catalog
}

// NewRecombiner creates a recombiner over the given catalog. A nil catalog
// uses the default one.
func NewRecombiner(cat *Catalog) *Recombiner {
	if cat == nil {
		cat = DefaultCatalog()
	}
	return &Recombiner{cat: cat}
}

// Recombine attempts to combine the longhands of one group from the working
// set into a single shorthand property. It succeeds only when every longhand
// of the group is present and all share the same !important flag; a
// mixed-importance group cannot be soundly expressed as one declaration.
func (r *Recombiner) Recombine(shorthand string, set *css.PropertySet) (css.Property, bool) {
	longhands := r.cat.LonghandsOf(shorthand)
	if longhands == nil {
		return css.Property{}, false
	}

	values := make([]string, len(longhands))
	var important, mixed bool
	for i, name := range longhands {
		p, ok := set.Get(name)
		if !ok {
			return css.Property{}, false
		}
		values[i] = p.Value
		if i == 0 {
			important = p.Important
		} else if p.Important != important {
			mixed = true
		}
	}
	if mixed {
		return css.Property{}, false
	}

	dist, _ := r.cat.distributionOf(shorthand)
	var combined string
	switch dist {
	case distBox:
		combined = reduceSides(values)
	case distCorner:
		combined = reduceCorners(values)
	case distTwoAxis:
		combined = reduceTwoAxis(values)
	default:
		return css.Property{}, false
	}

	return css.Property{Name: shorthand, Value: combined, Important: important}, true
}

// reduceSides reduces (top, right, bottom, left) values to the shortest
// standard notation - the box-model shorthand grammar in reverse.
func reduceSides(v []string) string {
	top, right, bottom, left := v[0], v[1], v[2], v[3]
	switch {
	case top == right && top == bottom && top == left:
		return top
	case top == bottom && left == right:
		return strings.Join([]string{top, right}, " ")
	case left == right:
		return strings.Join([]string{top, right, bottom}, " ")
	default:
		return strings.Join([]string{top, right, bottom, left}, " ")
	}
}

// reduceCorners reduces (top-left, top-right, bottom-right, bottom-left)
// radius values per the border-radius shorthand grammar in reverse.
func reduceCorners(v []string) string {
	tl, tr, br, bl := v[0], v[1], v[2], v[3]
	switch {
	case tl == tr && tl == br && tl == bl:
		return tl
	case tl == br && tr == bl:
		return strings.Join([]string{tl, tr}, " ")
	case tr == bl:
		return strings.Join([]string{tl, tr, br}, " ")
	default:
		return strings.Join([]string{tl, tr, br, bl}, " ")
	}
}

// reduceTwoAxis reduces a two-value group to one value when both match.
func reduceTwoAxis(v []string) string {
	if v[0] == v[1] {
		return v[0]
	}
	return strings.Join([]string{v[0], v[1]}, " ")
}
