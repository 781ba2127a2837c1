// Package merge implements CSS declaration merging with shorthand/longhand
// conflict resolution and configurable !important handling.
package merge

// distribution identifies how a shorthand value maps onto its longhands.
type distribution int

const (
	distOpaque    distribution = iota // compound grammar, not expanded by default
	distBox                           // 1/2/3/4 box model: top/right/bottom/left
	distBorder                        // width|style|color components, each to 4 sides
	distCorner                        // 1/2/3/4 corners: tl/tr/br/bl
	distTwoAxis                       // 1/2 values: first/second axis
)

// group describes one shorthand property: its longhands in canonical order
// and the value-distribution rule used for expansion.
type group struct {
	longhands []string
	dist      distribution
}

// Catalog is the static shorthand/longhand relationship table. It is built
// once and never mutated afterwards, so it is safe for unsynchronized
// concurrent reads.
type Catalog struct {
	groups  map[string]group
	reverse map[string][]string // longhand -> shorthands containing it
}

// defaultCatalog is the process-wide catalog instance.
var defaultCatalog = buildCatalog()

// DefaultCatalog returns the built-in shorthand catalog.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

func buildCatalog() *Catalog {
	sides := func(prefix string) []string {
		return []string{prefix + "-top", prefix + "-right", prefix + "-bottom", prefix + "-left"}
	}
	borderSides := func(kind string) []string {
		return []string{
			"border-top-" + kind, "border-right-" + kind,
			"border-bottom-" + kind, "border-left-" + kind,
		}
	}

	c := &Catalog{
		groups: map[string]group{
			"margin":  {longhands: sides("margin"), dist: distBox},
			"padding": {longhands: sides("padding"), dist: distBox},

			"border": {
				longhands: append(append(append([]string{},
					borderSides("width")...), borderSides("style")...), borderSides("color")...),
				dist: distBorder,
			},
			"border-width": {longhands: borderSides("width"), dist: distBox},
			"border-style": {longhands: borderSides("style"), dist: distBox},
			"border-color": {longhands: borderSides("color"), dist: distBox},
			"border-top": {
				longhands: []string{"border-top-width", "border-top-style", "border-top-color"},
				dist:      distOpaque,
			},
			"border-right": {
				longhands: []string{"border-right-width", "border-right-style", "border-right-color"},
				dist:      distOpaque,
			},
			"border-bottom": {
				longhands: []string{"border-bottom-width", "border-bottom-style", "border-bottom-color"},
				dist:      distOpaque,
			},
			"border-left": {
				longhands: []string{"border-left-width", "border-left-style", "border-left-color"},
				dist:      distOpaque,
			},
			"border-radius": {
				longhands: []string{
					"border-top-left-radius", "border-top-right-radius",
					"border-bottom-right-radius", "border-bottom-left-radius",
				},
				dist: distCorner,
			},

			"background": {
				longhands: []string{
					"background-color", "background-image", "background-repeat",
					"background-attachment", "background-position", "background-size",
					"background-origin", "background-clip",
				},
				dist: distOpaque,
			},
			"font": {
				longhands: []string{
					"font-style", "font-variant", "font-weight", "font-size",
					"line-height", "font-family",
				},
				dist: distOpaque,
			},
			"list-style": {
				longhands: []string{"list-style-type", "list-style-position", "list-style-image"},
				dist:      distOpaque,
			},
			"outline": {
				longhands: []string{"outline-width", "outline-style", "outline-color"},
				dist:      distOpaque,
			},
			"flex": {
				longhands: []string{"flex-grow", "flex-shrink", "flex-basis"},
				dist:      distOpaque,
			},
			"grid": {
				longhands: []string{
					"grid-template-rows", "grid-template-columns", "grid-template-areas",
					"grid-auto-rows", "grid-auto-columns", "grid-auto-flow",
				},
				dist: distOpaque,
			},
			"grid-template": {
				longhands: []string{"grid-template-rows", "grid-template-columns", "grid-template-areas"},
				dist:      distOpaque,
			},
			"grid-gap": {longhands: []string{"grid-row-gap", "grid-column-gap"}, dist: distTwoAxis},
			"gap":      {longhands: []string{"row-gap", "column-gap"}, dist: distTwoAxis},

			"animation": {
				longhands: []string{
					"animation-name", "animation-duration", "animation-timing-function",
					"animation-delay", "animation-iteration-count", "animation-direction",
					"animation-fill-mode", "animation-play-state",
				},
				dist: distOpaque,
			},
			"transition": {
				longhands: []string{
					"transition-property", "transition-duration",
					"transition-timing-function", "transition-delay",
				},
				dist: distOpaque,
			},
			"text-decoration": {
				longhands: []string{
					"text-decoration-line", "text-decoration-color",
					"text-decoration-style", "text-decoration-thickness",
				},
				dist: distOpaque,
			},

			"columns":     {longhands: []string{"column-width", "column-count"}, dist: distOpaque},
			"column-rule": {longhands: []string{"column-rule-width", "column-rule-style", "column-rule-color"}, dist: distOpaque},

			"overflow":      {longhands: []string{"overflow-x", "overflow-y"}, dist: distTwoAxis},
			"place-content": {longhands: []string{"align-content", "justify-content"}, dist: distTwoAxis},
			"place-items":   {longhands: []string{"align-items", "justify-items"}, dist: distTwoAxis},
			"place-self":    {longhands: []string{"align-self", "justify-self"}, dist: distTwoAxis},
		},
	}

	c.reverse = make(map[string][]string)
	for shorthand, g := range c.groups {
		for _, longhand := range g.longhands {
			c.reverse[longhand] = append(c.reverse[longhand], shorthand)
		}
	}
	return c
}

// IsShorthand reports whether name is a known shorthand property. Unknown
// names are simply not shorthands - never an error.
func (c *Catalog) IsShorthand(name string) bool {
	_, ok := c.groups[name]
	return ok
}

// IsLonghand reports whether name is a longhand of any known shorthand.
func (c *Catalog) IsLonghand(name string) bool {
	_, ok := c.reverse[name]
	return ok
}

// LonghandsOf returns the longhand names of a shorthand in canonical order,
// or nil if name is not a shorthand.
func (c *Catalog) LonghandsOf(shorthand string) []string {
	g, ok := c.groups[shorthand]
	if !ok {
		return nil
	}
	out := make([]string, len(g.longhands))
	copy(out, g.longhands)
	return out
}

// ShorthandsContaining returns the shorthand names that include the given
// longhand, or nil if name is not a longhand.
func (c *Catalog) ShorthandsContaining(longhand string) []string {
	ss, ok := c.reverse[longhand]
	if !ok {
		return nil
	}
	out := make([]string, len(ss))
	copy(out, ss)
	return out
}

// AffectedBy returns every property name whose value could change when the
// given property is set: the property itself, its longhands if it is a
// shorthand, and any shorthands containing it if it is a longhand.
func (c *Catalog) AffectedBy(name string) []string {
	affected := []string{name}
	affected = append(affected, c.LonghandsOf(name)...)
	affected = append(affected, c.ShorthandsContaining(name)...)
	return affected
}

// Conflicts reports whether two property names conflict: either they are the
// same name, or one is a shorthand containing the other.
func (c *Catalog) Conflicts(a, b string) bool {
	if a == b {
		return true
	}
	for _, l := range c.groups[a].longhands {
		if l == b {
			return true
		}
	}
	for _, l := range c.groups[b].longhands {
		if l == a {
			return true
		}
	}
	return false
}

// distributionOf returns the value-distribution rule for a shorthand.
func (c *Catalog) distributionOf(name string) (distribution, bool) {
	g, ok := c.groups[name]
	if !ok {
		return distOpaque, false
	}
	return g.dist, true
}
