package css

import (
	"strings"
)

// Property represents a single CSS declaration: a case-normalized property
// name, its raw value string and the !important flag. A Property is a value
// object - transformations always construct a new instance.
type Property struct {
	Name      string // Property name, lower-cased (e.g. "margin-top")
	Value     string // Raw CSS value (e.g. "1px 2px", "#ff0000")
	Important bool   // true if declared with !important
}

// NewProperty constructs a Property from a raw name and value. The name is
// case-normalized and a trailing "!important" in the value is extracted into
// the Important flag.
func NewProperty(name, value string) Property {
	clean, important := ParseValue(value)
	return Property{
		Name:      strings.ToLower(strings.TrimSpace(name)),
		Value:     clean,
		Important: important,
	}
}

// String returns the CSS text of the declaration without a trailing semicolon.
func (p Property) String() string {
	if p.Important {
		return p.Name + ": " + p.Value + " !important"
	}
	return p.Name + ": " + p.Value
}

// ParseValue splits a CSS value string into the clean value and its
// !important flag. Both "!important" and the legacy "! important" spellings
// are recognized.
func ParseValue(value string) (string, bool) {
	v := strings.TrimSpace(value)
	lower := strings.ToLower(v)
	switch {
	case strings.HasSuffix(lower, "!important"):
		return strings.TrimSpace(v[:len(v)-len("!important")]), true
	case strings.HasSuffix(lower, "! important"):
		return strings.TrimSpace(v[:len(v)-len("! important")]), true
	}
	return v, false
}

// PropertySet is an ordered mapping from property name to the single winning
// Property with that name. Iteration order is insertion order; overwriting an
// existing name keeps its original position. A name appears at most once.
type PropertySet struct {
	props map[string]Property
	order []string
}

// NewPropertySet creates an empty property set.
func NewPropertySet(props ...Property) *PropertySet {
	s := &PropertySet{props: make(map[string]Property, len(props))}
	for _, p := range props {
		s.Set(p)
	}
	return s
}

// Set inserts or replaces the property with p's name.
func (s *PropertySet) Set(p Property) {
	if _, ok := s.props[p.Name]; !ok {
		s.order = append(s.order, p.Name)
	}
	s.props[p.Name] = p
}

// Get returns the property with the given (case-normalized) name.
func (s *PropertySet) Get(name string) (Property, bool) {
	p, ok := s.props[name]
	return p, ok
}

// Has reports whether a property with the given name is present.
func (s *PropertySet) Has(name string) bool {
	_, ok := s.props[name]
	return ok
}

// Delete removes the property with the given name, if present.
func (s *PropertySet) Delete(name string) {
	if _, ok := s.props[name]; !ok {
		return
	}
	delete(s.props, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Replace substitutes the property at oldName's position with p, removing
// oldName. If oldName is absent, p is appended. A pre-existing entry under
// p.Name elsewhere in the set is removed first, so a name still appears at
// most once.
func (s *PropertySet) Replace(oldName string, p Property) {
	if _, ok := s.props[oldName]; !ok {
		s.Set(p)
		return
	}
	if p.Name != oldName {
		s.Delete(p.Name)
	}
	delete(s.props, oldName)
	for i, n := range s.order {
		if n == oldName {
			s.order[i] = p.Name
			break
		}
	}
	s.props[p.Name] = p
}

// Len returns the number of properties in the set.
func (s *PropertySet) Len() int {
	return len(s.order)
}

// Names returns the property names in insertion order.
func (s *PropertySet) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Properties returns the properties in insertion order.
func (s *PropertySet) Properties() []Property {
	props := make([]Property, 0, len(s.order))
	for _, name := range s.order {
		props = append(props, s.props[name])
	}
	return props
}

// Clone returns an independent copy of the set.
func (s *PropertySet) Clone() *PropertySet {
	c := &PropertySet{
		props: make(map[string]Property, len(s.props)),
		order: make([]string, len(s.order)),
	}
	for name, p := range s.props {
		c.props[name] = p
	}
	copy(c.order, s.order)
	return c
}

// Equal reports whether both sets contain the same properties in the same
// order.
func (s *PropertySet) Equal(other *PropertySet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for i, name := range s.order {
		if other.order[i] != name {
			return false
		}
		if s.props[name] != other.props[name] {
			return false
		}
	}
	return true
}
