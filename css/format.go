package css

import (
	"fmt"
	"io"
	"strings"
)

// WriteTo writes the properties as declaration lines in insertion order,
// implementing io.WriterTo. Output form:
//
//	name: value;
//	name: value !important;
func (s *PropertySet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, prop := range s.Properties() {
		n, err := fmt.Fprintf(w, "%s;\n", prop.String())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the CSS text of the declarations.
func (s *PropertySet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// Inline returns the declarations as a single-line style attribute value,
// e.g. `margin: 0; color: red !important`.
func (s *PropertySet) Inline() string {
	props := s.Properties()
	parts := make([]string, 0, len(props))
	for _, prop := range props {
		parts = append(parts, prop.String())
	}
	return strings.Join(parts, "; ")
}

// WriteRule writes a complete CSS rule for the given selector to w.
func WriteRule(w io.Writer, selector string, props *PropertySet) (int64, error) {
	var total int64
	n, err := fmt.Fprintf(w, "%s {\n", selector)
	total += int64(n)
	if err != nil {
		return total, err
	}
	for _, prop := range props.Properties() {
		n, err = fmt.Fprintf(w, "  %s;\n", prop.String())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprint(w, "}\n")
	total += int64(n)
	return total, err
}

// FormatRule returns the CSS text of a complete rule.
func FormatRule(selector string, props *PropertySet) string {
	var sb strings.Builder
	WriteRule(&sb, selector, props) //nolint:errcheck
	return sb.String()
}
