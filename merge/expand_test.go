package merge

import (
	"reflect"
	"strings"
	"testing"

	"github.com/sebieire/csscade/css"
)

func TestExpandBoxValueCounts(t *testing.T) {
	e := NewExpander(nil, nil)
	tests := []struct {
		value string
		want  map[string]string // longhand suffix -> value
	}{
		{"5px", map[string]string{"top": "5px", "right": "5px", "bottom": "5px", "left": "5px"}},
		{"5px 10px", map[string]string{"top": "5px", "right": "10px", "bottom": "5px", "left": "10px"}},
		{"5px 10px 15px", map[string]string{"top": "5px", "right": "10px", "bottom": "15px", "left": "10px"}},
		{"5px 10px 15px 20px", map[string]string{"top": "5px", "right": "10px", "bottom": "15px", "left": "20px"}},
	}
	for _, tc := range tests {
		expanded, warnings := e.Expand(css.Property{Name: "margin", Value: tc.value})
		if len(warnings) != 0 {
			t.Fatalf("%q: unexpected warnings %v", tc.value, warnings)
		}
		got := map[string]string{}
		for _, p := range expanded {
			got[strings.TrimPrefix(p.Name, "margin-")] = p.Value
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%q: expected %v, got %v", tc.value, tc.want, got)
		}
	}
}

func TestExpandInvalidBoxValue(t *testing.T) {
	e := NewExpander(nil, nil)
	p := css.Property{Name: "padding", Value: "1px 2px 3px 4px 5px"}

	expanded, warnings := e.Expand(p)

	if len(expanded) != 1 || expanded[0] != p {
		t.Fatalf("malformed value must pass through unchanged, got %v", expanded)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "padding") {
		t.Fatalf("expected one warning naming the property, got %v", warnings)
	}
}

func TestExpandBorderComposite(t *testing.T) {
	e := NewExpander(nil, nil)

	expanded, warnings := e.Expand(css.Property{Name: "border", Value: "1px solid red"})
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings %v", warnings)
	}
	if len(expanded) != 12 {
		t.Fatalf("expected 12 longhands, got %d: %v", len(expanded), expanded)
	}
	got := map[string]string{}
	for _, p := range expanded {
		got[p.Name] = p.Value
	}
	for side, checks := range map[string][2]string{
		"width": {"1px", "border-top-width"},
		"style": {"solid", "border-left-style"},
		"color": {"red", "border-bottom-color"},
	} {
		if got[checks[1]] != checks[0] {
			t.Fatalf("%s: expected %s=%s, got %q", side, checks[1], checks[0], got[checks[1]])
		}
	}
}

func TestExpandBorderPartial(t *testing.T) {
	e := NewExpander(nil, nil)

	// Style only: width and color longhands must not be emitted.
	expanded, _ := e.Expand(css.Property{Name: "border", Value: "dashed"})
	if len(expanded) != 4 {
		t.Fatalf("expected 4 style longhands, got %v", expanded)
	}
	for _, p := range expanded {
		if !strings.HasSuffix(p.Name, "-style") || p.Value != "dashed" {
			t.Fatalf("unexpected longhand %v", p)
		}
	}
}

func TestExpandBorderTokenClassification(t *testing.T) {
	e := NewExpander(nil, nil)
	tests := []struct {
		value string
		name  string
		want  string
	}{
		{"thick dotted", "border-top-width", "thick"},
		{"thick dotted", "border-top-style", "dotted"},
		{"#fff solid", "border-right-color", "#fff"},
		{".5em ridge currentcolor", "border-left-width", ".5em"},
	}
	for _, tc := range tests {
		expanded, _ := e.Expand(css.Property{Name: "border", Value: tc.value})
		found := ""
		for _, p := range expanded {
			if p.Name == tc.name {
				found = p.Value
			}
		}
		if found != tc.want {
			t.Fatalf("%q: expected %s=%q, got %q", tc.value, tc.name, tc.want, found)
		}
	}
}

func TestExpandCorners(t *testing.T) {
	e := NewExpander(nil, nil)

	expanded, warnings := e.Expand(css.Property{Name: "border-radius", Value: "1px 2px 3px"})
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings %v", warnings)
	}
	want := []css.Property{
		{Name: "border-top-left-radius", Value: "1px"},
		{Name: "border-top-right-radius", Value: "2px"},
		{Name: "border-bottom-right-radius", Value: "3px"},
		{Name: "border-bottom-left-radius", Value: "2px"},
	}
	if !reflect.DeepEqual(expanded, want) {
		t.Fatalf("expected %v, got %v", want, expanded)
	}
}

func TestExpandEllipticalRadiusOpaque(t *testing.T) {
	e := NewExpander(nil, nil)
	p := css.Property{Name: "border-radius", Value: "10px / 20px"}

	expanded, warnings := e.Expand(p)

	if len(expanded) != 1 || expanded[0] != p {
		t.Fatalf("elliptical radius must stay unexpanded, got %v", expanded)
	}
	if len(warnings) != 0 {
		t.Fatalf("elliptical radius is valid, no warning expected: %v", warnings)
	}
}

func TestExpandTwoAxis(t *testing.T) {
	e := NewExpander(nil, nil)

	expanded, _ := e.Expand(css.Property{Name: "overflow", Value: "hidden"})
	want := []css.Property{
		{Name: "overflow-x", Value: "hidden"},
		{Name: "overflow-y", Value: "hidden"},
	}
	if !reflect.DeepEqual(expanded, want) {
		t.Fatalf("expected %v, got %v", want, expanded)
	}

	expanded, _ = e.Expand(css.Property{Name: "gap", Value: "10px 20px"})
	want = []css.Property{
		{Name: "row-gap", Value: "10px"},
		{Name: "column-gap", Value: "20px"},
	}
	if !reflect.DeepEqual(expanded, want) {
		t.Fatalf("expected %v, got %v", want, expanded)
	}
}

func TestExpandOpaqueAndUnknownUnchanged(t *testing.T) {
	e := NewExpander(nil, nil)
	for _, p := range []css.Property{
		{Name: "font", Value: "italic bold 12px/1.5 serif"},
		{Name: "background", Value: "url(x.png) no-repeat center"},
		{Name: "transition", Value: "opacity 0.3s ease"},
		{Name: "color", Value: "red"},
		{Name: "--brand-color", Value: "#336699"},
	} {
		expanded, warnings := e.Expand(p)
		if len(expanded) != 1 || expanded[0] != p || len(warnings) != 0 {
			t.Fatalf("%s must pass through unchanged, got %v %v", p.Name, expanded, warnings)
		}
	}
}

func TestExpandInheritsImportance(t *testing.T) {
	e := NewExpander(nil, nil)

	expanded, _ := e.Expand(css.Property{Name: "margin", Value: "0", Important: true})
	if len(expanded) != 4 {
		t.Fatalf("expected 4 longhands, got %v", expanded)
	}
	for _, p := range expanded {
		if !p.Important {
			t.Fatalf("longhand %s must inherit !important", p.Name)
		}
	}
}
