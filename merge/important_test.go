package merge

import "testing"

func TestParseImportantStrategy(t *testing.T) {
	for _, name := range []string{"match", "respect", "override", "force", "strip"} {
		s, ok := ParseImportantStrategy(name)
		if !ok || string(s) != name {
			t.Fatalf("%q must parse to itself, got %q (ok=%v)", name, s, ok)
		}
	}
	if s, ok := ParseImportantStrategy("Match"); ok || s != ImportantMatch {
		t.Fatalf("strategy names are case sensitive, got %q (ok=%v)", s, ok)
	}
	if s, ok := ParseImportantStrategy(""); ok || s != ImportantMatch {
		t.Fatalf("empty name must fall back to match, got %q (ok=%v)", s, ok)
	}
}

func TestParseShorthandStrategy(t *testing.T) {
	for _, name := range []string{"cascade", "smart", "expand"} {
		s, ok := ParseShorthandStrategy(name)
		if !ok || string(s) != name {
			t.Fatalf("%q must parse to itself, got %q (ok=%v)", name, s, ok)
		}
	}
	if s, ok := ParseShorthandStrategy("aggressive"); ok || s != ShorthandSmart {
		t.Fatalf("unknown name must fall back to smart, got %q (ok=%v)", s, ok)
	}
}
