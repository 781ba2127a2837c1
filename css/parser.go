package css

import (
	"bytes"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses CSS declaration text into property sets.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new declaration parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// ParseDeclarations parses the body of a declaration block (without braces),
// e.g. "margin: 1px 2px; color: red !important", into a PropertySet.
// Declarations with empty values are skipped with a warning; parsing never
// fails - a best-effort set is always returned.
func (p *Parser) ParseDeclarations(data string) (*PropertySet, []string) {
	set := NewPropertySet()
	var warnings []string

	input := parse.NewInput(bytes.NewReader([]byte(data)))
	parser := css.NewParser(input, true)

	for {
		gt, _, name := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			// End of input or error
			if parser.Err() != nil && parser.Err().Error() != "EOF" {
				p.log.Debug("CSS parse error", zap.Error(parser.Err()))
			}
			return set, warnings

		case css.DeclarationGrammar:
			prop := NewProperty(string(name), tokensToValue(parser.Values()))
			if prop.Value == "" {
				warnings = append(warnings, "empty value for property: "+prop.Name)
				p.log.Debug("Skipping declaration without value", zap.String("property", prop.Name))
				continue
			}
			set.Set(prop)

		case css.CustomPropertyGrammar:
			// CSS custom properties (--var) keep their value verbatim
			set.Set(Property{Name: string(name), Value: tokensToValue(parser.Values())})

		case css.CommentGrammar:
			continue

		default:
			p.log.Debug("Skipping unexpected grammar in declaration block", zap.String("data", string(name)))
		}
	}
}

// ParseBlock parses a full rule body that may still be wrapped in braces,
// tolerating input like "{ color: red; }".
func (p *Parser) ParseBlock(data string) (*PropertySet, []string) {
	data = strings.TrimSpace(data)
	data = strings.TrimPrefix(data, "{")
	data = strings.TrimSuffix(data, "}")
	return p.ParseDeclarations(data)
}

// tokensToValue assembles a raw value string from declaration tokens,
// collapsing whitespace runs to single spaces. The tokenizer swallows
// whitespace after commas, so a comma always emits its own trailing space.
func tokensToValue(tokens []css.Token) string {
	var parts []string
	spaced := true // suppress leading whitespace
	for _, t := range tokens {
		switch t.TokenType {
		case css.WhitespaceToken:
			if !spaced {
				parts = append(parts, " ")
				spaced = true
			}
		case css.CommaToken:
			parts = append(parts, ", ")
			spaced = true
		default:
			parts = append(parts, string(t.Data))
			spaced = false
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}
