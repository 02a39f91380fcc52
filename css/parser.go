package css

import (
	"bytes"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses widget style sheets into selector blocks.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Stylesheet. Parsing never fails, anything the
// tokenizer cannot make sense of is skipped.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := newStylesheet()

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			// End of input or error
			if parser.Err() != nil && parser.Err().Error() != "EOF" {
				p.log.Debug("CSS parse error", zap.Error(parser.Err()))
			}
			return sheet

		case css.BeginAtRuleGrammar:
			// Widget style sheets have no use for @-rules with blocks
			sheet.Warnings = append(sheet.Warnings, "unsupported @-rule: "+string(data))
			p.log.Debug("Skipping @-rule", zap.String("rule", string(data)))
			p.skipAtRuleBlock(parser)

		case css.AtRuleGrammar:
			p.log.Debug("Skipping @-rule", zap.String("rule", string(data)))

		case css.BeginRulesetGrammar:
			selectors := p.parseSelectors(data, parser.Values())
			decls := p.parseDeclarations(parser)
			for _, sel := range selectors {
				sheet.merge(sel, decls)
			}
		}
	}
}

// parseSelectors extracts normalized selector strings from token data.
func (p *Parser) parseSelectors(data []byte, values []css.Token) []string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}
	// Depending on tokenizer state data may carry the opening brace.
	selectorStr := strings.Trim(sb.String(), "{} \t\r\n")

	// Split by comma for grouped selectors
	var selectors []string
	for s := range strings.SplitSeq(selectorStr, ",") {
		if s = normalizeSelector(s); s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

// normalizeSelector lower-cases selector and removes whitespace around pseudo
// class separators, so "Button : hover" and "button:hover" are the same key.
func normalizeSelector(s string) string {
	parts := strings.Split(strings.ToLower(s), ":")
	for i := range parts {
		parts[i] = strings.Join(strings.Fields(parts[i]), " ")
	}
	return strings.Trim(strings.Join(parts, ":"), " ")
}

// parseDeclarations parses property declarations until EndRulesetGrammar.
func (p *Parser) parseDeclarations(parser *css.Parser) []declaration {
	var decls []declaration

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return decls

		case css.DeclarationGrammar:
			propName := strings.ToLower(string(data))
			values := parser.Values()
			if len(values) > 0 {
				decls = append(decls, declaration{name: propName, value: parsePropertyValue(values)})
			}

		case css.CustomPropertyGrammar:
			// CSS custom properties (--var) are not supported
			continue
		}
	}
}

// parsePropertyValue converts CSS tokens to a Value. Separators are
// normalized: a comma is followed by single space, no space is kept inside
// parentheses.
func parsePropertyValue(tokens []css.Token) Value {
	var (
		sb    strings.Builder
		space bool
	)
	for _, t := range tokens {
		switch t.TokenType {
		case css.CommentToken:
			continue
		case css.WhitespaceToken:
			if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "(") {
				space = true
			}
		case css.CommaToken:
			sb.WriteByte(',')
			space = true
		case css.RightParenthesisToken:
			sb.Write(t.Data)
			space = false
		default:
			if space {
				sb.WriteByte(' ')
			}
			sb.Write(t.Data)
			space = false
		}
	}
	return Value{Raw: strings.TrimSpace(sb.String())}
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func (p *Parser) skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}
