package css

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	tcss "github.com/tdewolff/parse/v2/css"
)

// Rule is a single CSS rule: one selector and a set of property values (raw strings).
type Rule struct {
	Selector string            // e.g. ".panel" or "#fps"
	Props    map[string]string // e.g. "background" -> "#333"
}

// Stylesheet is a list of rules (order matters: later overrides earlier).
type Stylesheet struct {
	Rules []Rule
}

// Parse parses a stylesheet. Only simple selectors are kept: .class, #id or a
// comma-separated list of them. Rules with other selectors and all @rules are skipped.
func Parse(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	p := tcss.NewParser(parse.NewInputString(content), false)

	var (
		selectors []string
		props     map[string]string
		atDepth   int
	)
	for {
		gt, _, data := p.Next()
		switch gt {
		case tcss.ErrorGrammar:
			if p.Err() == io.EOF {
				return sheet, nil
			}
			return sheet, fmt.Errorf("parse stylesheet: %w", p.Err())
		case tcss.BeginAtRuleGrammar:
			atDepth++
		case tcss.EndAtRuleGrammar:
			if atDepth > 0 {
				atDepth--
			}
		case tcss.BeginRulesetGrammar:
			if atDepth > 0 {
				continue
			}
			selectors = splitSelectors(p.Values())
			props = make(map[string]string)
		case tcss.DeclarationGrammar:
			if props == nil {
				continue
			}
			props[strings.ToLower(string(data))] = joinValues(p.Values())
		case tcss.EndRulesetGrammar:
			for _, sel := range selectors {
				rule := Rule{Selector: sel, Props: make(map[string]string, len(props))}
				for k, v := range props {
					rule.Props[k] = v
				}
				sheet.Rules = append(sheet.Rules, rule)
			}
			selectors, props = nil, nil
		}
	}
}

// Load reads and parses a stylesheet file.
func Load(path string) (*Stylesheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// splitSelectors turns selector tokens into ".name" / "#name" strings.
// A compound or descendant selector drops the whole entry.
func splitSelectors(tokens []tcss.Token) []string {
	var out []string
	var cur strings.Builder
	valid, space := true, false
	flush := func() {
		s := cur.String()
		if valid && len(s) >= 2 && (s[0] == '.' || s[0] == '#') && strings.Count(s, ".")+strings.Count(s, "#") == 1 {
			out = append(out, s)
		}
		cur.Reset()
		valid, space = true, false
	}
	for _, t := range tokens {
		if space && t.TokenType != tcss.CommaToken && t.TokenType != tcss.WhitespaceToken {
			valid = false
		}
		switch t.TokenType {
		case tcss.CommaToken:
			flush()
		case tcss.WhitespaceToken:
			space = cur.Len() > 0
		case tcss.DelimToken:
			if string(t.Data) != "." {
				valid = false
			}
			cur.Write(t.Data)
		case tcss.HashToken, tcss.IdentToken:
			cur.Write(t.Data)
		default:
			valid = false
		}
	}
	flush()
	return out
}

func joinValues(tokens []tcss.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}

// Match returns the merged properties for an element with the given class and id.
// Rules apply in order, so later rules win.
func (s *Stylesheet) Match(class, id string) map[string]string {
	merged := make(map[string]string)
	if s == nil {
		return merged
	}
	for _, rule := range s.Rules {
		sel := rule.Selector
		matches := (sel[0] == '.' && class != "" && sel[1:] == class) ||
			(sel[0] == '#' && id != "" && sel[1:] == id)
		if !matches {
			continue
		}
		for k, v := range rule.Props {
			merged[k] = v
		}
	}
	return merged
}
