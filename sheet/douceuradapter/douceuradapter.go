/*
Package douceuradapter renders stylesheets into douceur CSS structures.

The douceur structures can be serialized to CSS text or handed to other
tooling built on douceur.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/proc7ts/style-producer/sheet"
)

// Factory implements sheet.Factory on douceur stylesheets. The zero
// value is ready to use.
type Factory struct {
	sheets []*CSSStyles
}

// NewSheet implements sheet.Factory.
func (f *Factory) NewSheet() sheet.Sheet {
	s := Wrap(&css.Stylesheet{})
	s.owner = f
	f.sheets = append(f.sheets, s)
	return s
}

// Stylesheets returns the live douceur stylesheets in creation order.
func (f *Factory) Stylesheets() []*css.Stylesheet {
	out := make([]*css.Stylesheet, len(f.sheets))
	for i, s := range f.sheets {
		out[i] = s.css
	}
	return out
}

// CSS serializes all live sheets into one stylesheet text.
func (f *Factory) CSS() string {
	var sb strings.Builder
	for _, s := range f.sheets {
		for _, r := range s.css.Rules {
			sb.WriteString(r.String())
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (f *Factory) drop(s *CSSStyles) {
	for i, fs := range f.sheets {
		if fs == s {
			f.sheets = append(f.sheets[:i], f.sheets[i+1:]...)
			return
		}
	}
}

// CSSStyles is an adapter implementing sheet.Sheet on a douceur
// stylesheet.
type CSSStyles struct {
	owner *Factory
	css   *css.Stylesheet
}

// Wrap adapts a douceur stylesheet. The stylesheet is managed by the
// wrapper from then on.
func Wrap(s *css.Stylesheet) *CSSStyles {
	return &CSSStyles{css: s}
}

// Stylesheet returns the underlying douceur stylesheet.
func (s *CSSStyles) Stylesheet() *css.Stylesheet {
	return s.css
}

// Len implements sheet.Sheet.
func (s *CSSStyles) Len() int {
	return len(s.css.Rules)
}

// Rule implements sheet.Sheet.
func (s *CSSStyles) Rule(i int) sheet.Rule {
	return Rule{s.css.Rules[i]}
}

// Insert implements sheet.Sheet.
func (s *CSSStyles) Insert(selector string, i int) (sheet.Rule, error) {
	if i < 0 || i > len(s.css.Rules) {
		return nil, fmt.Errorf("rule index %d out of range [0, %d]", i, len(s.css.Rules))
	}
	r := css.NewRule(css.QualifiedRule)
	r.Prelude = selector
	r.Selectors = []string{selector}
	s.css.Rules = append(s.css.Rules, nil)
	copy(s.css.Rules[i+1:], s.css.Rules[i:])
	s.css.Rules[i] = r
	return Rule{r}, nil
}

// InsertText implements sheet.Sheet, parsing the text with the douceur
// parser and splicing the resulting rules in.
func (s *CSSStyles) InsertText(cssText string, i int) error {
	if i < 0 || i > len(s.css.Rules) {
		return fmt.Errorf("rule index %d out of range [0, %d]", i, len(s.css.Rules))
	}
	parsed, err := parser.Parse(cssText)
	if err != nil {
		return fmt.Errorf("cannot parse CSS rule text: %w", err)
	}
	rules := make([]*css.Rule, 0, len(s.css.Rules)+len(parsed.Rules))
	rules = append(rules, s.css.Rules[:i]...)
	rules = append(rules, parsed.Rules...)
	rules = append(rules, s.css.Rules[i:]...)
	s.css.Rules = rules
	return nil
}

// Delete implements sheet.Sheet.
func (s *CSSStyles) Delete(i int) {
	s.css.Rules = append(s.css.Rules[:i], s.css.Rules[i+1:]...)
}

// Remove implements sheet.Sheet.
func (s *CSSStyles) Remove() {
	s.css.Rules = nil
	if s.owner != nil {
		s.owner.drop(s)
		s.owner = nil
	}
}

// Rule is an adapter implementing sheet.Rule on a douceur rule.
type Rule struct {
	r *css.Rule
}

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.r.Prelude
}

// Set implements sheet.Rule.
func (r Rule) Set(name, value string, important bool) {
	for _, d := range r.r.Declarations {
		if d.Property == name {
			d.Value = value
			d.Important = important
			return
		}
	}
	r.r.Declarations = append(r.r.Declarations, &css.Declaration{
		Property:  name,
		Value:     value,
		Important: important,
	})
}

// Decls implements sheet.Rule.
func (r Rule) Decls() []sheet.Decl {
	decls := make([]sheet.Decl, len(r.r.Declarations))
	for i, d := range r.r.Declarations {
		decls[i] = sheet.Decl{Name: d.Property, Value: d.Value, Important: d.Important}
	}
	return decls
}

var (
	_ sheet.Factory = &Factory{}
	_ sheet.Sheet   = &CSSStyles{}
	_ sheet.Rule    = Rule{}
)
