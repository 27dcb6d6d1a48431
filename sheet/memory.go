package sheet

import (
	"fmt"
	"strings"
)

// Memory is an in-process rendering surface, mainly for testing and for
// producing CSS text without a browser or parser in the loop. The zero
// value is ready to use.
type Memory struct {
	sheets []*MemorySheet
}

// NewSheet implements Factory.
func (m *Memory) NewSheet() Sheet {
	s := &MemorySheet{owner: m}
	m.sheets = append(m.sheets, s)
	return s
}

// Sheets returns the live sheets in creation order.
func (m *Memory) Sheets() []*MemorySheet {
	return m.sheets
}

// CSS serializes all live sheets into one stylesheet text.
func (m *Memory) CSS() string {
	var sb strings.Builder
	for _, s := range m.sheets {
		sb.WriteString(s.CSS())
	}
	return sb.String()
}

func (m *Memory) drop(s *MemorySheet) {
	for i, ms := range m.sheets {
		if ms == s {
			m.sheets = append(m.sheets[:i], m.sheets[i+1:]...)
			return
		}
	}
}

// MemorySheet implements Sheet on a slice of rules.
type MemorySheet struct {
	owner *Memory
	rules []*MemoryRule
}

// Len implements Sheet.
func (s *MemorySheet) Len() int {
	return len(s.rules)
}

// Rule implements Sheet.
func (s *MemorySheet) Rule(i int) Rule {
	return s.rules[i]
}

// Insert implements Sheet.
func (s *MemorySheet) Insert(selector string, i int) (Rule, error) {
	if i < 0 || i > len(s.rules) {
		return nil, fmt.Errorf("rule index %d out of range [0, %d]", i, len(s.rules))
	}
	r := &MemoryRule{sel: selector}
	s.rules = append(s.rules, nil)
	copy(s.rules[i+1:], s.rules[i:])
	s.rules[i] = r
	return r, nil
}

// InsertText implements Sheet, storing the rule text verbatim.
func (s *MemorySheet) InsertText(cssText string, i int) error {
	if i < 0 || i > len(s.rules) {
		return fmt.Errorf("rule index %d out of range [0, %d]", i, len(s.rules))
	}
	r := &MemoryRule{raw: cssText}
	s.rules = append(s.rules, nil)
	copy(s.rules[i+1:], s.rules[i:])
	s.rules[i] = r
	return nil
}

// Delete implements Sheet.
func (s *MemorySheet) Delete(i int) {
	s.rules = append(s.rules[:i], s.rules[i+1:]...)
}

// Remove implements Sheet.
func (s *MemorySheet) Remove() {
	s.rules = nil
	if s.owner != nil {
		s.owner.drop(s)
		s.owner = nil
	}
}

// CSS serializes the sheet.
func (s *MemorySheet) CSS() string {
	var sb strings.Builder
	for _, r := range s.rules {
		sb.WriteString(r.CSS())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// MemoryRule implements Rule. A rule is either structured, with selector
// and declarations, or verbatim text.
type MemoryRule struct {
	sel   string
	raw   string
	decls []Decl
}

// Selector implements Rule.
func (r *MemoryRule) Selector() string {
	return r.sel
}

// Set implements Rule.
func (r *MemoryRule) Set(name, value string, important bool) {
	for i := range r.decls {
		if r.decls[i].Name == name {
			r.decls[i].Value = value
			r.decls[i].Important = important
			return
		}
	}
	r.decls = append(r.decls, Decl{Name: name, Value: value, Important: important})
}

// Decls implements Rule.
func (r *MemoryRule) Decls() []Decl {
	return r.decls
}

// CSS serializes the rule.
func (r *MemoryRule) CSS() string {
	if r.raw != "" {
		return r.raw
	}
	var sb strings.Builder
	sb.WriteString(r.sel)
	sb.WriteString(" {")
	for _, d := range r.decls {
		sb.WriteString(" ")
		sb.WriteString(d.Name)
		sb.WriteString(": ")
		sb.WriteString(d.Value)
		if d.Important {
			sb.WriteString(" !important")
		}
		sb.WriteString(";")
	}
	sb.WriteString(" }")
	return sb.String()
}

var (
	_ Factory = &Memory{}
	_ Sheet   = &MemorySheet{}
	_ Rule    = &MemoryRule{}
)
