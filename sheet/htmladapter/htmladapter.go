/*
Package htmladapter renders stylesheets into style elements of an HTML
parse tree.

Every sheet becomes one <style> element appended to a container node,
with its text content kept in sync on every mutation. Selectors are
validated with cascadia before insertion, so malformed selector text is
rejected instead of silently producing a dead rule.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package htmladapter

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"github.com/proc7ts/style-producer/sheet"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Factory implements sheet.Factory on an HTML container node, usually
// the document's <head>.
type Factory struct {
	container *html.Node
}

// New creates a factory appending style elements to the given container.
func New(container *html.Node) *Factory {
	return &Factory{container: container}
}

// InHead creates a factory appending style elements to the <head> of the
// given document, or to the document node itself if it has no head.
func InHead(doc *html.Node) *Factory {
	if head := findElement(atom.Head, doc); head != nil {
		return New(head)
	}
	return New(doc)
}

// NewSheet implements sheet.Factory.
func (f *Factory) NewSheet() sheet.Sheet {
	el := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Style,
		Data:     "style",
	}
	text := &html.Node{Type: html.TextNode}
	el.AppendChild(text)
	f.container.AppendChild(el)
	return &StyleElement{el: el, text: text}
}

// StyleElement implements sheet.Sheet on one <style> element.
type StyleElement struct {
	el   *html.Node
	text *html.Node
	mem  sheet.MemorySheet
}

// Node returns the underlying style element.
func (s *StyleElement) Node() *html.Node {
	return s.el
}

// Len implements sheet.Sheet.
func (s *StyleElement) Len() int {
	return s.mem.Len()
}

// Rule implements sheet.Sheet.
func (s *StyleElement) Rule(i int) sheet.Rule {
	return syncedRule{inner: s.mem.Rule(i), sheet: s}
}

// Insert implements sheet.Sheet. The selector text must compile as a
// CSS selector.
func (s *StyleElement) Insert(selector string, i int) (sheet.Rule, error) {
	if _, err := cascadia.ParseGroupWithPseudoElements(selector); err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	r, err := s.mem.Insert(selector, i)
	if err != nil {
		return nil, err
	}
	s.sync()
	return syncedRule{inner: r, sheet: s}, nil
}

// InsertText implements sheet.Sheet.
func (s *StyleElement) InsertText(cssText string, i int) error {
	if err := s.mem.InsertText(cssText, i); err != nil {
		return err
	}
	s.sync()
	return nil
}

// Delete implements sheet.Sheet.
func (s *StyleElement) Delete(i int) {
	s.mem.Delete(i)
	s.sync()
}

// Remove implements sheet.Sheet, detaching the style element from its
// container.
func (s *StyleElement) Remove() {
	s.mem.Remove()
	if s.el.Parent != nil {
		s.el.Parent.RemoveChild(s.el)
	}
}

func (s *StyleElement) sync() {
	s.text.Data = s.mem.CSS()
}

// syncedRule propagates declaration changes into the style element text.
type syncedRule struct {
	inner sheet.Rule
	sheet *StyleElement
}

func (r syncedRule) Selector() string {
	return r.inner.Selector()
}

func (r syncedRule) Set(name, value string, important bool) {
	r.inner.Set(name, value, important)
	r.sheet.sync()
}

func (r syncedRule) Decls() []sheet.Decl {
	return r.inner.Decls()
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}

var (
	_ sheet.Factory = &Factory{}
	_ sheet.Sheet   = &StyleElement{}
	_ sheet.Rule    = syncedRule{}
)
