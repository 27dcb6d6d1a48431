package htmladapter

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func parseDoc(t *testing.T) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader("<html><head></head><body></body></html>"))
	if err != nil {
		t.Fatalf("cannot parse test document: %v", err)
	}
	return doc
}

func renderDoc(t *testing.T, doc *html.Node) string {
	t.Helper()
	var sb strings.Builder
	if err := html.Render(&sb, doc); err != nil {
		t.Fatalf("cannot render test document: %v", err)
	}
	return sb.String()
}

func TestStyleElementSync(t *testing.T) {
	doc := parseDoc(t)
	f := InHead(doc)
	s := f.NewSheet()
	r, err := s.Insert(".menu", 0)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	r.Set("color", "red", false)
	out := renderDoc(t, doc)
	if !strings.Contains(out, "<style>.menu { color: red; }") {
		t.Errorf("expected style element in head, isn't: %q", out)
	}
}

func TestInsertRejectsInvalidSelector(t *testing.T) {
	s := InHead(parseDoc(t)).NewSheet()
	if _, err := s.Insert("..", 0); err == nil {
		t.Errorf("expected invalid selector rejected")
	}
	if _, err := s.Insert(".menu > *", 0); err != nil {
		t.Errorf("expected valid selector accepted, isn't: %v", err)
	}
}

func TestRemoveDetachesStyleElement(t *testing.T) {
	doc := parseDoc(t)
	f := InHead(doc)
	s := f.NewSheet()
	s.Insert(".menu", 0)
	s.Remove()
	if out := renderDoc(t, doc); strings.Contains(out, "<style>") {
		t.Errorf("expected style element detached, isn't: %q", out)
	}
}

func TestInsertTextVerbatim(t *testing.T) {
	doc := parseDoc(t)
	s := InHead(doc).NewSheet()
	if err := s.InsertText("@media print { .menu { display: none } }", 0); err != nil {
		t.Fatalf("insert text failed: %v", err)
	}
	if out := renderDoc(t, doc); !strings.Contains(out, "@media print") {
		t.Errorf("expected verbatim rule text, isn't: %q", out)
	}
}
