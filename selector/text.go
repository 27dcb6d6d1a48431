package selector

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import "strings"

// QualifierFormat renders one qualifier for display text. It receives the
// qualifier string and returns its textual form, including any marker.
type QualifierFormat func(qualifier string) string

// defaultQualifierFormat renders a qualifier as "@<escaped qualifier>".
func defaultQualifierFormat(q string) string {
	return "@" + Escape(q)
}

// Text returns the CSS text of the selector. Qualifiers do not take part
// in CSS matching and are omitted.
func (s Selector) Text() string {
	return s.text(nil)
}

// DisplayText returns the display form of the selector: like Text, but
// with the qualifiers of each part appended in sorted order. The result is
// unique per fully qualified selector and serves as rule key. A nil format
// falls back to "@qualifier" rendering.
func (s Selector) DisplayText(format QualifierFormat) string {
	if format == nil {
		format = defaultQualifierFormat
	}
	return s.text(format)
}

func (s Selector) text(format QualifierFormat) string {
	var b strings.Builder
	lastWasPart := false
	for _, f := range s {
		switch frag := f.(type) {
		case Combinator:
			b.WriteString(string(frag))
			lastWasPart = false
		case Part:
			if lastWasPart {
				b.WriteByte(' ') // implicit descendant combinator
			}
			frag.writeText(&b, format)
			lastWasPart = true
		}
	}
	return b.String()
}

func (p Part) writeText(b *strings.Builder, format QualifierFormat) {
	named := false
	if p.Namespace != "" {
		b.WriteString(Escape(p.Namespace))
		b.WriteByte('|')
		if p.Element != "" {
			b.WriteString(Escape(p.Element))
		} else {
			b.WriteByte('*')
		}
		named = true
	} else if p.Element != "" {
		b.WriteString(Escape(p.Element))
		named = true
	}
	if p.ID != "" {
		b.WriteByte('#')
		b.WriteString(Escape(p.ID))
		named = true
	}
	for _, class := range p.Classes {
		b.WriteByte('.')
		b.WriteString(Escape(class))
		named = true
	}
	if p.Raw != "" {
		b.WriteString(p.Raw) // opaque, appended verbatim
		named = true
	}
	if !named {
		b.WriteByte('*') // qualifier-only part
	}
	if format != nil {
		for _, q := range p.Qualifiers {
			b.WriteString(format(q))
		}
	}
}
