package selector

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

// Matches reports whether query matches the tail of sel. Both selectors
// are expected in normalized form.
//
// The query matches when its fragment sequence aligns with the final
// fragments of sel: combinators have to be identical, and each query part
// has to match the corresponding part of sel. A query part matches when
// every one of its set fields matches: namespace, element, identifier and
// raw text by equality, classes and qualifiers by set inclusion. Since
// normalization exposes the coarse variants of structured qualifiers, a
// query for qualifier "bar" matches a part carrying "bar:abc=vvv:xxx".
func Matches(sel, query Selector) bool {
	if len(query) == 0 {
		return true
	}
	if len(query) > len(sel) {
		return false
	}
	offset := len(sel) - len(query)
	for i, f := range query {
		switch q := f.(type) {
		case Combinator:
			c, ok := sel[offset+i].(Combinator)
			if !ok || c != q {
				return false
			}
		case Part:
			p, ok := sel[offset+i].(Part)
			if !ok || !q.matches(p) {
				return false
			}
		}
	}
	return true
}

func (p Part) matches(other Part) bool {
	if p.Namespace != "" && p.Namespace != other.Namespace {
		return false
	}
	if p.Element != "" && p.Element != other.Element {
		return false
	}
	if p.ID != "" && p.ID != other.ID {
		return false
	}
	if p.Raw != "" && p.Raw != other.Raw {
		return false
	}
	for _, class := range p.Classes {
		if !other.hasClass(class) {
			return false
		}
	}
	for _, q := range p.Qualifiers {
		if !other.HasQualifier(q) {
			return false
		}
	}
	return true
}
