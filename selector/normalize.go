package selector

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"sort"
	"strings"
)

// Normalize builds the canonical form of a selector from any mix of the
// accepted literal formats:
//
//   - a raw string, wrapped into a single opaque part, unless it is one
//     of the combinator tokens ">", "+" or "~", which count as combinators;
//   - a Part, whose class and qualifier lists get deduplicated and sorted;
//   - a Combinator;
//   - an already normalized Selector, which is spliced in;
//   - a slice of any of the above.
//
// Empty parts are dropped, and so is every combinator that is not strictly
// between two non-empty parts, except for a single leading combinator,
// which relates the selector to the enclosing rule's selector. Unrecognized
// items are silently ignored. Normalization is idempotent.
func Normalize(sel ...any) Selector {
	n := normalizer{}
	n.append(sel)
	return n.finish()
}

type normalizer struct {
	result  Selector
	pending Combinator
}

func (n *normalizer) append(items []any) {
	for _, item := range items {
		switch it := item.(type) {
		case nil:
			// skip
		case string:
			if c := Combinator(it); isCombinator(c) {
				n.combinator(c)
			} else if it != "" {
				n.part(Part{Raw: it})
			}
		case Combinator:
			if isCombinator(it) {
				n.combinator(it)
			}
		case Part:
			n.part(normalizePart(it))
		case *Part:
			if it != nil {
				n.part(normalizePart(*it))
			}
		case Selector:
			for _, f := range it {
				switch ff := f.(type) {
				case Combinator:
					n.combinator(ff)
				case Part:
					n.part(normalizePart(ff))
				}
			}
		case []any:
			n.append(it)
		case []string:
			for _, s := range it {
				n.append([]any{s})
			}
		}
	}
}

func (n *normalizer) combinator(c Combinator) {
	if n.pending != "" {
		return // consecutive combinators: keep the first
	}
	n.pending = c
}

func (n *normalizer) part(p Part) {
	if p.IsEmpty() {
		return // dropped; a pending combinator stays pending
	}
	if n.pending != "" {
		n.result = append(n.result, n.pending)
		n.pending = ""
	}
	n.result = append(n.result, p)
}

func (n *normalizer) finish() Selector {
	// a trailing combinator dangles and is dropped
	return n.result
}

func normalizePart(p Part) Part {
	p.Classes = normalizeNames(p.Classes)
	p.Qualifiers = exposeQualifiers(normalizeNames(p.Qualifiers))
	return p
}

// normalizeNames drops empty strings, deduplicates and sorts.
func normalizeNames(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name != "" {
			out = append(out, name)
		}
	}
	if len(out) == 0 {
		return nil
	}
	sort.Strings(out)
	return dedupSorted(out)
}

func dedupSorted(names []string) []string {
	j := 0
	for i, name := range names {
		if i == 0 || names[j-1] != name {
			names[j] = name
			j++
		}
	}
	return names[:j]
}

// exposeQualifiers derives the coarser variants of structured qualifiers.
// A qualifier of the form "name:rest" additionally exposes "name" itself
// and "name:<segment>", where <segment> is rest up to the first "=". For
// example, "bar:abc=vvv:xxx" exposes "bar" and "bar:abc" next to itself.
func exposeQualifiers(qs []string) []string {
	if len(qs) == 0 {
		return nil
	}
	out := qs
	for _, q := range qs {
		name, rest, ok := strings.Cut(q, ":")
		if !ok || name == "" {
			continue
		}
		out = append(out, name)
		if segment, _, cut := strings.Cut(rest, "="); cut && segment != "" {
			out = append(out, name+":"+segment)
		}
	}
	sort.Strings(out)
	return dedupSorted(out)
}
