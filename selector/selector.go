package selector

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import "sort"

// Combinator relates two adjacent selector parts. The descendant
// relationship is implicit: two adjacent parts without a combinator
// between them are in descendant relation.
type Combinator string

// The recognized combinators.
const (
	Child           Combinator = ">"
	AdjacentSibling Combinator = "+"
	GeneralSibling  Combinator = "~"
)

func isCombinator(c Combinator) bool {
	switch c {
	case Child, AdjacentSibling, GeneralSibling:
		return true
	}
	return false
}

// Fragment is one element of a normalized selector: either a Part or a
// Combinator.
type Fragment interface {
	isFragment()
}

func (Combinator) isFragment() {}
func (Part) isFragment()       {}

// Selector is a normalized selector: an ordered sequence of parts and
// combinators. A well-formed Selector never contains two adjacent
// combinators, never starts a combinator without a preceding part inside
// the sequence, and never ends in a combinator. A leading combinator is
// legal, though: it relates the selector to the one of the enclosing rule.
type Selector []Fragment

// Part is one non-combinator unit of a selector. All fields are optional.
// A part without any field set is empty and will be dropped by Normalize.
type Part struct {
	Namespace  string   // namespace alias, rendered as "ns|"
	Element    string   // element name
	ID         string   // element identifier
	Classes    []string // class names; sorted and deduplicated by Normalize
	Raw        string   // opaque trailing text: attributes, pseudo-classes, …
	Qualifiers []string // non-CSS qualifiers; sorted, deduplicated, exposed
}

// IsEmpty reports whether no field of the part is set.
func (p Part) IsEmpty() bool {
	return p.Namespace == "" && p.Element == "" && p.ID == "" &&
		len(p.Classes) == 0 && p.Raw == "" && len(p.Qualifiers) == 0
}

// HasQualifier reports whether q is among the part's qualifiers. Parts
// produced by Normalize carry exposed qualifier sets, so coarse prefixes
// of structured qualifiers will be found, too.
func (p Part) HasQualifier(q string) bool {
	i := sort.SearchStrings(p.Qualifiers, q)
	return i < len(p.Qualifiers) && p.Qualifiers[i] == q
}

func (p Part) hasClass(c string) bool {
	i := sort.SearchStrings(p.Classes, c)
	return i < len(p.Classes) && p.Classes[i] == c
}
