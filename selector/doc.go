/*
Package selector models CSS-like selectors as structured data.

A selector is an ordered sequence of parts and combinators. Heterogeneous
selector input (raw strings, part structures, combinator tokens, or
mixed sequences of these) is brought into a canonical form by Normalize:
class and qualifier lists are deduplicated and sorted, empty fragments are
stripped, and structured qualifiers expose their coarser prefixes for
coarse-to-fine matching.

Raw selector text is never parsed. A raw string stays an opaque part and
is emitted verbatim; this package is not a CSS parser.

Formatting goes the other way: Text renders a normalized selector back
into CSS selector text with identifiers escaped, while DisplayText
additionally renders qualifiers and yields a unique key per fully
qualified selector.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package selector
