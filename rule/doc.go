/*
Package rule implements the reactive rule tree.

A rule tree declares hierarchical, selector-addressed style rules. Every
node is identified by its normalized selector path, created lazily on
first lookup and identity stable afterwards. Nodes collect property
contributions, static maps or reactive sources, and expose the merged
result as a read channel with last-value replay. Merging is a fold over
the ordered contributions with last-write-wins semantics per key, and is
recomputed whenever any contributing source emits.

Lists of non-empty rules are live: they report membership deltas over
time and can be narrowed by sub-selectors, which is what a style producer
subscribes to.

All mutation is synchronous and single-threaded; there are no locks.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package rule

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'style.rule'.
func tracer() tracing.Trace {
	return tracing.Select("style.rule")
}
