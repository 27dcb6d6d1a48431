/*
Package produce connects a rule tree to a rendering surface.

A producer tracks the non-empty rules of a tree and renders each of them
into its own stylesheet on the surface. Rendering is incremental: when a
rule's merged properties change, its sheet is cleared and rewritten on
the next scheduled pass, with several synchronous updates coalescing
into one write. When a rule goes away its sheet is disposed of.

Rendering itself runs through a chain of renderers. The default chain
emits at-rules, verbatim CSS text and CSS declarations; custom renderers
slot into the chain and may declare ordering constraints.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package produce

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'style.produce'.
func tracer() tracing.Trace {
	return tracing.Select("style.produce")
}
