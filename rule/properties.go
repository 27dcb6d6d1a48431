package rule

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"github.com/proc7ts/style-producer/event"
	"github.com/proc7ts/style-producer/value"
)

// Properties maps CSS property names to their values. Keys starting with
// CustomPrefix name custom, non-CSS properties which renderers skip; the
// RawCSS key carries opaque verbatim CSS text.
type Properties map[string]value.Value

// CustomPrefix marks custom property keys. Custom properties take part in
// merging and can be read back, but are never rendered as CSS
// declarations.
const CustomPrefix = "$"

// RawCSS is the property key holding opaque CSS text to be emitted
// verbatim, ahead of the rule's own declarations.
const RawCSS = "$$css"

// PropertySource is a reactive source of properties for a rule. A plain
// Properties map is itself a (static) PropertySource, and so is any
// cached event source of Properties.
type PropertySource = event.Source[Properties]

// Subscribe implements event.Source: a plain property map replays itself
// once and never updates.
func (p Properties) Subscribe(recv event.Receiver[Properties]) *event.Subscription {
	sub := event.NewSubscription(nil)
	recv(p)
	return sub
}

// equalProperties compares two property sets key by key.
func equalProperties(a, b Properties) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !value.Equal(av, bv) {
			return false
		}
	}
	return true
}

// mergeProperties folds ordered partial property sets left to right, with
// later sources overriding earlier ones per key.
func mergeProperties(parts []Properties) Properties {
	merged := Properties{}
	for _, part := range parts {
		for k, v := range part {
			merged[k] = v
		}
	}
	return merged
}
