package rule

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"github.com/proc7ts/style-producer/event"
	"github.com/proc7ts/style-producer/selector"
)

// Rule is one addressable node of a rule tree. It is identified by its
// normalized selector relative to its parent, owns an ordered collection
// of property contributions, and exposes the merged property set as a
// reactive read channel.
//
// Rules are created lazily by lookups (see Rule.Rule) and stay identity
// stable: looking the same selector path up twice yields the identical
// node. All operations are synchronous and single-threaded.
type Rule struct {
	root     *Rule
	parent   *Rule
	sel      selector.Selector // selector relative to parent: one part, optionally preceded by a combinator
	key      string
	children []*Rule
	index    map[string]*Rule
	contribs []*contribution
	readers  event.Emitter[Properties]
	cached   Properties
	valid    bool
	removed  bool

	// set on the root node only
	updates *event.Emitter[Delta]
}

// contribution is one registered property source with its latest state.
type contribution struct {
	props Properties
	sub   *event.Subscription
}

// Delta is one batch of membership changes in the set of non-empty rules.
type Delta struct {
	Added   []*Rule
	Removed []*Rule
}

// NewRoot creates the root of a new rule tree: the distinguished node
// with empty selector and no parent.
func NewRoot() *Rule {
	r := &Rule{
		index:   map[string]*Rule{},
		updates: &event.Emitter[Delta]{},
	}
	r.root = r
	return r
}

// Root returns the root of the tree this rule belongs to.
func (r *Rule) Root() *Rule {
	return r.root
}

// Parent returns the parent rule, or nil for the root.
func (r *Rule) Parent() *Rule {
	return r.parent
}

// Selector returns the rule's normalized selector relative to its parent.
func (r *Rule) Selector() selector.Selector {
	return r.sel
}

// AbsoluteSelector returns the rule's selector relative to the tree root:
// the concatenation of all ancestor selectors.
func (r *Rule) AbsoluteSelector() selector.Selector {
	if r.parent == nil {
		return nil
	}
	return append(r.parent.AbsoluteSelector(), r.sel...)
}

// Key returns the unique textual key of the rule's own selector,
// including qualifiers.
func (r *Rule) Key() string {
	return r.key
}

// Rule looks up, and lazily creates, the descendant rule addressed by
// the given selector, walking one child per normalized part group. An
// empty selector addresses the receiver itself.
func (r *Rule) Rule(sel ...any) *Rule {
	norm := selector.Normalize(sel...)
	node := r
	i := 0
	for i < len(norm) {
		group := selector.Selector{}
		if c, ok := norm[i].(selector.Combinator); ok {
			group = append(group, c)
			i++
		}
		if i < len(norm) {
			group = append(group, norm[i])
			i++
		}
		node = node.child(group)
	}
	return node
}

func (r *Rule) child(group selector.Selector) *Rule {
	key := group.DisplayText(nil)
	if ch, ok := r.index[key]; ok {
		return ch
	}
	ch := &Rule{
		root:   r.root,
		parent: r,
		sel:    group,
		key:    key,
		index:  map[string]*Rule{},
	}
	r.index[key] = ch
	r.children = append(r.children, ch)
	tracer().Debugf("created rule %q below %q", key, r.key)
	return ch
}

func (r *Rule) detachChild(ch *Rule) {
	if r.index[ch.key] != ch {
		return
	}
	delete(r.index, ch.key)
	for i, c := range r.children {
		if c == ch {
			r.children = append(r.children[:i], r.children[i+1:]...)
			break
		}
	}
	ch.parent = nil
}

// Add registers a property contribution and returns the rule itself, for
// fluent chaining. Use Contribute to obtain the retraction handle.
func (r *Rule) Add(src PropertySource) *Rule {
	r.Contribute(src)
	return r
}

// Contribute registers a reactive property contribution. Contributions
// merge left to right in registration order, later ones overriding
// earlier ones per key. Cancelling the returned subscription, or
// completion of the source, retracts the contribution and recomputes
// the merge. Contributing to a removed rule is ignored.
func (r *Rule) Contribute(src PropertySource) *event.Subscription {
	if r.removed {
		tracer().Infof("ignoring contribution to removed rule %q", r.key)
		return event.ClosedSubscription()
	}
	c := &contribution{}
	wasEmpty := len(r.contribs) == 0
	r.contribs = append(r.contribs, c)
	if wasEmpty {
		r.root.updates.Emit(Delta{Added: []*Rule{r}})
	}
	c.sub = src.Subscribe(func(p Properties) {
		c.props = p
		r.invalidate()
	})
	c.sub.WhenDone(func() { r.retract(c) })
	return c.sub
}

func (r *Rule) retract(c *contribution) {
	if r.removed {
		return // Remove clears contributions wholesale
	}
	found := false
	for i, cc := range r.contribs {
		if cc == c {
			r.contribs = append(r.contribs[:i], r.contribs[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return
	}
	r.invalidate()
	if len(r.contribs) == 0 {
		r.root.updates.Emit(Delta{Removed: []*Rule{r}})
		r.pruneUp()
	}
}

// pruneUp detaches removed rules once their subtree has drained, walking
// up through empty ancestors. A detached selector path resolves to a
// fresh, usable node on the next lookup.
func (r *Rule) pruneUp() {
	node := r
	for node != nil && node.parent != nil && node.Empty() {
		parent := node.parent
		if node.removed {
			parent.detachChild(node)
		}
		node = parent
	}
}

// invalidate recomputes the merged properties. Without readers the
// computation is deferred until the next subscription; with readers the
// merge is emitted only when it actually changed, so several updates
// within one synchronous pass coalesce into one emission.
func (r *Rule) invalidate() {
	if !r.readers.HasReceivers() {
		r.valid = false
		return
	}
	merged := r.merge()
	if r.valid && equalProperties(merged, r.cached) {
		return
	}
	r.cached = merged
	r.valid = true
	r.readers.Emit(merged)
}

func (r *Rule) merge() Properties {
	parts := make([]Properties, len(r.contribs))
	for i, c := range r.contribs {
		parts[i] = c.props
	}
	return mergeProperties(parts)
}

// Read returns the rule's live merged property set: a source replaying
// the current merge to new subscribers and emitting on every effective
// change. The channel completes when the rule is removed.
func (r *Rule) Read() event.Source[Properties] {
	return ruleRead{r}
}

type ruleRead struct {
	r *Rule
}

func (rd ruleRead) Subscribe(recv event.Receiver[Properties]) *event.Subscription {
	r := rd.r
	if r.removed {
		return event.ClosedSubscription()
	}
	if !r.valid {
		r.cached = r.merge()
		r.valid = true
	}
	sub := r.readers.Subscribe(recv)
	recv(r.cached)
	return sub
}

// Empty reports whether the rule holds no contributions and has no
// non-empty descendants.
func (r *Rule) Empty() bool {
	if len(r.contribs) > 0 {
		return false
	}
	for _, ch := range r.children {
		if !ch.Empty() {
			return false
		}
	}
	return true
}

// Remove detaches the rule's own contributions and completes its read
// channel. If no non-empty descendants remain, the node itself detaches
// from its parent; otherwise it stays attached as a defunct node and
// detaches once the last descendant contribution drains. A later lookup
// of a detached selector path creates a fresh node.
func (r *Rule) Remove() {
	if r.removed {
		return
	}
	r.removed = true
	hadProps := len(r.contribs) > 0
	contribs := r.contribs
	r.contribs = nil
	for _, c := range contribs {
		c.sub.Cancel()
	}
	if hadProps {
		r.root.updates.Emit(Delta{Removed: []*Rule{r}})
	}
	r.pruneUp()
	r.readers.Close()
	tracer().Debugf("removed rule %q", r.key)
}
