package produce

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"github.com/proc7ts/style-producer/rule"
	"github.com/proc7ts/style-producer/selector"
	"github.com/proc7ts/style-producer/sheet"
)

// Renderer is one stage of the render chain. A renderer may write to the
// target sheet through the context, modify the property set, and pass
// rendering on with Context.RenderNext.
//
// Renderers must be comparable values, as ordering constraints reference
// them by identity.
type Renderer interface {
	Render(ctx *Context, props rule.Properties) error
}

// Ordered is a Renderer with ordering constraints: it renders after all
// the renderers it names. Named renderers missing from the configured
// chain join it implicitly.
type Ordered interface {
	Renderer
	RenderedAfter() []Renderer
}

// Context is the per-pass rendering state of one rule. Each render pass
// starts with a cleared sheet; renderers repopulate it through the
// context.
type Context struct {
	// Rule is the rule being rendered.
	Rule *rule.Rule
	// Selector is the effective selector of the rule on the surface: the
	// root selector followed by the rule's absolute selector.
	Selector selector.Selector

	state     *ruleState
	chain     []Renderer
	next      int
	target    sheet.Rule
	targetIdx int
}

// RenderNext invokes the next renderer of the chain with the given
// properties. Past the end of the chain it is a no-op.
func (ctx *Context) RenderNext(props rule.Properties) error {
	if ctx.next >= len(ctx.chain) {
		return nil
	}
	r := ctx.chain[ctx.next]
	ctx.next++
	return r.Render(ctx, props)
}

// Sheet returns the rule's target sheet, allocating it from the factory
// on first use.
func (ctx *Context) Sheet() sheet.Sheet {
	st := ctx.state
	if st.sheet == nil {
		st.sheet = st.p.factory.NewSheet()
	}
	return st.sheet
}

// TargetRule returns the rule's own CSS rule on the target sheet,
// creating it with the effective selector on first use. Rule text
// inserted with InsertText stays ahead of it.
func (ctx *Context) TargetRule() (sheet.Rule, error) {
	if ctx.target != nil {
		return ctx.target, nil
	}
	s := ctx.Sheet()
	idx := s.Len()
	r, err := s.Insert(ctx.Selector.Text(), idx)
	if err != nil {
		return nil, err
	}
	ctx.target = r
	ctx.targetIdx = idx
	return r, nil
}

// InsertText writes verbatim CSS rule text to the target sheet, ahead of
// the rule created by TargetRule. Successive texts keep their insertion
// order.
func (ctx *Context) InsertText(cssText string) error {
	s := ctx.Sheet()
	idx := s.Len()
	if ctx.target != nil {
		idx = ctx.targetIdx
	}
	if err := s.InsertText(cssText, idx); err != nil {
		return err
	}
	if ctx.target != nil {
		ctx.targetIdx++
	}
	return nil
}

// orderChain sorts renderers topologically by their RenderedAfter
// constraints, keeping declaration order among unconstrained renderers.
// Renderers referenced by a constraint but missing from the input join
// the chain. A constraint cycle falls back to declaration order.
func orderChain(renderers []Renderer) []Renderer {
	var list []Renderer
	index := map[Renderer]int{}
	var add func(r Renderer)
	add = func(r Renderer) {
		if _, ok := index[r]; ok {
			return
		}
		index[r] = len(list)
		list = append(list, r)
		if o, ok := r.(Ordered); ok {
			for _, dep := range o.RenderedAfter() {
				add(dep)
			}
		}
	}
	for _, r := range renderers {
		add(r)
	}
	n := len(list)
	indeg := make([]int, n)
	succ := make([][]int, n)
	for i, r := range list {
		o, ok := r.(Ordered)
		if !ok {
			continue
		}
		for _, dep := range o.RenderedAfter() {
			j := index[dep]
			succ[j] = append(succ[j], i)
			indeg[i]++
		}
	}
	out := make([]Renderer, 0, n)
	done := make([]bool, n)
	for len(out) < n {
		found := -1
		for i := 0; i < n; i++ {
			if !done[i] && indeg[i] == 0 {
				found = i
				break
			}
		}
		if found < 0 {
			tracer().Errorf("cyclic renderer ordering constraints, falling back to declaration order")
			return list
		}
		done[found] = true
		out = append(out, list[found])
		for _, s := range succ[found] {
			indeg[s]--
		}
	}
	return out
}
