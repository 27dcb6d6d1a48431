package produce

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"github.com/proc7ts/style-producer/event"
	"github.com/proc7ts/style-producer/rule"
	"github.com/proc7ts/style-producer/sched"
	"github.com/proc7ts/style-producer/selector"
	"github.com/proc7ts/style-producer/sheet"
)

// Config configures style production.
type Config struct {
	// RootSelector is prepended to every rendered rule's selector. It
	// anchors the produced styles to an element on the surface. Defaults
	// to ':root'. Accepts anything selector.Normalize accepts.
	RootSelector any
	// Scheduler batches render passes. Defaults to sched.Now, which
	// renders immediately; pass a frame-bound scheduler to coalesce
	// updates per animation frame.
	Scheduler sched.Scheduler
	// Factory allocates stylesheets on the rendering surface. Required.
	Factory sheet.Factory
	// Renderers extends the render chain. The default renderers are
	// always part of the chain; extensions run between RawText and
	// Declarations unless ordering constraints say otherwise.
	Renderers []Renderer
}

// Produce starts rendering the tracked rules to the configured surface.
// Each rule gets a stylesheet of its own, rewritten on every effective
// change of its merged properties and disposed of when the rule goes
// away. Cancelling the returned subscription stops production and
// removes all produced sheets.
func Produce(rules *rule.List, cfg Config) *event.Subscription {
	if cfg.Factory == nil {
		panic("produce: no sheet factory configured")
	}
	p := &producer{
		root:    selector.Normalize(rootSelector(cfg)),
		sched:   cfg.Scheduler,
		factory: cfg.Factory,
		states:  map[*rule.Rule]*ruleState{},
	}
	if p.sched == nil {
		p.sched = sched.Now()
	}
	all := make([]Renderer, 0, len(cfg.Renderers)+3)
	all = append(all, AtRules, RawText)
	all = append(all, cfg.Renderers...)
	all = append(all, Declarations)
	p.chain = orderChain(all)

	track := rules.Track(func(added, removed []*rule.Rule) {
		for _, r := range removed {
			p.stop(r)
		}
		for _, r := range added {
			p.start(r)
		}
	})
	return event.NewSubscription(func() {
		track.Cancel()
		states := make([]*ruleState, 0, len(p.states))
		for _, st := range p.states {
			states = append(states, st)
		}
		p.states = map[*rule.Rule]*ruleState{}
		for _, st := range states {
			st.stop()
		}
	})
}

func rootSelector(cfg Config) any {
	if cfg.RootSelector == nil {
		return ":root"
	}
	return cfg.RootSelector
}

type producer struct {
	root    selector.Selector
	sched   sched.Scheduler
	factory sheet.Factory
	chain   []Renderer
	states  map[*rule.Rule]*ruleState
}

func (p *producer) start(r *rule.Rule) {
	if _, ok := p.states[r]; ok {
		return
	}
	st := &ruleState{p: p, r: r}
	p.states[r] = st
	st.sub = r.Read().Subscribe(st.request)
	tracer().Debugf("producing rule %q", st.selector().Text())
}

func (p *producer) stop(r *rule.Rule) {
	st := p.states[r]
	if st == nil {
		return
	}
	delete(p.states, r)
	st.stop()
}

// ruleState is the production state of one tracked rule.
type ruleState struct {
	p         *producer
	r         *rule.Rule
	sub       *event.Subscription
	sheet     sheet.Sheet
	pending   rule.Properties
	scheduled bool
	stopped   bool
}

func (st *ruleState) selector() selector.Selector {
	return selector.Normalize(st.p.root, st.r.AbsoluteSelector())
}

// request notes the latest merged properties and schedules a render
// pass. Updates arriving before the pass runs replace the pending
// payload, so one pass renders the latest state only.
func (st *ruleState) request(props rule.Properties) {
	st.pending = props
	if st.scheduled || st.stopped {
		return
	}
	st.scheduled = true
	st.p.sched.Schedule(st.flush)
}

// stop tears the rule's production down, destroying its render target
// right away. A still scheduled flush finds the state stopped and does
// nothing.
func (st *ruleState) stop() {
	if st.stopped {
		return
	}
	st.stopped = true
	st.sub.Cancel()
	if st.sheet != nil {
		st.sheet.Remove()
		st.sheet = nil
	}
}

// flush runs one render pass: clear the sheet, then rebuild it through
// the render chain. A stopped rule disposes of its sheet instead.
func (st *ruleState) flush() {
	st.scheduled = false
	if st.stopped {
		if st.sheet != nil {
			st.sheet.Remove()
			st.sheet = nil
		}
		return
	}
	props := st.pending
	if st.sheet != nil {
		sheet.Clear(st.sheet)
	}
	ctx := &Context{
		Rule:     st.r,
		Selector: st.selector(),
		state:    st,
		chain:    st.p.chain,
	}
	if err := ctx.RenderNext(props); err != nil {
		tracer().Errorf("cannot render rule %q: %v", ctx.Selector.Text(), err)
	}
}
