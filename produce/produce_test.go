package produce_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/proc7ts/style-producer/event"
	"github.com/proc7ts/style-producer/produce"
	"github.com/proc7ts/style-producer/rule"
	"github.com/proc7ts/style-producer/sched"
	"github.com/proc7ts/style-producer/selector"
	"github.com/proc7ts/style-producer/sheet"
	"github.com/proc7ts/style-producer/value"
)

func TestProduceRendersRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "style.produce")
	defer teardown()
	root := rule.NewRoot()
	root.Rule(".custom").Add(rule.Properties{"background": "white"})
	mem := &sheet.Memory{}
	produce.Produce(root.Rules(), produce.Config{RootSelector: ".root", Factory: mem})
	css := mem.CSS()
	expected := ".root .custom { background: white; }\n"
	if css != expected {
		t.Errorf("expected %q, isn't: %q", expected, css)
	}
}

func TestProduceChildCombinator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "style.produce")
	defer teardown()
	root := rule.NewRoot()
	root.Rule(selector.Child, ".custom").Add(rule.Properties{"color": "red"})
	mem := &sheet.Memory{}
	produce.Produce(root.Rules(), produce.Config{RootSelector: ".root", Factory: mem})
	expected := ".root>.custom { color: red; }\n"
	if css := mem.CSS(); css != expected {
		t.Errorf("expected %q, isn't: %q", expected, css)
	}
}

func TestProduceImportantAndHyphenation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "style.produce")
	defer teardown()
	root := rule.NewRoot()
	root.Rule(".custom").Add(rule.Properties{
		"background": "white !important",
		"fontSize":   value.Length.Of(12, "px"),
	})
	mem := &sheet.Memory{}
	produce.Produce(root.Rules(), produce.Config{RootSelector: ".root", Factory: mem})
	expected := ".root .custom { background: white !important; font-size: 12px; }\n"
	if css := mem.CSS(); css != expected {
		t.Errorf("expected %q, isn't: %q", expected, css)
	}
}

func TestProduceSkipsCustomProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "style.produce")
	defer teardown()
	root := rule.NewRoot()
	root.Rule(".custom").Add(rule.Properties{"$state": "on", "color": "red"})
	mem := &sheet.Memory{}
	produce.Produce(root.Rules(), produce.Config{RootSelector: ".root", Factory: mem})
	expected := ".root .custom { color: red; }\n"
	if css := mem.CSS(); css != expected {
		t.Errorf("expected custom property skipped, isn't: %q", css)
	}
}

func TestProduceRawTextPrecedesDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "style.produce")
	defer teardown()
	root := rule.NewRoot()
	root.Rule(".custom").Add(rule.Properties{
		rule.RawCSS: "color: red; padding: 0",
		"color":     "blue",
	})
	mem := &sheet.Memory{}
	produce.Produce(root.Rules(), produce.Config{RootSelector: ".root", Factory: mem})
	expected := ".root .custom { color: red; padding: 0 }\n" +
		".root .custom { color: blue; }\n"
	if css := mem.CSS(); css != expected {
		t.Errorf("expected raw text ahead of declarations, isn't: %q", css)
	}
}

func TestProduceAtRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "style.produce")
	defer teardown()
	root := rule.NewRoot()
	root.Rule(".custom").Add(rule.Properties{
		"@import:theme.css": "screen",
		"@namespace:svg":    "http://www.w3.org/2000/svg",
		"color":             "red",
	})
	mem := &sheet.Memory{}
	produce.Produce(root.Rules(), produce.Config{RootSelector: ".root", Factory: mem})
	expected := "@import url(\"theme.css\") screen;\n" +
		"@namespace svg url(\"http://www.w3.org/2000/svg\");\n" +
		".root .custom { color: red; }\n"
	if css := mem.CSS(); css != expected {
		t.Errorf("expected at-rules ahead of declarations, isn't: %q", css)
	}
}

func TestProduceCoalescesUpdatesPerFrame(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "style.produce")
	defer teardown()
	root := rule.NewRoot()
	src := &event.Cached[rule.Properties]{}
	root.Rule(".custom").Contribute(src)
	src.Set(rule.Properties{"color": "red"})
	mem := &sheet.Memory{}
	frames := &sched.Manual{}
	counter := &countingRenderer{}
	produce.Produce(root.Rules(), produce.Config{
		RootSelector: ".root",
		Scheduler:    frames,
		Factory:      mem,
		Renderers:    []produce.Renderer{counter},
	})
	if mem.CSS() != "" {
		t.Fatalf("expected nothing rendered before the frame, isn't: %q", mem.CSS())
	}
	src.Set(rule.Properties{"color": "green"})
	src.Set(rule.Properties{"color": "blue"})
	frames.Flush()
	expected := ".root .custom { color: blue; }\n"
	if css := mem.CSS(); css != expected {
		t.Errorf("expected latest state rendered, isn't: %q", css)
	}
	if counter.renders != 1 {
		t.Errorf("expected one render pass per frame, got %d", counter.renders)
	}
}

func TestProduceSiblingUpdateDoesNotRerender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "style.produce")
	defer teardown()
	root := rule.NewRoot()
	stable := root.Rule(".stable")
	stable.Add(rule.Properties{"color": "red"})
	src := &event.Cached[rule.Properties]{}
	root.Rule(".busy").Contribute(src)
	src.Set(rule.Properties{"color": "green"})
	counter := &countingRenderer{only: stable}
	produce.Produce(root.Rules(), produce.Config{
		RootSelector: ".root",
		Factory:      &sheet.Memory{},
		Renderers:    []produce.Renderer{counter},
	})
	if counter.renders != 1 {
		t.Fatalf("expected one initial render, got %d", counter.renders)
	}
	src.Set(rule.Properties{"color": "blue"})
	src.Set(rule.Properties{"color": "black"})
	if counter.renders != 1 {
		t.Errorf("expected sibling updates not to rerender, got %d renders", counter.renders)
	}
}

func TestProduceRemovesSheetWithRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "style.produce")
	defer teardown()
	root := rule.NewRoot()
	r := root.Rule(".custom")
	retract := r.Contribute(rule.Properties{"color": "red"})
	mem := &sheet.Memory{}
	produce.Produce(root.Rules(), produce.Config{RootSelector: ".root", Factory: mem})
	if mem.CSS() == "" {
		t.Fatalf("expected rule rendered")
	}
	retract.Cancel()
	if css := mem.CSS(); css != "" {
		t.Errorf("expected sheet removed with its rule, isn't: %q", css)
	}
}

func TestProduceCancelRemovesAllSheets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "style.produce")
	defer teardown()
	root := rule.NewRoot()
	root.Rule(".one").Add(rule.Properties{"color": "red"})
	root.Rule(".two").Add(rule.Properties{"color": "blue"})
	mem := &sheet.Memory{}
	sub := produce.Produce(root.Rules(), produce.Config{RootSelector: ".root", Factory: mem})
	if len(mem.Sheets()) != 2 {
		t.Fatalf("expected two sheets produced, got %d", len(mem.Sheets()))
	}
	sub.Cancel()
	if css := mem.CSS(); css != "" {
		t.Errorf("expected all sheets removed on cancel, isn't: %q", css)
	}
	root.Rule(".three").Add(rule.Properties{"color": "green"})
	if len(mem.Sheets()) != 0 {
		t.Errorf("expected no production after cancel")
	}
}

func TestProduceCancelDestroysSheetsWithoutFrames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "style.produce")
	defer teardown()
	root := rule.NewRoot()
	root.Rule(".custom").Add(rule.Properties{"color": "red"})
	mem := &sheet.Memory{}
	frames := &sched.Manual{}
	sub := produce.Produce(root.Rules(), produce.Config{
		RootSelector: ".root",
		Scheduler:    frames,
		Factory:      mem,
	})
	frames.Flush()
	if len(mem.Sheets()) != 1 {
		t.Fatalf("expected one sheet rendered, got %d", len(mem.Sheets()))
	}
	// no further frames arrive after teardown
	sub.Cancel()
	if len(mem.Sheets()) != 0 {
		t.Errorf("expected render targets destroyed on cancel, %d sheet(s) still live",
			len(mem.Sheets()))
	}
	frames.Flush() // leftover jobs must stay without effect
	if len(mem.Sheets()) != 0 {
		t.Errorf("expected no sheet resurrected by a late frame")
	}
}

func TestProduceRemovalSuppressesScheduledRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "style.produce")
	defer teardown()
	root := rule.NewRoot()
	retract := root.Rule(".custom").Contribute(rule.Properties{"color": "red"})
	mem := &sheet.Memory{}
	frames := &sched.Manual{}
	produce.Produce(root.Rules(), produce.Config{
		RootSelector: ".root",
		Scheduler:    frames,
		Factory:      mem,
	})
	if frames.Pending() == 0 {
		t.Fatalf("expected a render scheduled for the tracked rule")
	}
	retract.Cancel() // rule goes away before the frame fires
	frames.Flush()
	if len(mem.Sheets()) != 0 {
		t.Errorf("expected scheduled render suppressed after removal, got %d sheet(s)",
			len(mem.Sheets()))
	}
}

func TestProduceRendererOrdering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "style.produce")
	defer teardown()
	root := rule.NewRoot()
	root.Rule(".custom").Add(rule.Properties{"color": "red"})
	var log []string
	first := &recordingRenderer{name: "first", log: &log}
	second := &recordingRenderer{name: "second", log: &log, after: []produce.Renderer{first}}
	produce.Produce(root.Rules(), produce.Config{
		RootSelector: ".root",
		Factory:      &sheet.Memory{},
		Renderers:    []produce.Renderer{second, first},
	})
	if len(log) != 2 || log[0] != "first" || log[1] != "second" {
		t.Errorf("expected constrained order first, second, isn't: %v", log)
	}
}

// countingRenderer counts render passes, optionally of a single rule.
type countingRenderer struct {
	only    *rule.Rule
	renders int
}

func (c *countingRenderer) Render(ctx *produce.Context, props rule.Properties) error {
	if c.only == nil || ctx.Rule == c.only {
		c.renders++
	}
	return ctx.RenderNext(props)
}

// recordingRenderer logs its invocations, with ordering constraints.
type recordingRenderer struct {
	name  string
	log   *[]string
	after []produce.Renderer
}

func (r *recordingRenderer) Render(ctx *produce.Context, props rule.Properties) error {
	*r.log = append(*r.log, r.name)
	return ctx.RenderNext(props)
}

func (r *recordingRenderer) RenderedAfter() []produce.Renderer {
	return r.after
}
