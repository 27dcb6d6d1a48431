package produce

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"fmt"
	"sort"
	"strings"

	"github.com/proc7ts/style-producer/rule"
	"github.com/proc7ts/style-producer/value"
)

// The default render chain. Custom renderers slot in between RawText and
// Declarations unless their ordering constraints say otherwise.
var (
	// AtRules emits at-rule properties ahead of everything else. The key
	// '@import:<url>' imports a stylesheet, with the property value as
	// media query. The key '@namespace' declares the default namespace
	// and '@namespace:<prefix>' a prefixed one, with the property value
	// as namespace URL. Imports precede namespaces.
	AtRules Renderer = atRulesRenderer{}
	// RawText emits the rule.RawCSS property as a separate rule with the
	// same selector, ahead of the rule's own declarations so that
	// structured properties take precedence.
	RawText Renderer = rawTextRenderer{}
	// Declarations writes the remaining properties as CSS declarations.
	// Keys starting with '$' or '@' are skipped, camel-cased keys are
	// hyphenated, and important priority is split off the value.
	Declarations Renderer = declarationsRenderer{}
)

// --- at-rules --------------------------------------------------------------

type atRulesRenderer struct{}

func (atRulesRenderer) Render(ctx *Context, props rule.Properties) error {
	var keys []string
	for name := range props {
		if strings.HasPrefix(name, "@") {
			keys = append(keys, name)
		}
	}
	if len(keys) == 0 {
		return ctx.RenderNext(props)
	}
	sort.Strings(keys) // '@import' sorts before '@namespace'
	for _, name := range keys {
		if err := ctx.InsertText(atRuleText(name, props[name])); err != nil {
			return err
		}
	}
	rest := rule.Properties{}
	for name, v := range props {
		if !strings.HasPrefix(name, "@") {
			rest[name] = v
		}
	}
	return ctx.RenderNext(rest)
}

func atRuleText(key string, v value.Value) string {
	name, arg, _ := strings.Cut(key[1:], ":")
	val := PropertyText(v)
	var b strings.Builder
	b.WriteByte('@')
	b.WriteString(name)
	switch name {
	case "import":
		fmt.Fprintf(&b, " url(%q)", arg)
		if val != "" {
			b.WriteByte(' ')
			b.WriteString(val)
		}
	case "namespace":
		if arg != "" {
			b.WriteByte(' ')
			b.WriteString(arg)
		}
		fmt.Fprintf(&b, " url(%q)", val)
	default:
		if arg != "" {
			b.WriteByte(' ')
			b.WriteString(arg)
		}
		if val != "" {
			b.WriteByte(' ')
			b.WriteString(val)
		}
	}
	b.WriteByte(';')
	return b.String()
}

// --- raw CSS text ----------------------------------------------------------

type rawTextRenderer struct{}

func (rawTextRenderer) Render(ctx *Context, props rule.Properties) error {
	v, ok := props[rule.RawCSS]
	if !ok {
		return ctx.RenderNext(props)
	}
	rest := rule.Properties{}
	for name, pv := range props {
		if name != rule.RawCSS {
			rest[name] = pv
		}
	}
	if text := PropertyText(v); text != "" {
		cssText := fmt.Sprintf("%s { %s }", ctx.Selector.Text(), text)
		if err := ctx.InsertText(cssText); err != nil {
			return err
		}
	}
	return ctx.RenderNext(rest)
}

// --- declarations ----------------------------------------------------------

type declarationsRenderer struct{}

func (declarationsRenderer) Render(ctx *Context, props rule.Properties) error {
	var names []string
	for name := range props {
		if strings.HasPrefix(name, rule.CustomPrefix) || strings.HasPrefix(name, "@") {
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return ctx.RenderNext(props)
	}
	sort.Strings(names)
	target, err := ctx.TargetRule()
	if err != nil {
		return err
	}
	for _, name := range names {
		v, prio := value.SplitPriority(props[name])
		target.Set(CSSPropertyName(name), PropertyText(v), prio == value.Important)
	}
	return ctx.RenderNext(props)
}

// CSSPropertyName hyphenates a camel-cased property key, e.g. 'fontSize'
// becomes 'font-size'. A leading capital yields a leading hyphen, so
// 'MozBorderRadius' becomes the vendor-prefixed '-moz-border-radius'.
func CSSPropertyName(name string) string {
	if !strings.ContainsFunc(name, isUpper) {
		return name
	}
	var b strings.Builder
	for _, r := range name {
		if isUpper(r) {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// PropertyText renders a property value as CSS text, without priority
// marker.
func PropertyText(v value.Value) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSuffix(t, value.ImportantSuffix)
	case value.Numeric:
		return t.Text()
	case bool:
		return "" // presence flags carry no text
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprintf("%v", v)
}
