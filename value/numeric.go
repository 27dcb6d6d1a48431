package value

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"strconv"
	"strings"
)

// Numeric is a structured numeric CSS value: a dimension, the
// unit-polymorphic zero of a kind, or a calc() expression. The type is a
// closed sum: Dimension, Zero and Calc are the only variants.
//
// Arithmetic combines values algebraically: same-unit dimensions collapse
// into a single dimension, everything else folds into a calc() expression
// tree. Operations never fail; combining values of incompatible kinds is
// the caller's responsibility (see Kind.Conv).
type Numeric interface {
	// Kind returns the unit family of the value.
	Kind() *Kind
	// Priority returns the value's own priority.
	Priority() Priority
	// Prioritize returns an equal value with the requested priority. The
	// receiver is reused when its priority already matches.
	Prioritize(Priority) Numeric
	// Important is shorthand for Prioritize(Important).
	Important() Numeric
	// Usual is shorthand for Prioritize(Usual).
	Usual() Numeric
	// Add returns the sum of the receiver and n.
	Add(n Numeric) Numeric
	// Sub returns the receiver minus n.
	Sub(n Numeric) Numeric
	// Mul scales the receiver by a plain number.
	Mul(s float64) Numeric
	// Div divides the receiver by a plain number.
	Div(s float64) Numeric
	// Negate flips the sign of the value.
	Negate() Numeric
	// Is compares structurally: same variant, same operands and operators,
	// same own priority.
	Is(n Numeric) bool
	// Text returns the CSS text of the value, without priority marker.
	Text() string
	// String returns the CSS text of the value. An important value carries
	// the trailing " !important" marker.
	String() string

	isNumeric()
}

// --- Dimension -------------------------------------------------------------

// Dimension is a real number with a unit, e.g. `12px`. Construct
// dimensions through Kind.Of.
type Dimension struct {
	kind *Kind
	prio Priority
	Val  float64
	Unit string
}

func (*Dimension) isNumeric() {}

func (d *Dimension) Kind() *Kind        { return d.kind }
func (d *Dimension) Priority() Priority { return d.prio }

func (d *Dimension) Prioritize(p Priority) Numeric {
	if p == d.prio {
		return d
	}
	cp := *d
	cp.prio = p
	return &cp
}

func (d *Dimension) Important() Numeric { return d.Prioritize(Important) }
func (d *Dimension) Usual() Numeric     { return d.Prioritize(Usual) }

func (d *Dimension) Add(n Numeric) Numeric {
	if _, ok := n.(*Zero); ok {
		return d
	}
	if o, ok := n.(*Dimension); ok && o.Unit == d.Unit {
		return d.kind.of(d.Val+o.Val, d.Unit, d.prio)
	}
	return newCalc(d, OpAdd, n)
}

func (d *Dimension) Sub(n Numeric) Numeric {
	if _, ok := n.(*Zero); ok {
		return d
	}
	if o, ok := n.(*Dimension); ok && o.Unit == d.Unit {
		return d.kind.of(d.Val-o.Val, d.Unit, d.prio)
	}
	return newCalc(d, OpSub, n)
}

func (d *Dimension) Mul(s float64) Numeric {
	if s == 1 {
		return d
	}
	return d.kind.of(d.Val*s, d.Unit, d.prio)
}

func (d *Dimension) Div(s float64) Numeric {
	if s == 1 {
		return d
	}
	return d.kind.of(d.Val/s, d.Unit, d.prio)
}

func (d *Dimension) Negate() Numeric {
	return d.kind.of(-d.Val, d.Unit, d.prio)
}

func (d *Dimension) Is(n Numeric) bool {
	o, ok := n.(*Dimension)
	return ok && o.Val == d.Val && o.Unit == d.Unit && o.prio == d.prio
}

func (d *Dimension) Text() string {
	return formatFloat(d.Val) + d.Unit
}

func (d *Dimension) String() string {
	return d.Text() + d.prio.Suffix()
}

// --- Zero ------------------------------------------------------------------

// Zero is the unit-polymorphic additive identity of a kind. Zeros are
// interned (one instance per kind and priority) and never allocated by
// arithmetic, so comparing instances is a valid fast path.
type Zero struct {
	kind *Kind
	prio Priority
}

func (*Zero) isNumeric() {}

func (z *Zero) Kind() *Kind        { return z.kind }
func (z *Zero) Priority() Priority { return z.prio }

func (z *Zero) Prioritize(p Priority) Numeric {
	return z.kind.zeroFor(p)
}

func (z *Zero) Important() Numeric { return z.kind.importantZero }
func (z *Zero) Usual() Numeric     { return z.kind.zero }

func (z *Zero) Add(n Numeric) Numeric { return n }
func (z *Zero) Sub(n Numeric) Numeric {
	if _, ok := n.(*Zero); ok {
		return z
	}
	return n.Negate()
}

func (z *Zero) Mul(float64) Numeric { return z }
func (z *Zero) Div(float64) Numeric { return z }
func (z *Zero) Negate() Numeric     { return z }

func (z *Zero) Is(n Numeric) bool {
	o, ok := n.(*Zero)
	return ok && o == z
}

func (z *Zero) Text() string { return "0" }

func (z *Zero) String() string {
	return z.Text() + z.prio.Suffix()
}

// --- Calc ------------------------------------------------------------------

// CalcOp is the operator of a calc() expression node.
type CalcOp string

// The calc() expression operators. Addition and subtraction combine two
// numeric values; multiplication and division scale by a plain number.
const (
	OpAdd CalcOp = "+"
	OpSub CalcOp = "-"
	OpMul CalcOp = "*"
	OpDiv CalcOp = "/"
)

// Calc is a binary calc() expression node. For OpAdd and OpSub the right
// operand is Right; for OpMul and OpDiv it is the plain number Scalar.
// Operands are stored without their own priority: only the node's own
// priority counts.
type Calc struct {
	kind   *Kind
	prio   Priority
	Left   Numeric
	Op     CalcOp
	Right  Numeric
	Scalar float64
}

func newCalc(left Numeric, op CalcOp, right Numeric) *Calc {
	return &Calc{
		kind:  left.Kind(),
		prio:  left.Priority(),
		Left:  left.Usual(),
		Op:    op,
		Right: right.Usual(),
	}
}

func newScale(left Numeric, op CalcOp, s float64, p Priority) *Calc {
	return &Calc{
		kind:   left.Kind(),
		prio:   p,
		Left:   left.Usual(),
		Op:     op,
		Scalar: s,
	}
}

func (*Calc) isNumeric() {}

func (c *Calc) Kind() *Kind        { return c.kind }
func (c *Calc) Priority() Priority { return c.prio }

func (c *Calc) Prioritize(p Priority) Numeric {
	if p == c.prio {
		return c
	}
	cp := *c
	cp.prio = p
	return &cp
}

func (c *Calc) Important() Numeric { return c.Prioritize(Important) }
func (c *Calc) Usual() Numeric     { return c.Prioritize(Usual) }

func (c *Calc) Add(n Numeric) Numeric {
	if _, ok := n.(*Zero); ok {
		return c
	}
	return newCalc(c, OpAdd, n)
}

func (c *Calc) Sub(n Numeric) Numeric {
	if _, ok := n.(*Zero); ok {
		return c
	}
	return newCalc(c, OpSub, n)
}

// Mul folds into the receiver's scale factor when the receiver already is
// a scale expression, e.g. (x*2)*3 becomes x*6.
func (c *Calc) Mul(s float64) Numeric {
	if s == 1 {
		return c
	}
	if s == 0 {
		return c.kind.zeroFor(c.prio)
	}
	switch c.Op {
	case OpMul:
		return newScale(c.Left, OpMul, c.Scalar*s, c.prio)
	case OpDiv:
		return newScale(c.Left, OpDiv, c.Scalar/s, c.prio)
	}
	return newScale(c, OpMul, s, c.prio)
}

func (c *Calc) Div(s float64) Numeric {
	if s == 1 {
		return c
	}
	switch c.Op {
	case OpDiv:
		return newScale(c.Left, OpDiv, c.Scalar*s, c.prio)
	case OpMul:
		return newScale(c.Left, OpMul, c.Scalar/s, c.prio)
	}
	return newScale(c, OpDiv, s, c.prio)
}

// Negate swaps the operands of a subtraction instead of wrapping the
// expression: -(a - b) is b - a.
func (c *Calc) Negate() Numeric {
	switch c.Op {
	case OpSub:
		cp := *c
		cp.Left, cp.Right = c.Right, c.Left
		return &cp
	case OpMul, OpDiv:
		cp := *c
		cp.Scalar = -c.Scalar
		return &cp
	}
	return c.Mul(-1)
}

func (c *Calc) Is(n Numeric) bool {
	o, ok := n.(*Calc)
	if !ok || o.Op != c.Op || o.prio != c.prio {
		return false
	}
	if !c.Left.Is(o.Left) {
		return false
	}
	if c.Op == OpMul || c.Op == OpDiv {
		return o.Scalar == c.Scalar
	}
	return c.Right.Is(o.Right)
}

func (c *Calc) Text() string {
	var b strings.Builder
	b.WriteString("calc(")
	c.writeExpr(&b)
	b.WriteByte(')')
	return b.String()
}

func (c *Calc) String() string {
	return c.Text() + c.prio.Suffix()
}

// writeExpr renders the operator tree, parenthesizing every nested
// sub-expression but not the outermost one.
func (c *Calc) writeExpr(b *strings.Builder) {
	writeOperand(b, c.Left)
	b.WriteByte(' ')
	b.WriteString(string(c.Op))
	b.WriteByte(' ')
	if c.Op == OpMul || c.Op == OpDiv {
		b.WriteString(formatFloat(c.Scalar))
	} else {
		writeOperand(b, c.Right)
	}
}

func writeOperand(b *strings.Builder, n Numeric) {
	if sub, ok := n.(*Calc); ok {
		b.WriteByte('(')
		sub.writeExpr(b)
		b.WriteByte(')')
		return
	}
	b.WriteString(n.Text())
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
