package value

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

// Kind is a family of mutually compatible CSS units, e.g. the CSS
// `<length>` units. Every kind owns its canonical zero, one interned
// instance per priority, so that arithmetic never allocates fresh zeros
// and identity comparison is a valid fast path.
//
// Some kinds come in two flavors: a plain one and a percentage-compatible
// one admitting "%" next to the plain units. Pt and NoPt navigate between
// the two.
type Kind struct {
	name          string
	zero          *Zero
	importantZero *Zero
	pt, noPt      *Kind
}

func newKind(name string) *Kind {
	k := &Kind{name: name}
	k.zero = &Zero{kind: k, prio: Usual}
	k.importantZero = &Zero{kind: k, prio: Important}
	return k
}

// The predefined unit families.
var (
	Length      = newKind("<length>")
	LengthPt    = newKind("<length-percentage>")
	Angle       = newKind("<angle>")
	AnglePt     = newKind("<angle-percentage>")
	Time        = newKind("<time>")
	TimePt      = newKind("<time-percentage>")
	Frequency   = newKind("<frequency>")
	FrequencyPt = newKind("<frequency-percentage>")
	Resolution  = newKind("<resolution>")
	Percent     = newKind("<percentage>")
)

func init() {
	pairKinds(Length, LengthPt)
	pairKinds(Angle, AnglePt)
	pairKinds(Time, TimePt)
	pairKinds(Frequency, FrequencyPt)
}

func pairKinds(noPt, pt *Kind) {
	noPt.pt = pt
	pt.noPt = noPt
}

// Name returns the name of the kind, e.g. "<length>".
func (k *Kind) Name() string {
	return k.name
}

func (k *Kind) String() string {
	return k.name
}

// Of creates a structured value of v in the given unit, with usual
// priority. A value of exactly 0 yields the kind's interned zero.
func (k *Kind) Of(v float64, unit string) Numeric {
	return k.of(v, unit, Usual)
}

func (k *Kind) of(v float64, unit string, p Priority) Numeric {
	if v == 0 {
		return k.zeroFor(p)
	}
	return &Dimension{kind: k, prio: p, Val: v, Unit: unit}
}

// Zero returns the canonical zero of the kind with usual priority.
func (k *Kind) Zero() *Zero {
	return k.zero
}

func (k *Kind) zeroFor(p Priority) *Zero {
	if p == Important {
		return k.importantZero
	}
	return k.zero
}

// Pt returns the percentage-compatible variant of the kind, if any.
func (k *Kind) Pt() (*Kind, bool) {
	return k.pt, k.pt != nil
}

// NoPt returns the percentage-free variant of the kind, if any.
func (k *Kind) NoPt() (*Kind, bool) {
	return k.noPt, k.noPt != nil
}

// Conv reinterprets n in this kind. The conversion succeeds when n's kind
// is this kind itself or its percentage partner; the check is by kind
// identity, and failure means "no conversion possible", never an error.
func (k *Kind) Conv(n Numeric) (Numeric, bool) {
	nk := n.Kind()
	if nk == k {
		return n, true
	}
	if nk.pt != k && nk.noPt != k {
		return nil, false
	}
	return retag(n, k), true
}

// retag rebuilds n with kind k. Callers have checked compatibility.
func retag(n Numeric, k *Kind) Numeric {
	switch v := n.(type) {
	case *Zero:
		return k.zeroFor(v.prio)
	case *Dimension:
		return &Dimension{kind: k, prio: v.prio, Val: v.Val, Unit: v.Unit}
	case *Calc:
		cp := *v
		cp.kind = k
		cp.Left = retag(v.Left, k)
		if v.Right != nil {
			cp.Right = retag(v.Right, k)
		}
		return &cp
	}
	return n
}
