package value

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"math"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// absUnits maps the absolute CSS length units onto typesetting device
// units. CSS fixes 96px and 72pt to the inch.
var absUnits = map[string]float64{
	"pt": float64(dimen.PT),
	"px": float64(dimen.PT) * 72 / 96,
	"pc": float64(dimen.PT) * 12,
	"in": float64(dimen.PT) * 72,
	"cm": float64(dimen.PT) * 72 / 2.54,
	"mm": float64(dimen.PT) * 72 / 25.4,
}

// ToDimen evaluates a structured numeric value to typesetting device
// units. It succeeds for zeros, for dimensions in absolute length units,
// and for calc() expressions over such values. Relative units,
// percentages and unresolved expressions yield no result.
func ToDimen(n Numeric) (dimen.DU, bool) {
	switch v := n.(type) {
	case *Zero:
		return 0, true
	case *Dimension:
		if f, ok := absUnits[v.Unit]; ok {
			return dimen.DU(math.Round(v.Val * f)), true
		}
	case *Calc:
		left, ok := ToDimen(v.Left)
		if !ok {
			return 0, false
		}
		switch v.Op {
		case OpAdd, OpSub:
			right, ok := ToDimen(v.Right)
			if !ok {
				return 0, false
			}
			if v.Op == OpAdd {
				return left + right, true
			}
			return left - right, true
		case OpMul:
			return dimen.DU(math.Round(float64(left) * v.Scalar)), true
		case OpDiv:
			if v.Scalar != 0 {
				return dimen.DU(math.Round(float64(left) / v.Scalar)), true
			}
		}
	}
	return 0, false
}

// ToPercent evaluates a percentage value. It succeeds for "%" dimensions
// and for zeros of the percentage kind.
func ToPercent(n Numeric) (p percent.Percent, ok bool) {
	switch v := n.(type) {
	case *Zero:
		if v.kind == Percent {
			return percent.FromInt(0), true
		}
	case *Dimension:
		if v.Unit == "%" {
			return percent.FromInt(int(math.Round(v.Val))), true
		}
	}
	return p, false
}
