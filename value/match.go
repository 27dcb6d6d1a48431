package value

// Patterns assigns a result to each numeric variant.
type Patterns[T any] struct {
	Dim     T
	Zero    T
	Calc    T
	Default T
}

// Pattern starts an expression-style match over a numeric value:
//
//	var d value.Dimension
//	m := value.Pattern[string](n)
//	text := m.OneOf(value.Patterns[string]{
//		Dim:  m.With(&d).Const(d.Unit),
//		Zero: "0",
//		Calc: "calc",
//	})
func Pattern[T any](n Numeric) *MatchExpr[T] {
	return &MatchExpr[T]{n: n}
}

// MatchExpr matches a numeric value against Patterns.
type MatchExpr[T any] struct {
	n Numeric
}

// OneOf selects the pattern for the variant of the matched value.
func (m *MatchExpr[T]) OneOf(patterns Patterns[T]) T {
	switch m.n.(type) {
	case *Dimension:
		return patterns.Dim
	case *Zero:
		return patterns.Zero
	case *Calc:
		return patterns.Calc
	}
	return patterns.Default
}

// With binds the matched dimension to d, if the value is one.
func (m *MatchExpr[T]) With(d *Dimension) *MatchExpr[T] {
	if dim, ok := m.n.(*Dimension); ok {
		*d = *dim
	}
	return m
}

// Const returns x. It pairs with With when building Patterns fields.
func (m *MatchExpr[T]) Const(x T) T {
	return x
}
