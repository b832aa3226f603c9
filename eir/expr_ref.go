package eir

// ParamRef represents a read of a parameter as a value.
type ParamRef struct {
	Span

	Param *Param
}

// BindingRef represents a read of (or, inside [Assign], a write into)
// a variable or field binding.
type BindingRef struct {
	Span

	Binding *Binding
}

// RoutineRef represents a tear-off: a declared routine mentioned as
// a value rather than invoked.
//
//	handler = parse // Source: &RoutineRef{Routine: parse declaration}
type RoutineRef struct {
	Span

	Routine *Routine
}

func (*ParamRef) isNode()   {}
func (*ParamRef) isExpr()   {}
func (*BindingRef) isNode() {}
func (*BindingRef) isExpr() {}
func (*RoutineRef) isNode() {}
func (*RoutineRef) isExpr() {}
