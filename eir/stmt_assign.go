package eir

// Assign represents a write of a source value into an existing binding.
// Only binding targets matter for the analysis: writes into compound
// places (index expressions, dereferences) are not represented.
//
//	handler = riskyCallback // Target: &BindingRef{…}, Source: &BindingRef{…}
type Assign struct {
	Span

	// Target is the written binding. Nil when the host could not
	// resolve the target, such assignments are skipped.
	Target *BindingRef

	// Source is the assigned value.
	Source Expr
}

func (*Assign) isNode() {}
func (*Assign) isStmt() {}
