package eir

// Raise represents a raise expression producing an exceptional value.
//
//	raise CacheMiss(key) // TypeOf: "app".CacheMiss, X: &Call{…}
type Raise struct {
	Span

	// TypeOf is the host-resolved static type of the raised value.
	TypeOf Ref

	// X is the raised operand when the host keeps it, usually
	// a constructor [Call]. May be nil.
	X Expr
}

// Rethrow represents a re-raise of the value caught by the nearest
// enclosing handler clause. It produces the clause's own type, or the
// universal [Top] when the clause is a catch-all.
type Rethrow struct {
	Span
}

func (*Raise) isNode()   {}
func (*Raise) isExpr()   {}
func (*Rethrow) isNode() {}
func (*Rethrow) isExpr() {}
