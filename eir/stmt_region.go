package eir

// Block is a plain lexical region holding statements and local
// bindings in source order. Loops, branches and other control flow of
// the host language all lower to block nesting.
type Block struct {
	Span

	Nodes []Node
}

// Try represents a handler-bearing construct: a protected region plus
// an ordered list of handler clauses.
//
//	try { risky() } catch (FormatException e) { … } catch { … }
//	// Body: the risky() block, Clauses: [typed, catch-all]
type Try struct {
	Span

	// Body is the protected region. Effects originating here may be
	// handled by Clauses.
	Body *Block

	// Clauses are scanned in source order, the first matching one wins.
	Clauses []*Clause
}

// Clause is a single handler clause of a [Try].
type Clause struct {
	Span

	// Type is the caught effect type. Nil denotes a catch-all clause
	// matching any effect unconditionally.
	Type *Ref

	// Body is the handler body. Effects originating here are beyond
	// the reach of the owning [Try] and propagate outward.
	Body *Block
}

// ExprStmt adapts an expression into statement position.
type ExprStmt struct {
	Span

	X Expr
}

func (*Block) isNode()    {}
func (*Block) isStmt()    {}
func (*Try) isNode()      {}
func (*Try) isStmt()      {}
func (*Clause) isNode()   {}
func (*ExprStmt) isNode() {}
func (*ExprStmt) isStmt() {}
