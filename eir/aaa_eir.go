package eir

import "go/token"

// Node is the base interface implemented by all EIR node types.
// Each node denotes a single effect-relevant construct of the analyzed
// program (e.g., raise, handler region, call, assignment).
type Node interface {
	// NodeSpan exits the source span attributed to the node. Embedding
	// [Span] into a node type satisfies this automatically.
	NodeSpan() Span

	isNode()
}

// Stmt marks nodes that represent statements of the analyzed program
// participating in effect-flow semantics.
type Stmt interface {
	Node
	isStmt()
}

// Expr marks nodes representing value-producing expressions, such as
// raises, calls, lambdas and references to declared entities.
type Expr interface {
	Node
	isExpr()
}

// Decl marks nodes that declare a subject effects can be attributed to:
// routines, parameters and bindings. Every declaration carries metadata
// entries where effect declarations live.
type Decl interface {
	Node

	// DeclMeta exits metadata entries attached to the declaration.
	DeclMeta() []Meta

	isDecl()
}

// Span is a [start, end] source interval of a node. Both ends are
// inclusive, [token.NoPos] on both ends means the node has no source
// attribution.
type Span struct {
	Start token.Pos
	End   token.Pos
}

// NodeSpan exits the span itself, making any node type embedding Span
// satisfy the respective [Node] requirement.
func (s Span) NodeSpan() Span { return s }

// Meta is a single metadata entry attached to a declaration. Payloads
// stay opaque for the analysis, only the host's [MetadataEvaluator]
// knows how to interpret them.
type Meta struct {
	// Name is the metadata entry name as it appears in the source.
	Name string

	// Payload is the host representation of the entry arguments.
	Payload any
}

// Ref identifies a declared entity of the analyzed program, such as
// a routine, type, or binding. It is used to attribute EIR nodes to
// the symbols they relate to and to denote effect types.
type Ref struct {
	// Lib is the host identity of the library that declares the entity
	// (e.g., "core" or "example.project/module").
	Lib string

	// Owner is owner type local name. It is needed when some member of
	// a type should be referenced. Will be empty for free routines and
	// for types themselves.
	Owner string

	// Name is the declared identifier of the entity within its library.
	Name string
}

// Member exits the qualified member name: "List.first" for members of
// a type, a plain "parse" for free routines.
func (r Ref) Member() string {
	if r.Owner == "" {
		return r.Name
	}

	return r.Owner + "." + r.Name
}

// Top is the distinguished reference of the universal top type. It
// stands for the effect of a re-raise inside a catch-all clause, where
// no narrower static type exists. The analysis treats it as a supertype
// of every effect-relevant type on its own, the host type system is
// never asked about it.
var Top = Ref{Lib: "<universe>", Name: "Top"}
