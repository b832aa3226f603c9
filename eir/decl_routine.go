package eir

import "fmt"

// Routine represents a routine-like declaration: the only construct
// that bounds both the handling search and the declaration propagation
// search. Methods and accessors carry their owner type in Ref.Owner.
//
//	func parse(text) raises(FormatException) {…}
//	// Ref: "app".parse, Kind: RoutineFunc,
//	// Meta: [{Name: "raises", Payload: …}]
type Routine struct {
	Span

	// Ref is the host identity of the declaration.
	Ref Ref

	// Kind tells the declaration flavor.
	Kind RoutineKind

	// Params lists formal parameters in source order.
	Params []*Param

	// Meta lists metadata entries attached to the declaration.
	Meta []Meta

	// Body is nil for external declarations known only by their
	// signature. Such routines still work as call candidates, their
	// bodies are just never analyzed.
	Body *Block
}

// RoutineKind defines the declaration flavor of a [Routine].
type RoutineKind int

const (
	RoutineKindInvalid RoutineKind = iota
	RoutineFunc
	RoutineMethod
	RoutineAccessor
	RoutineCtor
)

var routineKindValueMap = map[RoutineKind]string{
	RoutineFunc:     "func",
	RoutineMethod:   "method",
	RoutineAccessor: "accessor",
	RoutineCtor:     "ctor",
}

func (k RoutineKind) String() string {
	v, ok := routineKindValueMap[k]
	if !ok {
		return fmt.Sprintf("invalid(%d)", k)
	}

	return v
}

// Param represents a formal parameter of a routine or a lambda. Effect
// declarations on callback-typed parameters live in Meta.
type Param struct {
	Span

	// Name is the parameter identifier within its routine.
	Name string

	// Meta lists metadata entries attached to the parameter type.
	Meta []Meta
}

// Binding represents a variable or field declaration, with an optional
// initializer.
//
//	count = int.parse(text) // Name: "count", Init: &Call{…}
type Binding struct {
	Span

	// Name is the binding identifier within its scope.
	Name string

	// Meta lists metadata entries attached to the binding.
	Meta []Meta

	// Init is the initializer expression. May be nil.
	Init Expr
}

func (r *Routine) DeclMeta() []Meta { return r.Meta }
func (p *Param) DeclMeta() []Meta   { return p.Meta }
func (b *Binding) DeclMeta() []Meta { return b.Meta }

func (*Routine) isNode() {}
func (*Routine) isDecl() {}
func (*Param) isNode()   {}
func (*Param) isDecl()   {}
func (*Binding) isNode() {}
func (*Binding) isDecl() {}
