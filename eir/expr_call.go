package eir

import "fmt"

// Call represents any invocation form of the analyzed program: plain
// calls, method calls, constructors, property access, indexing,
// operators and calls of functional values.
//
// Effect information may arrive through any of the three sources below
// independently, the analysis consults all of them:
//
//	parse(text)   // Candidates: [parse declaration]
//	callback()    // Param: the callback parameter
//	handler()     // Binding: the handler variable
type Call struct {
	Span

	// Kind tells the syntactic flavor of the invocation.
	Kind CallKind

	// Candidates lists host-resolved callee declarations. More than one
	// entry appears when the host cannot commit to a single target, all
	// of them are taken into account then.
	Candidates []*Routine

	// Param is set when the invoked value is a parameter of the
	// enclosing routine or lambda. May be nil.
	Param *Param

	// Binding is set when the invoked value is a variable or field
	// holding a functional value. May be nil.
	Binding *Binding

	// Args lists actual arguments with their formal correspondence.
	Args []*Arg
}

// CallKind defines the syntactic flavor of a [Call].
type CallKind int

const (
	CallKindInvalid CallKind = iota
	CallFunc
	CallMethod
	CallCtor
	CallGetter
	CallSetter
	CallIndex
	CallOperator
	CallBound
)

var callKindValueMap = map[CallKind]string{
	CallFunc:     "func",
	CallMethod:   "method",
	CallCtor:     "ctor",
	CallGetter:   "getter",
	CallSetter:   "setter",
	CallIndex:    "index",
	CallOperator: "operator",
	CallBound:    "bound",
}

func (k CallKind) String() string {
	v, ok := callKindValueMap[k]
	if !ok {
		return fmt.Sprintf("invalid(%d)", k)
	}

	return v
}

// Arg is a single actual argument of a [Call].
type Arg struct {
	Span

	// Param is the formal parameter this argument corresponds to. Nil
	// when the host could not establish the correspondence.
	Param *Param

	// Value is the argument expression.
	Value Expr
}

// Lambda represents an anonymous functional value. A lambda is not
// a declaration boundary: handling and propagation walks pass through
// it up to the enclosing [Routine].
type Lambda struct {
	Span

	Params []*Param
	Body   *Block
}

func (*Call) isNode()   {}
func (*Call) isExpr()   {}
func (*Arg) isNode()    {}
func (*Lambda) isNode() {}
func (*Lambda) isExpr() {}
