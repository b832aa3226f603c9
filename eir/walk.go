package eir

import "fmt"

// Walk calls visit for node and then, unless visit returned false, for
// every child in source order, handing over the direct parent alongside.
// The parent of the starting node is nil.
//
// Cross references are not children: [Call.Candidates], [Arg.Param] and
// the targets of [ParamRef], [BindingRef], [RoutineRef] are never
// descended into, only true containment edges are.
func Walk(node Node, visit func(n, parent Node) bool) {
	walk(node, nil, visit)
}

func walk(n, parent Node, visit func(n, parent Node) bool) {
	if n == nil || !visit(n, parent) {
		return
	}

	switch x := n.(type) {
	case *Unit:
		for _, c := range x.Nodes {
			walk(c, x, visit)
		}

	case *Routine:
		for _, p := range x.Params {
			walk(p, x, visit)
		}
		if x.Body != nil {
			walk(x.Body, x, visit)
		}

	case *Param:
	case *Binding:
		if x.Init != nil {
			walk(x.Init, x, visit)
		}

	case *Block:
		for _, c := range x.Nodes {
			walk(c, x, visit)
		}

	case *Try:
		if x.Body != nil {
			walk(x.Body, x, visit)
		}
		for _, c := range x.Clauses {
			walk(c, x, visit)
		}

	case *Clause:
		if x.Body != nil {
			walk(x.Body, x, visit)
		}

	case *Assign:
		if x.Target != nil {
			walk(x.Target, x, visit)
		}
		if x.Source != nil {
			walk(x.Source, x, visit)
		}

	case *ExprStmt:
		if x.X != nil {
			walk(x.X, x, visit)
		}

	case *Raise:
		if x.X != nil {
			walk(x.X, x, visit)
		}

	case *Rethrow:
	case *Call:
		for _, a := range x.Args {
			walk(a, x, visit)
		}

	case *Arg:
		if x.Value != nil {
			walk(x.Value, x, visit)
		}

	case *Lambda:
		for _, p := range x.Params {
			walk(p, x, visit)
		}
		if x.Body != nil {
			walk(x.Body, x, visit)
		}

	case *ParamRef, *BindingRef, *RoutineRef:

	default:
		panic(fmt.Sprintf("missing walk handling for node type %T", n))
	}
}
