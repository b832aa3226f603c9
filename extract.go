package exceptful

import "github.com/sirkon/exceptful/eir"

// candidate is a single effect occurrence proposed by extraction:
// a site able to produce an effect type, with the way it does that.
type candidate struct {
	site   eir.Node
	effect eir.Ref
	origin Origin
}

// candidates classifies a node into zero or more effect occurrences.
func (p *pass) candidates(n eir.Node) []candidate {
	switch x := n.(type) {
	case *eir.Raise:
		if !p.effectRelevant(x.TypeOf) {
			// Raising a plain value does not participate.
			return nil
		}

		return []candidate{{site: x, effect: x.TypeOf, origin: OriginRaise}}

	case *eir.Rethrow:
		effect, ok := p.rethrownType(x)
		if !ok {
			// A re-raise outside of any clause is malformed input,
			// nothing to decide about it.
			return nil
		}

		return []candidate{{site: x, effect: effect, origin: OriginRethrow}}

	case *eir.Call:
		return p.callCandidates(x)
	}

	return nil
}

// callCandidates collects effects a call may produce from its three
// possible sources: the resolved callee declarations, the callback
// parameter being invoked and the effect variable being invoked. The
// host may attach any subset of the three to one call.
func (p *pass) callCandidates(call *eir.Call) []candidate {
	var out []candidate
	add := func(origin Origin, effects []eir.Ref) {
		for _, effect := range effects {
			// The same type may arrive through different sources,
			// one candidate per type is enough.
			if containsEffect(out, effect) {
				continue
			}

			out = append(out, candidate{site: call, effect: effect, origin: origin})
		}
	}

	var union []eir.Ref
	for _, callee := range call.Candidates {
		union = appendRefs(union, p.effectiveEffects(callee)...)
	}
	add(OriginCall, union)

	if call.Param != nil {
		add(OriginParamCall, p.effectiveEffects(call.Param))
	}
	if call.Binding != nil {
		add(OriginVarCall, p.effectiveEffects(call.Binding))
	}

	return out
}

func containsEffect(cs []candidate, effect eir.Ref) bool {
	for _, c := range cs {
		if c.effect == effect {
			return true
		}
	}

	return false
}

// rethrownType exits the effect type a re-raise throws further: the
// declared type of the nearest enclosing clause, or [eir.Top] for a
// catch-all clause.
func (p *pass) rethrownType(site *eir.Rethrow) (eir.Ref, bool) {
	for cur := p.parents[site]; cur != nil; cur = p.parents[cur] {
		switch x := cur.(type) {
		case *eir.Clause:
			if x.Type == nil {
				return eir.Top, true
			}

			return *x.Type, true

		case *eir.Routine:
			return eir.Ref{}, false
		}
	}

	return eir.Ref{}, false
}

// effectRelevant tells if a raised type belongs to one of the effect
// root categories. Every other type is ignored even when raised.
func (p *pass) effectRelevant(t eir.Ref) bool {
	for _, root := range p.a.roots {
		if p.isSubtype(t, root) {
			return true
		}
	}

	return false
}
