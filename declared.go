package exceptful

import "github.com/sirkon/exceptful/eir"

// declaredByEnclosing checks the candidate effect against the
// effective effect set of the nearest enclosing routine declaration.
//
// A lambda passed as an argument works as an alternate boundary on the
// way up: when its formal parameter declares effects covering the
// candidate, the surrounding routine does not have to. A formal that
// declares nothing, or declares a non-covering set, decides nothing
// and the walk goes on.
func (p *pass) declaredByEnclosing(site eir.Node, effect eir.Ref) bool {
	for cur := p.parents[site]; cur != nil; cur = p.parents[cur] {
		switch x := cur.(type) {
		case *eir.Routine:
			// The nearest declaration boundary decides either way.
			return p.setCovers(p.effectiveEffects(x), effect)

		case *eir.Lambda:
			formal := p.lambdaFormal(x)
			if formal == nil {
				break
			}
			if p.setCovers(p.effectiveEffects(formal), effect) {
				return true
			}
		}
	}

	return false
}

// lambdaFormal exits the formal parameter a lambda is passed for, when
// the lambda stands directly as a call argument with the parameter
// correspondence established by the host.
func (p *pass) lambdaFormal(lm *eir.Lambda) *eir.Param {
	arg, ok := p.parents[lm].(*eir.Arg)
	if !ok {
		return nil
	}

	return arg.Param
}
