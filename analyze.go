package exceptful

import (
	"context"
	"go/token"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/sirkon/exceptful/eir"
)

// Analyze runs one full pass over the unit. The unit tree and the host
// oracles are treated as frozen for the call duration, the tree is
// never mutated. Lower the unit again and rerun after edits.
func (a *Analyzer) Analyze(unit *eir.Unit) *Analysis {
	p := newPass(a, unit)
	p.run()

	return &Analysis{p: p}
}

// AnalyzeUnits analyzes independent units in parallel, one pass each,
// sharing nothing mutable between them. Results come in the units
// order. Cancelling the context stops picking up remaining units and
// exits the cancellation reason, finished analyses are discarded then.
func AnalyzeUnits(ctx context.Context, a *Analyzer, units []*eir.Unit) ([]*Analysis, error) {
	res := make([]*Analysis, len(units))

	g, ctx := errgroup.WithContext(ctx)
	for i, unit := range units {
		i, unit := i, unit
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res[i] = a.Analyze(unit)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return res, nil
}

// Analysis is the outcome of one pass: accumulated findings plus pass
// indexes kept alive to serve the query surface below. Queries share
// the pass memo, an Analysis is not safe for concurrent use.
type Analysis struct {
	p *pass
}

// Findings exits a copy of the findings in emission order.
func (an *Analysis) Findings() []Finding {
	return slices.Clone(an.p.findings)
}

// HandledLocally reports whether the effect raised at the site would
// be caught by an enclosing handler clause within the current routine.
// The site must belong to the analyzed unit.
func (an *Analysis) HandledLocally(site eir.Node, effect eir.Ref) bool {
	return an.p.handledLocally(site, effect)
}

// DeclaredByEnclosing reports whether the effect at the site is
// covered by the effective effect set of the enclosing declaration.
func (an *Analysis) DeclaredByEnclosing(site eir.Node, effect eir.Ref) bool {
	return an.p.declaredByEnclosing(site, effect)
}

// EffectiveEffects exits the effective effect set of a declared
// subject: explicit declarations first, the intrinsic operations
// table as a fallback.
func (an *Analysis) EffectiveEffects(subject eir.Decl) []eir.Ref {
	return slices.Clone(an.p.effectiveEffects(subject))
}

// NodeAt exits the innermost node covering the position, nil when the
// position lies outside of the unit.
func (an *Analysis) NodeAt(pos token.Pos) eir.Node {
	return an.p.index.At(pos)
}

// FirstUnhandledAt exits the first effect produced within the
// innermost node at the position that is neither handled nor
// declared. Quick-fix tooling asks it to learn what exactly must be
// handled or declared right here.
func (an *Analysis) FirstUnhandledAt(pos token.Pos) (eir.Ref, Origin, bool) {
	node := an.p.index.At(pos)
	if node == nil {
		return eir.Ref{}, originInvalid, false
	}

	var (
		effect eir.Ref
		origin Origin
		found  bool
	)
	eir.Walk(node, func(n, _ eir.Node) bool {
		if found {
			return false
		}

		for _, c := range an.p.candidates(n) {
			if an.p.handledLocally(c.site, c.effect) {
				continue
			}
			if an.p.declaredByEnclosing(c.site, c.effect) {
				continue
			}

			effect, origin, found = c.effect, c.origin, true
			return false
		}

		return true
	})

	return effect, origin, found
}
