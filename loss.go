package exceptful

import (
	"fmt"

	"github.com/sirkon/exceptful/eir"
	"github.com/sirkon/exceptful/exrules"
)

// lossAtAssign reports effects of an assignment source which the
// target binding does not declare on its own. Assignments into
// anything but a resolved binding are out of scope.
func (p *pass) lossAtAssign(as *eir.Assign) {
	if as.Target == nil || as.Target.Binding == nil {
		return
	}

	p.reportLoss(exrules.AssignLosesEffects(), as.NodeSpan(), as.Source, as.Target.Binding)
}

// lossAtInit is the declaration-with-initializer counterpart of
// [pass.lossAtAssign].
func (p *pass) lossAtInit(b *eir.Binding) {
	if b.Init == nil {
		return
	}

	p.reportLoss(exrules.InitLosesEffects(), b.NodeSpan(), b.Init, b)
}

func (p *pass) reportLoss(rule exrules.Rule, at eir.Span, source eir.Expr, target *eir.Binding) {
	src := p.sourceSubject(source)
	if src == nil {
		return
	}

	for _, effect := range p.lostEffects(src, target) {
		p.emit(Finding{
			Rule:   rule,
			Pos:    at.Start,
			Effect: effect,
			Message: fmt.Sprintf(
				"%s effect becomes invisible behind %q, the binding does not declare it",
				effect, target.Name,
			),
		})
	}
}

// lostEffects exits source effects not covered by the target's own
// effective set. An empty source set loses nothing.
func (p *pass) lostEffects(src eir.Decl, target *eir.Binding) []eir.Ref {
	sourceEffects := p.effectiveEffects(src)
	if len(sourceEffects) == 0 {
		return nil
	}

	targetEffects := p.effectiveEffects(target)

	var lost []eir.Ref
	for _, effect := range sourceEffects {
		if p.setCovers(targetEffects, effect) {
			continue
		}

		lost = append(lost, effect)
	}

	return lost
}

// sourceSubject resolves the declaration whose effects an expression
// value carries over: a parameter reference, another binding or a
// routine tear-off. Any other expression carries none.
func (p *pass) sourceSubject(source eir.Expr) eir.Decl {
	switch x := source.(type) {
	case *eir.ParamRef:
		if x.Param == nil {
			return nil
		}
		return x.Param

	case *eir.BindingRef:
		if x.Binding == nil {
			return nil
		}
		return x.Binding

	case *eir.RoutineRef:
		if x.Routine == nil {
			return nil
		}
		return x.Routine
	}

	return nil
}
