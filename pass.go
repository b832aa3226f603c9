package exceptful

import (
	"fmt"

	"github.com/sirkon/exceptful/eir"
	"github.com/sirkon/exceptful/internal/spans"
)

// pass is the per-unit analysis state. Everything here lives for one
// Analyze call and is kept afterwards only to serve [Analysis] queries.
type pass struct {
	a    *Analyzer
	unit *eir.Unit

	// parents maps every node of the unit to its direct parent. The
	// unit itself has none.
	parents map[eir.Node]eir.Node

	// memo caches effective effect sets keyed by declaration identity.
	// Valid within this pass only, declarations may change between
	// lowerings.
	memo map[eir.Decl][]eir.Ref

	// index answers innermost-node-at-position queries.
	index *spans.Index

	findings []Finding
}

func newPass(a *Analyzer, unit *eir.Unit) *pass {
	return &pass{
		a:       a,
		unit:    unit,
		parents: make(map[eir.Node]eir.Node),
		memo:    make(map[eir.Decl][]eir.Ref),
		index:   spans.NewIndex(),
	}
}

// run performs the single walk of the unit: it fills the positional
// indexes and decides every candidate occurrence in source order.
// Ancestors are visited before descendants, so the parents map is
// always complete for the node being decided.
func (p *pass) run() {
	p.a.log.Debug().Str("library", p.unit.Library).Msg("analysis pass started")

	eir.Walk(p.unit, func(n, parent eir.Node) bool {
		if parent != nil {
			p.parents[n] = parent
		}
		if sp := n.NodeSpan(); sp.Start.IsValid() {
			p.index.Add(n, sp)
		}

		for _, c := range p.candidates(n) {
			p.decide(c)
		}

		switch x := n.(type) {
		case *eir.Assign:
			p.lossAtAssign(x)
		case *eir.Binding:
			p.lossAtInit(x)
		}

		return true
	})

	p.a.log.Debug().
		Str("library", p.unit.Library).
		Int("nodes", len(p.parents)+1).
		Int("findings", len(p.findings)).
		Msg("analysis pass done")
}

// decide applies both vetoes to a candidate and reports the survivor.
func (p *pass) decide(c candidate) {
	if p.handledLocally(c.site, c.effect) {
		return
	}
	if p.declaredByEnclosing(c.site, c.effect) {
		return
	}

	p.emit(Finding{
		Rule:    ruleForOrigin(c.origin),
		Pos:     c.site.NodeSpan().Start,
		Effect:  c.effect,
		Origin:  c.origin,
		Message: fmt.Sprintf("%s is neither handled locally nor declared on the enclosing routine", c.effect),
	})
}

func (p *pass) emit(f Finding) {
	p.findings = append(p.findings, f)
	if p.a.sink != nil {
		p.a.sink(f)
	}
}

// isSubtype answers subtype queries with the universal top handled on
// our side: [eir.Top] sits above every effect type and the host
// oracle is never asked about it.
func (p *pass) isSubtype(sub, super eir.Ref) bool {
	if super == eir.Top {
		return true
	}
	if sub == eir.Top {
		return false
	}

	return p.a.sys.Subtype(sub, super)
}

// setCovers tells if any member of the set is a supertype of the
// effect or the effect itself. An empty set covers nothing.
func (p *pass) setCovers(set []eir.Ref, effect eir.Ref) bool {
	for _, member := range set {
		if p.isSubtype(effect, member) {
			return true
		}
	}

	return false
}
