package exceptful

import "github.com/sirkon/exceptful/eir"

// handledLocally tells if the effect raised at the site is caught by
// an enclosing handler within the current routine.
//
// The walk up carries the previous step along, so "came from the
// protected region, not from a handler body" is a plain pointer
// check. It stops right at the enclosing routine declaration: handlers
// beyond it belong to another frame.
func (p *pass) handledLocally(site eir.Node, effect eir.Ref) bool {
	prev := site
	for cur := p.parents[site]; cur != nil; cur = p.parents[cur] {
		switch x := cur.(type) {
		case *eir.Routine:
			return false

		case *eir.Try:
			if prev != x.Body {
				// Arrived from one of the clauses. A clause never
				// handles what is raised inside itself, only outer
				// handlers do.
				break
			}

			for _, clause := range x.Clauses {
				if clause.Type == nil {
					// Catch-all matches unconditionally.
					return true
				}
				if p.isSubtype(effect, *clause.Type) {
					return true
				}
			}
		}

		prev = cur
	}

	return false
}
