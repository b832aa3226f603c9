package exceptful

import (
	"slices"

	"github.com/sirkon/exceptful/eir"
)

// effectiveEffects computes the effective effect set of a declared
// subject: its explicit effect declarations when there are any, the
// intrinsic operations table entry otherwise, nothing when both come
// up empty. Results are memoized for the pass lifetime.
func (p *pass) effectiveEffects(subject eir.Decl) []eir.Ref {
	if subject == nil {
		return nil
	}
	if set, ok := p.memo[subject]; ok {
		return set
	}

	set := p.declaredEffects(subject)
	if len(set) == 0 {
		// An explicitly empty declaration gives the same empty set
		// and falls through here just like a missing one.
		set = p.intrinsicEffects(subject)
	}

	p.memo[subject] = set
	return set
}

// declaredEffects reads effect declarations off the subject metadata.
// Entries the evaluator does not recognize or cannot evaluate are
// skipped, the rest are still honored.
func (p *pass) declaredEffects(subject eir.Decl) []eir.Ref {
	var set []eir.Ref
	for _, m := range subject.DeclMeta() {
		types, ok := p.a.meta.EffectDecl(m)
		if !ok {
			continue
		}

		set = appendRefs(set, types...)
	}

	return set
}

// intrinsicEffects consults the intrinsic operations table. Only
// routines can be standard library members the table knows about,
// parameters and bindings carry effects through declarations alone.
func (p *pass) intrinsicEffects(subject eir.Decl) []eir.Ref {
	r, ok := subject.(*eir.Routine)
	if !ok {
		return nil
	}

	names, ok := p.a.table.Lookup(r.Ref.Lib, r.Ref.Member())
	if !ok {
		return nil
	}

	var set []eir.Ref
	for _, name := range names {
		ref, ok := p.a.sys.ResolveVisible(r.Ref.Lib, name)
		if !ok {
			// An unresolvable name gives no information, drop it.
			continue
		}

		set = appendRefs(set, ref)
	}

	return set
}

// appendRefs appends refs into dst keeping it free of duplicates, the
// first occurrence order is preserved.
func appendRefs(dst []eir.Ref, refs ...eir.Ref) []eir.Ref {
	for _, ref := range refs {
		if slices.Contains(dst, ref) {
			continue
		}

		dst = append(dst, ref)
	}

	return dst
}
