package eir

// Unit is the root of one analyzed program fragment: top-level
// declarations plus free statements in source order. Free statements
// have no declaration boundary around them.
type Unit struct {
	Span

	// Library is the host identity of the library this unit belongs to.
	Library string

	// Nodes lists top-level declarations and free statements.
	Nodes []Node
}

func (*Unit) isNode() {}

// TypeSystem is the host's type oracle. The analysis takes its answers
// as is and never second-guesses them.
type TypeSystem interface {
	// Subtype reports whether sub is a subtype of super. The relation
	// is expected to be reflexive and transitive as supplied.
	Subtype(sub, super Ref) bool

	// ResolveVisible turns a bare type name into a concrete type
	// following the host's visibility order: the declaring scope
	// itself, then its imported scopes, then its exported scopes,
	// stopping at the first match.
	ResolveVisible(lib, name string) (Ref, bool)
}

// MetadataEvaluator recognizes effect declarations among metadata
// entries and evaluates their arguments.
type MetadataEvaluator interface {
	// EffectDecl reports whether m is an effect declaration and, if it
	// is, evaluates its ordered type list argument. Types the host
	// fails to resolve are simply absent from the result. Entries that
	// cannot be evaluated at all yield ok=false and are skipped by the
	// caller, other entries of the same declaration are still honored.
	EffectDecl(m Meta) (types []Ref, ok bool)
}
