package exceptful

import "github.com/sirkon/exceptful/eir"

// fakeTypes is a minimal type oracle for tests: direct supertype edges
// closed reflexively and transitively on queries, plus a visible names
// table per library.
type fakeTypes struct {
	parents map[eir.Ref]eir.Ref
	visible map[visKey]eir.Ref
}

type visKey struct {
	lib  string
	name string
}

func (f fakeTypes) Subtype(sub, super eir.Ref) bool {
	for cur := sub; ; {
		if cur == super {
			return true
		}

		next, ok := f.parents[cur]
		if !ok {
			return false
		}
		cur = next
	}
}

func (f fakeTypes) ResolveVisible(lib, name string) (eir.Ref, bool) {
	ref, ok := f.visible[visKey{lib: lib, name: name}]
	return ref, ok
}

// stdTypes builds the hierarchy most tests run against:
//
//	Exception ← FormatException, CacheMiss
//	Error     ← StateError, RangeError, AuthFailure
func stdTypes() fakeTypes {
	return fakeTypes{
		parents: map[eir.Ref]eir.Ref{
			ref("core", "FormatException"): ref("core", "Exception"),
			ref("core", "StateError"):      ref("core", "Error"),
			ref("core", "RangeError"):      ref("core", "Error"),
			ref("app", "CacheMiss"):        ref("core", "Exception"),
			ref("app", "AuthFailure"):      ref("core", "Error"),
		},
		visible: map[visKey]eir.Ref{
			{lib: "core", name: "FormatException"}: ref("core", "FormatException"),
			{lib: "core", name: "StateError"}:      ref("core", "StateError"),
			{lib: "core", name: "RangeError"}:      ref("core", "RangeError"),
			{lib: "app", name: "CacheMiss"}:        ref("app", "CacheMiss"),
			// An imported name visible under the app library scope.
			{lib: "app", name: "FormatException"}: ref("core", "FormatException"),
		},
	}
}

// fakeMeta recognizes throws(...) entries carrying a ready []eir.Ref
// payload. Any other payload type means the entry cannot be evaluated.
type fakeMeta struct{}

func (fakeMeta) EffectDecl(m eir.Meta) (types []eir.Ref, ok bool) {
	if m.Name != "throws" {
		return nil, false
	}

	refs, ok := m.Payload.([]eir.Ref)
	if !ok {
		return nil, false
	}

	return refs, true
}

func ref(lib, name string) eir.Ref {
	return eir.Ref{Lib: lib, Name: name}
}

func throws(types ...eir.Ref) eir.Meta {
	return eir.Meta{Name: "throws", Payload: types}
}

func testAnalyzer(opts ...Option) *Analyzer {
	return New(stdTypes(), fakeMeta{}, opts...)
}
