// Package eir defines structural types used to describe effect-flow
// semantics of a host-resolved program.
//
// The entities in this package provide a consistent vocabulary for
// representing exception-related constructs: raises, protected regions
// with handler clauses, routine declarations, callable references and
// assignments. The host lowers its own resolved syntax tree into these
// values once, the analyzer then runs read-only passes over them.
//
// Control flow constructs of the host language are expected to be
// lowered into plain [Block] nesting: the analysis cares about lexical
// containment only, never about execution paths.
package eir
