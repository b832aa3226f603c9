// Package exceptful implements a checked-exceptions analysis over
// a host-resolved program.
//
// The host lowers its resolved syntax tree and type facts into [eir]
// values and runs Analyze over every unit. For each expression able to
// produce an exceptional value the analysis proves one of: the value
// is caught by an enclosing handler, the value is declared as an
// effect of the enclosing routine, or neither holds and a finding is
// emitted. A second checker reports effect information lost across
// assignments and initializers.
//
// Core components:
//
//   - Effect registry
//     Computes effective effect sets of declarations and bindings:
//     explicit effect declarations first, the intrinsic operations
//     table as a fallback, nothing otherwise.
//
//   - Effect extractor
//     Classifies nodes into candidate effect occurrences: direct
//     raises, re-raises, calls, callback parameter invocations and
//     effect variable invocations.
//
//   - Scope handling checker
//     Proves a candidate caught by an enclosing handler clause, never
//     looking past the enclosing routine declaration.
//
//   - Declaration propagation checker
//     Proves a candidate covered by the effective effect set of the
//     enclosing routine, or of a callback parameter the surrounding
//     lambda is passed for.
//
//   - Assignment loss checker
//     Reports effect types of a source value the target binding
//     declaration does not cover.
//
// The analysis never mutates the tree and degrades silently on
// partially resolved input: an unknown reference contributes an empty
// effect set and under-reports at that node only.
package exceptful

import (
	"github.com/rs/zerolog"

	"github.com/sirkon/exceptful/eir"
	"github.com/sirkon/exceptful/intrinsics"
)

// Analyzer holds everything shared between passes: host oracles, the
// intrinsic operations table and reporting wiring. It is read-only
// after construction, one Analyzer may serve concurrent passes.
type Analyzer struct {
	sys   eir.TypeSystem
	meta  eir.MetadataEvaluator
	table intrinsics.Table
	roots []eir.Ref
	sink  func(Finding)
	log   zerolog.Logger
}

// New is [Analyzer] constructor over the host's type system and
// metadata evaluator.
func New(sys eir.TypeSystem, meta eir.MetadataEvaluator, opts ...Option) *Analyzer {
	a := &Analyzer{
		sys:   sys,
		meta:  meta,
		table: intrinsics.Default(),
		roots: DefaultEffectRoots(),
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// DefaultEffectRoots exits the two standard root categories a raised
// type must belong to in order to count as an effect: the
// exception-like one and the error-like one.
func DefaultEffectRoots() []eir.Ref {
	return []eir.Ref{
		{Lib: "core", Name: "Exception"},
		{Lib: "core", Name: "Error"},
	}
}

// Option configures an [Analyzer].
type Option func(a *Analyzer)

// WithTable swaps the intrinsic operations table. Use
// [intrinsics.Table.Merge] over [intrinsics.Default] to extend the
// built-in one rather than replace it.
func WithTable(table intrinsics.Table) Option {
	return func(a *Analyzer) {
		a.table = table
	}
}

// WithEffectRoots replaces the root categories raised types are
// matched against.
func WithEffectRoots(roots ...eir.Ref) Option {
	return func(a *Analyzer) {
		a.roots = roots
	}
}

// WithReportSink sets a sink called for every finding right when it
// is emitted, in emission order. [AnalyzeUnits] calls the sink from
// multiple goroutines, it must be ready for that.
func WithReportSink(sink func(Finding)) Option {
	return func(a *Analyzer) {
		a.sink = sink
	}
}

// WithLogger sets a logger for pass tracing. Silent by default.
func WithLogger(log zerolog.Logger) Option {
	return func(a *Analyzer) {
		a.log = log
	}
}
