// Package exrules defines the canonical EXC-series rule codes reported by exceptful.
//
// Each rule in exceptful represents a verifiable invariant of checked-exceptions
// discipline. The EXC-series provides a stable numeric and textual identity for
// every rule, ensuring that findings can be reported, filtered, and traced
// consistently across analysis passes, host diagnostics, and quick-fix tooling.
//
// # Purpose
//
// The exrules package serves as the single source of truth for all rule codes.
// It is used by:
//   - the analysis pass (for classification of findings);
//   - host reporters (for consistent emission of diagnostics);
//   - and quick-fix generators (for deciding which edit applies).
//
// # Structure
//
// Rule codes follow the format “EXC<NNN>: <Name>” and are grouped by functional area:
//
//	000–099  Unhandled, undeclared effect producers
//	100–149  Effect loss across assignments and initializers
//
// Example:
//
//	exrules.EXC000RaiseUnhandled.String()      → "EXC000: RaiseUnhandled"
//	exrules.EXC000RaiseUnhandled.Description() → "Raised effect must be handled locally or declared on the enclosing routine."
//
// # Notes
//
//   - Rule identifiers are stable and versioned; never renumber existing codes.
//   - New rules must follow the next available EXC-range slot.
//
// exrules is part of the exceptful core and is imported implicitly by the analysis.
package exrules
