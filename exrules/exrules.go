// Package exrules defines the canonical rule codes (EXC-series) reported by exceptful.
// Each rule represents a distinct verification invariant of the analysis.
//
// Rule numbering scheme:
//
//	000–099  Unhandled, undeclared effect producers
//	100–149  Effect loss across assignments and initializers
package exrules

import "fmt"

// Rule represents an exceptful rule code (EXC-series).
type Rule int

const (
	ruleInvalid Rule = iota

	EXC000RaiseUnhandled
	EXC010RethrowUnhandled
	EXC020CallUnhandled
	EXC030CallbackUnhandled
	EXC040EffectVarUnhandled
	EXC100AssignLosesEffects
	EXC110InitLosesEffects
)

// String returns the canonical code and short name of the rule.
// Example: "EXC000: RaiseUnhandled"
func (r Rule) String() string {
	switch r {
	case EXC000RaiseUnhandled:
		return "EXC000: RaiseUnhandled"
	case EXC010RethrowUnhandled:
		return "EXC010: RethrowUnhandled"
	case EXC020CallUnhandled:
		return "EXC020: CallUnhandled"
	case EXC030CallbackUnhandled:
		return "EXC030: CallbackUnhandled"
	case EXC040EffectVarUnhandled:
		return "EXC040: EffectVarUnhandled"
	case EXC100AssignLosesEffects:
		return "EXC100: AssignLosesEffects"
	case EXC110InitLosesEffects:
		return "EXC110: InitLosesEffects"
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// Description returns the human-readable explanation of the rule.
func (r Rule) Description() string {
	switch r {
	case EXC000RaiseUnhandled:
		return "Raised effect must be handled locally or declared on the enclosing routine."
	case EXC010RethrowUnhandled:
		return "Re-raised effect must be handled by an outer handler or declared on the enclosing routine."
	case EXC020CallUnhandled:
		return "Effects declared by a callee must be handled locally or declared on the enclosing routine."
	case EXC030CallbackUnhandled:
		return "Effects declared on a callback parameter surface at its every call site."
	case EXC040EffectVarUnhandled:
		return "Effects declared on a variable surface wherever its value is invoked."
	case EXC100AssignLosesEffects:
		return "Assigning an effect-bearing value into a binding that does not declare those effects hides them from readers."
	case EXC110InitLosesEffects:
		return "Initializing a binding with an effect-bearing value requires the binding to declare those effects."
	default:
		return fmt.Sprintf("unknwon-rule(%d)", r)
	}
}

// Canonical constructors — for readability and stable call sites.

func RaiseUnhandled() Rule     { return EXC000RaiseUnhandled }
func RethrowUnhandled() Rule   { return EXC010RethrowUnhandled }
func CallUnhandled() Rule      { return EXC020CallUnhandled }
func CallbackUnhandled() Rule  { return EXC030CallbackUnhandled }
func EffectVarUnhandled() Rule { return EXC040EffectVarUnhandled }
func AssignLosesEffects() Rule { return EXC100AssignLosesEffects }
func InitLosesEffects() Rule   { return EXC110InitLosesEffects }
