package exceptful

import (
	"encoding"
	"fmt"
	"go/token"

	"github.com/sirkon/exceptful/eir"
	"github.com/sirkon/exceptful/exrules"
)

// Finding is a single analysis verdict: an effect type at a site that
// is neither handled nor declared, or one becoming invisible across
// an assignment.
type Finding struct {
	// Rule classifies the finding.
	Rule exrules.Rule

	// Pos locates the reported site.
	Pos token.Pos

	// Effect is the effect type being reported.
	Effect eir.Ref

	// Origin tells how the effect arises at the site. Zero for effect
	// loss findings, they have no producing site of their own.
	Origin Origin

	// Message is a human readable explanation.
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", f.Rule, f.Message)
}

// Origin represents the way an effect arises at a candidate site.
type Origin int

const (
	originInvalid Origin = iota

	// OriginRaise is a direct raise of an effect-relevant type.
	OriginRaise

	// OriginRethrow is a re-raise inside a handler clause.
	OriginRethrow

	// OriginCall is a call of resolved routine declarations.
	OriginCall

	// OriginParamCall is an invocation of a callback parameter.
	OriginParamCall

	// OriginVarCall is an invocation of a value held in a binding.
	OriginVarCall
)

func (o *Origin) String() string {
	v, err := o.MarshalText()
	if err != nil {
		return fmt.Sprintf("origin-invalid(%d)", *o)
	}

	return string(v)
}

var (
	_ encoding.TextMarshaler   = new(Origin)
	_ encoding.TextUnmarshaler = new(Origin)
)

// MarshalText to implement encoding.TextMarshaler.
func (o *Origin) MarshalText() (text []byte, err error) {
	switch *o {
	case OriginRaise:
		return []byte("raise"), nil
	case OriginRethrow:
		return []byte("rethrow"), nil
	case OriginCall:
		return []byte("call"), nil
	case OriginParamCall:
		return []byte("param-call"), nil
	case OriginVarCall:
		return []byte("var-call"), nil
	default:
		return nil, fmt.Errorf("unsupported effect origin value %d", *o)
	}
}

// UnmarshalText to implement encoding.TextUnmarshaler.
func (o *Origin) UnmarshalText(text []byte) error {
	switch string(text) {
	case "raise":
		*o = OriginRaise
	case "rethrow":
		*o = OriginRethrow
	case "call":
		*o = OriginCall
	case "param-call":
		*o = OriginParamCall
	case "var-call":
		*o = OriginVarCall
	default:
		return fmt.Errorf("unknown kind %s of effect origin", string(text))
	}

	return nil
}

// ruleForOrigin maps a candidate origin to its rule code.
func ruleForOrigin(o Origin) exrules.Rule {
	switch o {
	case OriginRaise:
		return exrules.RaiseUnhandled()
	case OriginRethrow:
		return exrules.RethrowUnhandled()
	case OriginCall:
		return exrules.CallUnhandled()
	case OriginParamCall:
		return exrules.CallbackUnhandled()
	case OriginVarCall:
		return exrules.EffectVarUnhandled()
	default:
		panic(fmt.Sprintf("missing rule mapping for origin %d", o))
	}
}
