package exceptful

import (
	"reflect"
	"strings"
	"testing"

	"github.com/sirkon/deepequal"

	"github.com/sirkon/exceptful/eir"
	"github.com/sirkon/exceptful/exrules"
)

type lossRecord struct {
	Rule   exrules.Rule
	Effect eir.Ref
}

func TestEffectLoss(t *testing.T) {
	fetch := &eir.Routine{
		Ref:  eir.Ref{Lib: "app", Name: "fetch"},
		Kind: eir.RoutineFunc,
		Meta: []eir.Meta{throws(ref("app", "CacheMiss"), ref("core", "StateError"))},
	}
	render := &eir.Routine{
		Ref:  eir.Ref{Lib: "app", Name: "render"},
		Kind: eir.RoutineFunc,
	}

	assign := func(target *eir.Binding, source eir.Expr) *eir.Assign {
		var tr *eir.BindingRef
		if target != nil {
			tr = &eir.BindingRef{Binding: target}
		}

		return &eir.Assign{Target: tr, Source: source}
	}

	tests := []struct {
		name  string
		nodes []eir.Node
		want  []lossRecord
	}{
		{
			name: "assignment into a plain binding loses everything",
			nodes: []eir.Node{
				assign(&eir.Binding{Name: "handler"}, &eir.RoutineRef{Routine: fetch}),
			},
			want: []lossRecord{
				{Rule: exrules.AssignLosesEffects(), Effect: ref("app", "CacheMiss")},
				{Rule: exrules.AssignLosesEffects(), Effect: ref("core", "StateError")},
			},
		},
		{
			name: "partly declared target loses the rest",
			nodes: []eir.Node{
				assign(
					&eir.Binding{Name: "handler", Meta: []eir.Meta{throws(ref("core", "Exception"))}},
					&eir.RoutineRef{Routine: fetch},
				),
			},
			want: []lossRecord{
				{Rule: exrules.AssignLosesEffects(), Effect: ref("core", "StateError")},
			},
		},
		{
			name: "fully declared target loses nothing",
			nodes: []eir.Node{
				assign(
					&eir.Binding{Name: "handler", Meta: []eir.Meta{throws(ref("core", "Exception"), ref("core", "Error"))}},
					&eir.RoutineRef{Routine: fetch},
				),
			},
			want: nil,
		},
		{
			name: "parameter source",
			nodes: []eir.Node{
				assign(
					&eir.Binding{Name: "cb"},
					&eir.ParamRef{Param: &eir.Param{Name: "onMiss", Meta: []eir.Meta{throws(ref("core", "FormatException"))}}},
				),
			},
			want: []lossRecord{
				{Rule: exrules.AssignLosesEffects(), Effect: ref("core", "FormatException")},
			},
		},
		{
			name: "binding source",
			nodes: []eir.Node{
				assign(
					&eir.Binding{Name: "copy"},
					&eir.BindingRef{Binding: &eir.Binding{Name: "orig", Meta: []eir.Meta{throws(ref("core", "StateError"))}}},
				),
			},
			want: []lossRecord{
				{Rule: exrules.AssignLosesEffects(), Effect: ref("core", "StateError")},
			},
		},
		{
			name: "effect-free source loses nothing",
			nodes: []eir.Node{
				assign(&eir.Binding{Name: "draw"}, &eir.RoutineRef{Routine: render}),
			},
			want: nil,
		},
		{
			name: "opaque source carries no effect information",
			nodes: []eir.Node{
				assign(&eir.Binding{Name: "out"}, &eir.Call{Kind: eir.CallFunc}),
			},
			want: nil,
		},
		{
			name: "unresolved target skipped",
			nodes: []eir.Node{
				assign(nil, &eir.RoutineRef{Routine: fetch}),
				&eir.Assign{Target: &eir.BindingRef{}, Source: &eir.RoutineRef{Routine: fetch}},
			},
			want: nil,
		},
		{
			name: "initializer loses effects",
			nodes: []eir.Node{
				&eir.Binding{Name: "fn", Init: &eir.RoutineRef{Routine: fetch}},
			},
			want: []lossRecord{
				{Rule: exrules.InitLosesEffects(), Effect: ref("app", "CacheMiss")},
				{Rule: exrules.InitLosesEffects(), Effect: ref("core", "StateError")},
			},
		},
		{
			name: "initializer covered by the binding declaration",
			nodes: []eir.Node{
				&eir.Binding{
					Name: "fn",
					Meta: []eir.Meta{throws(ref("core", "Exception"), ref("core", "Error"))},
					Init: &eir.RoutineRef{Routine: fetch},
				},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			an := testAnalyzer().Analyze(&eir.Unit{Library: "app", Nodes: tt.nodes})

			var got []lossRecord
			for _, f := range an.Findings() {
				got = append(got, lossRecord{Rule: f.Rule, Effect: f.Effect})
			}

			if !reflect.DeepEqual(tt.want, got) {
				deepequal.SideBySide(t, "loss findings", tt.want, got)
			}
		})
	}
}

func TestEffectLossMessage(t *testing.T) {
	target := &eir.Binding{Name: "handler"}
	an := testAnalyzer().Analyze(&eir.Unit{
		Library: "app",
		Nodes: []eir.Node{&eir.Assign{
			Target: &eir.BindingRef{Binding: target},
			Source: &eir.ParamRef{Param: &eir.Param{Name: "cb", Meta: []eir.Meta{throws(ref("app", "CacheMiss"))}}},
		}},
	})

	findings := an.Findings()
	if len(findings) != 1 {
		t.Fatalf("expected a single finding, got %d", len(findings))
	}
	if !strings.Contains(findings[0].Message, `"handler"`) {
		t.Errorf("message does not name the target binding: %s", findings[0].Message)
	}
	if findings[0].Origin != originInvalid {
		t.Errorf("loss findings have no origin, got %v", findings[0].Origin)
	}
}
