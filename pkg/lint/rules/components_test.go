package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gohtmlint/pkg/fix"
)

func TestMissingComponentMarkerRule(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantDiags int
		wantMsgs  []string
	}{
		{
			name:      "three unmarked cards",
			input:     `<div><div class="card">a</div><div class="card">b</div><div class="card">c</div></div>`,
			wantDiags: 1,
			wantMsgs:  []string{"repeats 3 times"},
		},
		{
			name:      "two unmarked repeats",
			input:     `<ul><li class="item">a</li><li class="item">b</li></ul>`,
			wantDiags: 1,
		},
		{
			name: "all repeats marked",
			input: `<div><div class="card" data-component="card">a</div>` +
				`<div class="card" data-component="card">b</div>` +
				`<div class="card" data-component="card">c</div></div>`,
			wantDiags: 0,
		},
		{
			name:      "one marked repeat satisfies the group",
			input:     `<div><div class="card" data-component="card">a</div><div class="card">b</div></div>`,
			wantDiags: 0,
		},
		{
			name:      "class order does not change the shape",
			input:     `<div><div class="card big">a</div><div class="big card">b</div></div>`,
			wantDiags: 1,
		},
		{
			name:      "different shapes are distinct",
			input:     `<div><div class="card">a</div><div class="panel">b</div></div>`,
			wantDiags: 0,
		},
		{
			name:      "classless repeats are ordinary markup",
			input:     `<ul><li>a</li><li>b</li><li>c</li></ul>`,
			wantDiags: 0,
		},
		{
			name:      "repeats in separate containers are separate groups",
			input:     `<div><span class="tag">a</span></div><div><span class="tag">b</span></div>`,
			wantDiags: 0,
		},
		{
			name:      "empty document",
			input:     "",
			wantDiags: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := applyRule(t, NewMissingComponentMarkerRule(), tt.input, nil)
			assert.Len(t, diags, tt.wantDiags)

			for i, msg := range tt.wantMsgs {
				if i < len(diags) {
					assert.Contains(t, diags[i].Message, msg)
				}
			}
		})
	}
}

func TestStateViaClassRule(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantDiags int
		wantMsgs  []string
	}{
		{
			name:      "state token without data-state",
			input:     `<button class="btn active">Go</button>`,
			wantDiags: 1,
			wantMsgs:  []string{`"active"`},
		},
		{
			name:      "data-state present",
			input:     `<button class="btn" data-state="active">Go</button>`,
			wantDiags: 0,
		},
		{
			name:      "state class alongside data-state",
			input:     `<button class="btn active" data-state="active">Go</button>`,
			wantDiags: 0,
		},
		{
			name:      "lexicon matching is case-insensitive",
			input:     `<div class="Disabled">x</div>`,
			wantDiags: 1,
		},
		{
			name:      "multiple state tokens on one element",
			input:     `<div class="active error">x</div>`,
			wantDiags: 1,
			wantMsgs:  []string{`"active error"`},
		},
		{
			name:      "non-state classes",
			input:     `<div class="card primary">x</div>`,
			wantDiags: 0,
		},
		{
			name:      "no class attribute",
			input:     `<button>Go</button>`,
			wantDiags: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := applyRule(t, NewStateViaClassRule(), tt.input, nil)
			assert.Len(t, diags, tt.wantDiags)

			for i, msg := range tt.wantMsgs {
				if i < len(diags) {
					assert.Contains(t, diags[i].Message, msg)
				}
			}
		})
	}
}

func TestStateViaClassRuleCustomLexicon(t *testing.T) {
	input := `<div class="busy">x</div><div class="active">y</div>`

	ruleCfg := optionsConfig(map[string]any{
		"states": []any{"busy"},
	})

	diags := applyRule(t, NewStateViaClassRule(), input, ruleCfg)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, `"busy"`)
}

func TestStateViaClassRuleFix(t *testing.T) {
	input := `<button class="btn active">Go</button>`

	diags := applyRule(t, NewStateViaClassRule(), input, nil)
	require.Len(t, diags, 1)
	require.True(t, diags[0].HasFix())

	fixed := fix.ApplyEdits([]byte(input), diags[0].FixEdits)
	assert.Equal(t, `<button class="btn active" data-state="active">Go</button>`, string(fixed))
}

func TestStateViaClassRuleFixSelfClosing(t *testing.T) {
	input := `<input class="disabled"/>`

	diags := applyRule(t, NewStateViaClassRule(), input, nil)
	require.Len(t, diags, 1)
	require.True(t, diags[0].HasFix())

	fixed := fix.ApplyEdits([]byte(input), diags[0].FixEdits)
	assert.Equal(t, `<input class="disabled" data-state="disabled"/>`, string(fixed))
}

func TestComponentRuleMetadata(t *testing.T) {
	marker := NewMissingComponentMarkerRule()
	assert.Equal(t, "HC002", marker.ID())
	assert.Equal(t, "missing-component-marker", marker.Name())
	assert.False(t, marker.CanFix())

	state := NewStateViaClassRule()
	assert.Equal(t, "HC003", state.ID())
	assert.Equal(t, "state-via-class", state.Name())
	assert.True(t, state.CanFix())
}
