package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gohtmlint/pkg/config"
	"github.com/yaklabco/gohtmlint/pkg/dom"
	"github.com/yaklabco/gohtmlint/pkg/lint"
	"github.com/yaklabco/gohtmlint/pkg/parser/nethtml"
)

// parseDoc parses test markup into a snapshot, failing the test on error.
func parseDoc(t *testing.T, input string) *dom.FileSnapshot {
	t.Helper()

	snapshot, err := nethtml.New().Parse(context.Background(), "test.html", []byte(input))
	require.NoError(t, err)
	return snapshot
}

// applyRule runs a rule against markup with an optional rule config.
func applyRule(t *testing.T, rule lint.Rule, input string, ruleCfg *config.RuleConfig) []lint.Diagnostic {
	t.Helper()

	snapshot := parseDoc(t, input)
	cfg := config.NewConfig()
	ruleCtx := lint.NewRuleContext(context.Background(), snapshot, cfg, ruleCfg)

	diags, err := rule.Apply(ruleCtx)
	require.NoError(t, err)
	return diags
}

// optionsConfig builds a RuleConfig carrying only an options map.
func optionsConfig(options map[string]any) *config.RuleConfig {
	return &config.RuleConfig{Options: options}
}
