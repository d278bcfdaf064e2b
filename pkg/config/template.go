package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes all rules with their documentation.
	// If false, generates a minimal template.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string

	// IncludeRules is a list of rule IDs to include.
	// If empty, all rules are included.
	IncludeRules []string

	// IncludeDefaults includes fields that match the default values.
	IncludeDefaults bool
}

// RuleInfo contains rule metadata for template generation.
type RuleInfo struct {
	ID          string
	Name        string
	Description string
	Enabled     bool
	Severity    Severity
	Tags        []string
	CanFix      bool
}

// RuleInfoProvider is a function that returns rule information.
// This allows decoupling from the lint package to avoid circular imports.
type RuleInfoProvider func() []RuleInfo

// DefaultRuleInfoProvider is set by the lint package during init.
//
//nolint:gochecknoglobals // Intentional extension point for rule info.
var DefaultRuleInfoProvider RuleInfoProvider

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Full {
		return generateFullTemplate(opts)
	}
	return generateMinimalTemplate(opts)
}

// generateMinimalTemplate creates a minimal commented template.
func generateMinimalTemplate(opts TemplateOptions) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`# gohtmlint configuration
# See: https://github.com/yaklabco/gohtmlint

# Default severity for all rules: error, warning, or info
# severity_default: error

# Treat warnings as failures for exit-code purposes
# strict: false

# Class tokens treated as state markers (overrides the built-in set)
# state_lexicon:
#   - active
#   - disabled
#   - loading

# Enable auto-fix mode
# fix: false

# Number of parallel workers (0 = auto)
# jobs: 0

# File patterns to ignore (glob patterns)
# ignore:
#   - "vendor/**"
#   - "node_modules/**"

# Rule-specific configuration
# rules:
#   HC003:
#     enabled: true
#     severity: error
#   HC008:
#     enabled: true
#     options:
#       max_depth: 16
`)

	if opts.Format == "json" {
		return templateToJSON()
	}

	return buf.Bytes(), nil
}

// generateFullTemplate creates a full template with all rules documented.
func generateFullTemplate(opts TemplateOptions) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`# gohtmlint configuration - Full Template
# See: https://github.com/yaklabco/gohtmlint
#
# This template includes all available rules with their default settings.
# Uncomment and modify settings as needed.

# Default severity for all rules: error, warning, or info
severity_default: warning

# Treat warnings as failures for exit-code purposes
strict: false

# Class tokens treated as state markers (overrides the built-in set)
# state_lexicon:
#   - active
#   - disabled
#   - loading

# Enable auto-fix mode
fix: false

# Show changes without applying them (requires fix: true)
dry_run: false

# Number of parallel workers (0 = auto based on CPU cores)
jobs: 0

# Output format: text, json, sarif, or diff
format: text

# Backup configuration for auto-fix
backups:
  enabled: true
  mode: sidecar

# File patterns to ignore (glob patterns)
ignore:
  - "vendor/**"
  - "node_modules/**"
  - ".git/**"

# Rules to explicitly enable (overrides defaults)
# enable_rules:
#   - HC001
#   - HC002

# Rules to explicitly disable
# disable_rules:
#   - HC006

# Rules to allow auto-fixing
# fix_rules:
#   - HC003

# Rule-specific configuration
rules:
`)

	// Get rule information
	rules := getRuleInfos()

	// Filter by IncludeRules if specified
	if len(opts.IncludeRules) > 0 {
		includeSet := make(map[string]bool)
		for _, id := range opts.IncludeRules {
			includeSet[id] = true
		}
		filtered := make([]RuleInfo, 0)
		for _, r := range rules {
			if includeSet[r.ID] {
				filtered = append(filtered, r)
			}
		}
		rules = filtered
	}

	// Sort by ID
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].ID < rules[j].ID
	})

	// Write each rule
	for _, rule := range rules {
		buf.WriteString(fmt.Sprintf("\n  # %s: %s\n", rule.ID, rule.Name))
		buf.WriteString(fmt.Sprintf("  # %s\n", wrapComment(rule.Description, commentWrapWidth)))
		if len(rule.Tags) > 0 {
			buf.WriteString(fmt.Sprintf("  # Tags: %s\n", strings.Join(rule.Tags, ", ")))
		}
		if rule.CanFix {
			buf.WriteString("  # Auto-fix: yes\n")
		}
		buf.WriteString(fmt.Sprintf("  %s:\n", rule.ID))
		buf.WriteString(fmt.Sprintf("    enabled: %t\n", rule.Enabled))
		buf.WriteString(fmt.Sprintf("    severity: %s\n", rule.Severity))
		buf.WriteString("    # options:\n")
		buf.WriteString("    #   key: value\n")
	}

	if opts.Format == "json" {
		return templateToJSON()
	}

	return buf.Bytes(), nil
}

// getRuleInfos returns information about all registered rules.
func getRuleInfos() []RuleInfo {
	if DefaultRuleInfoProvider != nil {
		return DefaultRuleInfoProvider()
	}

	// Fallback to a static list of known rules
	return []RuleInfo{
		{
			ID: "HC001", Name: "duplicate-inline-svg", Enabled: true, Severity: SeverityWarning,
			Description: "Identical inline SVG markup repeated instead of reusing a symbol definition",
			Tags:        []string{"svg", "duplication"},
		},
		{
			ID: "HC002", Name: "missing-component-marker", Enabled: true, Severity: SeverityWarning,
			Description: "Repeated sibling markup groups without a data-component annotation",
			Tags:        []string{"components"},
		},
		{
			ID: "HC003", Name: "state-via-class", Enabled: true, Severity: SeverityWarning,
			Description: "State expressed through class tokens instead of a data-state attribute",
			Tags:        []string{"components", "state"}, CanFix: true,
		},
		{
			ID: "HC004", Name: "absolute-positioning", Enabled: true, Severity: SeverityInfo,
			Description: "Absolute positioning outside a recognized overlay component",
			Tags:        []string{"style", "layout"},
		},
		{
			ID: "HC005", Name: "hardcoded-color", Enabled: true, Severity: SeverityInfo,
			Description: "Raw color literal in inline style instead of a design token",
			Tags:        []string{"style", "theming"},
		},
		{
			ID: "HC006", Name: "missing-theme-selector", Enabled: true, Severity: SeverityInfo,
			Description: "Color custom properties defined without any theme-scoped override",
			Tags:        []string{"style", "theming"},
		},
		{
			ID: "HC007", Name: "duplicate-id", Enabled: true, Severity: SeverityError,
			Description: "The same id attribute value used by more than one element",
			Tags:        []string{"structure"},
		},
		{
			ID: "HC008", Name: "deep-nesting", Enabled: true, Severity: SeverityWarning,
			Description: "Element nesting depth beyond the configured maximum",
			Tags:        []string{"structure"},
		},
	}
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	currentLine := ""

	for _, word := range words {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n  # ")
}

// templateToJSON renders the template configuration as JSON.
func templateToJSON() ([]byte, error) {
	cfg := map[string]any{
		"severity_default": "warning",
		"strict":           false,
		"fix":              false,
		"dry_run":          false,
		"jobs":             0,
		"format":           "text",
		"backups": map[string]any{
			"enabled": true,
			"mode":    "sidecar",
		},
		"ignore": []string{"vendor/**", "node_modules/**", ".git/**"},
		"rules":  map[string]any{},
	}

	rules := getRuleInfos()
	rulesMap := make(map[string]any)
	for _, r := range rules {
		rulesMap[r.ID] = map[string]any{
			"enabled":  r.Enabled,
			"severity": string(r.Severity),
		}
	}
	cfg["rules"] = rulesMap

	jsonBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}

	return jsonBytes, nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# gohtmlint configuration
# See: https://github.com/yaklabco/gohtmlint`
}
