package configloader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/gohtmlint/pkg/config"
	_ "github.com/yaklabco/gohtmlint/pkg/lint/rules" // Register rules
)

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	// Create temp directory with no config files
	tmpDir := t.TempDir()

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreHtmlhint:     true,
		NonInteractive:     true,
	}

	result, err := opts.load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config == nil {
		t.Fatal("Load() returned nil config")
	}

	// Check defaults are applied
	if result.Config.SeverityDefault != string(config.SeverityWarning) {
		t.Errorf("expected severity_default %q, got %q",
			config.SeverityWarning, result.Config.SeverityDefault)
	}
}

func (o LoadOptions) load(ctx context.Context) (*LoadResult, error) {
	return Load(ctx, o)
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Create a project config
	// Note: jobs is a CLI-only option (yaml:"-"), so it won't be loaded from file
	configContent := `
severity_default: error
rules:
  HC007:
    enabled: false
`
	configPath := filepath.Join(tmpDir, ".gohtmlint.yml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreHtmlhint:     true,
		NonInteractive:     true,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.SeverityDefault != "error" {
		t.Errorf("expected severity_default %q, got %q", "error", result.Config.SeverityDefault)
	}

	// Check that the rule config was loaded
	dup, ok := result.Config.Rules["HC007"]
	if !ok {
		t.Fatal("HC007 rule not found in config")
	}
	if dup.Enabled == nil || *dup.Enabled {
		t.Error("expected HC007 to be disabled")
	}

	if len(result.LoadedFrom) != 1 {
		t.Errorf("expected 1 loaded file, got %d", len(result.LoadedFrom))
	}
}

func TestLoad_ExplicitConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Create a custom config
	// Note: format is a CLI-only option (yaml:"-"), so we test persisted fields
	configContent := `
severity_default: info
state_lexicon: [open, busy]
`
	customPath := filepath.Join(tmpDir, "custom-config.yml")
	if err := os.WriteFile(customPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		ExplicitPath:       customPath,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreHtmlhint:     true,
		NonInteractive:     true,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.SeverityDefault != "info" {
		t.Errorf("expected severity_default %q, got %q", "info", result.Config.SeverityDefault)
	}

	if len(result.Config.StateLexicon) != 2 || result.Config.StateLexicon[0] != "open" {
		t.Errorf("expected state_lexicon [open busy], got %v", result.Config.StateLexicon)
	}
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Create a project config
	configContent := `
severity_default: warning
state_lexicon: [open]
`
	configPath := filepath.Join(tmpDir, ".gohtmlint.yml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx := context.Background()
	cliCfg := &config.Config{
		SeverityDefault: "error",
		StateLexicon:    []string{"glowing"},
		Jobs:            8,
		Fix:             true,
	}
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreHtmlhint:     true,
		NonInteractive:     true,
		CLIConfig:          cliCfg,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// CLI should override project config
	if result.Config.SeverityDefault != "error" {
		t.Errorf("expected severity_default %q (CLI override), got %q",
			"error", result.Config.SeverityDefault)
	}

	if len(result.Config.StateLexicon) != 1 || result.Config.StateLexicon[0] != "glowing" {
		t.Errorf("expected state_lexicon [glowing] (CLI override), got %v", result.Config.StateLexicon)
	}

	if result.Config.Jobs != 8 {
		t.Errorf("expected jobs 8 (CLI override), got %d", result.Config.Jobs)
	}

	if !result.Config.Fix {
		t.Error("expected fix true (CLI override)")
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Create an invalid config
	configContent := `
severity_default: catastrophic
`
	configPath := filepath.Join(tmpDir, ".gohtmlint.yml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreHtmlhint:     true,
		NonInteractive:     true,
	}

	_, err := Load(ctx, opts)
	if err == nil {
		t.Fatal("expected validation error for invalid severity")
	}
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	opts := LoadOptions{
		WorkingDir:         t.TempDir(),
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreHtmlhint:     true,
		NonInteractive:     true,
	}

	_, err := Load(ctx, opts)
	if err == nil {
		t.Fatal("expected context cancellation error")
	}
}

func TestLoader_NormalizesRuleKeys(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Create temp config file using rule names instead of IDs
	content := `
rules:
  state-via-class:
    enabled: false
  deep-nesting:
    enabled: true
    severity: error
`
	configPath := filepath.Join(tmpDir, ".gohtmlint.yml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreHtmlhint:     true,
		NonInteractive:     true,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Should be normalized to IDs internally
	// HC003 is state-via-class, HC008 is deep-nesting
	_, hasID := result.Config.Rules["HC003"]
	_, hasName := result.Config.Rules["state-via-class"]

	if !hasID {
		t.Error("expected HC003 to be present after normalization")
	}
	if hasName {
		t.Error("expected state-via-class to be removed after normalization")
	}

	// Check HC008 (deep-nesting)
	nesting, hasNesting := result.Config.Rules["HC008"]
	if !hasNesting {
		t.Error("expected HC008 to be present after normalization")
	} else {
		if nesting.Enabled == nil || !*nesting.Enabled {
			t.Error("expected HC008 to be enabled")
		}
		if nesting.Severity == nil || *nesting.Severity != "error" {
			t.Error("expected HC008 severity to be error")
		}
	}
}

func TestLoader_WarnsDuplicateRules(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Create config with both ID and name for same rule
	content := `
rules:
  HC003:
    enabled: false
  state-via-class:
    enabled: true
`
	configPath := filepath.Join(tmpDir, ".gohtmlint.yml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreHtmlhint:     true,
		NonInteractive:     true,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Should have a warning about duplicate rule
	foundWarning := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "duplicate") && strings.Contains(w, "HC003") {
			foundWarning = true
			break
		}
	}
	if !foundWarning {
		t.Errorf("expected warning about duplicate rule, got warnings: %v", result.Warnings)
	}

	// Verify the rule is normalized to canonical ID and has a value
	// Note: which value "wins" is undefined since Go map iteration order is non-deterministic
	stateCfg, ok := result.Config.Rules["HC003"]
	if !ok {
		t.Fatal("expected HC003 in config")
	}
	if stateCfg.Enabled == nil {
		t.Error("expected HC003.Enabled to be set")
	}
}
