// Package rules provides the built-in lint rules for gohtmlint.
//
// # Rule Domains
//
// This package contains rule implementations across several domains:
//
//   - Vector graphics:
//
//   - HC001: duplicate-inline-svg - Repeated inline SVG markup should use a
//     shared symbol and use references
//
//   - Component structure:
//
//   - HC002: missing-component-marker - Repeated structures should carry a
//     data-component attribute
//
//   - HC003: state-via-class - Component state should use data-state, not
//     state class tokens
//
//   - Layout:
//
//   - HC004: absolute-positioning - Absolute positioning outside intentional
//     overlay components
//
//   - HC008: deep-nesting - Element nesting depth beyond the configured
//     maximum
//
//   - Theming:
//
//   - HC005: hardcoded-color - Raw color literals in inline styles instead of
//     variable references
//
//   - HC006: missing-theme-selector - Root-scope color tokens without a
//     [data-theme] scoped alternative
//
//   - Document identity:
//
//   - HC007: duplicate-id - The same id declared on more than one element
//
//   - HC009: dangling-reference - Id references whose target does not exist
//
// # Rule IDs
//
// Rule IDs use the HCxxx namespace ("HTML convention"). Rules also resolve
// by their kebab-case names, and a small set of legacy htmlhint aliases is
// registered for migrated configurations.
//
// # Rule Packs
//
// Rule packs are configuration presets for common use cases:
//
//   - core: Component-structure rules for convertible markup
//   - strict: Everything as errors for CI gates
//   - relaxed: Minimal noise, structural rules only
//   - tokens: Theming and design-token discipline
//
// Use PackByName or Packs to access pack definitions programmatically.
//
// # Registration
//
// Rules are registered with the default registry via RegisterAll.
// Each rule follows the lint.Rule interface and uses the RuleContext,
// DiagnosticBuilder, and EditBuilder infrastructure.
package rules
