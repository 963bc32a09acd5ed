// Package diag defines the diagnostic model shared by the lint pipeline.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture
//     guideline violations produced while scanning subtitle events.
//   - Keep the rule registry as process-wide read-only configuration:
//     every code a check can emit must exist here, and referencing an
//     unknown code fails fast at construction time.
//   - Offer a light-weight collector (Bag) so the pipeline can emit
//     diagnostics without coupling to storage or formatting layers.
//
// # Scope
//
// Package diag does not perform formatting, IO, or CLI integration.
// Rendering lives in internal/lintfmt, orchestration in internal/driver.
//
// # Data model
//
// Diagnostic is the central record: Code (stable MX-prefixed string),
// Severity (warning or error), 1-based dialogue line number, the matched
// Context substring, and the full normalized SourceLine. The human message
// is not stored on the record; it is looked up from the registry by code,
// so the two stay consistent across pretty and JSON output.
//
// Rule codes are deliberately strings rather than a closed enum: the
// suppression directives accept arbitrary user-typed tokens that are
// matched case-insensitively against the registry, and unknown tokens are
// ignored rather than rejected.
package diag
