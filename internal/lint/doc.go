// Package lint is the rule evaluation engine.
//
// The pipeline is deliberately separated into three pure pieces:
//
//   - Normalize turns a dialogue line's raw text into the two views the
//     checks consume (collapsed and spacing-preserving), with override
//     tags and break escapes stripped.
//   - State resolves the three suppression tiers: a run-wide disabled set,
//     the file-wide toggles driven by lint-disable/lint-enable comment
//     directives, and the ephemeral per-line noqa/skip-* markers.
//   - The catalog is a fixed ordered list of independent check functions;
//     each emission consults the suppression state and dropped emissions
//     are never recorded.
//
// Checks are total functions with no cross-line state: nothing one line
// produces can influence another line or another check. Directives seen in
// one file never leak into the next; the driver allocates fresh State per
// file.
package lint
