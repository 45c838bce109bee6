// Package ordering resolves the pre-order of a file selection.
//
// Four strategies are supported: alphabetical, reverse alphabetical,
// creation time and a numeric key extracted from each filename. The
// resulting order fixes the index each file receives when numbering.
//
// Keyed orderings (creation time, numeric) break ties by filename
// ascending, so the result is deterministic for any input order.
package ordering
