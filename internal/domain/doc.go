// Package domain contains the core entities and value objects for fileorg.
//
// This package is the innermost layer. It has no dependencies on the file
// system, logging or configuration, and holds only the data shapes the
// engine passes between its stages.
//
// # Entities
//
//   - [FileSet]: the unordered selection of filenames inside the origin
//   - [Ordering]: the pre-order strategy (a closed sum type)
//   - [Numbering], [Removal], [TransferOptions]: renaming and transfer settings
//   - [Plan]: ordered (source, destination) name pairs
//   - [Report]: the per-file outcome of executing a Plan
//
// # Design Principles
//
// Entities are built fresh for every invocation and never mutated after
// construction. Nothing here persists between invocations.
package domain
