// Package ports defines the interfaces that connect the engine to
// infrastructure adapters.
//
// # Port Interfaces
//
//   - [CreationTimer]: reads the status-change time of an origin file
//   - [FileSystem]: existence checks, delete, copy, rename and listing
//   - [ReportRepository]: persists the outcome report of a run
//
// The ordering, naming and transfer packages depend only on these
// interfaces. internal/adapters/fs implements them against the OS, and
// tests substitute in-memory fakes to count file system operations.
package ports
