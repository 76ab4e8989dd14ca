// Package fintrack provides the core of a personal finance transaction
// tracker: a single-user book of monetary transactions persisted to a flat
// comma-delimited text file.
//
// The package is organized in three layers:
//   - Transaction: an immutable-after-validation value object carrying an
//     identifier, an exact decimal amount, a category and a timestamp.
//   - Store: the single source of truth for recorded transactions. It loads
//     the book file lazily on first access, assigns unique identifiers, and
//     rewrites the whole file synchronously on every mutation.
//   - Service: the façade consumed by the interactive layer. It validates
//     caller input before any mutation and exposes the domain operations
//     (add, list, total, filter by category, delete).
//
// This package serves as the foundational logic for the `ftr` command-line
// tool. The on-disk format is documented in the docs package (topic
// "format") and is kept human readable and version-controllable.
package fintrack
