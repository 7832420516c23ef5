// Package finbook provides the types and managers for a local-first
// personal finance record-keeper. A single user registers an account,
// then records budgets, income entries, expenses, and reminders; every
// collection is persisted wholesale to a human-readable JSONL snapshot
// in a local data directory.
//
// The core functionalities include:
//   - Record Books: one manager per record type, each exclusively owning
//     an ordered, append-only collection of immutable records.
//   - Validation: pure predicates guarding every mutation, plus domain
//     errors for the cross-field checks (budget period ordering, future
//     dates, title bounds, positive amounts).
//   - Data Persistence: whole-collection snapshots, one JSONL file per
//     record type, rewritten after every successful mutation. A missing
//     or unreadable snapshot degrades to an empty collection.
//   - Sessions: explicit session values returned by login and passed to
//     the operations that require authentication.
//
// This package serves as the foundational logic for the `finbook`
// command-line tool.
package finbook
