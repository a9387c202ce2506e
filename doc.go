// Package expenses provides the functions and types for recording and
// summarizing personal expenses. It is designed to be local-first and
// auditable, ensuring users have full control and transparency over their
// spending data.
//
// The core functionalities include:
//   - Expense Recording: Validating and appending immutable expense records
//     (date, category, description, amount) in insertion order.
//   - Aggregation: Exact decimal totals, overall and grouped by category.
//   - Data Persistence: Encoding and decoding the expense sequence to and
//     from a human-readable, version-controllable JSONL file.
//
// This package serves as the foundational logic for the `xps` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package expenses
