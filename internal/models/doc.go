// Package models defines the core domain records for splitledger.
//
// # Financial records
//
// Expenses, payments, splits and settlements are immutable once written:
//   - Expense: a shared cost recorded against a group
//   - ExpensePayment: what one user contributed toward an expense
//   - ExpenseSplit: what one user owes as their share of an expense
//   - Settlement: a direct transfer between two users outside any expense
//
// The ledger is append-only. Nothing in this repo updates or deletes these rows.
//
// # Identities
//
//   - User: unique name and email; passwords are stored as bcrypt hashes
//   - Group: uniquely named set of users, joined through GroupMember
//
// # Derived values
//
// BalanceSummary is never stored authoritatively. It is computed from the ledger by the
// calculator package and may be cached, but the cache is a disposable projection.
//
// # Conventions
//
//  1. Money is decimal.Decimal quantized to two fractional digits, never float64
//  2. Identifiers are store-assigned int64 values
//  3. Timestamps are Unix seconds
//  4. Relationships are expressed with IDs, not pointers
package models
