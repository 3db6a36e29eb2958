// Package moneymanager keeps track of money lent to and borrowed from friends
// and family. It is designed to be local-first: the whole state is a single
// JSON document stored under one key of a key-value store.
//
// The core functionalities include:
//   - Users: named accounts, each with a running balance.
//   - Transactions: credits and debits recorded against a user, most recent
//     first. The balance of a user is always the signed sum of its
//     transactions.
//   - Persistence: the collection is re-written in full after every
//     mutation, in a versioned format that also reads the legacy format of the
//     browser application.
//
// This package serves as the foundational logic for the `mm` command-line
// tool.
package moneymanager
