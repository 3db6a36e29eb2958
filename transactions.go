package moneymanager

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a movement of money recorded against a user.
//
// Amount is always positive, the direction is given by Kind.
type Transaction struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason"`
	Timestamp time.Time       `json:"timestamp"`
	Kind      Kind            `json:"kind"`
}

// Signed returns the amount with the sign of its kind: positive for a credit,
// negative for a debit.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind == Debit {
		return t.Amount.Neg()
	}
	return t.Amount
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var o object
	o.set("id", t.ID)
	o.set("amount", t.Amount)
	o.set("reason", t.Reason)
	o.set("timestamp", t.Timestamp.UTC().Format(time.RFC3339Nano))
	o.set("kind", t.Kind)
	return o.MarshalJSON()
}

// validate checks the fields a transaction must always satisfy.
func (t Transaction) validate() error {
	if err := checkAmount(t.Amount); err != nil {
		return err
	}
	if strings.TrimSpace(t.Reason) == "" {
		return ErrInvalidReason
	}
	if !t.Kind.Valid() {
		return ErrInvalidKind
	}
	return nil
}

// User is a named account with its running balance and its history.
type User struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Balance      decimal.Decimal `json:"balance"`
	Transactions []Transaction   `json:"transactions"` // most recent first
}

// MarshalJSON implements the json.Marshaler interface for User.
func (u User) MarshalJSON() ([]byte, error) {
	var o object
	o.set("id", u.ID)
	o.set("name", u.Name)
	o.set("balance", u.Balance)
	txs := u.Transactions
	if txs == nil {
		txs = []Transaction{} // never "null"
	}
	o.set("transactions", txs)
	return o.MarshalJSON()
}

// Sum computes the balance from scratch out of the user's transactions.
func (u User) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range u.Transactions {
		sum = sum.Add(tx.Signed())
	}
	return sum
}

// clone returns a copy of u that shares no memory with it.
func (u User) clone() User {
	u.Transactions = append([]Transaction{}, u.Transactions...)
	return u
}

// cloneUsers deep copies a collection.
func cloneUsers(users []User) []User {
	out := make([]User, len(users))
	for i, u := range users {
		out[i] = u.clone()
	}
	return out
}

// TotalBalance is the sum of all the users balances.
func TotalBalance(users []User) decimal.Decimal {
	total := decimal.Zero
	for _, u := range users {
		total = total.Add(u.Balance)
	}
	return total
}

// indexOf returns the position of the user with that id, or -1.
func indexOf(users []User, id string) int {
	return slices.IndexFunc(users, func(u User) bool { return u.ID == id })
}
