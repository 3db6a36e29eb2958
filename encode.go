package moneymanager

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Version of the persisted document format.
//
// Version 0 is the format of the browser application: a bare array of users.
const Version = 1

// document is the persisted form of the collection.
type document struct {
	Version int    `json:"version"`
	Users   []User `json:"users"`
}

// MarshalJSON implements the json.Marshaler interface for document.
func (d document) MarshalJSON() ([]byte, error) {
	var o object
	o.set("version", d.Version)
	users := d.Users
	if users == nil {
		users = []User{}
	}
	o.set("users", users)
	return o.MarshalJSON()
}

// legacyTransaction is a transaction as stored by the browser application.
type legacyTransaction struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
	Date   time.Time       `json:"date"`
	Type   Kind            `json:"type"`
}

type legacyUser struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Balance      decimal.Decimal     `json:"balance"`
	Transactions []legacyTransaction `json:"transactions"`
}

// Marshal encodes users in the current document format.
func Marshal(users []User) ([]byte, error) {
	return json.Marshal(document{Version: Version, Users: users})
}

// Encode writes users to w in the current document format, followed by a
// newline.
func Encode(w io.Writer, users []User) error {
	data, err := Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write ledger: %w", err)
	}
	return nil
}

// Unmarshal decodes a document in any supported version and validates it.
//
// Every failure matches ErrFormat.
func Unmarshal(data []byte) ([]User, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrFormat)
	}

	if trimmed[0] == '[' {
		return unmarshalLegacy(trimmed)
	}

	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if doc.Version != Version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrFormat, doc.Version)
	}
	users := normalize(doc.Users)
	if err := validateUsers(users); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return users, nil
}

// Decode reads a whole document from r.
func Decode(r io.Reader) ([]User, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return Unmarshal(data)
}

// unmarshalLegacy decodes the browser application format. Balances there are
// the result of floating point additions, so they are recomputed.
func unmarshalLegacy(data []byte) ([]User, error) {
	var legacy []legacyUser
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	users := make([]User, 0, len(legacy))
	for _, lu := range legacy {
		u := User{ID: lu.ID, Name: lu.Name, Transactions: make([]Transaction, 0, len(lu.Transactions))}
		for _, lt := range lu.Transactions {
			tx := Transaction{
				ID:        lt.ID,
				Amount:    lt.Amount,
				Reason:    lt.Reason,
				Timestamp: lt.Date.UTC(),
				Kind:      lt.Type,
			}
			// amounts are summed below, bound them first.
			if err := tx.validate(); err != nil {
				return nil, fmt.Errorf("%w: transaction %q: %v", ErrFormat, tx.ID, err)
			}
			u.Transactions = append(u.Transactions, tx)
		}
		u.Balance = u.Sum()
		users = append(users, u)
	}
	if err := validateUsers(users); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return users, nil
}

// normalize replaces nil slices so that decoded collections look like the
// ones built in memory.
func normalize(users []User) []User {
	if users == nil {
		users = []User{}
	}
	for i := range users {
		if users[i].Transactions == nil {
			users[i].Transactions = []Transaction{}
		}
	}
	return users
}

// validateUsers checks every invariant of a collection.
func validateUsers(users []User) error {
	userIDs := make(map[string]struct{}, len(users))
	txIDs := make(map[string]struct{})
	for i, u := range users {
		if u.ID == "" {
			return fmt.Errorf("user #%d has no id", i)
		}
		if _, dup := userIDs[u.ID]; dup {
			return fmt.Errorf("duplicate user id %q", u.ID)
		}
		userIDs[u.ID] = struct{}{}
		if !validName(u.Name) {
			return fmt.Errorf("user %q: %w", u.ID, ErrInvalidName)
		}
		for j, tx := range u.Transactions {
			if tx.ID == "" {
				return fmt.Errorf("user %q: transaction #%d has no id", u.ID, j)
			}
			if _, dup := txIDs[tx.ID]; dup {
				return fmt.Errorf("duplicate transaction id %q", tx.ID)
			}
			txIDs[tx.ID] = struct{}{}
			if err := tx.validate(); err != nil {
				return fmt.Errorf("transaction %q: %w", tx.ID, err)
			}
		}
		if err := checkMagnitude(u.Balance); err != nil {
			return fmt.Errorf("user %q: balance: %w", u.ID, err)
		}
		if sum := u.Sum(); !sum.Equal(u.Balance) {
			return fmt.Errorf("user %q: balance %s does not match transactions total %s", u.ID, u.Balance, sum)
		}
	}
	return nil
}
