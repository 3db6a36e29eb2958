package moneymanager

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/etnz/moneymanager/kv"
	"github.com/etnz/moneymanager/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultKey is the key the collection is persisted under. It is the key the
// browser application used.
const DefaultKey = "money-manager-users"

// corruptSuffix is appended to the key to keep an unreadable document.
const corruptSuffix = ".corrupt"

// Store owns the collection of users and keeps its persisted copy in sync.
//
// Every mutation is applied in memory and then the whole collection is
// written under a single key of a kv.Store.
type Store struct {
	mu      sync.RWMutex
	backend kv.Store
	key     string
	users   []User
	now     func() time.Time
	newID   func() string
	updates chan struct{}
}

// Option configures a Store.
type Option func(*Store)

// WithKey sets the key the collection is persisted under.
func WithKey(key string) Option { return func(s *Store) { s.key = key } }

// WithClock sets the source of transaction timestamps.
func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

// WithIDs sets the generator of user and transaction ids.
func WithIDs(newID func() string) Option { return func(s *Store) { s.newID = newID } }

// Open loads the collection persisted in backend.
//
// A missing or unreadable document yields an empty collection. An unreadable
// document is copied under the key suffixed with ".corrupt" before it gets
// overwritten by the next mutation. Only an error reading the backend is
// returned.
func Open(ctx context.Context, backend kv.Store, opts ...Option) (*Store, error) {
	s := &Store{
		backend: backend,
		key:     DefaultKey,
		users:   []User{},
		now:     time.Now,
		newID:   uuid.NewString,
		updates: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}

	data, err := backend.Get(ctx, s.key)
	switch {
	case errors.Is(err, kv.ErrNotExist):
		logger.Log.Infow("no ledger found, starting empty", "key", s.key)
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("could not read ledger %q: %w", s.key, err)
	}

	users, err := Unmarshal([]byte(data))
	if err != nil {
		logger.Log.Warnw("ignoring unreadable ledger, starting empty", "key", s.key, "error", err)
		if err := backend.Set(ctx, s.key+corruptSuffix, data); err != nil {
			logger.Log.Warnw("could not back up unreadable ledger", "key", s.key+corruptSuffix, "error", err)
		}
		return s, nil
	}
	s.users = users
	logger.Log.Debugw("ledger loaded", "key", s.key, "users", len(users))
	return s, nil
}

// Key returns the key the collection is persisted under.
func (s *Store) Key() string { return s.key }

// Updates returns a channel that receives a value whenever the collection
// changes. Notifications are coalesced: a slow reader gets one value for
// several changes.
func (s *Store) Updates() <-chan struct{} { return s.updates }

func (s *Store) notify() {
	select {
	case s.updates <- struct{}{}:
	default:
	}
}

// Snapshot returns a copy of the collection.
func (s *Store) Snapshot() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneUsers(s.users)
}

// User returns the user with that id.
func (s *Store) User(id string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := indexOf(s.users, id)
	if i < 0 {
		return User{}, false
	}
	return s.users[i].clone(), true
}

// UserByName returns the first user with that name, ignoring case.
func (s *Store) UserByName(name string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Name, name) {
			return u.clone(), true
		}
	}
	return User{}, false
}

// TotalBalance returns the sum of all balances.
func (s *Store) TotalBalance() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return TotalBalance(s.users)
}

// AddUser appends a new user with a zero balance.
//
// The name is taken as is, uniqueness is the caller's business (see
// CheckNewUser). A *WriteError means the user was added but not persisted.
func (s *Store) AddUser(ctx context.Context, name string) (User, error) {
	if !validName(name) {
		return User{}, ErrInvalidName
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	u := User{
		ID:           s.newID(),
		Name:         name,
		Balance:      decimal.Zero,
		Transactions: []Transaction{},
	}
	s.users = append(s.users, u)
	logger.Log.Infow("user added", "id", u.ID, "name", u.Name)
	return u.clone(), s.commit(ctx)
}

// DeleteUser removes the user and all its transactions. Deleting an unknown
// id does nothing.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.users, id)
	if i < 0 {
		logger.Log.Debugw("delete of unknown user ignored", "id", id)
		return nil
	}
	users := make([]User, 0, len(s.users)-1)
	users = append(users, s.users[:i]...)
	users = append(users, s.users[i+1:]...)
	s.users = users
	logger.Log.Infow("user deleted", "id", id)
	return s.commit(ctx)
}

// AddTransaction records a transaction at the head of the user's history and
// updates its balance.
//
// It returns ErrNotFound if there is no such user. A *WriteError means the
// transaction was recorded but not persisted.
func (s *Store) AddTransaction(ctx context.Context, userID string, amount decimal.Decimal, reason string, kind Kind) (Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.users, userID)
	if i < 0 {
		return Transaction{}, fmt.Errorf("%w: %q", ErrNotFound, userID)
	}

	tx := Transaction{
		ID:        s.newID(),
		Amount:    amount,
		Reason:    reason,
		Timestamp: s.now().UTC().Round(0),
		Kind:      kind,
	}
	if err := tx.validate(); err != nil {
		return Transaction{}, err
	}

	// build the new user aside, then swap it in.
	u := s.users[i]
	txs := make([]Transaction, 0, len(u.Transactions)+1)
	txs = append(txs, tx)
	u.Transactions = append(txs, u.Transactions...)
	u.Balance = u.Balance.Add(tx.Signed())
	s.users[i] = u

	logger.Log.Infow("transaction added", "user", userID, "id", tx.ID, "kind", kind, "amount", amount)
	return tx, s.commit(ctx)
}

// Replace swaps the whole collection for users, after checking its
// invariants.
func (s *Store) Replace(ctx context.Context, users []User) error {
	users = normalize(cloneUsers(users))
	if err := validateUsers(users); err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = users
	logger.Log.Infow("ledger replaced", "users", len(users))
	return s.commit(ctx)
}

// commit persists the collection. The in-memory state is kept whatever
// happens.
func (s *Store) commit(ctx context.Context) error {
	defer s.notify()

	data, err := Marshal(s.users)
	if err == nil {
		err = s.backend.Set(ctx, s.key, string(data))
	}
	if err != nil {
		logger.Log.Errorw("could not persist ledger", "key", s.key, "error", err)
		return &WriteError{Key: s.key, Err: err}
	}
	return nil
}
