package moneymanager

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/etnz/moneymanager/kv"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
)

// D is a helper for test to create decimals from const.
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// sequence returns an id generator yielding prefix-1, prefix-2, ...
func sequence(prefix string) func() string {
	var n int
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// ticker returns a clock starting at start and moving one minute on each
// call.
func ticker(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(time.Minute)
		return now
	}
}

var epoch = time.Date(2025, 3, 14, 9, 26, 53, 589793238, time.UTC)

// openTest opens a store on backend with deterministic ids and clock.
func openTest(t *testing.T, backend kv.Store) *Store {
	t.Helper()
	s, err := Open(context.Background(), backend, WithIDs(sequence("id")), WithClock(ticker(epoch)))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return s
}

// usersDiff compares collections, decimals by value and nil slices as empty.
func usersDiff(want, got []User) string {
	return cmp.Diff(want, got,
		cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
		cmpopts.EquateEmpty(),
	)
}
