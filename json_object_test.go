package moneymanager

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestObject(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var o object
		got, err := o.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("members in order", func(t *testing.T) {
		var o object
		o.set("version", 1)
		o.set("balance", decimal.RequireFromString("-4.70"))
		o.set("name", "Ravi")
		got, err := o.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"version":1,"balance":-4.7,"name":"Ravi"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("marshal twice", func(t *testing.T) {
		var o object
		o.set("id", "u1")
		first, _ := o.MarshalJSON()
		o.set("name", "Alice")
		second, _ := o.MarshalJSON()
		if string(first) != `{"id":"u1"}` {
			t.Errorf("first = %s, changed by a later set", first)
		}
		if string(second) != `{"id":"u1","name":"Alice"}` {
			t.Errorf("second = %s", second)
		}
	})

	t.Run("keys are escaped", func(t *testing.T) {
		var o object
		o.set(`a"b`, 0)
		got, err := o.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"a\"b":0}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("first error wins", func(t *testing.T) {
		var o object
		o.set("reason", func() {}) // functions cannot be marshaled
		o.set("id", make(chan int))
		_, err := o.MarshalJSON()
		if err == nil || !strings.Contains(err.Error(), "encoding reason") {
			t.Errorf("MarshalJSON() error = %v, want the reason error", err)
		}
	})
}

func TestTransaction_MarshalJSON(t *testing.T) {
	tx := Transaction{
		ID:        "t1",
		Amount:    decimal.RequireFromString("12.50"),
		Reason:    "lunch",
		Timestamp: time.Date(2025, 1, 2, 10, 0, 0, 1, time.UTC),
		Kind:      Debit,
	}
	got, err := tx.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"id":"t1","amount":12.5,"reason":"lunch","timestamp":"2025-01-02T10:00:00.000000001Z","kind":"debit"}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestUser_MarshalJSON(t *testing.T) {
	got, err := User{ID: "u1", Name: "Alice"}.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"id":"u1","name":"Alice","balance":0,"transactions":[]}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
