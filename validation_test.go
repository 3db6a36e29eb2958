package moneymanager

import (
	"errors"
	"testing"
)

func TestCheckNewUser(t *testing.T) {
	users := []User{{ID: "1", Name: "Alice"}, {ID: "2", Name: "Bob"}}

	tests := []struct {
		name     string
		input    string
		maxUsers int
		want     string
		wantErr  error
	}{
		{"new name", "Carol", 0, "Carol", nil},
		{"trimmed", "  Carol \n", 0, "Carol", nil},
		{"duplicate", "Alice", 0, "", ErrDuplicateName},
		{"duplicate ignoring case", "aLiCe", 0, "", ErrDuplicateName},
		{"duplicate after trim", " bob ", 0, "", ErrDuplicateName},
		{"blank", "   ", 0, "", ErrInvalidName},
		{"under the limit", "Carol", 3, "Carol", nil},
		{"limit reached", "Carol", 2, "", ErrTooManyUsers},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CheckNewUser(users, tc.input, tc.maxUsers)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("CheckNewUser(%q) error = %v, want %v", tc.input, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("CheckNewUser(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	for _, in := range []string{"1", "0.01", " 500 ", "1234.5678", "0.00000001", "999999999999.99999999", "1e3", "2.50000000000"} {
		if _, err := ParseAmount(in); err != nil {
			t.Errorf("ParseAmount(%q) error = %v", in, err)
		}
	}
	for _, in := range []string{"", "0", "-1", "abc", "NaN", "Inf", "1,5",
		"0.000000001", "1e12", "1000000000000", "1e20", "1e5000000", "1e-5000000"} {
		if _, err := ParseAmount(in); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("ParseAmount(%q) error = %v, want ErrInvalidAmount", in, err)
		}
	}
	if got, _ := ParseAmount("12.50"); got.String() != "12.5" {
		t.Errorf("ParseAmount(12.50) = %s, want 12.5", got)
	}
}

func TestParseKind(t *testing.T) {
	tests := map[string]Kind{"credit": Credit, "add": Credit, "debit": Debit, "deduct": Debit}
	for in, want := range tests {
		got, err := ParseKind(in)
		if err != nil || got != want {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", in, got, err, want)
		}
		if in == want.String() {
			text, _ := got.MarshalText()
			if string(text) != in {
				t.Errorf("MarshalText() = %q, want %q", text, in)
			}
		}
	}
	if _, err := ParseKind("Credit"); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("ParseKind(Credit) error = %v, want ErrInvalidKind", err)
	}
	if _, err := Kind(0).MarshalText(); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("Kind(0).MarshalText() error = %v, want ErrInvalidKind", err)
	}
}
