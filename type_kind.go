package moneymanager

import "fmt"

// Kind is the direction of a transaction.
type Kind int

const (
	// Credit increases the balance of the user.
	Credit Kind = iota + 1
	// Debit decreases the balance of the user.
	Debit
)

func (k Kind) String() string {
	switch k {
	case Credit:
		return "credit"
	case Debit:
		return "debit"
	default:
		return "unknown"
	}
}

// Valid reports whether k is Credit or Debit.
func (k Kind) Valid() bool { return k == Credit || k == Debit }

// ParseKind parses a string into a Kind.
//
// The browser application names them "add" and "deduct", both spellings are
// accepted.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "credit", "add":
		return Credit, nil
	case "debit", "deduct":
		return Debit, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKind, int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
