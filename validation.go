package moneymanager

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxScale is the number of decimal places an amount may carry.
const MaxScale = 8

// MaxAmount is the exclusive upper bound of an amount.
var MaxAmount = decimal.New(1, 12)

// maxExponent bounds the exponent of any decimal read from outside, so that
// comparing or rescaling it stays cheap.
const maxExponent = 32

func validName(name string) bool { return strings.TrimSpace(name) != "" }

// checkMagnitude rejects decimals whose exponent is out of reach.
func checkMagnitude(d decimal.Decimal) error {
	if e := d.Exponent(); e < -maxExponent || e > maxExponent {
		return fmt.Errorf("%w: exponent %d out of range", ErrInvalidAmount, e)
	}
	return nil
}

// checkAmount applies the rules every transaction amount satisfies.
func checkAmount(d decimal.Decimal) error {
	if err := checkMagnitude(d); err != nil {
		return err
	}
	if !d.IsPositive() {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, d)
	}
	if d.GreaterThanOrEqual(MaxAmount) {
		return fmt.Errorf("%w: %s is not below %s", ErrInvalidAmount, d, MaxAmount)
	}
	if !d.Equal(d.Truncate(MaxScale)) {
		return fmt.Errorf("%w: %s has more than %d decimal places", ErrInvalidAmount, d, MaxScale)
	}
	return nil
}

// ParseAmount parses a user supplied amount. It must be a positive decimal
// below MaxAmount with at most MaxScale decimal places.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if err := checkAmount(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// CheckNewUser applies the rules a new user must satisfy before it is added
// to users: a non blank name, unique regardless of case, and at most maxUsers
// users in total (0 means no limit).
//
// It returns the trimmed name to add.
func CheckNewUser(users []User, name string, maxUsers int) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrInvalidName
	}
	if maxUsers > 0 && len(users) >= maxUsers {
		return "", fmt.Errorf("%w (%d/%d)", ErrTooManyUsers, len(users), maxUsers)
	}
	for _, u := range users {
		if strings.EqualFold(u.Name, name) {
			return "", fmt.Errorf("%w: a user named %q already exists", ErrDuplicateName, u.Name)
		}
	}
	return name, nil
}
