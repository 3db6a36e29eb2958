package renderer

import (
	"github.com/etnz/moneymanager"
)

// Summary is the data of the users overview.
type Summary struct {
	// Users in collection order.
	Users []SummaryUser `json:"users"`
	// Total is the sum of all balances.
	Total moneymanager.Money `json:"total"`
}

// SummaryUser is one row of the users overview.
type SummaryUser struct {
	Name         string             `json:"name"`
	ID           string             `json:"id"`
	Balance      moneymanager.Money `json:"balance"`
	Transactions int                `json:"transactions"`
}

// NewSummary builds the overview of users, amounts displayed in currency.
func NewSummary(users []moneymanager.User, currency string) *Summary {
	s := &Summary{
		Users: make([]SummaryUser, 0, len(users)),
		Total: moneymanager.M(moneymanager.TotalBalance(users), currency),
	}
	for _, u := range users {
		s.Users = append(s.Users, SummaryUser{
			Name:         cell(u.Name),
			ID:           u.ID,
			Balance:      moneymanager.M(u.Balance, currency),
			Transactions: len(u.Transactions),
		})
	}
	return s
}
