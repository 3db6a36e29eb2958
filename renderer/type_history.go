package renderer

import (
	"time"

	"github.com/etnz/moneymanager"
	"github.com/etnz/moneymanager/date"
)

// History is the data of a user's transaction history.
type History struct {
	Name    string             `json:"name"`
	Balance moneymanager.Money `json:"balance"`
	// Lines are most recent first.
	Lines []HistoryLine `json:"lines"`
	// Omitted is the number of older transactions left out.
	Omitted int `json:"omitted,omitempty"`
}

// HistoryLine is one transaction.
type HistoryLine struct {
	When      string             `json:"when"`
	Timestamp time.Time          `json:"timestamp"`
	Kind      string             `json:"kind"`
	Amount    moneymanager.Money `json:"amount"` // signed
	Reason    string             `json:"reason"`
}

// NewHistory builds the history of u as seen at now.
//
// Only the head most recent transactions are kept, head <= 0 keeps them all.
func NewHistory(u moneymanager.User, currency string, now time.Time, head int) *History {
	txs := u.Transactions
	h := &History{
		Name:    cell(u.Name),
		Balance: moneymanager.M(u.Balance, currency),
	}
	if head > 0 && len(txs) > head {
		h.Omitted = len(txs) - head
		txs = txs[:head]
	}
	h.Lines = make([]HistoryLine, 0, len(txs))
	for _, tx := range txs {
		h.Lines = append(h.Lines, HistoryLine{
			When:      date.Ago(tx.Timestamp, now),
			Timestamp: tx.Timestamp,
			Kind:      tx.Kind.String(),
			Amount:    moneymanager.M(tx.Signed(), currency),
			Reason:    cell(tx.Reason),
		})
	}
	return h
}
