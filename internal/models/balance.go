package models

import "github.com/shopspring/decimal"

// BalanceSummary is a user's derived position in the ledger.
// It is the value held by the balance cache, so it must stay JSON-serializable.
type BalanceSummary struct {
	// UserID is the user the summary was computed for.
	UserID int64 `json:"user_id"`

	// NetTotal is what others owe the user minus what the user owes others.
	NetTotal decimal.Decimal `json:"net_total"`

	// Balances holds one entry per counterparty with a nonzero balance, ordered by user ID.
	Balances []CounterpartyBalance `json:"balances"`
}

// CounterpartyBalance is the signed balance between the summary's user and one other user.
// Positive: the counterparty owes the user. Negative: the user owes the counterparty.
type CounterpartyBalance struct {
	UserID   int64           `json:"user_id"`
	UserName string          `json:"user_name,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
}

// With returns the signed balance held toward userID, or zero when there is none.
func (b *BalanceSummary) With(userID int64) decimal.Decimal {
	for _, cb := range b.Balances {
		if cb.UserID == userID {
			return cb.Amount
		}
	}
	return decimal.Zero
}
