package models

import "github.com/shopspring/decimal"

// Settlement represents a direct payment from one user to another to clear debt.
// It reduces FromUserID's debt to ToUserID by Amount.
type Settlement struct {
	// ID is the store-assigned identifier.
	ID int64

	// FromUserID is the user who paid (debtor settling up).
	FromUserID int64

	// ToUserID is the user who received payment (creditor being paid).
	ToUserID int64

	// Amount is the payment amount. Always positive.
	Amount decimal.Decimal

	// Note is an optional description for the settlement.
	Note string

	// CreatedAt is the Unix timestamp when the settlement was recorded.
	CreatedAt int64
}

// Involves reports whether userID is either side of the settlement.
func (s *Settlement) Involves(userID int64) bool {
	return s.FromUserID == userID || s.ToUserID == userID
}
