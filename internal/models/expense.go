package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// SplitType selects how an expense amount is divided among its sharers.
type SplitType string

const (
	// SplitEqual divides the amount evenly; the last sharer absorbs the rounding remainder.
	SplitEqual SplitType = "equal"
	// SplitManual takes each sharer's exact amount from the input.
	SplitManual SplitType = "manual"
	// SplitPercentage treats each input value as a percentage of the amount.
	SplitPercentage SplitType = "percentage"
)

// ParseSplitType converts user input to a SplitType.
func ParseSplitType(s string) (SplitType, error) {
	switch SplitType(strings.ToLower(strings.TrimSpace(s))) {
	case SplitEqual:
		return SplitEqual, nil
	case SplitManual:
		return SplitManual, nil
	case SplitPercentage:
		return SplitPercentage, nil
	}
	return "", fmt.Errorf("unknown split type %q: %w", s, ErrInvalidSplit)
}

// SplitTag records how an individual split amount was derived.
type SplitTag string

const (
	TagEqualShare      SplitTag = "equal_share_calculated"
	TagManualShare     SplitTag = "manual_share_input"
	TagPercentageShare SplitTag = "percentage_share_calculated"
)

// Tag returns the tag stored on splits produced by this split type.
func (t SplitType) Tag() SplitTag {
	switch t {
	case SplitManual:
		return TagManualShare
	case SplitPercentage:
		return TagPercentageShare
	default:
		return TagEqualShare
	}
}

// Expense is an immutable shared cost recorded against a group.
// It is persisted atomically together with its payments and splits.
type Expense struct {
	// ID is the store-assigned identifier.
	ID int64

	// Description is free text (e.g., "Groceries").
	Description string

	// Amount is the total cost. Always positive, two fractional digits.
	Amount decimal.Decimal

	// GroupID is the group the expense belongs to.
	GroupID int64

	// CreatedByID is the user who recorded the expense.
	CreatedByID int64

	// SplitType is the policy used to derive Splits.
	SplitType SplitType

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64

	// Payments record who paid how much. They sum to Amount.
	Payments []ExpensePayment

	// Splits record who owes how much. They sum to Amount.
	Splits []ExpenseSplit
}

// ExpensePayment records that a user paid part of an expense.
type ExpensePayment struct {
	ID        int64
	ExpenseID int64
	UserID    int64
	Amount    decimal.Decimal
}

// ExpenseSplit records a user's owed share of an expense.
type ExpenseSplit struct {
	ID        int64
	ExpenseID int64
	UserID    int64
	Amount    decimal.Decimal
	Tag       SplitTag
}

// PaidBy returns the total amount userID paid toward the expense.
func (e *Expense) PaidBy(userID int64) decimal.Decimal {
	total := decimal.Zero
	for _, p := range e.Payments {
		if p.UserID == userID {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// ShareOf returns userID's split amount on the expense, or zero.
func (e *Expense) ShareOf(userID int64) decimal.Decimal {
	for _, s := range e.Splits {
		if s.UserID == userID {
			return s.Amount
		}
	}
	return decimal.Zero
}

// Involves reports whether userID paid toward or shares the expense.
func (e *Expense) Involves(userID int64) bool {
	for _, p := range e.Payments {
		if p.UserID == userID {
			return true
		}
	}
	for _, s := range e.Splits {
		if s.UserID == userID {
			return true
		}
	}
	return false
}

// ParticipantIDs returns the distinct payers and sharers of the expense in first-seen order.
func (e *Expense) ParticipantIDs() []int64 {
	seen := make(map[int64]bool, len(e.Payments)+len(e.Splits))
	var ids []int64
	for _, p := range e.Payments {
		if !seen[p.UserID] {
			seen[p.UserID] = true
			ids = append(ids, p.UserID)
		}
	}
	for _, s := range e.Splits {
		if !seen[s.UserID] {
			seen[s.UserID] = true
			ids = append(ids, s.UserID)
		}
	}
	return ids
}
