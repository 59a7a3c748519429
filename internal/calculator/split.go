package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

// Participant is one input row for an allocation or payment check.
// Value is ignored for equal splits, the exact share for manual splits,
// the percentage (0-100) for percentage splits, and the paid amount for payments.
type Participant struct {
	UserID int64
	Value  decimal.Decimal
}

// Share is one allocated split amount.
type Share struct {
	UserID int64
	Amount decimal.Decimal
	Tag    models.SplitTag
}

// Allocate divides total among participants according to splitType.
//
// For equal and percentage splits every participant except the last (in input order)
// gets a rounded share and the last gets the remainder, so the shares always sum to
// total exactly. Manual shares are taken from the input after checking they sum to
// total within 0.01.
func Allocate(total decimal.Decimal, splitType models.SplitType, participants []Participant) ([]Share, error) {
	if !total.IsPositive() {
		return nil, fmt.Errorf("expense amount must be greater than zero: %w", models.ErrInvalidSplit)
	}
	if len(participants) == 0 {
		return nil, fmt.Errorf("expense must be split among at least one user: %w", models.ErrInvalidSplit)
	}
	if err := checkDistinct(participants, "split"); err != nil {
		return nil, err
	}
	total = Quantize(total)

	switch splitType {
	case models.SplitEqual:
		return allocateEqual(total, participants), nil
	case models.SplitManual:
		return allocateManual(total, participants)
	case models.SplitPercentage:
		return allocatePercentage(total, participants)
	}
	return nil, fmt.Errorf("unknown split type %q: %w", splitType, models.ErrInvalidSplit)
}

// ValidatePayments checks payer amounts against the expense total using the same
// tolerance as manual splits.
func ValidatePayments(total decimal.Decimal, payments []Participant) error {
	if len(payments) == 0 {
		return fmt.Errorf("expense must have at least one payer: %w", models.ErrInvalidSplit)
	}
	if err := checkDistinct(payments, "payment"); err != nil {
		return err
	}
	paid := decimal.Zero
	for _, p := range payments {
		if !p.Value.IsPositive() {
			return fmt.Errorf("payment for user %d must be greater than zero: %w", p.UserID, models.ErrInvalidSplit)
		}
		paid = paid.Add(p.Value)
	}
	if !WithinTolerance(paid, total) {
		return fmt.Errorf("payments sum to %s but expense amount is %s: %w",
			FormatAmount(paid), FormatAmount(total), models.ErrInvalidSplit)
	}
	return nil
}

func allocateEqual(total decimal.Decimal, participants []Participant) []Share {
	n := len(participants)
	base := Quantize(total.Div(decimal.NewFromInt(int64(n))))

	shares := make([]Share, n)
	allocated := decimal.Zero
	for i, p := range participants {
		amount := base
		if i == n-1 {
			amount = total.Sub(allocated)
		}
		amount = Quantize(amount)
		shares[i] = Share{UserID: p.UserID, Amount: amount, Tag: models.TagEqualShare}
		allocated = allocated.Add(amount)
	}
	return shares
}

func allocateManual(total decimal.Decimal, participants []Participant) ([]Share, error) {
	sum := decimal.Zero
	for _, p := range participants {
		if !p.Value.IsPositive() {
			return nil, fmt.Errorf("manual share for user %d must be greater than zero: %w", p.UserID, models.ErrInvalidSplit)
		}
		sum = sum.Add(p.Value)
	}
	if !WithinTolerance(sum, total) {
		return nil, fmt.Errorf("manual shares sum to %s but expense amount is %s: %w",
			FormatAmount(sum), FormatAmount(total), models.ErrInvalidSplit)
	}

	shares := make([]Share, len(participants))
	for i, p := range participants {
		shares[i] = Share{UserID: p.UserID, Amount: Quantize(p.Value), Tag: models.TagManualShare}
	}
	return shares, nil
}

func allocatePercentage(total decimal.Decimal, participants []Participant) ([]Share, error) {
	sum := decimal.Zero
	for _, p := range participants {
		if !p.Value.IsPositive() {
			return nil, fmt.Errorf("percentage for user %d must be greater than zero: %w", p.UserID, models.ErrInvalidSplit)
		}
		sum = sum.Add(p.Value)
	}
	if !WithinTolerance(sum, hundred) {
		return nil, fmt.Errorf("percentages sum to %s, want 100: %w", sum.String(), models.ErrInvalidSplit)
	}

	n := len(participants)
	shares := make([]Share, n)
	allocated := decimal.Zero
	for i, p := range participants {
		var amount decimal.Decimal
		if i == n-1 {
			amount = total.Sub(allocated)
		} else {
			amount = Quantize(total.Mul(p.Value).Div(hundred))
		}
		shares[i] = Share{UserID: p.UserID, Amount: amount, Tag: models.TagPercentageShare}
		allocated = allocated.Add(amount)
	}
	return shares, nil
}

func checkDistinct(participants []Participant, kind string) error {
	seen := make(map[int64]bool, len(participants))
	for _, p := range participants {
		if seen[p.UserID] {
			return fmt.Errorf("user %d listed more than once in %s: %w", p.UserID, kind, models.ErrInvalidSplit)
		}
		seen[p.UserID] = true
	}
	return nil
}
