package calculator

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

// ratioPlaces is the precision of proportional weights. Multiplying first would round
// away the residue of small splits.
const ratioPlaces = 28

// ComputeBalance derives userID's net position toward every counterparty.
//
// Algorithm, per expense:
//   - net = amount userID paid - userID's split
//   - net > 0: every other sharer owes userID net × (their split / other splits total)
//   - net < 0: userID owes every other payer |net| × (their payment / other payments total)
//
// A settlement moves the balance between its two users toward the payer: sending money
// reduces what userID owes the receiver, receiving money reduces what the sender owes
// userID.
//
// Weights are divided out before multiplying (weight / total at ratioPlaces) and each
// distributed amount is rounded to cents before it is accumulated. Expenses and settlements
// that do not involve userID contribute nothing, so callers may pass either the full ledger
// or a pre-filtered slice.
func ComputeBalance(userID int64, expenses []*models.Expense, settlements []*models.Settlement) *models.BalanceSummary {
	net := make(map[int64]decimal.Decimal)

	for _, expense := range expenses {
		accumulateExpense(net, userID, expense)
	}

	for _, s := range settlements {
		amount := Quantize(s.Amount)
		switch userID {
		case s.FromUserID:
			net[s.ToUserID] = net[s.ToUserID].Add(amount)
		case s.ToUserID:
			net[s.FromUserID] = net[s.FromUserID].Sub(amount)
		}
	}

	return summarize(userID, net)
}

func accumulateExpense(net map[int64]decimal.Decimal, userID int64, expense *models.Expense) {
	contribution := expense.PaidBy(userID).Sub(expense.ShareOf(userID))

	switch contribution.Sign() {
	case 1:
		// Overpaid: the other sharers owe userID in proportion to their own shares.
		otherTotal := decimal.Zero
		for _, s := range expense.Splits {
			if s.UserID != userID {
				otherTotal = otherTotal.Add(s.Amount)
			}
		}
		if !otherTotal.IsPositive() {
			return
		}
		for _, s := range expense.Splits {
			if s.UserID == userID {
				continue
			}
			ratio := s.Amount.DivRound(otherTotal, ratioPlaces)
			owed := Quantize(ratio.Mul(contribution))
			net[s.UserID] = net[s.UserID].Add(owed)
		}

	case -1:
		// Underpaid: userID owes the other payers in proportion to what they paid.
		borrowed := contribution.Neg()
		otherTotal := decimal.Zero
		for _, p := range expense.Payments {
			if p.UserID != userID {
				otherTotal = otherTotal.Add(p.Amount)
			}
		}
		if !otherTotal.IsPositive() {
			return
		}
		for _, p := range expense.Payments {
			if p.UserID == userID {
				continue
			}
			ratio := p.Amount.DivRound(otherTotal, ratioPlaces)
			owes := Quantize(ratio.Mul(borrowed))
			net[p.UserID] = net[p.UserID].Sub(owes)
		}
	}
}

func summarize(userID int64, net map[int64]decimal.Decimal) *models.BalanceSummary {
	ids := make([]int64, 0, len(net))
	for id := range net {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	summary := &models.BalanceSummary{
		UserID:   userID,
		Balances: make([]models.CounterpartyBalance, 0, len(ids)),
	}
	owedToUser := decimal.Zero
	userOwes := decimal.Zero
	for _, id := range ids {
		amount := Quantize(net[id])
		if id == userID || amount.IsZero() {
			continue
		}
		summary.Balances = append(summary.Balances, models.CounterpartyBalance{UserID: id, Amount: amount})
		if amount.IsPositive() {
			owedToUser = owedToUser.Add(amount)
		} else {
			userOwes = userOwes.Add(amount.Abs())
		}
	}
	summary.NetTotal = Quantize(owedToUser.Sub(userOwes))
	return summary
}
