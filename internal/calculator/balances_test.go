package calculator

import (
	"testing"

	"github.com/mmynk/splitledger/internal/models"
)

const (
	alice int64 = iota + 1
	bob
	charlie
	diana
)

// expense builds an expense paid by payers and split with Allocate.
func expense(t *testing.T, amount string, splitType models.SplitType, payers []Participant, sharers []Participant) *models.Expense {
	t.Helper()
	shares, err := Allocate(d(amount), splitType, sharers)
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	if err := ValidatePayments(d(amount), payers); err != nil {
		t.Fatalf("ValidatePayments() error = %v", err)
	}
	e := &models.Expense{Amount: d(amount), SplitType: splitType}
	for _, p := range payers {
		e.Payments = append(e.Payments, models.ExpensePayment{UserID: p.UserID, Amount: p.Value})
	}
	for _, s := range shares {
		e.Splits = append(e.Splits, models.ExpenseSplit{UserID: s.UserID, Amount: s.Amount, Tag: s.Tag})
	}
	return e
}

func paid(userID int64, amount string) Participant {
	return Participant{UserID: userID, Value: d(amount)}
}

func equally(ids ...int64) []Participant {
	ps := make([]Participant, len(ids))
	for i, id := range ids {
		ps[i] = Participant{UserID: id}
	}
	return ps
}

func settle(from, to int64, amount string) *models.Settlement {
	return &models.Settlement{FromUserID: from, ToUserID: to, Amount: d(amount)}
}

func TestComputeBalance(t *testing.T) {
	tests := []struct {
		name         string
		user         int64
		expenses     func(t *testing.T) []*models.Expense
		settlements  []*models.Settlement
		wantNet      string
		wantBalances map[int64]string
	}{
		{
			name: "payer is owed the other share",
			user: alice,
			expenses: func(t *testing.T) []*models.Expense {
				return []*models.Expense{
					expense(t, "20.00", models.SplitEqual, []Participant{paid(alice, "20.00")}, equally(alice, bob)),
				}
			},
			wantNet:      "10.00",
			wantBalances: map[int64]string{bob: "10.00"},
		},
		{
			name: "sharer owes the payer",
			user: bob,
			expenses: func(t *testing.T) []*models.Expense {
				return []*models.Expense{
					expense(t, "20.00", models.SplitEqual, []Participant{paid(alice, "20.00")}, equally(alice, bob)),
				}
			},
			wantNet:      "-10.00",
			wantBalances: map[int64]string{alice: "-10.00"},
		},
		{
			name: "settlement zeroes the balance and drops the entry",
			user: alice,
			expenses: func(t *testing.T) []*models.Expense {
				return []*models.Expense{
					expense(t, "20.00", models.SplitEqual, []Participant{paid(alice, "20.00")}, equally(alice, bob)),
				}
			},
			settlements:  []*models.Settlement{settle(bob, alice, "10.00")},
			wantNet:      "0.00",
			wantBalances: map[int64]string{},
		},
		{
			name: "partial settlement from the debtor side",
			user: bob,
			expenses: func(t *testing.T) []*models.Expense {
				return []*models.Expense{
					expense(t, "20.00", models.SplitEqual, []Participant{paid(alice, "20.00")}, equally(alice, bob)),
				}
			},
			settlements:  []*models.Settlement{settle(bob, alice, "4.00")},
			wantNet:      "-6.00",
			wantBalances: map[int64]string{alice: "-6.00"},
		},
		{
			name: "overpayment distributed proportionally to other shares",
			user: alice,
			expenses: func(t *testing.T) []*models.Expense {
				return []*models.Expense{
					expense(t, "30.00", models.SplitManual, []Participant{paid(alice, "30.00")},
						[]Participant{paid(alice, "10.00"), paid(bob, "5.00"), paid(charlie, "15.00")}),
				}
			},
			wantNet:      "20.00",
			wantBalances: map[int64]string{bob: "5.00", charlie: "15.00"},
		},
		{
			name: "remainder share is carried to the counterparty",
			user: alice,
			expenses: func(t *testing.T) []*models.Expense {
				return []*models.Expense{
					expense(t, "10.00", models.SplitEqual, []Participant{paid(alice, "10.00")}, equally(alice, bob, charlie)),
				}
			},
			wantNet:      "6.67",
			wantBalances: map[int64]string{bob: "3.33", charlie: "3.34"},
		},
		{
			name: "underpayment distributed proportionally to other payers",
			user: charlie,
			expenses: func(t *testing.T) []*models.Expense {
				return []*models.Expense{
					expense(t, "30.00", models.SplitEqual,
						[]Participant{paid(alice, "20.00"), paid(bob, "10.00")}, equally(alice, bob, charlie)),
				}
			},
			wantNet:      "-10.00",
			wantBalances: map[int64]string{alice: "-6.67", bob: "-3.33"},
		},
		{
			name: "user not on the expense gets nothing",
			user: diana,
			expenses: func(t *testing.T) []*models.Expense {
				return []*models.Expense{
					expense(t, "30.00", models.SplitEqual, []Participant{paid(alice, "30.00")}, equally(alice, bob, charlie)),
				}
			},
			wantNet:      "0.00",
			wantBalances: map[int64]string{},
		},
		{
			name: "payer outside the split is owed everything",
			user: alice,
			expenses: func(t *testing.T) []*models.Expense {
				return []*models.Expense{
					expense(t, "12.00", models.SplitEqual, []Participant{paid(alice, "12.00")}, equally(bob, charlie)),
				}
			},
			wantNet:      "12.00",
			wantBalances: map[int64]string{bob: "6.00", charlie: "6.00"},
		},
		{
			name: "opposing expenses net out",
			user: alice,
			expenses: func(t *testing.T) []*models.Expense {
				return []*models.Expense{
					expense(t, "20.00", models.SplitEqual, []Participant{paid(alice, "20.00")}, equally(alice, bob)),
					expense(t, "30.00", models.SplitEqual, []Participant{paid(bob, "30.00")}, equally(alice, bob)),
				}
			},
			wantNet:      "-5.00",
			wantBalances: map[int64]string{bob: "-5.00"},
		},
		{
			name: "mixed positive and negative counterparties",
			user: alice,
			expenses: func(t *testing.T) []*models.Expense {
				return []*models.Expense{
					expense(t, "40.00", models.SplitEqual, []Participant{paid(alice, "40.00")}, equally(alice, bob)),
					expense(t, "9.00", models.SplitEqual, []Participant{paid(charlie, "9.00")}, equally(alice, charlie, diana)),
				}
			},
			wantNet:      "17.00",
			wantBalances: map[int64]string{bob: "20.00", charlie: "-3.00"},
		},
		{
			name: "small splits keep their proportional cent",
			user: alice,
			expenses: func(t *testing.T) []*models.Expense {
				return []*models.Expense{
					expense(t, "0.09", models.SplitManual,
						[]Participant{paid(alice, "0.06"), paid(diana, "0.03")},
						[]Participant{paid(alice, "0.03"), paid(bob, "0.01"), paid(charlie, "0.05")}),
				}
			},
			wantNet:      "0.03",
			wantBalances: map[int64]string{bob: "0.01", charlie: "0.02"},
		},
		{
			name: "settlement without any expense",
			user: alice,
			expenses: func(t *testing.T) []*models.Expense {
				return nil
			},
			settlements:  []*models.Settlement{settle(alice, diana, "7.50")},
			wantNet:      "7.50",
			wantBalances: map[int64]string{diana: "7.50"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := ComputeBalance(tt.user, tt.expenses(t), tt.settlements)

			if summary.UserID != tt.user {
				t.Errorf("UserID = %d, want %d", summary.UserID, tt.user)
			}
			if !summary.NetTotal.Equal(d(tt.wantNet)) {
				t.Errorf("NetTotal = %s, want %s", summary.NetTotal, tt.wantNet)
			}
			if len(summary.Balances) != len(tt.wantBalances) {
				t.Fatalf("got %d counterparties, want %d: %+v", len(summary.Balances), len(tt.wantBalances), summary.Balances)
			}
			for _, cb := range summary.Balances {
				want, ok := tt.wantBalances[cb.UserID]
				if !ok {
					t.Errorf("unexpected counterparty %d with %s", cb.UserID, cb.Amount)
					continue
				}
				if !cb.Amount.Equal(d(want)) {
					t.Errorf("balance with %d = %s, want %s", cb.UserID, cb.Amount, want)
				}
			}
		})
	}
}

func TestComputeBalance_Symmetry(t *testing.T) {
	users := []int64{alice, bob, charlie, diana}
	expenses := []*models.Expense{
		expense(t, "10.00", models.SplitEqual, []Participant{paid(alice, "10.00")}, equally(alice, bob, charlie)),
		expense(t, "57.31", models.SplitPercentage, []Participant{paid(bob, "57.31")},
			[]Participant{paid(alice, "20"), paid(bob, "33.33"), paid(charlie, "33.33"), paid(diana, "13.34")}),
		expense(t, "19.99", models.SplitManual, []Participant{paid(diana, "19.99")},
			[]Participant{paid(alice, "4.99"), paid(charlie, "15.00")}),
		expense(t, "0.07", models.SplitEqual, []Participant{paid(charlie, "0.07")}, equally(alice, bob, charlie, diana)),
	}

	scenarios := []struct {
		name        string
		settlements []*models.Settlement
	}{
		{name: "no settlements"},
		{name: "with settlements", settlements: []*models.Settlement{
			settle(bob, alice, "3.33"),
			settle(alice, diana, "1.00"),
			settle(charlie, bob, "12.12"),
		}},
	}

	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			summaries := make(map[int64]*models.BalanceSummary, len(users))
			for _, u := range users {
				summaries[u] = ComputeBalance(u, expenses, sc.settlements)
			}
			for _, a := range users {
				for _, b := range users {
					if a == b {
						continue
					}
					ab := summaries[a].With(b)
					ba := summaries[b].With(a)
					if !ab.Equal(ba.Neg()) {
						t.Errorf("balance %d->%d = %s but %d->%d = %s", a, b, ab, b, a, ba)
					}
				}
			}
		})
	}
}

func TestComputeBalance_FilteredMatchesFullScan(t *testing.T) {
	all := []*models.Expense{
		expense(t, "20.00", models.SplitEqual, []Participant{paid(alice, "20.00")}, equally(alice, bob)),
		expense(t, "45.00", models.SplitEqual, []Participant{paid(charlie, "45.00")}, equally(charlie, diana)),
		expense(t, "9.99", models.SplitEqual, []Participant{paid(bob, "9.99")}, equally(alice, bob, diana)),
	}
	settlements := []*models.Settlement{settle(diana, charlie, "5.00"), settle(bob, alice, "1.00")}

	var involved []*models.Expense
	for _, e := range all {
		if e.Involves(alice) {
			involved = append(involved, e)
		}
	}
	var ownSettlements []*models.Settlement
	for _, s := range settlements {
		if s.Involves(alice) {
			ownSettlements = append(ownSettlements, s)
		}
	}

	full := ComputeBalance(alice, all, settlements)
	filtered := ComputeBalance(alice, involved, ownSettlements)

	if !full.NetTotal.Equal(filtered.NetTotal) {
		t.Errorf("NetTotal full = %s, filtered = %s", full.NetTotal, filtered.NetTotal)
	}
	if len(full.Balances) != len(filtered.Balances) {
		t.Fatalf("counterparties full = %d, filtered = %d", len(full.Balances), len(filtered.Balances))
	}
	for i := range full.Balances {
		if full.Balances[i].UserID != filtered.Balances[i].UserID || !full.Balances[i].Amount.Equal(filtered.Balances[i].Amount) {
			t.Errorf("entry %d full = %+v, filtered = %+v", i, full.Balances[i], filtered.Balances[i])
		}
	}
}

func TestComputeBalance_OrderedByCounterparty(t *testing.T) {
	expenses := []*models.Expense{
		expense(t, "40.00", models.SplitEqual, []Participant{paid(alice, "40.00")}, equally(diana, charlie, bob, alice)),
	}
	summary := ComputeBalance(alice, expenses, nil)
	for i := 1; i < len(summary.Balances); i++ {
		if summary.Balances[i-1].UserID >= summary.Balances[i].UserID {
			t.Fatalf("balances not ordered by user id: %+v", summary.Balances)
		}
	}
}
