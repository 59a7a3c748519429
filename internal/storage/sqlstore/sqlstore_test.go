package sqlstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewSQLite(filepath.Join(t.TempDir(), "nested", "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustUser(t *testing.T, store *Store, name string) *models.User {
	t.Helper()
	user := models.NewUser(name, name+"@Example.com", "hash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser(%s) failed: %v", name, err)
	}
	return user
}

func mustGroup(t *testing.T, store *Store, name string, creator *models.User) *models.Group {
	t.Helper()
	group := &models.Group{Name: name, CreatedByID: creator.ID}
	if err := store.CreateGroup(context.Background(), group); err != nil {
		t.Fatalf("CreateGroup(%s) failed: %v", name, err)
	}
	return group
}

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func countRows(t *testing.T, store *Store, table string) int {
	t.Helper()
	var n int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func TestRebind(t *testing.T) {
	sqlite := &Store{}
	pg := &Store{postgres: true}
	query := "SELECT * FROM t WHERE a = ? AND b IN (?, ?)"

	if got := sqlite.rebind(query); got != query {
		t.Errorf("sqlite rebind = %q", got)
	}
	if got, want := pg.rebind(query), "SELECT * FROM t WHERE a = $1 AND b IN ($2, $3)"; got != want {
		t.Errorf("postgres rebind = %q, want %q", got, want)
	}
}

func TestUsers(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	alice := mustUser(t, store, "alice")

	t.Run("CreateUser assigns ID and normalizes email", func(t *testing.T) {
		if alice.ID == 0 {
			t.Error("Expected user ID to be assigned")
		}
		if alice.Email != "alice@example.com" {
			t.Errorf("Email = %q, want lower-cased", alice.Email)
		}
	})

	t.Run("lookups by id, name and email", func(t *testing.T) {
		byID, err := store.GetUserByID(ctx, alice.ID)
		if err != nil || byID.Name != "alice" {
			t.Fatalf("GetUserByID = %+v, %v", byID, err)
		}
		byName, err := store.GetUserByName(ctx, "alice")
		if err != nil || byName.ID != alice.ID {
			t.Fatalf("GetUserByName = %+v, %v", byName, err)
		}
		byEmail, err := store.GetUserByEmail(ctx, "ALICE@example.com ")
		if err != nil || byEmail.ID != alice.ID {
			t.Fatalf("GetUserByEmail = %+v, %v", byEmail, err)
		}
	})

	t.Run("missing user is ErrNotFound", func(t *testing.T) {
		if _, err := store.GetUserByName(ctx, "nobody"); !errors.Is(err, models.ErrNotFound) {
			t.Errorf("GetUserByName error = %v, want ErrNotFound", err)
		}
		if _, err := store.GetUserByID(ctx, 9999); !errors.Is(err, models.ErrNotFound) {
			t.Errorf("GetUserByID error = %v, want ErrNotFound", err)
		}
	})

	t.Run("duplicate name or email is ErrDuplicateIdentity", func(t *testing.T) {
		dupName := models.NewUser("alice", "other@example.com", "hash")
		if err := store.CreateUser(ctx, dupName); !errors.Is(err, models.ErrDuplicateIdentity) {
			t.Errorf("duplicate name error = %v", err)
		}
		dupEmail := models.NewUser("alice2", "Alice@Example.com", "hash")
		if err := store.CreateUser(ctx, dupEmail); !errors.Is(err, models.ErrDuplicateIdentity) {
			t.Errorf("duplicate email error = %v", err)
		}
	})

	t.Run("GetUsersByIDs omits unknown IDs", func(t *testing.T) {
		bob := mustUser(t, store, "bob")
		users, err := store.GetUsersByIDs(ctx, []int64{alice.ID, bob.ID, 4242})
		if err != nil {
			t.Fatalf("GetUsersByIDs failed: %v", err)
		}
		if len(users) != 2 || users[bob.ID].Name != "bob" {
			t.Errorf("GetUsersByIDs = %v", users)
		}

		empty, err := store.GetUsersByIDs(ctx, nil)
		if err != nil || len(empty) != 0 {
			t.Errorf("GetUsersByIDs(nil) = %v, %v", empty, err)
		}
	})
}

func TestGroups(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	alice := mustUser(t, store, "alice")
	bob := mustUser(t, store, "bob")
	group := mustGroup(t, store, "Roommates", alice)

	t.Run("creator is the first member", func(t *testing.T) {
		got, err := store.GetGroupByName(ctx, "Roommates")
		if err != nil {
			t.Fatalf("GetGroupByName failed: %v", err)
		}
		if got.ID != group.ID || got.CreatedByID != alice.ID {
			t.Errorf("group = %+v", got)
		}
		if len(got.Members) != 1 || !got.HasMember(alice.ID) {
			t.Errorf("Members = %+v, want only alice", got.Members)
		}
	})

	t.Run("AddGroupMember is idempotent", func(t *testing.T) {
		first, created, err := store.AddGroupMember(ctx, group.ID, bob.ID)
		if err != nil || !created {
			t.Fatalf("first AddGroupMember = %v, %v", created, err)
		}
		again, created, err := store.AddGroupMember(ctx, group.ID, bob.ID)
		if err != nil {
			t.Fatalf("second AddGroupMember failed: %v", err)
		}
		if created {
			t.Error("second AddGroupMember reported a new membership")
		}
		if again.JoinedAt != first.JoinedAt {
			t.Errorf("JoinedAt changed from %d to %d", first.JoinedAt, again.JoinedAt)
		}

		got, err := store.GetGroupByID(ctx, group.ID)
		if err != nil {
			t.Fatalf("GetGroupByID failed: %v", err)
		}
		if len(got.Members) != 2 {
			t.Errorf("Members = %+v, want 2", got.Members)
		}
	})

	t.Run("AddGroupMember for unknown user is ErrNotFound", func(t *testing.T) {
		if _, _, err := store.AddGroupMember(ctx, group.ID, 9999); !errors.Is(err, models.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("duplicate group name", func(t *testing.T) {
		dup := &models.Group{Name: "Roommates", CreatedByID: bob.ID}
		if err := store.CreateGroup(ctx, dup); !errors.Is(err, models.ErrDuplicateIdentity) {
			t.Errorf("error = %v, want ErrDuplicateIdentity", err)
		}
	})

	t.Run("missing group", func(t *testing.T) {
		if _, err := store.GetGroupByName(ctx, "nope"); !errors.Is(err, models.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}

func TestExpenses(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	alice := mustUser(t, store, "alice")
	bob := mustUser(t, store, "bob")
	charlie := mustUser(t, store, "charlie")
	diana := mustUser(t, store, "diana")
	group := mustGroup(t, store, "Trip", alice)

	dinner := &models.Expense{
		Description: "Dinner",
		Amount:      amt("10.00"),
		GroupID:     group.ID,
		CreatedByID: alice.ID,
		SplitType:   models.SplitEqual,
		CreatedAt:   100,
		Payments:    []models.ExpensePayment{{UserID: alice.ID, Amount: amt("10.00")}},
		Splits: []models.ExpenseSplit{
			{UserID: alice.ID, Amount: amt("3.33"), Tag: models.TagEqualShare},
			{UserID: bob.ID, Amount: amt("3.33"), Tag: models.TagEqualShare},
			{UserID: charlie.ID, Amount: amt("3.34"), Tag: models.TagEqualShare},
		},
	}
	if err := store.CreateExpense(ctx, dinner); err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}

	taxi := &models.Expense{
		Description: "Taxi",
		Amount:      amt("12.50"),
		GroupID:     group.ID,
		CreatedByID: diana.ID,
		SplitType:   models.SplitManual,
		CreatedAt:   200,
		Payments:    []models.ExpensePayment{{UserID: diana.ID, Amount: amt("12.50")}},
		Splits: []models.ExpenseSplit{
			{UserID: diana.ID, Amount: amt("6.25"), Tag: models.TagManualShare},
			{UserID: charlie.ID, Amount: amt("6.25"), Tag: models.TagManualShare},
		},
	}
	if err := store.CreateExpense(ctx, taxi); err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}

	t.Run("CreateExpense assigns IDs", func(t *testing.T) {
		if dinner.ID == 0 {
			t.Fatal("Expected expense ID to be assigned")
		}
		for _, p := range dinner.Payments {
			if p.ID == 0 || p.ExpenseID != dinner.ID {
				t.Errorf("payment = %+v", p)
			}
		}
		for _, s := range dinner.Splits {
			if s.ID == 0 || s.ExpenseID != dinner.ID {
				t.Errorf("split = %+v", s)
			}
		}
	})

	t.Run("GetExpense round-trips amounts exactly", func(t *testing.T) {
		got, err := store.GetExpense(ctx, dinner.ID)
		if err != nil {
			t.Fatalf("GetExpense failed: %v", err)
		}
		if got.Description != "Dinner" || !got.Amount.Equal(amt("10.00")) || got.SplitType != models.SplitEqual {
			t.Errorf("expense = %+v", got)
		}
		if len(got.Splits) != 3 {
			t.Fatalf("got %d splits, want 3", len(got.Splits))
		}
		wantShares := []string{"3.33", "3.33", "3.34"}
		for i, s := range got.Splits {
			if !s.Amount.Equal(amt(wantShares[i])) || s.Tag != models.TagEqualShare {
				t.Errorf("split %d = %+v, want %s", i, s, wantShares[i])
			}
		}
		if len(got.Payments) != 1 || got.Payments[0].UserID != alice.ID {
			t.Errorf("payments = %+v", got.Payments)
		}
	})

	t.Run("participants join the expense group", func(t *testing.T) {
		got, err := store.GetGroupByID(ctx, group.ID)
		if err != nil {
			t.Fatalf("GetGroupByID failed: %v", err)
		}
		for _, u := range []*models.User{alice, bob, charlie, diana} {
			if !got.HasMember(u.ID) {
				t.Errorf("%s is not a member", u.Name)
			}
		}
	})

	t.Run("ListExpenses is newest first", func(t *testing.T) {
		all, err := store.ListExpenses(ctx)
		if err != nil {
			t.Fatalf("ListExpenses failed: %v", err)
		}
		if len(all) != 2 || all[0].ID != taxi.ID || all[1].ID != dinner.ID {
			t.Errorf("ListExpenses order = %v", expenseIDs(all))
		}
		if len(all[0].Splits) != 2 || len(all[1].Splits) != 3 {
			t.Error("children attached to the wrong expense")
		}
	})

	t.Run("ListExpensesByUser filters on payers and sharers", func(t *testing.T) {
		tests := []struct {
			user *models.User
			want []int64
		}{
			{alice, []int64{dinner.ID}},
			{bob, []int64{dinner.ID}},
			{charlie, []int64{taxi.ID, dinner.ID}},
			{diana, []int64{taxi.ID}},
		}
		for _, tt := range tests {
			got, err := store.ListExpensesByUser(ctx, tt.user.ID)
			if err != nil {
				t.Fatalf("ListExpensesByUser(%s) failed: %v", tt.user.Name, err)
			}
			ids := expenseIDs(got)
			if len(ids) != len(tt.want) {
				t.Errorf("%s: got %v, want %v", tt.user.Name, ids, tt.want)
				continue
			}
			for i := range ids {
				if ids[i] != tt.want[i] {
					t.Errorf("%s: got %v, want %v", tt.user.Name, ids, tt.want)
					break
				}
			}
		}
	})

	t.Run("GetExpense for unknown id", func(t *testing.T) {
		if _, err := store.GetExpense(ctx, 9999); !errors.Is(err, models.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("failed insert rolls back every row", func(t *testing.T) {
		expensesBefore := countRows(t, store, "expenses")
		paymentsBefore := countRows(t, store, "expense_payments")
		splitsBefore := countRows(t, store, "expense_splits")

		bad := &models.Expense{
			Description: "Broken",
			Amount:      amt("5.00"),
			GroupID:     group.ID,
			CreatedByID: alice.ID,
			SplitType:   models.SplitManual,
			Payments:    []models.ExpensePayment{{UserID: alice.ID, Amount: amt("5.00")}},
			Splits: []models.ExpenseSplit{
				{UserID: alice.ID, Amount: amt("2.50"), Tag: models.TagManualShare},
				{UserID: 9999, Amount: amt("2.50"), Tag: models.TagManualShare},
			},
		}
		err := store.CreateExpense(ctx, bad)
		if !errors.Is(err, models.ErrNotFound) {
			t.Fatalf("CreateExpense error = %v, want ErrNotFound", err)
		}

		if n := countRows(t, store, "expenses"); n != expensesBefore {
			t.Errorf("expenses = %d, want %d", n, expensesBefore)
		}
		if n := countRows(t, store, "expense_payments"); n != paymentsBefore {
			t.Errorf("expense_payments = %d, want %d", n, paymentsBefore)
		}
		if n := countRows(t, store, "expense_splits"); n != splitsBefore {
			t.Errorf("expense_splits = %d, want %d", n, splitsBefore)
		}
	})
}

func TestSettlements(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	alice := mustUser(t, store, "alice")
	bob := mustUser(t, store, "bob")
	charlie := mustUser(t, store, "charlie")

	first := &models.Settlement{FromUserID: bob.ID, ToUserID: alice.ID, Amount: amt("10.00"), Note: "dinner", CreatedAt: 10}
	second := &models.Settlement{FromUserID: charlie.ID, ToUserID: bob.ID, Amount: amt("0.01"), CreatedAt: 20}
	for _, s := range []*models.Settlement{first, second} {
		if err := store.CreateSettlement(ctx, s); err != nil {
			t.Fatalf("CreateSettlement failed: %v", err)
		}
	}

	t.Run("ListSettlements is newest first", func(t *testing.T) {
		all, err := store.ListSettlements(ctx)
		if err != nil {
			t.Fatalf("ListSettlements failed: %v", err)
		}
		if len(all) != 2 || all[0].ID != second.ID {
			t.Fatalf("ListSettlements = %+v", all)
		}
		if all[1].Note != "dinner" || all[0].Note != "" {
			t.Errorf("notes = %q, %q", all[1].Note, all[0].Note)
		}
		if !all[0].Amount.Equal(amt("0.01")) {
			t.Errorf("amount = %s, want 0.01", all[0].Amount)
		}
	})

	t.Run("ListSettlementsByUser covers both directions", func(t *testing.T) {
		got, err := store.ListSettlementsByUser(ctx, bob.ID)
		if err != nil {
			t.Fatalf("ListSettlementsByUser failed: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("bob has %d settlements, want 2", len(got))
		}
		got, err = store.ListSettlementsByUser(ctx, alice.ID)
		if err != nil {
			t.Fatalf("ListSettlementsByUser failed: %v", err)
		}
		if len(got) != 1 || got[0].ID != first.ID {
			t.Errorf("alice settlements = %+v", got)
		}
	})

	t.Run("unknown user is ErrNotFound", func(t *testing.T) {
		bad := &models.Settlement{FromUserID: alice.ID, ToUserID: 9999, Amount: amt("1.00")}
		if err := store.CreateSettlement(ctx, bad); !errors.Is(err, models.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}

func expenseIDs(expenses []*models.Expense) []int64 {
	ids := make([]int64, len(expenses))
	for i, e := range expenses {
		ids[i] = e.ID
	}
	return ids
}
