package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/cache"
	pb "github.com/mmynk/splitledger/pkg/proto"
)

func equalExpense(desc, amount, group, payer string, sharers ...string) *pb.CreateExpenseRequest {
	req := &pb.CreateExpenseRequest{
		Description: desc,
		Amount:      amount,
		GroupName:   group,
		SplitType:   "equal",
		PaidBy:      []*pb.PayerInput{{UserName: payer, Amount: amount}},
	}
	for _, name := range sharers {
		req.SplitBetween = append(req.SplitBetween, &pb.ShareInput{UserName: name})
	}
	return req
}

func (ts *testServer) createExpense(t *testing.T, s session, req *pb.CreateExpenseRequest) *pb.Expense {
	t.Helper()
	resp, err := ts.ledger.CreateExpense(context.Background(), authed(s, req))
	if err != nil {
		t.Fatalf("CreateExpense(%s) failed: %v", req.Description, err)
	}
	return resp.Msg.Expense
}

func (ts *testServer) balance(t *testing.T, s session, userName string) *pb.GetBalanceResponse {
	t.Helper()
	resp, err := ts.ledger.GetBalance(context.Background(), authed(s, &pb.GetBalanceRequest{UserName: userName}))
	if err != nil {
		t.Fatalf("GetBalance(%s) failed: %v", userName, err)
	}
	return resp.Msg
}

// balanceWith returns the formatted balance toward userID, or "0.00" when absent.
func balanceWith(resp *pb.GetBalanceResponse, userID int64) string {
	for _, b := range resp.Balances {
		if b.UserId == userID {
			return b.Amount
		}
	}
	return "0.00"
}

func TestLedgerService_CreateExpenseSplits(t *testing.T) {
	ts := setupTestServer(t)
	alice := ts.register(t, "Alice")
	ts.register(t, "Bob")
	ts.register(t, "Carol")
	ts.createGroup(t, alice, "Trip")

	tests := []struct {
		name string
		req  *pb.CreateExpenseRequest
		want []string
		tag  string
	}{
		{
			name: "equal split gives remainder to last sharer",
			req:  equalExpense("Dinner", "100.00", "Trip", "Alice", "Alice", "Bob", "Carol"),
			want: []string{"33.33", "33.33", "33.34"},
			tag:  "equal_share_calculated",
		},
		{
			name: "manual split keeps input amounts",
			req: &pb.CreateExpenseRequest{
				Description: "Tickets",
				Amount:      "75.50",
				GroupName:   "Trip",
				SplitType:   "manual",
				PaidBy:      []*pb.PayerInput{{UserName: "Bob", Amount: "75.50"}},
				SplitBetween: []*pb.ShareInput{
					{UserName: "Alice", Value: "25.50"},
					{UserName: "Bob", Value: "50"},
				},
			},
			want: []string{"25.50", "50.00"},
			tag:  "manual_share_input",
		},
		{
			name: "percentage split",
			req: &pb.CreateExpenseRequest{
				Description: "Hotel",
				Amount:      "200",
				GroupName:   "Trip",
				SplitType:   "PERCENTAGE",
				PaidBy: []*pb.PayerInput{
					{UserName: "Alice", Amount: "120"},
					{UserName: "Carol", Amount: "80"},
				},
				SplitBetween: []*pb.ShareInput{
					{UserName: "Alice", Value: "50"},
					{UserName: "Bob", Value: "25"},
					{UserName: "Carol", Value: "25"},
				},
			},
			want: []string{"100.00", "50.00", "50.00"},
			tag:  "percentage_share_calculated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expense := ts.createExpense(t, alice, tt.req)
			if expense.Id == 0 {
				t.Fatal("expected expense ID to be set")
			}
			if expense.CreatedById != alice.id {
				t.Errorf("expected creator %d, got %d", alice.id, expense.CreatedById)
			}
			if len(expense.Splits) != len(tt.want) {
				t.Fatalf("expected %d splits, got %d", len(tt.want), len(expense.Splits))
			}
			for i, want := range tt.want {
				if expense.Splits[i].Amount != want {
					t.Errorf("split %d: expected %s, got %s", i, want, expense.Splits[i].Amount)
				}
				if expense.Splits[i].SplitTag != tt.tag {
					t.Errorf("split %d: expected tag %s, got %s", i, tt.tag, expense.Splits[i].SplitTag)
				}
			}

			got, err := ts.ledger.GetExpense(context.Background(), authed(alice, &pb.GetExpenseRequest{Id: expense.Id}))
			if err != nil {
				t.Fatalf("GetExpense failed: %v", err)
			}
			if got.Msg.Expense.Amount != expense.Amount || len(got.Msg.Expense.Payments) != len(tt.req.PaidBy) {
				t.Errorf("stored expense differs: %+v", got.Msg.Expense)
			}
		})
	}
}

func TestLedgerService_CreateExpenseRejectsInvalidInput(t *testing.T) {
	ts := setupTestServer(t)
	alice := ts.register(t, "Alice")
	ts.register(t, "Bob")
	ts.createGroup(t, alice, "Trip")

	tests := []struct {
		name string
		req  *pb.CreateExpenseRequest
		want connect.Code
	}{
		{
			name: "manual shares do not add up",
			req: &pb.CreateExpenseRequest{
				Description:  "Taxi",
				Amount:       "100",
				GroupName:    "Trip",
				SplitType:    "manual",
				PaidBy:       []*pb.PayerInput{{UserName: "Alice", Amount: "100"}},
				SplitBetween: []*pb.ShareInput{{UserName: "Alice", Value: "50"}, {UserName: "Bob", Value: "40"}},
			},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "payments do not add up",
			req: &pb.CreateExpenseRequest{
				Description:  "Taxi",
				Amount:       "100",
				GroupName:    "Trip",
				SplitType:    "equal",
				PaidBy:       []*pb.PayerInput{{UserName: "Alice", Amount: "90"}},
				SplitBetween: []*pb.ShareInput{{UserName: "Bob"}},
			},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "percentages do not add up",
			req: &pb.CreateExpenseRequest{
				Description:  "Taxi",
				Amount:       "100",
				GroupName:    "Trip",
				SplitType:    "percentage",
				PaidBy:       []*pb.PayerInput{{UserName: "Alice", Amount: "100"}},
				SplitBetween: []*pb.ShareInput{{UserName: "Alice", Value: "60"}, {UserName: "Bob", Value: "30"}},
			},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "unknown split type",
			req: &pb.CreateExpenseRequest{
				Description:  "Taxi",
				Amount:       "100",
				GroupName:    "Trip",
				SplitType:    "weighted",
				PaidBy:       []*pb.PayerInput{{UserName: "Alice", Amount: "100"}},
				SplitBetween: []*pb.ShareInput{{UserName: "Bob"}},
			},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "zero amount",
			req:  equalExpense("Nothing", "0", "Trip", "Alice", "Bob"),
			want: connect.CodeInvalidArgument,
		},
		{
			name: "amount beyond storable range",
			req:  equalExpense("Yacht", "10000000000", "Trip", "Alice", "Bob"),
			want: connect.CodeInvalidArgument,
		},
		{
			name: "no sharers",
			req:  equalExpense("Solo", "10", "Trip", "Alice"),
			want: connect.CodeInvalidArgument,
		},
		{
			name: "unknown sharer",
			req:  equalExpense("Taxi", "10", "Trip", "Alice", "Bob", "Mallory"),
			want: connect.CodeNotFound,
		},
		{
			name: "unknown group",
			req:  equalExpense("Taxi", "10", "Elsewhere", "Alice", "Bob"),
			want: connect.CodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.ledger.CreateExpense(context.Background(), authed(alice, tt.req))
			assertCode(t, err, tt.want)
		})
	}

	// Nothing from the rejected requests reached the ledger.
	list, err := ts.ledger.ListExpenses(context.Background(), authed(alice, &pb.ListExpensesRequest{}))
	if err != nil {
		t.Fatalf("ListExpenses failed: %v", err)
	}
	if len(list.Msg.Expenses) != 0 {
		t.Errorf("expected no expenses, got %d", len(list.Msg.Expenses))
	}
	group, err := ts.groups.GetGroup(context.Background(), authed(alice, &pb.GetGroupRequest{Name: "Trip"}))
	if err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}
	if len(group.Msg.Group.Members) != 1 {
		t.Errorf("expected rejected expenses not to add members, got %d members", len(group.Msg.Group.Members))
	}
}

func TestLedgerService_ExpenseAddsParticipantsToGroup(t *testing.T) {
	ts := setupTestServer(t)
	alice := ts.register(t, "Alice")
	ts.register(t, "Bob")
	ts.register(t, "Carol")
	ts.createGroup(t, alice, "Trip")

	ts.createExpense(t, alice, equalExpense("Fuel", "60", "Trip", "Bob", "Alice", "Carol"))

	group, err := ts.groups.GetGroup(context.Background(), authed(alice, &pb.GetGroupRequest{Name: "Trip"}))
	if err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}
	if len(group.Msg.Group.Members) != 3 {
		t.Errorf("expected payer and sharers to join the group, got %+v", group.Msg.Group.Members)
	}
}

func TestLedgerService_BalancesAreSymmetric(t *testing.T) {
	ts := setupTestServer(t)
	alice := ts.register(t, "Alice")
	bob := ts.register(t, "Bob")
	carol := ts.register(t, "Carol")
	ts.createGroup(t, alice, "Trip")

	ts.createExpense(t, alice, equalExpense("Dinner", "90", "Trip", "Alice", "Alice", "Bob", "Carol"))
	ts.createExpense(t, alice, equalExpense("Taxi", "20", "Trip", "Bob", "Bob", "Carol"))

	aliceBal := ts.balance(t, alice, "Alice")
	bobBal := ts.balance(t, alice, "Bob")
	carolBal := ts.balance(t, alice, "Carol")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"alice with bob", balanceWith(aliceBal, bob.id), "30.00"},
		{"bob with alice", balanceWith(bobBal, alice.id), "-30.00"},
		{"alice with carol", balanceWith(aliceBal, carol.id), "30.00"},
		{"carol with alice", balanceWith(carolBal, alice.id), "-30.00"},
		{"bob with carol", balanceWith(bobBal, carol.id), "10.00"},
		{"carol with bob", balanceWith(carolBal, bob.id), "-10.00"},
		{"alice net", aliceBal.NetTotal, "60.00"},
		{"bob net", bobBal.NetTotal, "-20.00"},
		{"carol net", carolBal.NetTotal, "-40.00"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.want, tt.got)
		}
	}

	for _, b := range aliceBal.Balances {
		if b.UserName == "" {
			t.Errorf("expected counterparty %d to carry a name", b.UserId)
		}
	}
}

func TestLedgerService_SettlementZeroesBalance(t *testing.T) {
	ts := setupTestServer(t)
	alice := ts.register(t, "Alice")
	bob := ts.register(t, "Bob")
	ts.createGroup(t, alice, "Trip")
	ctx := context.Background()

	ts.createExpense(t, alice, equalExpense("Dinner", "60", "Trip", "Alice", "Alice", "Bob"))
	if got := balanceWith(ts.balance(t, bob, ""), alice.id); got != "-30.00" {
		t.Fatalf("expected Bob to owe 30.00 before settling, got %s", got)
	}

	resp, err := ts.ledger.RecordSettlement(ctx, authed(bob, &pb.RecordSettlementRequest{
		FromUserName: "Bob",
		ToUserName:   "Alice",
		Amount:       "30",
		Note:         "dinner",
	}))
	if err != nil {
		t.Fatalf("RecordSettlement failed: %v", err)
	}
	if resp.Msg.Settlement.Amount != "30.00" || resp.Msg.Settlement.FromUserId != bob.id {
		t.Errorf("unexpected settlement: %+v", resp.Msg.Settlement)
	}

	bobBal := ts.balance(t, bob, "")
	if bobBal.Cached {
		t.Error("expected settlement to invalidate Bob's cached balance")
	}
	if len(bobBal.Balances) != 0 || bobBal.NetTotal != "0.00" {
		t.Errorf("expected Bob to be settled up, got %+v", bobBal)
	}
	aliceBal := ts.balance(t, alice, "")
	if len(aliceBal.Balances) != 0 || aliceBal.NetTotal != "0.00" {
		t.Errorf("expected Alice to be settled up, got %+v", aliceBal)
	}

	list, err := ts.ledger.ListSettlements(ctx, authed(alice, &pb.ListSettlementsRequest{UserName: "Alice"}))
	if err != nil {
		t.Fatalf("ListSettlements failed: %v", err)
	}
	if len(list.Msg.Settlements) != 1 || list.Msg.Settlements[0].ToUserName != "Alice" {
		t.Errorf("unexpected settlements: %+v", list.Msg.Settlements)
	}
}

func TestLedgerService_RecordSettlementErrors(t *testing.T) {
	ts := setupTestServer(t)
	alice := ts.register(t, "Alice")
	ts.register(t, "Bob")

	tests := []struct {
		name string
		req  *pb.RecordSettlementRequest
		want connect.Code
	}{
		{"self settlement", &pb.RecordSettlementRequest{FromUserName: "Alice", ToUserName: "Alice", Amount: "5"}, connect.CodeInvalidArgument},
		{"negative amount", &pb.RecordSettlementRequest{FromUserName: "Alice", ToUserName: "Bob", Amount: "-5"}, connect.CodeInvalidArgument},
		{"not a number", &pb.RecordSettlementRequest{FromUserName: "Alice", ToUserName: "Bob", Amount: "five"}, connect.CodeInvalidArgument},
		{"rounds to zero", &pb.RecordSettlementRequest{FromUserName: "Alice", ToUserName: "Bob", Amount: "0.001"}, connect.CodeInvalidArgument},
		{"beyond storable range", &pb.RecordSettlementRequest{FromUserName: "Alice", ToUserName: "Bob", Amount: "10000000000.00"}, connect.CodeInvalidArgument},
		{"unknown user", &pb.RecordSettlementRequest{FromUserName: "Alice", ToUserName: "Mallory", Amount: "5"}, connect.CodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.ledger.RecordSettlement(context.Background(), authed(alice, tt.req))
			assertCode(t, err, tt.want)
		})
	}
}

func TestLedgerService_BalanceCaching(t *testing.T) {
	ts := setupTestServer(t)
	alice := ts.register(t, "Alice")
	bob := ts.register(t, "Bob")
	carol := ts.register(t, "Carol")
	dave := ts.register(t, "Dave")
	ts.createGroup(t, alice, "Trip")

	ts.createExpense(t, alice, equalExpense("Dinner", "90", "Trip", "Alice", "Alice", "Bob", "Carol"))

	first := ts.balance(t, alice, "Carol")
	if first.Cached {
		t.Error("expected first read to be computed")
	}
	second := ts.balance(t, alice, "Carol")
	if !second.Cached {
		t.Error("expected second read to be served from cache")
	}
	if second.NetTotal != first.NetTotal || balanceWith(second, alice.id) != balanceWith(first, alice.id) {
		t.Errorf("cached summary differs: %+v vs %+v", second, first)
	}
	if ttl := ts.redis.TTL(cache.BalanceKey(carol.id)); ttl <= 0 || ttl > cache.DefaultTTL {
		t.Errorf("expected TTL within %v, got %v", cache.DefaultTTL, ttl)
	}

	for _, s := range []session{alice, bob, dave} {
		ts.balance(t, alice, s.name)
	}

	// Only Bob and Carol take part in the next expense.
	ts.createExpense(t, alice, equalExpense("Taxi", "20", "Trip", "Bob", "Bob", "Carol"))

	for _, tt := range []struct {
		user   session
		cached bool
	}{
		{alice, true},
		{bob, false},
		{carol, false},
		{dave, true},
	} {
		if got := ts.redis.Exists(cache.BalanceKey(tt.user.id)); got != tt.cached {
			t.Errorf("%s: expected cached=%v, got %v", tt.user.name, tt.cached, got)
		}
	}

	carolBal := ts.balance(t, alice, "Carol")
	if carolBal.Cached || carolBal.NetTotal != "-40.00" {
		t.Errorf("expected recomputed -40.00 for Carol, got %+v", carolBal)
	}
}

func TestLedgerService_SurvivesCacheOutage(t *testing.T) {
	ts := setupTestServer(t)
	alice := ts.register(t, "Alice")
	bob := ts.register(t, "Bob")
	ts.createGroup(t, alice, "Trip")

	ts.redis.Close()

	ts.createExpense(t, alice, equalExpense("Dinner", "50", "Trip", "Alice", "Alice", "Bob"))
	for i := 0; i < 2; i++ {
		bal := ts.balance(t, alice, "Bob")
		if bal.Cached {
			t.Error("expected no cached reads during an outage")
		}
		if got := balanceWith(bal, alice.id); got != "-25.00" {
			t.Errorf("expected -25.00, got %s", got)
		}
	}

	_, err := ts.ledger.RecordSettlement(context.Background(), authed(bob, &pb.RecordSettlementRequest{
		FromUserName: "Bob",
		ToUserName:   "Alice",
		Amount:       "25",
	}))
	if err != nil {
		t.Fatalf("RecordSettlement during outage failed: %v", err)
	}
}

func TestLedgerService_ListExpenses(t *testing.T) {
	ts := setupTestServer(t)
	alice := ts.register(t, "Alice")
	ts.register(t, "Bob")
	ts.register(t, "Carol")
	ts.createGroup(t, alice, "Trip")
	ctx := context.Background()

	first := ts.createExpense(t, alice, equalExpense("Dinner", "30", "Trip", "Alice", "Alice", "Bob"))
	second := ts.createExpense(t, alice, equalExpense("Coffee", "9", "Trip", "Carol", "Carol", "Bob"))

	all, err := ts.ledger.ListExpenses(ctx, authed(alice, &pb.ListExpensesRequest{}))
	if err != nil {
		t.Fatalf("ListExpenses failed: %v", err)
	}
	if len(all.Msg.Expenses) != 2 || all.Msg.Expenses[0].Id != second.Id {
		t.Errorf("expected newest first, got %+v", all.Msg.Expenses)
	}

	forAlice, err := ts.ledger.ListExpenses(ctx, authed(alice, &pb.ListExpensesRequest{UserName: "Alice"}))
	if err != nil {
		t.Fatalf("ListExpenses(Alice) failed: %v", err)
	}
	if len(forAlice.Msg.Expenses) != 1 || forAlice.Msg.Expenses[0].Id != first.Id {
		t.Errorf("expected only Alice's expense, got %+v", forAlice.Msg.Expenses)
	}
	if forAlice.Msg.Expenses[0].Payments[0].UserName != "Alice" {
		t.Errorf("expected payer name, got %+v", forAlice.Msg.Expenses[0].Payments[0])
	}

	_, err = ts.ledger.ListExpenses(ctx, authed(alice, &pb.ListExpensesRequest{UserName: "Mallory"}))
	assertCode(t, err, connect.CodeNotFound)

	_, err = ts.ledger.GetExpense(ctx, authed(alice, &pb.GetExpenseRequest{Id: 999}))
	assertCode(t, err, connect.CodeNotFound)

	_, err = ts.ledger.ListExpenses(ctx, connect.NewRequest(&pb.ListExpensesRequest{}))
	assertCode(t, err, connect.CodeUnauthenticated)
}
