package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/cache"
	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	pb "github.com/mmynk/splitledger/pkg/proto"
	"github.com/mmynk/splitledger/pkg/proto/protoconnect"
)

// LedgerService implements the Connect LedgerService: expenses, settlements and balances.
//
// Every successful write invalidates the cached balance summary of each user it touches
// before returning, so a later GetBalance never serves a summary that predates the write.
type LedgerService struct {
	protoconnect.UnimplementedLedgerServiceHandler
	store    storage.Store
	balances *cache.BalanceCache
	logger   *slog.Logger
}

// NewLedgerService creates a new LedgerService backed by store and the balance cache.
func NewLedgerService(store storage.Store, balances *cache.BalanceCache, logger *slog.Logger) *LedgerService {
	return &LedgerService{
		store:    store,
		balances: balances,
		logger:   logger,
	}
}

// CreateExpense validates and allocates a new expense, then records it atomically.
func (s *LedgerService) CreateExpense(ctx context.Context, req *connect.Request[pb.CreateExpenseRequest]) (*connect.Response[pb.CreateExpenseResponse], error) {
	creatorID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	msg := req.Msg
	s.logger.Info("CreateExpense request received",
		"description", msg.Description,
		"amount", msg.Amount,
		"group", msg.GroupName,
		"split_type", msg.SplitType,
		"payers", len(msg.PaidBy),
		"sharers", len(msg.SplitBetween),
	)

	expense, names, err := s.buildExpense(ctx, creatorID, msg)
	if err != nil {
		s.logger.Warn("CreateExpense rejected", "description", msg.Description, "error", err)
		return nil, toConnectError(err)
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		s.logger.Error("CreateExpense failed", "description", msg.Description, "error", err)
		return nil, toConnectError(err)
	}
	ledgerWritesTotal.WithLabelValues("expense").Inc()

	s.balances.Invalidate(ctx, expense.ParticipantIDs()...)

	s.logger.Info("Expense created",
		"expense_id", expense.ID,
		"group_id", expense.GroupID,
		"amount", calculator.FormatAmount(expense.Amount),
	)
	return connect.NewResponse(&pb.CreateExpenseResponse{
		Expense: toProtoExpense(expense, names),
	}), nil
}

// buildExpense resolves names and runs the split policy. Nothing is persisted.
func (s *LedgerService) buildExpense(ctx context.Context, creatorID int64, msg *pb.CreateExpenseRequest) (*models.Expense, userNames, error) {
	description := strings.TrimSpace(msg.Description)
	if description == "" {
		return nil, nil, fmt.Errorf("description is required: %w", models.ErrInvalidInput)
	}
	amount, err := calculator.ParseAmount(msg.Amount)
	if err != nil {
		return nil, nil, err
	}
	amount = calculator.Quantize(amount)

	splitType, err := models.ParseSplitType(msg.SplitType)
	if err != nil {
		return nil, nil, err
	}

	group, err := s.store.GetGroupByName(ctx, strings.TrimSpace(msg.GroupName))
	if err != nil {
		return nil, nil, fmt.Errorf("group %q: %w", msg.GroupName, err)
	}

	names := make(userNames)
	payers := make([]calculator.Participant, len(msg.PaidBy))
	for i, p := range msg.PaidBy {
		if p == nil {
			return nil, nil, fmt.Errorf("payer %d is empty: %w", i, models.ErrInvalidInput)
		}
		user, err := s.resolveUser(ctx, p.UserName, names)
		if err != nil {
			return nil, nil, err
		}
		paid, err := calculator.ParseAmount(p.Amount)
		if err != nil {
			return nil, nil, fmt.Errorf("payer %q: %w", user.Name, err)
		}
		payers[i] = calculator.Participant{UserID: user.ID, Value: calculator.Quantize(paid)}
	}
	if err := calculator.ValidatePayments(amount, payers); err != nil {
		return nil, nil, err
	}

	sharers := make([]calculator.Participant, len(msg.SplitBetween))
	for i, sh := range msg.SplitBetween {
		if sh == nil {
			return nil, nil, fmt.Errorf("sharer %d is empty: %w", i, models.ErrInvalidInput)
		}
		user, err := s.resolveUser(ctx, sh.UserName, names)
		if err != nil {
			return nil, nil, err
		}
		value, err := shareValue(splitType, sh.Value)
		if err != nil {
			return nil, nil, fmt.Errorf("sharer %q: %w", user.Name, err)
		}
		sharers[i] = calculator.Participant{UserID: user.ID, Value: value}
	}
	shares, err := calculator.Allocate(amount, splitType, sharers)
	if err != nil {
		return nil, nil, err
	}

	expense := &models.Expense{
		Description: description,
		Amount:      amount,
		GroupID:     group.ID,
		CreatedByID: creatorID,
		SplitType:   splitType,
		CreatedAt:   time.Now().Unix(),
		Payments:    make([]models.ExpensePayment, len(payers)),
		Splits:      make([]models.ExpenseSplit, len(shares)),
	}
	for i, p := range payers {
		expense.Payments[i] = models.ExpensePayment{UserID: p.UserID, Amount: p.Value}
	}
	for i, sh := range shares {
		expense.Splits[i] = models.ExpenseSplit{UserID: sh.UserID, Amount: sh.Amount, Tag: sh.Tag}
	}
	return expense, names, nil
}

// shareValue parses a sharer's input value. Equal splits ignore it.
func shareValue(splitType models.SplitType, raw string) (decimal.Decimal, error) {
	if splitType == models.SplitEqual {
		return decimal.Zero, nil
	}
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("value %q is not a decimal number: %w", raw, models.ErrInvalidSplit)
	}
	return value, nil
}

func (s *LedgerService) resolveUser(ctx context.Context, name string, names userNames) (*models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("user name is required: %w", models.ErrInvalidInput)
	}
	user, err := s.store.GetUserByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("user %q: %w", name, err)
	}
	if names != nil {
		names[user.ID] = user.Name
	}
	return user, nil
}

// GetExpense returns one expense with its payments and splits.
func (s *LedgerService) GetExpense(ctx context.Context, req *connect.Request[pb.GetExpenseRequest]) (*connect.Response[pb.GetExpenseResponse], error) {
	if _, err := callerID(ctx); err != nil {
		return nil, err
	}
	s.logger.Info("GetExpense request received", "expense_id", req.Msg.Id)

	expense, err := s.store.GetExpense(ctx, req.Msg.Id)
	if err != nil {
		s.logger.Warn("GetExpense failed", "expense_id", req.Msg.Id, "error", err)
		return nil, toConnectError(err)
	}

	names, err := s.lookupNames(ctx, expense.ParticipantIDs())
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.GetExpenseResponse{
		Expense: toProtoExpense(expense, names),
	}), nil
}

// ListExpenses returns every expense, or the ones involving UserName when it is set.
func (s *LedgerService) ListExpenses(ctx context.Context, req *connect.Request[pb.ListExpensesRequest]) (*connect.Response[pb.ListExpensesResponse], error) {
	if _, err := callerID(ctx); err != nil {
		return nil, err
	}
	s.logger.Info("ListExpenses request received", "user", req.Msg.UserName)

	var (
		expenses []*models.Expense
		err      error
	)
	if strings.TrimSpace(req.Msg.UserName) == "" {
		expenses, err = s.store.ListExpenses(ctx)
	} else {
		var user *models.User
		if user, err = s.resolveUser(ctx, req.Msg.UserName, nil); err == nil {
			expenses, err = s.store.ListExpensesByUser(ctx, user.ID)
		}
	}
	if err != nil {
		s.logger.Warn("ListExpenses failed", "user", req.Msg.UserName, "error", err)
		return nil, toConnectError(err)
	}

	var ids []int64
	for _, e := range expenses {
		ids = append(ids, e.ParticipantIDs()...)
	}
	names, err := s.lookupNames(ctx, ids)
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]*pb.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = toProtoExpense(e, names)
	}
	return connect.NewResponse(&pb.ListExpensesResponse{Expenses: out}), nil
}

// RecordSettlement records a direct payment from one user to another.
func (s *LedgerService) RecordSettlement(ctx context.Context, req *connect.Request[pb.RecordSettlementRequest]) (*connect.Response[pb.RecordSettlementResponse], error) {
	if _, err := callerID(ctx); err != nil {
		return nil, err
	}
	msg := req.Msg
	s.logger.Info("RecordSettlement request received", "from", msg.FromUserName, "to", msg.ToUserName, "amount", msg.Amount)

	settlement, names, err := s.buildSettlement(ctx, msg)
	if err != nil {
		s.logger.Warn("RecordSettlement rejected", "from", msg.FromUserName, "to", msg.ToUserName, "error", err)
		return nil, toConnectError(err)
	}

	if err := s.store.CreateSettlement(ctx, settlement); err != nil {
		s.logger.Error("RecordSettlement failed", "error", err)
		return nil, toConnectError(err)
	}
	ledgerWritesTotal.WithLabelValues("settlement").Inc()

	s.balances.Invalidate(ctx, settlement.FromUserID, settlement.ToUserID)

	s.logger.Info("Settlement recorded",
		"settlement_id", settlement.ID,
		"from_user_id", settlement.FromUserID,
		"to_user_id", settlement.ToUserID,
	)
	return connect.NewResponse(&pb.RecordSettlementResponse{
		Settlement: toProtoSettlement(settlement, names),
	}), nil
}

func (s *LedgerService) buildSettlement(ctx context.Context, msg *pb.RecordSettlementRequest) (*models.Settlement, userNames, error) {
	names := make(userNames, 2)
	from, err := s.resolveUser(ctx, msg.FromUserName, names)
	if err != nil {
		return nil, nil, err
	}
	to, err := s.resolveUser(ctx, msg.ToUserName, names)
	if err != nil {
		return nil, nil, err
	}
	if from.ID == to.ID {
		return nil, nil, fmt.Errorf("cannot settle with yourself: %w", models.ErrInvalidInput)
	}
	amount, err := calculator.ParseAmount(msg.Amount)
	if err != nil {
		return nil, nil, err
	}
	amount = calculator.Quantize(amount)
	if !amount.IsPositive() {
		return nil, nil, fmt.Errorf("amount %q rounds to zero: %w", msg.Amount, models.ErrInvalidInput)
	}

	return &models.Settlement{
		FromUserID: from.ID,
		ToUserID:   to.ID,
		Amount:     amount,
		Note:       strings.TrimSpace(msg.Note),
		CreatedAt:  time.Now().Unix(),
	}, names, nil
}

// ListSettlements returns every settlement, or the ones involving UserName when it is set.
func (s *LedgerService) ListSettlements(ctx context.Context, req *connect.Request[pb.ListSettlementsRequest]) (*connect.Response[pb.ListSettlementsResponse], error) {
	if _, err := callerID(ctx); err != nil {
		return nil, err
	}
	s.logger.Info("ListSettlements request received", "user", req.Msg.UserName)

	var (
		settlements []*models.Settlement
		err         error
	)
	if strings.TrimSpace(req.Msg.UserName) == "" {
		settlements, err = s.store.ListSettlements(ctx)
	} else {
		var user *models.User
		if user, err = s.resolveUser(ctx, req.Msg.UserName, nil); err == nil {
			settlements, err = s.store.ListSettlementsByUser(ctx, user.ID)
		}
	}
	if err != nil {
		s.logger.Warn("ListSettlements failed", "user", req.Msg.UserName, "error", err)
		return nil, toConnectError(err)
	}

	ids := make([]int64, 0, 2*len(settlements))
	for _, st := range settlements {
		ids = append(ids, st.FromUserID, st.ToUserID)
	}
	names, err := s.lookupNames(ctx, ids)
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]*pb.Settlement, len(settlements))
	for i, st := range settlements {
		out[i] = toProtoSettlement(st, names)
	}
	return connect.NewResponse(&pb.ListSettlementsResponse{Settlements: out}), nil
}

// GetBalance returns a user's net position and per-counterparty balances. The summary is
// served from the cache when present and recomputed from the ledger otherwise.
func (s *LedgerService) GetBalance(ctx context.Context, req *connect.Request[pb.GetBalanceRequest]) (*connect.Response[pb.GetBalanceResponse], error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("GetBalance request received", "user", req.Msg.UserName)

	var user *models.User
	if strings.TrimSpace(req.Msg.UserName) == "" {
		user, err = s.store.GetUserByID(ctx, caller)
	} else {
		user, err = s.resolveUser(ctx, req.Msg.UserName, nil)
	}
	if err != nil {
		s.logger.Warn("GetBalance: user lookup failed", "user", req.Msg.UserName, "error", err)
		return nil, toConnectError(err)
	}

	if summary, ok := s.balances.Get(ctx, user.ID); ok {
		s.logger.Debug("Balance served from cache", "user_id", user.ID)
		return connect.NewResponse(toProtoBalance(summary, user.Name, true)), nil
	}

	summary, err := s.computeBalance(ctx, user.ID)
	if err != nil {
		s.logger.Error("GetBalance failed", "user_id", user.ID, "error", err)
		return nil, toConnectError(err)
	}
	s.balances.Set(ctx, summary)

	return connect.NewResponse(toProtoBalance(summary, user.Name, false)), nil
}

// computeBalance rebuilds a summary from the user's expenses and settlements and fills in
// counterparty names.
func (s *LedgerService) computeBalance(ctx context.Context, userID int64) (*models.BalanceSummary, error) {
	start := time.Now()
	defer func() { balanceComputeSeconds.Observe(time.Since(start).Seconds()) }()

	expenses, err := s.store.ListExpensesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	settlements, err := s.store.ListSettlementsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := calculator.ComputeBalance(userID, expenses, settlements)

	ids := make([]int64, len(summary.Balances))
	for i, b := range summary.Balances {
		ids[i] = b.UserID
	}
	names, err := s.lookupNames(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range summary.Balances {
		summary.Balances[i].UserName = names[summary.Balances[i].UserID]
	}

	s.logger.Debug("Balance computed",
		"user_id", userID,
		"expenses", len(expenses),
		"settlements", len(settlements),
		"net_total", calculator.FormatAmount(summary.NetTotal),
	)
	return summary, nil
}

func (s *LedgerService) lookupNames(ctx context.Context, ids []int64) (userNames, error) {
	if len(ids) == 0 {
		return userNames{}, nil
	}
	users, err := s.store.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return namesOf(users), nil
}
