package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/mmynk/splitledger/internal/models"
)

// CreateExpense persists an expense, its payments and splits, and the group membership of
// every participant in a single transaction. Nothing is written if any insert fails.
func (s *Store) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		id, err := s.insert(ctx, tx,
			`INSERT INTO expenses (description, amount, group_id, created_by_id, split_type, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			expense.Description, amountArg(expense.Amount), expense.GroupID,
			expense.CreatedByID, string(expense.SplitType), expense.CreatedAt,
		)
		if err != nil {
			return wrapErr(err, "failed to insert expense")
		}

		payments := make([]models.ExpensePayment, len(expense.Payments))
		for i, p := range expense.Payments {
			p.ExpenseID = id
			p.ID, err = s.insert(ctx, tx,
				`INSERT INTO expense_payments (expense_id, user_id, amount) VALUES (?, ?, ?)`,
				id, p.UserID, amountArg(p.Amount),
			)
			if err != nil {
				return wrapErr(err, "failed to insert payment by user %d", p.UserID)
			}
			payments[i] = p
		}

		splits := make([]models.ExpenseSplit, len(expense.Splits))
		for i, sp := range expense.Splits {
			sp.ExpenseID = id
			sp.ID, err = s.insert(ctx, tx,
				`INSERT INTO expense_splits (expense_id, user_id, amount, split_tag) VALUES (?, ?, ?, ?)`,
				id, sp.UserID, amountArg(sp.Amount), string(sp.Tag),
			)
			if err != nil {
				return wrapErr(err, "failed to insert split for user %d", sp.UserID)
			}
			splits[i] = sp
		}

		// Everyone on the expense becomes a member of its group.
		for _, userID := range expense.ParticipantIDs() {
			if _, err := s.addMember(ctx, tx, expense.GroupID, userID, expense.CreatedAt); err != nil {
				return wrapErr(err, "failed to add user %d to group %d", userID, expense.GroupID)
			}
		}

		expense.ID = id
		expense.Payments = payments
		expense.Splits = splits
		return nil
	})
}

// GetExpense retrieves one expense with its payments and splits.
func (s *Store) GetExpense(ctx context.Context, id int64) (*models.Expense, error) {
	expenses, err := s.listExpenses(ctx, `id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		return nil, wrapErr(sql.ErrNoRows, "expense %d", id)
	}
	return expenses[0], nil
}

// ListExpenses returns every expense in the ledger, newest first.
func (s *Store) ListExpenses(ctx context.Context) ([]*models.Expense, error) {
	return s.listExpenses(ctx, `1 = 1`)
}

// ListExpensesByUser returns the expenses userID paid toward or shares, newest first.
func (s *Store) ListExpensesByUser(ctx context.Context, userID int64) ([]*models.Expense, error) {
	return s.listExpenses(ctx,
		`id IN (SELECT expense_id FROM expense_payments WHERE user_id = ?
		        UNION SELECT expense_id FROM expense_splits WHERE user_id = ?)`,
		userID, userID,
	)
}

// listExpenses loads the expenses matching where, then their payments and splits with
// one query each. where is a condition on the expenses table.
func (s *Store) listExpenses(ctx context.Context, where string, args ...any) ([]*models.Expense, error) {
	rows, err := s.query(ctx, s.db,
		`SELECT id, description, amount, group_id, created_by_id, split_type, created_at
		 FROM expenses WHERE `+where+`
		 ORDER BY created_at DESC, id DESC`,
		args...,
	)
	if err != nil {
		return nil, wrapErr(err, "failed to list expenses")
	}
	defer rows.Close()

	var expenses []*models.Expense
	byID := make(map[int64]*models.Expense)
	for rows.Next() {
		e := &models.Expense{}
		var splitType string
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount, &e.GroupID,
			&e.CreatedByID, &splitType, &e.CreatedAt); err != nil {
			return nil, wrapErr(err, "failed to scan expense")
		}
		e.SplitType = models.SplitType(splitType)
		expenses = append(expenses, e)
		byID[e.ID] = e
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(err, "failed to iterate expenses")
	}
	rows.Close()

	if len(expenses) == 0 {
		return expenses, nil
	}

	subquery := `expense_id IN (SELECT id FROM expenses WHERE ` + where + `)`

	payRows, err := s.query(ctx, s.db,
		`SELECT id, expense_id, user_id, amount FROM expense_payments WHERE `+subquery+` ORDER BY id`,
		args...,
	)
	if err != nil {
		return nil, wrapErr(err, "failed to get payments")
	}
	defer payRows.Close()

	for payRows.Next() {
		var p models.ExpensePayment
		if err := payRows.Scan(&p.ID, &p.ExpenseID, &p.UserID, &p.Amount); err != nil {
			return nil, wrapErr(err, "failed to scan payment")
		}
		if e, ok := byID[p.ExpenseID]; ok {
			e.Payments = append(e.Payments, p)
		}
	}
	if err := payRows.Err(); err != nil {
		return nil, wrapErr(err, "failed to iterate payments")
	}
	payRows.Close()

	splitRows, err := s.query(ctx, s.db,
		`SELECT id, expense_id, user_id, amount, split_tag FROM expense_splits WHERE `+subquery+` ORDER BY id`,
		args...,
	)
	if err != nil {
		return nil, wrapErr(err, "failed to get splits")
	}
	defer splitRows.Close()

	for splitRows.Next() {
		var sp models.ExpenseSplit
		var tag string
		if err := splitRows.Scan(&sp.ID, &sp.ExpenseID, &sp.UserID, &sp.Amount, &tag); err != nil {
			return nil, wrapErr(err, "failed to scan split")
		}
		sp.Tag = models.SplitTag(tag)
		if e, ok := byID[sp.ExpenseID]; ok {
			e.Splits = append(e.Splits, sp)
		}
	}
	if err := splitRows.Err(); err != nil {
		return nil, wrapErr(err, "failed to iterate splits")
	}

	return expenses, nil
}
