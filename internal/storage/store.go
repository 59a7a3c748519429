// Package storage provides abstractions for persistent ledger storage.
package storage

import (
	"context"

	"github.com/mmynk/splitledger/internal/models"
)

// Store is the durable ledger: users, groups and the append-only financial records.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
//
// Lookups of missing rows return an error wrapping models.ErrNotFound. Unique name or
// email conflicts wrap models.ErrDuplicateIdentity. Driver and commit failures wrap
// models.ErrStoreFailure.
type Store interface {
	UserStore
	GroupStore
	LedgerStore

	// Close releases any resources held by the store.
	Close() error
}

// UserStore persists user accounts.
type UserStore interface {
	// CreateUser inserts user and populates user.ID.
	CreateUser(ctx context.Context, user *models.User) error

	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByName(ctx context.Context, name string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUsersByIDs returns the users that exist among ids, keyed by ID.
	// Unknown IDs are omitted rather than reported as errors.
	GetUsersByIDs(ctx context.Context, ids []int64) (map[int64]*models.User, error)
}

// GroupStore persists groups and memberships.
type GroupStore interface {
	// CreateGroup inserts group and its creator's membership in one transaction.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroupByID and GetGroupByName return the group with its members populated.
	GetGroupByID(ctx context.Context, id int64) (*models.Group, error)
	GetGroupByName(ctx context.Context, name string) (*models.Group, error)

	// AddGroupMember adds userID to groupID. Adding an existing member is not an error:
	// the existing membership is returned with created set to false.
	AddGroupMember(ctx context.Context, groupID, userID int64) (member *models.GroupMember, created bool, err error)
}

// LedgerStore persists expenses and settlements. Records are inserted, never updated.
type LedgerStore interface {
	// CreateExpense inserts the expense with its payments and splits in one transaction,
	// adding every participant to the expense's group in the same transaction.
	// IDs on expense and its children are populated on success.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense returns one expense with payments and splits.
	GetExpense(ctx context.Context, id int64) (*models.Expense, error)

	// ListExpenses returns every expense, newest first.
	ListExpenses(ctx context.Context) ([]*models.Expense, error)

	// ListExpensesByUser returns the expenses userID paid toward or shares, newest first.
	ListExpensesByUser(ctx context.Context, userID int64) ([]*models.Expense, error)

	// CreateSettlement inserts settlement and populates settlement.ID.
	CreateSettlement(ctx context.Context, settlement *models.Settlement) error

	// ListSettlements returns every settlement, newest first.
	ListSettlements(ctx context.Context) ([]*models.Settlement, error)

	// ListSettlementsByUser returns the settlements userID sent or received, newest first.
	ListSettlementsByUser(ctx context.Context, userID int64) ([]*models.Settlement, error)
}
