package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/mmynk/splitledger/internal/models"
)

// CreateGroup persists a new group and makes its creator the first member.
func (s *Store) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		id, err := s.insert(ctx, tx,
			`INSERT INTO groups (name, created_by_id, created_at) VALUES (?, ?, ?)`,
			group.Name, group.CreatedByID, group.CreatedAt,
		)
		if err != nil {
			return wrapErr(err, "failed to insert group %q", group.Name)
		}

		if _, err := s.addMember(ctx, tx, id, group.CreatedByID, group.CreatedAt); err != nil {
			return wrapErr(err, "failed to add creator to group %q", group.Name)
		}

		group.ID = id
		group.Members = []models.GroupMember{{GroupID: id, UserID: group.CreatedByID, JoinedAt: group.CreatedAt}}
		return nil
	})
}

// GetGroupByID retrieves a group with its members.
func (s *Store) GetGroupByID(ctx context.Context, id int64) (*models.Group, error) {
	return s.getGroup(ctx, "id = ?", id)
}

// GetGroupByName retrieves a group by its unique name, with its members.
func (s *Store) GetGroupByName(ctx context.Context, name string) (*models.Group, error) {
	return s.getGroup(ctx, "name = ?", name)
}

func (s *Store) getGroup(ctx context.Context, where string, arg any) (*models.Group, error) {
	group := &models.Group{}
	err := s.queryRow(ctx, s.db,
		`SELECT id, name, created_by_id, created_at FROM groups WHERE `+where, arg,
	).Scan(&group.ID, &group.Name, &group.CreatedByID, &group.CreatedAt)
	if err != nil {
		return nil, wrapErr(err, "group %v", arg)
	}

	rows, err := s.query(ctx, s.db,
		`SELECT group_id, user_id, joined_at FROM group_members WHERE group_id = ? ORDER BY joined_at, user_id`,
		group.ID,
	)
	if err != nil {
		return nil, wrapErr(err, "failed to get group members")
	}
	defer rows.Close()

	for rows.Next() {
		var m models.GroupMember
		if err := rows.Scan(&m.GroupID, &m.UserID, &m.JoinedAt); err != nil {
			return nil, wrapErr(err, "failed to scan group member")
		}
		group.Members = append(group.Members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(err, "failed to iterate group members")
	}

	return group, nil
}

// AddGroupMember adds a user to a group. Re-adding an existing member returns the
// original membership with created set to false.
func (s *Store) AddGroupMember(ctx context.Context, groupID, userID int64) (*models.GroupMember, bool, error) {
	var (
		member  *models.GroupMember
		created bool
	)
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		created, err = s.addMember(ctx, tx, groupID, userID, time.Now().Unix())
		if err != nil {
			return wrapErr(err, "failed to add user %d to group %d", userID, groupID)
		}

		member = &models.GroupMember{GroupID: groupID, UserID: userID}
		err = s.queryRow(ctx, tx,
			`SELECT joined_at FROM group_members WHERE group_id = ? AND user_id = ?`,
			groupID, userID,
		).Scan(&member.JoinedAt)
		return wrapErr(err, "failed to read membership")
	})
	if err != nil {
		return nil, false, err
	}
	return member, created, nil
}

// addMember inserts a membership unless it already exists and reports whether a row was added.
func (s *Store) addMember(ctx context.Context, q querier, groupID, userID, joinedAt int64) (bool, error) {
	res, err := s.exec(ctx, q,
		`INSERT INTO group_members (group_id, user_id, joined_at) VALUES (?, ?, ?)
		 ON CONFLICT (group_id, user_id) DO NOTHING`,
		groupID, userID, joinedAt,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
