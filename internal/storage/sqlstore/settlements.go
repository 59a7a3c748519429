package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/mmynk/splitledger/internal/models"
)

// CreateSettlement persists a new settlement to the database.
func (s *Store) CreateSettlement(ctx context.Context, settlement *models.Settlement) error {
	if settlement.CreatedAt == 0 {
		settlement.CreatedAt = time.Now().Unix()
	}

	var note any
	if settlement.Note != "" {
		note = settlement.Note
	}

	id, err := s.insert(ctx, s.db,
		`INSERT INTO settlements (from_user_id, to_user_id, amount, note, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		settlement.FromUserID, settlement.ToUserID, amountArg(settlement.Amount), note, settlement.CreatedAt,
	)
	if err != nil {
		return wrapErr(err, "failed to insert settlement")
	}

	settlement.ID = id
	return nil
}

// ListSettlements returns every settlement, newest first.
func (s *Store) ListSettlements(ctx context.Context) ([]*models.Settlement, error) {
	return s.listSettlements(ctx, `1 = 1`)
}

// ListSettlementsByUser returns the settlements userID sent or received, newest first.
func (s *Store) ListSettlementsByUser(ctx context.Context, userID int64) ([]*models.Settlement, error) {
	return s.listSettlements(ctx, `from_user_id = ? OR to_user_id = ?`, userID, userID)
}

func (s *Store) listSettlements(ctx context.Context, where string, args ...any) ([]*models.Settlement, error) {
	rows, err := s.query(ctx, s.db,
		`SELECT id, from_user_id, to_user_id, amount, note, created_at
		 FROM settlements WHERE `+where+`
		 ORDER BY created_at DESC, id DESC`,
		args...,
	)
	if err != nil {
		return nil, wrapErr(err, "failed to list settlements")
	}
	defer rows.Close()

	var settlements []*models.Settlement
	for rows.Next() {
		settlement := &models.Settlement{}
		var note sql.NullString

		if err := rows.Scan(&settlement.ID, &settlement.FromUserID, &settlement.ToUserID,
			&settlement.Amount, &note, &settlement.CreatedAt); err != nil {
			return nil, wrapErr(err, "failed to scan settlement")
		}

		if note.Valid {
			settlement.Note = note.String
		}

		settlements = append(settlements, settlement)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapErr(err, "failed to iterate settlements")
	}

	return settlements, nil
}
