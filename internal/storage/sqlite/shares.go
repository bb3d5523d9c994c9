package sqlite

import (
	"context"
	"database/sql"
	"time"

	"noticeboard/internal/models"
)

// CreateShare grants a user read visibility into an item. The grant is
// a bare (user, item) pair; the item itself is never duplicated.
func (s *SQLiteStore) CreateShare(ctx context.Context, itemID, userID string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		var ownerID string
		err := tx.QueryRowContext(ctx,
			"SELECT owner_id FROM items WHERE id = ?", itemID,
		).Scan(&ownerID)
		if err == sql.ErrNoRows {
			return &models.NotFoundError{Entity: "item", ID: itemID}
		}
		if err != nil {
			return storeErr("get item", err)
		}

		var one int
		err = tx.QueryRowContext(ctx, "SELECT 1 FROM users WHERE id = ?", userID).Scan(&one)
		if err == sql.ErrNoRows {
			return &models.NotFoundError{Entity: "user", ID: userID}
		}
		if err != nil {
			return storeErr("check user", err)
		}

		if userID == ownerID {
			return models.ErrSelfShareForbidden
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO shares (user_id, item_id, created_at) VALUES (?, ?, ?)",
			userID, itemID, time.Now().Unix(),
		)
		if isUniqueViolation(err) {
			return models.ErrAlreadyShared
		}
		if err != nil {
			return storeErr("insert share", err)
		}
		return nil
	})
}

// DeleteShare revokes a grant. A missing pair, including pairs gone
// because either entity no longer exists, fails with ErrNotShared.
func (s *SQLiteStore) DeleteShare(ctx context.Context, itemID, userID string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM shares WHERE user_id = ? AND item_id = ?", userID, itemID)
	if err != nil {
		return storeErr("delete share", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storeErr("delete share", err)
	}
	if n == 0 {
		return models.ErrNotShared
	}
	return nil
}

// ListShares returns the IDs of the users an item is shared with.
func (s *SQLiteStore) ListShares(ctx context.Context, itemID string) ([]string, error) {
	var one int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM items WHERE id = ?", itemID).Scan(&one)
	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Entity: "item", ID: itemID}
	}
	if err != nil {
		return nil, storeErr("get item", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT user_id FROM shares WHERE item_id = ? ORDER BY user_id", itemID)
	if err != nil {
		return nil, storeErr("list shares", err)
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, storeErr("scan share", err)
		}
		userIDs = append(userIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate shares", err)
	}
	return userIDs, nil
}
