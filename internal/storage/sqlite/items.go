package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"noticeboard/internal/models"
)

const itemColumns = "id, board_id, owner_id, title, completed, description, activity_url, image_url, expiry, color, position, created_at"

func scanItem(row interface{ Scan(...any) error }) (models.Item, error) {
	var it models.Item
	err := row.Scan(&it.ID, &it.BoardID, &it.OwnerID, &it.Title, &it.Completed, &it.Description,
		&it.ActivityURL, &it.ImageURL, &it.Expiry, &it.Color, &it.Position, &it.CreatedAt)
	return it, err
}

// itemScope names the per-board uniqueness scope in DuplicateTitleError.
func itemScope(boardTitle string) string {
	return fmt.Sprintf("board %q", boardTitle)
}

// checkItemTitle fails with DuplicateTitleError when the board already
// holds an item with the title, excluding the item being updated.
func checkItemTitle(ctx context.Context, tx *sql.Tx, boardID, boardTitle, title, excludeItemID string) error {
	var n int
	err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM items WHERE board_id = ? AND title = ? AND id != ?",
		boardID, title, excludeItemID,
	).Scan(&n)
	if err != nil {
		return storeErr("check item title", err)
	}
	if n > 0 {
		return &models.DuplicateTitleError{Scope: itemScope(boardTitle), Title: title}
	}
	return nil
}

// CreateItem appends a new item at the tail of its board. The position
// is the board's item count inside the same transaction, so two
// concurrent appends serialize and cannot claim one slot.
func (s *SQLiteStore) CreateItem(ctx context.Context, item *models.Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.CreatedAt == 0 {
		item.CreatedAt = time.Now().Unix()
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		var boardTitle string
		err := tx.QueryRowContext(ctx,
			"SELECT title, owner_id FROM boards WHERE id = ?", item.BoardID,
		).Scan(&boardTitle, &item.OwnerID)
		if err == sql.ErrNoRows {
			return &models.NotFoundError{Entity: "board", ID: item.BoardID}
		}
		if err != nil {
			return storeErr("get board", err)
		}

		if err := checkItemTitle(ctx, tx, item.BoardID, boardTitle, item.Title, item.ID); err != nil {
			return err
		}

		err = tx.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM items WHERE board_id = ?", item.BoardID,
		).Scan(&item.Position)
		if err != nil {
			return storeErr("count items", err)
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO items ("+itemColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			item.ID, item.BoardID, item.OwnerID, item.Title, item.Completed, item.Description,
			item.ActivityURL, item.ImageURL, item.Expiry, item.Color, item.Position, item.CreatedAt,
		)
		if isUniqueViolation(err) {
			return &models.DuplicateTitleError{Scope: itemScope(boardTitle), Title: item.Title}
		}
		if err != nil {
			return storeErr("insert item", err)
		}
		return nil
	})
}

// GetItem retrieves an item by ID.
func (s *SQLiteStore) GetItem(ctx context.Context, id string) (*models.Item, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+itemColumns+" FROM items WHERE id = ?", id)
	it, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Entity: "item", ID: id}
	}
	if err != nil {
		return nil, storeErr("get item", err)
	}
	return &it, nil
}

// UpdateItem applies a patch to an item. A title change re-checks
// uniqueness within the item's board.
func (s *SQLiteStore) UpdateItem(ctx context.Context, id string, patch models.ItemPatch) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		var boardID, boardTitle string
		err := tx.QueryRowContext(ctx,
			`SELECT i.board_id, b.title FROM items i JOIN boards b ON b.id = i.board_id WHERE i.id = ?`,
			id,
		).Scan(&boardID, &boardTitle)
		if err == sql.ErrNoRows {
			return &models.NotFoundError{Entity: "item", ID: id}
		}
		if err != nil {
			return storeErr("get item", err)
		}

		var sets []string
		var args []any
		set := func(column string, value any) {
			sets = append(sets, column+" = ?")
			args = append(args, value)
		}
		if patch.Title != nil {
			if err := checkItemTitle(ctx, tx, boardID, boardTitle, *patch.Title, id); err != nil {
				return err
			}
			set("title", *patch.Title)
		}
		if patch.Completed != nil {
			set("completed", *patch.Completed)
		}
		if patch.Description != nil {
			set("description", *patch.Description)
		}
		if patch.ActivityURL != nil {
			set("activity_url", *patch.ActivityURL)
		}
		if patch.ImageURL != nil {
			set("image_url", *patch.ImageURL)
		}
		if patch.Expiry != nil {
			set("expiry", *patch.Expiry)
		}
		if patch.Color != nil {
			set("color", *patch.Color)
		}
		if len(sets) == 0 {
			return nil
		}

		args = append(args, id)
		_, err = tx.ExecContext(ctx, "UPDATE items SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
		if isUniqueViolation(err) && patch.Title != nil {
			return &models.DuplicateTitleError{Scope: itemScope(boardTitle), Title: *patch.Title}
		}
		if err != nil {
			return storeErr("update item", err)
		}
		return nil
	})
}

// MoveItemWithinBoard reinserts an item at target with insert-before
// semantics: the items between the old and new position shift by one
// slot, everything else stays put. Positions remain dense.
func (s *SQLiteStore) MoveItemWithinBoard(ctx context.Context, id string, target int) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		var boardID string
		var pos int
		err := tx.QueryRowContext(ctx,
			"SELECT board_id, position FROM items WHERE id = ?", id,
		).Scan(&boardID, &pos)
		if err == sql.ErrNoRows {
			return &models.NotFoundError{Entity: "item", ID: id}
		}
		if err != nil {
			return storeErr("get item", err)
		}

		var n int
		if err := tx.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM items WHERE board_id = ?", boardID,
		).Scan(&n); err != nil {
			return storeErr("count items", err)
		}
		if target < 0 || target >= n {
			return &models.InvalidAttributeError{
				Field:  "position",
				Reason: fmt.Sprintf("%d outside [0, %d)", target, n),
			}
		}
		if target == pos {
			return nil
		}

		if target < pos {
			_, err = tx.ExecContext(ctx,
				"UPDATE items SET position = position + 1 WHERE board_id = ? AND position >= ? AND position < ?",
				boardID, target, pos,
			)
		} else {
			_, err = tx.ExecContext(ctx,
				"UPDATE items SET position = position - 1 WHERE board_id = ? AND position > ? AND position <= ?",
				boardID, pos, target,
			)
		}
		if err != nil {
			return storeErr("shift items", err)
		}

		if _, err = tx.ExecContext(ctx,
			"UPDATE items SET position = ? WHERE id = ?", target, id,
		); err != nil {
			return storeErr("place item", err)
		}
		return nil
	})
}

// MoveItemToBoard transfers an item to the tail of another board and
// renormalizes the source board, all in one transaction. Either every
// step commits or none do.
func (s *SQLiteStore) MoveItemToBoard(ctx context.Context, itemID, sourceBoardID, targetBoardID string) error {
	if sourceBoardID == targetBoardID {
		return nil
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		var boardID, ownerID, title string
		var pos int
		err := tx.QueryRowContext(ctx,
			"SELECT board_id, owner_id, title, position FROM items WHERE id = ?", itemID,
		).Scan(&boardID, &ownerID, &title, &pos)
		if err == sql.ErrNoRows || (err == nil && boardID != sourceBoardID) {
			return &models.NotFoundError{Entity: "item", ID: itemID}
		}
		if err != nil {
			return storeErr("get item", err)
		}

		var targetTitle, targetOwnerID string
		err = tx.QueryRowContext(ctx,
			"SELECT title, owner_id FROM boards WHERE id = ?", targetBoardID,
		).Scan(&targetTitle, &targetOwnerID)
		if err == sql.ErrNoRows {
			return &models.NotFoundError{Entity: "board", ID: targetBoardID}
		}
		if err != nil {
			return storeErr("get board", err)
		}

		// An item's owner is always its board's owner, so a transfer
		// can never cross an ownership boundary.
		if targetOwnerID != ownerID {
			return &models.InvalidAttributeError{
				Field:  "target_board_id",
				Reason: "board belongs to a different owner",
			}
		}

		if err := checkItemTitle(ctx, tx, targetBoardID, targetTitle, title, itemID); err != nil {
			return err
		}

		var n int
		if err := tx.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM items WHERE board_id = ?", targetBoardID,
		).Scan(&n); err != nil {
			return storeErr("count items", err)
		}

		_, err = tx.ExecContext(ctx,
			"UPDATE items SET board_id = ?, position = ? WHERE id = ?",
			targetBoardID, n, itemID,
		)
		if isUniqueViolation(err) {
			return &models.DuplicateTitleError{Scope: itemScope(targetTitle), Title: title}
		}
		if err != nil {
			return storeErr("re-home item", err)
		}

		// Close the gap the item left on the source board.
		if _, err = tx.ExecContext(ctx,
			"UPDATE items SET position = position - 1 WHERE board_id = ? AND position > ?",
			sourceBoardID, pos,
		); err != nil {
			return storeErr("renormalize source board", err)
		}
		return nil
	})
}

// DeleteItem removes an item, its share rows (via cascade), and closes
// the position gap among the items that followed it.
func (s *SQLiteStore) DeleteItem(ctx context.Context, id string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		var boardID string
		var pos int
		err := tx.QueryRowContext(ctx,
			"SELECT board_id, position FROM items WHERE id = ?", id,
		).Scan(&boardID, &pos)
		if err == sql.ErrNoRows {
			return &models.NotFoundError{Entity: "item", ID: id}
		}
		if err != nil {
			return storeErr("get item", err)
		}

		if _, err = tx.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id); err != nil {
			return storeErr("delete item", err)
		}

		if _, err = tx.ExecContext(ctx,
			"UPDATE items SET position = position - 1 WHERE board_id = ? AND position > ?",
			boardID, pos,
		); err != nil {
			return storeErr("renormalize board", err)
		}
		return nil
	})
}

// ListItems returns a board's items ordered by position.
func (s *SQLiteStore) ListItems(ctx context.Context, boardID string) ([]models.Item, error) {
	return s.queryItems(ctx,
		"SELECT "+itemColumns+" FROM items WHERE board_id = ? ORDER BY position", boardID)
}

func (s *SQLiteStore) queryItems(ctx context.Context, query string, args ...any) ([]models.Item, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("query items", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, storeErr("scan item", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate items", err)
	}
	return items, nil
}
