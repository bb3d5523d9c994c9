package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"noticeboard/internal/models"
)

// boardScope names the per-owner uniqueness scope in DuplicateTitleError.
func boardScope(ownerID string) string {
	return fmt.Sprintf("the boards of user %s", ownerID)
}

// CreateBoard inserts a new board for its owner.
func (s *SQLiteStore) CreateBoard(ctx context.Context, board *models.Board) error {
	if board.ID == "" {
		board.ID = uuid.New().String()
	}
	if board.CreatedAt == 0 {
		board.CreatedAt = time.Now().Unix()
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		var n int
		err := tx.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM boards WHERE owner_id = ? AND title = ?",
			board.OwnerID, board.Title,
		).Scan(&n)
		if err != nil {
			return storeErr("check board title", err)
		}
		if n > 0 {
			return &models.DuplicateTitleError{Scope: boardScope(board.OwnerID), Title: board.Title}
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO boards (id, owner_id, title, description, created_at) VALUES (?, ?, ?, ?, ?)",
			board.ID, board.OwnerID, board.Title, board.Description, board.CreatedAt,
		)
		if isUniqueViolation(err) {
			return &models.DuplicateTitleError{Scope: boardScope(board.OwnerID), Title: board.Title}
		}
		if err != nil {
			return storeErr("insert board", err)
		}
		return nil
	})
}

// GetBoard retrieves a board by ID.
func (s *SQLiteStore) GetBoard(ctx context.Context, id string) (*models.Board, error) {
	board := &models.Board{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, owner_id, title, description, created_at FROM boards WHERE id = ?",
		id,
	).Scan(&board.ID, &board.OwnerID, &board.Title, &board.Description, &board.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Entity: "board", ID: id}
	}
	if err != nil {
		return nil, storeErr("get board", err)
	}
	return board, nil
}

// RenameBoard changes a board's title, keeping per-owner uniqueness.
func (s *SQLiteStore) RenameBoard(ctx context.Context, id, title string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		var ownerID string
		err := tx.QueryRowContext(ctx, "SELECT owner_id FROM boards WHERE id = ?", id).Scan(&ownerID)
		if err == sql.ErrNoRows {
			return &models.NotFoundError{Entity: "board", ID: id}
		}
		if err != nil {
			return storeErr("get board", err)
		}

		var n int
		err = tx.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM boards WHERE owner_id = ? AND title = ? AND id != ?",
			ownerID, title, id,
		).Scan(&n)
		if err != nil {
			return storeErr("check board title", err)
		}
		if n > 0 {
			return &models.DuplicateTitleError{Scope: boardScope(ownerID), Title: title}
		}

		_, err = tx.ExecContext(ctx, "UPDATE boards SET title = ? WHERE id = ?", title, id)
		if isUniqueViolation(err) {
			return &models.DuplicateTitleError{Scope: boardScope(ownerID), Title: title}
		}
		if err != nil {
			return storeErr("rename board", err)
		}
		return nil
	})
}

// UpdateBoardDescription changes a board's description.
func (s *SQLiteStore) UpdateBoardDescription(ctx context.Context, id, description string) error {
	res, err := s.db.ExecContext(ctx, "UPDATE boards SET description = ? WHERE id = ?", description, id)
	if err != nil {
		return storeErr("update board description", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storeErr("update board description", err)
	}
	if n == 0 {
		return &models.NotFoundError{Entity: "board", ID: id}
	}
	return nil
}

// DeleteBoard removes a board. The foreign keys cascade the delete to
// the board's items and their share rows.
func (s *SQLiteStore) DeleteBoard(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM boards WHERE id = ?", id)
	if err != nil {
		return storeErr("delete board", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storeErr("delete board", err)
	}
	if n == 0 {
		return &models.NotFoundError{Entity: "board", ID: id}
	}
	return nil
}

// ListBoards returns the boards owned by a user, ordered by ID.
func (s *SQLiteStore) ListBoards(ctx context.Context, ownerID string) ([]models.Board, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, owner_id, title, description, created_at FROM boards WHERE owner_id = ? ORDER BY id",
		ownerID,
	)
	if err != nil {
		return nil, storeErr("list boards", err)
	}
	defer rows.Close()

	var boards []models.Board
	for rows.Next() {
		var b models.Board
		if err := rows.Scan(&b.ID, &b.OwnerID, &b.Title, &b.Description, &b.CreatedAt); err != nil {
			return nil, storeErr("scan board", err)
		}
		boards = append(boards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate boards", err)
	}
	return boards, nil
}
