package sqlite

import (
	"context"
	"database/sql"

	"noticeboard/internal/models"
)

// ListVisibleItems returns a board's items visible to the viewer: all
// of them when the viewer owns the board, otherwise only the items
// shared with the viewer. Always the live owner-side state.
func (s *SQLiteStore) ListVisibleItems(ctx context.Context, boardID, viewerID string) ([]models.Item, error) {
	var ownerID string
	err := s.db.QueryRowContext(ctx,
		"SELECT owner_id FROM boards WHERE id = ?", boardID,
	).Scan(&ownerID)
	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Entity: "board", ID: boardID}
	}
	if err != nil {
		return nil, storeErr("get board", err)
	}

	if ownerID == viewerID {
		return s.ListItems(ctx, boardID)
	}
	return s.queryItems(ctx,
		`SELECT `+itemColumns+` FROM items
		 WHERE board_id = ? AND id IN (SELECT item_id FROM shares WHERE user_id = ?)
		 ORDER BY position`,
		boardID, viewerID)
}

// ListBoardViews returns the user's owned boards followed by groupings
// synthesized from items on other users' boards that were shared with
// the user. Board metadata always comes live from the source board.
func (s *SQLiteStore) ListBoardViews(ctx context.Context, userID string) ([]models.BoardView, error) {
	owned, err := s.ListBoards(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]models.BoardView, 0, len(owned))
	for _, b := range owned {
		items, err := s.ListItems(ctx, b.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, models.BoardView{Board: b, Items: items})
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT b.id, b.owner_id, b.title, b.description, b.created_at
		 FROM boards b
		 JOIN items i ON i.board_id = b.id
		 JOIN shares sh ON sh.item_id = i.id
		 WHERE sh.user_id = ?
		 ORDER BY b.id`,
		userID,
	)
	if err != nil {
		return nil, storeErr("list shared boards", err)
	}
	defer rows.Close()

	var shared []models.Board
	for rows.Next() {
		var b models.Board
		if err := rows.Scan(&b.ID, &b.OwnerID, &b.Title, &b.Description, &b.CreatedAt); err != nil {
			return nil, storeErr("scan board", err)
		}
		shared = append(shared, b)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate boards", err)
	}

	for _, b := range shared {
		items, err := s.ListVisibleItems(ctx, b.ID, userID)
		if err != nil {
			return nil, err
		}
		views = append(views, models.BoardView{Board: b, Shared: true, Items: items})
	}
	return views, nil
}

// ListAllVisibleItems returns every item the user owns or has been
// granted visibility into, grouped by board and ordered by position.
func (s *SQLiteStore) ListAllVisibleItems(ctx context.Context, userID string) ([]models.Item, error) {
	return s.queryItems(ctx,
		`SELECT `+itemColumns+` FROM items
		 WHERE owner_id = ? OR id IN (SELECT item_id FROM shares WHERE user_id = ?)
		 ORDER BY board_id, position`,
		userID, userID)
}
