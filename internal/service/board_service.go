// Package service implements the write and read operations of the
// consistency engine: board repository, item ordering, cross-board
// moves, the sharing registry and the query facade. Services validate
// attributes and delegate atomicity to the storage layer.
package service

import (
	"context"
	"log/slog"

	"noticeboard/internal/models"
	"noticeboard/internal/storage"
)

// BoardService manages the lifecycle of boards.
type BoardService struct {
	store storage.Store
}

// NewBoardService creates a new BoardService with the given storage backend.
func NewBoardService(store storage.Store) *BoardService {
	return &BoardService{store: store}
}

// Create creates a new board for its owner.
func (s *BoardService) Create(ctx context.Context, ownerID, title, description string) (*models.Board, error) {
	slog.Info("CreateBoard requested", "owner_id", ownerID, "title", title)

	if err := models.ValidateTitle("title", title); err != nil {
		return nil, err
	}
	if err := models.ValidateDescription("description", description); err != nil {
		return nil, err
	}

	board := &models.Board{OwnerID: ownerID, Title: title, Description: description}
	if err := s.store.CreateBoard(ctx, board); err != nil {
		slog.Error("CreateBoard failed", "owner_id", ownerID, "error", err)
		return nil, err
	}

	slog.Info("Board created", "board_id", board.ID)
	return board, nil
}

// Rename changes a board's title.
func (s *BoardService) Rename(ctx context.Context, boardID, title string) error {
	slog.Info("RenameBoard requested", "board_id", boardID, "title", title)

	if err := models.ValidateTitle("title", title); err != nil {
		return err
	}
	if err := s.store.RenameBoard(ctx, boardID, title); err != nil {
		slog.Error("RenameBoard failed", "board_id", boardID, "error", err)
		return err
	}
	return nil
}

// UpdateDescription changes a board's description.
func (s *BoardService) UpdateDescription(ctx context.Context, boardID, description string) error {
	slog.Info("UpdateBoardDescription requested", "board_id", boardID)

	if err := models.ValidateDescription("description", description); err != nil {
		return err
	}
	if err := s.store.UpdateBoardDescription(ctx, boardID, description); err != nil {
		slog.Error("UpdateBoardDescription failed", "board_id", boardID, "error", err)
		return err
	}
	return nil
}

// Delete destroys a board, its items and their share rows.
func (s *BoardService) Delete(ctx context.Context, boardID string) error {
	slog.Info("DeleteBoard requested", "board_id", boardID)

	if err := s.store.DeleteBoard(ctx, boardID); err != nil {
		slog.Error("DeleteBoard failed", "board_id", boardID, "error", err)
		return err
	}

	slog.Info("Board deleted", "board_id", boardID)
	return nil
}

// Get retrieves one board.
func (s *BoardService) Get(ctx context.Context, boardID string) (*models.Board, error) {
	return s.store.GetBoard(ctx, boardID)
}

// List returns the boards owned by a user, ordered by ID.
func (s *BoardService) List(ctx context.Context, ownerID string) ([]models.Board, error) {
	return s.store.ListBoards(ctx, ownerID)
}
