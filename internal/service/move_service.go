package service

import (
	"context"
	"log/slog"

	"noticeboard/internal/storage"
)

// MoveCoordinator orchestrates the atomic transfer of one item between
// two boards. The storage layer runs the transfer as a single
// transaction: verify the target, re-home the item at the target tail,
// renormalize the source. A partially completed move cannot be
// observed.
type MoveCoordinator struct {
	store storage.Store
}

// NewMoveCoordinator creates a new MoveCoordinator with the given
// storage backend.
func NewMoveCoordinator(store storage.Store) *MoveCoordinator {
	return &MoveCoordinator{store: store}
}

// MoveToBoard transfers an item from sourceBoardID to targetBoardID.
// Moving a board onto itself is a no-op and touches nothing.
func (c *MoveCoordinator) MoveToBoard(ctx context.Context, itemID, sourceBoardID, targetBoardID string) error {
	if sourceBoardID == targetBoardID {
		return nil
	}

	slog.Info("MoveItemToBoard requested",
		"item_id", itemID,
		"source_board_id", sourceBoardID,
		"target_board_id", targetBoardID,
	)

	if err := c.store.MoveItemToBoard(ctx, itemID, sourceBoardID, targetBoardID); err != nil {
		slog.Error("MoveItemToBoard failed", "item_id", itemID, "error", err)
		return err
	}

	slog.Info("Item moved", "item_id", itemID, "target_board_id", targetBoardID)
	return nil
}
