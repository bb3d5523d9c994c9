package service

import (
	"context"
	"log/slog"

	"noticeboard/internal/models"
	"noticeboard/internal/storage"
)

// ItemService is the ordering engine: it manages items inside a board
// and keeps the position sequence dense after every operation.
type ItemService struct {
	store storage.Store
}

// NewItemService creates a new ItemService with the given storage backend.
func NewItemService(store storage.Store) *ItemService {
	return &ItemService{store: store}
}

// Create validates the attributes and appends a new item at the tail
// of the board.
func (s *ItemService) Create(ctx context.Context, boardID string, attrs models.ItemAttrs) (*models.Item, error) {
	slog.Info("CreateItem requested", "board_id", boardID, "title", attrs.Title)

	if err := attrs.Validate(); err != nil {
		return nil, err
	}

	item := &models.Item{
		BoardID:     boardID,
		Title:       attrs.Title,
		Completed:   attrs.Completed,
		Description: attrs.Description,
		ActivityURL: attrs.ActivityURL,
		ImageURL:    attrs.ImageURL,
		Expiry:      attrs.Expiry,
		Color:       attrs.Color,
	}
	if err := s.store.CreateItem(ctx, item); err != nil {
		slog.Error("CreateItem failed", "board_id", boardID, "error", err)
		return nil, err
	}

	slog.Info("Item created", "item_id", item.ID, "position", item.Position)
	return item, nil
}

// Update applies a partial attribute update, with the same per-field
// validation as creation.
func (s *ItemService) Update(ctx context.Context, itemID string, patch models.ItemPatch) error {
	slog.Info("UpdateItem requested", "item_id", itemID)

	if err := patch.Validate(); err != nil {
		return err
	}
	if err := s.store.UpdateItem(ctx, itemID, patch); err != nil {
		slog.Error("UpdateItem failed", "item_id", itemID, "error", err)
		return err
	}
	return nil
}

// MoveWithinBoard reorders an item to target inside its board,
// insert-before semantics.
func (s *ItemService) MoveWithinBoard(ctx context.Context, itemID string, target int) error {
	slog.Info("MoveWithinBoard requested", "item_id", itemID, "target", target)

	if err := s.store.MoveItemWithinBoard(ctx, itemID, target); err != nil {
		slog.Error("MoveWithinBoard failed", "item_id", itemID, "error", err)
		return err
	}
	return nil
}

// Delete destroys an item, its share rows, and renormalizes the
// positions of the items that followed it.
func (s *ItemService) Delete(ctx context.Context, itemID string) error {
	slog.Info("DeleteItem requested", "item_id", itemID)

	if err := s.store.DeleteItem(ctx, itemID); err != nil {
		slog.Error("DeleteItem failed", "item_id", itemID, "error", err)
		return err
	}

	slog.Info("Item deleted", "item_id", itemID)
	return nil
}

// Get retrieves one item.
func (s *ItemService) Get(ctx context.Context, itemID string) (*models.Item, error) {
	return s.store.GetItem(ctx, itemID)
}
