// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"noticeboard/internal/models"
)

// Store defines the interface for board, item and sharing persistence.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
//
// Every mutating method is atomic: it either commits completely or has
// no effect. Position invariants (dense {0..n-1} per board) hold after
// every completed call. Errors are the domain taxonomy from the models
// package; unexpected backend faults come back as *models.StorageFaultError.
type Store interface {
	// CreateUser persists a new user. The user.ID field is populated
	// by the store when empty.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves a user by login name.
	// Returns (nil, nil) when no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// UserExists reports whether a user with the given ID exists.
	// This is the identity check consumed by the sharing registry.
	UserExists(ctx context.Context, id string) (bool, error)

	// CreateBoard persists a new board. Fails with DuplicateTitleError
	// when the owner already has a board with that title.
	CreateBoard(ctx context.Context, board *models.Board) error

	// GetBoard retrieves a board by ID.
	GetBoard(ctx context.Context, id string) (*models.Board, error)

	// RenameBoard changes a board's title, re-checking per-owner
	// uniqueness.
	RenameBoard(ctx context.Context, id, title string) error

	// UpdateBoardDescription changes a board's description.
	UpdateBoardDescription(ctx context.Context, id, description string) error

	// DeleteBoard removes a board, cascading to its items and their
	// share rows.
	DeleteBoard(ctx context.Context, id string) error

	// ListBoards returns the boards owned by a user, ordered by ID.
	ListBoards(ctx context.Context, ownerID string) ([]models.Board, error)

	// CreateItem appends a new item at the tail of item.BoardID.
	// The store assigns ID, owner and position.
	CreateItem(ctx context.Context, item *models.Item) error

	// GetItem retrieves an item by ID.
	GetItem(ctx context.Context, id string) (*models.Item, error)

	// UpdateItem applies a patch to an item. Title changes re-check
	// uniqueness within the item's board.
	UpdateItem(ctx context.Context, id string, patch models.ItemPatch) error

	// MoveItemWithinBoard reinserts an item so it ends up at target,
	// shifting the items in between by one slot. Insert-before
	// semantics, target must be in [0, n).
	MoveItemWithinBoard(ctx context.Context, id string, target int) error

	// MoveItemToBoard transfers an item from sourceBoardID to the tail
	// of targetBoardID and closes the position gap it left behind, as
	// one transaction. No-op when the two boards are the same. Both
	// boards must have the same owner; a cross-owner target fails with
	// InvalidAttributeError.
	MoveItemToBoard(ctx context.Context, itemID, sourceBoardID, targetBoardID string) error

	// DeleteItem removes an item and its share rows, then renormalizes
	// the positions of the items that followed it.
	DeleteItem(ctx context.Context, id string) error

	// ListItems returns a board's items ordered by position.
	ListItems(ctx context.Context, boardID string) ([]models.Item, error)

	// CreateShare grants userID read visibility into itemID.
	CreateShare(ctx context.Context, itemID, userID string) error

	// DeleteShare revokes a grant. Fails with ErrNotShared when the
	// pair is absent.
	DeleteShare(ctx context.Context, itemID, userID string) error

	// ListShares returns the IDs of the users an item is shared with.
	ListShares(ctx context.Context, itemID string) ([]string, error)

	// ListVisibleItems returns the items of a board visible to a
	// viewer: all of them for the owner, the shared subset otherwise.
	ListVisibleItems(ctx context.Context, boardID, viewerID string) ([]models.Item, error)

	// ListBoardViews returns the user's owned boards plus groupings
	// synthesized from items shared with the user, metadata live from
	// the source boards.
	ListBoardViews(ctx context.Context, userID string) ([]models.BoardView, error)

	// ListAllVisibleItems returns every item the user owns or has been
	// granted visibility into.
	ListAllVisibleItems(ctx context.Context, userID string) ([]models.Item, error)

	// Close releases any resources held by the store.
	Close() error
}
