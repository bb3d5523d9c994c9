package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"noticeboard/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func createUser(t *testing.T, store *SQLiteStore, username string) *models.User {
	t.Helper()

	user := &models.User{Username: username, PasswordHash: "x"}
	require.NoError(t, store.CreateUser(context.Background(), user))
	return user
}

func createBoard(t *testing.T, store *SQLiteStore, ownerID, title string) *models.Board {
	t.Helper()

	board := &models.Board{OwnerID: ownerID, Title: title}
	require.NoError(t, store.CreateBoard(context.Background(), board))
	return board
}

func createItem(t *testing.T, store *SQLiteStore, boardID, title string) *models.Item {
	t.Helper()

	item := &models.Item{BoardID: boardID, Title: title}
	require.NoError(t, store.CreateItem(context.Background(), item))
	return item
}

// requireOrder asserts that the board holds exactly the given titles at
// positions 0..n-1 in that order, i.e. the dense-position invariant.
func requireOrder(t *testing.T, store *SQLiteStore, boardID string, titles ...string) {
	t.Helper()

	items, err := store.ListItems(context.Background(), boardID)
	require.NoError(t, err)
	require.Len(t, items, len(titles))
	for i, it := range items {
		require.Equal(t, i, it.Position, "position gap at index %d", i)
		require.Equal(t, titles[i], it.Title, "wrong item at position %d", i)
	}
}

func TestBoards(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	owner := createUser(t, store, "alice")

	t.Run("create assigns ID", func(t *testing.T) {
		board := createBoard(t, store, owner.ID, "Work")
		require.NotEmpty(t, board.ID)
		require.NotZero(t, board.CreatedAt)

		got, err := store.GetBoard(ctx, board.ID)
		require.NoError(t, err)
		require.Equal(t, "Work", got.Title)
		require.Equal(t, owner.ID, got.OwnerID)
	})

	t.Run("duplicate title per owner rejected", func(t *testing.T) {
		err := store.CreateBoard(ctx, &models.Board{OwnerID: owner.ID, Title: "Work"})
		require.True(t, models.IsDuplicateTitle(err), "got %v", err)
	})

	t.Run("same title under another owner is fine", func(t *testing.T) {
		other := createUser(t, store, "bob")
		createBoard(t, store, other.ID, "Work")
	})

	t.Run("rename checks uniqueness", func(t *testing.T) {
		board := createBoard(t, store, owner.ID, "Old")
		require.NoError(t, store.RenameBoard(ctx, board.ID, "New"))

		got, err := store.GetBoard(ctx, board.ID)
		require.NoError(t, err)
		require.Equal(t, "New", got.Title)

		err = store.RenameBoard(ctx, board.ID, "Work")
		require.True(t, models.IsDuplicateTitle(err), "got %v", err)
	})

	t.Run("update description", func(t *testing.T) {
		board := createBoard(t, store, owner.ID, "Notes")
		require.NoError(t, store.UpdateBoardDescription(ctx, board.ID, "scratch space"))

		got, err := store.GetBoard(ctx, board.ID)
		require.NoError(t, err)
		require.Equal(t, "scratch space", got.Description)
	})

	t.Run("missing board is NotFound", func(t *testing.T) {
		_, err := store.GetBoard(ctx, "nope")
		require.True(t, models.IsNotFound(err), "got %v", err)
		require.True(t, models.IsNotFound(store.RenameBoard(ctx, "nope", "x")))
		require.True(t, models.IsNotFound(store.UpdateBoardDescription(ctx, "nope", "x")))
		require.True(t, models.IsNotFound(store.DeleteBoard(ctx, "nope")))
	})

	t.Run("list is ordered by id", func(t *testing.T) {
		boards, err := store.ListBoards(ctx, owner.ID)
		require.NoError(t, err)
		require.NotEmpty(t, boards)
		for i := 1; i < len(boards); i++ {
			require.Less(t, boards[i-1].ID, boards[i].ID)
		}
	})
}

func TestDeleteBoardCascades(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	owner := createUser(t, store, "alice")
	friend := createUser(t, store, "bob")

	board := createBoard(t, store, owner.ID, "Work")
	item := createItem(t, store, board.ID, "T1")
	require.NoError(t, store.CreateShare(ctx, item.ID, friend.ID))

	require.NoError(t, store.DeleteBoard(ctx, board.ID))

	_, err := store.GetItem(ctx, item.ID)
	require.True(t, models.IsNotFound(err), "item should be gone, got %v", err)

	// The share row went with the item: nothing is visible anymore.
	items, err := store.ListAllVisibleItems(ctx, friend.ID)
	require.NoError(t, err)
	require.Empty(t, items)
}
