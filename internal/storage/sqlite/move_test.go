package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"noticeboard/internal/models"
)

func TestMoveItemToBoard(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*SQLiteStore, *models.Board, *models.Board, *models.Item) {
		store := newTestStore(t)
		owner := createUser(t, store, "alice")
		work := createBoard(t, store, owner.ID, "Work")
		home := createBoard(t, store, owner.ID, "Home")
		createItem(t, store, work.ID, "T1")
		t2 := createItem(t, store, work.ID, "T2")
		createItem(t, store, work.ID, "T3")
		return store, work, home, t2
	}

	t.Run("transfer appends at target tail and closes source gap", func(t *testing.T) {
		store, work, home, t2 := setup(t)
		createItem(t, store, home.ID, "H1")

		require.NoError(t, store.MoveItemToBoard(ctx, t2.ID, work.ID, home.ID))

		requireOrder(t, store, work.ID, "T1", "T3")
		requireOrder(t, store, home.ID, "H1", "T2")

		moved, err := store.GetItem(ctx, t2.ID)
		require.NoError(t, err)
		require.Equal(t, home.ID, moved.BoardID)
		require.Equal(t, 1, moved.Position)
	})

	t.Run("same source and target is a no-op", func(t *testing.T) {
		store, work, _, t2 := setup(t)

		require.NoError(t, store.MoveItemToBoard(ctx, t2.ID, work.ID, work.ID))
		requireOrder(t, store, work.ID, "T1", "T2", "T3")
	})

	t.Run("duplicate title in target aborts with no partial effect", func(t *testing.T) {
		store, work, home, t2 := setup(t)
		createItem(t, store, home.ID, "T2")

		err := store.MoveItemToBoard(ctx, t2.ID, work.ID, home.ID)
		require.True(t, models.IsDuplicateTitle(err), "got %v", err)

		// Neither board changed: no item in both, none in neither.
		requireOrder(t, store, work.ID, "T1", "T2", "T3")
		requireOrder(t, store, home.ID, "T2")

		kept, err := store.GetItem(ctx, t2.ID)
		require.NoError(t, err)
		require.Equal(t, work.ID, kept.BoardID)
		require.Equal(t, 1, kept.Position)
	})

	t.Run("target owned by another user is rejected", func(t *testing.T) {
		store, work, _, t2 := setup(t)
		bob := createUser(t, store, "bob")
		bobs := createBoard(t, store, bob.ID, "Bobs")

		err := store.MoveItemToBoard(ctx, t2.ID, work.ID, bobs.ID)
		require.True(t, models.IsInvalidAttribute(err), "got %v", err)

		// Nothing moved and the item's owner still matches its board's.
		requireOrder(t, store, work.ID, "T1", "T2", "T3")
		requireOrder(t, store, bobs.ID)

		kept, err := store.GetItem(ctx, t2.ID)
		require.NoError(t, err)
		require.Equal(t, work.ID, kept.BoardID)
		require.Equal(t, work.OwnerID, kept.OwnerID)
	})

	t.Run("missing target board is NotFound", func(t *testing.T) {
		store, work, _, t2 := setup(t)

		err := store.MoveItemToBoard(ctx, t2.ID, work.ID, "nope")
		require.True(t, models.IsNotFound(err), "got %v", err)
		requireOrder(t, store, work.ID, "T1", "T2", "T3")
	})

	t.Run("item not on the claimed source board is NotFound", func(t *testing.T) {
		store, work, home, t2 := setup(t)

		err := store.MoveItemToBoard(ctx, t2.ID, home.ID, work.ID)
		require.True(t, models.IsNotFound(err), "got %v", err)
		requireOrder(t, store, work.ID, "T1", "T2", "T3")
	})
}
