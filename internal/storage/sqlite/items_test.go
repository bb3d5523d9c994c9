package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"noticeboard/internal/models"
)

func TestCreateItemAppendsAtTail(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	owner := createUser(t, store, "alice")
	board := createBoard(t, store, owner.ID, "Work")

	for i, title := range []string{"T1", "T2", "T3"} {
		item := createItem(t, store, board.ID, title)
		require.Equal(t, i, item.Position)
		require.Equal(t, owner.ID, item.OwnerID, "item owner follows the board owner")
	}
	requireOrder(t, store, board.ID, "T1", "T2", "T3")

	t.Run("duplicate title within board rejected", func(t *testing.T) {
		err := store.CreateItem(ctx, &models.Item{BoardID: board.ID, Title: "T2"})
		require.True(t, models.IsDuplicateTitle(err), "got %v", err)
		requireOrder(t, store, board.ID, "T1", "T2", "T3")
	})

	t.Run("same title on another board is fine", func(t *testing.T) {
		other := createBoard(t, store, owner.ID, "Home")
		item := createItem(t, store, other.ID, "T2")
		require.Equal(t, 0, item.Position)
	})

	t.Run("missing board is NotFound", func(t *testing.T) {
		err := store.CreateItem(ctx, &models.Item{BoardID: "nope", Title: "X"})
		require.True(t, models.IsNotFound(err), "got %v", err)
	})
}

func TestUpdateItem(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	owner := createUser(t, store, "alice")
	board := createBoard(t, store, owner.ID, "Work")
	item := createItem(t, store, board.ID, "T1")
	createItem(t, store, board.ID, "T2")

	str := func(s string) *string { return &s }

	t.Run("patch updates only set fields", func(t *testing.T) {
		done := true
		expiry := int64(1900000000)
		err := store.UpdateItem(ctx, item.ID, models.ItemPatch{
			Completed:   &done,
			Description: str("write the report"),
			Expiry:      &expiry,
			Color:       str("#FF8800"),
		})
		require.NoError(t, err)

		got, err := store.GetItem(ctx, item.ID)
		require.NoError(t, err)
		require.Equal(t, "T1", got.Title)
		require.True(t, got.Completed)
		require.Equal(t, "write the report", got.Description)
		require.Equal(t, expiry, got.Expiry)
		require.Equal(t, "#FF8800", got.Color)
	})

	t.Run("title change re-checks uniqueness in the board", func(t *testing.T) {
		err := store.UpdateItem(ctx, item.ID, models.ItemPatch{Title: str("T2")})
		require.True(t, models.IsDuplicateTitle(err), "got %v", err)

		require.NoError(t, store.UpdateItem(ctx, item.ID, models.ItemPatch{Title: str("T1b")}))
		got, err := store.GetItem(ctx, item.ID)
		require.NoError(t, err)
		require.Equal(t, "T1b", got.Title)
	})

	t.Run("keeping the current title is not a duplicate", func(t *testing.T) {
		require.NoError(t, store.UpdateItem(ctx, item.ID, models.ItemPatch{Title: str("T1b")}))
	})

	t.Run("missing item is NotFound", func(t *testing.T) {
		err := store.UpdateItem(ctx, "nope", models.ItemPatch{Title: str("X")})
		require.True(t, models.IsNotFound(err), "got %v", err)
	})
}

func TestMoveWithinBoard(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	owner := createUser(t, store, "alice")
	board := createBoard(t, store, owner.ID, "Work")
	t1 := createItem(t, store, board.ID, "T1")
	createItem(t, store, board.ID, "T2")
	t3 := createItem(t, store, board.ID, "T3")

	t.Run("move tail to head", func(t *testing.T) {
		require.NoError(t, store.MoveItemWithinBoard(ctx, t3.ID, 0))
		requireOrder(t, store, board.ID, "T3", "T1", "T2")
	})

	t.Run("move head to tail", func(t *testing.T) {
		require.NoError(t, store.MoveItemWithinBoard(ctx, t3.ID, 2))
		requireOrder(t, store, board.ID, "T1", "T2", "T3")
	})

	t.Run("move to own position is a no-op", func(t *testing.T) {
		require.NoError(t, store.MoveItemWithinBoard(ctx, t1.ID, 0))
		requireOrder(t, store, board.ID, "T1", "T2", "T3")
	})

	t.Run("target outside [0, n) rejected", func(t *testing.T) {
		err := store.MoveItemWithinBoard(ctx, t1.ID, 3)
		require.True(t, models.IsInvalidAttribute(err), "got %v", err)
		err = store.MoveItemWithinBoard(ctx, t1.ID, -1)
		require.True(t, models.IsInvalidAttribute(err), "got %v", err)
		requireOrder(t, store, board.ID, "T1", "T2", "T3")
	})

	t.Run("missing item is NotFound", func(t *testing.T) {
		err := store.MoveItemWithinBoard(ctx, "nope", 0)
		require.True(t, models.IsNotFound(err), "got %v", err)
	})
}

func TestDeleteItemRenormalizes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	owner := createUser(t, store, "alice")
	board := createBoard(t, store, owner.ID, "Work")
	createItem(t, store, board.ID, "T1")
	t2 := createItem(t, store, board.ID, "T2")
	createItem(t, store, board.ID, "T3")

	require.NoError(t, store.DeleteItem(ctx, t2.ID))
	requireOrder(t, store, board.ID, "T1", "T3")

	err := store.DeleteItem(ctx, t2.ID)
	require.True(t, models.IsNotFound(err), "got %v", err)
}
