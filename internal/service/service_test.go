package service

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"noticeboard/internal/models"
	"noticeboard/internal/storage/sqlite"
)

type fixture struct {
	store   *sqlite.SQLiteStore
	boards  *BoardService
	items   *ItemService
	mover   *MoveCoordinator
	sharing *SharingService
	queries *QueryService

	owner  *models.User
	friend *models.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	f := &fixture{
		store:   store,
		boards:  NewBoardService(store),
		items:   NewItemService(store),
		mover:   NewMoveCoordinator(store),
		sharing: NewSharingService(store, store),
		queries: NewQueryService(store),
	}

	ctx := context.Background()
	f.owner = &models.User{Username: "alice", PasswordHash: "x"}
	require.NoError(t, store.CreateUser(ctx, f.owner))
	f.friend = &models.User{Username: "bob", PasswordHash: "x"}
	require.NoError(t, store.CreateUser(ctx, f.friend))
	return f
}

func (f *fixture) board(t *testing.T, title string) *models.Board {
	t.Helper()

	board, err := f.boards.Create(context.Background(), f.owner.ID, title, "")
	require.NoError(t, err)
	return board
}

func (f *fixture) item(t *testing.T, boardID, title string) *models.Item {
	t.Helper()

	item, err := f.items.Create(context.Background(), boardID, models.ItemAttrs{Title: title})
	require.NoError(t, err)
	return item
}

func requireInvalidField(t *testing.T, err error, field string) {
	t.Helper()

	var inv *models.InvalidAttributeError
	require.ErrorAs(t, err, &inv)
	require.Equal(t, field, inv.Field)
}

func TestBoardValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("blank title", func(t *testing.T) {
		_, err := f.boards.Create(ctx, f.owner.ID, "   ", "")
		requireInvalidField(t, err, "title")
	})

	t.Run("overlong title", func(t *testing.T) {
		_, err := f.boards.Create(ctx, f.owner.ID, strings.Repeat("a", 129), "")
		requireInvalidField(t, err, "title")
	})

	t.Run("overlong description", func(t *testing.T) {
		_, err := f.boards.Create(ctx, f.owner.ID, "ok", strings.Repeat("a", 257))
		requireInvalidField(t, err, "description")
	})

	t.Run("rename validates too", func(t *testing.T) {
		board := f.board(t, "Work")
		requireInvalidField(t, f.boards.Rename(ctx, board.ID, ""), "title")
	})
}

func TestItemValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	board := f.board(t, "Work")

	cases := []struct {
		name  string
		attrs models.ItemAttrs
		field string
	}{
		{"blank title", models.ItemAttrs{Title: ""}, "title"},
		{"overlong title", models.ItemAttrs{Title: strings.Repeat("a", 129)}, "title"},
		{"overlong description", models.ItemAttrs{Title: "ok", Description: strings.Repeat("a", 257)}, "description"},
		{"malformed link", models.ItemAttrs{Title: "ok", ActivityURL: "not a url"}, "activity_url"},
		{"overlong link", models.ItemAttrs{Title: "ok", ActivityURL: "https://e.com/" + strings.Repeat("a", 2048)}, "activity_url"},
		{"malformed image", models.ItemAttrs{Title: "ok", ImageURL: "::"}, "image_url"},
		{"bad color", models.ItemAttrs{Title: "ok", Color: "red"}, "color"},
		{"short hex color", models.ItemAttrs{Title: "ok", Color: "#FFF"}, "color"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.items.Create(ctx, board.ID, tc.attrs)
			requireInvalidField(t, err, tc.field)
		})
	}

	t.Run("empty link and color are fine", func(t *testing.T) {
		_, err := f.items.Create(ctx, board.ID, models.ItemAttrs{Title: "plain"})
		require.NoError(t, err)
	})

	t.Run("full attribute set", func(t *testing.T) {
		item, err := f.items.Create(ctx, board.ID, models.ItemAttrs{
			Title:       "rich",
			Description: "with everything",
			ActivityURL: "https://example.com/task",
			ImageURL:    "https://example.com/img.png",
			Expiry:      1900000000,
			Color:       "#00ff00",
		})
		require.NoError(t, err)
		require.Equal(t, "#00ff00", item.Color)
	})

	t.Run("patch validation", func(t *testing.T) {
		item := f.item(t, board.ID, "patchme")
		bad := "nope"
		requireInvalidField(t, f.items.Update(ctx, item.ID, models.ItemPatch{Color: &bad}), "color")
	})
}

func TestMoveCoordinatorNoOp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	board := f.board(t, "Work")
	f.item(t, board.ID, "T1")
	item := f.item(t, board.ID, "T2")

	require.NoError(t, f.mover.MoveToBoard(ctx, item.ID, board.ID, board.ID))

	got, err := f.items.Get(ctx, item.ID)
	require.NoError(t, err)
	require.Equal(t, board.ID, got.BoardID)
	require.Equal(t, 1, got.Position)
	require.Equal(t, "T2", got.Title)
}

func TestSharingServiceChecksIdentity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	board := f.board(t, "Work")
	item := f.item(t, board.ID, "T1")

	t.Run("unknown user is NotFound", func(t *testing.T) {
		err := f.sharing.Share(ctx, item.ID, "ghost")
		require.True(t, models.IsNotFound(err), "got %v", err)
	})

	t.Run("share round trip", func(t *testing.T) {
		require.NoError(t, f.sharing.Share(ctx, item.ID, f.friend.ID))

		userIDs, err := f.sharing.ListShares(ctx, item.ID)
		require.NoError(t, err)
		require.Equal(t, []string{f.friend.ID}, userIDs)

		require.NoError(t, f.sharing.Unshare(ctx, item.ID, f.friend.ID))
		userIDs, err = f.sharing.ListShares(ctx, item.ID)
		require.NoError(t, err)
		require.Empty(t, userIDs)
	})
}
