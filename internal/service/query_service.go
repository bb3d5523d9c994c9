package service

import (
	"context"
	"strings"
	"time"

	"noticeboard/internal/models"
	"noticeboard/internal/storage"
)

// QueryService is the read-only facade composing the owner view with
// the shared view. Expiry windows are evaluated at read time against
// the wall clock; nothing is cached.
type QueryService struct {
	store storage.Store
	now   func() time.Time
}

// NewQueryService creates a new QueryService with the given storage
// backend.
func NewQueryService(store storage.Store) *QueryService {
	return &QueryService{store: store, now: time.Now}
}

// ListVisibleItems returns a board's items visible to the viewer:
// everything for the owner, the shared subset for anyone else.
func (s *QueryService) ListVisibleItems(ctx context.Context, boardID, viewerID string) ([]models.Item, error) {
	return s.store.ListVisibleItems(ctx, boardID, viewerID)
}

// ListBoardsForUser returns the user's owned boards plus groupings of
// the items shared with the user, grouped by their source board with
// live metadata.
func (s *QueryService) ListBoardsForUser(ctx context.Context, userID string) ([]models.BoardView, error) {
	return s.store.ListBoardViews(ctx, userID)
}

// FindExpiringToday returns the visible items whose expiry date is
// today. Items whose expiry date already passed are excluded.
func (s *QueryService) FindExpiringToday(ctx context.Context, userID string) ([]models.Item, error) {
	today := dateOf(s.now())
	return s.findExpiring(ctx, userID, func(d time.Time) bool {
		return d.Equal(today)
	})
}

// FindExpiringBefore returns the visible items whose expiry date falls
// before the given date but has not already passed.
func (s *QueryService) FindExpiringBefore(ctx context.Context, userID string, date time.Time) ([]models.Item, error) {
	today := dateOf(s.now())
	limit := dateOf(date)
	return s.findExpiring(ctx, userID, func(d time.Time) bool {
		return d.Before(limit) && !d.Before(today)
	})
}

func (s *QueryService) findExpiring(ctx context.Context, userID string, match func(time.Time) bool) ([]models.Item, error) {
	items, err := s.store.ListAllVisibleItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	var out []models.Item
	for _, it := range items {
		if it.Expiry == 0 {
			continue
		}
		if match(dateOf(time.Unix(it.Expiry, 0))) {
			out = append(out, it)
		}
	}
	return out, nil
}

// SearchByTitle returns the visible items whose title contains the
// fragment. The match is a case-sensitive substring.
func (s *QueryService) SearchByTitle(ctx context.Context, userID, fragment string) ([]models.Item, error) {
	items, err := s.store.ListAllVisibleItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	var out []models.Item
	for _, it := range items {
		if strings.Contains(it.Title, fragment) {
			out = append(out, it)
		}
	}
	return out, nil
}

// dateOf truncates a timestamp to its local calendar date.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
