package service

import (
	"context"
	"log/slog"

	"noticeboard/internal/models"
	"noticeboard/internal/storage"
)

// IdentityProvider is the identity collaborator contract: the sharing
// registry only needs to know whether a user exists.
type IdentityProvider interface {
	UserExists(ctx context.Context, id string) (bool, error)
}

// SharingService is the sharing registry. Grants are bare
// (user, item) pairs; the shared item is never copied into the
// sharee's storage, so the sharee always reads the owner's live state.
type SharingService struct {
	store    storage.Store
	identity IdentityProvider
}

// NewSharingService creates a new SharingService with the given
// storage backend and identity provider.
func NewSharingService(store storage.Store, identity IdentityProvider) *SharingService {
	return &SharingService{store: store, identity: identity}
}

// Share grants targetUserID read visibility into itemID.
func (s *SharingService) Share(ctx context.Context, itemID, targetUserID string) error {
	slog.Info("ShareItem requested", "item_id", itemID, "target_user_id", targetUserID)

	exists, err := s.identity.UserExists(ctx, targetUserID)
	if err != nil {
		slog.Error("ShareItem identity check failed", "target_user_id", targetUserID, "error", err)
		return err
	}
	if !exists {
		return &models.NotFoundError{Entity: "user", ID: targetUserID}
	}

	if err := s.store.CreateShare(ctx, itemID, targetUserID); err != nil {
		slog.Error("ShareItem failed", "item_id", itemID, "error", err)
		return err
	}

	slog.Info("Item shared", "item_id", itemID, "target_user_id", targetUserID)
	return nil
}

// Unshare revokes a grant.
func (s *SharingService) Unshare(ctx context.Context, itemID, targetUserID string) error {
	slog.Info("UnshareItem requested", "item_id", itemID, "target_user_id", targetUserID)

	if err := s.store.DeleteShare(ctx, itemID, targetUserID); err != nil {
		slog.Error("UnshareItem failed", "item_id", itemID, "error", err)
		return err
	}

	slog.Info("Item unshared", "item_id", itemID, "target_user_id", targetUserID)
	return nil
}

// ListShares returns the IDs of the users an item is currently shared
// with.
func (s *SharingService) ListShares(ctx context.Context, itemID string) ([]string, error) {
	return s.store.ListShares(ctx, itemID)
}
