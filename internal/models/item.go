package models

// Item represents a single task-like record on a board.
// Item titles are unique within their board.
type Item struct {
	// ID is the unique identifier for the item (UUID format).
	ID string

	// BoardID is the board the item currently belongs to. An item
	// belongs to exactly one board at any instant.
	BoardID string

	// OwnerID is the owning user, always equal to the parent board's
	// owner.
	OwnerID string

	// Title is the item name (non-blank, max 128 chars).
	Title string

	// Completed marks the item as done.
	Completed bool

	// Description is an optional free-text description (max 256 chars).
	Description string

	// ActivityURL is an optional link related to the item
	// (max 2048 chars, URL-shaped when non-empty).
	ActivityURL string

	// ImageURL is an optional image reference (max 2048 chars,
	// URL-shaped when non-empty).
	ImageURL string

	// Expiry is the optional expiry as a Unix timestamp; 0 means the
	// item never expires.
	Expiry int64

	// Color is an optional display color, "#RRGGBB" or empty.
	Color string

	// Position is the zero-based rank of the item inside its board.
	// Positions within a board are dense: {0, ..., n-1} for n items.
	Position int

	// CreatedAt is the Unix timestamp when the item was created.
	CreatedAt int64
}

// ItemAttrs carries the caller-settable attributes for item creation.
type ItemAttrs struct {
	Title       string
	Completed   bool
	Description string
	ActivityURL string
	ImageURL    string
	Expiry      int64
	Color       string
}

// ItemPatch carries a partial item update. Nil fields are left
// untouched; set fields are validated exactly like on creation.
type ItemPatch struct {
	Title       *string
	Completed   *bool
	Description *string
	ActivityURL *string
	ImageURL    *string
	Expiry      *int64
	Color       *string
}

// Share represents a read-visibility grant of one item to one user.
// The user is never the item's owner, and the pair is unique.
type Share struct {
	UserID    string
	ItemID    string
	CreatedAt int64
}
