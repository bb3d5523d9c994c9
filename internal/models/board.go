package models

// Board represents a named, ordered collection of items owned by one user.
// Board titles are unique per owner.
type Board struct {
	// ID is the unique identifier for the board (UUID format).
	ID string

	// OwnerID is the user who owns the board and every item on it.
	OwnerID string

	// Title is the board name (non-blank, max 128 chars).
	Title string

	// Description is an optional free-text description (max 256 chars).
	Description string

	// CreatedAt is the Unix timestamp when the board was created.
	CreatedAt int64
}

// BoardView is one entry of a user's composite board listing: either a
// board the user owns, or a grouping synthesized from items on someone
// else's board that were shared with the user. Board metadata is always
// the live source-board state, never a cached copy.
type BoardView struct {
	Board Board

	// Shared is true when the viewer does not own the board and sees
	// only the items shared with them.
	Shared bool

	// Items are the board's items visible to the viewer, ordered by
	// position.
	Items []Item
}
