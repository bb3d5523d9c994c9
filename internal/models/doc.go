// Package models defines the core domain models for Noticeboard.
//
// # Models
//
//   - User: a registered account; owns boards and can be granted
//     visibility into other users' items
//   - Board: a named, owned, ordered collection of items
//   - Item: a task-like record with title, completion state, expiry,
//     link, image, color, and a zero-based position inside its board
//   - Share: a non-owning read-visibility grant from an item's owner
//     to another user
//
// # Design Principles
//
//  1. Relationships are ID strings, never pointers, so no entity is
//     reachable through two owning paths.
//  2. Positions inside a board are dense: for n items the position set
//     is exactly {0, ..., n-1} after every completed operation.
//  3. Shared items are never duplicated; visibility is a join resolved
//     at read time against the owner's live state.
//
// The package also holds the attribute validators and the error
// taxonomy every layer above storage speaks.
package models
