package models

import "time"

// Note is a short text message posted to the board.
// Notes are immutable once stored: they are never edited or deleted.
type Note struct {
	// Key is the monotonic key assigned by the notes service when the note is
	// stored. Ordering by Key is ordering by creation time. Clients never set it.
	Key int64 `json:"key,omitempty"`

	// UID identifies the author account at the time of posting.
	UID string `json:"uid"`

	// Author is a copy of the author's display name at the time of posting,
	// not a live reference to the account.
	Author string `json:"author"`

	// Text is the raw note body.
	Text string `json:"text"`

	// CreatedAt is set by the notes service.
	CreatedAt time.Time `json:"created_at,omitzero"`
}
