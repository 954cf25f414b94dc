package message

import "context"

// Repository persists messages. GetBySID and Delete return a NOT_FOUND
// application error when no message carries the given ID.
type Repository interface {
	Save(ctx context.Context, m *Message) error
	GetBySID(ctx context.Context, sid string) (*Message, error)

	// ListByTicket returns every message under the given ticket via the
	// ticket secondary index, oldest first (thread order).
	ListByTicket(ctx context.Context, ticketSID string) ([]*Message, error)

	Delete(ctx context.Context, sid string) error
	DeleteByTicket(ctx context.Context, ticketSID string) error
}
