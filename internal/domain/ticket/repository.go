package ticket

import "context"

// Repository persists tickets. GetBySID and Delete return a NOT_FOUND
// application error when no ticket carries the given ID; any other failure
// is returned as-is for the caller to classify.
type Repository interface {
	Save(ctx context.Context, t *Ticket) error

	// ApplyUpdate writes only the fields present on the update, leaving
	// every other stored attribute untouched, and refreshes updated_at.
	ApplyUpdate(ctx context.Context, sid string, u Update) error

	GetBySID(ctx context.Context, sid string) (*Ticket, error)

	// List returns every ticket, newest first. No pagination: callers
	// receive the entire result set.
	List(ctx context.Context) ([]*Ticket, error)

	// ListByOwner returns the tickets owned by the given username via the
	// owner secondary index, newest first.
	ListByOwner(ctx context.Context, owner string) ([]*Ticket, error)

	Delete(ctx context.Context, sid string) error
}
