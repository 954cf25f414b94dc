package device

import "context"

// Repository persists devices. GetBySID, ApplyUpdate, and Delete return a
// NOT_FOUND application error when no device carries the given ID.
type Repository interface {
	Save(ctx context.Context, d *Device) error
	ApplyUpdate(ctx context.Context, sid string, u Update) error
	GetBySID(ctx context.Context, sid string) (*Device, error)
	List(ctx context.Context) ([]*Device, error)
	Delete(ctx context.Context, sid string) error
}
