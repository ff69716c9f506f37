package player

import "context"

// Repository describes roster persistence needs from use cases.
// Implementations never store temp players.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByName(ctx context.Context, name ID) (Player, bool, error)
	Add(ctx context.Context, p Player) error
	// Update matches by previousName, which equals p.Name unless the call renames.
	Update(ctx context.Context, previousName ID, p Player) error
	Delete(ctx context.Context, name ID) error
	// Owner returns the single player flagged as the device owner, if any.
	Owner(ctx context.Context) (Player, bool, error)
}
