package savedteam

import "context"

// Repository describes saved-team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]SavedTeam, error)
	GetByID(ctx context.Context, id int64) (SavedTeam, bool, error)
	Add(ctx context.Context, t SavedTeam) error
	Update(ctx context.Context, t SavedTeam) error
	Delete(ctx context.Context, id int64) error
}
