package settings

import "context"

// Repository describes settings persistence needs from use cases.
type Repository interface {
	Get(ctx context.Context) (Settings, error)
	Save(ctx context.Context, s Settings) error
}
