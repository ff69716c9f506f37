package folder

import "context"

// Repository describes folder persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Folder, error)
	GetByName(ctx context.Context, name string) (Folder, bool, error)
	// Add is a no-op when a folder with the same name already exists.
	Add(ctx context.Context, f Folder) error
	Update(ctx context.Context, f Folder) error
	Delete(ctx context.Context, name string) error
}
