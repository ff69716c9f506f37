package media

import "context"

// File is one stored media entry: the blob plus the metadata echoed back into
// a match's media list.
type File struct {
	ID   string
	Name string
	Type string
	Blob []byte
}

// Store is the external binary media store the match lifecycle reconciles
// against. Blob content never lives inline in a match record, only the id.
type Store interface {
	Save(ctx context.Context, f File) error
	// Get returns ok=false when no blob exists under id.
	Get(ctx context.Context, id string) (File, bool, error)
	DeleteOne(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) error
}
