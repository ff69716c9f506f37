package match

import "context"

// Repository describes match-history and pending-list persistence needs.
type Repository interface {
	ListMatches(ctx context.Context) ([]Match, error)
	GetMatch(ctx context.Context, id int64) (Match, bool, error)
	AddMatch(ctx context.Context, m Match) error
	DeleteMatch(ctx context.Context, id int64) error

	ListPending(ctx context.Context) ([]PendingMatch, error)
	GetPending(ctx context.Context, id int64) (PendingMatch, bool, error)
	AddPending(ctx context.Context, p PendingMatch) error
	DeletePending(ctx context.Context, id int64) error

	// Promote appends m to history and removes the pending entry with
	// pendingID in one step, so a promoted pending can never survive its match.
	Promote(ctx context.Context, pendingID int64, m Match) error
}
