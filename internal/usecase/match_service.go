package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/armando-couceiro/team-balance/internal/domain/balance"
	"github.com/armando-couceiro/team-balance/internal/domain/match"
	"github.com/armando-couceiro/team-balance/internal/domain/media"
	idgen "github.com/armando-couceiro/team-balance/internal/platform/id"
	"github.com/armando-couceiro/team-balance/internal/platform/logging"
)

const mediaSaveWorkers = 4

// MediaUpload is one attachment handed in with a match result. The blob goes
// to the media store; only the reference lands in the match record.
type MediaUpload struct {
	Name string
	Type match.MediaType
	Blob []byte
}

// SideInput describes one side of a finalized match.
type SideInput struct {
	Name        string
	Players     []string
	Goals       int
	SavedTeamID int64
}

// SaveMatchInput finalizes a match, either directly from a balanced team or by
// promoting a parked pending match (PendingID != 0).
type SaveMatchInput struct {
	Team1       SideInput
	Team2       SideInput
	Scorers     []match.Attribution
	Assists     []match.Attribution
	Highlights  string
	Media       []MediaUpload
	ManualEntry bool
	PendingID   int64
}

// MatchService drives the pending/finalized match lifecycle.
type MatchService struct {
	matchRepo  match.Repository
	mediaStore media.Store
	seq        idgen.SequenceGenerator
	mediaIDs   idgen.Generator
	logger     *logging.Logger
	now        func() time.Time
}

func NewMatchService(
	matchRepo match.Repository,
	mediaStore media.Store,
	seq idgen.SequenceGenerator,
	mediaIDs idgen.Generator,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchService{
		matchRepo:  matchRepo,
		mediaStore: mediaStore,
		seq:        seq,
		mediaIDs:   mediaIDs,
		logger:     logger,
		now:        time.Now,
	}
}

// SavePending parks a balanced fixture for later result entry.
func (s *MatchService) SavePending(ctx context.Context, teams balance.Result) (match.PendingMatch, error) {
	if len(teams.Team1) == 0 || len(teams.Team2) == 0 {
		return match.PendingMatch{}, fmt.Errorf("%w: both sides need players", ErrInvalidInput)
	}

	pending := match.PendingMatch{
		ID:        s.seq.NextID(),
		Date:      s.now().UTC(),
		Team1Name: teams.Team1Name,
		Team2Name: teams.Team2Name,
		Team1:     teams.Team1,
		Team2:     teams.Team2,
	}
	if err := pending.Validate(); err != nil {
		return match.PendingMatch{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.matchRepo.AddPending(ctx, pending); err != nil {
		return match.PendingMatch{}, fmt.Errorf("add pending match: %w", err)
	}

	s.logger.Info("pending match saved", "id", pending.ID)
	return pending, nil
}

// DeletePending drops a parked fixture without a trace.
func (s *MatchService) DeletePending(ctx context.Context, id int64) error {
	if _, exists, err := s.matchRepo.GetPending(ctx, id); err != nil {
		return fmt.Errorf("get pending match: %w", err)
	} else if !exists {
		return fmt.Errorf("%w: pending match %d", ErrNotFound, id)
	}

	return s.matchRepo.DeletePending(ctx, id)
}

func (s *MatchService) ListPending(ctx context.Context) ([]match.PendingMatch, error) {
	return s.matchRepo.ListPending(ctx)
}

// SaveMatch appends a finalized match to history. Media blobs are stored
// first and the match record only references the ones that made it; a failed
// upload is logged and omitted rather than failing the save. When the input
// resolves a pending match, that entry is consumed in the same step.
func (s *MatchService) SaveMatch(ctx context.Context, input SaveMatchInput) (match.Match, error) {
	if input.Team1.Goals < 0 || input.Team2.Goals < 0 {
		return match.Match{}, fmt.Errorf("%w: goals cannot be negative", ErrInvalidInput)
	}

	if input.PendingID != 0 {
		if _, exists, err := s.matchRepo.GetPending(ctx, input.PendingID); err != nil {
			return match.Match{}, fmt.Errorf("get pending match: %w", err)
		} else if !exists {
			return match.Match{}, fmt.Errorf("%w: pending match %d", ErrNotFound, input.PendingID)
		}
	}

	refs, err := s.storeMedia(ctx, input.Media)
	if err != nil {
		return match.Match{}, err
	}

	m := match.Match{
		ID:          s.seq.NextID(),
		Date:        s.now().UTC(),
		Team1:       sideFromInput(input.Team1),
		Team2:       sideFromInput(input.Team2),
		Scorers:     append([]match.Attribution(nil), input.Scorers...),
		Assists:     append([]match.Attribution(nil), input.Assists...),
		Highlights:  input.Highlights,
		Media:       refs,
		ManualEntry: input.ManualEntry,
		PendingID:   input.PendingID,
	}
	if err := m.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if input.PendingID != 0 {
		if err := s.matchRepo.Promote(ctx, input.PendingID, m); err != nil {
			return match.Match{}, fmt.Errorf("promote pending match: %w", err)
		}
	} else if err := s.matchRepo.AddMatch(ctx, m); err != nil {
		return match.Match{}, fmt.Errorf("add match: %w", err)
	}

	s.logger.Info("match saved",
		"id", m.ID,
		"score", fmt.Sprintf("%d-%d", m.Team1.Goals, m.Team2.Goals),
		"media", len(m.Media),
		"pending_id", input.PendingID,
	)

	return m, nil
}

// DeleteMatch removes a finalized match and its media blobs. Blob cleanup is
// best-effort: a media store failure is logged and the record is removed
// anyway, so history never keeps a match whose deletion was requested.
func (s *MatchService) DeleteMatch(ctx context.Context, id int64) error {
	m, exists, err := s.matchRepo.GetMatch(ctx, id)
	if err != nil {
		return fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: match %d", ErrNotFound, id)
	}

	if ids := m.MediaIDs(); len(ids) > 0 {
		if err := s.mediaStore.DeleteMany(ctx, ids); err != nil {
			s.logger.Warn("media cleanup incomplete", "match_id", id, "error", err)
		}
	}

	if err := s.matchRepo.DeleteMatch(ctx, id); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}

	s.logger.Info("match deleted", "id", id)
	return nil
}

func (s *MatchService) ListMatches(ctx context.Context) ([]match.Match, error) {
	return s.matchRepo.ListMatches(ctx)
}

// GetMedia loads one referenced blob for display.
func (s *MatchService) GetMedia(ctx context.Context, id string) (media.File, bool, error) {
	f, ok, err := s.mediaStore.Get(ctx, id)
	if err != nil {
		return media.File{}, false, fmt.Errorf("%w: %v", ErrMediaIO, err)
	}
	return f, ok, nil
}

// storeMedia uploads every attachment concurrently and waits for all of them
// to settle before the caller persists the match, so a saved match never
// carries a dangling reference.
func (s *MatchService) storeMedia(ctx context.Context, uploads []MediaUpload) ([]match.MediaRef, error) {
	if len(uploads) == 0 {
		return nil, nil
	}

	results := make([]*match.MediaRef, len(uploads))
	var mu sync.Mutex

	p := pool.New().WithMaxGoroutines(mediaSaveWorkers)
	for i, upload := range uploads {
		i, upload := i, upload
		p.Go(func() {
			id, err := s.mediaIDs.NewID()
			if err != nil {
				s.logger.Error("media id generation failed", "name", upload.Name, "error", err)
				return
			}
			f := media.File{ID: id, Name: upload.Name, Type: string(upload.Type), Blob: upload.Blob}
			if err := s.mediaStore.Save(ctx, f); err != nil {
				s.logger.Error("media save failed, omitting from match", "name", upload.Name, "error", err)
				return
			}
			mu.Lock()
			results[i] = &match.MediaRef{ID: id, Name: upload.Name, Type: upload.Type}
			mu.Unlock()
		})
	}
	p.Wait()

	refs := make([]match.MediaRef, 0, len(uploads))
	for _, ref := range results {
		if ref != nil {
			refs = append(refs, *ref)
		}
	}

	return refs, nil
}

func sideFromInput(in SideInput) match.TeamSide {
	return match.TeamSide{
		Name:        in.Name,
		Players:     append([]string(nil), in.Players...),
		Goals:       in.Goals,
		SavedTeamID: in.SavedTeamID,
	}
}
