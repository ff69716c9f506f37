package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/armando-couceiro/team-balance/internal/domain/balance"
	"github.com/armando-couceiro/team-balance/internal/domain/match"
	"github.com/armando-couceiro/team-balance/internal/domain/media"
	"github.com/armando-couceiro/team-balance/internal/domain/player"
	"github.com/armando-couceiro/team-balance/internal/infrastructure/repository/memory"
	idgen "github.com/armando-couceiro/team-balance/internal/platform/id"
	"github.com/armando-couceiro/team-balance/internal/platform/logging"
)

// mockMediaStore is a testify mock over media.Store.
type mockMediaStore struct {
	mock.Mock
}

func (m *mockMediaStore) Save(ctx context.Context, f media.File) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *mockMediaStore) Get(ctx context.Context, id string) (media.File, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(media.File), args.Bool(1), args.Error(2)
}

func (m *mockMediaStore) DeleteOne(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockMediaStore) DeleteMany(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func newMatchFixture(store media.Store) *MatchService {
	repo := memory.NewMatchRepository()
	base := time.Date(2026, 8, 15, 21, 0, 0, 0, time.UTC)
	seq := idgen.NewTimestampGeneratorAt(func() time.Time { return base })
	svc := NewMatchService(repo, store, seq, idgen.NewRandomGenerator(), logging.NewNop())
	svc.now = func() time.Time { return base }
	return svc
}

func balancedResult() balance.Result {
	return balance.Result{
		Team1:     []player.Player{rosterPlayer("p40", 8), rosterPlayer("p30", 6)},
		Team2:     []player.Player{rosterPlayer("p35", 7), rosterPlayer("p25", 5)},
		Team1Name: "Equipo 1",
		Team2Name: "Equipo 2",
	}
}

func TestSavePending(t *testing.T) {
	ctx := context.Background()
	svc := newMatchFixture(new(mockMediaStore))

	pending, err := svc.SavePending(ctx, balancedResult())
	if err != nil {
		t.Fatalf("save pending: %v", err)
	}
	if pending.ID == 0 {
		t.Fatal("expected minted id")
	}
	if pending.Team1Name != "Equipo 1" || len(pending.Team1) != 2 {
		t.Fatalf("expected side snapshot, got %+v", pending)
	}

	list, _ := svc.ListPending(ctx)
	if len(list) != 1 {
		t.Fatalf("expected one pending match, got %d", len(list))
	}
}

func TestSavePendingRequiresBothSides(t *testing.T) {
	svc := newMatchFixture(new(mockMediaStore))

	res := balancedResult()
	res.Team2 = nil
	if _, err := svc.SavePending(context.Background(), res); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDeletePending(t *testing.T) {
	ctx := context.Background()
	svc := newMatchFixture(new(mockMediaStore))

	pending, err := svc.SavePending(ctx, balancedResult())
	if err != nil {
		t.Fatalf("save pending: %v", err)
	}

	if err := svc.DeletePending(ctx, pending.ID); err != nil {
		t.Fatalf("delete pending: %v", err)
	}
	if err := svc.DeletePending(ctx, pending.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveMatchDirect(t *testing.T) {
	ctx := context.Background()
	svc := newMatchFixture(new(mockMediaStore))

	m, err := svc.SaveMatch(ctx, SaveMatchInput{
		Team1: SideInput{Name: "Equipo 1", Players: []string{"a", "b"}, Goals: 3},
		Team2: SideInput{Name: "Equipo 2", Players: []string{"c", "d"}, Goals: 1},
		Scorers: []match.Attribution{
			{Team: match.Team1, Player: "a"},
		},
	})
	if err != nil {
		t.Fatalf("save match: %v", err)
	}
	if m.Winner() != match.Team1 {
		t.Fatalf("expected team1 win, got %v", m.Winner())
	}

	list, _ := svc.ListMatches(ctx)
	if len(list) != 1 || list[0].ID != m.ID {
		t.Fatalf("expected match in history, got %+v", list)
	}
}

func TestSaveMatchNegativeGoals(t *testing.T) {
	svc := newMatchFixture(new(mockMediaStore))

	_, err := svc.SaveMatch(context.Background(), SaveMatchInput{
		Team1: SideInput{Name: "a", Players: []string{"x"}, Goals: -1},
		Team2: SideInput{Name: "b", Players: []string{"y"}},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSaveMatchConsumesPending(t *testing.T) {
	ctx := context.Background()
	svc := newMatchFixture(new(mockMediaStore))

	pending, err := svc.SavePending(ctx, balancedResult())
	if err != nil {
		t.Fatalf("save pending: %v", err)
	}

	input := SaveMatchInput{
		Team1:     SideInput{Name: "Equipo 1", Players: []string{"p40", "p30"}, Goals: 2},
		Team2:     SideInput{Name: "Equipo 2", Players: []string{"p35", "p25"}, Goals: 2},
		PendingID: pending.ID,
	}
	m, err := svc.SaveMatch(ctx, input)
	if err != nil {
		t.Fatalf("save match: %v", err)
	}
	if m.PendingID != pending.ID {
		t.Fatalf("expected origin recorded, got %d", m.PendingID)
	}

	left, _ := svc.ListPending(ctx)
	if len(left) != 0 {
		t.Fatalf("expected pending consumed, got %d left", len(left))
	}

	// The consumed pending cannot back a second result.
	if _, err := svc.SaveMatch(ctx, input); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveMatchStoresMediaFirst(t *testing.T) {
	ctx := context.Background()
	store := new(mockMediaStore)
	store.On("Save", mock.Anything, mock.Anything).Return(nil)
	svc := newMatchFixture(store)

	m, err := svc.SaveMatch(ctx, SaveMatchInput{
		Team1: SideInput{Name: "a", Players: []string{"x"}, Goals: 1},
		Team2: SideInput{Name: "b", Players: []string{"y"}, Goals: 0},
		Media: []MediaUpload{
			{Name: "gol.mp4", Type: match.MediaVideo, Blob: []byte("v")},
			{Name: "festejo.png", Type: match.MediaImage, Blob: []byte("i")},
		},
	})
	if err != nil {
		t.Fatalf("save match: %v", err)
	}

	if len(m.Media) != 2 {
		t.Fatalf("expected 2 media refs, got %d", len(m.Media))
	}
	// Upload order is preserved in the record.
	if m.Media[0].Name != "gol.mp4" || m.Media[1].Name != "festejo.png" {
		t.Fatalf("expected upload order kept, got %+v", m.Media)
	}
	store.AssertNumberOfCalls(t, "Save", 2)
}

func TestSaveMatchOmitsFailedMedia(t *testing.T) {
	ctx := context.Background()
	store := new(mockMediaStore)
	store.On("Save", mock.Anything, mock.MatchedBy(func(f media.File) bool {
		return f.Name == "roto.mp4"
	})).Return(errors.New("disk full"))
	store.On("Save", mock.Anything, mock.Anything).Return(nil)
	svc := newMatchFixture(store)

	m, err := svc.SaveMatch(ctx, SaveMatchInput{
		Team1: SideInput{Name: "a", Players: []string{"x"}, Goals: 1},
		Team2: SideInput{Name: "b", Players: []string{"y"}, Goals: 0},
		Media: []MediaUpload{
			{Name: "roto.mp4", Type: match.MediaVideo, Blob: []byte("v")},
			{Name: "festejo.png", Type: match.MediaImage, Blob: []byte("i")},
		},
	})
	if err != nil {
		t.Fatalf("save match: %v", err)
	}

	if len(m.Media) != 1 || m.Media[0].Name != "festejo.png" {
		t.Fatalf("expected failed upload omitted, got %+v", m.Media)
	}
}

func TestDeleteMatchCleansMedia(t *testing.T) {
	ctx := context.Background()
	store := new(mockMediaStore)
	store.On("Save", mock.Anything, mock.Anything).Return(nil)
	store.On("DeleteMany", mock.Anything, mock.Anything).Return(nil)
	svc := newMatchFixture(store)

	m, err := svc.SaveMatch(ctx, SaveMatchInput{
		Team1: SideInput{Name: "a", Players: []string{"x"}, Goals: 1},
		Team2: SideInput{Name: "b", Players: []string{"y"}, Goals: 0},
		Media: []MediaUpload{{Name: "gol.mp4", Type: match.MediaVideo, Blob: []byte("v")}},
	})
	if err != nil {
		t.Fatalf("save match: %v", err)
	}

	if err := svc.DeleteMatch(ctx, m.ID); err != nil {
		t.Fatalf("delete match: %v", err)
	}

	store.AssertCalled(t, "DeleteMany", mock.Anything, m.MediaIDs())
	if list, _ := svc.ListMatches(ctx); len(list) != 0 {
		t.Fatalf("expected history empty, got %d", len(list))
	}
}

func TestDeleteMatchSurvivesMediaFailure(t *testing.T) {
	ctx := context.Background()
	store := new(mockMediaStore)
	store.On("Save", mock.Anything, mock.Anything).Return(nil)
	store.On("DeleteMany", mock.Anything, mock.Anything).Return(errors.New("io error"))
	svc := newMatchFixture(store)

	m, err := svc.SaveMatch(ctx, SaveMatchInput{
		Team1: SideInput{Name: "a", Players: []string{"x"}, Goals: 1},
		Team2: SideInput{Name: "b", Players: []string{"y"}, Goals: 0},
		Media: []MediaUpload{{Name: "gol.mp4", Type: match.MediaVideo, Blob: []byte("v")}},
	})
	if err != nil {
		t.Fatalf("save match: %v", err)
	}

	// Blob cleanup is best-effort; the record still goes away.
	if err := svc.DeleteMatch(ctx, m.ID); err != nil {
		t.Fatalf("delete match: %v", err)
	}
	if list, _ := svc.ListMatches(ctx); len(list) != 0 {
		t.Fatalf("expected history empty, got %d", len(list))
	}
}

func TestDeleteMatchNotFound(t *testing.T) {
	svc := newMatchFixture(new(mockMediaStore))
	if err := svc.DeleteMatch(context.Background(), 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetMediaWrapsStoreErrors(t *testing.T) {
	store := new(mockMediaStore)
	store.On("Get", mock.Anything, "x").Return(media.File{}, false, errors.New("io error"))
	svc := newMatchFixture(store)

	if _, _, err := svc.GetMedia(context.Background(), "x"); !errors.Is(err, ErrMediaIO) {
		t.Fatalf("expected ErrMediaIO, got %v", err)
	}
}
