package media

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"

	"github.com/armando-couceiro/team-balance/internal/domain/media"
	"github.com/armando-couceiro/team-balance/internal/platform/logging"
)

const deleteWorkers = 4

type metadata struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// FSStore keeps media blobs on the local filesystem, one blob plus one JSON
// metadata sidecar per id.
type FSStore struct {
	dir    string
	logger *logging.Logger
}

func NewFSStore(dir string, logger *logging.Logger) (*FSStore, error) {
	if dir == "" {
		return nil, crerr.New("media dir cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, crerr.Wrapf(err, "create media dir %s", dir)
	}

	return &FSStore{dir: dir, logger: logger}, nil
}

func (s *FSStore) Save(_ context.Context, f media.File) error {
	if f.ID == "" {
		return crerr.New("media id cannot be empty")
	}

	meta, err := sonic.Marshal(metadata{Name: f.Name, Type: f.Type})
	if err != nil {
		return crerr.Wrapf(err, "encode media metadata %s", f.ID)
	}

	if err := os.WriteFile(s.blobPath(f.ID), f.Blob, 0o644); err != nil {
		return crerr.Wrapf(err, "write media blob %s", f.ID)
	}
	if err := os.WriteFile(s.metaPath(f.ID), meta, 0o644); err != nil {
		return crerr.Wrapf(err, "write media metadata %s", f.ID)
	}

	return nil
}

func (s *FSStore) Get(_ context.Context, id string) (media.File, bool, error) {
	blob, err := os.ReadFile(s.blobPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return media.File{}, false, nil
		}
		return media.File{}, false, crerr.Wrapf(err, "read media blob %s", id)
	}

	raw, err := os.ReadFile(s.metaPath(id))
	if err != nil {
		return media.File{}, false, crerr.Wrapf(err, "read media metadata %s", id)
	}

	var meta metadata
	if err := sonic.Unmarshal(raw, &meta); err != nil {
		return media.File{}, false, crerr.Wrapf(err, "decode media metadata %s", id)
	}

	return media.File{ID: id, Name: meta.Name, Type: meta.Type, Blob: blob}, true, nil
}

func (s *FSStore) DeleteOne(_ context.Context, id string) error {
	return s.remove(id)
}

// DeleteMany removes blobs concurrently. Individual failures are logged and
// folded into one returned error; callers deleting a match treat that as
// best-effort cleanup.
func (s *FSStore) DeleteMany(_ context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	pool, err := ants.NewPool(deleteWorkers)
	if err != nil {
		return crerr.Wrap(err, "create media delete pool")
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, id := range ids {
		id := id
		wg.Add(1)
		if submitErr := pool.Submit(func() {
			defer wg.Done()
			if err := s.remove(id); err != nil {
				s.logger.Warn("media delete failed", "id", id, "error", err)
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}); submitErr != nil {
			wg.Done()
			return crerr.Wrap(submitErr, "submit media delete task")
		}
	}
	wg.Wait()

	return firstErr
}

func (s *FSStore) remove(id string) error {
	if err := os.Remove(s.blobPath(id)); err != nil && !os.IsNotExist(err) {
		return crerr.Wrapf(err, "remove media blob %s", id)
	}
	if err := os.Remove(s.metaPath(id)); err != nil && !os.IsNotExist(err) {
		return crerr.Wrapf(err, "remove media metadata %s", id)
	}
	return nil
}

func (s *FSStore) blobPath(id string) string {
	return filepath.Join(s.dir, id+".bin")
}

func (s *FSStore) metaPath(id string) string {
	return filepath.Join(s.dir, id+".json")
}
