package memory

import (
	"context"
	"sync"

	"github.com/armando-couceiro/team-balance/internal/domain/folder"
)

type FolderRepository struct {
	mu      sync.RWMutex
	folders []folder.Folder
}

func NewFolderRepository(folders []folder.Folder) *FolderRepository {
	return &FolderRepository{folders: append([]folder.Folder(nil), folders...)}
}

func (r *FolderRepository) List(_ context.Context) ([]folder.Folder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]folder.Folder, 0, len(r.folders))
	for _, f := range r.folders {
		out = append(out, cloneFolder(f))
	}

	return out, nil
}

func (r *FolderRepository) GetByName(_ context.Context, name string) (folder.Folder, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.folders {
		if f.Name == name {
			return cloneFolder(f), true, nil
		}
	}

	return folder.Folder{}, false, nil
}

func (r *FolderRepository) Add(_ context.Context, f folder.Folder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.folders {
		if existing.Name == f.Name {
			return nil
		}
	}
	r.folders = append(r.folders, cloneFolder(f))

	return nil
}

func (r *FolderRepository) Update(_ context.Context, f folder.Folder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.folders {
		if r.folders[idx].Name == f.Name {
			r.folders[idx] = cloneFolder(f)
			break
		}
	}

	return nil
}

func (r *FolderRepository) Delete(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.folders[:0]
	for _, f := range r.folders {
		if f.Name != name {
			out = append(out, f)
		}
	}
	r.folders = out

	return nil
}

func cloneFolder(f folder.Folder) folder.Folder {
	copied := f
	copied.Players = append([]string(nil), f.Players...)
	return copied
}
