package store

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// WishlistStore is the set of saved product IDs, kept in the order they
// were saved.
type WishlistStore struct {
	mu  sync.Mutex
	ids []uuid.UUID
}

func NewWishlistStore() *WishlistStore {
	return &WishlistStore{}
}

// Toggle saves id or, if already saved, removes it. It reports whether id
// is saved afterwards.
func (w *WishlistStore) Toggle(id uuid.UUID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i := slices.Index(w.ids, id); i >= 0 {
		w.ids = slices.Delete(w.ids, i, i+1)
		return false
	}
	w.ids = append(w.ids, id)
	return true
}

func (w *WishlistStore) Has(id uuid.UUID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Contains(w.ids, id)
}

func (w *WishlistStore) IDs() []uuid.UUID {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.ids)
}

func (w *WishlistStore) Clear() {
	w.mu.Lock()
	w.ids = nil
	w.mu.Unlock()
}
