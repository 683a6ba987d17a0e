package memory

import (
	"context"
	"sync"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
	"github.com/bushboy/bookingswap-sub016/internal/usecase/interfaces"
)

// ItemMemoryLookup serves bookings from memory; Put seeds or replaces one.
type ItemMemoryLookup struct {
	mu    sync.RWMutex
	items map[string]entities.SwapItem
}

var _ interfaces.IItemLookup = (*ItemMemoryLookup)(nil)

func NewItemMemoryLookup(items ...entities.SwapItem) *ItemMemoryLookup {
	l := &ItemMemoryLookup{items: make(map[string]entities.SwapItem, len(items))}
	for _, it := range items {
		l.items[it.ID] = it
	}
	return l
}

func (l *ItemMemoryLookup) Put(item entities.SwapItem) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items[item.ID] = item
}

func (l *ItemMemoryLookup) GetItemByID(_ context.Context, id string) (entities.SwapItem, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.items[id], nil
}
