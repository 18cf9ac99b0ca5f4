package repositories

import (
	"sync"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/models"
)

// MemoryStore is a key-value store over entities, keyed by EntityID.
// Values are stored and returned by copy.
type MemoryStore[T models.Entity] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

func NewMemoryStore[T models.Entity]() *MemoryStore[T] {
	return &MemoryStore[T]{items: make(map[string]T)}
}

// Add inserts item. It reports false when the id is already taken.
func (s *MemoryStore[T]) Add(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(item)
}

func (s *MemoryStore[T]) addLocked(item T) bool {
	id := item.EntityID()
	if _, ok := s.items[id]; ok {
		return false
	}
	s.items[id] = item
	s.order = append(s.order, id)
	return true
}

func (s *MemoryStore[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	return item, ok
}

// GetAll returns every item in insertion order.
func (s *MemoryStore[T]) GetAll() []T {
	return s.Filter(nil)
}

// Filter returns the items matching keep in insertion order. A nil keep
// matches everything.
func (s *MemoryStore[T]) Filter(keep func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		item := s.items[id]
		if keep == nil || keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Find returns the first item matching match.
func (s *MemoryStore[T]) Find(match func(T) bool) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findLocked(match)
}

func (s *MemoryStore[T]) findLocked(match func(T) bool) (T, bool) {
	for _, id := range s.order {
		if item := s.items[id]; match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Update replaces an existing item. It reports false when the id is unknown.
func (s *MemoryStore[T]) Update(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateLocked(item)
}

func (s *MemoryStore[T]) updateLocked(item T) bool {
	id := item.EntityID()
	if _, ok := s.items[id]; !ok {
		return false
	}
	s.items[id] = item
	return true
}

func (s *MemoryStore[T]) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteLocked(id)
}

func (s *MemoryStore[T]) deleteLocked(id string) bool {
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// DeleteWhere removes every item matching match and returns how many went.
func (s *MemoryStore[T]) DeleteWhere(match func(T) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []string
	for _, id := range s.order {
		if match(s.items[id]) {
			ids = append(ids, id)
		}
	}
	for _, id := range ids {
		s.deleteLocked(id)
	}
	return len(ids)
}

// UpdateWhere rewrites every item matching match through fn.
func (s *MemoryStore[T]) UpdateWhere(match func(T) bool, fn func(T) T) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, id := range s.order {
		if item := s.items[id]; match(item) {
			s.items[id] = fn(item)
			n++
		}
	}
	return n
}

// Len reports how many items are stored.
func (s *MemoryStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// atomically runs fn while holding the write lock.
func (s *MemoryStore[T]) atomically(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}
