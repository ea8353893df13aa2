package journal

import (
	"context"
	"sort"
	"sync"
)

// MemStore is an in-memory Store for tests and journal-less development
// runs. It is safe for concurrent use.
type MemStore struct {
	mu         sync.RWMutex
	deliveries map[string]*Delivery
	order      []string
}

// NewMemStore creates an empty in-memory store
func NewMemStore() *MemStore {
	return &MemStore{
		deliveries: make(map[string]*Delivery),
	}
}

func (s *MemStore) RecordDelivery(ctx context.Context, delivery *Delivery) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *delivery
	if _, exists := s.deliveries[delivery.ID]; !exists {
		s.order = append(s.order, delivery.ID)
	}
	s.deliveries[delivery.ID] = &cp
	return nil
}

func (s *MemStore) GetDelivery(ctx context.Context, id string) (*Delivery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	delivery, ok := s.deliveries[id]
	if !ok {
		return nil, nil
	}
	cp := *delivery
	return &cp, nil
}

func (s *MemStore) ListDeliveries(ctx context.Context, filter *Filter) ([]*Delivery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if filter == nil {
		filter = &Filter{}
	}

	var out []*Delivery
	for _, id := range s.order {
		d := s.deliveries[id]
		if filter.RequestName != "" && d.RequestName != filter.RequestName {
			continue
		}
		if !filter.Since.IsZero() && d.SubmittedAt.Before(filter.Since) {
			continue
		}
		cp := *d
		out = append(out, &cp)
	}

	// Newest first, matching the MongoDB implementation
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}

	return out, nil
}

func (s *MemStore) Ping(ctx context.Context) error {
	return nil
}

func (s *MemStore) Close(ctx context.Context) error {
	return nil
}
