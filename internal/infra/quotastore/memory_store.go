package quotastore

import (
	"context"
	"sync"
	"time"

	"brandforge/internal/domain/pipeline"
	"brandforge/pkg/util"
)

// MemoryStore is an in-process usage counter for tests and single-node
// deployments.
type MemoryStore struct {
	mu     sync.Mutex
	counts map[string]int
	limit  int
	now    func() time.Time
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore(limit int) *MemoryStore {
	if limit <= 0 {
		limit = DefaultMonthlyLimit
	}
	return &MemoryStore{
		counts: make(map[string]int),
		limit:  limit,
		now:    util.NowUTC,
	}
}

// Consume books one generation against the user's allowance for the current
// month.
func (s *MemoryStore) Consume(_ context.Context, userID string) (pipeline.Usage, error) {
	period := s.now().Format(periodLayout)
	key := userID + ":" + period

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.counts[key] >= s.limit {
		return usageFor(s.counts[key], s.limit, period), quotaExceeded(s.limit)
	}
	s.counts[key]++
	return usageFor(s.counts[key], s.limit, period), nil
}

// Current reports the user's usage without consuming anything.
func (s *MemoryStore) Current(_ context.Context, userID string) (pipeline.Usage, error) {
	period := s.now().Format(periodLayout)

	s.mu.Lock()
	defer s.mu.Unlock()
	return usageFor(s.counts[userID+":"+period], s.limit, period), nil
}

var _ pipeline.UsageStore = (*MemoryStore)(nil)
