package quotastore

import (
	"context"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"brandforge/internal/domain/pipeline"
	"brandforge/pkg/util"
)

// Counter keys outlive their month by a margin so Current keeps working
// across the rollover, then expire on their own.
const keyTTL = 62 * 24 * time.Hour

// ValkeyStore tracks usage in a Valkey-compatible database so the limit
// holds across replicas.
type ValkeyStore struct {
	client valkey.Client
	prefix string
	limit  int
	now    func() time.Time
}

// NewValkeyStore constructs a store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string, limit int) *ValkeyStore {
	if prefix == "" {
		prefix = "quota"
	}
	if limit <= 0 {
		limit = DefaultMonthlyLimit
	}
	return &ValkeyStore{client: client, prefix: prefix, limit: limit, now: util.NowUTC}
}

// Consume atomically books one generation. When the increment lands over
// the limit it is backed out so failed attempts are never charged.
func (s *ValkeyStore) Consume(ctx context.Context, userID string) (pipeline.Usage, error) {
	period := s.now().Format(periodLayout)
	key := s.key(userID, period)

	count, err := s.client.Do(ctx, s.client.B().Incr().Key(key).Build()).AsInt64()
	if err != nil {
		return pipeline.Usage{}, err
	}
	if count == 1 {
		_ = s.client.Do(ctx, s.client.B().Expire().Key(key).Seconds(int64(keyTTL.Seconds())).Build()).Error()
	}
	if int(count) > s.limit {
		_ = s.client.Do(ctx, s.client.B().Decr().Key(key).Build()).Error()
		return usageFor(s.limit, s.limit, period), quotaExceeded(s.limit)
	}
	return usageFor(int(count), s.limit, period), nil
}

// Current reports the user's usage without consuming anything.
func (s *ValkeyStore) Current(ctx context.Context, userID string) (pipeline.Usage, error) {
	period := s.now().Format(periodLayout)

	count, err := s.client.Do(ctx, s.client.B().Get().Key(s.key(userID, period)).Build()).AsInt64()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return usageFor(0, s.limit, period), nil
		}
		return pipeline.Usage{}, err
	}
	return usageFor(int(count), s.limit, period), nil
}

func (s *ValkeyStore) key(userID, period string) string {
	return fmt.Sprintf("%s:%s:%s", s.prefix, userID, period)
}

var _ pipeline.UsageStore = (*ValkeyStore)(nil)
