package infra

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/pyama86/inquiry-relay/domain/model"
)

// MemoryStore はプロセス内に問い合わせを保持する。ローカル開発用
type MemoryStore struct {
	cache *ttlcache.Cache[string, model.Inquiry]
}

// retention が 0 のときは期限なしで保持する
func NewMemoryStore(retention time.Duration) *MemoryStore {
	ttl := ttlcache.NoTTL
	if retention > 0 {
		ttl = retention
	}
	c := ttlcache.New(
		ttlcache.WithTTL[string, model.Inquiry](ttl),
		ttlcache.WithDisableTouchOnHit[string, model.Inquiry](),
	)
	go c.Start()
	return &MemoryStore{cache: c}
}

func (m *MemoryStore) SaveInquiry(ctx context.Context, inquiry *model.Inquiry) error {
	m.cache.Set(inquiry.ID, *inquiry, ttlcache.DefaultTTL)
	return nil
}

func (m *MemoryStore) GetInquiry(ctx context.Context, id string) (*model.Inquiry, error) {
	item := m.cache.Get(id)
	if item == nil {
		return nil, nil
	}
	inquiry := item.Value()
	return &inquiry, nil
}

func (m *MemoryStore) Len() int {
	return m.cache.Len()
}

func (m *MemoryStore) Close() error {
	m.cache.Stop()
	return nil
}
