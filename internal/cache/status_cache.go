package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"nexyatra/internal/domain"
)

// Terminal outcomes never change upstream, so they can be held for a long
// window and spare the processor a status call per page refresh.
const terminalExpiry = 24 * time.Hour

type cachedStatus struct {
	Status  domain.OrderStatus `json:"status"`
	Message string             `json:"message"`
}

// OrderStatusCache keeps terminal order outcomes in Redis. PENDING is never
// cached; a pending order must always be re-queried.
type OrderStatusCache struct {
	client *redis.Client
}

func NewOrderStatusCache(addr, password string, db int) *OrderStatusCache {
	return &OrderStatusCache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func key(transactionID string) string {
	return fmt.Sprintf("order:%s", transactionID)
}

// GetTerminal returns the cached terminal outcome, if any. A nil cache
// (Redis not configured) always misses.
func (c *OrderStatusCache) GetTerminal(ctx context.Context, transactionID string) (domain.OrderStatus, string, bool) {
	if c == nil {
		return "", "", false
	}
	raw, err := c.client.Get(ctx, key(transactionID)).Result()
	if err != nil {
		return "", "", false
	}
	var cs cachedStatus
	if err := json.Unmarshal([]byte(raw), &cs); err != nil {
		return "", "", false
	}
	return cs.Status, cs.Message, true
}

// SetTerminal stores a terminal outcome. Non-terminal statuses are ignored.
func (c *OrderStatusCache) SetTerminal(ctx context.Context, transactionID string, status domain.OrderStatus, message string) {
	if c == nil || !status.Terminal() {
		return
	}
	raw, err := json.Marshal(cachedStatus{Status: status, Message: message})
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, key(transactionID), raw, terminalExpiry).Err()
}
