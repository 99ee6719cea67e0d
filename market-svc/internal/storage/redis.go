package storage

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores rendered order QR images.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) QRCodeKey(orderID int) string {
	return "order:qrcode:" + strconv.Itoa(orderID)
}

// GetQRCode returns (nil, nil) on a cache miss.
func (c *RedisCache) GetQRCode(ctx context.Context, orderID int) ([]byte, error) {
	data, err := c.Client.Get(ctx, c.QRCodeKey(orderID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (c *RedisCache) SetQRCode(ctx context.Context, orderID int, png []byte) error {
	return c.Client.Set(ctx, c.QRCodeKey(orderID), png, c.TTL).Err()
}
