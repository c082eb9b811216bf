package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	RedisStatusOK       = "ok"
	RedisStatusDown     = "down"
	RedisStatusDisabled = "disabled"
)

// NewRedisClient เชื่อมต่อ Redis และ ping หนึ่งครั้ง
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr, // เช่น localhost:6379
		Password: "",
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return client, nil
}

// RedisStatus ใช้กับ /healthz; client nil หมายถึงไม่ได้ตั้งค่า REDIS_URI
func RedisStatus(ctx context.Context, client *redis.Client) string {
	if client == nil {
		return RedisStatusDisabled
	}
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return RedisStatusDown
	}
	return RedisStatusOK
}
