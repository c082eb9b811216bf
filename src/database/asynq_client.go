package database

import (
	"github.com/hibiken/asynq"
)

// NewAsynqClient returns nil when Redis is not configured.
func NewAsynqClient(redisURI string) *asynq.Client {
	if redisURI == "" {
		return nil
	}
	return asynq.NewClient(asynq.RedisClientOpt{Addr: redisURI})
}
