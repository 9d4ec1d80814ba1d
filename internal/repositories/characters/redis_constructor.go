package characters

import (
	"github.com/redis/go-redis/v9"
)

// NewRedis creates a Redis-backed draft repository with default settings
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client: client,
	})
}
