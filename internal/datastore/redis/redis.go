package redisClient

import "github.com/go-redis/redis"

type RedisClient struct {
	Client *redis.Client
}

func NewRedis(addr string) *RedisClient {
	return &RedisClient{Client: redis.NewClient(&redis.Options{
		Addr: addr,
	})}
}

func (r *RedisClient) Ping() error {
	return r.Client.Ping().Err()
}
