package checker

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// SetMembershipClient is the slice of go-redis the RedisSet checker needs.
type SetMembershipClient interface {
	SIsMember(ctx context.Context, key string, member interface{}) *redis.BoolCmd
}

// KeyExistsClient is the slice of go-redis the RedisKey checker needs.
type KeyExistsClient interface {
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

var (
	_ SetMembershipClient = (*redis.Client)(nil)
	_ KeyExistsClient     = (*redis.Client)(nil)
)

// RedisSet returns an existence check that asks whether value is a member of
// the set stored at key. Panics when key is empty.
func RedisSet(client SetMembershipClient, key string) func(ctx context.Context, value string) (bool, error) {
	if client == nil {
		panic("checker: client must not be nil")
	}
	if key == "" {
		panic("checker: key must not be empty")
	}

	return func(ctx context.Context, value string) (bool, error) {
		taken, err := client.SIsMember(ctx, key, value).Result()
		if err != nil {
			return false, errors.Join(ErrRedisQueryFailed, err)
		}
		return taken, nil
	}
}

// RedisKey returns an existence check that asks whether the key prefix+value
// exists. An empty prefix uses the value alone as the key.
func RedisKey(client KeyExistsClient, prefix string) func(ctx context.Context, value string) (bool, error) {
	if client == nil {
		panic("checker: client must not be nil")
	}

	return func(ctx context.Context, value string) (bool, error) {
		n, err := client.Exists(ctx, prefix+value).Result()
		if err != nil {
			return false, errors.Join(ErrRedisQueryFailed, err)
		}
		return n > 0, nil
	}
}
