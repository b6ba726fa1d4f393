package identity

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const otpKeyPrefix = "otp:"

// consumeCodeScript deletes the key only when it holds the presented code,
// so a code verifies at most once.
var consumeCodeScript = redis.NewScript(`
local current = redis.call('GET', KEYS[1])
if current and current == ARGV[1] then
	redis.call('DEL', KEYS[1])
	return 1
end
return 0
`)

// RedisCodeStore keeps codes in redis; expiry is the key TTL.
type RedisCodeStore struct {
	client *redis.Client
}

func NewRedisCodeStore(client *redis.Client) *RedisCodeStore {
	return &RedisCodeStore{client: client}
}

func (s *RedisCodeStore) Save(ctx context.Context, phone, code string, ttl time.Duration) error {
	return s.client.Set(ctx, otpKeyPrefix+phone, code, ttl).Err()
}

func (s *RedisCodeStore) Consume(ctx context.Context, phone, code string) (bool, error) {
	result, err := consumeCodeScript.Run(ctx, s.client, []string{otpKeyPrefix + phone}, code).Int()
	if err != nil {
		return false, err
	}
	return result == 1, nil
}
