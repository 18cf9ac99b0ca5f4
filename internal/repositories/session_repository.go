package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/models"
)

// RedisSessionRepository keeps refresh sessions in Redis. Each session lives
// under session:<token> with a TTL; user_sessions:<id> indexes a user's tokens.
type RedisSessionRepository struct {
	rdb *redis.Client
}

func NewRedisSessionRepository(rdb *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{rdb: rdb}
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

func userSessionsKey(userID string) string {
	return fmt.Sprintf("user_sessions:%s", userID)
}

func (r *RedisSessionRepository) SetSession(ctx context.Context, session models.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return models.ErrSessionNotFound
	}
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, sessionKey(session.RefreshToken), payload, ttl)
		pipe.SAdd(ctx, userSessionsKey(session.UserID), session.RefreshToken)
		pipe.Expire(ctx, userSessionsKey(session.UserID), ttl)
		return nil
	})
	return err
}

func (r *RedisSessionRepository) GetSession(ctx context.Context, refreshToken string) (models.Session, error) {
	raw, err := r.rdb.Get(ctx, sessionKey(refreshToken)).Bytes()
	if err == redis.Nil {
		return models.Session{}, models.ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, err
	}
	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return models.Session{}, fmt.Errorf("decode session: %w", err)
	}
	return session, nil
}

func (r *RedisSessionRepository) DeleteSession(ctx context.Context, refreshToken string) error {
	session, err := r.GetSession(ctx, refreshToken)
	if errors.Is(err, models.ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, sessionKey(refreshToken))
		pipe.SRem(ctx, userSessionsKey(session.UserID), refreshToken)
		return nil
	})
	return err
}

func (r *RedisSessionRepository) DeleteUserSessions(ctx context.Context, userID string) error {
	tokens, err := r.rdb.SMembers(ctx, userSessionsKey(userID)).Result()
	if err != nil && err != redis.Nil {
		return err
	}
	keys := make([]string, 0, len(tokens)+1)
	for _, token := range tokens {
		keys = append(keys, sessionKey(token))
	}
	keys = append(keys, userSessionsKey(userID))
	return r.rdb.Del(ctx, keys...).Err()
}

// MemorySessionRepository is the in-process session store. Expired entries
// stay until DeleteExpiredSessions runs.
type MemorySessionRepository struct {
	store *MemoryStore[models.Session]
}

func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{store: NewMemoryStore[models.Session]()}
}

func (r *MemorySessionRepository) SetSession(ctx context.Context, session models.Session) error {
	return r.store.atomically(func() error {
		if !r.store.updateLocked(session) {
			r.store.addLocked(session)
		}
		return nil
	})
}

func (r *MemorySessionRepository) GetSession(ctx context.Context, refreshToken string) (models.Session, error) {
	session, ok := r.store.Get(refreshToken)
	if !ok || session.Expired(time.Now()) {
		return models.Session{}, models.ErrSessionNotFound
	}
	return session, nil
}

func (r *MemorySessionRepository) DeleteSession(ctx context.Context, refreshToken string) error {
	r.store.Delete(refreshToken)
	return nil
}

func (r *MemorySessionRepository) DeleteUserSessions(ctx context.Context, userID string) error {
	r.store.DeleteWhere(func(s models.Session) bool { return s.UserID == userID })
	return nil
}

func (r *MemorySessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int, error) {
	return r.store.DeleteWhere(func(s models.Session) bool { return s.Expired(now) }), nil
}
