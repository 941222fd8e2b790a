package bookingflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"barberbook/models"

	"github.com/go-redis/redis/v8"
)

// ErrSessionNotFound is returned when a session id is unknown or expired.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// SessionStore persists wizard sessions between requests.
type SessionStore interface {
	Save(ctx context.Context, session *models.BookingSession) error
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps sessions in Redis with a TTL, so abandoned wizard
// runs clean themselves up.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore creates a session store on the given client.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisSessionStore{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return "bookingflow:session:" + id
}

// Save marshals and stores the session, refreshing its TTL.
func (s *RedisSessionStore) Save(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(session.SessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache booking session: %w", err)
	}
	return nil
}

// Get loads a session by id.
func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

// Delete discards a session.
func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}
