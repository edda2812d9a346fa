package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const AuthSessionPrefix = "authSession:"

// AuthSessionTTL bounds how long a login session survives without a reload.
const AuthSessionTTL = 24 * time.Hour

// AuthSession is the current-session identity slot: which user a presented
// token belongs to. Keyed by token hash so raw tokens never reach Redis.
type AuthSession struct {
	UserID        string    `json:"userId"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// SaveAuthSession saves the session in Redis with a TTL.
func SaveAuthSession(ctx context.Context, client *redis.Client, tokenHash string, session AuthSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal auth session: %w", err)
	}
	if err := client.Set(ctx, AuthSessionPrefix+tokenHash, data, AuthSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save auth session: %w", err)
	}
	return nil
}

// GetAuthSession retrieves the session from Redis. A missing session returns
// redis.Nil unchanged so callers can tell "expired" from "broken".
func GetAuthSession(ctx context.Context, client *redis.Client, tokenHash string) (*AuthSession, error) {
	data, err := client.Get(ctx, AuthSessionPrefix+tokenHash).Result()
	if err != nil {
		return nil, err
	}
	var session AuthSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal auth session: %w", err)
	}
	return &session, nil
}

// ClearAuthSession removes the session (logout / token revocation).
func ClearAuthSession(ctx context.Context, client *redis.Client, tokenHash string) error {
	return client.Del(ctx, AuthSessionPrefix+tokenHash).Err()
}
