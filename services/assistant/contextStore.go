package assistant

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

const conversationPrefix = "assistant:ctx:"

// ConversationState tracks which business a user's conversation is bound to.
// A turn's result is only reconciled if the conversation is still on the
// same business when the model call completes; stale turns are discarded.
type ConversationState struct {
	BusinessID string    `json:"businessId"`
	LastTurnAt time.Time `json:"lastTurnAt"`
}

// RedisConversationStore keeps per-user conversation state with a TTL.
type RedisConversationStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisConversationStore(client *redis.Client, ttl time.Duration) *RedisConversationStore {
	return &RedisConversationStore{client: client, ttl: ttl}
}

func (s *RedisConversationStore) Get(ctx context.Context, userID string) (*ConversationState, error) {
	data, err := s.client.Get(ctx, conversationPrefix+userID).Result()
	if err == redis.Nil {
		return &ConversationState{}, nil
	}
	if err != nil {
		return nil, err
	}
	var state ConversationState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *RedisConversationStore) Set(ctx context.Context, userID string, state *ConversationState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, conversationPrefix+userID, b, s.ttl).Err()
}

func (s *RedisConversationStore) Clear(ctx context.Context, userID string) error {
	return s.client.Del(ctx, conversationPrefix+userID).Err()
}
