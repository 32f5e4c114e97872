package rag

import (
	"context"
	"log/slog"
	"time"

	"github.com/sahayak-ai/sahayak/pkg/types"
	"github.com/sahayak-ai/sahayak/pkg/utils"
)

// ConversationStore is the persistence the memory layer needs, satisfied
// by the sql store. Implementations return turns oldest first.
type ConversationStore interface {
	Create(ctx context.Context, data *types.ConversationMessage) error
	ListRecent(ctx context.Context, userID string, limit uint64) ([]types.ConversationMessage, error)
}

// Memory wraps conversation persistence with graceful degradation. A dead
// database turns every question stateless instead of failing it, so every
// store error here is logged and swallowed.
type Memory struct {
	store ConversationStore
}

func NewMemory(store ConversationStore) *Memory {
	return &Memory{store: store}
}

// LoadRecent returns up to limit turns of the user thread, oldest first.
// Empty on any failure or when no store is configured.
func (m *Memory) LoadRecent(ctx context.Context, userID string, limit uint64) []types.ConversationMessage {
	if m.store == nil || userID == "" || limit == 0 {
		return nil
	}
	list, err := m.store.ListRecent(ctx, userID, limit)
	if err != nil {
		slog.Error("Load conversation history failed", slog.String("user_id", userID), slog.Any("error", err))
		return nil
	}
	return list
}

// AppendTurn persists one turn. Failures are logged, never surfaced.
func (m *Memory) AppendTurn(ctx context.Context, userID string, role types.MessageUserRole, message string, grade int) {
	if m.store == nil || userID == "" {
		return
	}
	msg := &types.ConversationMessage{
		ID:       utils.GenUniqIDStr(),
		UserID:   userID,
		Role:     role,
		Message:  message,
		Grade:    grade,
		SendTime: time.Now().Unix(),
	}
	if err := m.store.Create(ctx, msg); err != nil {
		slog.Error("Persist conversation turn failed",
			slog.String("user_id", userID), slog.String("role", string(role)), slog.Any("error", err))
	}
}
