package rag

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahayak-ai/sahayak/pkg/types"
	"github.com/sahayak-ai/sahayak/pkg/utils"
)

type memConversationStore struct {
	msgs       []types.ConversationMessage
	createErr  error
	listErr    error
	createSeen int
}

func (s *memConversationStore) Create(ctx context.Context, data *types.ConversationMessage) error {
	s.createSeen++
	if s.createErr != nil {
		return s.createErr
	}
	s.msgs = append(s.msgs, *data)
	return nil
}

func (s *memConversationStore) ListRecent(ctx context.Context, userID string, limit uint64) ([]types.ConversationMessage, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []types.ConversationMessage
	for _, msg := range s.msgs {
		if msg.UserID == userID {
			out = append(out, msg)
		}
	}
	if uint64(len(out)) > limit {
		out = out[uint64(len(out))-limit:]
	}
	return out, nil
}

func TestMemoryRoundTrip(t *testing.T) {
	utils.SetupIDWorker(0)
	store := &memConversationStore{}
	memory := NewMemory(store)
	ctx := context.Background()

	memory.AppendTurn(ctx, "u1", types.USER_ROLE_USER, "What is algebra?", 7)
	memory.AppendTurn(ctx, "u1", types.USER_ROLE_MODEL, "Algebra is...", 7)
	memory.AppendTurn(ctx, "u2", types.USER_ROLE_USER, "other thread", 3)

	history := memory.LoadRecent(ctx, "u1", 10)
	require.Len(t, history, 2)
	assert.Equal(t, types.USER_ROLE_USER, history[0].Role)
	assert.Equal(t, types.USER_ROLE_MODEL, history[1].Role)
	assert.NotEmpty(t, history[0].ID)
	assert.Equal(t, 7, history[0].Grade)
}

func TestMemorySwallowsStoreFailures(t *testing.T) {
	utils.SetupIDWorker(0)
	store := &memConversationStore{
		createErr: errors.New("db down"),
		listErr:   errors.New("db down"),
	}
	memory := NewMemory(store)
	ctx := context.Background()

	memory.AppendTurn(ctx, "u1", types.USER_ROLE_USER, "hello", 1)
	assert.Equal(t, 1, store.createSeen)

	assert.Empty(t, memory.LoadRecent(ctx, "u1", 10))
}

func TestMemoryNilStore(t *testing.T) {
	memory := NewMemory(nil)
	ctx := context.Background()

	memory.AppendTurn(ctx, "u1", types.USER_ROLE_USER, "hello", 1)
	assert.Empty(t, memory.LoadRecent(ctx, "u1", 10))
	assert.Empty(t, memory.LoadRecent(ctx, "", 10))
}
