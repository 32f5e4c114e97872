package rag

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahayak-ai/sahayak/pkg/ai"
	"github.com/sahayak-ai/sahayak/pkg/errors"
	"github.com/sahayak-ai/sahayak/pkg/types"
	"github.com/sahayak-ai/sahayak/pkg/utils"
)

type fakeGenerator struct {
	resp      ai.GenerateResponse
	err       error
	gotPrompt string
	calls     int
}

func (f *fakeGenerator) Generate(ctx context.Context, req ai.GenerateRequest) (ai.GenerateResponse, error) {
	f.calls++
	f.gotPrompt = req.Prompt
	if f.err != nil {
		return ai.GenerateResponse{}, f.err
	}
	return f.resp, nil
}

func newTestEngine(t *testing.T, store ConversationStore, generator ai.Generator) *Engine {
	t.Helper()
	utils.SetupIDWorker(0)
	kb := loadedKB(t, &fakeEmbedder{vectors: grade5Vectors(), queryVec: []float32{1, 0, 0}})
	return NewEngine(kb, NewMemory(store), generator, "gpt-4o", Config{})
}

func TestProcessEducationalQuery(t *testing.T) {
	store := &memConversationStore{}
	generator := &fakeGenerator{resp: ai.GenerateResponse{Received: "An ecosystem is a community.", Model: "gpt-4o"}}
	engine := newTestEngine(t, store, generator)

	result, err := engine.ProcessEducationalQuery(context.Background(), Query{
		UserID:   "u1",
		Question: "Tell me about ecosystems",
		Grade:    5,
	})
	require.NoError(t, err)

	assert.Equal(t, "An ecosystem is a community.", result.Answer)
	assert.Equal(t, types.SUBJECT_SCIENCE, result.Subject)
	assert.Equal(t, 3, result.Grounded)
	assert.Equal(t, "gpt-4o", result.ChatModel)

	assert.Contains(t, generator.gotPrompt, "a 5th grade student")
	assert.Contains(t, generator.gotPrompt, "Chapter: Ecosystems and Environment")

	// both turns remembered, user first
	require.Len(t, store.msgs, 2)
	assert.Equal(t, types.USER_ROLE_USER, store.msgs[0].Role)
	assert.Equal(t, "Tell me about ecosystems", store.msgs[0].Message)
	assert.Equal(t, types.USER_ROLE_MODEL, store.msgs[1].Role)
	assert.Equal(t, 5, store.msgs[1].Grade)
}

func TestProcessEducationalQueryValidation(t *testing.T) {
	engine := newTestEngine(t, &memConversationStore{}, &fakeGenerator{})
	ctx := context.Background()

	cases := []Query{
		{UserID: "u1", Question: "", Grade: 5},
		{UserID: "u1", Question: "   ", Grade: 5},
		{UserID: "u1", Question: "valid", Grade: 0},
		{UserID: "u1", Question: "valid", Grade: 13},
	}
	for _, query := range cases {
		_, err := engine.ProcessEducationalQuery(ctx, query)
		require.Error(t, err)
		ce, ok := err.(*errors.CustomizedError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, ce.GetCode())
	}
}

func TestProcessEducationalQueryGenerationFailure(t *testing.T) {
	store := &memConversationStore{}
	generator := &fakeGenerator{err: assert.AnError}
	engine := newTestEngine(t, store, generator)

	result, err := engine.ProcessEducationalQuery(context.Background(), Query{
		UserID:   "u1",
		Question: "Tell me about ecosystems",
		Grade:    5,
	})
	require.NoError(t, err)

	assert.Equal(t, "I encountered an error while processing your request. Please try again.", result.Answer)
	assert.Empty(t, store.msgs, "failed exchanges must not be remembered")
}

func TestProcessEducationalQueryTimeout(t *testing.T) {
	store := &memConversationStore{}
	generator := &fakeGenerator{err: context.DeadlineExceeded}
	engine := newTestEngine(t, store, generator)

	result, err := engine.ProcessEducationalQuery(context.Background(), Query{
		UserID:   "u1",
		Question: "Tell me about ecosystems",
		Grade:    5,
	})
	require.NoError(t, err)

	assert.Equal(t, "I'm sorry, the request timed out. Please try again.", result.Answer)
	assert.Empty(t, store.msgs)
}

func TestProcessEducationalQueryDeadline(t *testing.T) {
	store := &memConversationStore{}
	slow := &slowGenerator{delay: 200 * time.Millisecond}
	utils.SetupIDWorker(0)
	kb := loadedKB(t, &fakeEmbedder{})
	engine := NewEngine(kb, NewMemory(store), slow, "gpt-4o", Config{GenerateTimeout: 20 * time.Millisecond})

	result, err := engine.ProcessEducationalQuery(context.Background(), Query{
		UserID:   "u1",
		Question: "Tell me about ecosystems",
		Grade:    5,
	})
	require.NoError(t, err)
	assert.Equal(t, "I'm sorry, the request timed out. Please try again.", result.Answer)
}

type slowGenerator struct {
	delay time.Duration
}

func (s *slowGenerator) Generate(ctx context.Context, req ai.GenerateRequest) (ai.GenerateResponse, error) {
	select {
	case <-time.After(s.delay):
		return ai.GenerateResponse{Received: "late"}, nil
	case <-ctx.Done():
		return ai.GenerateResponse{}, ctx.Err()
	}
}

func TestProcessEducationalQueryDegradedMemory(t *testing.T) {
	store := &memConversationStore{listErr: assert.AnError}
	generator := &fakeGenerator{resp: ai.GenerateResponse{Received: "answer"}}
	engine := newTestEngine(t, store, generator)

	result, err := engine.ProcessEducationalQuery(context.Background(), Query{
		UserID:   "u1",
		Question: "Tell me about ecosystems",
		Grade:    5,
	})
	require.NoError(t, err)
	assert.Equal(t, "answer", result.Answer)
	assert.Contains(t, generator.gotPrompt, "No previous conversation.")
}

func TestProcessEducationalQueryHistoryInPrompt(t *testing.T) {
	store := &memConversationStore{}
	generator := &fakeGenerator{resp: ai.GenerateResponse{Received: "ok"}}
	engine := newTestEngine(t, store, generator)
	ctx := context.Background()

	// seed 8 turns, the prompt window keeps the newest 5
	for i := 0; i < 8; i++ {
		role := types.USER_ROLE_USER
		if i%2 == 1 {
			role = types.USER_ROLE_MODEL
		}
		store.msgs = append(store.msgs, types.ConversationMessage{
			UserID:  "u1",
			Role:    role,
			Message: "turn " + string(rune('0'+i)),
		})
	}

	_, err := engine.ProcessEducationalQuery(ctx, Query{UserID: "u1", Question: "Tell me about ecosystems", Grade: 5})
	require.NoError(t, err)

	assert.NotContains(t, generator.gotPrompt, "turn 2")
	assert.Contains(t, generator.gotPrompt, "turn 3")
	assert.Contains(t, generator.gotPrompt, "turn 7")
}

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	assert.Equal(t, 3, cfg.TopK)
	assert.Equal(t, uint64(10), cfg.HistoryLimit)
	assert.Equal(t, 5, cfg.PromptHistory)
	assert.Equal(t, 30*time.Second, cfg.GenerateTimeout)

	cfg = Config{GenerateTimeoutSec: 5}
	cfg.ApplyDefaults()
	assert.Equal(t, 5*time.Second, cfg.GenerateTimeout)
}
