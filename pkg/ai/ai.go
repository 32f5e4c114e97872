package ai

import (
	"context"

	"github.com/pkoukk/tiktoken-go"
	"github.com/sashabaranov/go-openai"
)

// ModelName selects the concrete models a driver talks to.
type ModelName struct {
	ChatModel      string `toml:"chat_model"`
	EmbeddingModel string `toml:"embedding_model"`
}

// GenerateRequest is a single-shot generation call. The prompt already
// contains the history transcript and grounding context, the driver adds
// nothing but model plumbing.
type GenerateRequest struct {
	Prompt      string
	Temperature float32
	MaxTokens   int
}

type GenerateResponse struct {
	Received string
	Model    string
	Usage    *openai.Usage
}

// Generator is the generation capability consumed by the query engine.
// Implementations must honor ctx cancellation, the engine treats every
// call as at-most-once and never retries.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
}

type EmbeddingResult struct {
	Model string
	Data  [][]float32
	Usage *openai.Usage
}

// Embedder converts text into fixed-length vectors, one per input,
// deterministic for a fixed model version.
type Embedder interface {
	EmbeddingForQuery(ctx context.Context, content []string) (EmbeddingResult, error)
	EmbeddingForDocument(ctx context.Context, title string, content []string) (EmbeddingResult, error)
}

// NumTokens estimates the token cost of text for the given chat model.
// Falls back to the gpt-4o encoding when the model is unknown to tiktoken.
func NumTokens(text string, model string) (int, error) {
	tkm, err := tiktoken.EncodingForModel(model)
	if err != nil {
		if tkm, err = tiktoken.EncodingForModel(openai.GPT4o); err != nil {
			return 0, err
		}
	}
	return len(tkm.Encode(text, nil, nil)), nil
}
