package openai

import (
	"context"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"

	"github.com/sahayak-ai/sahayak/pkg/ai"
)

const (
	NAME = "openai"

	embeddingDimensions = 1024
	embeddingBatchMax   = 6
)

type Driver struct {
	client *openai.Client
	model  ai.ModelName
}

func New(token, proxy string, model ai.ModelName) *Driver {
	cfg := openai.DefaultConfig(token)
	if proxy != "" {
		cfg.BaseURL = proxy
	}

	if model.ChatModel == "" {
		model.ChatModel = openai.GPT4oMini
	}
	if model.EmbeddingModel == "" {
		model.EmbeddingModel = string(openai.LargeEmbedding3)
	}

	return &Driver{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (s *Driver) Generate(ctx context.Context, req ai.GenerateRequest) (ai.GenerateResponse, error) {
	slog.Debug("Generate", slog.String("driver", NAME), slog.String("model", s.model.ChatModel))

	var result ai.GenerateResponse

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model.ChatModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.Prompt,
			},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return result, fmt.Errorf("completion error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return result, fmt.Errorf("completion returned no choices")
	}

	result.Received = resp.Choices[0].Message.Content
	result.Model = resp.Model
	result.Usage = &resp.Usage
	return result, nil
}

func (s *Driver) embedding(ctx context.Context, content []string) (ai.EmbeddingResult, error) {
	slog.Debug("Embedding", slog.String("driver", NAME))
	queryReq := openai.EmbeddingRequest{
		Model:      openai.EmbeddingModel(s.model.EmbeddingModel),
		Dimensions: embeddingDimensions,
	}

	var groups [][]string
	for i, v := range content {
		if i%embeddingBatchMax == 0 {
			groups = append(groups, []string{})
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], v)
	}

	r := ai.EmbeddingResult{
		Usage: &openai.Usage{},
	}
	for _, v := range groups {
		queryReq.Input = v
		resp, err := s.client.CreateEmbeddings(ctx, queryReq)
		if err != nil {
			return r, fmt.Errorf("error creating embedding: %w", err)
		}
		for _, item := range resp.Data {
			r.Data = append(r.Data, item.Embedding)
		}

		r.Usage.CompletionTokens += resp.Usage.CompletionTokens
		r.Usage.PromptTokens += resp.Usage.PromptTokens
		r.Usage.TotalTokens += resp.Usage.TotalTokens
		r.Model = string(resp.Model)
	}

	return r, nil
}

func (s *Driver) EmbeddingForQuery(ctx context.Context, content []string) (ai.EmbeddingResult, error) {
	return s.embedding(ctx, content)
}

func (s *Driver) EmbeddingForDocument(ctx context.Context, title string, content []string) (ai.EmbeddingResult, error) {
	return s.embedding(ctx, content)
}
