package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/sahayak-ai/sahayak/pkg/ai"
)

const (
	NAME = "gemini"
)

type Driver struct {
	client *genai.Client
	model  ai.ModelName
}

func New(token string, model ai.ModelName) (*Driver, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(token))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	if model.ChatModel == "" {
		model.ChatModel = "gemini-2.0-flash"
	}
	if model.EmbeddingModel == "" {
		model.EmbeddingModel = "embedding-001"
	}

	return &Driver{
		client: client,
		model:  model,
	}, nil
}

func (s *Driver) Generate(ctx context.Context, req ai.GenerateRequest) (ai.GenerateResponse, error) {
	slog.Debug("Generate", slog.String("driver", NAME), slog.String("model", s.model.ChatModel))

	var result ai.GenerateResponse

	model := s.client.GenerativeModel(s.model.ChatModel)
	model.SetTemperature(req.Temperature)
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.MaxTokens))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return result, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return result, errors.New("empty response content")
	}

	if resp.Candidates[0].FinishReason != genai.FinishReasonStop {
		slog.Warn("Generate, model finished without stop", slog.String("reason", resp.Candidates[0].FinishReason.String()))
	}

	b := strings.Builder{}
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}

	result.Received = b.String()
	result.Model = s.model.ChatModel
	return result, nil
}

func (s *Driver) embedding(ctx context.Context, title string, content []string) (ai.EmbeddingResult, error) {
	slog.Debug("Embedding", slog.String("driver", NAME))
	em := s.client.EmbeddingModel(s.model.EmbeddingModel)
	if title != "" {
		em.TaskType = genai.TaskTypeRetrievalDocument
	} else {
		em.TaskType = genai.TaskTypeRetrievalQuery
	}

	r := ai.EmbeddingResult{
		Model: s.model.EmbeddingModel,
	}

	batch := em.NewBatch()
	for _, v := range content {
		if title != "" {
			batch.AddContentWithTitle(title, genai.Text(v))
		} else {
			batch.AddContent(genai.Text(v))
		}
	}

	res, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return r, err
	}
	for _, e := range res.Embeddings {
		r.Data = append(r.Data, e.Values)
	}
	return r, nil
}

func (s *Driver) EmbeddingForQuery(ctx context.Context, content []string) (ai.EmbeddingResult, error) {
	return s.embedding(ctx, "", content)
}

func (s *Driver) EmbeddingForDocument(ctx context.Context, title string, content []string) (ai.EmbeddingResult, error) {
	return s.embedding(ctx, title, content)
}
