package srv

import (
	"context"
	"fmt"
	"os"

	"github.com/sahayak-ai/sahayak/pkg/ai"
	"github.com/sahayak-ai/sahayak/pkg/ai/gemini"
	"github.com/sahayak-ai/sahayak/pkg/ai/openai"
)

type AIConfig struct {
	Driver string       `toml:"driver"`
	Token  string       `toml:"token"`
	Proxy  string       `toml:"proxy"`
	Model  ai.ModelName `toml:"model"`
}

func (c *AIConfig) FromENV() {
	c.Driver = os.Getenv("SAHAYAK_AI_DRIVER")
	c.Token = os.Getenv("SAHAYAK_AI_TOKEN")
	c.Proxy = os.Getenv("SAHAYAK_AI_PROXY")
	c.Model.ChatModel = os.Getenv("SAHAYAK_AI_CHAT_MODEL")
	c.Model.EmbeddingModel = os.Getenv("SAHAYAK_AI_EMBEDDING_MODEL")
}

// AI is the provider-agnostic face of one configured driver. Both
// capabilities always come from the same driver so chat and embedding
// model versions stay consistent.
type AI struct {
	driver    string
	model     ai.ModelName
	generator ai.Generator
	embedder  ai.Embedder
}

func SetupAI(cfg AIConfig) (*AI, error) {
	switch cfg.Driver {
	case openai.NAME:
		d := openai.New(cfg.Token, cfg.Proxy, cfg.Model)
		return &AI{driver: openai.NAME, model: cfg.Model, generator: d, embedder: d}, nil
	case gemini.NAME, "":
		d, err := gemini.New(cfg.Token, cfg.Model)
		if err != nil {
			return nil, err
		}
		return &AI{driver: gemini.NAME, model: cfg.Model, generator: d, embedder: d}, nil
	default:
		return nil, fmt.Errorf("unknown ai driver %q", cfg.Driver)
	}
}

// ApplyAI wires the AI driver into Srv, panicking on a broken config
// since the service cannot answer anything without it.
func ApplyAI(cfg AIConfig) ApplyFunc {
	return func(s *Srv) {
		a, err := SetupAI(cfg)
		if err != nil {
			panic(err)
		}
		s.ai = a
	}
}

func (a *AI) DriverName() string {
	return a.driver
}

func (a *AI) ChatModel() string {
	return a.model.ChatModel
}

func (a *AI) EmbeddingModel() string {
	return a.model.EmbeddingModel
}

func (a *AI) Generate(ctx context.Context, req ai.GenerateRequest) (ai.GenerateResponse, error) {
	return a.generator.Generate(ctx, req)
}

func (a *AI) EmbeddingForQuery(ctx context.Context, content []string) (ai.EmbeddingResult, error) {
	return a.embedder.EmbeddingForQuery(ctx, content)
}

func (a *AI) EmbeddingForDocument(ctx context.Context, title string, content []string) (ai.EmbeddingResult, error) {
	return a.embedder.EmbeddingForDocument(ctx, title, content)
}
