package core

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupConfigFromEnv(t *testing.T) {
	addr := "localhost:11111"
	os.Setenv("SAHAYAK_API_SERVICE_ADDRESS", addr)
	os.Setenv("SAHAYAK_API_POSTGRESQL_DSN", "postgres://localhost/sahayak")
	os.Setenv("SAHAYAK_AI_DRIVER", "gemini")

	cfg := LoadBaseConfigFromENV()

	assert.Equal(t, addr, cfg.Addr)
	assert.Equal(t, "postgres://localhost/sahayak", cfg.Postgres.FormatDSN())
	assert.Equal(t, "gemini", cfg.AI.Driver)
}

func TestLoadBaseConfigFromToml(t *testing.T) {
	raw := `
addr = "0.0.0.0:8080"
rate_rps = 2.5

[log]
level = "info"

[postgres]
dsn = "postgres://db/sahayak"

[ai]
driver = "openai"
token = "sk-test"

[ai.model]
chat_model = "gpt-4o-mini"
embedding_model = "text-embedding-3-large"

[rag]
top_k = 5
history_limit = 20
min_similarity = 0.3
knowledge_dir = "/var/lib/sahayak/knowledge"
`
	f, err := os.CreateTemp(t.TempDir(), "config-*.toml")
	assert.NoError(t, err)
	_, err = f.WriteString(raw)
	assert.NoError(t, err)
	f.Close()

	cfg := MustLoadBaseConfig(f.Name())

	assert.Equal(t, "0.0.0.0:8080", cfg.Addr)
	assert.Equal(t, 2.5, cfg.RateRPS)
	assert.Equal(t, "openai", cfg.AI.Driver)
	assert.Equal(t, "gpt-4o-mini", cfg.AI.Model.ChatModel)
	assert.Equal(t, 5, cfg.RAG.TopK)
	assert.Equal(t, uint64(20), cfg.RAG.HistoryLimit)
	assert.Equal(t, 0.3, cfg.RAG.MinSimilarity)
	assert.Equal(t, "/var/lib/sahayak/knowledge", cfg.RAG.KnowledgeDir)
}
