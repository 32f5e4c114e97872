package sqlstore

import (
	"embed"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/sahayak-ai/sahayak/app/store"
	"github.com/sahayak-ai/sahayak/pkg/register"
	"github.com/sahayak-ai/sahayak/pkg/sqlstore"
)

func init() {
	sq.StatementBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

//go:embed *.sql
var createTableFiles embed.FS

var provider = &Provider{
	stores: &Stores{},
}

type Provider struct {
	*sqlstore.SqlProvider
	stores *Stores
}

type Stores struct {
	store.ConversationMessageStore
	store.FeedbackStore
	store.EmbeddingCacheStore
}

func (p *Provider) ConversationMessageStore() store.ConversationMessageStore {
	return p.stores.ConversationMessageStore
}

func (p *Provider) FeedbackStore() store.FeedbackStore {
	return p.stores.FeedbackStore
}

func (p *Provider) EmbeddingCacheStore() store.EmbeddingCacheStore {
	return p.stores.EmbeddingCacheStore
}

type RegisterKey struct{}

func MustSetup(m sqlstore.ConnectConfig, s ...sqlstore.ConnectConfig) func() *Provider {
	provider.SqlProvider = sqlstore.MustSetupProvider(m, s...)

	for _, f := range register.ResolveFuncHandlers[*Provider](RegisterKey{}) {
		f(provider)
	}

	return func() *Provider {
		return provider
	}
}

// Install enables required extensions and creates all tables. Statements
// are idempotent, re-running on an installed database is a no-op.
func (p *Provider) Install() error {
	if _, err := p.GetMaster().Exec("CREATE EXTENSION IF NOT EXISTS vector;"); err != nil {
		return fmt.Errorf("failed to enable pgvector extension: %w", err)
	}

	files, err := createTableFiles.ReadDir(".")
	if err != nil {
		return err
	}

	for _, file := range files {
		raw, err := createTableFiles.ReadFile(file.Name())
		if err != nil {
			return err
		}
		if _, err = p.GetMaster().Exec(string(raw)); err != nil {
			return fmt.Errorf("failed to execute %s: %w", file.Name(), err)
		}
	}
	return nil
}
